package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parser normaliza valores monetários heterogêneos vindos das planilhas de
// afiliados ("R$ 1.234,56", "135,27", "1234.56") para decimal.
// Valores impossíveis de interpretar viram zero: um upload nunca falha por
// causa de uma célula mal formatada.
type Parser struct {
	// AllDigitsAsCents controla a interpretação de strings só com dígitos:
	// quando true, "1500" vira 15.00 (centavos); quando false, 1500 (unidades).
	AllDigitsAsCents bool
}

func NewParser(allDigitsAsCents bool) *Parser {
	return &Parser{AllDigitsAsCents: allDigitsAsCents}
}

// Parse converte uma string monetária para decimal. Nunca retorna erro.
func (p *Parser) Parse(raw string) decimal.Decimal {
	s := normalize(raw)
	if s == "" {
		return decimal.Zero
	}

	if isAllDigits(s) {
		value, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		if p.AllDigitsAsCents {
			return value.Shift(-2)
		}
		return value
	}

	switch {
	case strings.Contains(s, ".") && strings.Contains(s, ","):
		// Formato brasileiro completo: "1.234,56" -> "1234.56"
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case strings.Contains(s, ","):
		// Só vírgula decimal: "135,27" -> "135.27"
		s = strings.ReplaceAll(s, ",", ".")
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}

	return value
}

// ParseAny aceita os tipos que chegam de JSON ou de células de planilha.
func (p *Parser) ParseAny(raw any) decimal.Decimal {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero
	case string:
		return p.Parse(v)
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		return decimal.Zero
	}
}

// normalize remove o prefixo de moeda e todos os espaços (inclusive NBSP,
// comum em exportações de planilha).
func normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimPrefix(s, "r$")

	var b strings.Builder
	for _, r := range s {
		if r == ' ' || r == '\t' || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

func isAllDigits(s string) bool {
	start := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		start = 1
	}
	for _, r := range s[start:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
