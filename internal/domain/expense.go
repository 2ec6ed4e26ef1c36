package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense é um gasto avulso, opcionalmente vinculado a um relatório diário.
// Quando vinculado, o gasto_total do relatório é ressincronizado a partir da
// soma dos gastos do relatório.
type Expense struct {
	ID          int64           `json:"id"`
	UserID      int             `json:"-"`
	RelatorioID *int64          `json:"relatorio_id"`
	Descricao   string          `json:"descricao"`
	Valor       decimal.Decimal `json:"valor"`
	CreatedAt   time.Time       `json:"created_at"`
}
