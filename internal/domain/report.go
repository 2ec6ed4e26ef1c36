package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReport é o relatório diário de um sub_id: receita, gasto e lucro
// lançados manualmente pelo operador. Único por (usuário, sub_id, data);
// um novo lançamento para a mesma chave atualiza em vez de duplicar.
type DailyReport struct {
	ID           int64           `json:"id"`
	UserID       int             `json:"-"`
	SubID        string          `json:"sub_id"`
	Data         DateOnly        `json:"data"`
	ReceitaTotal decimal.Decimal `json:"receita_total"`
	GastoTotal   decimal.Decimal `json:"gasto_total"`
	Lucro        decimal.Decimal `json:"lucro"`
	CreatedAt    time.Time       `json:"created_at"`
}

// RecalculateProfit recalcula o lucro como receita menos gasto.
func (r *DailyReport) RecalculateProfit() {
	r.Lucro = r.ReceitaTotal.Sub(r.GastoTotal)
}

// WeeklySummary é o consolidado semanal de relatórios, recalculado pelo
// job de rollup.
type WeeklySummary struct {
	ID           int64           `json:"id"`
	UserID       int             `json:"-"`
	DataInicio   DateOnly        `json:"data_inicio"`
	DataFim      DateOnly        `json:"data_fim"`
	ReceitaTotal decimal.Decimal `json:"receita_total"`
	LucroTotal   decimal.Decimal `json:"lucro_total"`
}

// MonthlySummary é o consolidado mensal de relatórios, com o mês no
// formato YYYY-MM.
type MonthlySummary struct {
	ID           int64           `json:"id"`
	UserID       int             `json:"-"`
	Mes          string          `json:"mes"`
	ReceitaTotal decimal.Decimal `json:"receita_total"`
	LucroTotal   decimal.Decimal `json:"lucro_total"`
}
