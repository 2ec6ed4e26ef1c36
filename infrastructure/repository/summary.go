package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/affiliate-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/affiliate-dashboard-api/internal/domain"
)

const (
	weeklySummariesTable  = "relatorios_semanais"
	monthlySummariesTable = "relatorios_mensais"
)

type SummaryRepository interface {
	// AggregateWeekly consolida os relatórios diários de todos os usuários
	// por semana (segunda a domingo).
	AggregateWeekly() ([]*domain.WeeklySummary, error)
	// AggregateMonthly consolida os relatórios diários por mês (YYYY-MM).
	AggregateMonthly() ([]*domain.MonthlySummary, error)
	// ReplaceWeekly regrava a tabela de consolidados semanais de uma vez.
	ReplaceWeekly(ctx context.Context, summaries []*domain.WeeklySummary) error
	ReplaceMonthly(ctx context.Context, summaries []*domain.MonthlySummary) error
	ListWeekly(userID int) ([]*domain.WeeklySummary, error)
	ListMonthly(userID int) ([]*domain.MonthlySummary, error)
}

type summaryRepository struct {
	conn *postgres.Connection
}

func NewSummaryRepository(conn *postgres.Connection) SummaryRepository {
	return &summaryRepository{
		conn: conn,
	}
}

func (r *summaryRepository) AggregateWeekly() ([]*domain.WeeklySummary, error) {
	query, args, err := squirrel.
		Select(
			"r.user_id",
			"date_trunc('week', r.data)::date AS data_inicio",
			"(date_trunc('week', r.data) + interval '6 days')::date AS data_fim",
			"COALESCE(SUM(r.receita_total), 0)",
			"COALESCE(SUM(r.lucro), 0)",
		).
		From(reportsTable + " r").
		GroupBy("r.user_id", "date_trunc('week', r.data)").
		OrderBy("r.user_id ASC", "data_inicio ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consolidar relatórios semanais: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.WeeklySummary, 0)
	for rows.Next() {
		summary := &domain.WeeklySummary{}
		if err := rows.Scan(
			&summary.UserID,
			&summary.DataInicio,
			&summary.DataFim,
			&summary.ReceitaTotal,
			&summary.LucroTotal,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear consolidado semanal: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

func (r *summaryRepository) AggregateMonthly() ([]*domain.MonthlySummary, error) {
	query, args, err := squirrel.
		Select(
			"r.user_id",
			"to_char(r.data, 'YYYY-MM') AS mes",
			"COALESCE(SUM(r.receita_total), 0)",
			"COALESCE(SUM(r.lucro), 0)",
		).
		From(reportsTable + " r").
		GroupBy("r.user_id", "to_char(r.data, 'YYYY-MM')").
		OrderBy("r.user_id ASC", "mes ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consolidar relatórios mensais: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.MonthlySummary, 0)
	for rows.Next() {
		summary := &domain.MonthlySummary{}
		if err := rows.Scan(
			&summary.UserID,
			&summary.Mes,
			&summary.ReceitaTotal,
			&summary.LucroTotal,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear consolidado mensal: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

func (r *summaryRepository) ReplaceWeekly(ctx context.Context, summaries []*domain.WeeklySummary) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM " + weeklySummariesTable); err != nil {
			return fmt.Errorf("erro ao limpar consolidados semanais: %w", err)
		}
		return r.insertWeekly(tx, summaries)
	})
}

func (r *summaryRepository) insertWeekly(q postgres.Queryer, summaries []*domain.WeeklySummary) error {
	if len(summaries) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(weeklySummariesTable).
		Columns("user_id", "data_inicio", "data_fim", "receita_total", "lucro_total").
		PlaceholderFormat(squirrel.Dollar)

	for _, summary := range summaries {
		builder = builder.Values(
			summary.UserID,
			summary.DataInicio.String(),
			summary.DataFim.String(),
			summary.ReceitaTotal,
			summary.LucroTotal,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao regravar consolidados semanais: %w", err)
	}

	return nil
}

func (r *summaryRepository) ReplaceMonthly(ctx context.Context, summaries []*domain.MonthlySummary) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM " + monthlySummariesTable); err != nil {
			return fmt.Errorf("erro ao limpar consolidados mensais: %w", err)
		}
		return r.insertMonthly(tx, summaries)
	})
}

func (r *summaryRepository) insertMonthly(q postgres.Queryer, summaries []*domain.MonthlySummary) error {
	if len(summaries) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(monthlySummariesTable).
		Columns("user_id", "mes", "receita_total", "lucro_total").
		PlaceholderFormat(squirrel.Dollar)

	for _, summary := range summaries {
		builder = builder.Values(
			summary.UserID,
			summary.Mes,
			summary.ReceitaTotal,
			summary.LucroTotal,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao regravar consolidados mensais: %w", err)
	}

	return nil
}

func (r *summaryRepository) ListWeekly(userID int) ([]*domain.WeeklySummary, error) {
	query, args, err := squirrel.
		Select("rs.id", "rs.data_inicio", "rs.data_fim", "rs.receita_total", "rs.lucro_total").
		From(weeklySummariesTable + " rs").
		Where(squirrel.Eq{"rs.user_id": userID}).
		OrderBy("rs.data_inicio DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.WeeklySummary, 0)
	for rows.Next() {
		summary := &domain.WeeklySummary{UserID: userID}
		if err := rows.Scan(
			&summary.ID,
			&summary.DataInicio,
			&summary.DataFim,
			&summary.ReceitaTotal,
			&summary.LucroTotal,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear consolidado semanal: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

func (r *summaryRepository) ListMonthly(userID int) ([]*domain.MonthlySummary, error) {
	query, args, err := squirrel.
		Select("rm.id", "rm.mes", "rm.receita_total", "rm.lucro_total").
		From(monthlySummariesTable + " rm").
		Where(squirrel.Eq{"rm.user_id": userID}).
		OrderBy("rm.mes DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.MonthlySummary, 0)
	for rows.Next() {
		summary := &domain.MonthlySummary{UserID: userID}
		if err := rows.Scan(
			&summary.ID,
			&summary.Mes,
			&summary.ReceitaTotal,
			&summary.LucroTotal,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear consolidado mensal: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}
