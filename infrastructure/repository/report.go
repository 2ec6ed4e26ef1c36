package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/affiliate-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/affiliate-dashboard-api/internal/domain"
)

const (
	reportsTable = "relatorios"

	// Limite da listagem sem filtro de data, igual ao dashboard original
	defaultReportLimit = 50
)

type ReportRepository interface {
	// Upsert insere o relatório ou, se já existir um para
	// (usuário, sub_id, data), atualiza receita, gasto e lucro no lugar.
	Upsert(report *domain.DailyReport) (*domain.DailyReport, error)
	GetByID(userID int, id int64) (*domain.DailyReport, error)
	GetByKey(userID int, subID string, date domain.DateOnly) (*domain.DailyReport, error)
	ListByDate(userID int, date domain.DateOnly) ([]*domain.DailyReport, error)
	ListByRange(userID int, start, end *time.Time) ([]*domain.DailyReport, error)
	UpdateCostAndProfit(userID int, reportID int64, cost, profit decimal.Decimal) error
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

func (r *reportRepository) Upsert(report *domain.DailyReport) (*domain.DailyReport, error) {
	query, args, err := squirrel.
		Insert(reportsTable).
		Columns("user_id", "sub_id", "data", "receita_total", "gasto_total", "lucro").
		Values(
			report.UserID,
			report.SubID,
			report.Data.String(),
			report.ReceitaTotal,
			report.GastoTotal,
			report.Lucro,
		).
		Suffix(`
			ON CONFLICT (user_id, sub_id, data) DO UPDATE SET
				receita_total = EXCLUDED.receita_total,
				gasto_total = EXCLUDED.gasto_total,
				lucro = EXCLUDED.lucro
			RETURNING id, created_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&report.ID, &report.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao gravar relatório: %w", err)
	}

	return report, nil
}

func (r *reportRepository) GetByID(userID int, id int64) (*domain.DailyReport, error) {
	return r.getOne(squirrel.Eq{"r.user_id": userID, "r.id": id})
}

func (r *reportRepository) GetByKey(userID int, subID string, date domain.DateOnly) (*domain.DailyReport, error) {
	return r.getOne(squirrel.Eq{
		"r.user_id": userID,
		"r.sub_id":  subID,
		"r.data":    date.String(),
	})
}

func (r *reportRepository) getOne(where squirrel.Eq) (*domain.DailyReport, error) {
	query, args, err := selectReports().
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report, err := scanReport(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar relatório: %w", err)
	}

	return report, nil
}

func (r *reportRepository) ListByDate(userID int, date domain.DateOnly) ([]*domain.DailyReport, error) {
	builder := selectReports().
		Where(squirrel.Eq{"r.user_id": userID, "r.data": date.String()}).
		OrderBy("r.sub_id ASC")

	return r.list(builder)
}

// ListByRange lista relatórios do intervalo [start, end); sem intervalo,
// retorna os mais recentes até o limite padrão.
func (r *reportRepository) ListByRange(userID int, start, end *time.Time) ([]*domain.DailyReport, error) {
	builder := selectReports().
		Where(squirrel.Eq{"r.user_id": userID}).
		OrderBy("r.data DESC")

	if start != nil {
		builder = builder.Where(squirrel.GtOrEq{"r.data": start.Format(time.DateOnly)})
	}
	if end != nil {
		builder = builder.Where(squirrel.Lt{"r.data": end.Format(time.DateOnly)})
	}
	if start == nil && end == nil {
		builder = builder.Limit(defaultReportLimit)
	}

	return r.list(builder)
}

func (r *reportRepository) UpdateCostAndProfit(userID int, reportID int64, cost, profit decimal.Decimal) error {
	query, args, err := squirrel.
		Update(reportsTable).
		Set("gasto_total", cost).
		Set("lucro", profit).
		Where(squirrel.Eq{"user_id": userID, "id": reportID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar gasto e lucro do relatório %d: %w", reportID, err)
	}

	return nil
}

func (r *reportRepository) list(builder squirrel.SelectBuilder) ([]*domain.DailyReport, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.DailyReport, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func selectReports() squirrel.SelectBuilder {
	return squirrel.Select(
		"r.id",
		"r.user_id",
		"r.sub_id",
		"r.data",
		"r.receita_total",
		"r.gasto_total",
		"r.lucro",
		"r.created_at",
	).From(reportsTable + " r")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*domain.DailyReport, error) {
	report := &domain.DailyReport{}
	err := row.Scan(
		&report.ID,
		&report.UserID,
		&report.SubID,
		&report.Data,
		&report.ReceitaTotal,
		&report.GastoTotal,
		&report.Lucro,
		&report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return report, nil
}
