package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/affiliate-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/affiliate-dashboard-api/internal/domain"
)

const (
	expensesTable = "gastos"
)

type ExpenseRepository interface {
	Create(expense *domain.Expense) (*domain.Expense, error)
	ListByReportID(userID int, reportID int64) ([]*domain.Expense, error)
	// SumByReportID soma os gastos vinculados a um relatório. É a fonte da
	// verdade para o gasto_total derivado do relatório.
	SumByReportID(userID int, reportID int64) (decimal.Decimal, error)
}

type expenseRepository struct {
	conn *postgres.Connection
}

func NewExpenseRepository(conn *postgres.Connection) ExpenseRepository {
	return &expenseRepository{
		conn: conn,
	}
}

func (r *expenseRepository) Create(expense *domain.Expense) (*domain.Expense, error) {
	query, args, err := squirrel.
		Insert(expensesTable).
		Columns("user_id", "relatorio_id", "descricao", "valor").
		Values(expense.UserID, expense.RelatorioID, expense.Descricao, expense.Valor).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&expense.ID, &expense.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao inserir gasto: %w", err)
	}

	return expense, nil
}

func (r *expenseRepository) ListByReportID(userID int, reportID int64) ([]*domain.Expense, error) {
	query, args, err := squirrel.
		Select("g.id", "g.relatorio_id", "g.descricao", "g.valor", "g.created_at").
		From(expensesTable + " g").
		Where(squirrel.Eq{"g.user_id": userID, "g.relatorio_id": reportID}).
		OrderBy("g.created_at ASC").
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

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		expense := &domain.Expense{UserID: userID}
		if err := rows.Scan(
			&expense.ID,
			&expense.RelatorioID,
			&expense.Descricao,
			&expense.Valor,
			&expense.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear gasto: %w", err)
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return expenses, nil
}

func (r *expenseRepository) SumByReportID(userID int, reportID int64) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(g.valor), 0)").
		From(expensesTable + " g").
		Where(squirrel.Eq{"g.user_id": userID, "g.relatorio_id": reportID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total decimal.Decimal
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("erro ao somar gastos do relatório %d: %w", reportID, err)
	}

	return total, nil
}
