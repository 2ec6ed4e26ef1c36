package repository

import (
	"context"
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
	salesTable = "shopee_vendas"
)

type SaleRepository interface {
	// ReplaceDailySales apaga todas as vendas do usuário na data de referência
	// e insere o lote novo, tudo em uma única transação. Retorna a quantidade
	// de registros inseridos; um lote vazio zera a data.
	ReplaceDailySales(ctx context.Context, userID int, date domain.DateOnly, records []*domain.SaleRecord) (int, error)
	SumRevenueByChannel(userID int, channel domain.Channel, start, end *time.Time) (decimal.Decimal, error)
	GetProductGroups(userID int, filter domain.ProductFilter) ([]*domain.ProductGroup, error)
	ListByDate(userID int, date domain.DateOnly) ([]*domain.SaleRecord, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) ReplaceDailySales(ctx context.Context, userID int, date domain.DateOnly, records []*domain.SaleRecord) (int, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := r.deleteByDate(tx, userID, date); err != nil {
			return err
		}
		return r.insertBatch(tx, userID, date, records)
	})
	if err != nil {
		return 0, err
	}

	return len(records), nil
}

func (r *saleRepository) deleteByDate(q postgres.Queryer, userID int, date domain.DateOnly) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"user_id": userID, "data": date.String()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de delete: %w", err)
	}

	if _, err := q.Exec(deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("erro ao apagar vendas da data %s: %w", date, err)
	}

	return nil
}

func (r *saleRepository) insertBatch(q postgres.Queryer, userID int, date domain.DateOnly, records []*domain.SaleRecord) error {
	if len(records) == 0 {
		return nil
	}

	insertBuilder := squirrel.
		Insert(salesTable).
		Columns("user_id", "data", "receita", "sub_id", "nome_produto", "quantidade").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		insertBuilder = insertBuilder.Values(
			userID,
			date.String(),
			record.Receita,
			record.SubID,
			record.NomeProduto,
			record.Quantidade,
		)
	}

	insertSQL, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de insert: %w", err)
	}

	if _, err := q.Exec(insertSQL, insertArgs...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao inserir lote de vendas: %w", err)
	}

	return nil
}

func (r *saleRepository) SumRevenueByChannel(userID int, channel domain.Channel, start, end *time.Time) (decimal.Decimal, error) {
	builder := squirrel.
		Select("COALESCE(SUM(sv.receita), 0)").
		From(salesTable + " sv").
		Where(squirrel.Eq{"sv.user_id": userID})

	if channel == domain.ChannelSocial {
		builder = builder.Where(squirrel.NotEq{"sv.sub_id": nil})
	} else {
		builder = builder.Where(squirrel.Eq{"sv.sub_id": nil})
	}

	// Recorte de datas com início inclusivo e fim exclusivo
	if start != nil {
		builder = builder.Where(squirrel.GtOrEq{"sv.data": start.Format(time.DateOnly)})
	}
	if end != nil {
		builder = builder.Where(squirrel.Lt{"sv.data": end.Format(time.DateOnly)})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total decimal.Decimal
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("erro ao somar receita por canal: %w", err)
	}

	return total, nil
}

func (r *saleRepository) GetProductGroups(userID int, filter domain.ProductFilter) ([]*domain.ProductGroup, error) {
	builder := squirrel.
		Select(
			"sv.data",
			"sv.sub_id",
			"COALESCE(SUM(sv.receita), 0)",
			"COALESCE(SUM(sv.quantidade), 0)",
		).
		From(salesTable + " sv").
		Where(squirrel.Eq{"sv.user_id": userID})

	switch filter {
	case domain.FilterSocial:
		builder = builder.Where(squirrel.NotEq{"sv.sub_id": nil})
	case domain.FilterVideo:
		builder = builder.Where(squirrel.Eq{"sv.sub_id": nil})
	}

	query, args, err := builder.
		GroupBy("sv.data", "sv.sub_id").
		OrderBy("sv.data DESC").
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

	groups := make([]*domain.ProductGroup, 0)
	for rows.Next() {
		group := &domain.ProductGroup{}
		if err := rows.Scan(
			&group.Data,
			&group.SubID,
			&group.Receita,
			&group.Quantidade,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear grupo de produtos: %w", err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return groups, nil
}

func (r *saleRepository) ListByDate(userID int, date domain.DateOnly) ([]*domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select("sv.id", "sv.data", "sv.receita", "sv.sub_id", "sv.nome_produto", "sv.quantidade").
		From(salesTable + " sv").
		Where(squirrel.Eq{"sv.user_id": userID, "sv.data": date.String()}).
		OrderBy("sv.id ASC").
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

	records := make([]*domain.SaleRecord, 0)
	for rows.Next() {
		record := &domain.SaleRecord{UserID: userID}
		if err := rows.Scan(
			&record.ID,
			&record.Data,
			&record.Receita,
			&record.SubID,
			&record.NomeProduto,
			&record.Quantidade,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
