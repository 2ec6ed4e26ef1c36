package uploading

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/affiliate-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/affiliate-dashboard-api/internal/config"
	"github.com/vfg2006/affiliate-dashboard-api/internal/domain"
	"github.com/vfg2006/affiliate-dashboard-api/pkg/log"
	"github.com/vfg2006/affiliate-dashboard-api/pkg/money"
	"github.com/vfg2006/affiliate-dashboard-api/pkg/utils"
)

// Colunas obrigatórias da planilha de afiliados da Shopee
const (
	ColumnProductName = "Nome do Item"
	ColumnRevenue     = "Comissão líquida do afiliado(R$)"
	ColumnSubID       = "Sub_id1"
	ColumnQuantity    = "Quantidade"
)

var (
	ErrMissingReferenceDate = errors.New("data da planilha é obrigatória")
	ErrInvalidReferenceDate = errors.New("data da planilha inválida, esperado YYYY-MM-DD")
)

// RawRow é uma linha da planilha indexada pelo cabeçalho.
type RawRow map[string]any

// UploadResult é o resumo de um upload: quantas linhas entraram e quantas
// foram descartadas por não terem nome de produto.
type UploadResult struct {
	BatchID   string
	Inserted  int
	Discarded int
}

type Uploader interface {
	// ReplaceDailySales mapeia as linhas da planilha e substitui todas as
	// vendas do usuário na data de referência pelo lote mapeado.
	ReplaceDailySales(ctx context.Context, userID int, referenceDate string, rows []RawRow) (*UploadResult, error)
	// ReplaceDailySalesFromFile decodifica um arquivo .csv ou .xlsx e segue
	// o mesmo fluxo de ReplaceDailySales.
	ReplaceDailySalesFromFile(ctx context.Context, userID int, referenceDate, filename string, file io.Reader) (*UploadResult, error)
}

type Service struct {
	saleRepo repository.SaleRepository
	parser   *money.Parser
}

func NewService(saleRepo repository.SaleRepository, cfg *config.Config) Uploader {
	return &Service{
		saleRepo: saleRepo,
		parser:   money.NewParser(cfg.Currency.AllDigitsAsCents),
	}
}

func (s *Service) ReplaceDailySales(ctx context.Context, userID int, referenceDate string, rows []RawRow) (*UploadResult, error) {
	if referenceDate == "" {
		return nil, ErrMissingReferenceDate
	}

	date, err := domain.ParseDateOnly(referenceDate)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidReferenceDate, "%q", referenceDate)
	}

	batchID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID do lote")
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"batch_id": batchID,
		"user_id":  userID,
		"date":     date.String(),
	})

	records, discarded := s.mapRows(logger, date, rows)

	logger.WithFields(log.Fields{
		"rows_received":  len(rows),
		"rows_mapped":    len(records),
		"rows_discarded": discarded,
	}).Info("upload: lote de vendas mapeado")

	inserted, err := s.saleRepo.ReplaceDailySales(ctx, userID, date, records)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao substituir vendas da data %s", date)
	}

	return &UploadResult{
		BatchID:   batchID,
		Inserted:  inserted,
		Discarded: discarded,
	}, nil
}

func (s *Service) ReplaceDailySalesFromFile(ctx context.Context, userID int, referenceDate, filename string, file io.Reader) (*UploadResult, error) {
	rows, err := DecodeSpreadsheet(filename, file)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar a planilha %s", filename)
	}

	return s.ReplaceDailySales(ctx, userID, referenceDate, rows)
}

// mapRows transforma linhas brutas em registros de venda. Linhas sem nome de
// produto (vazio ou marcador "NaN") são descartadas e registradas no log do
// lote para auditoria; receita ilegível vira zero sem bloquear o upload.
func (s *Service) mapRows(logger log.Logger, date domain.DateOnly, rows []RawRow) ([]*domain.SaleRecord, int) {
	records := make([]*domain.SaleRecord, 0, len(rows))
	discarded := 0

	for i, row := range rows {
		productName := stringCell(row, ColumnProductName)
		if productName == "" || productName == "NaN" {
			discarded++
			logger.WithField("row", i).Debug("upload: linha descartada sem nome de produto")
			continue
		}

		revenue := s.parser.ParseAny(row[ColumnRevenue])
		if revenue.IsZero() {
			logger.WithFields(log.Fields{
				"row":     i,
				"product": productName,
			}).Warn("upload: receita zerada ou ilegível")
		}

		record := &domain.SaleRecord{
			Data:        date,
			Receita:     revenue,
			NomeProduto: &productName,
			Quantidade:  quantityCell(row),
		}

		if subID := stringCell(row, ColumnSubID); subID != "" {
			record.SubID = &subID
		}

		records = append(records, record)
	}

	return records, discarded
}

func stringCell(row RawRow, column string) string {
	value, ok := row[column]
	if !ok || value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func quantityCell(row RawRow) int {
	value, ok := row[ColumnQuantity]
	if !ok || value == nil {
		return 1
	}

	switch v := value.(type) {
	case float64:
		if v >= 1 {
			return int(v)
		}
	case string:
		if qty, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && qty >= 1 {
			return qty
		}
	}

	return 1
}
