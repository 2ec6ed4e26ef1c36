package uploading

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/affiliate-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/affiliate-dashboard-api/internal/domain"
	"github.com/vfg2006/affiliate-dashboard-api/pkg/log"
	"github.com/vfg2006/affiliate-dashboard-api/pkg/money"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func newTestService(saleRepo *mocks.MockSaleRepository) *Service {
	return &Service{
		saleRepo: saleRepo,
		parser:   money.NewParser(false),
	}
}

func TestReplaceDailySales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := newTestService(mockSaleRepo)

	rows := []RawRow{
		{
			ColumnProductName: "Fone Bluetooth",
			ColumnRevenue:     "R$ 1.234,56",
			ColumnSubID:       "insta-bio",
			ColumnQuantity:    float64(2),
		},
		{
			ColumnProductName: "Carregador Turbo",
			ColumnRevenue:     "135,27",
			ColumnSubID:       "",
		},
		{
			// Linha de vídeo exportada sem produto: deve ser descartada
			ColumnProductName: "NaN",
			ColumnRevenue:     "10,00",
		},
		{
			ColumnProductName: "",
			ColumnRevenue:     "5,00",
		},
	}

	var captured []*domain.SaleRecord
	mockSaleRepo.EXPECT().
		ReplaceDailySales(gomock.Any(), 7, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, date domain.DateOnly, records []*domain.SaleRecord) (int, error) {
			assert.Equal(t, "2024-05-15", date.String())
			captured = records
			return len(records), nil
		})

	result, err := service.ReplaceDailySales(context.Background(), 7, "2024-05-15", rows)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 2, result.Discarded)
	assert.NotEmpty(t, result.BatchID)

	require.Len(t, captured, 2)

	first := captured[0]
	assert.Equal(t, "Fone Bluetooth", *first.NomeProduto)
	assert.Equal(t, "1234.56", first.Receita.String())
	require.NotNil(t, first.SubID)
	assert.Equal(t, "insta-bio", *first.SubID)
	assert.Equal(t, 2, first.Quantidade)
	assert.Equal(t, domain.ChannelSocial, first.Channel())

	second := captured[1]
	assert.Equal(t, "Carregador Turbo", *second.NomeProduto)
	assert.Equal(t, "135.27", second.Receita.String())
	assert.Nil(t, second.SubID)
	assert.Equal(t, 1, second.Quantidade)
	assert.Equal(t, domain.ChannelVideo, second.Channel())
}

func TestReplaceDailySalesMissingDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := newTestService(mockSaleRepo)

	_, err := service.ReplaceDailySales(context.Background(), 7, "", []RawRow{
		{ColumnProductName: "Produto", ColumnRevenue: "10,00"},
	})

	assert.ErrorIs(t, err, ErrMissingReferenceDate)
}

func TestReplaceDailySalesInvalidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := newTestService(mockSaleRepo)

	_, err := service.ReplaceDailySales(context.Background(), 7, "15/05/2024", nil)

	assert.ErrorIs(t, err, ErrInvalidReferenceDate)
}

func TestReplaceDailySalesEmptyBatchClearsDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := newTestService(mockSaleRepo)

	// Mesmo com todas as linhas descartadas o replace acontece: a data fica
	// zerada em vez de manter a carga anterior
	mockSaleRepo.EXPECT().
		ReplaceDailySales(gomock.Any(), 7, gomock.Any(), gomock.Len(0)).
		Return(0, nil)

	result, err := service.ReplaceDailySales(context.Background(), 7, "2024-05-15", []RawRow{
		{ColumnProductName: "NaN", ColumnRevenue: "10,00"},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 1, result.Discarded)
}

func TestReplaceDailySalesUnreadableRevenueBecomesZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := newTestService(mockSaleRepo)

	mockSaleRepo.EXPECT().
		ReplaceDailySales(gomock.Any(), 7, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ domain.DateOnly, records []*domain.SaleRecord) (int, error) {
			require.Len(t, records, 1)
			assert.True(t, records[0].Receita.IsZero())
			return 1, nil
		})

	result, err := service.ReplaceDailySales(context.Background(), 7, "2024-05-15", []RawRow{
		{ColumnProductName: "Produto", ColumnRevenue: "sem valor"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
}
