package dashboarding

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/affiliate-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/affiliate-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)

	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	service := &Service{
		saleRepo: mockSaleRepo,
		now:      func() time.Time { return now },
	}

	today := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	mockSaleRepo.EXPECT().
		SumRevenueByChannel(7, domain.ChannelSocial, &today, &tomorrow).
		Return(decimal.RequireFromString("1234.56"), nil)

	mockSaleRepo.EXPECT().
		SumRevenueByChannel(7, domain.ChannelVideo, &today, &tomorrow).
		Return(decimal.RequireFromString("135.2"), nil)

	stats, err := service.GetStats(7, domain.PeriodToday)

	require.NoError(t, err)
	assert.Equal(t, "1234.56", stats.GanhosRedesSociais)
	assert.Equal(t, "135.20", stats.GanhosShopeeVideo)
}

func TestGetStatsAllPeriodHasNoBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := &Service{
		saleRepo: mockSaleRepo,
		now:      time.Now,
	}

	var nilTime *time.Time
	mockSaleRepo.EXPECT().
		SumRevenueByChannel(7, domain.ChannelSocial, nilTime, nilTime).
		Return(decimal.Zero, nil)
	mockSaleRepo.EXPECT().
		SumRevenueByChannel(7, domain.ChannelVideo, nilTime, nilTime).
		Return(decimal.Zero, nil)

	stats, err := service.GetStats(7, domain.PeriodAll)

	require.NoError(t, err)
	assert.Equal(t, "0.00", stats.GanhosRedesSociais)
	assert.Equal(t, "0.00", stats.GanhosShopeeVideo)
}

func TestGetStatsRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := &Service{
		saleRepo: mockSaleRepo,
		now:      time.Now,
	}

	mockSaleRepo.EXPECT().
		SumRevenueByChannel(7, domain.ChannelSocial, gomock.Any(), gomock.Any()).
		Return(decimal.Zero, assert.AnError)

	_, err := service.GetStats(7, domain.PeriodAll)
	assert.Error(t, err)
}

func TestGetProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := &Service{
		saleRepo: mockSaleRepo,
		now:      time.Now,
	}

	subID := "insta-bio"
	date, _ := domain.ParseDateOnly("2024-05-15")

	mockSaleRepo.EXPECT().
		GetProductGroups(7, domain.FilterAll).
		Return([]*domain.ProductGroup{
			{
				Data:       date,
				SubID:      &subID,
				Receita:    decimal.RequireFromString("1234.56"),
				Quantidade: 3,
			},
			{
				Data:       date,
				SubID:      nil,
				Receita:    decimal.RequireFromString("135.27"),
				Quantidade: 5,
			},
		}, nil)

	groups, err := service.GetProducts(7, domain.FilterAll)

	require.NoError(t, err)
	require.Len(t, groups, 2)

	social := groups[0]
	assert.Equal(t, "Redes Sociais", social.Origem)
	assert.Equal(t, "insta-bio", social.ChaveGrupo)
	assert.Equal(t, "Agrupado: insta-bio", social.NomeProduto)

	video := groups[1]
	assert.Equal(t, "Shopee Vídeo", video.Origem)
	assert.Equal(t, "shopee-video-group", video.ChaveGrupo)
	assert.Equal(t, "Shopee Vídeo (Agrupado)", video.NomeProduto)
}

func TestGetProductsRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := &Service{
		saleRepo: mockSaleRepo,
		now:      time.Now,
	}

	mockSaleRepo.EXPECT().
		GetProductGroups(7, domain.FilterVideo).
		Return(nil, assert.AnError)

	_, err := service.GetProducts(7, domain.FilterVideo)
	assert.Error(t, err)
}

func TestListSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := &Service{
		saleRepo: mockSaleRepo,
		now:      time.Now,
	}

	date, err := domain.ParseDateOnly("2024-05-15")
	require.NoError(t, err)

	subID := "insta-bio"
	product := "Fone Bluetooth"
	sales := []*domain.SaleRecord{
		{
			ID:          1,
			Data:        date,
			SubID:       &subID,
			NomeProduto: &product,
			Receita:     decimal.RequireFromString("1234.56"),
			Quantidade:  2,
		},
	}

	mockSaleRepo.EXPECT().
		ListByDate(7, date).
		Return(sales, nil)

	got, err := service.ListSales(7, date)

	require.NoError(t, err)
	assert.Equal(t, sales, got)
}

func TestListSalesRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := &Service{
		saleRepo: mockSaleRepo,
		now:      time.Now,
	}

	date, err := domain.ParseDateOnly("2024-05-15")
	require.NoError(t, err)

	mockSaleRepo.EXPECT().
		ListByDate(7, date).
		Return(nil, assert.AnError)

	_, err = service.ListSales(7, date)
	assert.Error(t, err)
}
