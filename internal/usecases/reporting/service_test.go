package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/affiliate-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/affiliate-dashboard-api/internal/domain"
	"github.com/vfg2006/affiliate-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

type testMocks struct {
	reportRepo  *mocks.MockReportRepository
	expenseRepo *mocks.MockExpenseRepository
	summaryRepo *mocks.MockSummaryRepository
}

func newTestService(ctrl *gomock.Controller) (*Service, testMocks) {
	m := testMocks{
		reportRepo:  mocks.NewMockReportRepository(ctrl),
		expenseRepo: mocks.NewMockExpenseRepository(ctrl),
		summaryRepo: mocks.NewMockSummaryRepository(ctrl),
	}

	service := &Service{
		reportRepo:  m.reportRepo,
		expenseRepo: m.expenseRepo,
		summaryRepo: m.summaryRepo,
		now:         time.Now,
	}

	return service, m
}

func TestUpsertManualReportCreates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	date, _ := domain.ParseDateOnly("2024-05-15")
	report := &domain.DailyReport{
		UserID:       7,
		SubID:        "insta-bio",
		Data:         date,
		ReceitaTotal: decimal.RequireFromString("300"),
		GastoTotal:   decimal.RequireFromString("200"),
	}

	m.reportRepo.EXPECT().
		GetByKey(7, "insta-bio", date).
		Return(nil, nil)

	m.reportRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(r *domain.DailyReport) (*domain.DailyReport, error) {
			// Lucro é sempre derivado, nunca aceito do chamador
			assert.Equal(t, "100", r.Lucro.String())
			r.ID = 42
			return r, nil
		})

	saved, created, err := service.UpsertManualReport(report)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(42), saved.ID)
	assert.Equal(t, "100", saved.Lucro.String())
}

func TestUpsertManualReportUpdatesExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	date, _ := domain.ParseDateOnly("2024-05-15")
	report := &domain.DailyReport{
		UserID:       7,
		SubID:        "insta-bio",
		Data:         date,
		ReceitaTotal: decimal.RequireFromString("500"),
		GastoTotal:   decimal.RequireFromString("120.50"),
	}

	m.reportRepo.EXPECT().
		GetByKey(7, "insta-bio", date).
		Return(&domain.DailyReport{ID: 42}, nil)

	m.reportRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(r *domain.DailyReport) (*domain.DailyReport, error) {
			assert.Equal(t, "379.5", r.Lucro.String())
			r.ID = 42
			return r, nil
		})

	_, created, err := service.UpsertManualReport(report)

	require.NoError(t, err)
	assert.False(t, created)
}

func TestUpsertManualReportMissingKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	date, _ := domain.ParseDateOnly("2024-05-15")

	_, _, err := service.UpsertManualReport(&domain.DailyReport{UserID: 7, Data: date})
	assert.ErrorIs(t, err, ErrMissingReportKey)

	_, _, err = service.UpsertManualReport(&domain.DailyReport{UserID: 7, SubID: "insta-bio"})
	assert.ErrorIs(t, err, ErrMissingReportKey)
}

func TestListReportsByDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	date, _ := domain.ParseDateOnly("2024-05-15")
	expected := []*domain.DailyReport{{ID: 1}, {ID: 2}}

	m.reportRepo.EXPECT().
		ListByDate(7, date).
		Return(expected, nil)

	reports, err := service.ListReports(7, "2024-05-15", domain.PeriodAll)

	require.NoError(t, err)
	assert.Equal(t, expected, reports)
}

func TestListReportsByPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	today := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	m.reportRepo.EXPECT().
		ListByRange(7, &today, &tomorrow).
		Return([]*domain.DailyReport{}, nil)

	_, err := service.ListReports(7, "", domain.PeriodToday)
	require.NoError(t, err)
}

func TestListReportsInvalidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	_, err := service.ListReports(7, "15/05/2024", domain.PeriodAll)
	assert.Error(t, err)
}

func TestCreateExpenseWithoutReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	expense := &domain.Expense{
		UserID:    7,
		Descricao: "Impulsionamento",
		Valor:     decimal.RequireFromString("50"),
	}

	m.expenseRepo.EXPECT().
		Create(expense).
		DoAndReturn(func(e *domain.Expense) (*domain.Expense, error) {
			e.ID = 10
			return e, nil
		})

	created, err := service.CreateExpense(expense)

	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
}

func TestCreateExpenseResyncsReportCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	reportID := int64(42)
	expense := &domain.Expense{
		UserID:      7,
		RelatorioID: &reportID,
		Descricao:   "Impulsionamento",
		Valor:       decimal.RequireFromString("50"),
	}

	m.reportRepo.EXPECT().
		GetByID(7, reportID).
		Return(&domain.DailyReport{
			ID:           reportID,
			UserID:       7,
			ReceitaTotal: decimal.RequireFromString("300"),
		}, nil)

	m.expenseRepo.EXPECT().
		Create(expense).
		DoAndReturn(func(e *domain.Expense) (*domain.Expense, error) {
			e.ID = 10
			return e, nil
		})

	// A soma inclui gastos já existentes do relatório, não só o novo
	m.expenseRepo.EXPECT().
		SumByReportID(7, reportID).
		Return(decimal.RequireFromString("80"), nil)

	m.reportRepo.EXPECT().
		UpdateCostAndProfit(7, reportID, decimal.RequireFromString("80"), decimal.RequireFromString("220")).
		Return(nil)

	_, err := service.CreateExpense(expense)
	require.NoError(t, err)
}

func TestCreateExpenseReportNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	reportID := int64(99)

	m.reportRepo.EXPECT().
		GetByID(7, reportID).
		Return(nil, nil)

	_, err := service.CreateExpense(&domain.Expense{
		UserID:      7,
		RelatorioID: &reportID,
		Descricao:   "Impulsionamento",
	})

	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestCreateExpenseMissingDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	_, err := service.CreateExpense(&domain.Expense{UserID: 7})
	assert.ErrorIs(t, err, ErrMissingExpense)
}

func TestListSummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	weekly := []*domain.WeeklySummary{{ID: 1}}
	monthly := []*domain.MonthlySummary{{ID: 2, Mes: "2024-05"}}

	m.summaryRepo.EXPECT().ListWeekly(7).Return(weekly, nil)
	m.summaryRepo.EXPECT().ListMonthly(7).Return(monthly, nil)

	gotWeekly, err := service.ListWeeklySummaries(7)
	require.NoError(t, err)
	assert.Equal(t, weekly, gotWeekly)

	gotMonthly, err := service.ListMonthlySummaries(7)
	require.NoError(t, err)
	assert.Equal(t, monthly, gotMonthly)
}

func TestListExpenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	reportID := int64(42)
	m.reportRepo.EXPECT().
		GetByID(7, reportID).
		Return(&domain.DailyReport{ID: reportID, UserID: 7}, nil)

	expenses := []*domain.Expense{
		{ID: 1, RelatorioID: &reportID, Descricao: "Impulsionamento", Valor: decimal.RequireFromString("80")},
		{ID: 2, RelatorioID: &reportID, Descricao: "Criativo", Valor: decimal.RequireFromString("40.50")},
	}

	m.expenseRepo.EXPECT().
		ListByReportID(7, reportID).
		Return(expenses, nil)

	got, err := service.ListExpenses(7, reportID)

	require.NoError(t, err)
	assert.Equal(t, expenses, got)
}

func TestListExpensesReportNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.reportRepo.EXPECT().
		GetByID(7, int64(99)).
		Return(nil, nil)

	_, err := service.ListExpenses(7, 99)
	assert.ErrorIs(t, err, ErrReportNotFound)
}
