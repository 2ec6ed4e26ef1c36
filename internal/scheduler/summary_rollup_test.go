package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/affiliate-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/affiliate-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestRollupService(summaryRepo *mocks.MockSummaryRepository, enabled bool) *SummaryRollupService {
	return &SummaryRollupService{
		scheduler: gocron.NewScheduler(time.Local),
		config: SummaryRollupConfig{
			CronSchedule: "0 5 * * *",
			Enabled:      enabled,
		},
		summaryRepo: summaryRepo,
	}
}

func TestRunRollup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummaryRepo := mocks.NewMockSummaryRepository(ctrl)
	service := newTestRollupService(mockSummaryRepo, true)

	weekStart, _ := domain.ParseDateOnly("2024-05-13")
	weekEnd, _ := domain.ParseDateOnly("2024-05-19")

	weekly := []*domain.WeeklySummary{
		{
			UserID:       7,
			DataInicio:   weekStart,
			DataFim:      weekEnd,
			ReceitaTotal: decimal.RequireFromString("300"),
			LucroTotal:   decimal.RequireFromString("100"),
		},
	}
	monthly := []*domain.MonthlySummary{
		{
			UserID:       7,
			Mes:          "2024-05",
			ReceitaTotal: decimal.RequireFromString("300"),
			LucroTotal:   decimal.RequireFromString("100"),
		},
	}

	mockSummaryRepo.EXPECT().AggregateWeekly().Return(weekly, nil)
	mockSummaryRepo.EXPECT().ReplaceWeekly(gomock.Any(), weekly).Return(nil)
	mockSummaryRepo.EXPECT().AggregateMonthly().Return(monthly, nil)
	mockSummaryRepo.EXPECT().ReplaceMonthly(gomock.Any(), monthly).Return(nil)

	err := service.RunRollup(context.Background())
	require.NoError(t, err)
}

func TestRunRollupAggregateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummaryRepo := mocks.NewMockSummaryRepository(ctrl)
	service := newTestRollupService(mockSummaryRepo, true)

	mockSummaryRepo.EXPECT().AggregateWeekly().Return(nil, assert.AnError)

	err := service.RunRollup(context.Background())
	assert.Error(t, err)
}

func TestRunRollupRefusesConcurrentExecution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummaryRepo := mocks.NewMockSummaryRepository(ctrl)
	service := newTestRollupService(mockSummaryRepo, true)

	service.rollupMutex.Lock()
	service.rollupRunning = true
	service.lastRollupStartedAt = time.Now()
	service.rollupMutex.Unlock()

	err := service.RunRollup(context.Background())
	assert.Error(t, err)
}

func TestStartDisabledDoesNotSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummaryRepo := mocks.NewMockSummaryRepository(ctrl)
	service := newTestRollupService(mockSummaryRepo, false)

	err := service.Start(context.Background())

	require.NoError(t, err)
	assert.Zero(t, service.scheduler.Len())
}
