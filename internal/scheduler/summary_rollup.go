package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/affiliate-dashboard-api/internal/config"
)

// SummaryRollupConfig representa a configuração do job de consolidação
type SummaryRollupConfig struct {
	CronSchedule string
	Enabled      bool
}

// SummaryRollupService recalcula as tabelas de consolidados semanais e
// mensais a partir dos relatórios diários.
type SummaryRollupService struct {
	scheduler           *gocron.Scheduler
	config              SummaryRollupConfig
	summaryRepo         repository.SummaryRepository
	rollupRunning       bool
	rollupMutex         sync.Mutex
	lastRollupStartedAt time.Time
}

func NewSummaryRollupService(
	summaryRepo repository.SummaryRepository,
	appConfig *config.Config,
) *SummaryRollupService {
	rollupConfig := SummaryRollupConfig{
		CronSchedule: appConfig.SummaryRollup.CronSchedule,
		Enabled:      appConfig.SummaryRollup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rollupConfig.CronSchedule,
		"enabled":       rollupConfig.Enabled,
	}).Info("Configuração do job de consolidação de relatórios carregada")

	return &SummaryRollupService{
		scheduler:   scheduler,
		config:      rollupConfig,
		summaryRepo: summaryRepo,
	}
}

// Start inicia o agendador
func (s *SummaryRollupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Consolidação de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de consolidação de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunRollup(ctx); err != nil {
			logrus.WithError(err).Error("Erro na consolidação agendada de relatórios")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar consolidação de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de consolidação de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// RunRollup executa a consolidação imediatamente. Execuções concorrentes são
// recusadas: o rollup regrava as tabelas inteiras.
func (s *SummaryRollupService) RunRollup(ctx context.Context) error {
	s.rollupMutex.Lock()
	if s.rollupRunning {
		s.rollupMutex.Unlock()
		return fmt.Errorf("consolidação já em execução desde %s", s.lastRollupStartedAt.Format(time.RFC3339))
	}
	s.rollupRunning = true
	s.lastRollupStartedAt = time.Now()
	s.rollupMutex.Unlock()

	defer func() {
		s.rollupMutex.Lock()
		s.rollupRunning = false
		s.rollupMutex.Unlock()
	}()

	startTime := time.Now()
	logrus.Info("Iniciando consolidação de relatórios semanais e mensais")

	weekly, err := s.summaryRepo.AggregateWeekly()
	if err != nil {
		return fmt.Errorf("erro ao consolidar relatórios semanais: %w", err)
	}

	if err := s.summaryRepo.ReplaceWeekly(ctx, weekly); err != nil {
		return fmt.Errorf("erro ao regravar consolidados semanais: %w", err)
	}

	monthly, err := s.summaryRepo.AggregateMonthly()
	if err != nil {
		return fmt.Errorf("erro ao consolidar relatórios mensais: %w", err)
	}

	if err := s.summaryRepo.ReplaceMonthly(ctx, monthly); err != nil {
		return fmt.Errorf("erro ao regravar consolidados mensais: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"weekly_rows":  len(weekly),
		"monthly_rows": len(monthly),
		"duration":     time.Since(startTime).String(),
	}).Info("Consolidação de relatórios concluída")

	return nil
}
