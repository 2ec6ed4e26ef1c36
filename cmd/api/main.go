package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/affiliate-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/affiliate-dashboard-api/internal/api"
	"github.com/vfg2006/affiliate-dashboard-api/internal/config"
	"github.com/vfg2006/affiliate-dashboard-api/internal/scheduler"
	"github.com/vfg2006/affiliate-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/affiliate-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/affiliate-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/affiliate-dashboard-api/internal/usecases/uploading"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	reportRepo := repository.NewReportRepository(pgConn)
	expenseRepo := repository.NewExpenseRepository(pgConn)
	summaryRepo := repository.NewSummaryRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	dashboardService := dashboarding.NewService(saleRepo)
	uploadService := uploading.NewService(saleRepo, cfg)
	reportService := reporting.NewService(reportRepo, expenseRepo, summaryRepo)

	// Inicia o agendador de consolidação em background
	summaryRollupService := scheduler.NewSummaryRollupService(summaryRepo, cfg)
	if err := summaryRollupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de consolidação de relatórios")
	} else {
		logrus.Info("Agendador de consolidação de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		dashboardService,
		uploadService,
		reportService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
