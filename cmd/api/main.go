package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/team6/sales-report-api/infrastructure/database/postgres"
	"github.com/team6/sales-report-api/infrastructure/integrator/salesdata"
	"github.com/team6/sales-report-api/infrastructure/integrator/salesdata/salesclient"
	"github.com/team6/sales-report-api/infrastructure/repository"
	"github.com/team6/sales-report-api/internal/api"
	"github.com/team6/sales-report-api/internal/config"
	"github.com/team6/sales-report-api/internal/scheduler"
	"github.com/team6/sales-report-api/internal/usecases/authenticating"
	"github.com/team6/sales-report-api/internal/usecases/directory"
	"github.com/team6/sales-report-api/internal/usecases/reporting"
	"github.com/team6/sales-report-api/internal/usecases/targeting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, using 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	dailySummaryRepo := repository.NewDailySummaryRepository(pgConn)

	salesClient := salesclient.NewClient(cfg)
	salesIntegrator := salesdata.New(cfg, salesClient)

	salesReporter := reporting.NewService(cfg, salesIntegrator).
		WithCache(dailySummaryRepo)

	employeeDirectory := directory.NewService(cfg, salesIntegrator)
	authenticator := authenticating.NewService(employeeDirectory, cfg)
	targetService := targeting.NewService(cfg, salesIntegrator)

	dailySummarySyncService := scheduler.NewDailySummarySyncService(
		dailySummaryRepo,
		salesIntegrator,
		cfg,
	)

	if err := dailySummarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start daily summary sync scheduler")
	} else {
		logrus.Info("daily summary sync scheduler started")
	}

	server, err := api.New(
		cfg,
		salesReporter,
		employeeDirectory,
		targetService,
		authenticator,
		dailySummarySyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
