package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/team6/sales-report-api/internal/api/handler"
	"github.com/team6/sales-report-api/internal/api/handler/router"
	"github.com/team6/sales-report-api/internal/config"
	"github.com/team6/sales-report-api/internal/scheduler"
	"github.com/team6/sales-report-api/internal/usecases/authenticating"
	"github.com/team6/sales-report-api/internal/usecases/directory"
	"github.com/team6/sales-report-api/internal/usecases/reporting"
	"github.com/team6/sales-report-api/internal/usecases/targeting"
	"github.com/team6/sales-report-api/pkg/log"
	"github.com/team6/sales-report-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	salesReporter reporting.SalesReporter,
	employeeDirectory directory.EmployeeDirectory,
	targetService targeting.Targeter,
	authenticator authenticating.Authenticator,
	dailySummarySyncService *scheduler.DailySummarySyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		DailySummarySyncService: dailySummarySyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Sales(salesReporter)...),
		router.WithRoutes(handler.Dashboard(salesReporter)...),
		router.WithRoutes(handler.Employees(employeeDirectory)...),
		router.WithRoutes(handler.Targets(targetService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("interrupt signal received")
	case <-ctx.Done():
		log.L.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.L.WithField("timeout", "15s").Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("error during server shutdown")
		return err
	}

	log.L.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
