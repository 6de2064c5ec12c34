// Package api serves the dashboards read-only over HTTP with fiber.
package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundsflow/fundsflow/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Services are the use cases the API reads from.
type Services struct {
	Trees         service.TreeService
	Contributions service.ContributionService
	Exports       service.ExportService
	Anomalies     service.AnomalyService
}

type Server struct {
	app      *fiber.App
	svc      Services
	validate *validator.Validate
	log      *zap.Logger
}

// New builds the fiber app. HTTP metrics are registered on reg and the
// whole registry is exposed at /metrics.
func New(svc Services, reg *prometheus.Registry, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("api")

	metrics, err := newHTTPMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("registering http metrics: %w", err)
	}

	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:       "fundsflow",
			ErrorHandler:  ErrorHandler(log),
			StrictRouting: true,
		}),
		svc:      svc,
		validate: validator.New(),
		log:      log,
	}

	s.app.Use(metrics.Middleware())
	s.app.Get("/metrics", metricsHandler(reg))

	api := s.app.Group("/api")
	api.Get("/dashboards", s.handleDashboards)

	dashboard := api.Group("/dashboards/:name")
	dashboard.Get("/tree", s.handleTree)
	dashboard.Get("/anomalies", s.handleAnomalies)
	dashboard.Get("/ledger", s.handleLedger)
	dashboard.Get("/export", s.handleExport)

	return s, nil
}

// App exposes the underlying fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Serve listens on addr until ctx is cancelled, then shuts down.
func (s *Server) Serve(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
	}()
	s.log.Info("listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		if err := s.app.Shutdown(); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
}
