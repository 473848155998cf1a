// Package app wires configuration, storage, services and transport together
// and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/greenhose/sprinklerd/internal/adapter/mqtt"
	"github.com/greenhose/sprinklerd/internal/adapter/postgres"
	historyrepo "github.com/greenhose/sprinklerd/internal/adapter/postgres/history"
	sprinklerrepo "github.com/greenhose/sprinklerd/internal/adapter/postgres/sprinkler"
	"github.com/greenhose/sprinklerd/internal/config"
	historysvc "github.com/greenhose/sprinklerd/internal/service/history"
	sprinklersvc "github.com/greenhose/sprinklerd/internal/service/sprinkler"
	"github.com/greenhose/sprinklerd/internal/transport/middleware"
	"github.com/greenhose/sprinklerd/internal/transport/rest"
	"github.com/greenhose/sprinklerd/internal/transport/web"
	"github.com/greenhose/sprinklerd/internal/view"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, wires services and serves HTTP until the
// context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting sprinklerd",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		logger.Info("migrations applied")
	}

	clock := clockwork.NewRealClock()

	sprinklers := sprinklerrepo.New(pool)
	history := historyrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	var publisher sprinklersvc.StatePublisher
	var eventsConnected func() bool
	if cfg.MQTT.BrokerURL != "" {
		p, err := mqtt.NewPublisher(ctx, cfg.MQTT, logger)
		if err != nil {
			return fmt.Errorf("connect event publisher: %w", err)
		}
		defer p.Close()
		publisher = p
		eventsConnected = p.Connected
		logger.Info("event publisher connected",
			slog.String("broker", cfg.MQTT.BrokerURL),
			slog.String("topic", cfg.MQTT.Topic),
		)
	} else {
		logger.Info("event publisher disabled")
	}

	sprinklerService := sprinklersvc.NewService(logger, sprinklers, history, publisher, txManager, clock)
	historyService := historysvc.NewService(logger, history, cfg.History.DefaultLimit, cfg.History.MaxLimit)

	handler, stop := newRouter(cfg, logger, clock, pool, eventsConnected, sprinklerService, historyService)
	defer stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

// newRouter builds the full HTTP handler: dashboard, REST API, health and
// metrics endpoints behind the middleware chain. The returned stop func
// releases the rate limiter's background goroutine.
func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	clock clockwork.Clock,
	pool *pgxpool.Pool,
	eventsConnected func() bool,
	sprinklerService *sprinklersvc.Service,
	historyService *historysvc.Service,
) (http.Handler, func()) {
	formatter := view.NewFormatter(clock)

	sprinklerHandler := rest.NewSprinklerHandler(sprinklerService, logger)
	historyHandler := rest.NewHistoryHandler(historyService, formatter, logger)
	healthHandler := rest.NewHealthHandler(pool, eventsConnected, BuildVersion())
	dashboard := web.NewDashboard(sprinklerService, historyService, clock, logger)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	limit := func(h http.HandlerFunc) http.Handler {
		if cfg.Server.RateLimitPerMinute <= 0 {
			return h
		}
		return limiter.Limit(cfg.Server.RateLimitPerMinute)(h)
	}

	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", dashboard.Index)
	mux.HandleFunc("GET /api/sprinklers", sprinklerHandler.List)
	mux.Handle("POST /api/sprinklers", limit(sprinklerHandler.Create))
	mux.HandleFunc("GET /api/sprinklers/{id}", sprinklerHandler.Get)
	mux.Handle("POST /api/sprinklers/{id}/start", limit(sprinklerHandler.Start))
	mux.Handle("POST /api/sprinklers/{id}/stop", limit(sprinklerHandler.Stop))
	mux.Handle("POST /api/sprinklers/{id}/pause", limit(sprinklerHandler.Pause))
	mux.Handle("POST /api/sprinklers/{id}/resume", limit(sprinklerHandler.Resume))
	mux.Handle("POST /api/sprinklers/{id}/reset", limit(sprinklerHandler.Reset))
	mux.Handle("POST /api/sprinklers/{id}/toggle-timer", limit(sprinklerHandler.ToggleTimer))
	mux.HandleFunc("GET /api/history", historyHandler.List)
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		metrics.Handler(),
		middleware.CORS(cfg.CORS),
	)

	return chain(mux), limiter.Stop
}
