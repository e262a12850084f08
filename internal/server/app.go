package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"

	"github.com/iudanet/bookshelf/internal/config"
	"github.com/iudanet/bookshelf/internal/crypto"
	"github.com/iudanet/bookshelf/internal/server/jwt"
	"github.com/iudanet/bookshelf/internal/server/metrics"
	"github.com/iudanet/bookshelf/internal/server/middleware"
	"github.com/iudanet/bookshelf/internal/server/service"
	"github.com/iudanet/bookshelf/internal/server/storage"
	"github.com/iudanet/bookshelf/internal/server/storage/postgres"
	"github.com/iudanet/bookshelf/internal/server/storage/sqlite"
)

// OpenStorage открывает хранилище выбранного драйвера и применяет миграции
func OpenStorage(ctx context.Context, driver, dsn string) (storage.AccountStorage, error) {
	switch driver {
	case config.DriverSQLite:
		s, err := sqlite.New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverPostgres:
		s, err := postgres.New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

// App собранное приложение сервера
type App struct {
	Deps    *RouterDeps
	store   storage.AccountStorage
	limiter *middleware.RateLimiter
}

// NewApp связывает хранилище, токены, сервис и метрики по конфигурации
func NewApp(cfg *config.Config, logger *slog.Logger, store storage.AccountStorage) *App {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	tokens := jwt.NewService(cfg.JWTSecret, cfg.TokenTTL)
	hasher := crypto.NewArgon2Hasher(crypto.DefaultParams)
	svc := service.New(logger, store, hasher, tokens, service.WithRecorder(collector))

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.AuthRateLimit), cfg.AuthRateBurst, logger, collector,
		middleware.WithTrustedProxyHeaders(cfg.TrustProxyHeaders))

	return &App{
		Deps: &RouterDeps{
			Logger:      logger,
			Service:     svc,
			Store:       store,
			Verifier:    tokens,
			Metrics:     collector,
			Gatherer:    registry,
			AuthLimiter: limiter,
		},
		store:   store,
		limiter: limiter,
	}
}

// Close останавливает фоновые задачи и закрывает хранилище
func (a *App) Close() error {
	a.limiter.Stop()
	return a.store.Close()
}

// Run открывает хранилище, собирает приложение и обслуживает запросы до отмены ctx
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, err := OpenStorage(ctx, cfg.StorageDriver, cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	app := NewApp(cfg, logger, store)
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close application", slog.Any("error", err))
		}
	}()

	logger.Info("storage ready", slog.String("driver", cfg.StorageDriver))

	srv := NewServer(cfg.Address, NewRouter(app.Deps), logger, cfg.ShutdownTimeout)
	return srv.Run(ctx)
}
