package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	httpAdapter "github.com/iho/erpledger/internal/adapter/http"
	"github.com/iho/erpledger/internal/adapter/http/handler"
	"github.com/iho/erpledger/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/erpledger/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/erpledger/internal/adapter/repository/redis"
	"github.com/iho/erpledger/internal/infrastructure/config"
	"github.com/iho/erpledger/internal/infrastructure/logger"
	"github.com/iho/erpledger/internal/infrastructure/metrics"
	"github.com/iho/erpledger/internal/infrastructure/postgres"
	"github.com/iho/erpledger/internal/infrastructure/redis"
	"github.com/iho/erpledger/internal/infrastructure/refresher"
	"github.com/iho/erpledger/internal/usecase"
)

const (
	limiterCleanupInterval = 10 * time.Minute
	limiterMaxIdle         = time.Hour
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})
	log.Logger = appLogger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Fatal().Err(err).Msg("server failed")
	}

	appLogger.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger) error {
	// Run migrations when a path is configured
	if cfg.MigrationsPath != "" {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	holderRepo := postgresRepo.NewHolderRepository(pool)
	saleRepo := postgresRepo.NewSaleRepository(pool)
	receiptRepo := postgresRepo.NewReceiptRepository(pool)
	deductionRepo := postgresRepo.NewDeductionRepository(pool)
	debtRepo := postgresRepo.NewDebtRepository(pool)
	retrier := postgresRepo.NewRetrier().WithLogger(appLogger)
	idGen := postgresRepo.NewULIDGenerator()
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	reportCache := redisRepo.NewReportCache(redisClient)

	// Initialize use cases
	statementUC := usecase.NewStatementUseCase(holderRepo, saleRepo, receiptRepo, deductionRepo, debtRepo, m)
	reconciliationUC := usecase.NewReconciliationUseCase(holderRepo, statementUC, m).WithReportStore(reportCache)
	deductionUC := usecase.NewDeductionUseCase(txManager, holderRepo, deductionRepo, idGen, retrier, m)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		StatementHandler:      handler.NewStatementHandler(statementUC),
		DeductionHandler:      handler.NewDeductionHandler(deductionUC),
		ReconciliationHandler: handler.NewReconciliationHandler(reconciliationUC),
		HealthHandler:         handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:      idempotencyStore,
		IdempotencyTTL:        cfg.IdempotencyTTL,
		RateLimiter:           rateLimiter,
		Logger:                &appLogger,
	})

	server := newHTTPServer(cfg, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		rateLimiter.RunCleanup(gctx, limiterCleanupInterval, limiterMaxIdle)
		return nil
	})

	if cfg.RefreshEnabled {
		r := refresher.New(refresher.Config{
			Reports:  reconciliationUC,
			Observer: m,
			Logger:   &appLogger,
			Interval: cfg.RefreshInterval,
		})
		g.Go(func() error {
			if err := r.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info().Msg("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      h,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
}
