package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crediflow/calc-service/internal/application/usecase"
	"github.com/crediflow/calc-service/internal/domain/model"
	"github.com/crediflow/calc-service/internal/domain/port"
	"github.com/crediflow/calc-service/internal/domain/service"
	"github.com/crediflow/calc-service/internal/infrastructure/cache"
	"github.com/crediflow/calc-service/internal/infrastructure/catalog"
	"github.com/crediflow/calc-service/internal/infrastructure/config"
	"github.com/crediflow/calc-service/internal/infrastructure/messaging"
	"github.com/crediflow/calc-service/internal/observability"
	grpcPresentation "github.com/crediflow/calc-service/internal/presentation/grpc"
	"github.com/crediflow/calc-service/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting credit-calc",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"catalog_source", cfg.CatalogSource,
	)

	// Metrics.
	_, metricsHandler, err := observability.InitMetrics()
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without /metrics", "error", err)
		metricsHandler = nil
	}

	// Load the credit catalog once; it is immutable for the process lifetime.
	loadCtx, loadCancel := context.WithTimeout(ctx, 10*time.Second)
	defer loadCancel()

	productCatalog, cleanup, err := loadCatalog(loadCtx, cfg)
	if err != nil {
		logger.Error("failed to load credit catalog", "error", err)
		os.Exit(1)
	}
	defer cleanup()
	logger.Info("credit catalog loaded", "products", productCatalog.Len())

	// Result cache.
	var resultCache port.ResultCache = cache.NewNoopCache()
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisCache(cfg.RedisAddr)
		if err := redisCache.Ping(loadCtx); err != nil {
			logger.Warn("redis unreachable, running without result cache", "addr", cfg.RedisAddr, "error", err)
		} else {
			resultCache = redisCache
			defer redisCache.Close()
			logger.Info("result cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
		}
	}

	// Event publisher.
	var publisher port.EventPublisher = messaging.NewNoopPublisher()
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := messaging.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		logger.Info("event publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Wire the engine and use cases.
	engine := service.NewEngine()
	calculateUC := usecase.NewCalculateUseCase(engine, productCatalog, resultCache, publisher, logger, cfg.CacheTTL)
	listUC := usecase.NewListProductsUseCase(productCatalog)

	// gRPC server.
	grpcHandler := grpcPresentation.NewCalculatorHandler(calculateUC, listUC, logger)
	grpcServer := grpcPresentation.NewServer(grpcHandler, cfg.ServiceName, logger)

	// HTTP server.
	restHandler := rest.NewCalculatorHandler(calculateUC, listUC, logger)
	healthHandler := rest.NewHealthHandler(cfg.ServiceName)
	router := rest.NewRouter(restHandler, healthHandler, metricsHandler, logger)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("credit-calc stopped")
}

// loadCatalog builds the configured catalog source and loads it. The
// returned cleanup closes the postgres pool when one was opened.
func loadCatalog(ctx context.Context, cfg config.Config) (model.Catalog, func(), error) {
	noop := func() {}

	switch cfg.CatalogSource {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.DB.DSN())
		if err != nil {
			return model.Catalog{}, noop, fmt.Errorf("connect to postgres: %w", err)
		}
		loaded, err := catalog.NewPostgresSource(pool).Load(ctx)
		if err != nil {
			pool.Close()
			return model.Catalog{}, noop, err
		}
		return loaded, pool.Close, nil
	default:
		loaded, err := catalog.NewFileSource(cfg.CatalogFile).Load(ctx)
		return loaded, noop, err
	}
}
