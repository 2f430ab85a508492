package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"

	"github.com/daniel/library/config"
	"github.com/daniel/library/db"
	"github.com/daniel/library/internal/controller"
	"github.com/daniel/library/internal/usecase/library"
	"github.com/daniel/library/internal/usecase/repository"
)

const (
	shutDownSeconds          = 3
	readHeaderTimeoutSeconds = 5
	serviceName              = "library"
)

func Run(logger *zap.Logger, cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := db.SetupPostgres(cfg.PG.MigrateURL, logger); err != nil {
		logger.Error("can not run migrations", zap.Error(err))
		return
	}

	dbPool, err := pgxpool.New(ctx, cfg.PG.URL)
	if err != nil {
		logger.Error("can not create pgxpool", zap.Error(err))
		return
	}
	defer dbPool.Close()

	shutdownTracing := setupTracing(logger, cfg)
	defer shutdownTracing()

	var logRepo *zap.Logger
	if cfg.Log.LogDBRepo {
		logRepo = logger
	}
	repo := repository.New(logRepo, dbPool)

	var logTransactor *zap.Logger
	if cfg.Log.LogTransactor {
		logTransactor = logger
	}
	transactor := repository.NewTransactor(logTransactor, dbPool)

	var logUseCase *zap.Logger
	if cfg.Log.LogUseCase {
		logUseCase = logger
	}
	useCases := library.New(logUseCase, repo, repo, transactor)

	var logController *zap.Logger
	if cfg.Log.LogController {
		logController = logger
	}
	ctrl := controller.New(logController, useCases, useCases)

	go runMetrics(cfg, logger)
	go runHTTP(ctx, cfg, logger, ctrl.Routes())

	<-ctx.Done()
	time.Sleep(time.Second * shutDownSeconds)
}

func runHTTP(ctx context.Context, cfg *config.Config, logger *zap.Logger, handler http.Handler) {
	server := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeoutSeconds * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutDownSeconds*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", zap.Error(err))
		}
	}()

	logger.Info("http server listening at port", zap.String("port", cfg.HTTP.Port))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server listen error", zap.Error(err))
	}
}

func runMetrics(cfg *config.Config, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info("metrics server listening at port", zap.String("port", cfg.Observability.MetricsPort))

	if err := http.ListenAndServe(":"+cfg.Observability.MetricsPort, mux); err != nil {
		logger.Error("metrics server listen error", zap.Error(err))
	}
}

func setupTracing(logger *zap.Logger, cfg *config.Config) func() {
	if cfg.Observability.JaegerURL == "" {
		return func() {}
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.Observability.JaegerURL)))
	if err != nil {
		logger.Error("can not create jaeger exporter", zap.Error(err))
		return func() {}
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)

	otel.SetTracerProvider(provider)

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutDownSeconds*time.Second)
		defer cancel()

		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Error("can not shutdown tracer provider", zap.Error(err))
		}
	}
}
