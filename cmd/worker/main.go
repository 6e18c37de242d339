package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	purchasingmemory "github.com/SHWFT/synqchain/internal/domains/purchasing/adapters/memory"
	purchasingobs "github.com/SHWFT/synqchain/internal/domains/purchasing/adapters/observability"
	purchasingpostgres "github.com/SHWFT/synqchain/internal/domains/purchasing/adapters/persistence/postgres"
	purchasingapp "github.com/SHWFT/synqchain/internal/domains/purchasing/application"
	purchasingports "github.com/SHWFT/synqchain/internal/domains/purchasing/ports"
	poactivities "github.com/SHWFT/synqchain/internal/durable/temporal/activities/purchasing"
	poworkflows "github.com/SHWFT/synqchain/internal/durable/temporal/workflows/purchasing"
	platformmigrations "github.com/SHWFT/synqchain/internal/platform/migrations"
	platformobservability "github.com/SHWFT/synqchain/internal/platform/observability"
	platformpostgres "github.com/SHWFT/synqchain/internal/platform/postgres"
)

func main() {
	ctx := context.Background()
	const serviceName = "synqchain-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	poRepo, cleanupRepo := buildPurchasingRepository(ctx, logger)
	defer cleanupRepo()
	purchasingService := purchasingobs.New(
		purchasingapp.NewService(poRepo),
		purchasingobs.WithLogger(logger),
		purchasingobs.WithTracer(instruments.Tracer("internal.purchasing.application")),
		purchasingobs.WithMeter(instruments.Meter("internal.purchasing.application")),
	)
	purchasingActivities := poactivities.NewActivities(purchasingService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, poworkflows.SubmissionTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(poworkflows.SubmissionWorkflow, workflow.RegisterOptions{Name: poworkflows.SubmissionWorkflowName})
	w.RegisterActivityWithOptions(purchasingActivities.SubmitPurchaseOrder, activity.RegisterOptions{Name: poactivities.SubmitPurchaseOrderActivityName})

	logger.Info("worker listening", slog.String("taskQueue", poworkflows.SubmissionTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildPurchasingRepository(ctx context.Context, logger *slog.Logger) (purchasingports.Repository, func()) {
	dsn := os.Getenv("POSTGRES_DSN")
	if strings.TrimSpace(dsn) == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory purchasing repository")
		return purchasingmemory.NewRepository(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, dsn)
	if err != nil {
		logger.Warn("worker failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return purchasingmemory.NewRepository(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("worker failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return purchasingmemory.NewRepository(), func() {}
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Warn("worker failed to apply migrations, falling back to memory", slog.String("error", err.Error()))
		_ = sqlDB.Close()
		return purchasingmemory.NewRepository(), func() {}
	}
	logger.Info("worker purchasing repository configured with postgres")
	return purchasingpostgres.NewRepository(db), func() { _ = sqlDB.Close() }
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
