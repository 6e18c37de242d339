package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	synqserver "github.com/SHWFT/synqchain/server"

	analyticsembedded "github.com/SHWFT/synqchain/internal/domains/analytics/adapters/embedded"
	analyticserp "github.com/SHWFT/synqchain/internal/domains/analytics/adapters/erpclient"
	analyticsapp "github.com/SHWFT/synqchain/internal/domains/analytics/application"
	analyticsports "github.com/SHWFT/synqchain/internal/domains/analytics/ports"
	authapp "github.com/SHWFT/synqchain/internal/domains/auth/application"
	projectsmemory "github.com/SHWFT/synqchain/internal/domains/projects/adapters/memory"
	projectspostgres "github.com/SHWFT/synqchain/internal/domains/projects/adapters/persistence/postgres"
	projectsapp "github.com/SHWFT/synqchain/internal/domains/projects/application"
	projectsports "github.com/SHWFT/synqchain/internal/domains/projects/ports"
	purchasingmemory "github.com/SHWFT/synqchain/internal/domains/purchasing/adapters/memory"
	purchasingobs "github.com/SHWFT/synqchain/internal/domains/purchasing/adapters/observability"
	purchasingpostgres "github.com/SHWFT/synqchain/internal/domains/purchasing/adapters/persistence/postgres"
	purchasingworkflows "github.com/SHWFT/synqchain/internal/domains/purchasing/adapters/workflows"
	purchasingapp "github.com/SHWFT/synqchain/internal/domains/purchasing/application"
	purchasingports "github.com/SHWFT/synqchain/internal/domains/purchasing/ports"
	platformmigrations "github.com/SHWFT/synqchain/internal/platform/migrations"
	platformobservability "github.com/SHWFT/synqchain/internal/platform/observability"
	platformpostgres "github.com/SHWFT/synqchain/internal/platform/postgres"
)

// Run boots the SynqChain HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "synqchain-api"
	cfg := LoadConfig()
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	poRepo, projectRepo, cleanupRepos := buildRepositories(ctx, cfg, logger)
	defer cleanupRepos()

	corePurchasingService := purchasingapp.NewService(poRepo)
	purchasingService := purchasingobs.New(
		corePurchasingService,
		purchasingobs.WithLogger(logger),
		purchasingobs.WithTracer(instruments.Tracer("internal.purchasing.application")),
		purchasingobs.WithMeter(instruments.Meter("internal.purchasing.application")),
	)
	var submissionWorkflows purchasingports.WorkflowOrchestrator = purchasingworkflows.NewInlineSubmission(purchasingService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, running inline submit", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		submissionWorkflows = purchasingworkflows.NewTemporalSubmission(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	projectService := projectsapp.NewService(projectRepo)
	analyticsService := analyticsapp.NewService(buildERPAdapter(cfg, logger, poRepo, projectRepo))
	authService := authapp.NewService()

	handlers := synqserver.ApiHandleFunctions{
		PurchaseOrderAPI: synqserver.NewPurchaseOrderAPI(purchasingService, submissionWorkflows),
		ProjectAPI:       synqserver.NewProjectAPI(projectService),
		AnalyticsAPI:     synqserver.NewAnalyticsAPI(analyticsService),
		AuthAPI:          synqserver.NewAuthAPI(authService),
	}

	router := synqserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("SynqChain API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("SynqChain API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// buildRepositories connects Postgres when a DSN is configured, applying
// migrations once and sharing the connection across contexts. Without a DSN
// (or when the connection fails) both contexts run on in-memory adapters.
func buildRepositories(ctx context.Context, cfg Config, logger *slog.Logger) (purchasingports.Repository, projectsports.Repository, func()) {
	memory := func() (purchasingports.Repository, projectsports.Repository, func()) {
		return purchasingmemory.NewRepository(), projectsmemory.NewRepository(), func() {}
	}
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return memory()
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return memory()
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return memory()
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Warn("failed to apply migrations, falling back to memory", slog.String("error", err.Error()))
		_ = sqlDB.Close()
		return memory()
	}
	logger.Info("repositories configured with postgres")
	return purchasingpostgres.NewRepository(db), projectspostgres.NewRepository(db), func() { _ = sqlDB.Close() }
}

// buildERPAdapter prefers the remote ERP client when ERP_BASE_URL is set and
// otherwise serves analytics from the embedded repositories.
func buildERPAdapter(cfg Config, logger *slog.Logger, poRepo purchasingports.Repository, projectRepo projectsports.Repository) analyticsports.ERPAdapter {
	if cfg.ERPBaseURL != "" {
		remote, err := analyticserp.NewClient(cfg.ERPBaseURL, nil)
		if err == nil {
			logger.Info("analytics configured with remote ERP backend", slog.String("base_url", cfg.ERPBaseURL))
			return remote
		}
		logger.Warn("invalid ERP_BASE_URL, falling back to embedded analytics", slog.String("error", err.Error()))
	}
	return analyticsembedded.New(poRepo, projectRepo)
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
