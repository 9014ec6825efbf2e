// Package main starts the disaster-response web front-end. It wires all
// dependencies using samber/do v2, serves the pages and handles graceful
// shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/disaster-response-web/internal/adapters/http"
	"github.com/jsamuelsen11/disaster-response-web/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/disaster-response-web/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/disaster-response-web/internal/adapters/http/views"

	"github.com/jsamuelsen11/disaster-response-web/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/disaster-response-web/internal/app"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/resource"
	"github.com/jsamuelsen11/disaster-response-web/internal/platform/config"
	"github.com/jsamuelsen11/disaster-response-web/internal/platform/health"
	"github.com/jsamuelsen11/disaster-response-web/internal/platform/httpclient"
	"github.com/jsamuelsen11/disaster-response-web/internal/platform/logging"
	"github.com/jsamuelsen11/disaster-response-web/internal/platform/telemetry"
	"github.com/jsamuelsen11/disaster-response-web/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(os.Stderr, logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Attrs: []slog.Attr{
			slog.String("service", cfg.Telemetry.ServiceName),
			slog.String("profile", profile),
		},
	})

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.ResourceClient](injector))

	logger.Info("resource API configured",
		slog.String("base_url", logging.RedactURL(cfg.Client.BaseURL)),
		slog.Bool("configured", cfg.Client.BaseURL != ""),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// initTelemetry returns a zero Providers when telemetry is off, so
// Metrics is nil and every recorder becomes a no-op.
func initTelemetry(ctx context.Context, cfg *config.Config) (*telemetry.Providers, error) {
	if !cfg.Telemetry.Enabled {
		return &telemetry.Providers{}, nil
	}
	return telemetry.Setup(ctx, telemetry.Settings{
		ServiceName: cfg.Telemetry.ServiceName,
		Exporter:    cfg.Telemetry.Exporter,
		Endpoint:    cfg.Telemetry.Endpoint,
	})
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client,
			httpclient.WithName("resource-api"),
			httpclient.WithMetrics(metrics),
			httpclient.WithLogger(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.ResourceClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewResourceClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ResourceService, error) {
		client := do.MustInvoke[*acl.ResourceClient](i)
		return app.NewResourceService(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DashboardService, error) {
		svc := do.MustInvoke[ports.ResourceService](i)
		var opts []app.DashboardOption
		if metrics := do.MustInvoke[*telemetry.Metrics](i); metrics != nil {
			opts = append(opts, app.WithDashboardRecorder(metrics))
		}
		return app.NewDashboard(svc, resource.All(), cfg.UI.PageSize, cfg.UI.DashboardWorkers, logger, opts...), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Server.HealthCheckTimeout)), nil
	})

	do.Provide(injector, func(_ do.Injector) (*views.Renderer, error) {
		return views.New()
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PageHandler, error) {
		svc := do.MustInvoke[ports.ResourceService](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		var recorder app.SubmissionRecorder
		if metrics != nil {
			recorder = metrics
		}

		return handlers.NewPageHandler(handlers.PageDeps{
			Service:   svc,
			Dashboard: do.MustInvoke[ports.DashboardService](i),
			Forms: app.FormDeps{
				Configured:    cfg.Client.BaseURL != "",
				RedirectDelay: cfg.UI.RedirectDelay,
				Recorder:      recorder,
			},
			Views:    do.MustInvoke[*views.Renderer](i),
			PageSize: cfg.UI.PageSize,
			Logger:   logger,
		}), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry, handlers.WithStrictReadiness(cfg.Server.StrictReadiness)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		pages := do.MustInvoke[*handlers.PageHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		stack := middleware.Stack{
			Logger:         logger,
			Metrics:        metrics,
			RequestTimeout: cfg.Server.RequestTimeout,
			ErrorPage:      nethttp.HandlerFunc(pages.InternalError),
			TimeoutPage:    nethttp.HandlerFunc(pages.GatewayTimeout),
		}
		return adapthttp.NewRouter(pages, healthH, stack.Build()), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
