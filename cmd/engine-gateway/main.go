// Command engine-gateway serves read-only engine queries over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/procrest/engine-client-go/internal/api"
	"github.com/procrest/engine-client-go/internal/config"
	"github.com/procrest/engine-client-go/internal/observability"
	"github.com/procrest/engine-client-go/internal/query"
	"github.com/procrest/engine-client-go/internal/ratelimit"
	"github.com/procrest/engine-client-go/internal/remote"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	logger := observability.InitLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := observability.InitTracer(ctx, "engine-gateway", cfg.OTelEnabled)
	if err != nil {
		logger.Error("otel init failed", "error", err)
	} else {
		defer shutdownTracer(context.Background())
	}

	metrics, err := observability.NewMetrics()
	if err != nil {
		logger.Error("metrics init failed", "error", err)
		os.Exit(1)
	}

	engine, err := remote.Dial(cfg, logger, query.WithObserver(metrics))
	if err != nil {
		logger.Error("unable to create engine client", "error", err)
		os.Exit(1)
	}

	oidcCfg := api.OIDCConfig{
		IssuerURL: cfg.OIDCIssuer,
		Audience:  cfg.OIDCAudience,
		Enabled:   cfg.OIDCEnabled(),
	}
	srv, err := api.New(ctx, engine, api.Options{
		CORSOrigins: cfg.CORSOrigins,
		OIDC:        oidcCfg,
		Budget:      ratelimit.NewQueryBudget(cfg.QueryBudget, cfg.BudgetWindow),
		Logger:      logger,
	})
	if err != nil {
		logger.Error("unable to create API server", "error", err)
		os.Exit(1)
	}

	var handler http.Handler = srv
	if cfg.OTelEnabled {
		handler = otelhttp.NewHandler(handler, "engine-gateway")
	}

	httpSrv := &http.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	logger.Info("starting API server", "addr", httpSrv.Addr, "engine", cfg.BaseURL, "oidc_enabled", oidcCfg.Enabled)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
