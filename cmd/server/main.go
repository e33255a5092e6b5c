package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"permitly/internal/assessment/handler"
	assessmentmetrics "permitly/internal/assessment/metrics"
	"permitly/internal/assessment/service"
	"permitly/internal/llm"
	_ "permitly/internal/llm/providers" // Register LLM providers
	"permitly/internal/platform/config"
	"permitly/internal/platform/health"
	"permitly/internal/platform/logger"
	"permitly/internal/platform/middleware"
	"permitly/internal/report"
	"permitly/internal/rules"
	"permitly/internal/rules/store"
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
	maxBodyBytes    = 64 * 1024
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	log.Info("initializing permitly",
		"addr", cfg.Addr,
		"rules_path", cfg.RulesPath,
		"ai_enabled", cfg.AI.APIKey != "",
	)

	metrics := assessmentmetrics.New()

	ruleStore := newRuleStore(cfg, log)
	metrics.CorpusRules.Set(float64(ruleStore.Count()))

	assembler := report.NewAssembler(newGenerator(cfg, log), cfg.AI.Timeout, log)
	svc := service.New(ruleStore, assembler, metrics, log)

	healthHandler := health.New()
	healthHandler.RegisterCheck("rules", ruleStore.HealthCheck)

	router := newRouter(cfg, svc, metrics, healthHandler, log)

	srv := &http.Server{
		Addr:        cfg.Addr,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

// newRuleStore picks the corpus source: a file when RULES_PATH is set, the
// built-in baseline otherwise.
func newRuleStore(cfg config.Server, log *slog.Logger) *store.Store {
	var loader store.Loader
	if cfg.RulesPath != "" {
		loader = store.FileLoader{Path: cfg.RulesPath}
	} else {
		loader = store.StaticLoader(rules.Builtin())
	}
	return store.New(loader, log)
}

// newGenerator builds the AI report generator. Without an API key the
// assembler serves the deterministic fallback for every request.
func newGenerator(cfg config.Server, log *slog.Logger) report.Generator {
	if cfg.AI.APIKey == "" {
		log.Info("AI report generation disabled, using deterministic fallback")
		return nil
	}

	client := llm.NewClient(
		llm.Endpoint{
			Provider: cfg.AI.Provider,
			BaseURL:  cfg.AI.BaseURL,
			Model:    cfg.AI.Model,
			APIKey:   cfg.AI.APIKey,
		},
		llm.WithLogger(log),
	)
	return llm.NewReportGenerator(client, log)
}

func newRouter(cfg config.Server, svc *service.Service, m *assessmentmetrics.Metrics, healthHandler *health.Handler, log *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.BodyLimit(maxBodyBytes))
	r.Use(middleware.Logger(log))
	r.Use(middleware.Timeout(requestTimeout))

	healthHandler.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	assessHandler := handler.New(svc, m, log)

	r.Group(func(api chi.Router) {
		api.Use(middleware.ContentTypeJSON)
		assessHandler.Register(api)
	})

	r.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdminToken(cfg.AdminToken, log))
		assessHandler.RegisterAdmin(admin)
	})

	return r
}
