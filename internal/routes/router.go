package routes

import (
	"context"
	"net/http"
	"time"

	"airside-ops/transferdesk/internal/api"
	"airside-ops/transferdesk/internal/config"
	"airside-ops/transferdesk/internal/db"
	"airside-ops/transferdesk/internal/logging"
	"airside-ops/transferdesk/internal/metrics"
	"airside-ops/transferdesk/internal/middleware"
	"airside-ops/transferdesk/internal/workers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RegisterRoutes builds the router and wires the dependency graph behind it.
func RegisterRoutes(cfg *config.Config, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, cfg.AppVersion, upSince))

	deps, err := api.InitDependencies(cfg, metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// Load the persisted working set onto the board before serving.
	if err := deps.Services.Snapshot.LoadWorkingSet(context.Background()); err != nil {
		logging.Warn("Initial snapshot load failed, starting with empty board", "error", err.Error())
	}

	if deps.Services.Enrichment.Provider != nil {
		workers.InitWorkers(deps.Services.Enrichment)
	}

	RegisterAPIRoutes(r, deps)

	logging.Info("Router initialized",
		"at_risk_threshold", deps.Cfg.AtRiskThreshold.String(),
		"enrichment_enabled", deps.Services.Enrichment.Provider != nil,
	)
	return r
}
