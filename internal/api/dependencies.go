package api

import (
	"context"

	"airside-ops/transferdesk/internal/board"
	"airside-ops/transferdesk/internal/common"
	"airside-ops/transferdesk/internal/config"
	"airside-ops/transferdesk/internal/db"
	"airside-ops/transferdesk/internal/db/repositories"
	"airside-ops/transferdesk/internal/logging"
	"airside-ops/transferdesk/internal/metrics"
	"airside-ops/transferdesk/internal/providers"
	"airside-ops/transferdesk/internal/services"
)

type Repositories struct {
	Flights *repositories.FlightRepository
	Archive *repositories.SnapshotArchiveRepo
}

type Services struct {
	Cache      common.CacheInterface
	Snapshot   *services.SnapshotService
	Report     *services.ReportService
	Enrichment *services.EnrichmentService
}

type Dependencies struct {
	Cfg      *config.Config
	Board    *board.Board
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires the repositories and services off the shared DB
// handles. The board is the single serialization point every mutating call
// goes through.
func InitDependencies(cfg *config.Config, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	b := board.New()

	repos := &Repositories{
		Flights: repositories.NewFlightRepository(db.PgDB),
	}
	if db.DB != nil {
		repos.Archive = repositories.NewSnapshotArchiveRepo(db.DB)
		if err := repos.Archive.EnsureTable(context.Background()); err != nil {
			logging.Warn("Snapshot archive table unavailable", "error", err.Error())
			repos.Archive = nil
		}
	}

	var cache common.CacheInterface
	if cfg.RedisAddr != "" {
		redisCache, err := common.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		cache = redisCache
	} else {
		cache = common.NewCacheService(cfg.ScrapeCacheTTL, 10*cfg.ScrapeCacheTTL)
	}

	snapshotSvc := services.NewSnapshotService(repos.Flights, repos.Archive, b, metricsReg)
	reportSvc := services.NewReportService(b, cfg.AtRiskThreshold)

	// The enrichment service always exists so the callback endpoint works;
	// the scraping provider is only wired when a page URL is configured.
	var provider providers.EnrichmentProvider
	if cfg.ArrivalsPageURL != "" {
		provider = providers.NewWebEnrichmentProvider(
			cfg.ArrivalsPageURL, cfg.ScrapeRatePerSecond, cfg.ScrapeCacheTTL, cache)
	}
	enrichmentSvc := services.NewEnrichmentService(provider, b, metricsReg)

	return &Dependencies{
		Cfg:   cfg,
		Board: b,
		Repo:  repos,
		Services: &Services{
			Cache:      cache,
			Snapshot:   snapshotSvc,
			Report:     reportSvc,
			Enrichment: enrichmentSvc,
		},
		Metrics: metricsReg,
	}, nil
}
