package services

import (
	"context"
	"time"

	"airside-ops/transferdesk/internal/board"
	"airside-ops/transferdesk/internal/logging"
	"airside-ops/transferdesk/internal/metrics"
	"airside-ops/transferdesk/internal/providers"
)

// EnrichmentService fetches best-effort bag info for a flight and applies it
// to the board. Results for flights that have since been removed are
// discarded; the scrape source carries no correctness weight.
type EnrichmentService struct {
	Provider providers.EnrichmentProvider
	Board    *board.Board
	Metrics  *metrics.MetricsRegistry
}

func NewEnrichmentService(provider providers.EnrichmentProvider, b *board.Board, m *metrics.MetricsRegistry) *EnrichmentService {
	return &EnrichmentService{
		Provider: provider,
		Board:    b,
		Metrics:  m,
	}
}

// FetchAndApply scrapes bag info for the flight and writes it back as an
// ordinary field update. Missing flight, missing row and scrape failure all
// end the same way: the flight keeps what it had.
func (svc *EnrichmentService) FetchAndApply(ctx context.Context, flightID string) {
	if svc.Provider == nil {
		return
	}
	flight, ok := svc.Board.FindIncoming(flightID)
	if !ok {
		svc.discarded()
		return
	}

	start := time.Now()
	info, err := svc.Provider.FetchBagInfo(ctx, flight.FlightNumber, flight.Date)
	if svc.Metrics != nil {
		svc.Metrics.ScrapeFetchDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		svc.outcome("error")
		logging.Warn("Enrichment fetch failed",
			"flight_number", flight.FlightNumber,
			"provider", svc.Provider.GetProviderType(),
			"error", err.Error(),
		)
		return
	}
	if info == nil {
		svc.outcome("miss")
		return
	}
	svc.outcome("hit")
	svc.Apply(flightID, info.BagAvailableTime, info.Carousel)
}

// Apply writes an enrichment result onto the matching flight, or drops it
// when the flight no longer exists.
func (svc *EnrichmentService) Apply(flightID string, bagAvailable *time.Time, carousel string) {
	if svc.Board.ApplyEnrichment(flightID, bagAvailable, carousel) {
		if svc.Metrics != nil {
			svc.Metrics.EnrichmentApplied.Inc()
		}
		return
	}
	svc.discarded()
}

func (svc *EnrichmentService) outcome(label string) {
	if svc.Metrics != nil {
		svc.Metrics.EnrichmentFetches.WithLabelValues(label).Inc()
	}
}

func (svc *EnrichmentService) discarded() {
	if svc.Metrics != nil {
		svc.Metrics.EnrichmentDiscarded.Inc()
	}
}
