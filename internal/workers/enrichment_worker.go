package workers

import (
	"context"
	"time"

	"airside-ops/transferdesk/internal/logging"
	"airside-ops/transferdesk/internal/services"
)

// EnrichmentRequest asks the worker to scrape bag info for one flight.
type EnrichmentRequest struct {
	FlightID string
}

// EnrichmentQueue feeds the enrichment worker. Senders should use a
// non-blocking send and drop the request when the queue is full; a missed
// enrichment pass is harmless.
var EnrichmentQueue = make(chan EnrichmentRequest, 100)

// EnrichmentWorker drains the queue, scraping and applying results through
// the enrichment service. Each fetch gets its own timeout so one slow page
// load cannot stall the queue for long.
func EnrichmentWorker(svc *services.EnrichmentService) {
	logging.Info("Enrichment worker started")
	for req := range EnrichmentQueue {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		svc.FetchAndApply(ctx, req.FlightID)
		cancel()
	}
}

// RequestEnrichment enqueues a scrape for the flight, dropping the request
// when the queue is full.
func RequestEnrichment(flightID string) bool {
	select {
	case EnrichmentQueue <- EnrichmentRequest{FlightID: flightID}:
		return true
	default:
		return false
	}
}
