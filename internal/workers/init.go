package workers

import (
	"airside-ops/transferdesk/internal/services"
)

// InitWorkers starts the background workers. Only started when an arrivals
// page URL is configured; everything else in the service is synchronous.
func InitWorkers(enrichment *services.EnrichmentService) {
	go EnrichmentWorker(enrichment)
}
