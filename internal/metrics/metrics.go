package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for transferdesk.
type MetricsRegistry struct {
	// HTTP metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Board metrics
	IncomingFlightsTracked prometheus.Gauge
	OutgoingFlightsTracked prometheus.Gauge
	LinksActive            prometheus.Gauge
	UrgentOutgoing         prometheus.Gauge

	// Sync and enrichment metrics
	SnapshotsApplied    prometheus.Counter
	SnapshotsArchived   prometheus.Counter
	EnrichmentFetches   prometheus.CounterVec
	EnrichmentApplied   prometheus.Counter
	EnrichmentDiscarded prometheus.Counter
	ScrapeFetchDuration prometheus.Histogram
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transferdesk_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transferdesk_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "transferdesk_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		IncomingFlightsTracked: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "transferdesk_incoming_flights_tracked",
			Help: "Incoming flights currently on the board",
		}),
		OutgoingFlightsTracked: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "transferdesk_outgoing_flights_tracked",
			Help: "Outgoing flights currently on the board",
		}),
		LinksActive: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "transferdesk_links_active",
			Help: "Transfer links currently on the board",
		}),
		UrgentOutgoing: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "transferdesk_urgent_outgoing_flights",
			Help: "Outgoing flights currently flagged urgent by the risk engine",
		}),

		SnapshotsApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transferdesk_snapshots_applied_total",
			Help: "Working-set snapshots applied from the sync store",
		}),
		SnapshotsArchived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transferdesk_snapshots_archived_total",
			Help: "Day snapshots written to the archive table",
		}),
		EnrichmentFetches: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transferdesk_enrichment_fetches_total",
				Help: "Scrape fetches by outcome",
			},
			[]string{"outcome"},
		),
		EnrichmentApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transferdesk_enrichment_applied_total",
			Help: "Enrichment results applied to a flight on the board",
		}),
		EnrichmentDiscarded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transferdesk_enrichment_discarded_total",
			Help: "Enrichment results discarded because the flight was gone",
		}),
		ScrapeFetchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "transferdesk_scrape_fetch_duration_seconds",
			Help:    "Arrivals page fetch time in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}
