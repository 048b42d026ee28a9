package providers

import (
	"context"
	"time"
)

// BagInfo is the optional enrichment a scrape pass can supply for one
// arriving flight. Either field may be missing; the source is best-effort.
type BagInfo struct {
	FlightNumber     string     `json:"flight_number"`
	BagAvailableTime *time.Time `json:"bag_available_time,omitempty"`
	Carousel         string     `json:"carousel,omitempty"`
}

// EnrichmentProvider is the boundary to the website-scraping subsystem. It
// carries no correctness weight: a nil result or an error just means the
// flight keeps whatever data it already had.
type EnrichmentProvider interface {
	// FetchBagInfo returns scraped bag info for a flight number on the
	// given day, or nil when the page doesn't mention it.
	FetchBagInfo(ctx context.Context, flightNumber string, day time.Time) (*BagInfo, error)

	// GetProviderType returns the provider type identifier.
	GetProviderType() string
}
