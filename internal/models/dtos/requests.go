package dtos

import (
	"time"

	"airside-ops/transferdesk/internal/models/entities"
)

// IncomingFlightRequest is the add/edit/import payload for an arriving
// flight. Links may only be supplied by the sync importer; interactive link
// edits go through the link endpoints.
type IncomingFlightRequest struct {
	ID            string     `json:"id,omitempty"`
	FlightNumber  string     `json:"flight_number"`
	Terminal      string     `json:"terminal"`
	Origin        string     `json:"origin"`
	ScheduledTime time.Time  `json:"scheduled_time"`
	ActualTime    *time.Time `json:"actual_time,omitempty"`
	ExpectedTime  *time.Time `json:"expected_time,omitempty"`
	Date          *time.Time `json:"date,omitempty"`

	BagAvailableTime *time.Time `json:"bag_available_time,omitempty"`
	Carousel         string     `json:"carousel,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	Cancelled        bool       `json:"cancelled"`

	CollectedTime             *time.Time `json:"collected_time,omitempty"`
	DeliveredTime             *time.Time `json:"delivered_time,omitempty"`
	ScreeningBagCount         *int       `json:"screening_bag_count,omitempty"`
	ScreeningStartTime        *time.Time `json:"screening_start_time,omitempty"`
	ScreeningEndTime          *time.Time `json:"screening_end_time,omitempty"`
	DeliveredToScreeningTime  *time.Time `json:"delivered_to_screening_time,omitempty"`
	DeliveredNonScreeningTime *time.Time `json:"delivered_non_screening_time,omitempty"`

	Links []entities.Link `json:"links,omitempty"`
}

// ToEntity converts the request to the domain shape. A missing Date defaults
// to the scheduled time's calendar day.
func (r *IncomingFlightRequest) ToEntity() entities.IncomingFlight {
	date := r.ScheduledTime
	if r.Date != nil {
		date = *r.Date
	}
	return entities.IncomingFlight{
		ID:                        r.ID,
		FlightNumber:              r.FlightNumber,
		Terminal:                  r.Terminal,
		Origin:                    r.Origin,
		ScheduledTime:             r.ScheduledTime,
		ActualTime:                r.ActualTime,
		ExpectedTime:              r.ExpectedTime,
		Date:                      date,
		BagAvailableTime:          r.BagAvailableTime,
		Carousel:                  r.Carousel,
		Notes:                     r.Notes,
		Cancelled:                 r.Cancelled,
		CollectedTime:             r.CollectedTime,
		DeliveredTime:             r.DeliveredTime,
		ScreeningBagCount:         r.ScreeningBagCount,
		ScreeningStartTime:        r.ScreeningStartTime,
		ScreeningEndTime:          r.ScreeningEndTime,
		DeliveredToScreeningTime:  r.DeliveredToScreeningTime,
		DeliveredNonScreeningTime: r.DeliveredNonScreeningTime,
		Links:                     r.Links,
	}
}

// OutgoingFlightRequest is the add/edit/import payload for a departing
// flight.
type OutgoingFlightRequest struct {
	ID            string     `json:"id,omitempty"`
	FlightNumber  string     `json:"flight_number"`
	Terminal      string     `json:"terminal"`
	Destination   string     `json:"destination"`
	ScheduledTime time.Time  `json:"scheduled_time"`
	ActualTime    *time.Time `json:"actual_time,omitempty"`
	ExpectedTime  *time.Time `json:"expected_time,omitempty"`
	Cancelled     bool       `json:"cancelled"`
}

func (r *OutgoingFlightRequest) ToEntity() entities.OutgoingFlight {
	return entities.OutgoingFlight{
		ID:            r.ID,
		FlightNumber:  r.FlightNumber,
		Terminal:      r.Terminal,
		Destination:   r.Destination,
		ScheduledTime: r.ScheduledTime,
		ActualTime:    r.ActualTime,
		ExpectedTime:  r.ExpectedTime,
		Cancelled:     r.Cancelled,
	}
}

// LinkBagsRequest links an incoming flight to an outgoing flight. The
// outgoing flight is identified by natural key and created on the fly when
// it isn't on the board yet.
type LinkBagsRequest struct {
	OutgoingFlightNumber string    `json:"outgoing_flight_number"`
	Terminal             string    `json:"terminal"`
	Destination          string    `json:"destination,omitempty"`
	ScheduledTime        time.Time `json:"scheduled_time"`
	BagCount             int       `json:"bag_count"`
}

// RelinkRequest updates the bag count on an existing link.
type RelinkRequest struct {
	BagCount int `json:"bag_count"`
}

// MarkRequest carries an optional timestamp for a workflow transition; a
// missing At means "now".
type MarkRequest struct {
	At       *time.Time `json:"at,omitempty"`
	BagCount *int       `json:"bag_count,omitempty"`
}

// CancelRequest flips a flight's cancelled flag.
type CancelRequest struct {
	Cancelled bool `json:"cancelled"`
}

// EnrichmentCallbackRequest is what the scraping subsystem posts back when a
// result arrives.
type EnrichmentCallbackRequest struct {
	FlightID         string     `json:"flight_id"`
	BagAvailableTime *time.Time `json:"bag_available_time,omitempty"`
	Carousel         string     `json:"carousel,omitempty"`
}

// ImportRequest is a bulk merge of externally sourced flights into the
// board, deduplicated by natural key.
type ImportRequest struct {
	Incoming []IncomingFlightRequest `json:"incoming,omitempty"`
	Outgoing []OutgoingFlightRequest `json:"outgoing,omitempty"`
}
