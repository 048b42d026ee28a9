package entities

import (
	"strings"
	"time"
)

// IncomingFlight is an arriving flight tracked for one operational day,
// together with the transfer links that hang off it.
type IncomingFlight struct {
	ID            string     `json:"id"`
	FlightNumber  string     `json:"flight_number"`
	Terminal      string     `json:"terminal"`
	Origin        string     `json:"origin"`
	ScheduledTime time.Time  `json:"scheduled_time"`
	ActualTime    *time.Time `json:"actual_time,omitempty"`
	ExpectedTime  *time.Time `json:"expected_time,omitempty"`

	// Date is the operational day the flight belongs to (day granularity).
	// It is independent of ScheduledTime's own date so that late-night
	// arrivals can be pinned to the day the shift cares about.
	Date time.Time `json:"date"`

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

	// Links is a derived view of the link table, rebuilt by the board after
	// every mutation. One entry per linked outgoing flight.
	Links []Link `json:"links,omitempty"`
}

// OutgoingFlight is a departing flight that receives transfer bags.
type OutgoingFlight struct {
	ID            string     `json:"id"`
	FlightNumber  string     `json:"flight_number"`
	Terminal      string     `json:"terminal"`
	Destination   string     `json:"destination"`
	ScheduledTime time.Time  `json:"scheduled_time"`
	ActualTime    *time.Time `json:"actual_time,omitempty"`
	ExpectedTime  *time.Time `json:"expected_time,omitempty"`
	Cancelled     bool       `json:"cancelled"`

	// BagsFromIncoming maps incoming flight number to bag count. Keyed by
	// flight number rather than id so the entries survive an incoming
	// flight being recreated during a dedup merge. Derived from the link
	// table, rebuilt after every mutation; also the persisted wire shape.
	BagsFromIncoming map[string]int `json:"bags_from_incoming,omitempty"`
}

// Link is a directed association from one incoming flight to one outgoing
// flight, carrying a bag count and the MAG (same-terminal handling) flag.
type Link struct {
	OutgoingID  string `json:"outgoing_id"`
	BagCount    int    `json:"bag_count"`
	MAGTransfer bool   `json:"mag_transfer"`
}

// NaturalKey identifies a flight across independent data sources that do not
// share ids. Stable across re-imports of the same physical flight.
type NaturalKey struct {
	FlightNumber  string
	ScheduledTime time.Time
}

func (f *IncomingFlight) NaturalKey() NaturalKey {
	return NaturalKey{FlightNumber: f.FlightNumber, ScheduledTime: f.ScheduledTime}
}

func (f *OutgoingFlight) NaturalKey() NaturalKey {
	return NaturalKey{FlightNumber: f.FlightNumber, ScheduledTime: f.ScheduledTime}
}

// LinkedBagTotal sums the bag counts mirrored onto this outgoing flight.
func (f *OutgoingFlight) LinkedBagTotal() int {
	total := 0
	for _, n := range f.BagsFromIncoming {
		total += n
	}
	return total
}

// LinkTo returns the link from this incoming flight to the given outgoing
// flight, or nil when no such link exists.
func (f *IncomingFlight) LinkTo(outgoingID string) *Link {
	for i := range f.Links {
		if f.Links[i].OutgoingID == outgoingID {
			return &f.Links[i]
		}
	}
	return nil
}

// NormalizeTerminal uppercases and trims a terminal label so "t2" and "T2 "
// compare equal everywhere terminals are matched.
func NormalizeTerminal(terminal string) string {
	return strings.ToUpper(strings.TrimSpace(terminal))
}

// FlightKind tags the variant held by a FlightRef.
type FlightKind int

const (
	KindIncoming FlightKind = iota
	KindOutgoing
)

// FlightRef is a tagged variant over the two flight types, used wherever a
// caller needs to treat either side uniformly (display time, status badges)
// without resorting to runtime type inspection.
type FlightRef struct {
	Kind     FlightKind
	Incoming *IncomingFlight
	Outgoing *OutgoingFlight
}

func IncomingRef(f *IncomingFlight) FlightRef {
	return FlightRef{Kind: KindIncoming, Incoming: f}
}

func OutgoingRef(f *OutgoingFlight) FlightRef {
	return FlightRef{Kind: KindOutgoing, Outgoing: f}
}

// Times returns the scheduled/actual/expected triple plus the cancelled flag
// for either variant.
func (r FlightRef) Times() (scheduled time.Time, actual, expected *time.Time, cancelled bool) {
	switch r.Kind {
	case KindIncoming:
		return r.Incoming.ScheduledTime, r.Incoming.ActualTime, r.Incoming.ExpectedTime, r.Incoming.Cancelled
	case KindOutgoing:
		return r.Outgoing.ScheduledTime, r.Outgoing.ActualTime, r.Outgoing.ExpectedTime, r.Outgoing.Cancelled
	}
	return time.Time{}, nil, nil, false
}
