package dtos

import (
	"time"

	"airside-ops/transferdesk/internal/models/entities"
	"airside-ops/transferdesk/internal/stats"
)

// APIResponse is the standard envelope for every JSON endpoint.
type APIResponse[T any] struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
	Data      *T        `json:"data,omitempty"`
}

// IncomingFlightView is an incoming flight with its derived presentation
// fields attached.
type IncomingFlightView struct {
	entities.IncomingFlight
	Status      string `json:"status"`
	DisplayTime string `json:"display_time"`
}

// OutgoingFlightView is an outgoing flight with its derived presentation
// fields attached.
type OutgoingFlightView struct {
	entities.OutgoingFlight
	Status      string `json:"status"`
	DisplayTime string `json:"display_time"`
	TotalBags   int    `json:"total_bags"`
}

// BoardResponse is the full working set with derived fields, what the list
// screens render from.
type BoardResponse struct {
	Incoming []IncomingFlightView `json:"incoming"`
	Outgoing []OutgoingFlightView `json:"outgoing"`
}

// LinkResponse reports the effective outgoing id after a link operation.
type LinkResponse struct {
	IncomingID string `json:"incoming_id"`
	OutgoingID string `json:"outgoing_id"`
	BagCount   int    `json:"bag_count"`
}

// DashboardResponse combines the day counters with the urgent set.
type DashboardResponse struct {
	Stats  stats.DayStats       `json:"stats"`
	Urgent []OutgoingFlightView `json:"urgent"`
}

// ImportResponse summarizes a bulk merge.
type ImportResponse struct {
	IncomingMerged int `json:"incoming_merged"`
	OutgoingMerged int `json:"outgoing_merged"`
}

// ReportTransfer is one resolved link inside a report row.
type ReportTransfer struct {
	Outgoing    entities.OutgoingFlight `json:"outgoing"`
	BagCount    int                     `json:"bag_count"`
	MAGTransfer bool                    `json:"mag_transfer"`
	AtRisk      bool                    `json:"at_risk"`
}

// ReportFlight is one incoming flight in the report, with its transfers.
type ReportFlight struct {
	Incoming    entities.IncomingFlight `json:"incoming"`
	Status      string                  `json:"status"`
	DisplayTime string                  `json:"display_time"`
	Transfers   []ReportTransfer        `json:"transfers"`
}

// TerminalGroup groups report rows by terminal.
type TerminalGroup struct {
	Terminal string         `json:"terminal"`
	Flights  []ReportFlight `json:"flights"`
}

// DayReport is the read-only snapshot handed to the external PDF renderer:
// today's incoming flights grouped by terminal, links sorted and resolved.
type DayReport struct {
	Day         string          `json:"day"`
	GeneratedAt time.Time       `json:"generated_at"`
	Terminals   []TerminalGroup `json:"terminals"`
	Stats       stats.DayStats  `json:"stats"`
}
