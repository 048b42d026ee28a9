// Package stats computes the dashboard counters for one operational day.
package stats

import (
	"time"

	"airside-ops/transferdesk/internal/models/entities"
	"airside-ops/transferdesk/internal/status"
)

// DayStats are the workflow counters shown on the dashboard.
type DayStats struct {
	TotalBags          int `json:"total_bags"`
	PendingCollections int `json:"pending_collections"`
	PendingDeliveries  int `json:"pending_deliveries"`
	ActiveWorkflows    int `json:"active_workflows"`
	CompletedWorkflows int `json:"completed_workflows"`
}

// ForDay computes the counters over the flights belonging to the given day.
// Incoming flights are filtered on their operational Date field; pending
// collections are the flights whose derived status is ready (bags available,
// not yet collected), pending deliveries those already collected.
func ForDay(incoming []entities.IncomingFlight, day, now time.Time) DayStats {
	var s DayStats
	for i := range incoming {
		f := &incoming[i]
		if !SameDay(f.Date, day) {
			continue
		}
		for _, l := range f.Links {
			s.TotalBags += l.BagCount
		}
		switch status.ForIncoming(f, now) {
		case status.IncomingReady:
			s.PendingCollections++
		case status.IncomingCollected:
			s.PendingDeliveries++
		case status.IncomingDelivered:
			s.CompletedWorkflows++
		}
	}
	s.ActiveWorkflows = s.PendingCollections + s.PendingDeliveries
	return s
}

// TodaysIncoming filters incoming flights by their operational Date field.
func TodaysIncoming(incoming []entities.IncomingFlight, day time.Time) []entities.IncomingFlight {
	var out []entities.IncomingFlight
	for _, f := range incoming {
		if SameDay(f.Date, day) {
			out = append(out, f)
		}
	}
	return out
}

// TodaysOutgoing filters outgoing flights by scheduled time within
// [startOfDay, startOfNextDay). Outgoing flights carry no separate Date
// field, so the schedule is the day filter.
func TodaysOutgoing(outgoing []entities.OutgoingFlight, day time.Time) []entities.OutgoingFlight {
	start := StartOfDay(day)
	end := start.AddDate(0, 0, 1)
	var out []entities.OutgoingFlight
	for _, f := range outgoing {
		if !f.ScheduledTime.Before(start) && f.ScheduledTime.Before(end) {
			out = append(out, f)
		}
	}
	return out
}

// StartOfDay truncates an instant to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
