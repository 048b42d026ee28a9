package risk

import (
	"testing"
	"time"

	"airside-ops/transferdesk/internal/models/entities"
)

var base = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func linkedPair(gap time.Duration) (entities.IncomingFlight, entities.OutgoingFlight) {
	out := entities.OutgoingFlight{
		ID:            "out-1",
		FlightNumber:  "LH900",
		ScheduledTime: base.Add(gap),
	}
	in := entities.IncomingFlight{
		ID:            "in-1",
		FlightNumber:  "BA123",
		ScheduledTime: base,
		Links:         []entities.Link{{OutgoingID: "out-1", BagCount: 5}},
	}
	return in, out
}

func TestBestTimePrefersActual(t *testing.T) {
	actual := base.Add(25 * time.Minute)

	if got := BestTime(base, &actual); !got.Equal(actual) {
		t.Errorf("Expected actual time, got %v", got)
	}
	if got := BestTime(base, nil); !got.Equal(base) {
		t.Errorf("Expected scheduled time, got %v", got)
	}
}

func TestIsAtRiskThresholdBoundary(t *testing.T) {
	tests := []struct {
		name string
		gap  time.Duration
		want bool
	}{
		{"tight connection", 45 * time.Minute, true},
		{"exactly at threshold", time.Hour, false},
		{"comfortable connection", 2 * time.Hour, false},
		{"departure before arrival", -30 * time.Minute, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, out := linkedPair(tc.gap)
			if got := IsAtRisk(&in, &out, DefaultThreshold); got != tc.want {
				t.Errorf("Gap %v: expected %v, got %v", tc.gap, tc.want, got)
			}
		})
	}
}

func TestIsAtRiskUsesActualTimes(t *testing.T) {
	// Scheduled gap is comfortable, but a late arrival squeezes it.
	in, out := linkedPair(2 * time.Hour)
	late := base.Add(90 * time.Minute)
	in.ActualTime = &late

	if !IsAtRisk(&in, &out, DefaultThreshold) {
		t.Error("Late actual arrival should put the transfer at risk")
	}

	// An early departure recorded on the outgoing side does the same.
	in.ActualTime = nil
	early := base.Add(30 * time.Minute)
	out.ActualTime = &early
	if !IsAtRisk(&in, &out, DefaultThreshold) {
		t.Error("Early actual departure should put the transfer at risk")
	}
}

func TestIsAtRiskRequiresLinkAndLiveOutgoing(t *testing.T) {
	in, out := linkedPair(30 * time.Minute)

	out.Cancelled = true
	if IsAtRisk(&in, &out, DefaultThreshold) {
		t.Error("Cancelled outgoing flight is never at risk")
	}

	out.Cancelled = false
	in.Links = nil
	if IsAtRisk(&in, &out, DefaultThreshold) {
		t.Error("Unlinked pair is never at risk")
	}
}

func TestUrgentOutgoingFlights(t *testing.T) {
	arrived := base.Add(10 * time.Minute)

	incoming := []entities.IncomingFlight{
		{
			ID: "in-1", FlightNumber: "BA1", ScheduledTime: base, ActualTime: &arrived,
			Links: []entities.Link{{OutgoingID: "out-tight", BagCount: 4}},
		},
		{
			// No actual arrival yet: never drives the alert.
			ID: "in-2", FlightNumber: "BA2", ScheduledTime: base,
			Links: []entities.Link{{OutgoingID: "out-loose", BagCount: 2}},
		},
	}
	outgoing := []entities.OutgoingFlight{
		{
			ID: "out-tight", FlightNumber: "LH1", ScheduledTime: base.Add(40 * time.Minute),
			BagsFromIncoming: map[string]int{"BA1": 4},
		},
		{
			ID: "out-loose", FlightNumber: "LH2", ScheduledTime: base.Add(30 * time.Minute),
			BagsFromIncoming: map[string]int{"BA2": 2},
		},
	}

	urgent := UrgentOutgoingFlights(outgoing, incoming, DefaultThreshold)
	if len(urgent) != 1 || urgent[0].ID != "out-tight" {
		t.Fatalf("Expected only out-tight, got %+v", urgent)
	}
}

func TestUrgentSkipsCancelledAndZeroBagFlights(t *testing.T) {
	arrived := base.Add(5 * time.Minute)
	incoming := []entities.IncomingFlight{
		{
			ID: "in-1", FlightNumber: "BA1", ScheduledTime: base, ActualTime: &arrived,
			Links: []entities.Link{
				{OutgoingID: "out-cancelled", BagCount: 4},
				{OutgoingID: "out-empty", BagCount: 0},
			},
		},
	}
	outgoing := []entities.OutgoingFlight{
		{
			ID: "out-cancelled", ScheduledTime: base.Add(20 * time.Minute), Cancelled: true,
			BagsFromIncoming: map[string]int{"BA1": 4},
		},
		{
			ID: "out-empty", ScheduledTime: base.Add(20 * time.Minute),
			BagsFromIncoming: map[string]int{"BA1": 0},
		},
	}

	if urgent := UrgentOutgoingFlights(outgoing, incoming, DefaultThreshold); len(urgent) != 0 {
		t.Errorf("Expected no urgent flights, got %+v", urgent)
	}
}

func TestUrgentSkipsCancelledIncoming(t *testing.T) {
	arrived := base.Add(5 * time.Minute)
	incoming := []entities.IncomingFlight{
		{
			ID: "in-1", FlightNumber: "BA1", ScheduledTime: base, ActualTime: &arrived,
			Cancelled: true,
			Links:     []entities.Link{{OutgoingID: "out-1", BagCount: 4}},
		},
	}
	outgoing := []entities.OutgoingFlight{
		{
			ID: "out-1", ScheduledTime: base.Add(20 * time.Minute),
			BagsFromIncoming: map[string]int{"BA1": 4},
		},
	}

	if urgent := UrgentOutgoingFlights(outgoing, incoming, DefaultThreshold); len(urgent) != 0 {
		t.Errorf("Cancelled incoming flight should not drive the alert, got %+v", urgent)
	}
}
