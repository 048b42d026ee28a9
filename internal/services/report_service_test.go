package services

import (
	"testing"
	"time"

	"airside-ops/transferdesk/internal/board"
	"airside-ops/transferdesk/internal/models/entities"
)

func TestBuildDayReportGroupsByTerminal(t *testing.T) {
	sched := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	b := board.New()

	t2Late := b.AddIncoming(entities.IncomingFlight{
		FlightNumber: "BA2", Terminal: "T2", ScheduledTime: sched.Add(2 * time.Hour), Date: sched,
	})
	b.AddIncoming(entities.IncomingFlight{
		FlightNumber: "BA1", Terminal: "T1", ScheduledTime: sched, Date: sched,
	})
	b.AddIncoming(entities.IncomingFlight{
		FlightNumber: "BA3", Terminal: "T2", ScheduledTime: sched.Add(time.Hour), Date: sched,
	})
	// Tight connection off the T2 flight.
	if _, err := b.LinkBags(t2Late, entities.OutgoingFlight{
		FlightNumber: "LH9", Terminal: "T2", ScheduledTime: sched.Add(2*time.Hour + 30*time.Minute),
	}, 7); err != nil {
		t.Fatalf("LinkBags failed: %v", err)
	}

	svc := NewReportService(b, time.Hour)
	report := svc.BuildDayReport(sched, sched.Add(3*time.Hour))

	if report.Day != "2026-03-14" {
		t.Errorf("Expected day 2026-03-14, got %s", report.Day)
	}
	if len(report.Terminals) != 2 {
		t.Fatalf("Expected 2 terminal groups, got %d", len(report.Terminals))
	}
	if report.Terminals[0].Terminal != "T1" || report.Terminals[1].Terminal != "T2" {
		t.Errorf("Terminals not sorted: %s, %s", report.Terminals[0].Terminal, report.Terminals[1].Terminal)
	}

	t2 := report.Terminals[1]
	if len(t2.Flights) != 2 {
		t.Fatalf("Expected 2 flights in T2, got %d", len(t2.Flights))
	}
	if t2.Flights[0].Incoming.FlightNumber != "BA3" {
		t.Errorf("Flights not sorted by schedule within terminal: %s first", t2.Flights[0].Incoming.FlightNumber)
	}

	linked := t2.Flights[1]
	if len(linked.Transfers) != 1 {
		t.Fatalf("Expected 1 transfer on BA2, got %d", len(linked.Transfers))
	}
	tr := linked.Transfers[0]
	if tr.BagCount != 7 || !tr.MAGTransfer {
		t.Errorf("Transfer fields wrong: %+v", tr)
	}
	if !tr.AtRisk {
		t.Error("30-minute connection under a 1h threshold should be flagged at risk")
	}
	if report.Stats.TotalBags != 7 {
		t.Errorf("Expected 7 bags in stats, got %d", report.Stats.TotalBags)
	}
}

func TestBuildDayReportExcludesOtherDays(t *testing.T) {
	sched := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	b := board.New()
	b.AddIncoming(entities.IncomingFlight{
		FlightNumber: "BA1", Terminal: "T1", ScheduledTime: sched, Date: sched,
	})
	b.AddIncoming(entities.IncomingFlight{
		FlightNumber: "OLD1", Terminal: "T1",
		ScheduledTime: sched.AddDate(0, 0, -1), Date: sched.AddDate(0, 0, -1),
	})

	report := NewReportService(b, 0).BuildDayReport(sched, sched)

	if len(report.Terminals) != 1 || len(report.Terminals[0].Flights) != 1 {
		t.Fatalf("Unexpected grouping: %+v", report.Terminals)
	}
	if report.Terminals[0].Flights[0].Incoming.FlightNumber != "BA1" {
		t.Error("Yesterday's flight leaked into the report")
	}
}
