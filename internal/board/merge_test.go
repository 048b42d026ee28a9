package board

import (
	"testing"
	"time"

	"airside-ops/transferdesk/internal/models/entities"
)

func TestUpdateOrAppendIncomingReplacesOnNaturalKey(t *testing.T) {
	b := New()
	id := b.AddIncoming(incomingAt("BA123", base))

	upd := incomingAt("BA123", base)
	upd.Carousel = "7"
	got := b.UpdateOrAppendIncoming(upd)

	if got != id {
		t.Errorf("Expected replacement to keep id %s, got %s", id, got)
	}
	if in, _, _ := b.Counts(); in != 1 {
		t.Errorf("Expected 1 incoming flight, got %d", in)
	}
	f, _ := b.FindIncoming(id)
	if f.Carousel != "7" {
		t.Errorf("New record's fields should win, carousel = %q", f.Carousel)
	}
}

func TestUpdateOrAppendIncomingAppendsOnNewKey(t *testing.T) {
	b := New()
	b.AddIncoming(incomingAt("BA123", base))

	// Even a 30-second drift is a different flight on the authoritative
	// board; only the staging list tolerates drift.
	b.UpdateOrAppendIncoming(incomingAt("BA123", base.Add(30*time.Second)))

	if in, _, _ := b.Counts(); in != 2 {
		t.Errorf("Expected 2 incoming flights, got %d", in)
	}
}

func TestUpdateOrAppendIncomingKeepsPosition(t *testing.T) {
	b := New()
	b.AddIncoming(incomingAt("BA1", base))
	b.AddIncoming(incomingAt("BA2", base.Add(time.Hour)))
	b.AddIncoming(incomingAt("BA3", base.Add(2*time.Hour)))

	upd := incomingAt("BA2", base.Add(time.Hour))
	upd.Notes = "updated"
	b.UpdateOrAppendIncoming(upd)

	got := b.Incoming()
	if got[1].FlightNumber != "BA2" || got[1].Notes != "updated" {
		t.Errorf("In-place replacement changed ordering: %v", got)
	}
}

func TestMergePreservesLinksAcrossReimport(t *testing.T) {
	b := New()
	inID := b.AddIncoming(incomingAt("BA123", base))
	outID, _ := b.LinkBags(inID, outgoingAt("LH900", base.Add(2*time.Hour)), 5)

	// Link-less re-import of both sides, as a scrape pass would produce.
	b.UpdateOrAppendOutgoing(outgoingAt("LH900", base.Add(2*time.Hour)))
	b.UpdateOrAppendIncoming(incomingAt("BA123", base))

	in, _ := b.FindIncoming(inID)
	if in.LinkTo(outID) == nil {
		t.Fatal("Re-import wiped the link set")
	}
	out, _ := b.FindOutgoing(outID)
	if out.BagsFromIncoming["BA123"] != 5 {
		t.Errorf("Mirror entry lost across re-import: %v", out.BagsFromIncoming)
	}
}

func TestImportIsIdempotent(t *testing.T) {
	b := New()
	payloadIn := []entities.IncomingFlight{
		incomingAt("BA1", base),
		incomingAt("BA2", base.Add(time.Hour)),
	}
	payloadOut := []entities.OutgoingFlight{
		outgoingAt("LH1", base.Add(3*time.Hour)),
	}

	for pass := 0; pass < 3; pass++ {
		for _, f := range payloadOut {
			b.UpdateOrAppendOutgoing(f)
		}
		for _, f := range payloadIn {
			b.UpdateOrAppendIncoming(f)
		}
	}

	in, out, _ := b.Counts()
	if in != 2 || out != 1 {
		t.Errorf("Repeated import duplicated flights: %d incoming, %d outgoing", in, out)
	}
}

func TestStagingDedupsWithinTolerance(t *testing.T) {
	s := NewStaging()

	s.UpdateOrAppendIncoming(incomingAt("BA123", base))
	s.UpdateOrAppendIncoming(incomingAt("BA123", base.Add(30*time.Second)))

	if len(s.Incoming) != 1 {
		t.Fatalf("Expected drifted schedule to dedup, got %d entries", len(s.Incoming))
	}
	if !s.Incoming[0].ScheduledTime.Equal(base.Add(30 * time.Second)) {
		t.Error("Later pass should replace the staged entry")
	}

	s.UpdateOrAppendIncoming(incomingAt("BA123", base.Add(90*time.Second)))
	if len(s.Incoming) != 1 {
		t.Errorf("90s is within tolerance of the staged 30s entry, got %d entries", len(s.Incoming))
	}

	s.UpdateOrAppendIncoming(incomingAt("BA123", base.Add(10*time.Minute)))
	if len(s.Incoming) != 2 {
		t.Errorf("Outside tolerance should append, got %d entries", len(s.Incoming))
	}
}

func TestStagingToleranceIsSymmetric(t *testing.T) {
	s := NewStaging()

	s.UpdateOrAppendOutgoing(outgoingAt("LH900", base))
	s.UpdateOrAppendOutgoing(outgoingAt("LH900", base.Add(-45*time.Second)))

	if len(s.Outgoing) != 1 {
		t.Errorf("Earlier schedule within tolerance should dedup, got %d entries", len(s.Outgoing))
	}
}
