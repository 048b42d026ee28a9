package board

import (
	"testing"
	"time"

	"airside-ops/transferdesk/internal/models/entities"
)

var base = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func incomingAt(num string, sched time.Time) entities.IncomingFlight {
	return entities.IncomingFlight{
		FlightNumber:  num,
		Terminal:      "T1",
		Origin:        "AMS",
		ScheduledTime: sched,
		Date:          sched,
	}
}

func outgoingAt(num string, sched time.Time) entities.OutgoingFlight {
	return entities.OutgoingFlight{
		FlightNumber:  num,
		Terminal:      "T1",
		Destination:   "JFK",
		ScheduledTime: sched,
	}
}

func TestAddIncomingAssignsIDAndNormalizesTerminal(t *testing.T) {
	b := New()

	f := incomingAt("BA123", base)
	f.Terminal = " t2 "
	id := b.AddIncoming(f)

	if id == "" {
		t.Fatal("Expected a generated id")
	}
	got, ok := b.FindIncoming(id)
	if !ok {
		t.Fatal("Flight not found after add")
	}
	if got.Terminal != "T2" {
		t.Errorf("Expected terminal T2, got %q", got.Terminal)
	}
}

func TestFindIncomingReturnsCopy(t *testing.T) {
	b := New()
	id := b.AddIncoming(incomingAt("BA123", base))
	outID, err := b.LinkBags(id, outgoingAt("LH900", base.Add(2*time.Hour)), 5)
	if err != nil {
		t.Fatalf("LinkBags failed: %v", err)
	}

	got, _ := b.FindIncoming(id)
	got.FlightNumber = "mutated"
	got.Links[0].BagCount = 999

	again, _ := b.FindIncoming(id)
	if again.FlightNumber != "BA123" {
		t.Error("Mutating a returned flight leaked into the board")
	}
	if again.LinkTo(outID).BagCount != 5 {
		t.Error("Mutating a returned link slice leaked into the board")
	}
}

func TestRemoveIncomingCascadesLinks(t *testing.T) {
	b := New()
	id := b.AddIncoming(incomingAt("BA123", base))
	outID, _ := b.LinkBags(id, outgoingAt("LH900", base.Add(2*time.Hour)), 7)

	b.RemoveIncoming(id)

	if _, ok := b.FindIncoming(id); ok {
		t.Fatal("Flight still present after removal")
	}
	out, ok := b.FindOutgoing(outID)
	if !ok {
		t.Fatal("Outgoing flight should survive the cascade")
	}
	if len(out.BagsFromIncoming) != 0 {
		t.Errorf("Expected empty bag map after cascade, got %v", out.BagsFromIncoming)
	}
	if _, _, links := b.Counts(); links != 0 {
		t.Errorf("Expected 0 links after cascade, got %d", links)
	}
}

func TestRemoveOutgoingCascadesLinks(t *testing.T) {
	b := New()
	id := b.AddIncoming(incomingAt("BA123", base))
	outID, _ := b.LinkBags(id, outgoingAt("LH900", base.Add(2*time.Hour)), 7)

	b.RemoveOutgoing(outID)

	in, _ := b.FindIncoming(id)
	if len(in.Links) != 0 {
		t.Errorf("Expected no links after outgoing removal, got %v", in.Links)
	}
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	b := New()
	id := b.AddIncoming(incomingAt("BA123", base))

	b.RemoveIncoming("no-such-id")
	b.RemoveOutgoing("no-such-id")

	if _, ok := b.FindIncoming(id); !ok {
		t.Error("Existing flight disturbed by no-op removal")
	}
}

func TestUpdateIncomingNilLinksPreservesLinkSet(t *testing.T) {
	b := New()
	id := b.AddIncoming(incomingAt("BA123", base))
	outID, _ := b.LinkBags(id, outgoingAt("LH900", base.Add(2*time.Hour)), 4)

	upd := incomingAt("BA123", base)
	upd.ID = id
	upd.Notes = "gate change"
	upd.Links = nil
	if !b.UpdateIncoming(upd) {
		t.Fatal("Update of existing flight returned false")
	}

	got, _ := b.FindIncoming(id)
	if got.Notes != "gate change" {
		t.Errorf("Field update lost: notes = %q", got.Notes)
	}
	if got.LinkTo(outID) == nil {
		t.Error("Nil Links slice on update wiped the link set")
	}
}

func TestUpdateIncomingNonNilLinksReplacesLinkSet(t *testing.T) {
	b := New()
	id := b.AddIncoming(incomingAt("BA123", base))
	outID, _ := b.LinkBags(id, outgoingAt("LH900", base.Add(2*time.Hour)), 4)

	upd := incomingAt("BA123", base)
	upd.ID = id
	upd.Links = []entities.Link{}
	b.UpdateIncoming(upd)

	got, _ := b.FindIncoming(id)
	if got.LinkTo(outID) != nil {
		t.Error("Empty (non-nil) Links slice should clear the link set")
	}
}

func TestReplaceAllRestoresLinksFromIncoming(t *testing.T) {
	b := New()
	out := outgoingAt("LH900", base.Add(2*time.Hour))
	out.ID = "out-1"
	in := incomingAt("BA123", base)
	in.ID = "in-1"
	in.Links = []entities.Link{{OutgoingID: "out-1", BagCount: 9, MAGTransfer: true}}

	b.ReplaceAll([]entities.IncomingFlight{in}, []entities.OutgoingFlight{out})

	got, ok := b.FindOutgoing("out-1")
	if !ok {
		t.Fatal("Outgoing flight missing after ReplaceAll")
	}
	if got.BagsFromIncoming["BA123"] != 9 {
		t.Errorf("Expected mirrored bag count 9, got %v", got.BagsFromIncoming)
	}
}

func TestResetDayClearsEverything(t *testing.T) {
	b := New()
	id := b.AddIncoming(incomingAt("BA123", base))
	b.LinkBags(id, outgoingAt("LH900", base.Add(2*time.Hour)), 3)

	b.ResetDay()

	in, out, links := b.Counts()
	if in != 0 || out != 0 || links != 0 {
		t.Errorf("Expected empty board, got %d/%d/%d", in, out, links)
	}
}

func TestMarkTransitionsSetTimestamps(t *testing.T) {
	b := New()
	id := b.AddIncoming(incomingAt("BA123", base))

	at := base.Add(30 * time.Minute)
	if !b.MarkCollected(id, at) {
		t.Fatal("MarkCollected returned false for existing flight")
	}
	b.MarkDelivered(id, at.Add(10*time.Minute))
	b.MarkScreeningStarted(id, at, 12)
	b.MarkScreeningEnded(id, at.Add(20*time.Minute))

	got, _ := b.FindIncoming(id)
	if got.CollectedTime == nil || !got.CollectedTime.Equal(at) {
		t.Error("CollectedTime not recorded")
	}
	if got.DeliveredTime == nil {
		t.Error("DeliveredTime not recorded")
	}
	if got.ScreeningBagCount == nil || *got.ScreeningBagCount != 12 {
		t.Error("ScreeningBagCount not recorded")
	}

	if b.MarkCollected("no-such-id", at) {
		t.Error("MarkCollected on unknown id should return false")
	}
}

func TestApplyEnrichmentKeepsExistingOnEmptyFields(t *testing.T) {
	b := New()
	f := incomingAt("BA123", base)
	f.Carousel = "3"
	id := b.AddIncoming(f)

	avail := base.Add(40 * time.Minute)
	b.ApplyEnrichment(id, &avail, "")

	got, _ := b.FindIncoming(id)
	if got.Carousel != "3" {
		t.Errorf("Empty carousel overwrote existing value, got %q", got.Carousel)
	}
	if got.BagAvailableTime == nil || !got.BagAvailableTime.Equal(avail) {
		t.Error("BagAvailableTime not applied")
	}
}

func TestIncomingOrderIsInsertionOrder(t *testing.T) {
	b := New()
	b.AddIncoming(incomingAt("BA3", base.Add(3*time.Hour)))
	b.AddIncoming(incomingAt("BA1", base))
	b.AddIncoming(incomingAt("BA2", base.Add(time.Hour)))

	got := b.Incoming()
	want := []string{"BA3", "BA1", "BA2"}
	for i, num := range want {
		if got[i].FlightNumber != num {
			t.Fatalf("Position %d: expected %s, got %s", i, num, got[i].FlightNumber)
		}
	}
}
