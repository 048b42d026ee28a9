package board

import (
	"sort"
	"sync"
	"time"

	"airside-ops/transferdesk/internal/models/entities"

	"github.com/google/uuid"
)

type linkKey struct {
	incomingID string
	outgoingID string
}

type linkRow struct {
	bagCount int
	mag      bool
}

// Board holds the working set of incoming and outgoing flights for the
// current operational day, plus the link table between them.
//
// Flights live in id-keyed arenas with separate insertion-order slices so
// that merge operations can replace records in place. Links are stored once,
// keyed by (incomingID, outgoingID); the per-flight views (IncomingFlight.Links
// and OutgoingFlight.BagsFromIncoming) are derived indexes rebuilt after every
// mutation that touches the table.
//
// All mutations take the write lock, so the multi-step cascade and mirror
// updates are never observable half-done. Readers get defensive copies.
type Board struct {
	mu sync.RWMutex

	incoming      map[string]*entities.IncomingFlight
	incomingOrder []string
	outgoing      map[string]*entities.OutgoingFlight
	outgoingOrder []string

	links map[linkKey]linkRow
}

func New() *Board {
	return &Board{
		incoming: make(map[string]*entities.IncomingFlight),
		outgoing: make(map[string]*entities.OutgoingFlight),
		links:    make(map[linkKey]linkRow),
	}
}

// AddIncoming stores a new incoming flight and returns its id. An empty id is
// replaced with a fresh UUID; the terminal is normalized. Any links carried on
// the record are loaded into the link table.
func (b *Board) AddIncoming(f entities.IncomingFlight) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.addIncomingLocked(f)
}

func (b *Board) addIncomingLocked(f entities.IncomingFlight) string {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	f.Terminal = entities.NormalizeTerminal(f.Terminal)
	links := f.Links
	f.Links = nil

	b.incoming[f.ID] = &f
	b.incomingOrder = append(b.incomingOrder, f.ID)
	b.loadLinksLocked(f.ID, links)
	b.rebuildLocked()
	return f.ID
}

// AddOutgoing stores a new outgoing flight and returns its id.
func (b *Board) AddOutgoing(f entities.OutgoingFlight) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.addOutgoingLocked(f)
}

func (b *Board) addOutgoingLocked(f entities.OutgoingFlight) string {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	f.Terminal = entities.NormalizeTerminal(f.Terminal)
	f.BagsFromIncoming = nil

	b.outgoing[f.ID] = &f
	b.outgoingOrder = append(b.outgoingOrder, f.ID)
	b.rebuildLocked()
	return f.ID
}

// RemoveIncoming deletes an incoming flight and cascades: every link it owns
// is dropped from the link table, which strips the mirrored entry from each
// outgoing flight's bag map. No-op when the id is unknown.
func (b *Board) RemoveIncoming(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.incoming[id]; !ok {
		return
	}
	delete(b.incoming, id)
	b.incomingOrder = removeID(b.incomingOrder, id)
	for key := range b.links {
		if key.incomingID == id {
			delete(b.links, key)
		}
	}
	b.rebuildLocked()
}

// RemoveOutgoing deletes an outgoing flight and cascades: every link that
// references it is dropped from each incoming flight's link set. No-op when
// the id is unknown.
func (b *Board) RemoveOutgoing(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.outgoing[id]; !ok {
		return
	}
	delete(b.outgoing, id)
	b.outgoingOrder = removeID(b.outgoingOrder, id)
	for key := range b.links {
		if key.outgoingID == id {
			delete(b.links, key)
		}
	}
	b.rebuildLocked()
}

// ResetDay clears both collections and the link table.
func (b *Board) ResetDay() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resetLocked()
}

func (b *Board) resetLocked() {
	b.incoming = make(map[string]*entities.IncomingFlight)
	b.incomingOrder = nil
	b.outgoing = make(map[string]*entities.OutgoingFlight)
	b.outgoingOrder = nil
	b.links = make(map[linkKey]linkRow)
}

// ReplaceAll swaps the whole working set for a fresh snapshot, preserving the
// snapshot's ordering. Links ride in on the incoming records.
func (b *Board) ReplaceAll(incoming []entities.IncomingFlight, outgoing []entities.OutgoingFlight) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.resetLocked()
	for _, f := range outgoing {
		b.addOutgoingLocked(f)
	}
	for _, f := range incoming {
		b.addIncomingLocked(f)
	}
}

// FindIncoming returns a copy of the incoming flight with the given id.
func (b *Board) FindIncoming(id string) (entities.IncomingFlight, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	f, ok := b.incoming[id]
	if !ok {
		return entities.IncomingFlight{}, false
	}
	return copyIncoming(f), true
}

// FindOutgoing returns a copy of the outgoing flight with the given id.
func (b *Board) FindOutgoing(id string) (entities.OutgoingFlight, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	f, ok := b.outgoing[id]
	if !ok {
		return entities.OutgoingFlight{}, false
	}
	return copyOutgoing(f), true
}

// Incoming returns the incoming flights in insertion order, as copies.
func (b *Board) Incoming() []entities.IncomingFlight {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]entities.IncomingFlight, 0, len(b.incomingOrder))
	for _, id := range b.incomingOrder {
		out = append(out, copyIncoming(b.incoming[id]))
	}
	return out
}

// Outgoing returns the outgoing flights in insertion order, as copies.
func (b *Board) Outgoing() []entities.OutgoingFlight {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]entities.OutgoingFlight, 0, len(b.outgoingOrder))
	for _, id := range b.outgoingOrder {
		out = append(out, copyOutgoing(b.outgoing[id]))
	}
	return out
}

// Counts returns the number of incoming flights, outgoing flights and links.
func (b *Board) Counts() (incoming, outgoing, links int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.incoming), len(b.outgoing), len(b.links)
}

// UpdateIncoming replaces the fields of an existing incoming flight, matched
// by id. A nil Links slice on the replacement preserves the current link set;
// a non-nil slice replaces it. Returns false when the id is unknown.
func (b *Board) UpdateIncoming(f entities.IncomingFlight) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur, ok := b.incoming[f.ID]
	if !ok {
		return false
	}
	links := f.Links
	f.Terminal = entities.NormalizeTerminal(f.Terminal)
	f.Links = nil
	*cur = f
	if links != nil {
		b.clearIncomingLinksLocked(f.ID)
		b.loadLinksLocked(f.ID, links)
	}
	b.rebuildLocked()
	return true
}

// UpdateOutgoing replaces the fields of an existing outgoing flight, matched
// by id. The bag map is derived state and is rebuilt from the link table
// regardless of what the replacement carries.
func (b *Board) UpdateOutgoing(f entities.OutgoingFlight) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur, ok := b.outgoing[f.ID]
	if !ok {
		return false
	}
	f.Terminal = entities.NormalizeTerminal(f.Terminal)
	f.BagsFromIncoming = nil
	*cur = f
	b.rebuildLocked()
	return true
}

// MarkCollected records the collection time on an incoming flight.
func (b *Board) MarkCollected(id string, at time.Time) bool {
	return b.mutateIncoming(id, func(f *entities.IncomingFlight) {
		f.CollectedTime = &at
	})
}

// MarkDelivered records the delivery time on an incoming flight.
func (b *Board) MarkDelivered(id string, at time.Time) bool {
	return b.mutateIncoming(id, func(f *entities.IncomingFlight) {
		f.DeliveredTime = &at
	})
}

// MarkScreeningStarted records the screening start time and the number of
// bags routed through screening.
func (b *Board) MarkScreeningStarted(id string, at time.Time, bagCount int) bool {
	return b.mutateIncoming(id, func(f *entities.IncomingFlight) {
		f.ScreeningStartTime = &at
		f.ScreeningBagCount = &bagCount
	})
}

// MarkScreeningEnded records the screening end time.
func (b *Board) MarkScreeningEnded(id string, at time.Time) bool {
	return b.mutateIncoming(id, func(f *entities.IncomingFlight) {
		f.ScreeningEndTime = &at
	})
}

// MarkDeliveredToScreening records delivery of the screening portion.
func (b *Board) MarkDeliveredToScreening(id string, at time.Time) bool {
	return b.mutateIncoming(id, func(f *entities.IncomingFlight) {
		f.DeliveredToScreeningTime = &at
	})
}

// MarkDeliveredNonScreening records delivery of the non-screening portion.
func (b *Board) MarkDeliveredNonScreening(id string, at time.Time) bool {
	return b.mutateIncoming(id, func(f *entities.IncomingFlight) {
		f.DeliveredNonScreeningTime = &at
	})
}

// SetIncomingCancelled flips the cancelled flag on an incoming flight.
func (b *Board) SetIncomingCancelled(id string, cancelled bool) bool {
	return b.mutateIncoming(id, func(f *entities.IncomingFlight) {
		f.Cancelled = cancelled
	})
}

// SetActualArrival records the actual arrival time on an incoming flight.
func (b *Board) SetActualArrival(id string, at time.Time) bool {
	return b.mutateIncoming(id, func(f *entities.IncomingFlight) {
		f.ActualTime = &at
	})
}

// ApplyEnrichment applies a scraped (bagAvailableTime, carousel) pair to the
// matching incoming flight. Discarded silently when the flight no longer
// exists; the enrichment source is best-effort and often races deletions.
func (b *Board) ApplyEnrichment(id string, bagAvailable *time.Time, carousel string) bool {
	return b.mutateIncoming(id, func(f *entities.IncomingFlight) {
		if bagAvailable != nil {
			f.BagAvailableTime = bagAvailable
		}
		if carousel != "" {
			f.Carousel = carousel
		}
	})
}

// MarkDeparted records the actual departure time on an outgoing flight.
func (b *Board) MarkDeparted(id string, at time.Time) bool {
	return b.mutateOutgoing(id, func(f *entities.OutgoingFlight) {
		f.ActualTime = &at
	})
}

// SetOutgoingCancelled flips the cancelled flag on an outgoing flight.
func (b *Board) SetOutgoingCancelled(id string, cancelled bool) bool {
	return b.mutateOutgoing(id, func(f *entities.OutgoingFlight) {
		f.Cancelled = cancelled
	})
}

func (b *Board) mutateIncoming(id string, fn func(*entities.IncomingFlight)) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	f, ok := b.incoming[id]
	if !ok {
		return false
	}
	fn(f)
	return true
}

func (b *Board) mutateOutgoing(id string, fn func(*entities.OutgoingFlight)) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	f, ok := b.outgoing[id]
	if !ok {
		return false
	}
	fn(f)
	return true
}

// loadLinksLocked inserts link rows for an incoming flight, last write wins
// per (incoming, outgoing) pair. Rows with negative counts or empty targets
// are skipped rather than stored.
func (b *Board) loadLinksLocked(incomingID string, links []entities.Link) {
	for _, l := range links {
		if l.OutgoingID == "" || l.BagCount < 0 {
			continue
		}
		b.links[linkKey{incomingID: incomingID, outgoingID: l.OutgoingID}] = linkRow{
			bagCount: l.BagCount,
			mag:      l.MAGTransfer,
		}
	}
}

func (b *Board) clearIncomingLinksLocked(incomingID string) {
	for key := range b.links {
		if key.incomingID == incomingID {
			delete(b.links, key)
		}
	}
}

// rebuildLocked recomputes the two derived indexes from the link table:
// IncomingFlight.Links (sorted by outgoing scheduled time, then flight
// number) and OutgoingFlight.BagsFromIncoming (keyed by incoming flight
// number). Link rows pointing at flights that have gone are dropped.
func (b *Board) rebuildLocked() {
	for _, f := range b.incoming {
		f.Links = nil
	}
	for _, f := range b.outgoing {
		f.BagsFromIncoming = nil
	}

	for key, row := range b.links {
		in, inOK := b.incoming[key.incomingID]
		out, outOK := b.outgoing[key.outgoingID]
		if !inOK || !outOK {
			delete(b.links, key)
			continue
		}
		in.Links = append(in.Links, entities.Link{
			OutgoingID:  key.outgoingID,
			BagCount:    row.bagCount,
			MAGTransfer: row.mag,
		})
		if out.BagsFromIncoming == nil {
			out.BagsFromIncoming = make(map[string]int)
		}
		out.BagsFromIncoming[in.FlightNumber] = row.bagCount
	}

	for _, f := range b.incoming {
		links := f.Links
		sort.Slice(links, func(i, j int) bool {
			a, b2 := b.outgoing[links[i].OutgoingID], b.outgoing[links[j].OutgoingID]
			if !a.ScheduledTime.Equal(b2.ScheduledTime) {
				return a.ScheduledTime.Before(b2.ScheduledTime)
			}
			return a.FlightNumber < b2.FlightNumber
		})
	}
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func copyIncoming(f *entities.IncomingFlight) entities.IncomingFlight {
	c := *f
	if f.Links != nil {
		c.Links = append([]entities.Link(nil), f.Links...)
	}
	return c
}

func copyOutgoing(f *entities.OutgoingFlight) entities.OutgoingFlight {
	c := *f
	if f.BagsFromIncoming != nil {
		c.BagsFromIncoming = make(map[string]int, len(f.BagsFromIncoming))
		for k, v := range f.BagsFromIncoming {
			c.BagsFromIncoming[k] = v
		}
	}
	return c
}
