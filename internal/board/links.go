package board

import (
	"errors"

	"airside-ops/transferdesk/internal/models/entities"
)

// ErrNegativeBagCount is returned when a link mutation carries a bag count
// below zero. Invariant violations are rejected here rather than silently
// corrected.
var ErrNegativeBagCount = errors.New("bag count must not be negative")

// LinkBags links an incoming flight to an outgoing flight with the given bag
// count and returns the effective outgoing flight id.
//
// The outgoing flight is resolved by natural key (flight number + terminal +
// scheduled time): an existing match is reused, otherwise the supplied record
// is created. Resolution is always by key, never by a previously held
// reference, because a merge may have replaced the record since the caller
// last saw it.
//
// The link is an idempotent upsert: a second call for the same pair
// overwrites the bag count instead of duplicating the link. The MAG flag is
// set when both flights share a terminal. The mirrored entry in the outgoing
// flight's bag map is written in the same step.
//
// An unknown incoming id is a no-op returning an empty id; stale ids are
// routine when edits race snapshot replacement.
func (b *Board) LinkBags(incomingID string, outgoing entities.OutgoingFlight, bagCount int) (string, error) {
	if bagCount < 0 {
		return "", ErrNegativeBagCount
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	in, ok := b.incoming[incomingID]
	if !ok {
		return "", nil
	}

	outgoing.Terminal = entities.NormalizeTerminal(outgoing.Terminal)
	out := b.resolveOutgoingLocked(outgoing)

	b.links[linkKey{incomingID: incomingID, outgoingID: out.ID}] = linkRow{
		bagCount: bagCount,
		mag:      in.Terminal == out.Terminal,
	}
	b.rebuildLocked()
	return out.ID, nil
}

// Unlink removes the link between the two flights and the mirrored bag-map
// entry. A missing link is a no-op, not an error: double-tap deletes and
// races against store removals are expected.
func (b *Board) Unlink(incomingID, outgoingID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := linkKey{incomingID: incomingID, outgoingID: outgoingID}
	if _, ok := b.links[key]; !ok {
		return
	}
	delete(b.links, key)
	b.rebuildLocked()
}

// Relink updates the bag count on an existing link and its mirrored map
// entry together. It never creates a link: an unknown pair is a no-op.
func (b *Board) Relink(incomingID, outgoingID string, newBagCount int) error {
	if newBagCount < 0 {
		return ErrNegativeBagCount
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := linkKey{incomingID: incomingID, outgoingID: outgoingID}
	row, ok := b.links[key]
	if !ok {
		return nil
	}
	row.bagCount = newBagCount
	b.links[key] = row
	b.rebuildLocked()
	return nil
}

// resolveOutgoingLocked finds an outgoing flight by flight number, terminal
// and exact scheduled time, creating it from the supplied record when no
// match exists.
func (b *Board) resolveOutgoingLocked(f entities.OutgoingFlight) *entities.OutgoingFlight {
	for _, id := range b.outgoingOrder {
		cur := b.outgoing[id]
		if cur.FlightNumber == f.FlightNumber &&
			cur.Terminal == f.Terminal &&
			cur.ScheduledTime.Equal(f.ScheduledTime) {
			return cur
		}
	}
	id := b.addOutgoingLocked(f)
	return b.outgoing[id]
}
