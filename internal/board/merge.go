package board

import (
	"time"

	"airside-ops/transferdesk/internal/models/entities"
)

// StagingTolerance absorbs a few seconds of scheduled-time drift between two
// scrape passes of the same flight. It applies only to the import staging
// list; the authoritative board always matches scheduled times exactly.
const StagingTolerance = 60 * time.Second

// UpdateOrAppendIncoming merges an externally sourced incoming flight into
// the board. A flight with the same natural key (flight number + exact
// scheduled time) is replaced in place, keeping its id and position, with the
// new record's field values winning. Otherwise the record is appended.
//
// A nil Links slice on the replacement preserves the existing link set, so a
// link-less scrape re-import cannot wipe links made by hand. Returns the
// effective id.
func (b *Board) UpdateOrAppendIncoming(f entities.IncomingFlight) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, id := range b.incomingOrder {
		cur := b.incoming[id]
		if cur.FlightNumber == f.FlightNumber && cur.ScheduledTime.Equal(f.ScheduledTime) {
			f.ID = id
			links := f.Links
			f.Terminal = entities.NormalizeTerminal(f.Terminal)
			f.Links = nil
			*cur = f
			if links != nil {
				b.clearIncomingLinksLocked(id)
				b.loadLinksLocked(id, links)
			}
			b.rebuildLocked()
			return id
		}
	}
	return b.addIncomingLocked(f)
}

// UpdateOrAppendOutgoing merges an externally sourced outgoing flight into
// the board. On a natural-key match the record is replaced in place keeping
// its id, so links made against the old record survive the merge. Callers
// that held a reference to the old record must re-resolve by key afterwards;
// LinkBags already does.
func (b *Board) UpdateOrAppendOutgoing(f entities.OutgoingFlight) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, id := range b.outgoingOrder {
		cur := b.outgoing[id]
		if cur.FlightNumber == f.FlightNumber && cur.ScheduledTime.Equal(f.ScheduledTime) {
			f.ID = id
			f.Terminal = entities.NormalizeTerminal(f.Terminal)
			f.BagsFromIncoming = nil
			*cur = f
			b.rebuildLocked()
			return id
		}
	}
	return b.addOutgoingLocked(f)
}

// Staging is the holding list for a scrape-import run. Unlike the board it
// dedups with a tolerance window on scheduled time, because two passes of
// the same arrivals page can disagree by a few seconds.
type Staging struct {
	Tolerance time.Duration
	Incoming  []entities.IncomingFlight
	Outgoing  []entities.OutgoingFlight
}

func NewStaging() *Staging {
	return &Staging{Tolerance: StagingTolerance}
}

// UpdateOrAppendIncoming merges a scraped incoming flight into the staging
// list, replacing the first entry whose flight number matches and whose
// scheduled time is within the tolerance window.
func (s *Staging) UpdateOrAppendIncoming(f entities.IncomingFlight) {
	for i := range s.Incoming {
		if s.Incoming[i].FlightNumber == f.FlightNumber &&
			withinTolerance(s.Incoming[i].ScheduledTime, f.ScheduledTime, s.Tolerance) {
			s.Incoming[i] = f
			return
		}
	}
	s.Incoming = append(s.Incoming, f)
}

// UpdateOrAppendOutgoing merges a scraped outgoing flight into the staging
// list with the same tolerance rule.
func (s *Staging) UpdateOrAppendOutgoing(f entities.OutgoingFlight) {
	for i := range s.Outgoing {
		if s.Outgoing[i].FlightNumber == f.FlightNumber &&
			withinTolerance(s.Outgoing[i].ScheduledTime, f.ScheduledTime, s.Tolerance) {
			s.Outgoing[i] = f
			return
		}
	}
	s.Outgoing = append(s.Outgoing, f)
}

func withinTolerance(a, b time.Time, tol time.Duration) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= tol
}
