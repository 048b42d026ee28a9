// Package risk classifies transfer links by how tight the connection window
// is between the linked flights.
package risk

import (
	"time"

	"airside-ops/transferdesk/internal/models/entities"
)

// DefaultThreshold is the connection window below which a transfer counts as
// at risk. Overridable through configuration.
const DefaultThreshold = time.Hour

// BestTime is the time the risk computation trusts for a flight: the actual
// time when recorded, else the scheduled time. Expected times are
// deliberately ignored here; they move too often to alert on.
func BestTime(scheduled time.Time, actual *time.Time) time.Time {
	if actual != nil {
		return *actual
	}
	return scheduled
}

// IsAtRisk reports whether the transfer from incoming to outgoing is below
// the threshold. True iff the outgoing flight is not cancelled, a link
// exists between the pair, and the gap between the flights' best times is
// under the threshold. A negative or already-elapsed gap still counts;
// nothing floors it at zero.
func IsAtRisk(incoming *entities.IncomingFlight, outgoing *entities.OutgoingFlight, threshold time.Duration) bool {
	if outgoing.Cancelled {
		return false
	}
	if incoming.LinkTo(outgoing.ID) == nil {
		return false
	}
	in := BestTime(incoming.ScheduledTime, incoming.ActualTime)
	out := BestTime(outgoing.ScheduledTime, outgoing.ActualTime)
	return out.Sub(in) < threshold
}

// UrgentOutgoingFlights returns the outgoing flights driving the urgent
// alert: not cancelled, with a nonzero linked bag total, and with at least
// one linked incoming flight that has an actual arrival recorded, is not
// cancelled, and is at risk. An empty result means no transfer is currently
// time-critical.
func UrgentOutgoingFlights(outgoing []entities.OutgoingFlight, incoming []entities.IncomingFlight, threshold time.Duration) []entities.OutgoingFlight {
	var urgent []entities.OutgoingFlight
	for i := range outgoing {
		out := &outgoing[i]
		if out.Cancelled || out.LinkedBagTotal() == 0 {
			continue
		}
		for j := range incoming {
			in := &incoming[j]
			if in.Cancelled || in.ActualTime == nil {
				continue
			}
			if IsAtRisk(in, out, threshold) {
				urgent = append(urgent, *out)
				break
			}
		}
	}
	return urgent
}
