// Package status derives the workflow state of a flight's baggage from its
// timestamp fields. There is no stored status anywhere: callers transition
// state purely by setting the appropriate timestamp, and every read
// recomputes. The evaluation instant is passed in explicitly to keep the
// derivations pure.
package status

import (
	"time"

	"airside-ops/transferdesk/internal/constants"
	"airside-ops/transferdesk/internal/models/entities"
)

// IncomingStatus is the workflow stage of an incoming flight's bag batch.
type IncomingStatus string

const (
	IncomingScheduled IncomingStatus = "scheduled"
	IncomingReady     IncomingStatus = "ready"
	IncomingCollected IncomingStatus = "collected"
	IncomingDelivered IncomingStatus = "delivered"
	IncomingCancelled IncomingStatus = "cancelled"
)

// OutgoingStatus is the (simpler) state of an outgoing flight.
type OutgoingStatus string

const (
	OutgoingScheduled OutgoingStatus = "scheduled"
	OutgoingDeparted  OutgoingStatus = "departed"
	OutgoingCancelled OutgoingStatus = "cancelled"
)

// ForIncoming evaluates the mutually exclusive workflow states in priority
// order; first match wins.
func ForIncoming(f *entities.IncomingFlight, now time.Time) IncomingStatus {
	switch {
	case f.Cancelled:
		return IncomingCancelled
	case f.DeliveredTime != nil:
		return IncomingDelivered
	case f.CollectedTime != nil:
		return IncomingCollected
	case f.BagAvailableTime != nil && !f.BagAvailableTime.After(now):
		return IncomingReady
	default:
		return IncomingScheduled
	}
}

// ForOutgoing evaluates the outgoing flight's state.
func ForOutgoing(f *entities.OutgoingFlight) OutgoingStatus {
	switch {
	case f.Cancelled:
		return OutgoingCancelled
	case f.ActualTime != nil:
		return OutgoingDeparted
	default:
		return OutgoingScheduled
	}
}

// DisplayTime resolves the time a flight row shows. This is a separate,
// lower-priority precedence from the workflow status and must not be
// conflated with it: actual beats expected beats scheduled, and a cancelled
// flight displays CANCELLED regardless.
func DisplayTime(ref entities.FlightRef) string {
	scheduled, actual, expected, cancelled := ref.Times()
	if cancelled {
		return constants.DisplayCancelled
	}
	switch {
	case actual != nil:
		return actual.Format("15:04")
	case expected != nil:
		return expected.Format("15:04")
	default:
		return scheduled.Format("15:04")
	}
}

// Badge returns the label shown on a flight's status badge for either
// variant.
func Badge(ref entities.FlightRef, now time.Time) string {
	switch ref.Kind {
	case entities.KindIncoming:
		return string(ForIncoming(ref.Incoming, now))
	case entities.KindOutgoing:
		return string(ForOutgoing(ref.Outgoing))
	}
	return ""
}
