package api

import (
	"net/http"
	"time"

	"airside-ops/transferdesk/internal/board"
	"airside-ops/transferdesk/internal/models/dtos"
	"airside-ops/transferdesk/internal/models/entities"
	"airside-ops/transferdesk/internal/status"

	"github.com/go-chi/chi/v5"
)

// BoardHandler handles GET /api/v1/board
//
// Returns both collections with their derived status and display time, the
// shape the list screens render from.
func BoardHandler(b *board.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()

		resp := dtos.BoardResponse{}
		for _, f := range b.Incoming() {
			f := f
			resp.Incoming = append(resp.Incoming, dtos.IncomingFlightView{
				IncomingFlight: f,
				Status:         string(status.ForIncoming(&f, now)),
				DisplayTime:    status.DisplayTime(entities.IncomingRef(&f)),
			})
		}
		for _, f := range b.Outgoing() {
			f := f
			resp.Outgoing = append(resp.Outgoing, outgoingView(f))
		}

		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

func outgoingView(f entities.OutgoingFlight) dtos.OutgoingFlightView {
	return dtos.OutgoingFlightView{
		OutgoingFlight: f,
		Status:         string(status.ForOutgoing(&f)),
		DisplayTime:    status.DisplayTime(entities.OutgoingRef(&f)),
		TotalBags:      f.LinkedBagTotal(),
	}
}

// AddIncomingHandler handles POST /api/v1/incoming
func AddIncomingHandler(b *board.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.IncomingFlightRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.FlightNumber == "" {
			respondWithError(w, http.StatusBadRequest, "flight_number is required")
			return
		}

		flight := req.ToEntity()
		flight.ID = ""
		id := b.AddIncoming(flight)
		respondWithSuccess(w, http.StatusCreated, &id)
	}
}

// UpdateIncomingHandler handles PUT /api/v1/incoming/{id}
func UpdateIncomingHandler(b *board.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req dtos.IncomingFlightRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		flight := req.ToEntity()
		flight.ID = id
		updated := b.UpdateIncoming(flight)
		respondWithSuccess(w, http.StatusOK, &updated)
	}
}

// DeleteIncomingHandler handles DELETE /api/v1/incoming/{id}
//
// Removal cascades: the flight's entry disappears from every outgoing
// flight's bag map before the call returns. Deleting an id that is already
// gone is fine.
func DeleteIncomingHandler(b *board.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		b.RemoveIncoming(id)
		respondWithSuccess(w, http.StatusOK, &id)
	}
}

// AddOutgoingHandler handles POST /api/v1/outgoing
func AddOutgoingHandler(b *board.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.OutgoingFlightRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.FlightNumber == "" {
			respondWithError(w, http.StatusBadRequest, "flight_number is required")
			return
		}

		flight := req.ToEntity()
		flight.ID = ""
		id := b.AddOutgoing(flight)
		respondWithSuccess(w, http.StatusCreated, &id)
	}
}

// UpdateOutgoingHandler handles PUT /api/v1/outgoing/{id}
func UpdateOutgoingHandler(b *board.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req dtos.OutgoingFlightRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		flight := req.ToEntity()
		flight.ID = id
		updated := b.UpdateOutgoing(flight)
		respondWithSuccess(w, http.StatusOK, &updated)
	}
}

// DeleteOutgoingHandler handles DELETE /api/v1/outgoing/{id}
func DeleteOutgoingHandler(b *board.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		b.RemoveOutgoing(id)
		respondWithSuccess(w, http.StatusOK, &id)
	}
}

// markTime resolves the transition instant: the request's At when supplied,
// otherwise now.
func markTime(req dtos.MarkRequest) time.Time {
	if req.At != nil {
		return *req.At
	}
	return time.Now()
}

func markHandler(apply func(id string, at time.Time) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req dtos.MarkRequest
		if r.ContentLength > 0 {
			if err := decodeJSON(r, &req); err != nil {
				respondWithError(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}

		applied := apply(id, markTime(req))
		respondWithSuccess(w, http.StatusOK, &applied)
	}
}

// MarkCollectedHandler handles POST /api/v1/incoming/{id}/collected
func MarkCollectedHandler(b *board.Board) http.HandlerFunc {
	return markHandler(b.MarkCollected)
}

// MarkDeliveredHandler handles POST /api/v1/incoming/{id}/delivered
func MarkDeliveredHandler(b *board.Board) http.HandlerFunc {
	return markHandler(b.MarkDelivered)
}

// SetActualArrivalHandler handles POST /api/v1/incoming/{id}/actual
func SetActualArrivalHandler(b *board.Board) http.HandlerFunc {
	return markHandler(b.SetActualArrival)
}

// MarkScreeningStartedHandler handles POST /api/v1/incoming/{id}/screening/start
func MarkScreeningStartedHandler(b *board.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req dtos.MarkRequest
		if r.ContentLength > 0 {
			if err := decodeJSON(r, &req); err != nil {
				respondWithError(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}

		bagCount := 0
		if req.BagCount != nil {
			bagCount = *req.BagCount
		}
		applied := b.MarkScreeningStarted(id, markTime(req), bagCount)
		respondWithSuccess(w, http.StatusOK, &applied)
	}
}

// MarkScreeningEndedHandler handles POST /api/v1/incoming/{id}/screening/end
func MarkScreeningEndedHandler(b *board.Board) http.HandlerFunc {
	return markHandler(b.MarkScreeningEnded)
}

// MarkDeliveredToScreeningHandler handles POST /api/v1/incoming/{id}/delivered-screening
func MarkDeliveredToScreeningHandler(b *board.Board) http.HandlerFunc {
	return markHandler(b.MarkDeliveredToScreening)
}

// MarkDeliveredNonScreeningHandler handles POST /api/v1/incoming/{id}/delivered-non-screening
func MarkDeliveredNonScreeningHandler(b *board.Board) http.HandlerFunc {
	return markHandler(b.MarkDeliveredNonScreening)
}

// CancelIncomingHandler handles POST /api/v1/incoming/{id}/cancel
func CancelIncomingHandler(b *board.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		req := dtos.CancelRequest{Cancelled: true}
		if r.ContentLength > 0 {
			if err := decodeJSON(r, &req); err != nil {
				respondWithError(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}

		applied := b.SetIncomingCancelled(id, req.Cancelled)
		respondWithSuccess(w, http.StatusOK, &applied)
	}
}

// MarkDepartedHandler handles POST /api/v1/outgoing/{id}/departed
func MarkDepartedHandler(b *board.Board) http.HandlerFunc {
	return markHandler(b.MarkDeparted)
}

// CancelOutgoingHandler handles POST /api/v1/outgoing/{id}/cancel
func CancelOutgoingHandler(b *board.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		req := dtos.CancelRequest{Cancelled: true}
		if r.ContentLength > 0 {
			if err := decodeJSON(r, &req); err != nil {
				respondWithError(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}

		applied := b.SetOutgoingCancelled(id, req.Cancelled)
		respondWithSuccess(w, http.StatusOK, &applied)
	}
}
