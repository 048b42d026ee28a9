package api

import (
	"errors"
	"net/http"

	"airside-ops/transferdesk/internal/board"
	"airside-ops/transferdesk/internal/models/dtos"
	"airside-ops/transferdesk/internal/models/entities"

	"github.com/go-chi/chi/v5"
)

// LinkBagsHandler handles POST /api/v1/incoming/{id}/links
//
// The outgoing flight is resolved by natural key and created when it isn't
// on the board yet; linking the same pair twice overwrites the bag count.
func LinkBagsHandler(b *board.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		incomingID := chi.URLParam(r, "id")

		var req dtos.LinkBagsRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.OutgoingFlightNumber == "" {
			respondWithError(w, http.StatusBadRequest, "outgoing_flight_number is required")
			return
		}

		outgoingID, err := b.LinkBags(incomingID, entities.OutgoingFlight{
			FlightNumber:  req.OutgoingFlightNumber,
			Terminal:      req.Terminal,
			Destination:   req.Destination,
			ScheduledTime: req.ScheduledTime,
		}, req.BagCount)
		if err != nil {
			if errors.Is(err, board.ErrNegativeBagCount) {
				respondWithError(w, http.StatusBadRequest, err.Error())
				return
			}
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		resp := dtos.LinkResponse{
			IncomingID: incomingID,
			OutgoingID: outgoingID,
			BagCount:   req.BagCount,
		}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// UnlinkHandler handles DELETE /api/v1/incoming/{id}/links/{outgoingId}
//
// Unlinking an already-removed link is a no-op; double-tap deletes race
// store removals routinely.
func UnlinkHandler(b *board.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		incomingID := chi.URLParam(r, "id")
		outgoingID := chi.URLParam(r, "outgoingId")

		b.Unlink(incomingID, outgoingID)
		resp := dtos.LinkResponse{IncomingID: incomingID, OutgoingID: outgoingID}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// RelinkHandler handles PUT /api/v1/incoming/{id}/links/{outgoingId}
//
// Updates the bag count on an existing link; never creates one.
func RelinkHandler(b *board.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		incomingID := chi.URLParam(r, "id")
		outgoingID := chi.URLParam(r, "outgoingId")

		var req dtos.RelinkRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := b.Relink(incomingID, outgoingID, req.BagCount); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		resp := dtos.LinkResponse{
			IncomingID: incomingID,
			OutgoingID: outgoingID,
			BagCount:   req.BagCount,
		}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}
