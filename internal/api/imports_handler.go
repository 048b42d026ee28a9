package api

import (
	"net/http"

	"airside-ops/transferdesk/internal/board"
	"airside-ops/transferdesk/internal/models/dtos"
	"airside-ops/transferdesk/internal/services"
	"airside-ops/transferdesk/internal/workers"

	"github.com/go-chi/chi/v5"
)

// ImportHandler handles POST /api/v1/import
//
// Bulk-merges externally sourced flights into the board. The payload is
// first deduplicated through a staging list, which tolerates scheduled-time
// drift of up to a minute between records of the same flight; the board
// itself always merges on exact natural keys. Re-posting the same payload
// leaves the board unchanged.
func ImportHandler(b *board.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.ImportRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		staging := board.NewStaging()
		for i := range req.Outgoing {
			staging.UpdateOrAppendOutgoing(req.Outgoing[i].ToEntity())
		}
		for i := range req.Incoming {
			staging.UpdateOrAppendIncoming(req.Incoming[i].ToEntity())
		}

		resp := dtos.ImportResponse{}
		for _, f := range staging.Outgoing {
			b.UpdateOrAppendOutgoing(f)
			resp.OutgoingMerged++
		}
		for _, f := range staging.Incoming {
			b.UpdateOrAppendIncoming(f)
			resp.IncomingMerged++
		}

		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// EnrichmentCallbackHandler handles POST /api/v1/enrichment
//
// Applies a result delivered by the external scraping subsystem. Results
// for flights that no longer exist are discarded, not errors.
func EnrichmentCallbackHandler(enrichment *services.EnrichmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.EnrichmentCallbackRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.FlightID == "" {
			respondWithError(w, http.StatusBadRequest, "flight_id is required")
			return
		}

		enrichment.Apply(req.FlightID, req.BagAvailableTime, req.Carousel)
		respondWithSuccess(w, http.StatusOK, &req.FlightID)
	}
}

// RequestEnrichmentHandler handles POST /api/v1/incoming/{id}/enrich
//
// Queues a scrape pass for the flight. 503 when the enrichment provider is
// not configured, 429 when the queue is full.
func RequestEnrichmentHandler(enrichment *services.EnrichmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if enrichment.Provider == nil {
			respondWithError(w, http.StatusServiceUnavailable, "enrichment provider not configured")
			return
		}

		id := chi.URLParam(r, "id")
		if !workers.RequestEnrichment(id) {
			respondWithError(w, http.StatusTooManyRequests, "enrichment queue full")
			return
		}
		respondWithSuccess(w, http.StatusAccepted, &id)
	}
}
