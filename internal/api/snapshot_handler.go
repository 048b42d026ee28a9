package api

import (
	"net/http"
	"time"

	"airside-ops/transferdesk/internal/board"
	"airside-ops/transferdesk/internal/logging"
	"airside-ops/transferdesk/internal/services"
)

// LoadSnapshotHandler handles POST /api/v1/snapshot/load
//
// Replaces the whole working set from the sync store. In-flight UI edits
// lose to the snapshot; last write wins.
func LoadSnapshotHandler(snapshot *services.SnapshotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := snapshot.LoadWorkingSet(r.Context()); err != nil {
			logging.Error("Snapshot load failed", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to load snapshot")
			return
		}
		ok := true
		respondWithSuccess(w, http.StatusOK, &ok)
	}
}

// SaveSnapshotHandler handles POST /api/v1/snapshot/save
func SaveSnapshotHandler(snapshot *services.SnapshotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := snapshot.SaveWorkingSet(r.Context()); err != nil {
			logging.Error("Snapshot save failed", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to save snapshot")
			return
		}
		ok := true
		respondWithSuccess(w, http.StatusOK, &ok)
	}
}

// ListArchiveHandler handles GET /api/v1/snapshot/archive
//
// Returns the archived end-of-day snapshots for a day, newest first. Empty
// when archiving is unavailable (SQLite deployments have no archive table).
func ListArchiveHandler(snapshot *services.SnapshotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, ok := parseDay(r)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid day parameter, want YYYY-MM-DD")
			return
		}

		rows, err := snapshot.ListArchivedDay(r.Context(), day)
		if err != nil {
			logging.Error("Archive list failed", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to list archive")
			return
		}
		respondWithSuccess(w, http.StatusOK, &rows)
	}
}

// ResetDayHandler handles POST /api/v1/board/reset
//
// Archives the current board (when the archive table is available), then
// clears both collections and the persisted working set.
func ResetDayHandler(b *board.Board, snapshot *services.SnapshotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := snapshot.ArchiveDay(r.Context(), time.Now()); err != nil {
			logging.Warn("Day archive failed, resetting anyway", "error", err.Error())
		}

		b.ResetDay()
		if err := snapshot.SaveWorkingSet(r.Context()); err != nil {
			logging.Error("Failed to persist day reset", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to persist day reset")
			return
		}

		ok := true
		respondWithSuccess(w, http.StatusOK, &ok)
	}
}
