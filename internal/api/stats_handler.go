package api

import (
	"net/http"
	"time"

	"airside-ops/transferdesk/internal/board"
	"airside-ops/transferdesk/internal/metrics"
	"airside-ops/transferdesk/internal/models/dtos"
	"airside-ops/transferdesk/internal/risk"
	"airside-ops/transferdesk/internal/stats"
)

// parseDay reads the optional ?day=2006-01-02 query parameter, defaulting
// to today.
func parseDay(r *http.Request) (time.Time, bool) {
	qs := r.URL.Query().Get("day")
	if qs == "" {
		return time.Now(), true
	}
	day, err := time.Parse("2006-01-02", qs)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// DashboardHandler handles GET /api/v1/dashboard
//
// Returns the day's workflow counters plus the urgent outgoing set.
func DashboardHandler(b *board.Board, threshold time.Duration, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, ok := parseDay(r)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid day parameter, want YYYY-MM-DD")
			return
		}
		now := time.Now()

		incoming := b.Incoming()
		outgoing := b.Outgoing()

		resp := dtos.DashboardResponse{
			Stats: stats.ForDay(incoming, day, now),
		}
		urgent := risk.UrgentOutgoingFlights(stats.TodaysOutgoing(outgoing, day), incoming, threshold)
		for _, f := range urgent {
			resp.Urgent = append(resp.Urgent, outgoingView(f))
		}

		if metricsReg != nil {
			metricsReg.UrgentOutgoing.Set(float64(len(urgent)))
		}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}
