package api

import (
	"net/http"
	"time"

	"airside-ops/transferdesk/internal/common"
	"airside-ops/transferdesk/internal/constants"
	"airside-ops/transferdesk/internal/logging"
	"airside-ops/transferdesk/internal/models/dtos"
	"airside-ops/transferdesk/internal/services"
)

// reportCacheTTL bounds how stale a served report can be. The report is a
// printable end-of-shift artifact, not a live view.
const reportCacheTTL = 30 * time.Second

// DayReportHandler handles GET /api/v1/report
//
// Returns the read-only report snapshot the external PDF renderer consumes.
// Built reports are cached briefly per day so repeated renderer polls don't
// rebuild the grouping.
func DayReportHandler(report *services.ReportService, cache common.CacheInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		init := time.Now()

		day, ok := parseDay(r)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid day parameter, want YYYY-MM-DD")
			return
		}

		key := string(constants.CachePrefixReport) + day.Format("2006-01-02")
		val, err := cache.GetOrSet(key, reportCacheTTL, func() (any, error) {
			return report.BuildDayReport(day, time.Now()), nil
		})
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to build report")
			return
		}
		snapshot, ok := val.(*dtos.DayReport)
		if !ok {
			// A shared cache hands back decoded JSON, not the typed value.
			snapshot = report.BuildDayReport(day, time.Now())
		}

		logging.Debug("Day report served",
			"day", key,
			"response_time", common.GetResponseTime(init),
		)
		respondWithSuccess(w, http.StatusOK, snapshot)
	}
}
