package api

import (
	"encoding/json"
	"net/http"
	"time"

	"airside-ops/transferdesk/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(db *sqlx.DB, version string, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]entities.ServiceStatus)

		if db != nil {
			pgStatus := "ok"
			pgDetails := "Postgres connected"
			if err := db.Ping(); err != nil {
				pgStatus = "down"
				pgDetails = err.Error()
			}
			services["postgres"] = entities.ServiceStatus{
				Status:  pgStatus,
				Details: pgDetails,
			}
		} else {
			services["sqlite"] = entities.ServiceStatus{
				Status:  "ok",
				Details: "Embedded SQLite store",
			}
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		now := time.Now()
		resp := entities.HealthCheckResponse{
			Status:   overallStatus,
			Version:  version,
			Services: services,
			UpSince:  upSince,
			Uptime:   now.Sub(upSince).Round(time.Second).String(),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
