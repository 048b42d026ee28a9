package routes

import (
	"airside-ops/transferdesk/internal/api"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes mounts the JSON API.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {
	b := deps.Board
	svcs := deps.Services

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/board", api.BoardHandler(b))
		r.Post("/board/reset", api.ResetDayHandler(b, svcs.Snapshot))

		r.Route("/incoming", func(r chi.Router) {
			r.Post("/", api.AddIncomingHandler(b))
			r.Put("/{id}", api.UpdateIncomingHandler(b))
			r.Delete("/{id}", api.DeleteIncomingHandler(b))

			r.Post("/{id}/actual", api.SetActualArrivalHandler(b))
			r.Post("/{id}/collected", api.MarkCollectedHandler(b))
			r.Post("/{id}/delivered", api.MarkDeliveredHandler(b))
			r.Post("/{id}/screening/start", api.MarkScreeningStartedHandler(b))
			r.Post("/{id}/screening/end", api.MarkScreeningEndedHandler(b))
			r.Post("/{id}/delivered-screening", api.MarkDeliveredToScreeningHandler(b))
			r.Post("/{id}/delivered-non-screening", api.MarkDeliveredNonScreeningHandler(b))
			r.Post("/{id}/cancel", api.CancelIncomingHandler(b))
			r.Post("/{id}/enrich", api.RequestEnrichmentHandler(svcs.Enrichment))

			r.Post("/{id}/links", api.LinkBagsHandler(b))
			r.Put("/{id}/links/{outgoingId}", api.RelinkHandler(b))
			r.Delete("/{id}/links/{outgoingId}", api.UnlinkHandler(b))
		})

		r.Route("/outgoing", func(r chi.Router) {
			r.Post("/", api.AddOutgoingHandler(b))
			r.Put("/{id}", api.UpdateOutgoingHandler(b))
			r.Delete("/{id}", api.DeleteOutgoingHandler(b))
			r.Post("/{id}/departed", api.MarkDepartedHandler(b))
			r.Post("/{id}/cancel", api.CancelOutgoingHandler(b))
		})

		r.Post("/import", api.ImportHandler(b))
		r.Post("/enrichment", api.EnrichmentCallbackHandler(svcs.Enrichment))

		r.Get("/dashboard", api.DashboardHandler(b, deps.Cfg.AtRiskThreshold, deps.Metrics))
		r.Get("/report", api.DayReportHandler(svcs.Report, svcs.Cache))

		r.Post("/snapshot/load", api.LoadSnapshotHandler(svcs.Snapshot))
		r.Post("/snapshot/save", api.SaveSnapshotHandler(svcs.Snapshot))
		r.Get("/snapshot/archive", api.ListArchiveHandler(svcs.Snapshot))
	})
}
