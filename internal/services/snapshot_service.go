package services

import (
	"context"
	"encoding/json"
	"time"

	"airside-ops/transferdesk/internal/board"
	"airside-ops/transferdesk/internal/db/repositories"
	"airside-ops/transferdesk/internal/logging"
	"airside-ops/transferdesk/internal/metrics"
	"airside-ops/transferdesk/internal/models/entities"
	"airside-ops/transferdesk/internal/stats"

	"golang.org/x/sync/errgroup"
)

// SnapshotService moves whole working sets between the board and the sync
// store. Loading replaces the board's contents atomically; saving persists
// the current board; archiving writes an immutable end-of-day copy through
// the raw-SQL archive repository.
type SnapshotService struct {
	Repo    *repositories.FlightRepository
	Archive *repositories.SnapshotArchiveRepo
	Board   *board.Board
	Metrics *metrics.MetricsRegistry
}

func NewSnapshotService(repo *repositories.FlightRepository, archive *repositories.SnapshotArchiveRepo, b *board.Board, m *metrics.MetricsRegistry) *SnapshotService {
	return &SnapshotService{
		Repo:    repo,
		Archive: archive,
		Board:   b,
		Metrics: m,
	}
}

// LoadWorkingSet fetches both collections and swaps them onto the board.
// The two list queries run concurrently; the swap itself is one board call,
// so readers never see a half-replaced working set.
func (svc *SnapshotService) LoadWorkingSet(ctx context.Context) error {
	var (
		incoming []entities.IncomingFlight
		outgoing []entities.OutgoingFlight
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incoming, err = svc.Repo.ListIncoming(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		outgoing, err = svc.Repo.ListOutgoing(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	svc.Board.ReplaceAll(incoming, outgoing)
	if svc.Metrics != nil {
		svc.Metrics.SnapshotsApplied.Inc()
	}
	svc.UpdateBoardGauges()

	logging.Info("Working set loaded",
		"incoming", len(incoming),
		"outgoing", len(outgoing),
	)
	return nil
}

// SaveWorkingSet persists the current board state, replacing both tables in
// one transaction.
func (svc *SnapshotService) SaveWorkingSet(ctx context.Context) error {
	incoming := svc.Board.Incoming()
	outgoing := svc.Board.Outgoing()
	if err := svc.Repo.ReplaceAll(ctx, incoming, outgoing); err != nil {
		return err
	}
	svc.UpdateBoardGauges()
	return nil
}

type snapshotPayload struct {
	Incoming []entities.IncomingFlight `json:"incoming"`
	Outgoing []entities.OutgoingFlight `json:"outgoing"`
}

// ArchiveDay writes an immutable copy of the day's board to the archive
// table. Called before a day reset so the shift history survives the wipe.
func (svc *SnapshotService) ArchiveDay(ctx context.Context, day time.Time) error {
	if svc.Archive == nil {
		return nil
	}

	incoming := svc.Board.Incoming()
	outgoing := svc.Board.Outgoing()

	payload, err := json.Marshal(snapshotPayload{Incoming: incoming, Outgoing: outgoing})
	if err != nil {
		return err
	}

	dayStats := stats.ForDay(incoming, day, time.Now())
	row := repositories.SnapshotArchiveRow{
		Day:           stats.StartOfDay(day),
		TakenAt:       time.Now().UTC(),
		IncomingCount: len(incoming),
		OutgoingCount: len(outgoing),
		TotalBags:     dayStats.TotalBags,
		Payload:       string(payload),
	}
	if err := svc.Archive.Insert(ctx, row); err != nil {
		return err
	}
	if svc.Metrics != nil {
		svc.Metrics.SnapshotsArchived.Inc()
	}

	cutoff := stats.StartOfDay(day).AddDate(0, 0, -archiveRetentionDays)
	if err := svc.Archive.PruneBefore(ctx, cutoff); err != nil {
		logging.Warn("Archive prune failed", "error", err.Error())
	}
	return nil
}

// archiveRetentionDays is how long end-of-day archives are kept.
const archiveRetentionDays = 90

// ListArchivedDay returns the archived snapshots for one day, newest first.
func (svc *SnapshotService) ListArchivedDay(ctx context.Context, day time.Time) ([]repositories.SnapshotArchiveRow, error) {
	if svc.Archive == nil {
		return nil, nil
	}
	return svc.Archive.ListByDay(ctx, stats.StartOfDay(day))
}

// UpdateBoardGauges pushes the board's sizes into the metrics registry.
func (svc *SnapshotService) UpdateBoardGauges() {
	if svc.Metrics == nil {
		return
	}
	in, out, links := svc.Board.Counts()
	svc.Metrics.IncomingFlightsTracked.Set(float64(in))
	svc.Metrics.OutgoingFlightsTracked.Set(float64(out))
	svc.Metrics.LinksActive.Set(float64(links))
}
