package repositories

import (
	"context"
	"time"

	"airside-ops/transferdesk/internal/constants"

	"github.com/jmoiron/sqlx"
)

// SnapshotArchiveRow is one archived end-of-day snapshot.
type SnapshotArchiveRow struct {
	Day           time.Time `db:"day" json:"day"`
	TakenAt       time.Time `db:"taken_at" json:"taken_at"`
	IncomingCount int       `db:"incoming_count" json:"incoming_count"`
	OutgoingCount int       `db:"outgoing_count" json:"outgoing_count"`
	TotalBags     int       `db:"total_bags" json:"total_bags"`
	Payload       string    `db:"payload" json:"payload"`
}

// SnapshotArchiveRepo writes day archives through raw SQL on the sqlx
// handle, separate from the GORM working-set tables.
type SnapshotArchiveRepo struct {
	db *sqlx.DB
}

func NewSnapshotArchiveRepo(db *sqlx.DB) *SnapshotArchiveRepo {
	return &SnapshotArchiveRepo{db: db}
}

// EnsureTable creates the archive table when missing.
func (r *SnapshotArchiveRepo) EnsureTable(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, constants.CreateSnapshotArchiveTable)
	return err
}

// Insert archives one snapshot.
func (r *SnapshotArchiveRepo) Insert(ctx context.Context, row SnapshotArchiveRow) error {
	_, err := r.db.ExecContext(ctx, constants.InsertSnapshotArchive,
		row.Day, row.TakenAt, row.IncomingCount, row.OutgoingCount, row.TotalBags, row.Payload)
	return err
}

// ListByDay returns the archived snapshots for one day, newest first.
func (r *SnapshotArchiveRepo) ListByDay(ctx context.Context, day time.Time) ([]SnapshotArchiveRow, error) {
	var rows []SnapshotArchiveRow
	err := r.db.SelectContext(ctx, &rows, constants.GetSnapshotArchiveByDay, day)
	return rows, err
}

// PruneBefore deletes archives older than the cutoff day.
func (r *SnapshotArchiveRepo) PruneBefore(ctx context.Context, cutoff time.Time) error {
	_, err := r.db.ExecContext(ctx, constants.DeleteSnapshotArchiveBefore, cutoff)
	return err
}
