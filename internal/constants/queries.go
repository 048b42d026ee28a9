package constants

const (
	CreateSnapshotArchiveTable = `
	CREATE TABLE IF NOT EXISTS snapshot_archive (
		id             BIGSERIAL PRIMARY KEY,
		day            DATE NOT NULL,
		taken_at       TIMESTAMPTZ NOT NULL,
		incoming_count INTEGER NOT NULL,
		outgoing_count INTEGER NOT NULL,
		total_bags     INTEGER NOT NULL,
		payload        TEXT NOT NULL
	)
	`

	InsertSnapshotArchive = `
	INSERT INTO snapshot_archive (day, taken_at, incoming_count, outgoing_count, total_bags, payload)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	GetSnapshotArchiveByDay = `
	SELECT day, taken_at, incoming_count, outgoing_count, total_bags, payload
	FROM snapshot_archive WHERE day = $1 ORDER BY taken_at DESC
	`

	DeleteSnapshotArchiveBefore = `
	DELETE FROM snapshot_archive WHERE day < $1
	`
)
