package services

import (
	"context"
	"testing"
	"time"

	"airside-ops/transferdesk/internal/board"
	"airside-ops/transferdesk/internal/db/repositories"
	"airside-ops/transferdesk/internal/models/entities"
	gormModels "airside-ops/transferdesk/internal/models/gorm"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&gormModels.IncomingFlight{}, &gormModels.OutgoingFlight{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func TestSnapshotSaveLoadRoundtrip(t *testing.T) {
	repo := repositories.NewFlightRepository(setupTestDB(t))
	sched := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	// Build a board with a linked pair, save it, then load into a fresh board.
	src := board.New()
	inID := src.AddIncoming(entities.IncomingFlight{
		FlightNumber: "BA123", Terminal: "T1", Origin: "AMS",
		ScheduledTime: sched, Date: sched,
	})
	outID, err := src.LinkBags(inID, entities.OutgoingFlight{
		FlightNumber: "LH900", Terminal: "T1", Destination: "JFK",
		ScheduledTime: sched.Add(2 * time.Hour),
	}, 6)
	if err != nil {
		t.Fatalf("LinkBags failed: %v", err)
	}

	saver := NewSnapshotService(repo, nil, src, nil)
	if err := saver.SaveWorkingSet(ctx); err != nil {
		t.Fatalf("SaveWorkingSet failed: %v", err)
	}

	dst := board.New()
	loader := NewSnapshotService(repo, nil, dst, nil)
	if err := loader.LoadWorkingSet(ctx); err != nil {
		t.Fatalf("LoadWorkingSet failed: %v", err)
	}

	in, _, links := dst.Counts()
	if in != 1 || links != 1 {
		t.Fatalf("Expected 1 incoming and 1 link after load, got %d/%d", in, links)
	}
	loaded, ok := dst.FindIncoming(inID)
	if !ok {
		t.Fatal("Flight id not preserved across the roundtrip")
	}
	if loaded.LinkTo(outID) == nil || loaded.LinkTo(outID).BagCount != 6 {
		t.Errorf("Link lost in roundtrip: %+v", loaded.Links)
	}
	out, _ := dst.FindOutgoing(outID)
	if out.BagsFromIncoming["BA123"] != 6 {
		t.Errorf("Mirror entry not rebuilt after load: %+v", out.BagsFromIncoming)
	}
}

func TestLoadWorkingSetReplacesBoard(t *testing.T) {
	repo := repositories.NewFlightRepository(setupTestDB(t))
	sched := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	b := board.New()
	b.AddIncoming(entities.IncomingFlight{FlightNumber: "STALE", ScheduledTime: sched, Date: sched})

	// Empty store: a load must still replace, leaving the board empty.
	svc := NewSnapshotService(repo, nil, b, nil)
	if err := svc.LoadWorkingSet(ctx); err != nil {
		t.Fatalf("LoadWorkingSet failed: %v", err)
	}
	if in, out, _ := b.Counts(); in != 0 || out != 0 {
		t.Errorf("Stale board contents survived the load: %d/%d", in, out)
	}
}

func TestArchiveDayWithoutArchiveRepoIsNoOp(t *testing.T) {
	b := board.New()
	svc := NewSnapshotService(nil, nil, b, nil)

	if err := svc.ArchiveDay(context.Background(), time.Now()); err != nil {
		t.Errorf("Expected nil without an archive repo, got %v", err)
	}
}
