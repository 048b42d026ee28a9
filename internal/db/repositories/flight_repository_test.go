package repositories

import (
	"context"
	"testing"
	"time"

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

func testIncoming(id string, sched time.Time) entities.IncomingFlight {
	return entities.IncomingFlight{
		ID:            id,
		FlightNumber:  "BA123",
		Terminal:      "T1",
		Origin:        "AMS",
		ScheduledTime: sched,
		Date:          sched,
		Links:         []entities.Link{{OutgoingID: "out-1", BagCount: 4, MAGTransfer: true}},
	}
}

func TestFlightRepositoryRoundtrip(t *testing.T) {
	repo := NewFlightRepository(setupTestDB(t))
	ctx := context.Background()
	sched := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	if err := repo.SaveIncoming(ctx, testIncoming("in-1", sched)); err != nil {
		t.Fatalf("SaveIncoming failed: %v", err)
	}
	if err := repo.SaveOutgoing(ctx, entities.OutgoingFlight{
		ID:               "out-1",
		FlightNumber:     "LH900",
		Terminal:         "T1",
		Destination:      "JFK",
		ScheduledTime:    sched.Add(2 * time.Hour),
		BagsFromIncoming: map[string]int{"BA123": 4},
	}); err != nil {
		t.Fatalf("SaveOutgoing failed: %v", err)
	}

	incoming, err := repo.ListIncoming(ctx)
	if err != nil {
		t.Fatalf("ListIncoming failed: %v", err)
	}
	if len(incoming) != 1 {
		t.Fatalf("Expected 1 incoming flight, got %d", len(incoming))
	}
	got := incoming[0]
	if got.FlightNumber != "BA123" || got.Terminal != "T1" {
		t.Errorf("Fields lost in roundtrip: %+v", got)
	}
	if len(got.Links) != 1 || got.Links[0].BagCount != 4 || !got.Links[0].MAGTransfer {
		t.Errorf("Link set lost in JSON column roundtrip: %+v", got.Links)
	}

	outgoing, err := repo.ListOutgoing(ctx)
	if err != nil {
		t.Fatalf("ListOutgoing failed: %v", err)
	}
	if len(outgoing) != 1 {
		t.Fatalf("Expected 1 outgoing flight, got %d", len(outgoing))
	}
	if outgoing[0].BagsFromIncoming["BA123"] != 4 {
		t.Errorf("Bag map lost in JSON column roundtrip: %+v", outgoing[0].BagsFromIncoming)
	}
}

func TestSaveIncomingUpserts(t *testing.T) {
	repo := NewFlightRepository(setupTestDB(t))
	ctx := context.Background()
	sched := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	f := testIncoming("in-1", sched)
	if err := repo.SaveIncoming(ctx, f); err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	f.Carousel = "9"
	if err := repo.SaveIncoming(ctx, f); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	incoming, _ := repo.ListIncoming(ctx)
	if len(incoming) != 1 {
		t.Fatalf("Upsert duplicated the row, got %d rows", len(incoming))
	}
	if incoming[0].Carousel != "9" {
		t.Errorf("Upsert did not update fields, carousel = %q", incoming[0].Carousel)
	}
}

func TestListIncomingOrdersBySchedule(t *testing.T) {
	repo := NewFlightRepository(setupTestDB(t))
	ctx := context.Background()
	sched := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	late := testIncoming("in-late", sched.Add(4*time.Hour))
	early := testIncoming("in-early", sched)
	repo.SaveIncoming(ctx, late)
	repo.SaveIncoming(ctx, early)

	incoming, _ := repo.ListIncoming(ctx)
	if incoming[0].ID != "in-early" || incoming[1].ID != "in-late" {
		t.Errorf("Not ordered by scheduled time: %s, %s", incoming[0].ID, incoming[1].ID)
	}
}

func TestReplaceAllRewritesBothTables(t *testing.T) {
	repo := NewFlightRepository(setupTestDB(t))
	ctx := context.Background()
	sched := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	repo.SaveIncoming(ctx, testIncoming("stale-in", sched))
	repo.SaveOutgoing(ctx, entities.OutgoingFlight{ID: "stale-out", FlightNumber: "XX1", ScheduledTime: sched})

	err := repo.ReplaceAll(ctx,
		[]entities.IncomingFlight{testIncoming("fresh-in", sched.Add(time.Hour))},
		[]entities.OutgoingFlight{{ID: "fresh-out", FlightNumber: "LH1", ScheduledTime: sched.Add(3 * time.Hour)}},
	)
	if err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	incoming, _ := repo.ListIncoming(ctx)
	outgoing, _ := repo.ListOutgoing(ctx)
	if len(incoming) != 1 || incoming[0].ID != "fresh-in" {
		t.Errorf("Stale incoming rows survived ReplaceAll: %+v", incoming)
	}
	if len(outgoing) != 1 || outgoing[0].ID != "fresh-out" {
		t.Errorf("Stale outgoing rows survived ReplaceAll: %+v", outgoing)
	}
}

func TestReplaceAllWithEmptySnapshotClearsTables(t *testing.T) {
	repo := NewFlightRepository(setupTestDB(t))
	ctx := context.Background()
	sched := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	repo.SaveIncoming(ctx, testIncoming("in-1", sched))

	if err := repo.ReplaceAll(ctx, nil, nil); err != nil {
		t.Fatalf("ReplaceAll with empty snapshot failed: %v", err)
	}
	in, out, err := repo.CountFlights(ctx)
	if err != nil {
		t.Fatalf("CountFlights failed: %v", err)
	}
	if in != 0 || out != 0 {
		t.Errorf("Expected empty tables, got %d/%d", in, out)
	}
}

func TestDeleteFlights(t *testing.T) {
	repo := NewFlightRepository(setupTestDB(t))
	ctx := context.Background()
	sched := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	repo.SaveIncoming(ctx, testIncoming("in-1", sched))
	repo.SaveIncoming(ctx, testIncoming("in-2", sched.Add(time.Hour)))

	if err := repo.DeleteIncoming(ctx, "in-1"); err != nil {
		t.Fatalf("DeleteIncoming failed: %v", err)
	}
	incoming, _ := repo.ListIncoming(ctx)
	if len(incoming) != 1 || incoming[0].ID != "in-2" {
		t.Errorf("Wrong row deleted: %+v", incoming)
	}

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}
	in, out, _ := repo.CountFlights(ctx)
	if in != 0 || out != 0 {
		t.Errorf("DeleteAll left rows behind: %d/%d", in, out)
	}
}
