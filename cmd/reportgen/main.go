package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"airside-ops/transferdesk/internal/board"
	"airside-ops/transferdesk/internal/config"
	"airside-ops/transferdesk/internal/db"
	"airside-ops/transferdesk/internal/db/repositories"
	"airside-ops/transferdesk/internal/logging"
	"airside-ops/transferdesk/internal/services"
)

// reportgen loads the persisted working set and writes the day report as JSON
// to stdout, for handoff to whatever renders the printable sheet.
func main() {
	dayFlag := flag.String("day", "", "day to report on (YYYY-MM-DD, default today)")
	flag.Parse()

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	day := time.Now()
	if *dayFlag != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *dayFlag, time.Local)
		if err != nil {
			log.Fatalf("Invalid -day value %q: %v", *dayFlag, err)
		}
		day = parsed
	}

	if cfg.PostgresDSN != "" {
		if _, err := db.InitPostgresORM(cfg.PostgresDSN); err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
	} else {
		if _, err := db.InitSQLiteORM(cfg.SQLitePath); err != nil {
			log.Fatalf("Failed to open SQLite database: %v", err)
		}
	}

	b := board.New()
	repo := repositories.NewFlightRepository(db.PgDB)
	snapshot := services.NewSnapshotService(repo, nil, b, nil)
	if err := snapshot.LoadWorkingSet(context.Background()); err != nil {
		log.Fatalf("Failed to load working set: %v", err)
	}

	report := services.NewReportService(b, cfg.AtRiskThreshold).BuildDayReport(day, time.Now())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatalf("Failed to encode report: %v", err)
	}
}
