package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"airside-ops/transferdesk/internal/config"
	"airside-ops/transferdesk/internal/db"
	"airside-ops/transferdesk/internal/logging"
	"airside-ops/transferdesk/internal/routes"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Transferdesk starting up",
		"environment", cfg.AppEnv,
		"version", cfg.AppVersion,
	)

	// Postgres when a DSN is configured, embedded SQLite otherwise. The raw
	// sqlx handle (health check, snapshot archive) only exists for Postgres.
	if cfg.PostgresDSN != "" {
		if err := db.InitPostgres(cfg.PostgresDSN); err != nil {
			logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
			log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
		}
		if _, err := db.InitPostgresORM(cfg.PostgresDSN); err != nil {
			logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
			log.Fatalf("Failed to connect to Postgres (GORM): %v", err)
		}
		logging.Info("Connected to Postgres")
	} else {
		if _, err := db.InitSQLiteORM(cfg.SQLitePath); err != nil {
			logging.Error("Failed to open SQLite database", "error", err.Error())
			log.Fatalf("Failed to open SQLite database: %v", err)
		}
		logging.Info("Using SQLite store", "path", cfg.SQLitePath)
	}

	if err := db.Migrate(db.PgDB); err != nil {
		logging.Error("Migration failed", "error", err.Error())
		log.Fatalf("Migration failed: %v", err)
	}

	upSince := time.Now()
	router := routes.RegisterRoutes(cfg, upSince)

	// Metrics endpoint lives outside the Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	logging.Info("Server starting", "port", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, mux))
}
