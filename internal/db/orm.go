package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	gormModels "airside-ops/transferdesk/internal/models/gorm"
)

var PgDB *gorm.DB

// InitPostgresORM opens the GORM handle used by the flight repository.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = db
	return db, nil
}

// InitSQLiteORM opens a file-backed (or :memory:) SQLite handle for local
// development when no Postgres DSN is configured.
func InitSQLiteORM(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	PgDB = db
	return db, nil
}

// Migrate creates the flight tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&gormModels.IncomingFlight{}, &gormModels.OutgoingFlight{})
}
