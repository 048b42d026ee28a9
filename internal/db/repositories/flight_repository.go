package repositories

import (
	"context"

	"airside-ops/transferdesk/internal/models/entities"
	gormModels "airside-ops/transferdesk/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FlightRepository persists both flight collections through GORM. Rows carry
// the link set / bag map as JSON columns, matching the sync wire shape.
type FlightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// ListIncoming loads all incoming flights ordered by scheduled time.
func (r *FlightRepository) ListIncoming(ctx context.Context) ([]entities.IncomingFlight, error) {
	var rows []gormModels.IncomingFlight
	err := r.db.WithContext(ctx).
		Order("scheduled_time asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entities.IncomingFlight, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEntity())
	}
	return out, nil
}

// ListOutgoing loads all outgoing flights ordered by scheduled time.
func (r *FlightRepository) ListOutgoing(ctx context.Context) ([]entities.OutgoingFlight, error) {
	var rows []gormModels.OutgoingFlight
	err := r.db.WithContext(ctx).
		Order("scheduled_time asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entities.OutgoingFlight, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEntity())
	}
	return out, nil
}

// SaveIncoming upserts one incoming flight row.
func (r *FlightRepository) SaveIncoming(ctx context.Context, f entities.IncomingFlight) error {
	row := gormModels.FromIncomingEntity(f)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}

// SaveOutgoing upserts one outgoing flight row.
func (r *FlightRepository) SaveOutgoing(ctx context.Context, f entities.OutgoingFlight) error {
	row := gormModels.FromOutgoingEntity(f)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}

// ReplaceAll rewrites both tables from a board snapshot in one transaction,
// so a half-written working set is never readable.
func (r *FlightRepository) ReplaceAll(ctx context.Context, incoming []entities.IncomingFlight, outgoing []entities.OutgoingFlight) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&gormModels.IncomingFlight{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&gormModels.OutgoingFlight{}).Error; err != nil {
			return err
		}

		if len(incoming) > 0 {
			rows := make([]gormModels.IncomingFlight, 0, len(incoming))
			for _, f := range incoming {
				rows = append(rows, gormModels.FromIncomingEntity(f))
			}
			if err := tx.CreateInBatches(rows, 100).Error; err != nil {
				return err
			}
		}
		if len(outgoing) > 0 {
			rows := make([]gormModels.OutgoingFlight, 0, len(outgoing))
			for _, f := range outgoing {
				rows = append(rows, gormModels.FromOutgoingEntity(f))
			}
			if err := tx.CreateInBatches(rows, 100).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteIncoming removes one incoming flight row.
func (r *FlightRepository) DeleteIncoming(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.IncomingFlight{}).Error
}

// DeleteOutgoing removes one outgoing flight row.
func (r *FlightRepository) DeleteOutgoing(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.OutgoingFlight{}).Error
}

// DeleteAll clears both tables (the persisted side of a day reset).
func (r *FlightRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&gormModels.IncomingFlight{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&gormModels.OutgoingFlight{}).Error
	})
}

// CountFlights returns row counts for both tables.
func (r *FlightRepository) CountFlights(ctx context.Context) (incoming, outgoing int64, err error) {
	if err = r.db.WithContext(ctx).Model(&gormModels.IncomingFlight{}).Count(&incoming).Error; err != nil {
		return 0, 0, err
	}
	if err = r.db.WithContext(ctx).Model(&gormModels.OutgoingFlight{}).Count(&outgoing).Error; err != nil {
		return 0, 0, err
	}
	return incoming, outgoing, nil
}
