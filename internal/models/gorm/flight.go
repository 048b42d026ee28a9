package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"airside-ops/transferdesk/internal/models/entities"
)

// LinkSet stores an incoming flight's links as a JSON text column.
type LinkSet []entities.Link

func (s LinkSet) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *LinkSet) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported link set column type %T", value)
	}
}

// BagMap stores an outgoing flight's flight-number-keyed bag counts as a
// JSON text column, matching the persisted wire shape.
type BagMap map[string]int

func (m BagMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *BagMap) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported bag map column type %T", value)
	}
}

// IncomingFlight is the persisted row for an arriving flight.
type IncomingFlight struct {
	ID            string     `gorm:"column:id;primaryKey"`
	FlightNumber  string     `gorm:"column:flight_number;type:varchar(10);not null;index"`
	Terminal      string     `gorm:"column:terminal;type:varchar(10);not null"`
	Origin        string     `gorm:"column:origin;type:varchar(100)"`
	ScheduledTime time.Time  `gorm:"column:scheduled_time;not null;index"`
	ActualTime    *time.Time `gorm:"column:actual_time"`
	ExpectedTime  *time.Time `gorm:"column:expected_time"`
	Date          time.Time  `gorm:"column:date;not null;index"`

	BagAvailableTime *time.Time `gorm:"column:bag_available_time"`
	Carousel         string     `gorm:"column:carousel;type:varchar(20)"`
	Notes            string     `gorm:"column:notes;type:text"`
	Cancelled        bool       `gorm:"column:cancelled;not null;default:false"`

	CollectedTime             *time.Time `gorm:"column:collected_time"`
	DeliveredTime             *time.Time `gorm:"column:delivered_time"`
	ScreeningBagCount         *int       `gorm:"column:screening_bag_count"`
	ScreeningStartTime        *time.Time `gorm:"column:screening_start_time"`
	ScreeningEndTime          *time.Time `gorm:"column:screening_end_time"`
	DeliveredToScreeningTime  *time.Time `gorm:"column:delivered_to_screening_time"`
	DeliveredNonScreeningTime *time.Time `gorm:"column:delivered_non_screening_time"`

	Links LinkSet `gorm:"column:links;type:text"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (IncomingFlight) TableName() string {
	return "incoming_flights"
}

// OutgoingFlight is the persisted row for a departing flight.
type OutgoingFlight struct {
	ID            string     `gorm:"column:id;primaryKey"`
	FlightNumber  string     `gorm:"column:flight_number;type:varchar(10);not null;index"`
	Terminal      string     `gorm:"column:terminal;type:varchar(10);not null"`
	Destination   string     `gorm:"column:destination;type:varchar(100)"`
	ScheduledTime time.Time  `gorm:"column:scheduled_time;not null;index"`
	ActualTime    *time.Time `gorm:"column:actual_time"`
	ExpectedTime  *time.Time `gorm:"column:expected_time"`
	Cancelled     bool       `gorm:"column:cancelled;not null;default:false"`

	BagsFromIncoming BagMap `gorm:"column:bags_from_incoming;type:text"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (OutgoingFlight) TableName() string {
	return "outgoing_flights"
}

// ToEntity converts a persisted incoming row to the domain shape.
func (f *IncomingFlight) ToEntity() entities.IncomingFlight {
	return entities.IncomingFlight{
		ID:                        f.ID,
		FlightNumber:              f.FlightNumber,
		Terminal:                  f.Terminal,
		Origin:                    f.Origin,
		ScheduledTime:             f.ScheduledTime,
		ActualTime:                f.ActualTime,
		ExpectedTime:              f.ExpectedTime,
		Date:                      f.Date,
		BagAvailableTime:          f.BagAvailableTime,
		Carousel:                  f.Carousel,
		Notes:                     f.Notes,
		Cancelled:                 f.Cancelled,
		CollectedTime:             f.CollectedTime,
		DeliveredTime:             f.DeliveredTime,
		ScreeningBagCount:         f.ScreeningBagCount,
		ScreeningStartTime:        f.ScreeningStartTime,
		ScreeningEndTime:          f.ScreeningEndTime,
		DeliveredToScreeningTime:  f.DeliveredToScreeningTime,
		DeliveredNonScreeningTime: f.DeliveredNonScreeningTime,
		Links:                     append([]entities.Link(nil), f.Links...),
	}
}

// FromIncomingEntity converts a domain incoming flight to its persisted row.
func FromIncomingEntity(f entities.IncomingFlight) IncomingFlight {
	return IncomingFlight{
		ID:                        f.ID,
		FlightNumber:              f.FlightNumber,
		Terminal:                  f.Terminal,
		Origin:                    f.Origin,
		ScheduledTime:             f.ScheduledTime,
		ActualTime:                f.ActualTime,
		ExpectedTime:              f.ExpectedTime,
		Date:                      f.Date,
		BagAvailableTime:          f.BagAvailableTime,
		Carousel:                  f.Carousel,
		Notes:                     f.Notes,
		Cancelled:                 f.Cancelled,
		CollectedTime:             f.CollectedTime,
		DeliveredTime:             f.DeliveredTime,
		ScreeningBagCount:         f.ScreeningBagCount,
		ScreeningStartTime:        f.ScreeningStartTime,
		ScreeningEndTime:          f.ScreeningEndTime,
		DeliveredToScreeningTime:  f.DeliveredToScreeningTime,
		DeliveredNonScreeningTime: f.DeliveredNonScreeningTime,
		Links:                     LinkSet(f.Links),
	}
}

// ToEntity converts a persisted outgoing row to the domain shape.
func (f *OutgoingFlight) ToEntity() entities.OutgoingFlight {
	return entities.OutgoingFlight{
		ID:               f.ID,
		FlightNumber:     f.FlightNumber,
		Terminal:         f.Terminal,
		Destination:      f.Destination,
		ScheduledTime:    f.ScheduledTime,
		ActualTime:       f.ActualTime,
		ExpectedTime:     f.ExpectedTime,
		Cancelled:        f.Cancelled,
		BagsFromIncoming: map[string]int(f.BagsFromIncoming),
	}
}

// FromOutgoingEntity converts a domain outgoing flight to its persisted row.
func FromOutgoingEntity(f entities.OutgoingFlight) OutgoingFlight {
	return OutgoingFlight{
		ID:               f.ID,
		FlightNumber:     f.FlightNumber,
		Terminal:         f.Terminal,
		Destination:      f.Destination,
		ScheduledTime:    f.ScheduledTime,
		ActualTime:       f.ActualTime,
		ExpectedTime:     f.ExpectedTime,
		Cancelled:        f.Cancelled,
		BagsFromIncoming: BagMap(f.BagsFromIncoming),
	}
}
