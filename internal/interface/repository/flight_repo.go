package repository

import (
	"context"
	"time"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormFlightRepository implements the FlightRepository interface
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GORM flight repository
func NewGormFlightRepository(db *gorm.DB) repository.FlightRepository {
	db.AutoMigrate(&Flights{})

	return &GormFlightRepository{
		db: db,
	}
}

// Flights GORM model for database mapping
type Flights struct {
	ID           uint    `gorm:"primaryKey"`
	Date         string  `gorm:"column:date;index"`
	Origin       string  `gorm:"column:origin"`
	Destination  string  `gorm:"column:destination"`
	Airline      *string `gorm:"column:airline"`
	FlightNumber *string `gorm:"column:flight_number"`
	DistanceKm   int     `gorm:"column:distance_km"`
	DurationMin  int     `gorm:"column:duration_min"`
	IsLocal      bool    `gorm:"column:is_local"`
	CreatedAt    time.Time
}

// TableName overrides the default table name
func (Flights) TableName() string {
	return "flights"
}

// SaveBatch inserts all flights inside one transaction. The table is
// append-only; a failure rolls back every record.
func (r *GormFlightRepository) SaveBatch(ctx context.Context, flights []entity.Flight) error {
	if len(flights) == 0 {
		return nil
	}

	rows := make([]Flights, 0, len(flights))
	for _, f := range flights {
		rows = append(rows, Flights{
			Date:         f.Date,
			Origin:       f.Origin,
			Destination:  f.Destination,
			Airline:      f.Airline,
			FlightNumber: f.FlightNumber,
			DistanceKm:   f.DistanceKm,
			DurationMin:  f.DurationMin,
			IsLocal:      f.IsLocal,
		})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}

// FindAll returns every persisted flight, newest first
func (r *GormFlightRepository) FindAll(ctx context.Context) ([]entity.Flight, error) {
	var rows []Flights
	result := r.db.WithContext(ctx).Order("date desc").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	// Convert GORM models to domain entities
	flights := make([]entity.Flight, 0, len(rows))
	for _, row := range rows {
		flights = append(flights, entity.Flight{
			ID:           row.ID,
			Date:         row.Date,
			Origin:       row.Origin,
			Destination:  row.Destination,
			Airline:      row.Airline,
			FlightNumber: row.FlightNumber,
			DistanceKm:   row.DistanceKm,
			DurationMin:  row.DurationMin,
			IsLocal:      row.IsLocal,
			CreatedAt:    row.CreatedAt,
		})
	}
	return flights, nil
}
