package repository

import (
	"context"

	"flightlog-service/internal/domain/entity"
)

// FlightRepository defines the interface for persisted logbook flights.
// The store is append-only: there are no update or delete operations.
type FlightRepository interface {
	// SaveBatch inserts all flights in a single transaction. Either every
	// record is persisted or none are.
	SaveBatch(ctx context.Context, flights []entity.Flight) error
	FindAll(ctx context.Context) ([]entity.Flight, error)
}
