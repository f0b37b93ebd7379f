package repository

import (
	"context"

	"flightlog-service/internal/domain/entity"
)

// AirlineSource provides the public airline reference dataset. A failed or
// empty fetch yields an empty slice, not an error the caller must handle
// beyond falling back.
type AirlineSource interface {
	Airlines(ctx context.Context) ([]entity.Airline, error)
}

// AirportIndex is the session-scoped airport lookup table. Lookups tolerate
// either IATA or ICAO codes.
type AirportIndex interface {
	Find(code string) (entity.Airport, bool)
}

// FlightProvider queries the external flight-status service for the most
// relevant leg matching an identifier.
type FlightProvider interface {
	LookupFlight(ctx context.Context, ident string) (*entity.FlightLeg, error)
}
