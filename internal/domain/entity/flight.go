package entity

import "time"

// Flight is one persisted logbook entry. Records are append-only: created on
// save, never updated or deleted.
type Flight struct {
	ID           uint      `json:"id"`
	Date         string    `json:"date"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Airline      *string   `json:"airline,omitempty"`
	FlightNumber *string   `json:"flight_number,omitempty"`
	DistanceKm   int       `json:"distance_km"`
	DurationMin  int       `json:"duration_min"`
	IsLocal      bool      `json:"is_local"`
	CreatedAt    time.Time `json:"created_at"`
}
