package entity

import "time"

// FlightLeg is the representative leg extracted from a flight-status lookup.
type FlightLeg struct {
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	DurationMin    int    `json:"duration"`
	ActualDuration *int   `json:"actual_duration"`
	DepartureDate  string `json:"departure_date"`
}

// LookupRecord is one append-only audit entry per flight-status lookup.
type LookupRecord struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Ident       string    `bson:"ident" json:"ident"`
	Normalized  string    `bson:"normalized" json:"normalized"`
	Outcome     string    `bson:"outcome" json:"outcome"`
	Origin      string    `bson:"origin,omitempty" json:"origin,omitempty"`
	Destination string    `bson:"destination,omitempty" json:"destination,omitempty"`
	DurationMin int       `bson:"durationMin,omitempty" json:"duration_min,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"created_at"`
}

// Lookup outcomes recorded in the audit log.
const (
	OutcomeOK            = "ok"
	OutcomeNotFound      = "not_found"
	OutcomeProviderError = "provider_error"
	OutcomeNetworkError  = "network_error"
	OutcomeConfigError   = "config_error"
)
