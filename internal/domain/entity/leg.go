package entity

// LegState tracks a trip leg through reconciliation.
type LegState string

const (
	LegPending     LegState = "pending"
	LegResolved    LegState = "resolved"
	LegNeedsManual LegState = "needs_manual"
	LegFailed      LegState = "failed"
)

// TripLeg is one point-to-point segment of a trip while it is being entered.
// Origin and Destination hold airport codes once resolved, either from the
// flight-status lookup or from manual entry.
type TripLeg struct {
	Ident       string `json:"ident,omitempty"`
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
	Date        string `json:"date,omitempty"`
	Airline     string `json:"airline,omitempty"`
	DistanceKm  int    `json:"distance_km,omitempty"`
	DurationMin int    `json:"duration_min,omitempty"`

	State LegState `json:"state,omitempty"`
	Error string   `json:"error,omitempty"`
}

// Persistable reports whether the leg resolved both endpoints.
func (l *TripLeg) Persistable() bool {
	return l.Origin != "" && l.Destination != ""
}
