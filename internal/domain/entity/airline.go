package entity

// Airline represents one entry from the public airline reference dataset.
// Never authoritative for flight existence, only for code resolution.
type Airline struct {
	IATA   string
	ICAO   string
	Name   string
	Active bool
}
