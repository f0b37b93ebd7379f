package entity

// Airport represents one entry from the public airport reference dataset.
// Read-only for the lifetime of the process.
type Airport struct {
	IATA    string
	ICAO    string
	Name    string
	City    string
	Country string
	Lat     float64
	Lon     float64
}
