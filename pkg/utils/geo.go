package utils

import "math"

// earthRadiusKm is the mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// Cruise assumptions for the duration estimate.
const (
	cruiseSpeedKmh    = 800
	groundOverheadMin = 30
)

// HaversineKm returns the great-circle distance between two points in whole
// kilometers. Inputs are degrees. Safe for coincident and antipodal points.
func HaversineKm(lat1, lon1, lat2, lon2 float64) int {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(math.Round(earthRadiusKm * c))
}

// EstimateDurationMin estimates flight duration in minutes from distance,
// assuming an 800 km/h cruise plus a fixed 30 minute ground overhead. A rough
// estimate only, never used when the provider reported a duration.
func EstimateDurationMin(distanceKm int) int {
	return int(math.Round(float64(distanceKm)/cruiseSpeedKmh*60)) + groundOverheadMin
}
