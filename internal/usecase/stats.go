package usecase

import (
	"context"
	"time"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/domain/repository"
	"flightlog-service/pkg/logger"
)

// Stats aggregates the whole logbook for the dashboard.
type Stats struct {
	Count          int `json:"count"`
	CountYTD       int `json:"count_ytd"`
	DistanceKm     int `json:"distance_km"`
	DistanceKmYTD  int `json:"distance_km_ytd"`
	DurationMin    int `json:"duration_min"`
	DurationMinYTD int `json:"duration_min_ytd"`
	AvgDistanceKm  int `json:"avg_distance_km"`

	Monthly []MonthBucket `json:"monthly"`
}

// MonthBucket is one month of the trailing 12-month analytics series.
type MonthBucket struct {
	Month       string        `json:"month"` // "Jan"
	Year        int           `json:"year"`
	Flights     int           `json:"flights"`
	DistanceKm  int           `json:"distance_km"`
	DurationMin int           `json:"duration_min"`
	Points      []FlightPoint `json:"points,omitempty"`
}

// FlightPoint is one flight dot in the per-month scatter, with its
// local/international marker.
type FlightPoint struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Local       bool   `json:"local"`
}

// StatsUsecase computes logbook aggregates and the monthly series.
type StatsUsecase struct {
	flightRepo repository.FlightRepository
	homeMarket *HomeMarket
	logger     logger.Logger
	now        func() time.Time
}

// NewStatsUsecase creates a new stats usecase
func NewStatsUsecase(flightRepo repository.FlightRepository, homeMarket *HomeMarket, log logger.Logger) *StatsUsecase {
	return &StatsUsecase{
		flightRepo: flightRepo,
		homeMarket: homeMarket,
		logger:     log,
		now:        time.Now,
	}
}

// Compute builds the dashboard stats from every persisted flight.
func (s *StatsUsecase) Compute(ctx context.Context) (*Stats, error) {
	flights, err := s.flightRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	stats := &Stats{Monthly: emptyMonths(now)}

	for _, f := range flights {
		stats.Count++
		stats.DistanceKm += f.DistanceKm
		stats.DurationMin += f.DurationMin

		date, ok := parseFlightDate(f.Date)
		if !ok {
			s.logger.Debug("Skipping flight with unparseable date in series", "date", f.Date)
			continue
		}

		if date.Year() == now.Year() {
			stats.CountYTD++
			stats.DistanceKmYTD += f.DistanceKm
			stats.DurationMinYTD += f.DurationMin
		}

		s.addToMonth(stats.Monthly, now, date, f)
	}

	if stats.Count > 0 {
		stats.AvgDistanceKm = stats.DistanceKm / stats.Count
	}
	return stats, nil
}

// emptyMonths builds the 12-month skeleton ending at the current month.
func emptyMonths(now time.Time) []MonthBucket {
	months := make([]MonthBucket, 0, 12)
	for i := 11; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		months = append(months, MonthBucket{
			Month: m.Format("Jan"),
			Year:  m.Year(),
		})
	}
	return months
}

func (s *StatsUsecase) addToMonth(months []MonthBucket, now, date time.Time, f entity.Flight) {
	// Offset of the flight's month from the start of the 12-month window.
	idx := (date.Year()-now.Year())*12 + int(date.Month()) - int(now.Month()) + 11
	if idx < 0 || idx >= len(months) {
		return
	}

	months[idx].Flights++
	months[idx].DistanceKm += f.DistanceKm
	months[idx].DurationMin += f.DurationMin
	months[idx].Points = append(months[idx].Points, FlightPoint{
		Origin:      f.Origin,
		Destination: f.Destination,
		Local:       f.IsLocal,
	})
}

// parseFlightDate accepts both plain dates and full timestamps, which is how
// dates ended up stored historically.
func parseFlightDate(raw string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
