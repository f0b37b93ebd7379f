package usecase

import (
	"context"
	"fmt"
	"time"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/domain/repository"
	"flightlog-service/pkg/logger"
	"flightlog-service/pkg/metrics"
	"flightlog-service/pkg/utils"
)

// minIdentLen is the shortest identifier worth sending to the provider. A
// 2-character ident is just a carrier prefix with no flight number.
const minIdentLen = 3

// TripReconciler fills in trip legs from the flight-status lookup or manual
// entry, computes derived distance and duration, and persists complete trips
// as an all-or-nothing batch.
type TripReconciler struct {
	lookup     *LookupUsecase
	airports   repository.AirportIndex
	homeMarket *HomeMarket
	flightRepo repository.FlightRepository
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewTripReconciler creates a new trip reconciler
func NewTripReconciler(
	lookup *LookupUsecase,
	airports repository.AirportIndex,
	homeMarket *HomeMarket,
	flightRepo repository.FlightRepository,
	m *metrics.Metrics,
	log logger.Logger,
) *TripReconciler {
	return &TripReconciler{
		lookup:     lookup,
		airports:   airports,
		homeMarket: homeMarket,
		flightRepo: flightRepo,
		metrics:    m,
		logger:     log,
	}
}

// ReconcileAndSave processes each leg in order, then saves the whole trip in
// one transaction. If any leg cannot be resolved, nothing is persisted and
// the annotated legs are returned for correction. The returned count is the
// number of flights persisted.
func (t *TripReconciler) ReconcileAndSave(ctx context.Context, legs []entity.TripLeg, addReturn bool) ([]entity.TripLeg, int, error) {
	// Legs are processed strictly sequentially: one lookup completes before
	// the next begins.
	allResolved := len(legs) > 0
	for i := range legs {
		t.reconcileLeg(ctx, &legs[i])
		if legs[i].State != entity.LegResolved {
			allResolved = false
		}
	}

	// The return segment mirrors resolved endpoints, so it is built only
	// after the outbound legs have been reconciled. An outbound leg that
	// resolved its airports through the lookup still yields a usable mirror.
	if addReturn && len(legs) > 0 {
		ret := mirrorReturnLeg(legs)
		t.reconcileLeg(ctx, &ret)
		legs = append(legs, ret)
		if ret.State != entity.LegResolved {
			allResolved = false
		}
	}

	if !allResolved {
		t.metrics.TripsRejected.Inc()
		t.logger.Warn("Trip save aborted, unresolved legs remain", "legs", len(legs))
		return legs, 0, nil
	}

	flights := make([]entity.Flight, 0, len(legs))
	for _, leg := range legs {
		flights = append(flights, t.toFlight(leg))
	}

	if err := t.flightRepo.SaveBatch(ctx, flights); err != nil {
		t.metrics.ErrorsCount.WithLabelValues("save_trip").Inc()
		for i := range legs {
			legs[i].State = entity.LegFailed
			legs[i].Error = "trip could not be persisted"
		}
		return legs, 0, fmt.Errorf("save trip: %w", err)
	}

	t.metrics.FlightsSaved.Add(float64(len(flights)))
	t.logger.Info("Trip saved", "flights", len(flights))
	return legs, len(flights), nil
}

// mirrorReturnLeg builds the return segment of a round trip: back from the
// last destination to the first origin.
func mirrorReturnLeg(legs []entity.TripLeg) entity.TripLeg {
	first, last := legs[0], legs[len(legs)-1]
	return entity.TripLeg{
		Origin:      last.Destination,
		Destination: first.Origin,
		Airline:     first.Airline,
	}
}

// reconcileLeg drives one leg through Pending -> Resolved / NeedsManual.
func (t *TripReconciler) reconcileLeg(ctx context.Context, leg *entity.TripLeg) {
	leg.State = entity.LegPending
	leg.Ident = utils.NormalizeIdent(leg.Ident)
	leg.Origin = utils.NormalizeAirportCode(leg.Origin)
	leg.Destination = utils.NormalizeAirportCode(leg.Destination)

	// Distance and duration are never negative; bad client values fall back
	// to "unknown" so the derived computations can fill them in.
	if leg.DistanceKm < 0 {
		leg.DistanceKm = 0
	}
	if leg.DurationMin < 0 {
		leg.DurationMin = 0
	}

	if len(leg.Ident) >= minIdentLen {
		t.applyLookup(ctx, leg)
		if leg.State == entity.LegNeedsManual {
			return
		}
	}

	if !leg.Persistable() {
		leg.State = entity.LegNeedsManual
		leg.Error = "origin and destination are required"
		return
	}

	t.fillDerived(leg)
	leg.State = entity.LegResolved
	leg.Error = ""
}

// applyLookup attempts the flight-status lookup and merges the result into
// any fields the user left blank. Every lookup failure is recoverable: the
// leg falls back to whatever was entered manually.
func (t *TripReconciler) applyLookup(ctx context.Context, leg *entity.TripLeg) {
	result, err := t.lookup.Lookup(ctx, leg.Ident)
	if err != nil {
		if !leg.Persistable() {
			leg.State = entity.LegNeedsManual
			leg.Error = fmt.Sprintf("lookup for %s failed (%v); enter origin and destination manually", leg.Ident, err)
		}
		return
	}

	if leg.Origin == "" {
		leg.Origin = utils.NormalizeAirportCode(result.Origin)
	}
	if leg.Destination == "" {
		leg.Destination = utils.NormalizeAirportCode(result.Destination)
	}
	if leg.DurationMin == 0 {
		if result.ActualDuration != nil {
			leg.DurationMin = *result.ActualDuration
		} else {
			leg.DurationMin = result.DurationMin
		}
	}
	if leg.Date == "" {
		leg.Date = result.DepartureDate
	}
	leg.Error = ""
}

// fillDerived computes distance from airport coordinates and estimates
// duration when the lookup produced neither.
func (t *TripReconciler) fillDerived(leg *entity.TripLeg) {
	if leg.DistanceKm == 0 {
		origin, okO := t.airports.Find(leg.Origin)
		dest, okD := t.airports.Find(leg.Destination)
		if okO && okD {
			leg.DistanceKm = utils.HaversineKm(origin.Lat, origin.Lon, dest.Lat, dest.Lon)
		}
	}

	if leg.DurationMin == 0 && leg.DistanceKm > 0 {
		leg.DurationMin = utils.EstimateDurationMin(leg.DistanceKm)
	}
}

func (t *TripReconciler) toFlight(leg entity.TripLeg) entity.Flight {
	if leg.Date == "" {
		leg.Date = time.Now().Format("2006-01-02")
	}
	flight := entity.Flight{
		Date:        leg.Date,
		Origin:      leg.Origin,
		Destination: leg.Destination,
		DistanceKm:  leg.DistanceKm,
		DurationMin: leg.DurationMin,
		IsLocal:     t.homeMarket.Contains(leg.Origin) && t.homeMarket.Contains(leg.Destination),
	}
	if leg.Airline != "" {
		airline := leg.Airline
		flight.Airline = &airline
	}
	if leg.Ident != "" {
		ident := leg.Ident
		flight.FlightNumber = &ident
	}
	return flight
}
