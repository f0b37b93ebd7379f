package usecase

import (
	"context"
	"errors"
	"time"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/domain/repository"
	"flightlog-service/pkg/logger"
	"flightlog-service/pkg/metrics"
	"flightlog-service/pkg/utils"
)

// LookupUsecase orchestrates one flight-status lookup: normalize the ident,
// query the provider, and record an audit entry.
type LookupUsecase struct {
	normalizer *IdentNormalizer
	provider   repository.FlightProvider
	lookupLog  repository.LookupLogRepository
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewLookupUsecase creates a new lookup usecase
func NewLookupUsecase(
	normalizer *IdentNormalizer,
	provider repository.FlightProvider,
	lookupLog repository.LookupLogRepository,
	m *metrics.Metrics,
	log logger.Logger,
) *LookupUsecase {
	return &LookupUsecase{
		normalizer: normalizer,
		provider:   provider,
		lookupLog:  lookupLog,
		metrics:    m,
		logger:     log,
	}
}

// Lookup resolves a raw user identifier to a representative flight leg.
func (u *LookupUsecase) Lookup(ctx context.Context, rawIdent string) (*entity.FlightLeg, error) {
	ident := utils.NormalizeIdent(rawIdent)
	if ident == "" {
		return nil, entity.ErrBadInput
	}

	normalized := u.normalizer.Normalize(ctx, ident)

	start := time.Now()
	u.metrics.LookupsTotal.Inc()
	leg, err := u.provider.LookupFlight(ctx, normalized)
	u.metrics.LookupTime.Observe(time.Since(start).Seconds())

	u.audit(ctx, ident, normalized, leg, err)

	if err != nil {
		u.logger.Warn("Flight lookup failed", "ident", ident, "normalized", normalized, "error", err)
		u.metrics.ErrorsCount.WithLabelValues("lookup").Inc()
		return nil, err
	}

	u.logger.Info("Flight lookup succeeded",
		"ident", normalized, "origin", leg.Origin, "destination", leg.Destination)
	return leg, nil
}

// audit appends one best-effort record to the lookup log.
func (u *LookupUsecase) audit(ctx context.Context, ident, normalized string, leg *entity.FlightLeg, lookupErr error) {
	record := &entity.LookupRecord{
		Ident:      ident,
		Normalized: normalized,
		Outcome:    classifyOutcome(lookupErr),
	}
	if leg != nil {
		record.Origin = leg.Origin
		record.Destination = leg.Destination
		record.DurationMin = leg.DurationMin
	}

	if err := u.lookupLog.Append(ctx, record); err != nil {
		u.logger.Warn("Failed to append lookup audit record", "error", err)
	}
}

func classifyOutcome(err error) string {
	switch {
	case err == nil:
		return entity.OutcomeOK
	case errors.Is(err, entity.ErrNotFound):
		return entity.OutcomeNotFound
	case errors.Is(err, entity.ErrMissingCredential):
		return entity.OutcomeConfigError
	default:
		if _, ok := entity.AsProviderError(err); ok {
			return entity.OutcomeProviderError
		}
		return entity.OutcomeNetworkError
	}
}

// Recent returns the latest audit records for the history endpoint.
func (u *LookupUsecase) Recent(ctx context.Context, limit int) ([]entity.LookupRecord, error) {
	return u.lookupLog.FindRecent(ctx, limit)
}
