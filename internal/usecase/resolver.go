package usecase

import (
	"context"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/domain/repository"
	"flightlog-service/pkg/logger"
)

// CodeResolver resolves a 2-letter IATA carrier prefix to a 3-letter ICAO
// code. Implementations return entity.ErrUnresolvable when they find nothing;
// that is a signal to try the next resolver, never a hard failure.
type CodeResolver interface {
	Resolve(ctx context.Context, iata string) (string, error)
}

// DefaultOverrides maps home-market carrier prefixes straight to ICAO codes.
// Public datasets are unreliable for regional carriers, so these win before
// any network call.
func DefaultOverrides() map[string]string {
	return map[string]string{
		"FA": "SFR", // FlySafair
		"4Z": "LNK", // Airlink
		"MN": "CAW", // Comair / kulula
		"SA": "SAA", // South African Airways
		"JE": "MNO", // Mango
	}
}

// OverrideResolver answers from a static table without touching the network.
type OverrideResolver struct {
	overrides map[string]string
}

// NewOverrideResolver creates a resolver backed by a fixed mapping
func NewOverrideResolver(overrides map[string]string) *OverrideResolver {
	return &OverrideResolver{overrides: overrides}
}

// Resolve returns the mapped ICAO code or ErrUnresolvable
func (r *OverrideResolver) Resolve(_ context.Context, iata string) (string, error) {
	if icao, ok := r.overrides[iata]; ok {
		return icao, nil
	}
	return "", entity.ErrUnresolvable
}

// DatasetResolver searches the remote airline reference dataset. Any fetch
// failure, malformed payload, or empty dataset degrades to unresolved.
type DatasetResolver struct {
	source repository.AirlineSource
	logger logger.Logger
}

// NewDatasetResolver creates a resolver backed by the airline dataset
func NewDatasetResolver(source repository.AirlineSource, log logger.Logger) *DatasetResolver {
	return &DatasetResolver{source: source, logger: log}
}

// Resolve finds an active airline whose IATA code matches
func (r *DatasetResolver) Resolve(ctx context.Context, iata string) (string, error) {
	airlines, err := r.source.Airlines(ctx)
	if err != nil {
		r.logger.Warn("Airline dataset lookup failed", "iata", iata, "error", err)
		return "", entity.ErrUnresolvable
	}

	for _, a := range airlines {
		if a.IATA == iata && a.Active && a.ICAO != "" {
			return a.ICAO, nil
		}
	}
	return "", entity.ErrUnresolvable
}

// ChainResolver tries each resolver in order, first match wins.
type ChainResolver struct {
	resolvers []CodeResolver
}

// NewChainResolver creates a prioritized resolver chain
func NewChainResolver(resolvers ...CodeResolver) *ChainResolver {
	return &ChainResolver{resolvers: resolvers}
}

// Resolve walks the chain. Only ErrUnresolvable falls through to the next
// resolver; anything else is unexpected and surfaces immediately.
func (r *ChainResolver) Resolve(ctx context.Context, iata string) (string, error) {
	for _, resolver := range r.resolvers {
		icao, err := resolver.Resolve(ctx, iata)
		if err == nil {
			return icao, nil
		}
		if err != entity.ErrUnresolvable {
			return "", err
		}
	}
	return "", entity.ErrUnresolvable
}
