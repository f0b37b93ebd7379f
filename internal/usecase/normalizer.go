package usecase

import (
	"context"
	"regexp"

	"flightlog-service/pkg/logger"
)

// iataIdentPattern matches an IATA-style flight number: a 2-letter carrier
// prefix followed by digits. ICAO-style idents (3-letter prefix) do not match
// and pass through unchanged.
var iataIdentPattern = regexp.MustCompile(`^([A-Z]{2})([0-9]+)$`)

// IdentNormalizer rewrites IATA-style flight numbers to ICAO form before the
// provider lookup. Purely advisory: a failed resolution leaves the original
// identifier intact.
type IdentNormalizer struct {
	resolver CodeResolver
	logger   logger.Logger
}

// NewIdentNormalizer creates a new identifier normalizer
func NewIdentNormalizer(resolver CodeResolver, log logger.Logger) *IdentNormalizer {
	return &IdentNormalizer{resolver: resolver, logger: log}
}

// Normalize returns the best-effort provider identifier for ident.
func (n *IdentNormalizer) Normalize(ctx context.Context, ident string) string {
	match := iataIdentPattern.FindStringSubmatch(ident)
	if match == nil {
		return ident
	}

	prefix, digits := match[1], match[2]
	icao, err := n.resolver.Resolve(ctx, prefix)
	if err != nil {
		n.logger.Debug("Carrier prefix not resolved, keeping original ident", "ident", ident)
		return ident
	}

	normalized := icao + digits
	n.logger.Info("Converted ident to ICAO form", "from", ident, "to", normalized)
	return normalized
}
