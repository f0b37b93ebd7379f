package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"flightlog-service/pkg/logger"
)

func TestNormalizeRewritesIATAIdent(t *testing.T) {
	source := &fakeAirlineSource{}
	chain := NewChainResolver(
		NewOverrideResolver(DefaultOverrides()),
		NewDatasetResolver(source, logger.NewNop()),
	)
	normalizer := NewIdentNormalizer(chain, logger.NewNop())

	got := normalizer.Normalize(context.Background(), "FA600")
	assert.Equal(t, "SFR600", got)
	assert.Equal(t, 0, source.calls, "override-resolved ident must not fetch the dataset")
}

func TestNormalizePassesThroughNonIATAIdents(t *testing.T) {
	normalizer := NewIdentNormalizer(NewOverrideResolver(DefaultOverrides()), logger.NewNop())

	tests := []string{
		"SFR600",  // already ICAO prefix
		"BAW123A", // trailing letter
		"600",     // digits only
		"FA",      // no flight number
		"F600",    // 1-letter prefix
		"",
	}
	for _, ident := range tests {
		assert.Equal(t, ident, normalizer.Normalize(context.Background(), ident))
	}
}

func TestNormalizeKeepsOriginalWhenUnresolved(t *testing.T) {
	source := &fakeAirlineSource{err: assert.AnError}
	chain := NewChainResolver(
		NewOverrideResolver(DefaultOverrides()),
		NewDatasetResolver(source, logger.NewNop()),
	)
	normalizer := NewIdentNormalizer(chain, logger.NewNop())

	assert.Equal(t, "QZ7500", normalizer.Normalize(context.Background(), "QZ7500"))
}
