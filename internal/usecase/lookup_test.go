package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightlog-service/internal/domain/entity"
)

func TestLookupNormalizesBeforeProviderCall(t *testing.T) {
	provider := &fakeProvider{leg: &entity.FlightLeg{Origin: "FAOR", Destination: "FACT"}}
	log := &fakeLookupLog{}
	lookup := newTestLookup(t, provider, &fakeAirlineSource{}, log)

	_, err := lookup.Lookup(context.Background(), " fa 600 ")
	require.NoError(t, err)

	require.Len(t, provider.idents, 1)
	assert.Equal(t, "SFR600", provider.idents[0])

	require.Len(t, log.records, 1)
	assert.Equal(t, "FA600", log.records[0].Ident)
	assert.Equal(t, "SFR600", log.records[0].Normalized)
	assert.Equal(t, entity.OutcomeOK, log.records[0].Outcome)
}

func TestLookupEmptyIdentIsBadInput(t *testing.T) {
	provider := &fakeProvider{}
	lookup := newTestLookup(t, provider, &fakeAirlineSource{}, &fakeLookupLog{})

	_, err := lookup.Lookup(context.Background(), "   ")
	assert.ErrorIs(t, err, entity.ErrBadInput)
	assert.Empty(t, provider.idents)
}

func TestLookupRecordsFailureOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		outcome string
	}{
		{"not found", entity.ErrNotFound, entity.OutcomeNotFound},
		{"provider error", &entity.ProviderError{StatusCode: 502}, entity.OutcomeProviderError},
		{"network failure", assert.AnError, entity.OutcomeNetworkError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &fakeLookupLog{}
			lookup := newTestLookup(t, &fakeProvider{err: tt.err}, &fakeAirlineSource{}, log)

			_, err := lookup.Lookup(context.Background(), "SFR600")
			require.Error(t, err)
			require.Len(t, log.records, 1)
			assert.Equal(t, tt.outcome, log.records[0].Outcome)
		})
	}
}
