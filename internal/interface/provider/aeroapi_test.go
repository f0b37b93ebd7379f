package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*AeroAPIClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAeroAPIClient(srv.URL, "test-key", srv.Client(), logger.NewNop()), srv
}

func TestLookupFlightSuccess(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flights/SFR600", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("max_pages"))
		assert.Equal(t, "test-key", r.Header.Get("x-apikey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"flights":[{
			"ident":"SFR600",
			"origin":{"code":"FAOR"},
			"destination":{"code":"FACT"},
			"filed_ete":5400,
			"scheduled_off":"2024-01-01T08:00:00Z",
			"actual_off":"2024-01-01T10:00:00Z",
			"actual_on":"2024-01-01T12:30:00Z"
		}]}`))
	})

	leg, err := client.LookupFlight(context.Background(), "SFR600")
	require.NoError(t, err)
	assert.Equal(t, "FAOR", leg.Origin)
	assert.Equal(t, "FACT", leg.Destination)
	assert.Equal(t, 90, leg.DurationMin)
	require.NotNil(t, leg.ActualDuration)
	assert.Equal(t, 150, *leg.ActualDuration)
	assert.Equal(t, "2024-01-01", leg.DepartureDate)
}

func TestLookupFlightPrefersActualDeparture(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"flights":[
			{"ident":"SFR600","origin":{"code":"AAA"},"destination":{"code":"BBB"},"scheduled_off":"2024-02-01T06:00:00Z"},
			{"ident":"SFR600","origin":{"code":"FACT"},"destination":{"code":"FAOR"},"scheduled_off":"2024-01-31T06:00:00Z","actual_off":"2024-01-31T06:10:00Z"}
		]}`))
	})

	leg, err := client.LookupFlight(context.Background(), "SFR600")
	require.NoError(t, err)
	assert.Equal(t, "FACT", leg.Origin)
	assert.Equal(t, "2024-01-31", leg.DepartureDate)
	assert.Nil(t, leg.ActualDuration)
}

func TestLookupFlightZeroLegsIsNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"flights":[]}`))
	})

	_, err := client.LookupFlight(context.Background(), "ZZZ999")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestLookupFlightProviderError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.LookupFlight(context.Background(), "SFR600")
	pe, ok := entity.AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, pe.StatusCode)
}

func TestLookupFlightMissingInputs(t *testing.T) {
	client := NewAeroAPIClient("https://example.invalid", "", nil, logger.NewNop())

	_, err := client.LookupFlight(context.Background(), "")
	assert.ErrorIs(t, err, entity.ErrBadInput)

	_, err = client.LookupFlight(context.Background(), "SFR600")
	assert.ErrorIs(t, err, entity.ErrMissingCredential)
}

func TestLookupFlightNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force connection refused

	client := NewAeroAPIClient(srv.URL, "test-key", nil, logger.NewNop())
	_, err := client.LookupFlight(context.Background(), "SFR600")
	require.Error(t, err)
	assert.False(t, errors.Is(err, entity.ErrNotFound))
	if _, ok := entity.AsProviderError(err); ok {
		t.Fatal("transport failure must not be a ProviderError")
	}
}
