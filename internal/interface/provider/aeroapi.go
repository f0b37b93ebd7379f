// Package provider implements the flight-status lookup against the
// FlightAware AeroAPI. One request per lookup, bounded to a single page.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/pkg/logger"
)

// aeroFlight mirrors one leg of an AeroAPI /flights/{ident} response.
type aeroFlight struct {
	Ident  string `json:"ident"`
	Origin struct {
		Code string `json:"code"`
	} `json:"origin"`
	Destination struct {
		Code string `json:"code"`
	} `json:"destination"`
	FiledEte     int        `json:"filed_ete"`
	ScheduledOff string     `json:"scheduled_off"`
	ActualOff    *time.Time `json:"actual_off"`
	ActualOn     *time.Time `json:"actual_on"`
}

type flightsResponse struct {
	Flights []aeroFlight `json:"flights"`
}

// AeroAPIClient queries the AeroAPI for historical and scheduled legs.
type AeroAPIClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  logger.Logger
}

// NewAeroAPIClient creates a new AeroAPI client
func NewAeroAPIClient(baseURL, apiKey string, client *http.Client, log logger.Logger) *AeroAPIClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &AeroAPIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
		logger:  log,
	}
}

// LookupFlight fetches one page of legs for ident and extracts the most
// relevant one, preferring legs that actually departed over purely scheduled
// ones.
func (c *AeroAPIClient) LookupFlight(ctx context.Context, ident string) (*entity.FlightLeg, error) {
	if ident == "" {
		return nil, entity.ErrBadInput
	}
	if c.apiKey == "" {
		return nil, entity.ErrMissingCredential
	}

	reqURL := fmt.Sprintf("%s/flights/%s?max_pages=1", c.baseURL, url.PathEscape(ident))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-apikey", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Provider returned non-success status", "ident", ident, "status", resp.StatusCode)
		return nil, &entity.ProviderError{StatusCode: resp.StatusCode}
	}

	var body flightsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode provider response: %w", err)
	}

	if len(body.Flights) == 0 {
		return nil, entity.ErrNotFound
	}

	return extractLeg(selectLeg(body.Flights)), nil
}

// selectLeg prefers the first leg with a recorded actual departure, falling
// back to the first leg in provider order.
func selectLeg(flights []aeroFlight) aeroFlight {
	for _, f := range flights {
		if f.ActualOff != nil {
			return f
		}
	}
	return flights[0]
}

func extractLeg(f aeroFlight) *entity.FlightLeg {
	leg := &entity.FlightLeg{
		Origin:      f.Origin.Code,
		Destination: f.Destination.Code,
	}

	if f.FiledEte > 0 {
		leg.DurationMin = int(math.Round(float64(f.FiledEte) / 60))
	}

	if f.ActualOff != nil && f.ActualOn != nil {
		mins := int(math.Round(f.ActualOn.Sub(*f.ActualOff).Minutes()))
		leg.ActualDuration = &mins
	}

	// Calendar-date portion of the scheduled departure timestamp.
	if idx := strings.Index(f.ScheduledOff, "T"); idx > 0 {
		leg.DepartureDate = f.ScheduledOff[:idx]
	} else {
		leg.DepartureDate = f.ScheduledOff
	}

	return leg
}
