package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/pkg/logger"
)

// truthy decodes the dataset's active flag, which shows up as "Y", "y",
// "true", a bare boolean, or 1 depending on the mirror.
type truthy bool

func (t *truthy) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*t = false
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*t = truthy(b)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "y", "yes", "true", "t", "1":
			*t = true
		default:
			*t = false
		}
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*t = n != 0
		return nil
	}

	*t = false
	return nil
}

// airlineDoc mirrors one record of the airline reference dataset.
type airlineDoc struct {
	Name   string `json:"name"`
	IATA   string `json:"iata"`
	ICAO   string `json:"icao"`
	Active truthy `json:"active"`
}

// AirlineClient fetches the airline reference dataset.
type AirlineClient struct {
	url    string
	client *http.Client
	logger logger.Logger
}

// NewAirlineClient creates a new airline dataset client
func NewAirlineClient(url string, client *http.Client, log logger.Logger) *AirlineClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &AirlineClient{url: url, client: client, logger: log}
}

// Airlines downloads and validates the dataset. Failures return an error and
// no records; the resolver treats that as unresolved, not fatal.
func (c *AirlineClient) Airlines(ctx context.Context) ([]entity.Airline, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("airlines dataset returned status %d", resp.StatusCode)
	}

	var docs []airlineDoc
	if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
		return nil, fmt.Errorf("decode airlines dataset: %w", err)
	}

	airlines := make([]entity.Airline, 0, len(docs))
	for _, d := range docs {
		airlines = append(airlines, entity.Airline{
			Name:   d.Name,
			IATA:   strings.ToUpper(strings.TrimSpace(d.IATA)),
			ICAO:   strings.ToUpper(strings.TrimSpace(d.ICAO)),
			Active: bool(d.Active),
		})
	}
	return airlines, nil
}
