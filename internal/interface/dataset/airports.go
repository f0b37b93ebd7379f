// Package dataset fetches the public airport and airline reference datasets
// over HTTP and validates them into strict domain records at the boundary.
// Both datasets are best-effort: a failed fetch degrades to an empty table.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/pkg/logger"
	"flightlog-service/pkg/utils"
)

// airportDoc mirrors one value of the airports dataset, which is a single
// JSON object keyed by ICAO code. Field matching is case-insensitive, which
// absorbs the casing variants seen across dataset mirrors.
type airportDoc struct {
	ICAO    string  `json:"icao"`
	IATA    string  `json:"iata"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// AirportClient fetches the airport reference dataset.
type AirportClient struct {
	url    string
	client *http.Client
	logger logger.Logger
}

// NewAirportClient creates a new airport dataset client
func NewAirportClient(url string, client *http.Client, log logger.Logger) *AirportClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &AirportClient{url: url, client: client, logger: log}
}

// FetchIndex downloads the dataset and builds the session-scoped lookup
// table. On any failure it returns an empty index and the error; callers keep
// the empty index and degrade to manual entry.
func (c *AirportClient) FetchIndex(ctx context.Context) (*Index, error) {
	empty := NewIndex(nil)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return empty, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return empty, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return empty, fmt.Errorf("airports dataset returned status %d", resp.StatusCode)
	}

	var docs map[string]airportDoc
	if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
		return empty, fmt.Errorf("decode airports dataset: %w", err)
	}

	airports := make([]entity.Airport, 0, len(docs))
	for key, d := range docs {
		if d.ICAO == "" {
			d.ICAO = key
		}
		airports = append(airports, entity.Airport{
			IATA:    d.IATA,
			ICAO:    d.ICAO,
			Name:    d.Name,
			City:    d.City,
			Country: d.Country,
			Lat:     d.Lat,
			Lon:     d.Lon,
		})
	}

	c.logger.Info("Loaded airport dataset", "airports", len(airports))
	return NewIndex(airports), nil
}

// Index is an immutable airport lookup table keyed by both IATA and ICAO.
type Index struct {
	byCode map[string]entity.Airport
}

// NewIndex builds an index from airport records. IATA entries win collisions
// with ICAO entries of the same code, which does not occur in practice since
// IATA codes are 3 letters and ICAO codes 4.
func NewIndex(airports []entity.Airport) *Index {
	byCode := make(map[string]entity.Airport, len(airports)*2)
	for _, a := range airports {
		if a.ICAO != "" {
			byCode[utils.NormalizeAirportCode(a.ICAO)] = a
		}
	}
	for _, a := range airports {
		if a.IATA != "" {
			byCode[utils.NormalizeAirportCode(a.IATA)] = a
		}
	}
	return &Index{byCode: byCode}
}

// Find looks up an airport by IATA or ICAO code.
func (i *Index) Find(code string) (entity.Airport, bool) {
	a, ok := i.byCode[utils.NormalizeAirportCode(code)]
	return a, ok
}

// Len returns the number of indexed codes.
func (i *Index) Len() int {
	return len(i.byCode)
}
