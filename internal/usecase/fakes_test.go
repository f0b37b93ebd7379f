package usecase

import (
	"context"
	"testing"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/pkg/logger"
	"flightlog-service/pkg/metrics"
)

// One registry-backed metrics set for the whole package; promauto registers
// globally and double registration panics.
var testMetrics = metrics.NewMetrics("usecase_test")

type fakeAirlineSource struct {
	airlines []entity.Airline
	err      error
	calls    int
}

func (f *fakeAirlineSource) Airlines(context.Context) ([]entity.Airline, error) {
	f.calls++
	return f.airlines, f.err
}

type fakeProvider struct {
	leg    *entity.FlightLeg
	err    error
	idents []string
}

func (f *fakeProvider) LookupFlight(_ context.Context, ident string) (*entity.FlightLeg, error) {
	f.idents = append(f.idents, ident)
	if f.err != nil {
		return nil, f.err
	}
	return f.leg, nil
}

type fakeFlightRepo struct {
	saved []entity.Flight
	err   error
}

func (f *fakeFlightRepo) SaveBatch(_ context.Context, flights []entity.Flight) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, flights...)
	return nil
}

func (f *fakeFlightRepo) FindAll(context.Context) ([]entity.Flight, error) {
	return f.saved, nil
}

type fakeLookupLog struct {
	records []entity.LookupRecord
}

func (f *fakeLookupLog) Append(_ context.Context, record *entity.LookupRecord) error {
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeLookupLog) FindRecent(_ context.Context, limit int) ([]entity.LookupRecord, error) {
	if len(f.records) > limit {
		return f.records[:limit], nil
	}
	return f.records, nil
}

// fakeAirportIndex implements repository.AirportIndex from a fixed set.
type fakeAirportIndex struct {
	byCode map[string]entity.Airport
}

func newFakeAirportIndex(airports ...entity.Airport) *fakeAirportIndex {
	byCode := make(map[string]entity.Airport)
	for _, a := range airports {
		if a.IATA != "" {
			byCode[a.IATA] = a
		}
		if a.ICAO != "" {
			byCode[a.ICAO] = a
		}
	}
	return &fakeAirportIndex{byCode: byCode}
}

func (f *fakeAirportIndex) Find(code string) (entity.Airport, bool) {
	a, ok := f.byCode[code]
	return a, ok
}

func newTestLookup(t *testing.T, provider *fakeProvider, source *fakeAirlineSource, log *fakeLookupLog) *LookupUsecase {
	t.Helper()
	nop := logger.NewNop()
	chain := NewChainResolver(
		NewOverrideResolver(DefaultOverrides()),
		NewDatasetResolver(source, nop),
	)
	normalizer := NewIdentNormalizer(chain, nop)
	return NewLookupUsecase(normalizer, provider, log, testMetrics, nop)
}

// South African test airports, real coordinates.
var (
	testCPT = entity.Airport{IATA: "CPT", ICAO: "FACT", City: "Cape Town", Country: "ZA", Lat: -33.9648, Lon: 18.6017}
	testJNB = entity.Airport{IATA: "JNB", ICAO: "FAOR", City: "Johannesburg", Country: "ZA", Lat: -26.1392, Lon: 28.246}
	testDXB = entity.Airport{IATA: "DXB", ICAO: "OMDB", City: "Dubai", Country: "AE", Lat: 25.2528, Lon: 55.3644}
)
