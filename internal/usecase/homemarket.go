package usecase

import (
	"strings"

	"flightlog-service/internal/domain/repository"
	"flightlog-service/pkg/utils"
)

// domesticCodes lists home-market airports the public dataset misses or
// mislabels. Checked after the dataset, same as the carrier override table.
var domesticCodes = map[string]struct{}{
	"JNB": {}, "CPT": {}, "DUR": {}, "HLA": {}, "GRJ": {},
	"PLZ": {}, "ELS": {}, "KIM": {}, "BFN": {}, "MQP": {},
	"PTG": {}, "UTH": {}, "RCB": {}, "PBZ": {}, "LNO": {},
	"PHW": {}, "NTY": {}, "SIS": {}, "ZEC": {},
}

// HomeMarket decides whether an airport code belongs to the configured home
// country. Used for the locality flag on persisted flights.
type HomeMarket struct {
	airports   repository.AirportIndex
	country    string
	icaoPrefix string
}

// NewHomeMarket creates a home-market checker
func NewHomeMarket(airports repository.AirportIndex, country, icaoPrefix string) *HomeMarket {
	return &HomeMarket{
		airports:   airports,
		country:    strings.ToUpper(country),
		icaoPrefix: strings.ToUpper(icaoPrefix),
	}
}

// Contains reports whether code is a home-country airport.
func (h *HomeMarket) Contains(code string) bool {
	code = utils.NormalizeAirportCode(code)

	if airport, ok := h.airports.Find(code); ok {
		if strings.EqualFold(airport.Country, h.country) {
			return true
		}
		if h.icaoPrefix != "" && strings.HasPrefix(strings.ToUpper(airport.ICAO), h.icaoPrefix) {
			return true
		}
	}

	_, ok := domesticCodes[code]
	return ok
}
