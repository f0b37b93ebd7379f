package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	// CPT and JNB, roughly 1270 km apart.
	cptLat, cptLon := -33.9648, 18.6017
	jnbLat, jnbLon := -26.1392, 28.246

	d := HaversineKm(cptLat, cptLon, jnbLat, jnbLon)
	assert.InDelta(t, 1270, d, 20)

	// Symmetric.
	assert.Equal(t, d, HaversineKm(jnbLat, jnbLon, cptLat, cptLon))

	// Coincident points.
	assert.Equal(t, 0, HaversineKm(cptLat, cptLon, cptLat, cptLon))
}

func TestHaversineKmAntipodal(t *testing.T) {
	// Half the Earth's circumference, no NaN.
	d := HaversineKm(0, 0, 0, 180)
	assert.InDelta(t, 20015, d, 5)
}

func TestEstimateDurationMin(t *testing.T) {
	// 800 km at 800 km/h is an hour in the air plus 30 min overhead.
	assert.Equal(t, 90, EstimateDurationMin(800))
	assert.Equal(t, 30, EstimateDurationMin(0))
}

func TestEstimateDurationMonotonic(t *testing.T) {
	prev := EstimateDurationMin(0)
	for km := 50; km <= 15000; km += 50 {
		cur := EstimateDurationMin(km)
		if cur < prev {
			t.Fatalf("duration decreased: %d km -> %d min, previous %d min", km, cur, prev)
		}
		prev = cur
	}
}

func TestNormalizeIdent(t *testing.T) {
	assert.Equal(t, "FA600", NormalizeIdent("  fa 600 "))
	assert.Equal(t, "SFR600", NormalizeIdent("sfr600"))
	assert.Equal(t, "", NormalizeIdent("   "))
}

func TestNormalizeAirportCode(t *testing.T) {
	assert.Equal(t, "CPT", NormalizeAirportCode(" cpt "))
	assert.Equal(t, "FACT", NormalizeAirportCode("fact"))
}
