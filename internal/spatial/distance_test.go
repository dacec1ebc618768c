package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistanceKnownPairs(t *testing.T) {
	// Amsterdam Centraal -> Rotterdam Centraal, roughly 57 km
	d := HaversineDistance(52.3791, 4.9003, 51.9244, 4.4690)
	assert.InDelta(t, 57000, d, 2000)

	// Zero distance for identical coordinates
	assert.InDelta(t, 0, HaversineDistance(52.0, 4.0, 52.0, 4.0), 1e-6)
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	a := HaversineDistance(48.8566, 2.3522, 51.5074, -0.1278)
	b := HaversineDistance(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, a, b, 1e-6)
}
