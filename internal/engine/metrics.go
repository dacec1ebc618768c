package engine

import (
	"math"

	"github.com/wayli-app/wayli-sub001/internal/models"
	"github.com/wayli-app/wayli-sub001/internal/spatial"
)

// computeMetrics derives per-segment velocity (km/h) and distance (m) for
// every adjacent pair in the sorted sequence, preferring authoritative
// device-reported fields over geometric recomputation.
//
// Speed priority: the point's own speed field (m/s), then
// distance/time_spent, then haversine over elapsed time. Distance
// priority: the distance field, then haversine, then 0.
//
// Segments that cannot produce a speed are left with a nil velocity and
// counted in the debug counters; nothing here is fatal.
func computeMetrics(points []models.TrackerPoint) ([]models.EnrichedPoint, models.DebugCounters) {
	enriched := make([]models.EnrichedPoint, len(points))
	debug := models.DebugCounters{Total: len(points)}

	for i := range points {
		enriched[i] = models.EnrichedPoint{
			TrackerPoint:    points[i],
			TransportMode:   models.ModeUnknown,
			DetectionReason: models.ReasonDefault,
		}
	}

	for i := 1; i < len(points); i++ {
		prev := &points[i-1]
		curr := &points[i]

		enriched[i].Velocity = segmentSpeed(prev, curr, &debug)
		dist := segmentDistance(prev, curr)
		enriched[i].DistanceFromPrev = &dist
	}

	return enriched, debug
}

// segmentSpeed computes the speed of the segment ending at curr, in km/h.
// Returns nil when no estimate is possible.
func segmentSpeed(prev, curr *models.TrackerPoint, debug *models.DebugCounters) *float64 {
	if curr.Speed != nil && isFinite(*curr.Speed) && *curr.Speed >= 0 {
		v := *curr.Speed * 3.6
		return &v
	}

	if curr.Distance != nil && curr.TimeSpent != nil &&
		isFinite(*curr.Distance) && isFinite(*curr.TimeSpent) && *curr.TimeSpent > 0 {
		v := *curr.Distance / *curr.TimeSpent * 3.6
		return &v
	}

	if prev.Location != nil && curr.Location != nil {
		elapsed := curr.RecordedAt.Sub(prev.RecordedAt).Seconds()
		if elapsed <= 0 {
			debug.ZeroTimeDiff++
			return nil
		}
		meters := spatial.HaversineDistance(
			prev.Location.Lat, prev.Location.Lng,
			curr.Location.Lat, curr.Location.Lng,
		)
		v := meters / elapsed * 3.6
		return &v
	}

	debug.MissingCoords++
	return nil
}

// segmentDistance computes the distance in meters from prev to curr.
func segmentDistance(prev, curr *models.TrackerPoint) float64 {
	if curr.Distance != nil && isFinite(*curr.Distance) && *curr.Distance >= 0 {
		return *curr.Distance
	}
	if prev.Location != nil && curr.Location != nil {
		return spatial.HaversineDistance(
			prev.Location.Lat, prev.Location.Lng,
			curr.Location.Lat, curr.Location.Lng,
		)
	}
	return 0
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// velocityOf is a shared helper for the correction passes: it returns the
// segment speed and whether one is defined. An undefined speed fails every
// threshold comparison.
func velocityOf(p *models.EnrichedPoint) (float64, bool) {
	if p.Velocity == nil {
		return 0, false
	}
	return *p.Velocity, true
}
