package engine

import "github.com/wayli-app/wayli-sub001/internal/models"

// Plane-marking thresholds, in km/h.
const (
	planeTriggerSpeed = 400.0
	planeExpandSpeed  = 100.0
)

// markPlaneRuns is the fourth pass: a segment that is confidently a plane
// (already classified airplane and faster than 400 km/h) is expanded
// outward over the contiguous run of segments above 100 km/h. This folds
// ascent and descent, which sit below the 400 km/h trigger, into the
// flight.
func markPlaneRuns(points []models.EnrichedPoint) {
	for i := 1; i < len(points); i++ {
		if points[i].TransportMode != models.ModeAirplane {
			continue
		}
		v, ok := velocityOf(&points[i])
		if !ok || v <= planeTriggerSpeed {
			continue
		}

		for j := i - 1; j >= 1; j-- {
			if !expandPlane(&points[j]) {
				break
			}
		}
		for j := i + 1; j < len(points); j++ {
			if !expandPlane(&points[j]) {
				break
			}
		}
	}
}

// expandPlane relabels one neighbor if it keeps flight speed; it reports
// whether the scan should continue past it.
func expandPlane(p *models.EnrichedPoint) bool {
	v, ok := velocityOf(p)
	if !ok || v <= planeExpandSpeed {
		return false
	}
	p.TransportMode = models.ModeAirplane
	p.DetectionReason = models.ReasonHighVelocityPlane
	return true
}
