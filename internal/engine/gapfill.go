package engine

import "github.com/wayli-app/wayli-sub001/internal/models"

// fillGaps is the fifth and final correction pass: any segment still
// unknown after the corrective passes inherits the last known mode. Runs
// strictly after the other passes so it never masks a real correction.
func fillGaps(points []models.EnrichedPoint) {
	lastKnown := models.ModeUnknown
	for i := 1; i < len(points); i++ {
		if points[i].TransportMode != models.ModeUnknown {
			lastKnown = points[i].TransportMode
			continue
		}
		if lastKnown != models.ModeUnknown {
			points[i].TransportMode = lastKnown
			points[i].DetectionReason = models.ReasonKeepContinuity
		}
	}
}
