package engine

import (
	"math"

	"github.com/wayli-app/wayli-sub001/internal/models"
)

// enforceContinuity is the second pass: it walks segments left to right
// and suppresses physically implausible mode transitions by carrying the
// previous segment's mode forward. Rules are checked in order; the first
// match applies and the rest are skipped for that segment.
func enforceContinuity(points []models.EnrichedPoint) {
	for i := 2; i < len(points); i++ {
		prev := points[i-1].TransportMode
		curr := points[i].TransportMode
		v, hasSpeed := velocityOf(&points[i])
		pv, hasPrevSpeed := velocityOf(&points[i-1])

		switch {
		case isForbiddenTransition(prev, curr, v, hasSpeed):
			points[i].TransportMode = prev
			points[i].DetectionReason = models.ReasonKeepContinuity

		case isWalkingOscillation(prev, curr):
			points[i].TransportMode = models.ModeWalking
			points[i].DetectionReason = models.ReasonKeepContinuity

		case hasSpeed && hasPrevSpeed && v > 80 && pv > 80 &&
			math.Abs(v-pv) < 30 && prev != models.ModeUnknown:
			points[i].TransportMode = prev
			points[i].DetectionReason = models.ReasonKeepContinuity

		case curr == models.ModeUnknown && prev != models.ModeUnknown:
			points[i].TransportMode = prev
			points[i].DetectionReason = models.ReasonKeepContinuity
		}
	}
}

// isForbiddenTransition reports transitions a body cannot make across one
// segment: you do not step out of a moving plane, and a train does not
// become a car at speed.
func isForbiddenTransition(prev, curr models.TransportMode, v float64, hasSpeed bool) bool {
	if prev == curr {
		return false
	}
	if isPair(prev, curr, models.ModeAirplane, models.ModeCar) ||
		isPair(prev, curr, models.ModeAirplane, models.ModeWalking) ||
		isPair(prev, curr, models.ModeAirplane, models.ModeCycling) ||
		isPair(prev, curr, models.ModeCycling, models.ModeTrain) {
		return true
	}
	if isPair(prev, curr, models.ModeTrain, models.ModeCar) && hasSpeed && v > 80 {
		return true
	}
	return false
}

// isWalkingOscillation matches the {walking, unknown} pair in either
// direction; flapping between the two is noise around walking pace.
func isWalkingOscillation(prev, curr models.TransportMode) bool {
	return isPair(prev, curr, models.ModeWalking, models.ModeUnknown)
}

func isPair(a, b, x, y models.TransportMode) bool {
	return (a == x && b == y) || (a == y && b == x)
}
