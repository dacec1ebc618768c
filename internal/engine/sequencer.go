package engine

import (
	"sort"

	"github.com/wayli-app/wayli-sub001/internal/models"
)

// sequencePoints returns a copy of points sorted ascending by RecordedAt.
// The sort is stable: points with identical timestamps keep their input
// order. Every later pass assumes index i is the moment right after i-1.
func sequencePoints(points []models.TrackerPoint) []models.TrackerPoint {
	sorted := make([]models.TrackerPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RecordedAt.Before(sorted[j].RecordedAt)
	})
	return sorted
}
