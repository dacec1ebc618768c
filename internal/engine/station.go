package engine

import "github.com/wayli-app/wayli-sub001/internal/models"

// Station-anchored correction thresholds, in km/h.
const (
	stationRunMinMean      = 60.0
	stationRunMinQualify   = 50.0
	stationRunMaxQualify   = 200.0
	stationRunRelabelFloor = 30.0
)

// correctStationRuns is the third pass: points tagged as train stations
// anchor a retroactive correction. For each consecutive anchor pair, if
// the segments strictly between them look like a train run (mean speed
// above 60 km/h with at least one segment in the 50-200 km/h band), every
// intervening segment above 30 km/h is relabeled as train, overriding the
// earlier passes.
func correctStationRuns(points []models.EnrichedPoint) {
	var anchors []int
	for i := range points {
		if points[i].Geocode.IsTrainStation() {
			anchors = append(anchors, i)
		}
	}

	for k := 0; k+1 < len(anchors); k++ {
		a, b := anchors[k], anchors[k+1]
		if b-a < 2 {
			continue
		}

		var sum float64
		var count int
		qualifies := false
		for i := a + 1; i < b; i++ {
			v, ok := velocityOf(&points[i])
			if !ok {
				continue
			}
			sum += v
			count++
			if v > stationRunMinQualify && v < stationRunMaxQualify {
				qualifies = true
			}
		}
		if count == 0 || !qualifies || sum/float64(count) <= stationRunMinMean {
			continue
		}

		for i := a + 1; i < b; i++ {
			if v, ok := velocityOf(&points[i]); ok && v > stationRunRelabelFloor {
				points[i].TransportMode = models.ModeTrain
				points[i].DetectionReason = models.ReasonTrainStationAndSpeed
			}
		}
	}
}
