// Package engine implements the trip analysis pipeline: a deterministic,
// multi-pass classifier that fuses speed estimates with reverse-geocode
// tags under continuity constraints, followed by an aggregator producing
// normalized trip statistics.
//
// The engine is a pure function over an in-memory batch. It performs no
// I/O, holds no state between invocations, and is safe to run from any
// number of goroutines concurrently.
package engine

import "github.com/wayli-app/wayli-sub001/internal/models"

// Analyze runs the full pipeline over a batch of tracker points. Input
// order does not matter; the engine sorts by recorded_at first. Missing or
// malformed per-point data degrades to the debug counters and the unknown
// mode rather than failing the run.
//
// Pass order is load-bearing: classification, continuity enforcement,
// station-anchored correction, plane-run marking, then gap filling. Each
// later pass may overwrite the decisions of earlier ones.
func Analyze(points []models.TrackerPoint) models.AnalysisResult {
	sorted := sequencePoints(points)
	enriched, debug := computeMetrics(sorted)

	classifyModes(enriched)
	enforceContinuity(enriched)
	correctStationRuns(enriched)
	markPlaneRuns(enriched)
	fillGaps(enriched)

	return models.AnalysisResult{
		EnrichedPoints: enriched,
		Statistics:     aggregateStatistics(enriched),
		Debug:          debug,
	}
}
