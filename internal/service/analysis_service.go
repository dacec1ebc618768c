package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/wayli-app/wayli-sub001/internal/engine"
	"github.com/wayli-app/wayli-sub001/internal/models"
	"github.com/wayli-app/wayli-sub001/internal/repository"
)

// AnalysisService materializes point batches and runs the analysis engine
// over them. Bounding the batch size happens here; the engine assumes a
// closed, already-bounded batch.
type AnalysisService struct {
	pointRepo *repository.PointRepository
	maxPoints int
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(pointRepo *repository.PointRepository, maxPoints int) *AnalysisService {
	return &AnalysisService{
		pointRepo: pointRepo,
		maxPoints: maxPoints,
	}
}

// AnalyzeRange fetches a user's points for the date range and runs the
// engine on them.
func (s *AnalysisService) AnalyzeRange(ctx context.Context, userID string, start, end time.Time) (*models.AnalysisResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("start time must be before end time")
	}

	count, err := s.pointRepo.CountByUserAndRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count points: %w", err)
	}
	if count > s.maxPoints {
		return nil, fmt.Errorf("date range contains %d points, exceeding the limit of %d; narrow the range", count, s.maxPoints)
	}

	points, err := s.pointRepo.ListByUserAndRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch points: %w", err)
	}

	log.Printf("[AnalysisService] Analyzing %d points (user=%s, range=%s..%s)",
		len(points), userID, start.Format(time.RFC3339), end.Format(time.RFC3339))

	result := engine.Analyze(points)
	return &result, nil
}

// IngestBatch stores a caller-supplied batch of raw points for a user.
func (s *AnalysisService) IngestBatch(ctx context.Context, userID string, points []models.TrackerPoint) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	if len(points) == 0 {
		return nil
	}
	if len(points) > s.maxPoints {
		return fmt.Errorf("batch contains %d points, exceeding the limit of %d", len(points), s.maxPoints)
	}

	if err := s.pointRepo.InsertBatch(ctx, userID, points); err != nil {
		return fmt.Errorf("failed to store points: %w", err)
	}

	log.Printf("[AnalysisService] Ingested %d points (user=%s)", len(points), userID)
	return nil
}

// AnalyzeBatch runs the engine on a caller-supplied batch.
func (s *AnalysisService) AnalyzeBatch(points []models.TrackerPoint) (*models.AnalysisResult, error) {
	if len(points) > s.maxPoints {
		return nil, fmt.Errorf("batch contains %d points, exceeding the limit of %d", len(points), s.maxPoints)
	}

	result := engine.Analyze(points)
	return &result, nil
}
