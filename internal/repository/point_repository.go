package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/wayli-app/wayli-sub001/internal/database"
	"github.com/wayli-app/wayli-sub001/internal/models"
)

// PointRepository stores and reads tracker points. The analysis engine
// itself never touches storage; this layer ingests raw samples and
// materializes batches for the engine.
type PointRepository struct {
	db *sql.DB
}

// NewPointRepository creates a new point repository
func NewPointRepository(db *sql.DB) *PointRepository {
	return &PointRepository{db: db}
}

// ListByUserAndRange returns a user's points inside [start, end], ordered
// by recorded_at ascending.
func (r *PointRepository) ListByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]models.TrackerPoint, error) {
	query := `
		SELECT id, user_id, recorded_at, latitude, longitude,
		       country_code, geocode, speed, distance, time_spent
		FROM tracker_points
		WHERE user_id = ? AND recorded_at >= ? AND recorded_at <= ?
		ORDER BY recorded_at
	`

	rows, err := r.db.QueryContext(ctx, query, userID, start.UnixMilli(), end.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to query tracker points: %w", err)
	}
	defer rows.Close()

	var points []models.TrackerPoint
	for rows.Next() {
		point, err := scanPoint(rows)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tracker points: %w", err)
	}

	return points, nil
}

// CountByUserAndRange returns how many points a query would materialize,
// so the service can enforce its batch bound before fetching.
func (r *PointRepository) CountByUserAndRange(ctx context.Context, userID string, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM tracker_points
		WHERE user_id = ? AND recorded_at >= ? AND recorded_at <= ?
	`

	var count int
	err := r.db.QueryRowContext(ctx, query, userID, start.UnixMilli(), end.UnixMilli()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tracker points: %w", err)
	}
	return count, nil
}

// InsertBatch stores a batch of raw points for a user. The batch is
// written atomically: a failure on any point rolls the whole batch back.
func (r *PointRepository) InsertBatch(ctx context.Context, userID string, points []models.TrackerPoint) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO tracker_points
				(user_id, recorded_at, latitude, longitude,
				 country_code, geocode, speed, distance, time_spent)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, p := range points {
			var lat, lon interface{}
			if p.Location != nil {
				lat, lon = p.Location.Lat, p.Location.Lng
			}

			var geocode interface{}
			if p.Geocode != nil {
				raw, err := json.Marshal(p.Geocode)
				if err != nil {
					return fmt.Errorf("failed to encode geocode: %w", err)
				}
				geocode = string(raw)
			}

			var countryCode interface{}
			if p.CountryCode != "" {
				countryCode = p.CountryCode
			}

			_, err := stmt.ExecContext(ctx, userID, p.RecordedAt.UnixMilli(),
				lat, lon, countryCode, geocode,
				nullableFloat(p.Speed), nullableFloat(p.Distance), nullableFloat(p.TimeSpent))
			if err != nil {
				return fmt.Errorf("failed to insert tracker point: %w", err)
			}
		}

		return nil
	})
}

func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func scanPoint(rows *sql.Rows) (models.TrackerPoint, error) {
	var point models.TrackerPoint
	var recordedAt int64
	var lat, lon, speed, distance, timeSpent sql.NullFloat64
	var countryCode, geocode sql.NullString

	if err := rows.Scan(&point.ID, &point.UserID, &recordedAt, &lat, &lon,
		&countryCode, &geocode, &speed, &distance, &timeSpent); err != nil {
		return point, fmt.Errorf("failed to scan tracker point: %w", err)
	}

	point.RecordedAt = time.UnixMilli(recordedAt).UTC()

	if lat.Valid && lon.Valid {
		point.Location = &models.LatLng{Lat: lat.Float64, Lng: lon.Float64}
	}
	if countryCode.Valid {
		point.CountryCode = countryCode.String
	}
	if speed.Valid {
		point.Speed = &speed.Float64
	}
	if distance.Valid {
		point.Distance = &distance.Float64
	}
	if timeSpent.Valid {
		point.TimeSpent = &timeSpent.Float64
	}

	if geocode.Valid && geocode.String != "" {
		var g models.Geocode
		if err := json.Unmarshal([]byte(geocode.String), &g); err != nil {
			// Malformed geocode is a per-point degradation, not an error:
			// the point falls through to speed-only classification.
			log.Printf("[PointRepository] Failed to parse geocode for point %d: %v", point.ID, err)
		} else {
			point.Geocode = &g
		}
	}

	return point, nil
}
