package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/wayli-app/wayli-sub001/internal/database"
	"github.com/wayli-app/wayli-sub001/internal/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.CreateSchema(db))
	return db
}

func f64(v float64) *float64 { return &v }

func TestInsertBatchRoundTrip(t *testing.T) {
	repo := NewPointRepository(openTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	// Deliberately out of order; the read side sorts by recorded_at.
	batch := []models.TrackerPoint{
		{
			RecordedAt:  base.Add(time.Minute),
			Location:    &models.LatLng{Lat: 52.38, Lng: 4.90},
			CountryCode: "NL",
			Speed:       f64(13.9),
		},
		{
			RecordedAt: base,
			Location:   &models.LatLng{Lat: 52.37, Lng: 4.89},
			Geocode:    &models.Geocode{Amenity: "train_station", Name: "Centraal"},
			Distance:   f64(834),
			TimeSpent:  f64(60),
		},
	}
	require.NoError(t, repo.InsertBatch(ctx, "user-1", batch))

	points, err := repo.ListByUserAndRange(ctx, "user-1", base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, base, points[0].RecordedAt)
	require.NotNil(t, points[0].Geocode)
	assert.True(t, points[0].Geocode.IsTrainStation())
	require.NotNil(t, points[0].Distance)
	assert.InDelta(t, 834, *points[0].Distance, 1e-9)
	assert.Nil(t, points[0].Speed)

	assert.Equal(t, base.Add(time.Minute), points[1].RecordedAt)
	assert.Equal(t, "NL", points[1].CountryCode)
	require.NotNil(t, points[1].Speed)
	assert.InDelta(t, 13.9, *points[1].Speed, 1e-9)
	assert.Nil(t, points[1].Geocode)

	count, err := repo.CountByUserAndRange(ctx, "user-1", base, base.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestInsertBatchScopedToUser(t *testing.T) {
	repo := NewPointRepository(openTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repo.InsertBatch(ctx, "user-1", []models.TrackerPoint{{RecordedAt: base}}))

	points, err := repo.ListByUserAndRange(ctx, "user-2", base.Add(-time.Hour), base.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, points)
}
