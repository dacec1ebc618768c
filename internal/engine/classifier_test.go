package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wayli-app/wayli-sub001/internal/models"
)

func enriched(kmh float64, hasSpeed bool, g *models.Geocode) *models.EnrichedPoint {
	p := &models.EnrichedPoint{}
	p.Geocode = g
	if hasSpeed {
		p.Velocity = &kmh
	}
	return p
}

func TestClassifySegmentTagRules(t *testing.T) {
	tests := []struct {
		name    string
		geocode *models.Geocode
		kmh     float64
		hasV    bool
		mode    models.TransportMode
		reason  models.DetectionReason
	}{
		{"aeroway at speed", &models.Geocode{Class: "aeroway"}, 120, true, models.ModeAirplane, models.ReasonAirportAndPlaneSpeed},
		{"aerodrome at speed", &models.Geocode{Type: "aerodrome"}, 150, true, models.ModeAirplane, models.ReasonAirportAndPlaneSpeed},
		{"railway station", &models.Geocode{Type: "railway_station"}, 0, true, models.ModeTrain, models.ReasonTrainStationAndSpeed},
		{"railway class", &models.Geocode{Class: "railway"}, 40, true, models.ModeTrain, models.ReasonTrainStationAndSpeed},
		{"airport amenity", &models.Geocode{Amenity: "airport"}, 5, true, models.ModeAirplane, models.ReasonAirportAndPlaneSpeed},
		{"bus station", &models.Geocode{Amenity: "bus_station"}, 20, true, models.ModeCar, models.ReasonHighwayOrMotorway},
		{"subway entrance", &models.Geocode{Amenity: "subway_entrance"}, 10, true, models.ModeTrain, models.ReasonTrainStationAndSpeed},
		{"ferry terminal", &models.Geocode{Amenity: "ferry_terminal"}, 25, true, models.ModeCar, models.ReasonHighwayOrMotorway},
		{"railway landuse", &models.Geocode{Landuse: "railway"}, 70, true, models.ModeTrain, models.ReasonTrainStationAndSpeed},
		{"industrial landuse", &models.Geocode{Landuse: "industrial"}, 40, true, models.ModeCar, models.ReasonCarSpeedOnly},
		{"residential driving", &models.Geocode{Landuse: "residential"}, 45, true, models.ModeCar, models.ReasonCarSpeedOnly},
		{"residential walking", &models.Geocode{Landuse: "residential"}, 5, true, models.ModeWalking, models.ReasonWalkingSpeedOnly},
		{"residential idle", &models.Geocode{Landuse: "residential"}, 0.5, true, models.ModeStationary, models.ReasonStationarySpeedOnly},
		{"park cycling", &models.Geocode{Landuse: "park"}, 20, true, models.ModeCycling, models.ReasonCyclingSpeedOnly},
		{"park walking", &models.Geocode{Landuse: "park"}, 5, true, models.ModeWalking, models.ReasonWalkingSpeedOnly},
		{"park idle", &models.Geocode{Landuse: "park"}, 0.5, true, models.ModeStationary, models.ReasonStationarySpeedOnly},
		{"golf course", &models.Geocode{Type: "golf_course"}, 4, true, models.ModeWalking, models.ReasonGolfCourseWalking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, reason := classifySegment(enriched(tt.kmh, tt.hasV, tt.geocode))
			assert.Equal(t, tt.mode, mode)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestClassifySegmentParkedPlaneIsNotFlying(t *testing.T) {
	// Aeroway tags without flight speed fall through to the speed ladder.
	mode, reason := classifySegment(enriched(30, true, &models.Geocode{Class: "aeroway"}))
	assert.Equal(t, models.ModeCar, mode)
	assert.Equal(t, models.ReasonCarSpeedOnly, reason)
}

func TestClassifySegmentErroredGeocodeIgnored(t *testing.T) {
	g := &models.Geocode{Type: "railway_station", Error: "rate limited"}
	mode, reason := classifySegment(enriched(90, true, g))
	assert.Equal(t, models.ModeCar, mode)
	assert.Equal(t, models.ReasonCarSpeedOnly, reason)
}

func TestClassifyBySpeedLadder(t *testing.T) {
	tests := []struct {
		kmh    float64
		hasV   bool
		mode   models.TransportMode
		reason models.DetectionReason
	}{
		{450, true, models.ModeAirplane, models.ReasonHighVelocityPlane},
		{380, true, models.ModeAirplane, models.ReasonPlaneSpeedOnly},
		{200, true, models.ModeTrain, models.ReasonTrainSpeedOnly},
		{120, true, models.ModeCar, models.ReasonCarSpeedOnly},
		{50, true, models.ModeCar, models.ReasonCarSpeedOnly},
		{20, true, models.ModeCycling, models.ReasonCyclingSpeedOnly},
		{10, true, models.ModeUnknown, models.ReasonDefault}, // walk/ride dead zone
		{6, true, models.ModeWalking, models.ReasonWalkingSpeedOnly},
		{2, true, models.ModeWalking, models.ReasonWalkingSpeedOnly},
		{1, true, models.ModeStationary, models.ReasonStationarySpeedOnly},
		{0, true, models.ModeUnknown, models.ReasonDefault},
		{0, false, models.ModeUnknown, models.ReasonDefault},
	}

	for _, tt := range tests {
		mode, reason := classifyBySpeed(tt.kmh, tt.hasV)
		assert.Equal(t, tt.mode, mode, "speed %.1f", tt.kmh)
		assert.Equal(t, tt.reason, reason, "speed %.1f", tt.kmh)
	}
}
