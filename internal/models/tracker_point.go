package models

import "time"

// TransportMode classifies how a segment between two points was travelled.
type TransportMode string

const (
	ModeWalking    TransportMode = "walking"
	ModeCycling    TransportMode = "cycling"
	ModeCar        TransportMode = "car"
	ModeTrain      TransportMode = "train"
	ModeAirplane   TransportMode = "airplane"
	ModeStationary TransportMode = "stationary"
	ModeUnknown    TransportMode = "unknown"
)

// DetectionReason records which rule produced a mode assignment, so every
// classification stays traceable after the correction passes.
type DetectionReason string

const (
	ReasonHighVelocityPlane    DetectionReason = "high-velocity-plane"
	ReasonTrainStationAndSpeed DetectionReason = "train-station-and-speed"
	ReasonAirportAndPlaneSpeed DetectionReason = "airport-and-plane-speed"
	ReasonPlaneSpeedOnly       DetectionReason = "plane-speed-only"
	ReasonTrainSpeedOnly       DetectionReason = "train-speed-only"
	ReasonCarSpeedOnly         DetectionReason = "car-speed-only"
	ReasonWalkingSpeedOnly     DetectionReason = "walking-speed-only"
	ReasonCyclingSpeedOnly     DetectionReason = "cycling-speed-only"
	ReasonStationarySpeedOnly  DetectionReason = "stationary-speed-only"
	ReasonHighwayOrMotorway    DetectionReason = "highway-or-motorway"
	ReasonGolfCourseWalking    DetectionReason = "golf-course-walking"
	ReasonKeepContinuity       DetectionReason = "keep-continuity"
	ReasonDefault              DetectionReason = "default"
)

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodeAddress carries the reverse-geocoded address components we care
// about. City, town and village are alternatives; Place() picks the one
// that is set.
type GeocodeAddress struct {
	City    string `json:"city,omitempty"`
	Town    string `json:"town,omitempty"`
	Village string `json:"village,omitempty"`
	County  string `json:"county,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// Place returns the most specific populated-place name available.
func (a *GeocodeAddress) Place() string {
	if a == nil {
		return ""
	}
	if a.City != "" {
		return a.City
	}
	if a.Town != "" {
		return a.Town
	}
	return a.Village
}

// Geocode is the reverse-geocode tag bag attached to a point. A non-empty
// Error marks the lookup as failed; such geocodes must not be used for
// classification.
type Geocode struct {
	Type        string          `json:"type,omitempty"`
	Class       string          `json:"class,omitempty"`
	Amenity     string          `json:"amenity,omitempty"`
	Landuse     string          `json:"landuse,omitempty"`
	Name        string          `json:"name,omitempty"`
	DisplayName string          `json:"display_name,omitempty"`
	Address     *GeocodeAddress `json:"address,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// Usable reports whether the geocode carries trustworthy tags.
func (g *Geocode) Usable() bool {
	return g != nil && g.Error == ""
}

// StationName returns the display name to group station visits under.
func (g *Geocode) StationName() string {
	if g == nil {
		return ""
	}
	if g.Name != "" {
		return g.Name
	}
	return g.DisplayName
}

// IsTrainStation reports whether the point is anchored at a railway
// station according to its amenity tag.
func (g *Geocode) IsTrainStation() bool {
	return g.Usable() && g.Amenity == "train_station"
}

// TrackerPoint is one raw location-tracking sample. All fields except
// RecordedAt are optional; pointers distinguish absent from zero.
type TrackerPoint struct {
	ID          int64     `json:"id,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
	Location    *LatLng   `json:"location,omitempty"`
	CountryCode string    `json:"country_code,omitempty"`
	Geocode     *Geocode  `json:"geocode,omitempty"`
	Speed       *float64  `json:"speed,omitempty"`      // m/s, authoritative when present
	Distance    *float64  `json:"distance,omitempty"`   // meters from previous point
	TimeSpent   *float64  `json:"time_spent,omitempty"` // seconds since previous point
}

// EnrichedPoint is a TrackerPoint plus the derived per-segment fields. The
// first point in sorted order always has nil Velocity and
// DistanceFromPrev and mode unknown.
type EnrichedPoint struct {
	TrackerPoint
	Velocity         *float64        `json:"velocity"`           // km/h
	DistanceFromPrev *float64        `json:"distance_from_prev"` // meters
	TransportMode    TransportMode   `json:"transport_mode"`
	DetectionReason  DetectionReason `json:"detection_reason"`
}
