package models

// TransportEntry is the per-mode slice of the trip breakdown. Distance is
// in kilometers, Time is formatted hours ("N.Nh"), Percentage is the
// share of the per-mode distance total.
type TransportEntry struct {
	Mode       string  `json:"mode"`
	Distance   float64 `json:"distance"`
	Percentage float64 `json:"percentage"`
	Time       string  `json:"time"`
	Points     int     `json:"points"`
}

// ActivityEntry mirrors TransportEntry for the legacy activity view:
// Locations is the number of geopoints recorded in that mode.
type ActivityEntry struct {
	Label     string  `json:"label"`
	Distance  float64 `json:"distance"`
	Locations int     `json:"locations"`
}

// CountryDistance attributes distance to the destination point's country.
type CountryDistance struct {
	CountryCode string  `json:"country_code"`
	Distance    float64 `json:"distance"`
	Percent     float64 `json:"percent"`
}

// StationVisit counts de-duplicated visits to a named train station.
type StationVisit struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TripStatistics is the aggregate output of the analysis pipeline. Field
// names are part of the wire contract and must not change.
type TripStatistics struct {
	TotalDistance           string            `json:"totalDistance"`
	EarthCircumferences     float64           `json:"earthCircumferences"`
	LocationsVisited        string            `json:"locationsVisited"`
	TimeSpent               string            `json:"timeSpent"`
	TimeSpentMoving         string            `json:"timeSpentMoving"`
	Geopoints               int               `json:"geopoints"`
	Steps                   int               `json:"steps"`
	UniquePlaces            int               `json:"uniquePlaces"`
	CountriesVisited        int               `json:"countriesVisited"`
	Activity                []ActivityEntry   `json:"activity"`
	Transport               []TransportEntry  `json:"transport"`
	CountryTimeDistribution []CountryDistance `json:"countryTimeDistribution"`
	VisitedPlaces           int               `json:"visitedPlaces"`
	TrainStationVisits      []StationVisit    `json:"trainStationVisits"`
}

// DebugCounters surfaces non-fatal data-quality diagnostics.
type DebugCounters struct {
	MissingCoords int `json:"missingCoords"`
	ZeroTimeDiff  int `json:"zeroTimeDiff"`
	Total         int `json:"total"`
}

// AnalysisResult is the full output contract of one engine invocation.
type AnalysisResult struct {
	EnrichedPoints []EnrichedPoint `json:"enrichedPoints"`
	Statistics     TripStatistics  `json:"statistics"`
	Debug          DebugCounters   `json:"debug"`
}
