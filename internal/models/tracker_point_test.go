package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeUsable(t *testing.T) {
	var nilGeocode *Geocode
	assert.False(t, nilGeocode.Usable())
	assert.True(t, (&Geocode{Type: "railway_station"}).Usable())
	assert.False(t, (&Geocode{Type: "railway_station", Error: "timeout"}).Usable())
}

func TestGeocodeStationName(t *testing.T) {
	assert.Equal(t, "Centraal", (&Geocode{Name: "Centraal", DisplayName: "Centraal, Amsterdam"}).StationName())
	assert.Equal(t, "Centraal, Amsterdam", (&Geocode{DisplayName: "Centraal, Amsterdam"}).StationName())
	var nilGeocode *Geocode
	assert.Equal(t, "", nilGeocode.StationName())
}

func TestAddressPlacePrecedence(t *testing.T) {
	assert.Equal(t, "Utrecht", (&GeocodeAddress{City: "Utrecht", Town: "x", Village: "y"}).Place())
	assert.Equal(t, "Zeist", (&GeocodeAddress{Town: "Zeist", Village: "y"}).Place())
	assert.Equal(t, "Lage Vuursche", (&GeocodeAddress{Village: "Lage Vuursche"}).Place())
	var nilAddr *GeocodeAddress
	assert.Equal(t, "", nilAddr.Place())
}

func TestTrackerPointJSONRoundTrip(t *testing.T) {
	raw := `{
		"recorded_at": "2024-06-01T08:00:00Z",
		"location": {"lat": 52.37, "lng": 4.89},
		"country_code": "NL",
		"speed": 25.0,
		"geocode": {"amenity": "train_station", "name": "Centraal", "address": {"city": "Amsterdam"}}
	}`

	var point TrackerPoint
	require.NoError(t, json.Unmarshal([]byte(raw), &point))

	require.NotNil(t, point.Location)
	assert.InDelta(t, 52.37, point.Location.Lat, 1e-9)
	require.NotNil(t, point.Speed)
	assert.InDelta(t, 25.0, *point.Speed, 1e-9)
	assert.True(t, point.Geocode.IsTrainStation())
	assert.Equal(t, "Amsterdam", point.Geocode.Address.Place())
	assert.Nil(t, point.Distance)
	assert.Nil(t, point.TimeSpent)
}
