package engine

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/wayli-app/wayli-sub001/internal/models"
)

const (
	earthCircumferenceKm = 40075.0
	strideMeters         = 0.7
	dwellThresholdMs     = 3600000 // 1h before a place counts as visited
	visitCooldownMs      = 3600000 // 1h between counted station visits
)

type modeAccumulator struct {
	distanceMeters float64
	durationMs     int64
	points         int
}

// aggregateStatistics turns the enriched sequence into the trip summary in
// a single left-to-right traversal. Stationary segments contribute to
// their mode bucket but never to total distance, moving time, or the
// per-country distribution.
func aggregateStatistics(points []models.EnrichedPoint) models.TripStatistics {
	stats := emptyStatistics()
	if len(points) == 0 {
		return stats
	}

	var totalMeters float64
	var movingMs int64

	modes := make(map[models.TransportMode]*modeAccumulator)
	var modeOrder []models.TransportMode
	countries := make(map[string]float64)
	var countryOrder []string
	countriesSeen := make(map[string]bool)

	for i := 1; i < len(points); i++ {
		p := &points[i]
		elapsedMs := p.RecordedAt.Sub(points[i-1].RecordedAt).Milliseconds()
		var meters float64
		if p.DistanceFromPrev != nil {
			meters = *p.DistanceFromPrev
		}

		mode := p.TransportMode
		if mode != models.ModeStationary {
			totalMeters += meters
			if elapsedMs > 0 {
				movingMs += elapsedMs
			}
		}

		acc := modes[mode]
		if acc == nil {
			acc = &modeAccumulator{}
			modes[mode] = acc
			modeOrder = append(modeOrder, mode)
		}
		acc.distanceMeters += meters
		acc.points++
		if elapsedMs > 0 {
			acc.durationMs += elapsedMs
		}

		if mode != models.ModeStationary && p.CountryCode != "" {
			if _, seen := countries[p.CountryCode]; !seen {
				countryOrder = append(countryOrder, p.CountryCode)
			}
			countries[p.CountryCode] += meters
		}
	}

	for i := range points {
		if cc := points[i].CountryCode; cc != "" {
			countriesSeen[cc] = true
		}
	}

	totalKm := totalMeters / 1000

	stats.TotalDistance = formatDistance(totalKm)
	stats.EarthCircumferences = totalKm / earthCircumferenceKm
	stats.Geopoints = len(points)
	stats.LocationsVisited = strconv.Itoa(len(points))
	stats.TimeSpent = formatDaySpan(points)
	stats.TimeSpentMoving = formatHours(movingMs)
	stats.CountriesVisited = len(countriesSeen)

	stats.Transport, stats.Activity = buildModeBreakdown(modeOrder, modes)
	stats.CountryTimeDistribution = buildCountryDistribution(countryOrder, countries)

	if walk := modes[models.ModeWalking]; walk != nil {
		stats.Steps = int(math.Round(walk.distanceMeters / strideMeters))
	}

	stats.UniquePlaces = countUniquePlaces(points)
	stats.VisitedPlaces = stats.UniquePlaces
	stats.TrainStationVisits = countStationVisits(points)

	return stats
}

func emptyStatistics() models.TripStatistics {
	return models.TripStatistics{
		TotalDistance:           "0.0 km",
		LocationsVisited:        "0",
		TimeSpent:               "0 days",
		TimeSpentMoving:         "0.0h",
		Activity:                []models.ActivityEntry{},
		Transport:               []models.TransportEntry{},
		CountryTimeDistribution: []models.CountryDistance{},
		TrainStationVisits:      []models.StationVisit{},
	}
}

// buildModeBreakdown produces the transport and activity views in
// first-seen mode order, with percentage closure applied to transport.
func buildModeBreakdown(order []models.TransportMode, modes map[models.TransportMode]*modeAccumulator) ([]models.TransportEntry, []models.ActivityEntry) {
	transport := make([]models.TransportEntry, 0, len(order))
	activity := make([]models.ActivityEntry, 0, len(order))

	var totalMeters float64
	for _, mode := range order {
		totalMeters += modes[mode].distanceMeters
	}

	for _, mode := range order {
		acc := modes[mode]
		km := round2(acc.distanceMeters / 1000)
		var pct float64
		if totalMeters > 0 {
			pct = round2(acc.distanceMeters / totalMeters * 100)
		}
		transport = append(transport, models.TransportEntry{
			Mode:       string(mode),
			Distance:   km,
			Percentage: pct,
			Time:       formatHours(acc.durationMs),
			Points:     acc.points,
		})
		activity = append(activity, models.ActivityEntry{
			Label:     string(mode),
			Distance:  km,
			Locations: acc.points,
		})
	}

	if totalMeters > 0 && len(transport) > 0 {
		var sum float64
		for _, t := range transport {
			sum += t.Percentage
		}
		last := &transport[len(transport)-1]
		last.Percentage = round2(last.Percentage + (100 - sum))
	}

	return transport, activity
}

// buildCountryDistribution mirrors the transport closure for the
// per-country distances, in first-seen country order.
func buildCountryDistribution(order []string, countries map[string]float64) []models.CountryDistance {
	dist := make([]models.CountryDistance, 0, len(order))

	var totalMeters float64
	for _, cc := range order {
		totalMeters += countries[cc]
	}

	for _, cc := range order {
		meters := countries[cc]
		var pct float64
		if totalMeters > 0 {
			pct = round2(meters / totalMeters * 100)
		}
		dist = append(dist, models.CountryDistance{
			CountryCode: cc,
			Distance:    round2(meters / 1000),
			Percent:     pct,
		})
	}

	if totalMeters > 0 && len(dist) > 0 {
		var sum float64
		for _, d := range dist {
			sum += d.Percent
		}
		last := &dist[len(dist)-1]
		last.Percent = round2(last.Percent + (100 - sum))
	}

	return dist
}

// countUniquePlaces counts named cities/towns/villages where the tracker
// dwelt for more than an hour of contiguous samples. The accumulator
// resets whenever the place name changes, so passing through a city
// quickly does not count it.
func countUniquePlaces(points []models.EnrichedPoint) int {
	visited := make(map[string]bool)

	var currentPlace string
	var dwellMs int64

	for i := range points {
		var place string
		if g := points[i].Geocode; g.Usable() {
			place = g.Address.Place()
		}

		if place == "" || place != currentPlace {
			currentPlace = place
			dwellMs = 0
			continue
		}

		elapsed := points[i].RecordedAt.Sub(points[i-1].RecordedAt).Milliseconds()
		if elapsed > 0 {
			dwellMs += elapsed
		}
		if dwellMs > dwellThresholdMs {
			visited[currentPlace] = true
		}
	}

	return len(visited)
}

// countStationVisits groups station-tagged points by display name and
// counts a new visit only after a one-hour gap since the last counted
// visit to the same station, so loitering on a platform is one visit.
func countStationVisits(points []models.EnrichedPoint) []models.StationVisit {
	timestamps := make(map[string][]int64)

	for i := range points {
		g := points[i].Geocode
		if !g.IsTrainStation() {
			continue
		}
		name := g.StationName()
		if name == "" {
			continue
		}
		timestamps[name] = append(timestamps[name], points[i].RecordedAt.UnixMilli())
	}

	visits := make([]models.StationVisit, 0, len(timestamps))
	for name, stamps := range timestamps {
		sort.Slice(stamps, func(i, j int) bool { return stamps[i] < stamps[j] })

		count := 0
		var lastCounted int64
		for _, ts := range stamps {
			if count == 0 || ts-lastCounted > visitCooldownMs {
				count++
				lastCounted = ts
			}
		}
		visits = append(visits, models.StationVisit{Name: name, Count: count})
	}

	sort.Slice(visits, func(i, j int) bool {
		if visits[i].Count != visits[j].Count {
			return visits[i].Count > visits[j].Count
		}
		return visits[i].Name < visits[j].Name
	})

	return visits
}

func formatDistance(km float64) string {
	if km >= 1000 {
		return fmt.Sprintf("%.1fk km", km/1000)
	}
	return fmt.Sprintf("%.1f km", km)
}

func formatHours(ms int64) string {
	return fmt.Sprintf("%.1fh", float64(ms)/3600000)
}

func formatDaySpan(points []models.EnrichedPoint) string {
	span := points[len(points)-1].RecordedAt.Sub(points[0].RecordedAt)
	days := int(span.Hours() / 24)
	if days < 1 {
		days = 1
	}
	return fmt.Sprintf("%d days", days)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
