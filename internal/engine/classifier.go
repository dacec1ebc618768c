package engine

import "github.com/wayli-app/wayli-sub001/internal/models"

// classifyModes is the first pass: it assigns an initial mode and
// detection reason to every segment. Rules are evaluated in strict
// priority order and the first match wins; semantic geocode tags dominate
// raw speed. A geocode carrying an error marker is ignored entirely.
func classifyModes(points []models.EnrichedPoint) {
	for i := 1; i < len(points); i++ {
		mode, reason := classifySegment(&points[i])
		points[i].TransportMode = mode
		points[i].DetectionReason = reason
	}
}

func classifySegment(p *models.EnrichedPoint) (models.TransportMode, models.DetectionReason) {
	v, hasSpeed := velocityOf(p)

	if g := p.Geocode; g.Usable() {
		switch {
		case (g.Class == "aeroway" || g.Type == "aerodrome") && hasSpeed && v > 100:
			return models.ModeAirplane, models.ReasonAirportAndPlaneSpeed
		case g.Type == "railway_station" || g.Class == "railway":
			return models.ModeTrain, models.ReasonTrainStationAndSpeed
		case g.Amenity == "airport":
			return models.ModeAirplane, models.ReasonAirportAndPlaneSpeed
		case g.Amenity == "bus_station":
			return models.ModeCar, models.ReasonHighwayOrMotorway
		case g.Amenity == "subway_entrance":
			return models.ModeTrain, models.ReasonTrainStationAndSpeed
		case g.Amenity == "ferry_terminal":
			// No dedicated ferry mode yet; treated as car.
			return models.ModeCar, models.ReasonHighwayOrMotorway
		case g.Landuse == "railway":
			return models.ModeTrain, models.ReasonTrainStationAndSpeed
		case g.Landuse == "industrial":
			return models.ModeCar, models.ReasonCarSpeedOnly
		case g.Landuse == "residential":
			return classifyResidential(v, hasSpeed)
		case g.Landuse == "park":
			return classifyPark(v, hasSpeed)
		case g.Type == "golf_course":
			return models.ModeWalking, models.ReasonGolfCourseWalking
		}
	}

	return classifyBySpeed(v, hasSpeed)
}

// classifyResidential: residential land-use expects local traffic.
func classifyResidential(v float64, hasSpeed bool) (models.TransportMode, models.DetectionReason) {
	switch {
	case hasSpeed && v > 30:
		return models.ModeCar, models.ReasonCarSpeedOnly
	case hasSpeed && v > 1:
		return models.ModeWalking, models.ReasonWalkingSpeedOnly
	default:
		return models.ModeStationary, models.ReasonStationarySpeedOnly
	}
}

// classifyPark: parks see cyclists and pedestrians, not cars.
func classifyPark(v float64, hasSpeed bool) (models.TransportMode, models.DetectionReason) {
	switch {
	case hasSpeed && v > 15:
		return models.ModeCycling, models.ReasonCyclingSpeedOnly
	case hasSpeed && v > 1:
		return models.ModeWalking, models.ReasonWalkingSpeedOnly
	default:
		return models.ModeStationary, models.ReasonStationarySpeedOnly
	}
}

// classifyBySpeed is the speed-only fallback ladder, evaluated top-down.
// Speeds between 6 and 15 km/h are deliberately left unknown: too fast
// for a confident walk, too slow for a confident ride. The continuity and
// gap-filling passes resolve them from context.
func classifyBySpeed(v float64, hasSpeed bool) (models.TransportMode, models.DetectionReason) {
	if !hasSpeed {
		return models.ModeUnknown, models.ReasonDefault
	}
	switch {
	case v > 400:
		return models.ModeAirplane, models.ReasonHighVelocityPlane
	case v > 350:
		return models.ModeAirplane, models.ReasonPlaneSpeedOnly
	case v > 150:
		return models.ModeTrain, models.ReasonTrainSpeedOnly
	case v > 80:
		return models.ModeCar, models.ReasonCarSpeedOnly
	case v > 30:
		return models.ModeCar, models.ReasonCarSpeedOnly
	case v > 15:
		return models.ModeCycling, models.ReasonCyclingSpeedOnly
	case v >= 2 && v <= 6:
		return models.ModeWalking, models.ReasonWalkingSpeedOnly
	case v > 0 && v < 2:
		return models.ModeStationary, models.ReasonStationarySpeedOnly
	default:
		return models.ModeUnknown, models.ReasonDefault
	}
}
