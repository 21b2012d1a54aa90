package geo

import (
	"math"

	"github.com/HazelJiang/BearMap/pkg"
	"github.com/HazelJiang/BearMap/pkg/util"

	"github.com/golang/geo/s2"
)

// GreatCircleDistance returns the distance in km between two points on the sphere, computed with s2.
func GreatCircleDistance(latOne, lonOne, latTwo, lonTwo float64) float64 {
	a := s2.LatLngFromDegrees(latOne, lonOne)
	b := s2.LatLngFromDegrees(latTwo, lonTwo)
	return a.Distance(b).Radians() * pkg.EARTH_RADIUS_KM
}

// BoundingBox returns the [lon, lat] corners of the smallest box containing every point within
// radius km of (lat, lon). Boxes are not split at the antimeridian.
func BoundingBox(lat, lon, radius float64) (min, max [2]float64) {
	dr := radius / pkg.EARTH_RADIUS_KM
	dLat := util.RadiansToDegree(dr)

	dLon := 180.0
	if ratio := math.Sin(dr) / math.Cos(util.DegreeToRadians(lat)); ratio < 1 {
		dLon = util.RadiansToDegree(math.Asin(ratio))
	}

	minLat, maxLat := math.Max(lat-dLat, -90), math.Min(lat+dLat, 90)
	return [2]float64{lon - dLon, minLat}, [2]float64{lon + dLon, maxLat}
}
