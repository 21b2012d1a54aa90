package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreatCircleDistance(t *testing.T) {
	testCases := []struct {
		name                   string
		latA, lonA, latB, lonB float64
		wantKm                 float64
	}{
		{name: "same point", latA: 37.87, lonA: -122.26, latB: 37.87, lonB: -122.26, wantKm: 0},
		{name: "one degree of latitude", latA: 0, lonA: 0, latB: 1, lonB: 0, wantKm: 111.195},
		{name: "berkeley to san francisco", latA: 37.8716, lonA: -122.2727, latB: 37.7749, lonB: -122.4194, wantKm: 17.0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			s2Dist := GreatCircleDistance(tt.latA, tt.lonA, tt.latB, tt.lonB)
			havDist := CalculateHaversineDistance(tt.latA, tt.lonA, tt.latB, tt.lonB)
			assert.InDelta(t, tt.wantKm, s2Dist, 0.5)
			assert.InDelta(t, havDist, s2Dist, 1e-6)
		})
	}
}

func TestBoundingBoxContainsRadius(t *testing.T) {
	lat, lon := 37.87, -122.26
	min, max := BoundingBox(lat, lon, 1)

	assert.Less(t, min[0], lon)
	assert.Less(t, min[1], lat)
	assert.Greater(t, max[0], lon)
	assert.Greater(t, max[1], lat)

	assert.InDelta(t, 1.0, GreatCircleDistance(lat, lon, max[1], lon), 1e-9)
	assert.InDelta(t, 1.0, GreatCircleDistance(lat, lon, min[1], lon), 1e-9)
	assert.GreaterOrEqual(t, GreatCircleDistance(lat, lon, lat, max[0]), 1.0)
	assert.GreaterOrEqual(t, GreatCircleDistance(lat, lon, lat, min[0]), 1.0)

	for bearing := 0.0; bearing < 360; bearing += 15 {
		pLat, pLon := GetDestinationPoint(lat, lon, bearing, 0.999)
		assert.True(t, pLon > min[0] && pLon < max[0] && pLat > min[1] && pLat < max[1], "bearing %v", bearing)
	}
}

func TestPolylineRoundTrip(t *testing.T) {
	coords := []Coordinate{
		NewCoordinate(38.5, -120.2),
		NewCoordinate(40.7, -120.95),
		NewCoordinate(43.252, -126.453),
	}

	encoded := PolylineFromCoords(coords)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", encoded)

	decoded, err := CoordsFromPolyline(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, len(coords))
	for i := range coords {
		assert.InDelta(t, coords[i].Lat, decoded[i].Lat, 1e-5)
		assert.InDelta(t, coords[i].Lon, decoded[i].Lon, 1e-5)
	}
}
