package pkg

import "time"

const (
	INF_WEIGHT float64 = 1e15

	EARTH_RADIUS_KM = 6371.0
)

const (
	DEFAULT_SEARCH_TIMEOUT = 10 * time.Second
	// query points farther than this from every routable vertex are rejected (km)
	MAX_SNAP_RADIUS_KM = 50.0
)
