package usecases

import (
	"errors"
	"time"

	"github.com/HazelJiang/BearMap/pkg/concurrent"
	"github.com/HazelJiang/BearMap/pkg/engine/routing"
	"github.com/HazelJiang/BearMap/pkg/geo"
	"github.com/HazelJiang/BearMap/pkg/util"
	"go.uber.org/zap"
)

var (
	ERRPATHNOTFOUND  = errors.New("path not found")
	ERRSEARCHTIMEOUT = errors.New("search timed out")
	ERRNOROADNEARBY  = errors.New("no road nearby")
)

type RouteResult struct {
	Outcome         routing.SolverOutcome
	Distance        float64 // km
	Path            []geo.Coordinate
	Polyline        string
	StatesExplored  int
	ExplorationTime time.Duration
}

type RouteQuery struct {
	OrigLat, OrigLon float64
	DstLat, DstLon   float64
}

type BatchRouteResult struct {
	Query RouteQuery
	Route RouteResult
	Err   error
}

type RoutingService struct {
	log           *zap.Logger
	graph         StreetMap
	spatialIndex  SpatialIndex
	searchRadius  float64
	searchTimeout time.Duration
	numWorkers    int
}

// NewRoutingService snaps query points to vertices at most searchRadius km away and gives each
// A* search searchTimeout. numWorkers < 1 means one batch worker per CPU.
func NewRoutingService(log *zap.Logger, graph StreetMap, spatialIndex SpatialIndex,
	searchRadius float64, searchTimeout time.Duration, numWorkers int) *RoutingService {
	return &RoutingService{
		log:           log,
		graph:         graph,
		spatialIndex:  spatialIndex,
		searchRadius:  searchRadius,
		searchTimeout: searchTimeout,
		numWorkers:    numWorkers,
	}
}

func (rs *RoutingService) ShortestPath(origLat, origLon, dstLat, dstLon float64) (RouteResult, error) {
	s, err := rs.snap(origLat, origLon, "origin")
	if err != nil {
		return RouteResult{}, err
	}
	t, err := rs.snap(dstLat, dstLon, "destination")
	if err != nil {
		return RouteResult{}, err
	}

	res, err := routing.ShortestPath[int64](rs.graph, s, t, rs.searchTimeout, routing.WithLogger(rs.log))
	if errors.Is(err, routing.ErrInvalidStart) {
		return RouteResult{}, util.WrapErrorf(err, util.ErrBadParamInput,
			"origin %f,%f snapped to vertex %d which has no outgoing road", origLat, origLon, s)
	} else if err != nil {
		return RouteResult{}, util.WrapErrorf(err, util.ErrInternalServerError, "shortest path from %d to %d", s, t)
	}

	route := RouteResult{
		Outcome:         res.Outcome,
		StatesExplored:  res.NumStatesExplored,
		ExplorationTime: res.ExplorationTime,
	}

	switch res.Outcome {
	case routing.SOLVED:
		route.Distance = res.SolutionWeight
		route.Path = rs.graph.Coordinates(res.Solution)
		route.Polyline = geo.PolylineFromCoords(route.Path)
		return route, nil
	case routing.TIMEOUT:
		return route, util.WrapErrorf(ERRSEARCHTIMEOUT, util.ErrTimeout,
			"no path found from %f,%f to %f,%f within %s", origLat, origLon, dstLat, dstLon, rs.searchTimeout)
	default:
		return route, util.WrapErrorf(ERRPATHNOTFOUND, util.ErrNotFound,
			"no path found from %f,%f to %f,%f", origLat, origLon, dstLat, dstLon)
	}
}

// ShortestPathBatch answers every query on the worker pool. Results keep the order of queries.
func (rs *RoutingService) ShortestPathBatch(queries []RouteQuery) []BatchRouteResult {
	rs.log.Info("running shortest path batch", zap.Int("queries", len(queries)))
	return concurrent.Run(rs.numWorkers, queries, func(q RouteQuery) BatchRouteResult {
		route, err := rs.ShortestPath(q.OrigLat, q.OrigLon, q.DstLat, q.DstLon)
		return BatchRouteResult{Query: q, Route: route, Err: err}
	})
}

func (rs *RoutingService) snap(lat, lon float64, what string) (int64, error) {
	v, err := rs.spatialIndex.Closest(lat, lon)
	if err != nil {
		return 0, util.WrapErrorf(err, util.ErrInternalServerError, "snapping %s %f,%f", what, lat, lon)
	}

	c := rs.graph.Coordinates([]int64{v})[0]
	if d := geo.CalculateHaversineDistance(lat, lon, c.Lat, c.Lon); d > rs.searchRadius {
		return 0, util.WrapErrorf(ERRNOROADNEARBY, util.ErrBadParamInput,
			"%s %f,%f is %.3f km from the nearest road (max %.3f km)", what, lat, lon, d, rs.searchRadius)
	}
	return v, nil
}
