package spatialindex

import (
	"errors"
	"math"
	"sort"

	"github.com/HazelJiang/BearMap/pkg"
	"github.com/HazelJiang/BearMap/pkg/geo"
	"github.com/HazelJiang/BearMap/pkg/streetmap"
	"github.com/HazelJiang/BearMap/pkg/util"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

var ErrEmptyIndex = errors.New("spatialindex: index is empty")

var kmPerDegree = pkg.EARTH_RADIUS_KM * math.Pi / 180

// Rtree indexes the routable vertices of a street map by their [lon, lat] position.
type Rtree struct {
	tr *rtree.RTreeG[int64]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[int64]
	return &Rtree{
		tr: &tr,
	}
}

// Build inserts every vertex with at least one outgoing edge. Vertices a search cannot leave are
// never returned, so a snapped start is always a valid A* start.
func (rt *Rtree) Build(graph *streetmap.Graph, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	nodes := graph.Nodes()
	step := len(nodes)/10 + 1
	for i, n := range nodes {
		if i%step == 0 {
			log.Info("Building R-tree spatial index...",
				zap.Float64("progress", math.Round(float64(i)/float64(len(nodes))*100)))
		}
		if len(graph.Neighbors(n.ID)) == 0 {
			continue
		}
		pt := [2]float64{n.Lon, n.Lat}
		rt.tr.Insert(pt, pt, n.ID)
	}

	log.Info("R-tree spatial index built.", zap.Int("indexed", rt.tr.Len()))
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// Closest returns the indexed vertex with the smallest great-circle distance to (qLat, qLon).
// Items come out of the tree by planar degree distance, so iteration only stops once that
// distance, shrunk by the widest longitude scale still possible, cannot beat the best match.
func (rt *Rtree) Closest(qLat, qLon float64) (int64, error) {
	if rt.tr.Len() == 0 {
		return 0, ErrEmptyIndex
	}

	q := [2]float64{qLon, qLat}
	best, bestDist := int64(0), math.Inf(1)
	rt.tr.Nearby(rtree.BoxDist[float64, int64](q, q, nil),
		func(min, max [2]float64, data int64, dist float64) bool {
			d := geo.CalculateHaversineDistance(qLat, qLon, min[1], min[0])
			if d < bestDist || (d == bestDist && data < best) {
				best, bestDist = data, d
			}
			planar := math.Sqrt(dist)
			maxLat := math.Min(90, math.Abs(qLat)+planar)
			return planar*kmPerDegree*math.Cos(util.DegreeToRadians(maxLat)) <= bestDist
		})
	return best, nil
}

// SearchWithinRadius returns the vertices within radius km of (qLat, qLon), nearest first.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []int64 {
	type candidate struct {
		id   int64
		dist float64
	}

	min, max := geo.BoundingBox(qLat, qLon, radius)
	candidates := make([]candidate, 0, 10)
	rt.tr.Search(min, max,
		func(min, max [2]float64, data int64) bool {
			d := geo.CalculateHaversineDistance(qLat, qLon, min[1], min[0])
			if d <= radius {
				candidates = append(candidates, candidate{id: data, dist: d})
			}
			return true
		})

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].id < candidates[j].id
	})

	results := make([]int64, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, c.id)
	}
	return results
}
