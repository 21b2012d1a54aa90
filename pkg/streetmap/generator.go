package streetmap

import (
	"fmt"

	"github.com/HazelJiang/BearMap/pkg/geo"
	"golang.org/x/exp/rand"
)

type GridConfig struct {
	Rows, Cols int
	// south-west corner
	Lat, Lon float64
	// block length in km
	Spacing float64
	// share of street segments that are one way, and share that are left out entirely
	OnewayFraction float64
	DropFraction   float64
}

// GenerateGrid builds a synthetic Manhattan-style street map. Intersections are jittered by up to a
// tenth of a block so that ties between routes are rare. Node ids are row*Cols + col + 1.
func GenerateGrid(cfg GridConfig, rd *rand.Rand) (*Graph, error) {
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return nil, fmt.Errorf("streetmap: grid needs at least one row and column, got %dx%d", cfg.Rows, cfg.Cols)
	}

	g := NewGraph()
	id := func(r, c int) int64 { return int64(r*cfg.Cols + c + 1) }

	for r := 0; r < cfg.Rows; r++ {
		rowLat, _ := geo.GetDestinationPoint(cfg.Lat, cfg.Lon, 0, float64(r)*cfg.Spacing)
		for c := 0; c < cfg.Cols; c++ {
			lat, lon := geo.GetDestinationPoint(rowLat, cfg.Lon, 90, float64(c)*cfg.Spacing)
			lat, lon = geo.GetDestinationPoint(lat, lon, rd.Float64()*360, rd.Float64()*cfg.Spacing/10)
			g.AddNode(id(r, c), lat, lon, fmt.Sprintf("Street %d & Avenue %d", r+1, c+1))
		}
	}

	addStreet := func(u, v int64) error {
		if rd.Float64() < cfg.DropFraction {
			return nil
		}
		if rd.Float64() < cfg.OnewayFraction {
			if rd.Intn(2) == 0 {
				u, v = v, u
			}
			return g.AddWay([]int64{u, v}, true)
		}
		return g.AddWay([]int64{u, v}, false)
	}

	for r := 0; r < cfg.Rows; r++ {
		for c := 0; c < cfg.Cols; c++ {
			if c+1 < cfg.Cols {
				if err := addStreet(id(r, c), id(r, c+1)); err != nil {
					return nil, err
				}
			}
			if r+1 < cfg.Rows {
				if err := addStreet(id(r, c), id(r+1, c)); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}
