package usecases

import (
	"github.com/HazelJiang/BearMap/pkg/engine/routing"
	"github.com/HazelJiang/BearMap/pkg/geo"
)

type StreetMap interface {
	routing.AStarGraph[int64]
	Coordinates(path []int64) []geo.Coordinate
}

type SpatialIndex interface {
	Closest(lat, lon float64) (int64, error)
}
