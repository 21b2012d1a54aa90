package controllers

import (
	"github.com/HazelJiang/BearMap/pkg/http/usecases"
)

type RoutingService interface {
	ShortestPath(origLat, origLon, dstLat, dstLon float64) (usecases.RouteResult, error)
}
