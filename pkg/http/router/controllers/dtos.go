package controllers

import (
	"github.com/HazelJiang/BearMap/pkg/geo"
	"github.com/HazelJiang/BearMap/pkg/http/usecases"
)

type shortestPathRequest struct {
	OriginLat      float64 `json:"origin_lat" validate:"min=-90,max=90"`
	OriginLon      float64 `json:"origin_lon" validate:"min=-180,max=180"`
	DestinationLat float64 `json:"destination_lat" validate:"min=-90,max=90"`
	DestinationLon float64 `json:"destination_lon" validate:"min=-180,max=180"`
}

type shortestPathResponse struct {
	Path                   string           `json:"path"`
	Dist                   float64          `json:"distance"`
	Coords                 []geo.Coordinate `json:"coords"`
	StatesExplored         int              `json:"states_explored"`
	ExplorationTimeSeconds float64          `json:"exploration_time_seconds"`
	Outcome                string           `json:"outcome"`
}

func NewShortestPathResponse(res usecases.RouteResult) shortestPathResponse {
	return shortestPathResponse{
		Path:                   res.Polyline,
		Dist:                   res.Distance,
		Coords:                 res.Path,
		StatesExplored:         res.StatesExplored,
		ExplorationTimeSeconds: res.ExplorationTime.Seconds(),
		Outcome:                res.Outcome.String(),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}
