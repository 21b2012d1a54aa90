package routing

import (
	"time"

	"github.com/HazelJiang/BearMap/pkg/datastructure"
)

// AStarGraph is implemented by any graph the A* solver can search. V only needs to be comparable.
//
// EstimatedDistanceToGoal must never overestimate the true remaining cost (admissible) and should
// not drop by more than an edge's weight along that edge (consistent). The solver does not check
// either property; an inadmissible heuristic still terminates but may return a suboptimal path.
type AStarGraph[V comparable] interface {
	// Neighbors returns the outgoing edges of v, or an empty slice for an isolated or unknown vertex.
	Neighbors(v V) []datastructure.WeightedEdge[V]
	EstimatedDistanceToGoal(v, goal V) float64
}

type ShortestPathsSolver[V comparable] interface {
	Outcome() SolverOutcome
	Solution() []V
	SolutionWeight() float64
	NumStatesExplored() int
	ExplorationTime() time.Duration
}
