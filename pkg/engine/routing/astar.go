package routing

import (
	"errors"
	"fmt"
	"time"

	da "github.com/HazelJiang/BearMap/pkg/datastructure"
	"go.uber.org/zap"
)

var (
	// ErrInvalidStart is returned before any search work when the start vertex is nil or has no
	// outgoing edges. A start equal to the goal is rejected too if it has no outgoing edges.
	ErrInvalidStart = errors.New("routing: invalid start vertex")
)

type SolverOutcome uint8

const (
	UNDEFINED SolverOutcome = iota
	SOLVED
	TIMEOUT
	UNSOLVABLE
)

func (o SolverOutcome) String() string {
	switch o {
	case SOLVED:
		return "SOLVED"
	case TIMEOUT:
		return "TIMEOUT"
	case UNSOLVABLE:
		return "UNSOLVABLE"
	default:
		return "UNDEFINED"
	}
}

// SolverResult is the outcome and diagnostics of one finished search.
type SolverResult[V comparable] struct {
	Outcome SolverOutcome
	// Solution runs from start to goal inclusive. Empty unless Outcome is SOLVED.
	Solution []V
	// SolutionWeight is only meaningful when Outcome is SOLVED.
	SolutionWeight float64
	// NumStatesExplored counts popped and relaxed vertices. The pop that hits the goal and the pop
	// that trips the timeout are not counted.
	NumStatesExplored int
	ExplorationTime   time.Duration
}

type SolverOption func(*solverOptions)

type solverOptions struct {
	log   *zap.Logger
	now   func() time.Time
	arity int
}

func WithLogger(log *zap.Logger) SolverOption {
	return func(o *solverOptions) { o.log = log }
}

// WithClock replaces time.Now for timeout checks and exploration time.
func WithClock(now func() time.Time) SolverOption {
	return func(o *solverOptions) { o.now = now }
}

// WithHeapArity sets the arity of the frontier heap. Default 2.
func WithHeapArity(d int) SolverOption {
	return func(o *solverOptions) { o.arity = d }
}

// AStarSolver runs A* searches over an AStarGraph. The accessors report the most recent finished
// Solve. A solver must not be shared between goroutines; separate solvers may search the same
// graph concurrently as long as the graph itself is safe for concurrent reads.
type AStarSolver[V comparable] struct {
	graph AStarGraph[V]
	opts  solverOptions
	last  SolverResult[V]
}

func NewAStarSolver[V comparable](graph AStarGraph[V], options ...SolverOption) *AStarSolver[V] {
	opts := solverOptions{
		log:   zap.NewNop(),
		now:   time.Now,
		arity: 2,
	}
	for _, option := range options {
		option(&opts)
	}
	return &AStarSolver[V]{graph: graph, opts: opts}
}

// ShortestPath is a one-shot helper around NewAStarSolver and Solve.
func ShortestPath[V comparable](graph AStarGraph[V], start, goal V, timeout time.Duration,
	options ...SolverOption) (SolverResult[V], error) {
	as := NewAStarSolver(graph, options...)
	if err := as.Solve(start, goal, timeout); err != nil {
		return SolverResult[V]{}, err
	}
	return as.Result(), nil
}

// Solve searches for the shortest path from start to goal.
//
// The timeout is polled once per popped vertex, after the pop and before the goal test, so a run
// can report TIMEOUT on what would have been its last step. A search can overrun the timeout by
// at most the relaxation of one vertex's outgoing edges. TIMEOUT and UNSOLVABLE are outcomes, not
// errors; the only error is ErrInvalidStart, returned before the frontier is created. It also
// clears the result of the previous search.
func (as *AStarSolver[V]) Solve(start, goal V, timeout time.Duration) error {
	as.last = SolverResult[V]{Solution: []V{}}

	if isNilVertex(start) {
		return fmt.Errorf("%w: start vertex is nil", ErrInvalidStart)
	}
	if len(as.graph.Neighbors(start)) == 0 {
		return fmt.Errorf("%w: start vertex %v has no outgoing edges", ErrInvalidStart, start)
	}

	began := as.opts.now()

	pq := da.NewdAryHeap[V](as.opts.arity)
	distanceTo := map[V]float64{start: 0}
	cameFrom := make(map[V]V)
	visited := make(map[V]struct{})

	result := SolverResult[V]{Solution: []V{}}

	assertQueueOp(pq.Insert(start, as.graph.EstimatedDistanceToGoal(start, goal)), "insert")

	for {
		if pq.IsEmpty() {
			result.Outcome = UNSOLVABLE
			break
		}

		v, err := pq.ExtractMin()
		assertQueueOp(err, "extract min")

		if as.opts.now().Sub(began) >= timeout {
			result.Outcome = TIMEOUT
			break
		}

		visited[v] = struct{}{}
		if v == goal {
			result.Outcome = SOLVED
			result.Solution = reconstructPath(cameFrom, start, goal)
			result.SolutionWeight = distanceTo[goal]
			break
		}

		result.NumStatesExplored++
		as.relax(pq, v, goal, distanceTo, cameFrom, visited)
	}

	result.ExplorationTime = as.opts.now().Sub(began)
	as.last = result

	as.opts.log.Debug("a* search finished",
		zap.String("outcome", result.Outcome.String()),
		zap.Int("states_explored", result.NumStatesExplored),
		zap.Int("path_length", len(result.Solution)),
		zap.Duration("exploration_time", result.ExplorationTime))
	return nil
}

// relax updates every non-finalized head of v's outgoing edges whose distance improves through v.
func (as *AStarSolver[V]) relax(pq *da.MinHeap[V], v, goal V, distanceTo map[V]float64,
	cameFrom map[V]V, visited map[V]struct{}) {
	for _, edge := range as.graph.Neighbors(v) {
		to := edge.To()
		if _, done := visited[to]; done {
			continue
		}

		newDist := distanceTo[v] + edge.Weight()
		if oldDist, labelled := distanceTo[to]; labelled && newDist >= oldDist {
			// not better
			continue
		}

		distanceTo[to] = newDist
		cameFrom[to] = v

		priority := newDist + as.graph.EstimatedDistanceToGoal(to, goal)
		if pq.Contains(to) {
			assertQueueOp(pq.DecreaseKey(to, priority), "decrease key")
		} else {
			assertQueueOp(pq.Insert(to, priority), "insert")
		}
	}
}

func (as *AStarSolver[V]) Result() SolverResult[V] {
	res := as.last
	res.Solution = as.Solution()
	return res
}

func (as *AStarSolver[V]) Outcome() SolverOutcome {
	return as.last.Outcome
}

func (as *AStarSolver[V]) Solution() []V {
	sol := make([]V, len(as.last.Solution))
	copy(sol, as.last.Solution)
	return sol
}

func (as *AStarSolver[V]) SolutionWeight() float64 {
	return as.last.SolutionWeight
}

func (as *AStarSolver[V]) NumStatesExplored() int {
	return as.last.NumStatesExplored
}

func (as *AStarSolver[V]) ExplorationTime() time.Duration {
	return as.last.ExplorationTime
}
