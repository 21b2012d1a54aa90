package routing

import (
	"fmt"
	"reflect"

	"github.com/HazelJiang/BearMap/pkg/util"
)

var _ ShortestPathsSolver[int64] = (*AStarSolver[int64])(nil)

// reconstructPath walks cameFrom back from goal and returns the path start..goal.
func reconstructPath[V comparable](cameFrom map[V]V, start, goal V) []V {
	path := []V{goal}
	for cur := goal; cur != start; {
		prev, ok := cameFrom[cur]
		util.AssertPanic(ok, fmt.Sprintf("routing: broken predecessor chain at %v", cur))
		path = append(path, prev)
		cur = prev
	}
	return util.ReverseG(path)
}

// assertQueueOp panics on a priority queue error; the solver only ever inserts absent keys,
// decreases present ones and extracts from a non-empty heap.
func assertQueueOp(err error, op string) {
	if err != nil {
		panic(fmt.Sprintf("routing: priority queue %s: %v", op, err))
	}
}

func isNilVertex[V comparable](v V) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Map, reflect.Func, reflect.Slice,
		reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
