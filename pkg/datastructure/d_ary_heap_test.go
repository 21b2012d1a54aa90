package datastructure

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkHeapInvariants verifies heap order and that pos points at every node's slot.
func checkHeapInvariants[T comparable](t *testing.T, h *MinHeap[T]) {
	t.Helper()
	require.Equal(t, len(h.heap), len(h.pos), "index map and heap array disagree on size")
	for i, node := range h.heap {
		p, ok := h.pos[node.item]
		require.True(t, ok, "item %v missing from index map", node.item)
		require.Equal(t, i, p, "item %v indexed at %d but stored at %d", node.item, p, i)
		if i > 0 {
			parent := h.heap[h.parent(i)]
			require.False(t, node.less(parent), "heap order violated at %d", i)
		}
	}
}

func TestMinHeapInsertExtract(t *testing.T) {
	testCases := []struct {
		name  string
		arity int
		ranks map[string]float64
		want  []string
	}{
		{
			name:  "binary heap",
			arity: 2,
			ranks: map[string]float64{"a": 5, "b": 1, "c": 3, "d": 4, "e": 2},
			want:  []string{"b", "e", "c", "d", "a"},
		},
		{
			name:  "four-ary heap",
			arity: 4,
			ranks: map[string]float64{"a": 5, "b": 1, "c": 3, "d": 4, "e": 2, "f": 0.5, "g": 10},
			want:  []string{"f", "b", "e", "c", "d", "a", "g"},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			h := NewdAryHeap[string](tt.arity)
			keys := make([]string, 0, len(tt.ranks))
			for k := range tt.ranks {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				require.NoError(t, h.Insert(k, tt.ranks[k]))
				checkHeapInvariants(t, h)
			}
			assert.Equal(t, len(tt.ranks), h.Size())

			got := make([]string, 0, len(tt.want))
			for !h.IsEmpty() {
				item, err := h.ExtractMin()
				require.NoError(t, err)
				checkHeapInvariants(t, h)
				got = append(got, item)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinHeapDuplicateInsert(t *testing.T) {
	h := NewBinaryHeap[int]()
	require.NoError(t, h.Insert(7, 3))
	require.NoError(t, h.Insert(8, 1))

	err := h.Insert(7, 0)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, 2, h.Size())

	rank, ok := h.Rank(7)
	assert.True(t, ok)
	assert.Equal(t, 3.0, rank)
	checkHeapInvariants(t, h)
}

func TestMinHeapExtractEmpty(t *testing.T) {
	h := NewBinaryHeap[int]()
	_, err := h.ExtractMin()
	assert.ErrorIs(t, err, ErrEmptyQueue)

	_, err = h.GetMin()
	assert.ErrorIs(t, err, ErrEmptyQueue)

	require.NoError(t, h.Insert(1, 1))
	_, err = h.ExtractMin()
	require.NoError(t, err)
	_, err = h.ExtractMin()
	assert.ErrorIs(t, err, ErrEmptyQueue)
}

func TestMinHeapContains(t *testing.T) {
	h := NewBinaryHeap[string]()
	assert.False(t, h.Contains("x"))
	require.NoError(t, h.Insert("x", 2))
	assert.True(t, h.Contains("x"))

	_, err := h.ExtractMin()
	require.NoError(t, err)
	assert.False(t, h.Contains("x"))

	require.NoError(t, h.Insert("x", 4), "key must be insertable again after extraction")
}

func TestMinHeapDecreaseKey(t *testing.T) {
	h := NewBinaryHeap[string]()
	for i, k := range []string{"a", "b", "c", "d", "e", "f"} {
		require.NoError(t, h.Insert(k, float64(10+i)))
	}

	require.NoError(t, h.DecreaseKey("f", 1))
	checkHeapInvariants(t, h)
	min, err := h.GetMin()
	require.NoError(t, err)
	assert.Equal(t, "f", min.GetItem())
	assert.Equal(t, 1.0, min.GetRank())
	assert.Equal(t, 1.0, h.GetMinRank())

	// equal rank is allowed and is a no-op on order
	require.NoError(t, h.DecreaseKey("c", 12))
	checkHeapInvariants(t, h)
}

func TestMinHeapDecreaseKeyErrors(t *testing.T) {
	h := NewBinaryHeap[string]()
	require.NoError(t, h.Insert("a", 1))
	require.NoError(t, h.Insert("b", 5))
	require.NoError(t, h.Insert("c", 3))

	before := make([]PriorityQueueNode[string], len(h.heap))
	for i, n := range h.heap {
		before[i] = *n
	}

	assert.ErrorIs(t, h.DecreaseKey("zzz", 0), ErrKeyNotFound)
	assert.ErrorIs(t, h.DecreaseKey("c", 4), ErrInvalidPriority)

	require.Len(t, h.heap, len(before))
	for i, n := range h.heap {
		assert.Equal(t, before[i], *n, "structure changed at slot %d", i)
	}
	checkHeapInvariants(t, h)
}

func TestMinHeapTieBreakByInsertionOrder(t *testing.T) {
	h := NewBinaryHeap[int]()
	for _, k := range []int{42, 7, 19, 3, 25} {
		require.NoError(t, h.Insert(k, 1.0))
	}
	got := make([]int, 0, 5)
	for !h.IsEmpty() {
		k, err := h.ExtractMin()
		require.NoError(t, err)
		got = append(got, k)
	}
	assert.Equal(t, []int{42, 7, 19, 3, 25}, got)
}

func TestMinHeapRandomOperations(t *testing.T) {
	rd := rand.New(rand.NewSource(1))

	for _, arity := range []int{2, 3, 4} {
		h := NewdAryHeap[int](arity)
		ref := make(map[int]float64)
		inserts, extracts := 0, 0

		for step := 0; step < 5000; step++ {
			switch op := rd.Intn(3); {
			case op == 0 || len(ref) == 0:
				k := rd.Intn(500)
				r := rd.Float64() * 100
				err := h.Insert(k, r)
				if _, dup := ref[k]; dup {
					require.ErrorIs(t, err, ErrDuplicateKey)
					continue
				}
				require.NoError(t, err)
				ref[k] = r
				inserts++
			case op == 1:
				for k, r := range ref {
					nr := r - rd.Float64()*10
					require.NoError(t, h.DecreaseKey(k, nr))
					ref[k] = nr
					break
				}
			default:
				wantRank := 0.0
				first := true
				for _, r := range ref {
					if first || r < wantRank {
						wantRank = r
						first = false
					}
				}
				k, err := h.ExtractMin()
				require.NoError(t, err)
				assert.Equal(t, wantRank, ref[k], "extracted key is not a global minimum")
				delete(ref, k)
				extracts++
			}
			require.Equal(t, inserts-extracts, h.Size())
		}
		checkHeapInvariants(t, h)
	}
}

func TestMinHeapClear(t *testing.T) {
	h := NewFourAryHeap[int]()
	h.Preallocate(16)
	for i := 0; i < 10; i++ {
		require.NoError(t, h.Insert(i, float64(i)))
	}
	h.Clear()
	assert.True(t, h.IsEmpty())
	assert.False(t, h.Contains(3))
	assert.Equal(t, 0, h.Size())
}
