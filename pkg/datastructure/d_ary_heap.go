package datastructure

import (
	"github.com/HazelJiang/BearMap/pkg"
)

type PriorityQueueNode[T comparable] struct {
	rank float64
	item T
	seq  uint64 // insertion order, breaks ties between equal ranks
}

func (p *PriorityQueueNode[T]) GetItem() T {
	return p.item
}

func (p *PriorityQueueNode[T]) GetRank() float64 {
	return p.rank
}

// less orders by rank, then by insertion order.
func (p *PriorityQueueNode[T]) less(o *PriorityQueueNode[T]) bool {
	if p.rank != o.rank {
		return p.rank < o.rank
	}
	return p.seq < o.seq
}

// MinHeap is an indexed d-ary min-heap priority queue. Every key is present at most once and
// its position in the heap array is tracked in pos, so Contains and DecreaseKey never scan.
type MinHeap[T comparable] struct {
	heap    []*PriorityQueueNode[T]
	pos     map[T]int
	d       int
	nextSeq uint64
}

func NewBinaryHeap[T comparable]() *MinHeap[T] {
	return NewdAryHeap[T](2)
}

func NewFourAryHeap[T comparable]() *MinHeap[T] {
	return NewdAryHeap[T](4)
}

func NewdAryHeap[T comparable](d int) *MinHeap[T] {
	if d < 2 {
		d = 2
	}
	return &MinHeap[T]{
		heap: make([]*PriorityQueueNode[T], 0),
		pos:  make(map[T]int),
		d:    d,
	}
}

func (h *MinHeap[T]) Preallocate(maxSearchSize int) {
	h.heap = make([]*PriorityQueueNode[T], 0, maxSearchSize)
	h.pos = make(map[T]int, maxSearchSize)
}

// parent returns the index of the parent of index.
func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / h.d
}

// heapifyUp moves the node at index towards the root while it is smaller than its parent. O(log n).
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.heap[index].less(h.heap[h.parent(index)]) {
		h.swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown moves the node at index towards the leaves while one of its children is smaller. O(log n).
func (h *MinHeap[T]) heapifyDown(index int) {
	for {
		leftMostChild := index*h.d + 1
		if leftMostChild >= len(h.heap) {
			return
		}

		sentinel := leftMostChild + h.d
		if sentinel > len(h.heap) {
			sentinel = len(h.heap)
		}

		smallest := leftMostChild
		for i := leftMostChild + 1; i < sentinel; i++ {
			if h.heap[i].less(h.heap[smallest]) {
				smallest = i
			}
		}

		if !h.heap[smallest].less(h.heap[index]) {
			return
		}
		h.swap(index, smallest)
		index = smallest
	}
}

// swap exchanges two heap slots and keeps pos in sync.
func (h *MinHeap[T]) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]

	h.pos[h.heap[i].item] = i
	h.pos[h.heap[j].item] = j
}

func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

func (h *MinHeap[T]) Clear() {
	h.heap = make([]*PriorityQueueNode[T], 0)
	h.pos = make(map[T]int)
}

// Contains reports whether item currently has an entry in the heap.
func (h *MinHeap[T]) Contains(item T) bool {
	_, ok := h.pos[item]
	return ok
}

// Rank returns the current rank of item.
func (h *MinHeap[T]) Rank(item T) (float64, bool) {
	i, ok := h.pos[item]
	if !ok {
		return 0, false
	}
	return h.heap[i].rank, true
}

// GetMin returns the root node without removing it.
func (h *MinHeap[T]) GetMin() (*PriorityQueueNode[T], error) {
	if h.IsEmpty() {
		return &PriorityQueueNode[T]{}, ErrEmptyQueue
	}
	return h.heap[0], nil
}

func (h *MinHeap[T]) GetMinRank() float64 {
	if h.IsEmpty() {
		return 2 * pkg.INF_WEIGHT
	}
	return h.heap[0].rank
}

// Insert adds item with the given rank. O(log n).
func (h *MinHeap[T]) Insert(item T, rank float64) error {
	if _, ok := h.pos[item]; ok {
		return ErrDuplicateKey
	}

	node := &PriorityQueueNode[T]{rank: rank, item: item, seq: h.nextSeq}
	h.nextSeq++

	h.heap = append(h.heap, node)
	index := len(h.heap) - 1
	h.pos[item] = index
	h.heapifyUp(index)
	return nil
}

// ExtractMin removes and returns the item with the smallest rank. O(log n).
func (h *MinHeap[T]) ExtractMin() (T, error) {
	if h.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}
	root := h.heap[0]
	last := len(h.heap) - 1

	h.swap(0, last)
	h.heap[last] = nil
	h.heap = h.heap[:last]
	delete(h.pos, root.item)

	if len(h.heap) > 0 {
		h.heapifyDown(0)
	}

	return root.item, nil
}

// DecreaseKey lowers the rank of item in place. A rank larger than the current one is rejected
// and leaves the heap untouched. O(log n).
func (h *MinHeap[T]) DecreaseKey(item T, rank float64) error {
	itemPos, ok := h.pos[item]
	if !ok {
		return ErrKeyNotFound
	}
	if rank > h.heap[itemPos].rank {
		return ErrInvalidPriority
	}

	h.heap[itemPos].rank = rank
	h.heapifyUp(itemPos)
	return nil
}
