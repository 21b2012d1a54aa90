package datastructure

import "errors"

// Priority queue misuse. The routing engine never triggers these through correct use, so seeing
// one outside of a test means a broken caller.
var (
	ErrDuplicateKey    = errors.New("priority queue: key already present")
	ErrEmptyQueue      = errors.New("priority queue: heap is empty")
	ErrKeyNotFound     = errors.New("priority queue: key not found")
	ErrInvalidPriority = errors.New("priority queue: new rank is greater than current rank")
)
