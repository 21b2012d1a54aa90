package datastructure

// WeightedEdge is a directed edge with a non-negative weight.
type WeightedEdge[V comparable] struct {
	from   V
	to     V
	weight float64
}

func NewWeightedEdge[V comparable](from, to V, weight float64) WeightedEdge[V] {
	return WeightedEdge[V]{from: from, to: to, weight: weight}
}

func (e WeightedEdge[V]) From() V {
	return e.from
}

func (e WeightedEdge[V]) To() V {
	return e.to
}

func (e WeightedEdge[V]) Weight() float64 {
	return e.weight
}
