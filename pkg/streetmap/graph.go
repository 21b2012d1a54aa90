package streetmap

import (
	"errors"
	"fmt"
	"sort"

	da "github.com/HazelJiang/BearMap/pkg/datastructure"
	"github.com/HazelJiang/BearMap/pkg/geo"
)

var (
	ErrNodeNotFound   = errors.New("streetmap: node not found")
	ErrNegativeWeight = errors.New("streetmap: negative edge weight")
	ErrWayTooShort    = errors.New("streetmap: way needs at least two nodes")
)

type Node struct {
	ID   int64
	Lat  float64
	Lon  float64
	Name string
}

func (n Node) Coordinate() geo.Coordinate {
	return geo.NewCoordinate(n.Lat, n.Lon)
}

// Graph is a street map whose vertices are node ids. Edge weights and the A* heuristic are both
// great-circle distances in km, so the heuristic is admissible and consistent. A Graph is safe for
// concurrent reads once it is fully built.
type Graph struct {
	nodes    map[int64]Node
	adj      map[int64][]da.WeightedEdge[int64]
	numEdges int
}

func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int64]Node),
		adj:   make(map[int64][]da.WeightedEdge[int64]),
	}
}

// AddNode adds or replaces a node. Existing edges are kept.
func (g *Graph) AddNode(id int64, lat, lon float64, name string) {
	g.nodes[id] = Node{ID: id, Lat: lat, Lon: lon, Name: name}
}

func (g *Graph) AddEdge(from, to int64, weight float64) error {
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, to)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %d -> %d (%f)", ErrNegativeWeight, from, to, weight)
	}
	g.adj[from] = append(g.adj[from], da.NewWeightedEdge(from, to, weight))
	g.numEdges++
	return nil
}

// AddWay connects consecutive nodes of a way. Two-way streets get an edge in each direction.
func (g *Graph) AddWay(nodeIDs []int64, oneway bool) error {
	if len(nodeIDs) < 2 {
		return ErrWayTooShort
	}
	for i := 0; i+1 < len(nodeIDs); i++ {
		u, v := nodeIDs[i], nodeIDs[i+1]
		w, err := g.distance(u, v)
		if err != nil {
			return err
		}
		if err := g.AddEdge(u, v, w); err != nil {
			return err
		}
		if !oneway {
			if err := g.AddEdge(v, u, w); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Graph) distance(u, v int64) (float64, error) {
	nu, ok := g.nodes[u]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	nv, ok := g.nodes[v]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	}
	return geo.GreatCircleDistance(nu.Lat, nu.Lon, nv.Lat, nv.Lon), nil
}

func (g *Graph) Neighbors(v int64) []da.WeightedEdge[int64] {
	return g.adj[v]
}

// EstimatedDistanceToGoal returns the great-circle distance in km, or 0 when either node is unknown.
func (g *Graph) EstimatedDistanceToGoal(v, goal int64) float64 {
	d, err := g.distance(v, goal)
	if err != nil {
		return 0
	}
	return d
}

func (g *Graph) GetNode(id int64) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

func (g *Graph) Lat(id int64) float64 {
	return g.nodes[id].Lat
}

func (g *Graph) Lon(id int64) float64 {
	return g.nodes[id].Lon
}

// Coordinates maps a vertex path back to its coordinates.
func (g *Graph) Coordinates(path []int64) []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, len(path))
	for _, id := range path {
		coords = append(coords, g.nodes[id].Coordinate())
	}
	return coords
}

// Nodes returns every node ordered by id.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].ID < nodes[j].ID
	})
	return nodes
}

// ForOutEdges calls handle for every edge, grouped by tail in id order.
func (g *Graph) ForOutEdges(handle func(e da.WeightedEdge[int64])) {
	for _, n := range g.Nodes() {
		for _, e := range g.adj[n.ID] {
			handle(e)
		}
	}
}

func (g *Graph) NumberOfVertices() int {
	return len(g.nodes)
}

func (g *Graph) NumberOfEdges() int {
	return g.numEdges
}
