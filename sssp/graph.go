package sssp

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidEdge is returned when an edge references a vertex outside of
	// the graph or carries a weight that is negative, NaN, or infinite.
	ErrInvalidEdge = errors.New("invalid edge")

	// ErrInvalidSource is returned when a shortest path query starts from a
	// vertex that is not in the graph.
	ErrInvalidSource = errors.New("invalid source vertex")

	// ErrNilGraph is returned when a shortest path query is run on a nil
	// graph.
	ErrNilGraph = errors.New("graph is nil")
)

// Edge represents a weighted edge between two vertices in a directed graph.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Graph represents a weighted directed graph whose vertices are identified by
// dense ids in [0, NumNodes()). Undirected graphs are represented by adding
// both arcs of each edge (see AddUndirectedEdge).
//
// A Graph must not be modified while a shortest path query is running on it.
type Graph struct {
	nexts [][]int
	edges []Edge
}

// NewGraph returns a graph with nNodes isolated vertices.
func NewGraph(nNodes int) *Graph {
	return &Graph{
		nexts: make([][]int, nNodes),
	}
}

// NewGraphFromEdges returns a graph with nNodes vertices and the given edges,
// added in order. It fails on the first invalid edge.
func NewGraphFromEdges(edges []Edge, nNodes int) (*Graph, error) {
	g := NewGraph(nNodes)
	g.edges = make([]Edge, 0, len(edges))
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// NumNodes returns the number of vertices in the graph.
func (g *Graph) NumNodes() int {
	return len(g.nexts)
}

// NumEdges returns the number of edges in the graph.
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// AddVertex adds a new isolated vertex and returns its id.
func (g *Graph) AddVertex() int {
	g.nexts = append(g.nexts, nil)
	return len(g.nexts) - 1
}

// AddEdge adds a directed edge from vertex from to vertex to. Parallel edges
// and self-loops are allowed. The function returns an error wrapping
// ErrInvalidEdge if one of the vertices is not in the graph or if the weight
// is not a finite non-negative number; the graph is left unchanged in that
// case.
func (g *Graph) AddEdge(from int, to int, weight float64) error {
	if err := g.checkEdge(from, to, weight); err != nil {
		return err
	}
	g.addArc(from, to, weight)
	return nil
}

// AddUndirectedEdge adds the two arcs u -> v and v -> u with the same weight.
// Either both arcs are added or none of them.
func (g *Graph) AddUndirectedEdge(u int, v int, weight float64) error {
	if err := g.checkEdge(u, v, weight); err != nil {
		return err
	}
	g.addArc(u, v, weight)
	g.addArc(v, u, weight)
	return nil
}

// addArc adds an edge that already passed checkEdge.
func (g *Graph) addArc(from int, to int, weight float64) {
	g.nexts[from] = append(g.nexts[from], len(g.edges))
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
}

// Out returns the indexes of the edges leaving vertex v in the order they were
// added to the graph.
//
// Important: the slice is a view on one of the graph's internal structure and
// should only be used in read-only operations.
func (g *Graph) Out(v int) []int {
	return g.nexts[v]
}

// Edge returns the edge with the given index.
func (g *Graph) Edge(i int) Edge {
	return g.edges[i]
}

// Edges returns all the edges of the graph in insertion order.
//
// Important: the slice is a view on one of the graph's internal structure and
// should only be used in read-only operations.
func (g *Graph) Edges() []Edge {
	return g.edges
}

func (g *Graph) checkEdge(from int, to int, weight float64) error {
	n := len(g.nexts)
	if from < 0 || n <= from {
		return fmt.Errorf("%w: vertex %d not in [0, %d)", ErrInvalidEdge, from, n)
	}
	if to < 0 || n <= to {
		return fmt.Errorf("%w: vertex %d not in [0, %d)", ErrInvalidEdge, to, n)
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: edge %d -> %d has weight %v", ErrInvalidEdge, from, to, weight)
	}
	return nil
}
