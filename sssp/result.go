package sssp

import (
	"math"

	"github.com/rhartert/sssp/sssp/paths"
)

// NoPredecessor is the predecessor of the source and of every vertex that is
// not reachable from the source.
const NoPredecessor = -1

// Inf is the distance of vertices that are not reachable from the source.
var Inf = math.Inf(1)

// Result contains the output of a single-source shortest path query.
type Result struct {
	Source int

	// Dist[v] is the length of the shortest path from Source to v, or Inf if
	// v is not reachable from Source.
	Dist []float64

	// Prev[v] is the vertex that precedes v on the shortest path from Source,
	// or NoPredecessor.
	Prev []int

	// Order lists the settled vertices in the order they were settled. It
	// contains exactly the vertices reachable from Source.
	Order []int

	// Relaxations is the number of edges examined during the search.
	Relaxations int
}

func newResult(nNodes int, src int) *Result {
	r := &Result{
		Source: src,
		Dist:   make([]float64, nNodes),
		Prev:   make([]int, nNodes),
		Order:  make([]int, 0, nNodes),
	}
	for v := range r.Dist {
		r.Dist[v] = Inf
		r.Prev[v] = NoPredecessor
	}
	r.Dist[src] = 0
	return r
}

// Reachable returns true if there is a path from the source to vertex v.
func (r *Result) Reachable(v int) bool {
	return !math.IsInf(r.Dist[v], 1)
}

// Path returns the shortest path from the source to vertex v. The second
// returned value is false if v is not reachable.
func (r *Result) Path(v int) (*paths.Path, bool) {
	if v < 0 || len(r.Dist) <= v || !r.Reachable(v) {
		return nil, false
	}
	return paths.FromPredecessors(r.Prev, r.Source, v)
}
