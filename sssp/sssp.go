// Package sssp computes single-source shortest paths in graphs with
// non-negative edge weights.
//
// Two scheduling strategies are provided. ArrayScan selects the next vertex to
// settle with a linear scan over the unsettled vertices, which is O(V²) and
// needs no auxiliary structure. PriorityQueue delegates that selection to a
// min-priority-queue, which is O((V+E) log V).
//
// Both strategies settle vertices in the same order: by increasing distance,
// with ties broken by lowest vertex id. As a consequence they return identical
// distance and predecessor tables for any graph.
package sssp

import (
	"fmt"

	"github.com/rhartert/sparsesets"
)

// Engine is a function that runs a single-source shortest path query on a
// graph.
type Engine func(g *Graph, src int) (*Result, error)

// search holds the mutable state of a single query.
type search struct {
	g       *Graph
	res     *Result
	settled *sparsesets.Set

	// onSettle, if set, is called each time a vertex is settled and before
	// its edges are relaxed.
	onSettle func(u int, dist []float64)
}

func newSearch(g *Graph, src int) (*search, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NumNodes()
	if src < 0 || n <= src {
		return nil, fmt.Errorf("%w: vertex %d not in [0, %d)", ErrInvalidSource, src, n)
	}
	return &search{
		g:       g,
		res:     newResult(n, src),
		settled: sparsesets.New(n),
	}, nil
}

// settle marks vertex u as settled and relaxes all its outgoing edges. Each
// time the distance of a vertex is improved, push is called with the vertex
// and its new distance (if push is not nil).
func (s *search) settle(u int, push func(v int, d float64)) {
	s.settled.Insert(u)
	s.res.Order = append(s.res.Order, u)
	if s.onSettle != nil {
		s.onSettle(u, s.res.Dist)
	}

	dist := s.res.Dist
	du := dist[u]
	for _, e := range s.g.nexts[u] {
		edge := s.g.edges[e]
		s.res.Relaxations++

		newDist := du + edge.Weight
		if newDist >= dist[edge.To] {
			continue
		}
		dist[edge.To] = newDist
		s.res.Prev[edge.To] = u
		if push != nil {
			push(edge.To, newDist)
		}
	}
}
