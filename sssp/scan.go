package sssp

// ArrayScan computes the shortest paths from vertex src to all the vertices of
// g. The next vertex to settle is found by scanning all unsettled vertices,
// which makes the algorithm run in O(V² + E) regardless of the graph density.
func ArrayScan(g *Graph, src int) (*Result, error) {
	s, err := newSearch(g, src)
	if err != nil {
		return nil, err
	}
	s.arrayScan()
	return s.res, nil
}

func (s *search) arrayScan() {
	nNodes := s.g.NumNodes()
	dist := s.res.Dist

	for iter := 0; iter < nNodes; iter++ {
		// Strict comparison: the lowest id wins ties and vertices at Inf are
		// never selected.
		u := -1
		best := Inf
		for v := 0; v < nNodes; v++ {
			if dist[v] < best && !s.settled.Contains(v) {
				best = dist[v]
				u = v
			}
		}
		if u == -1 {
			return // all remaining vertices are unreachable
		}
		s.settle(u, nil)
	}
}
