// Package paths represents shortest paths reconstructed from a predecessor
// table.
package paths

import (
	"fmt"
	"strings"
)

// Path represents a path from a source vertex to a target vertex.
//
// A Path always contains at least one vertex: the path from a vertex to itself
// is made of that single vertex.
type Path struct {
	nodes []int
}

// FromPredecessors reconstructs the path from src to dst by following the
// predecessor table prev backward from dst, where prev[v] is the vertex that
// precedes v on the path (or a negative value if there is none). The second
// returned value is false if the walk does not reach src.
func FromPredecessors(prev []int, src int, dst int) (*Path, bool) {
	if dst < 0 || len(prev) <= dst {
		return nil, false
	}

	nodes := []int{dst}
	for v := dst; v != src; {
		v = prev[v]
		// A valid walk visits each vertex at most once.
		if v < 0 || len(prev) <= v || len(nodes) == len(prev) {
			return nil, false
		}
		nodes = append(nodes, v)
	}

	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return &Path{nodes: nodes}, true
}

// Length returns the length of the path in terms of vertices.
func (p *Path) Length() int {
	return len(p.nodes)
}

// Node returns the vertex at position pos starting from 0 (the source) and
// ending at Length()-1 (the target).
func (p *Path) Node(pos int) int {
	return p.nodes[pos]
}

// Nodes returns the sequence of vertices in the path, source and target
// included.
//
// Important: the slice is a view on the path's internal structure and should
// only be used in read-only operations.
func (p *Path) Nodes() []int {
	return p.nodes
}

// Source returns the first vertex of the path.
func (p *Path) Source() int {
	return p.nodes[0]
}

// Target returns the last vertex of the path.
func (p *Path) Target() int {
	return p.nodes[len(p.nodes)-1]
}

// String returns a string representation of the path as a sequence of
// vertices separated by " -> ". For example: "0 -> 4 -> 3 -> 1".
func (p *Path) String() string {
	sb := strings.Builder{}
	for i := 0; i < len(p.nodes)-1; i++ {
		sb.WriteString(fmt.Sprintf("%d -> ", p.nodes[i]))
	}
	sb.WriteString(fmt.Sprintf("%d", p.nodes[len(p.nodes)-1]))
	return sb.String()
}
