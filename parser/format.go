package parser

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/rhartert/sssp/sssp"
)

// Infinity is the text written for vertices that are not reachable from the
// source.
const Infinity = "INF"

// FormatDistance returns the text representation of a distance: the shortest
// decimal representation of d (integral distances have no decimal part) or
// Infinity.
func FormatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return Infinity
	}
	return strconv.FormatFloat(d, 'f', -1, 64)
}

// Format writes the distance of each vertex from the source, one vertex per
// line in id order.
func Format(w io.Writer, res *sssp.Result) error {
	bw := bufio.NewWriter(w)
	for _, d := range res.Dist {
		bw.WriteString(FormatDistance(d))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// FormatPaths writes one line per vertex in id order with the vertex id, its
// distance, and its shortest path from the source ("-" if unreachable).
func FormatPaths(w io.Writer, res *sssp.Result) error {
	bw := bufio.NewWriter(w)
	for v, d := range res.Dist {
		path := "-"
		if p, ok := res.Path(v); ok {
			path = p.String()
		}
		fmt.Fprintf(bw, "%d %s %s\n", v, FormatDistance(d), path)
	}
	return bw.Flush()
}

// Write writes the instance in the format read by Parse. Each arc of the graph
// is written on its own line.
func Write(w io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(w)
	g := inst.Graph
	fmt.Fprintf(bw, "%d %d %d\n", g.NumNodes(), g.NumEdges(), inst.Source)
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d %s\n", e.From, e.To, strconv.FormatFloat(e.Weight, 'f', -1, 64))
	}
	return bw.Flush()
}
