// Command dijkstranlogn reads a graph on standard input and prints the
// shortest distance from the source to every vertex. Vertices are selected
// with a priority queue, which takes O((V+E) log V).
//
// The input and output formats are the same as the dijkstra command's.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rhartert/sssp/cli"
	"github.com/rhartert/sssp/parser"
	"github.com/rhartert/sssp/sssp"
)

var flagUndirected = flag.Bool(
	"undirected",
	false,
	"Treat each input edge as two arcs, one in each direction",
)

var flagPaths = flag.Bool(
	"paths",
	false,
	"Print the shortest path to each vertex along with its distance",
)

var flagQueue = flag.String(
	"queue",
	sssp.LazyQueue.String(),
	"Priority queue implementation: lazy (duplicates, lazy deletion) or indexed (decrease-key)",
)

func main() {
	flag.Parse()

	kind, err := sssp.ParseQueueKind(*flagQueue)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dijkstranlogn: error validating flags: %s\n", err)
		os.Exit(cli.ExitUsage)
	}

	os.Exit(cli.Run(cli.Config{
		Name: "dijkstranlogn",
		Engine: func(g *sssp.Graph, src int) (*sssp.Result, error) {
			return sssp.PriorityQueueWith(g, src, kind)
		},
		Parse: parser.Options{Undirected: *flagUndirected},
		Paths: *flagPaths,
	}, os.Stdin, os.Stdout, os.Stderr))
}
