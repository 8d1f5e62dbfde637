// Command dijkstra reads a graph on standard input and prints the shortest
// distance from the source to every vertex. Vertices are selected by scanning
// all unsettled vertices, which takes O(V²).
package main

import (
	"flag"
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

func main() {
	flag.Parse()

	os.Exit(cli.Run(cli.Config{
		Name:   "dijkstra",
		Engine: sssp.ArrayScan,
		Parse:  parser.Options{Undirected: *flagUndirected},
		Paths:  *flagPaths,
	}, os.Stdin, os.Stdout, os.Stderr))
}
