// Command gencase writes a random shortest path instance on standard output in
// the format read by the dijkstra and dijkstranlogn commands.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/rhartert/sssp/parser"
	"github.com/rhartert/sssp/testcase"
)

var flagNodes = flag.Int(
	"nodes",
	20,
	"Number of vertices",
)

var flagEdges = flag.Int(
	"edges",
	36,
	"Number of edges",
)

var flagMinWeight = flag.Int(
	"min_weight",
	1,
	"Minimum edge weight",
)

var flagMaxWeight = flag.Int(
	"max_weight",
	20,
	"Maximum edge weight",
)

var flagSource = flag.Int(
	"source",
	0,
	"Source vertex",
)

var flagAttach = flag.Bool(
	"attach",
	false,
	"Select edge endpoints with preferential attachment instead of uniformly",
)

var flagUndirected = flag.Bool(
	"undirected",
	false,
	"Write each edge in both directions",
)

var flagSeed = flag.Int64(
	"seed",
	42,
	"Seed value for the random number generator",
)

func validateFlags() error {
	if n := *flagNodes; n <= 0 {
		return fmt.Errorf("number of nodes must be positive, got %d", n)
	}
	if n := *flagEdges; n < 0 {
		return fmt.Errorf("number of edges must be non-negative, got %d", n)
	}
	if w := *flagMinWeight; w < 0 {
		return fmt.Errorf("minimum weight must be non-negative, got %d", w)
	}
	if *flagMaxWeight < *flagMinWeight {
		return fmt.Errorf("maximum weight %d is lower than minimum weight %d", *flagMaxWeight, *flagMinWeight)
	}
	return nil
}

func main() {
	flag.Parse()
	if err := validateFlags(); err != nil {
		log.Fatalf("Error validating flags: %s", err)
	}

	rng := rand.New(rand.NewSource(*flagSeed))
	inst, err := testcase.Random(rng, testcase.Config{
		Nodes:      *flagNodes,
		Edges:      *flagEdges,
		MinWeight:  *flagMinWeight,
		MaxWeight:  *flagMaxWeight,
		Source:     *flagSource,
		Attach:     *flagAttach,
		Undirected: *flagUndirected,
	})
	if err != nil {
		log.Fatalf("Error generating test case: %s", err)
	}

	if err := parser.Write(os.Stdout, inst); err != nil {
		log.Fatalf("Error writing test case: %s", err)
	}
}
