// Package testcase generates random shortest path instances.
package testcase

import (
	"fmt"
	"math/rand"

	"github.com/rhartert/sssp/parser"
	"github.com/rhartert/sssp/sssp"
)

// Sizes of the reference test cases as (nodes, edges) pairs.
var Sizes = [][2]int{
	{4, 4},
	{20, 36},
	{30, 33},
	{40, 38},
}

type Config struct {
	Nodes int
	Edges int

	// Edge weights are integers drawn uniformly in [MinWeight, MaxWeight].
	MinWeight int
	MaxWeight int

	Source int

	// Attach selects edge endpoints with preferential attachment: the
	// probability of picking a vertex is proportional to its degree plus one.
	// Otherwise, endpoints are selected uniformly.
	Attach bool

	// Undirected adds each edge in both directions. Edges counts the number
	// of undirected edges in that case.
	Undirected bool
}

func (cfg Config) validate() error {
	if cfg.Nodes <= 0 {
		return fmt.Errorf("number of nodes must be positive, got %d", cfg.Nodes)
	}
	if cfg.Edges < 0 {
		return fmt.Errorf("number of edges must be non-negative, got %d", cfg.Edges)
	}
	if cfg.MinWeight < 0 || cfg.MaxWeight < cfg.MinWeight {
		return fmt.Errorf("invalid weight range [%d, %d]", cfg.MinWeight, cfg.MaxWeight)
	}
	if cfg.Source < 0 || cfg.Nodes <= cfg.Source {
		return fmt.Errorf("source %d not in [0, %d)", cfg.Source, cfg.Nodes)
	}
	return nil
}

// Random returns a random instance generated with rng.
func Random(rng *rand.Rand, cfg Config) (*parser.Instance, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	g := sssp.NewGraph(cfg.Nodes)

	var degrees *wheel
	if cfg.Attach {
		degrees = newWheel(cfg.Nodes)
		for v := 0; v < cfg.Nodes; v++ {
			degrees.setWeight(v, 1)
		}
	}
	pick := func() int {
		if degrees == nil {
			return rng.Intn(cfg.Nodes)
		}
		return degrees.roll(rng.Float64())
	}

	for i := 0; i < cfg.Edges; i++ {
		from := pick()
		to := pick()
		w := float64(cfg.MinWeight + rng.Intn(cfg.MaxWeight-cfg.MinWeight+1))

		var err error
		if cfg.Undirected {
			err = g.AddUndirectedEdge(from, to, w)
		} else {
			err = g.AddEdge(from, to, w)
		}
		if err != nil {
			return nil, err
		}

		if degrees != nil {
			degrees.setWeight(from, degrees.weight(from)+1)
			degrees.setWeight(to, degrees.weight(to)+1)
		}
	}

	return &parser.Instance{Graph: g, Source: cfg.Source}, nil
}
