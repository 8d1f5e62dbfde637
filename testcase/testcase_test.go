package testcase

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/rhartert/sssp/parser"
	"github.com/rhartert/sssp/sssp"
)

func TestRandom(t *testing.T) {
	testCases := []struct {
		desc      string
		cfg       Config
		wantEdges int
	}{
		{
			desc:      "uniform",
			cfg:       Config{Nodes: 20, Edges: 36, MinWeight: 1, MaxWeight: 20},
			wantEdges: 36,
		},
		{
			desc:      "preferential attachment",
			cfg:       Config{Nodes: 40, Edges: 38, MaxWeight: 5, Attach: true, Source: 7},
			wantEdges: 38,
		},
		{
			desc:      "undirected",
			cfg:       Config{Nodes: 30, Edges: 33, MinWeight: 2, MaxWeight: 2, Undirected: true},
			wantEdges: 66,
		},
		{
			desc:      "single node",
			cfg:       Config{Nodes: 1, Edges: 3, MaxWeight: 1, Attach: true},
			wantEdges: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := Random(rand.New(rand.NewSource(1)), tc.cfg)
			require.NoError(t, err)

			require.Equal(t, tc.cfg.Nodes, got.Graph.NumNodes())
			require.Equal(t, tc.wantEdges, got.Graph.NumEdges())
			require.Equal(t, tc.cfg.Source, got.Source)
			for _, e := range got.Graph.Edges() {
				if e.Weight < float64(tc.cfg.MinWeight) || float64(tc.cfg.MaxWeight) < e.Weight {
					t.Errorf("edge %+v: weight not in [%d, %d]", e, tc.cfg.MinWeight, tc.cfg.MaxWeight)
				}
			}
		})
	}
}

func TestRandom_deterministic(t *testing.T) {
	cfg := Config{Nodes: 30, Edges: 60, MaxWeight: 9, Attach: true}

	a, err := Random(rand.New(rand.NewSource(42)), cfg)
	require.NoError(t, err)
	b, err := Random(rand.New(rand.NewSource(42)), cfg)
	require.NoError(t, err)

	if diff := cmp.Diff(a.Graph.Edges(), b.Graph.Edges()); diff != "" {
		t.Errorf("Random(): same seed, different edges (-a +b):\n%s", diff)
	}
}

func TestRandom_invalidConfig(t *testing.T) {
	testCases := []struct {
		desc string
		cfg  Config
	}{
		{"no nodes", Config{Nodes: 0}},
		{"negative edges", Config{Nodes: 2, Edges: -1}},
		{"negative weights", Config{Nodes: 2, MinWeight: -1, MaxWeight: 1}},
		{"empty weight range", Config{Nodes: 2, MinWeight: 3, MaxWeight: 2}},
		{"source out of range", Config{Nodes: 2, Source: 2}},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := Random(rand.New(rand.NewSource(1)), tc.cfg)
			require.Error(t, err)
		})
	}
}

func TestRandom_parsable(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for _, size := range Sizes {
		inst, err := Random(rng, Config{Nodes: size[0], Edges: size[1], MinWeight: 1, MaxWeight: 20})
		require.NoError(t, err)

		buf := bytes.Buffer{}
		require.NoError(t, parser.Write(&buf, inst))
		got, err := parser.Parse(&buf, parser.Options{})
		require.NoError(t, err)

		if diff := cmp.Diff(inst.Graph.Edges(), got.Graph.Edges()); diff != "" {
			t.Errorf("size %v: edges mismatch (-generated +parsed):\n%s", size, diff)
		}

		want, err := sssp.ArrayScan(inst.Graph, inst.Source)
		require.NoError(t, err)
		res, err := sssp.PriorityQueue(got.Graph, got.Source)
		require.NoError(t, err)
		if diff := cmp.Diff(want.Dist, res.Dist); diff != "" {
			t.Errorf("size %v: distances mismatch (-want +got):\n%s", size, diff)
		}
	}
}

func TestWheel_roll(t *testing.T) {
	w := newWheel(5)
	require.Equal(t, -1, w.roll(0.5))

	w.setWeight(1, 1)
	w.setWeight(3, 3)

	testCases := []struct {
		r    float64
		want int
	}{
		// Element 3 holds 3/4 of the total weight.
		{0, 3},
		{0.5, 3},
		{0.74, 3},
		{0.75, 1},
		{0.99, 1},
	}
	for _, tc := range testCases {
		if got := w.roll(tc.r); got != tc.want {
			t.Errorf("roll(%v): want %d, got %d", tc.r, tc.want, got)
		}
	}
}
