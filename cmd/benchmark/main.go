// Command benchmark measures the wall-clock time taken by the dijkstra and
// dijkstranlogn executables on a set of test case files and checks that both
// print the same distances.
//
// Usage:
//
//	benchmark [flags] [test case files...]
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rhartert/sssp/parser"
)

var flagDijkstra = flag.String(
	"dijkstra",
	"./dijkstra",
	"Path to the O(V²) executable",
)

var flagNLogN = flag.String(
	"nlogn",
	"./dijkstranlogn",
	"Path to the O((V+E) log V) executable",
)

var flagRuns = flag.Int(
	"runs",
	1,
	"Number of runs per test case and executable (the mean time is reported)",
)

var flagTimeout = flag.Duration(
	"timeout",
	time.Minute,
	"Maximum duration of a single run",
)

var defaultCases = []string{
	"testdata/test_case1.txt",
	"testdata/test_case2.txt",
	"testdata/test_case3.txt",
	"testdata/test_case4.txt",
}

func validateFlags() error {
	if *flagDijkstra == "" {
		return fmt.Errorf("missing dijkstra executable")
	}
	if *flagNLogN == "" {
		return fmt.Errorf("missing dijkstranlogn executable")
	}
	if n := *flagRuns; n <= 0 {
		return fmt.Errorf("number of runs must be positive, got %d", n)
	}
	if d := *flagTimeout; d <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", d)
	}
	return nil
}

// executable is a program under benchmark.
type executable struct {
	Title string // report section title
	Label string // time column label
	Path  string
	Args  []string
	Env   []string // added to the benchmark's environment
}

type benchmark struct {
	executables []executable
	runs        int
	timeout     time.Duration
	logger      *slog.Logger
}

// caseResult holds the measurements of all executables on one test case.
type caseResult struct {
	File  string
	Nodes int // -1 if the test case could not be parsed
	Edges int

	// Times[i] is the mean wall-clock time of executables[i].
	Times []time.Duration

	// Mismatch is true if the executables did not all print the same output.
	Mismatch bool
}

func (b *benchmark) runCase(ctx context.Context, file string) (caseResult, error) {
	res := caseResult{
		File:  file,
		Nodes: -1,
		Edges: -1,
		Times: make([]time.Duration, len(b.executables)),
	}

	input, err := os.ReadFile(file)
	if err != nil {
		return res, err
	}
	if inst, err := parser.Parse(bytes.NewReader(input), parser.Options{}); err == nil {
		res.Nodes = inst.Graph.NumNodes()
		res.Edges = inst.Graph.NumEdges()
	} else {
		b.logger.Warn("cannot read test case size", "case", file, "err", err)
	}

	outputs := make([][]byte, len(b.executables))
	for i, exe := range b.executables {
		total := time.Duration(0)
		for r := 0; r < b.runs; r++ {
			elapsed, out, err := b.timeRun(ctx, exe, input)
			if err != nil {
				return res, fmt.Errorf("%s on %s: %w", exe.Path, file, err)
			}
			total += elapsed
			outputs[i] = out
		}
		res.Times[i] = total / time.Duration(b.runs)
		b.logger.Info("test case measured", "case", file, "executable", exe.Path, "mean", res.Times[i])
	}

	for i := 1; i < len(outputs); i++ {
		if !bytes.Equal(outputs[0], outputs[i]) {
			res.Mismatch = true
			b.logger.Warn("outputs differ", "case", file, "a", b.executables[0].Path, "b", b.executables[i].Path)
		}
	}
	return res, nil
}

// timeRun runs the executable with input on its standard input and returns
// the elapsed wall-clock time and the executable's standard output.
func (b *benchmark) timeRun(ctx context.Context, exe executable, input []byte) (time.Duration, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	stdout := bytes.Buffer{}
	stderr := bytes.Buffer{}
	cmd := exec.CommandContext(ctx, exe.Path, exe.Args...)
	if len(exe.Env) > 0 {
		cmd.Env = append(os.Environ(), exe.Env...)
	}
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return elapsed, nil, fmt.Errorf("%w: %s", err, msg)
		}
		return elapsed, nil, err
	}
	return elapsed, stdout.Bytes(), nil
}

func main() {
	flag.Parse()
	if err := validateFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error validating flags: %s\n", err)
		os.Exit(2)
	}

	files := flag.Args()
	if len(files) == 0 {
		files = defaultCases
	}

	runID := uuid.New()
	b := &benchmark{
		executables: []executable{
			{Title: "Dijkstra with N * N complexity", Label: "N*N", Path: *flagDijkstra},
			{Title: "Dijkstra with N log N complexity", Label: "N log N", Path: *flagNLogN},
		},
		runs:    *flagRuns,
		timeout: *flagTimeout,
		logger:  slog.New(slog.NewTextHandler(os.Stderr, nil)).With("run", runID.String()),
	}

	ctx := context.Background()
	results := make([]caseResult, 0, len(files))
	for _, file := range files {
		res, err := b.runCase(ctx, file)
		if err != nil {
			b.logger.Error("benchmark failed", "err", err)
			os.Exit(1)
		}
		results = append(results, res)
	}

	writeReport(os.Stdout, runID.String(), b.executables, results)

	for _, res := range results {
		if res.Mismatch {
			os.Exit(1)
		}
	}
}
