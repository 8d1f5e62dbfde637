package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rhartert/sssp/cli"
	"github.com/rhartert/sssp/sssp"
)

// TestHelperProcess is not a real test: it is the executable run by the other
// tests of this file. It behaves like the dijkstra command, or prints
// constant output if HELPER_OUTPUT is set.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	if out := os.Getenv("HELPER_OUTPUT"); out != "" {
		os.Stdout.WriteString(out)
		os.Exit(0)
	}
	os.Exit(cli.Run(cli.Config{Name: "helper", Engine: sssp.ArrayScan}, os.Stdin, os.Stdout, os.Stderr))
}

func helper(env ...string) executable {
	return executable{
		Title: "helper",
		Label: "helper",
		Path:  os.Args[0],
		Args:  []string{"-test.run=^TestHelperProcess$"},
		Env:   append([]string{"GO_WANT_HELPER_PROCESS=1"}, env...),
	}
}

func newTestBenchmark(exes ...executable) *benchmark {
	return &benchmark{
		executables: exes,
		runs:        2,
		timeout:     time.Minute,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func writeCase(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "case.txt")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func TestBenchmark_runCase(t *testing.T) {
	file := writeCase(t, "5 4 0\n0 1 1\n0 2 4\n1 2 2\n2 3 1\n")
	b := newTestBenchmark(helper(), helper())

	res, err := b.runCase(context.Background(), file)

	require.NoError(t, err)
	require.Equal(t, 5, res.Nodes)
	require.Equal(t, 4, res.Edges)
	require.False(t, res.Mismatch)
	require.Len(t, res.Times, 2)
	for _, d := range res.Times {
		require.Greater(t, d, time.Duration(0))
	}
}

func TestBenchmark_runCase_mismatch(t *testing.T) {
	file := writeCase(t, "2 1 0\n0 1 1\n")
	b := newTestBenchmark(helper(), helper("HELPER_OUTPUT=0\n2\n"))

	res, err := b.runCase(context.Background(), file)

	require.NoError(t, err)
	require.True(t, res.Mismatch)
}

func TestBenchmark_runCase_failure(t *testing.T) {
	file := writeCase(t, "2 1 0\n0 1 -1\n")
	b := newTestBenchmark(helper())

	_, err := b.runCase(context.Background(), file)

	require.ErrorContains(t, err, "invalid edge")
}

func TestWriteReport(t *testing.T) {
	exes := []executable{
		{Title: "Dijkstra with N * N complexity", Label: "N*N"},
		{Title: "Dijkstra with N log N complexity", Label: "N log N"},
	}
	results := []caseResult{
		{File: "a.txt", Nodes: 4, Edges: 4, Times: []time.Duration{1500 * time.Microsecond, time.Millisecond}},
		{File: "b.txt", Nodes: -1, Edges: -1, Times: []time.Duration{time.Second, 2 * time.Second}, Mismatch: true},
	}

	buf := bytes.Buffer{}
	writeReport(&buf, "1234", exes, results)
	got := buf.String()

	for _, want := range []string{
		"run 1234",
		"For Dijkstra with N * N complexity",
		"Execution Time (N log N)",
		row("4", "4", "0.001500"),
		row("?", "?", "2.000000"),
		"outputs differ on b.txt",
	} {
		require.True(t, strings.Contains(got, want), "report does not contain %q:\n%s", want, got)
	}
}
