// Package cli contains the logic shared by the shortest path executables: read
// an instance on standard input, run an engine, and print the distances.
package cli

import (
	"bytes"
	"io"
	"log"

	"github.com/rhartert/sssp/parser"
	"github.com/rhartert/sssp/sssp"
)

// Exit statuses returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Config struct {
	// Name prefixes the diagnostic messages.
	Name string

	// Engine computes the shortest paths.
	Engine sssp.Engine

	// Parse configures how the input is read.
	Parse parser.Options

	// Paths prints the shortest path to each vertex along with its distance.
	Paths bool
}

// Run reads an instance from stdin, computes the shortest paths from its
// source with cfg.Engine, and writes the result to stdout. Errors are reported
// on stderr and nothing is written to stdout in that case. Run returns the
// process exit status.
func Run(cfg Config, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	logger := log.New(stderr, cfg.Name+": ", 0)

	inst, err := parser.Parse(stdin, cfg.Parse)
	if err != nil {
		logger.Print(err)
		return ExitError
	}

	res, err := cfg.Engine(inst.Graph, inst.Source)
	if err != nil {
		logger.Print(err)
		return ExitError
	}

	// Buffer the whole output so that nothing is written if formatting fails.
	buf := bytes.Buffer{}
	if cfg.Paths {
		err = parser.FormatPaths(&buf, res)
	} else {
		err = parser.Format(&buf, res)
	}
	if err != nil {
		logger.Print(err)
		return ExitError
	}
	if _, err := buf.WriteTo(stdout); err != nil {
		logger.Printf("error writing output: %s", err)
		return ExitError
	}
	return ExitOK
}
