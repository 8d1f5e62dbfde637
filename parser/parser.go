// Package parser reads shortest path instances from their text format and
// writes query results back as text.
//
// An instance is made of a header line followed by one line per edge:
//
//	V E source
//	from to weight
//	...
//
// V is the number of vertices, E the number of edge lines that follow, and
// source the id of the vertex to compute shortest paths from. Fields are
// separated by spaces or tabs. Blank lines and lines starting with '#' are
// ignored.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rhartert/sssp/sssp"
)

// MaxNodes is the largest number of vertices accepted in an instance header.
// The graph and the results are allocated for all vertices before any edge is
// read.
const MaxNodes = 1 << 22

// maxLineLen is the largest accepted line, in bytes.
const maxLineLen = 1 << 20

var (
	ErrSyntax    = errors.New("syntax error")
	ErrRange     = errors.New("value out of range")
	ErrTruncated = errors.New("unexpected end of input")
	ErrTrailing  = errors.New("unexpected data after the last edge")
)

// ParseError reports malformed or truncated input. Line is 1-based; Field and
// Value are empty when the error concerns a whole line.
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("parse error: line %d", e.Line))
	if e.Field != "" {
		sb.WriteString(fmt.Sprintf(": field %s", e.Field))
	}
	if e.Value != "" {
		sb.WriteString(fmt.Sprintf(" (%q)", e.Value))
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Instance is a graph and the vertex to compute shortest paths from.
type Instance struct {
	Graph  *sssp.Graph
	Source int
}

type Options struct {
	// Undirected adds each edge line as two symmetric arcs.
	Undirected bool
}

// lineReader returns the fields of the significant lines of its input and
// keeps track of line numbers.
type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func (lr *lineReader) next() ([]string, bool) {
	for lr.scanner.Scan() {
		lr.line++
		fields := strings.Fields(lr.scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		return fields, true
	}
	return nil, false
}

// err returns the error that stopped the scan, if any. A line that does not
// fit in the buffer is reported as a *ParseError.
func (lr *lineReader) err() error {
	err := lr.scanner.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		return &ParseError{
			Line: lr.line + 1,
			Err:  fmt.Errorf("%w: line longer than %d bytes", ErrSyntax, maxLineLen),
		}
	}
	return err
}

// Parse reads an instance from r. Syntax problems are reported as a
// *ParseError. Edges that reference unknown vertices or have a negative weight
// are reported with an error that wraps sssp.ErrInvalidEdge.
func Parse(r io.Reader, opts Options) (*Instance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	lr := &lineReader{scanner: scanner}

	fields, ok := lr.next()
	if !ok {
		if err := lr.err(); err != nil {
			return nil, err
		}
		return nil, &ParseError{Line: lr.line + 1, Err: fmt.Errorf("%w: missing header", ErrTruncated)}
	}
	if len(fields) != 3 {
		return nil, &ParseError{Line: lr.line, Err: fmt.Errorf("%w: header must have 3 fields, got %d", ErrSyntax, len(fields))}
	}

	nNodes, err := parseCount(lr.line, "nodes", fields[0], MaxNodes)
	if err != nil {
		return nil, err
	}
	nEdges, err := parseCount(lr.line, "edges", fields[1], math.MaxInt)
	if err != nil {
		return nil, err
	}
	// The source must be a vertex of the graph.
	src, err := parseCount(lr.line, "source", fields[2], nNodes-1)
	if err != nil {
		return nil, err
	}

	g := sssp.NewGraph(nNodes)
	for i := 0; i < nEdges; i++ {
		fields, ok := lr.next()
		if !ok {
			if err := lr.err(); err != nil {
				return nil, err
			}
			return nil, &ParseError{
				Line: lr.line + 1,
				Err:  fmt.Errorf("%w: got %d of %d edges", ErrTruncated, i, nEdges),
			}
		}
		if len(fields) != 3 {
			return nil, &ParseError{Line: lr.line, Err: fmt.Errorf("%w: edge must have 3 fields, got %d", ErrSyntax, len(fields))}
		}

		from, err := parseInt(lr.line, "from", fields[0])
		if err != nil {
			return nil, err
		}
		to, err := parseInt(lr.line, "to", fields[1])
		if err != nil {
			return nil, err
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, &ParseError{Line: lr.line, Field: "weight", Value: fields[2], Err: ErrSyntax}
		}

		if opts.Undirected {
			err = g.AddUndirectedEdge(from, to, w)
		} else {
			err = g.AddEdge(from, to, w)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lr.line, err)
		}
	}

	if _, ok := lr.next(); ok {
		return nil, &ParseError{Line: lr.line, Err: ErrTrailing}
	}
	if err := lr.err(); err != nil {
		return nil, err
	}

	return &Instance{Graph: g, Source: src}, nil
}

func parseInt(line int, field string, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Line: line, Field: field, Value: s, Err: ErrSyntax}
	}
	return n, nil
}

// parseCount parses an integer in [0, limit].
func parseCount(line int, field string, s string, limit int) (int, error) {
	n, err := parseInt(line, field, s)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > limit {
		return 0, &ParseError{Line: line, Field: field, Value: s, Err: ErrRange}
	}
	return n, nil
}
