// SPDX-License-Identifier: MIT
// Package: isingcut/graph
//
// load.go — strict parser and writer for the plain-text edge-list format.
//
// Format:
//
//	# optional comments start with '#' or '%' (also allowed after data)
//	n m        header: vertex count in [1, MaxVertices], edge count in [0, n(n-1)/2]
//	i j w      exactly m lines: 1-based endpoints, real weight
//
// Strictness: every mismatch is reported as ErrFormat with the line number.
// Fewer or more than m edge lines, indices outside [1,n], self-loops,
// duplicate edges, and non-finite weights are all rejected.

package graph

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// stripComment removes a trailing '#' or '%' comment and surrounding space.
func stripComment(ln string) string {
	if idx := strings.IndexAny(ln, "#%"); idx >= 0 {
		ln = ln[:idx]
	}

	return strings.TrimSpace(ln)
}

// Load parses an edge list from r.
// Errors: ErrFormat (wrapped with line context) or the reader's I/O error.
// Complexity: O(n² + m).
func Load(r io.Reader) (*WeightedGraph, error) {
	sc := bufio.NewScanner(r)

	var (
		lineNo  int
		n, m    int
		haveHdr bool
		edges   int
		g       *WeightedGraph
		seen    map[[2]int]struct{}
		fs      []string
		i, j    int
		w       float64
		err     error
	)
	for sc.Scan() {
		lineNo++
		ln := stripComment(sc.Text())
		if ln == "" {
			continue
		}
		fs = strings.Fields(ln)

		// Header.
		if !haveHdr {
			if len(fs) != 2 {
				return nil, formatErrorf(lineNo, "header must be \"n m\", got %q", ln)
			}
			if n, err = strconv.Atoi(fs[0]); err != nil || n < 1 {
				return nil, formatErrorf(lineNo, "bad vertex count %q", fs[0])
			}
			if n > MaxVertices {
				return nil, formatErrorf(lineNo, "vertex count %d exceeds %d", n, MaxVertices)
			}
			if m, err = strconv.Atoi(fs[1]); err != nil || m < 0 {
				return nil, formatErrorf(lineNo, "bad edge count %q", fs[1])
			}
			if m > n*(n-1)/2 {
				return nil, formatErrorf(lineNo, "%d edges cannot fit %d vertices", m, n)
			}
			if g, err = New(n); err != nil {
				return nil, err
			}
			seen = make(map[[2]int]struct{}, m)
			haveHdr = true
			continue
		}

		// Edge line.
		if edges == m {
			return nil, formatErrorf(lineNo, "more than the declared %d edge lines", m)
		}
		if len(fs) != 3 {
			return nil, formatErrorf(lineNo, "edge must be \"i j w\", got %q", ln)
		}
		if i, err = parseVertex(fs[0], n); err != nil {
			return nil, formatErrorf(lineNo, "%v", err)
		}
		if j, err = parseVertex(fs[1], n); err != nil {
			return nil, formatErrorf(lineNo, "%v", err)
		}
		if i == j {
			return nil, formatErrorf(lineNo, "self-loop on vertex %d", i+1)
		}
		if w, err = strconv.ParseFloat(fs[2], 64); err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, formatErrorf(lineNo, "bad weight %q", fs[2])
		}
		key := [2]int{min(i, j), max(i, j)}
		if _, dup := seen[key]; dup {
			return nil, formatErrorf(lineNo, "duplicate edge %d-%d", i+1, j+1)
		}
		seen[key] = struct{}{}
		if err = g.setEdge(i, j, w); err != nil {
			return nil, formatErrorf(lineNo, "%v", err)
		}
		edges++
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodLoad, err)
	}
	if !haveHdr {
		return nil, formatErrorf(0, "missing \"n m\" header")
	}
	if edges != m {
		return nil, formatErrorf(0, "declared %d edges, found %d", m, edges)
	}

	return g, nil
}

// parseVertex converts a 1-based token into a 0-based index within [0,n).
func parseVertex(tok string, n int) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("bad vertex index %q", tok)
	}
	if v < 1 || v > n {
		return 0, fmt.Errorf("vertex %d outside [1,%d]", v, n)
	}

	return v - 1, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*WeightedGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLoad, err)
	}
	defer f.Close()

	return Load(f)
}

// Write serializes g in the format accepted by Load: the header followed by
// every non-zero edge (i<j) with 1-based indices. Zero-weight edges are
// indistinguishable from absent ones and are not written.
func Write(w io.Writer, g *WeightedGraph) error {
	bw := bufio.NewWriter(w)
	edges := g.Edges()

	if _, err := fmt.Fprintf(bw, "%d %d\n", g.n, len(edges)); err != nil {
		return err
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d %d %s\n", e.U+1, e.V+1,
			strconv.FormatFloat(e.W, 'g', -1, 64)); err != nil {
			return err
		}
	}

	return bw.Flush()
}
