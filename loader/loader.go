// SPDX-License-Identifier: MIT
// Package loader turns delimited text tables into the inputs of the balance
// engine: an *adjacency.Sorted graph and a labels.Assignment.
//
// Inputs:
//
//	edges:  two columns (source, target), string vertex names
//	labels: two columns (vertex, label)
//
// Policy:
//   - Vertices are the union of names in both tables, numbered 1..N in
//     lexicographic name order.
//   - Self-loops are dropped and counted; repeated or reversed edges collapse.
//   - Every vertex needs exactly one label (ErrMissingLabel, ErrConflictingLabel).
//   - Extra columns are ignored; rows with fewer than two fields are an error.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/katalvlaran/triadic/adjacency"
	"github.com/katalvlaran/triadic/labels"
)

// Sentinel errors for table loading.
var (
	// ErrShortRow indicates a row with fewer than two fields.
	ErrShortRow = errors.New("loader: row needs at least two fields")

	// ErrMissingLabel indicates a vertex that appears in the edge table without a label.
	ErrMissingLabel = errors.New("loader: vertex has no label")

	// ErrConflictingLabel indicates a vertex labeled twice with different values.
	ErrConflictingLabel = errors.New("loader: vertex labeled twice")
)

// Options controls table parsing.
type Options struct {
	Delimiter rune // field separator, default ','
	Header    bool // skip the first row of each table
}

// DefaultOptions returns comma-separated tables with a header row.
func DefaultOptions() Options {
	return Options{Delimiter: ',', Header: true}
}

// Dataset is a loaded graph with its labels and name mappings.
type Dataset struct {
	Graph   *adjacency.Sorted
	Labels  labels.Assignment
	Encoder *labels.Encoder

	// Names[v-1] is the original name of vertex v.
	Names []string

	SelfLoops int // dropped self-loop rows
	Repeated  int // collapsed duplicate or reversed edge rows
}

// LoadFiles opens both paths and calls Load.
func LoadFiles(edgesPath, labelsPath string, opts Options) (*Dataset, error) {
	ef, err := os.Open(edgesPath)
	if err != nil {
		return nil, fmt.Errorf("LoadFiles: %w", err)
	}
	defer ef.Close()

	lf, err := os.Open(labelsPath)
	if err != nil {
		return nil, fmt.Errorf("LoadFiles: %w", err)
	}
	defer lf.Close()

	return Load(ef, lf, opts)
}

// Load parses the edge and label tables.
//
// Complexity: O(R·log R) for R rows (name sort + edge sort).
func Load(edgesR, labelsR io.Reader, opts Options) (*Dataset, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	edgeRows, err := readPairs(edgesR, opts, "edges")
	if err != nil {
		return nil, err
	}
	labelRows, err := readPairs(labelsR, opts, "labels")
	if err != nil {
		return nil, err
	}

	raw := make(map[string]string, len(labelRows))
	for _, r := range labelRows {
		if prev, ok := raw[r[0]]; ok && prev != r[1] {
			return nil, fmt.Errorf("Load: vertex %q: %q vs %q: %w", r[0], prev, r[1], ErrConflictingLabel)
		}
		raw[r[0]] = r[1]
	}

	names := make(map[string]struct{}, len(raw))
	for name := range raw {
		names[name] = struct{}{}
	}
	ds := &Dataset{}
	kept := edgeRows[:0]
	for _, r := range edgeRows {
		if r[0] == r[1] {
			ds.SelfLoops++
			continue
		}
		names[r[0]] = struct{}{}
		names[r[1]] = struct{}{}
		kept = append(kept, r)
	}

	ds.Names = make([]string, 0, len(names))
	for name := range names {
		ds.Names = append(ds.Names, name)
	}
	sort.Strings(ds.Names)
	id := make(map[string]int, len(ds.Names))
	rawLabels := make([]string, len(ds.Names))
	for i, name := range ds.Names {
		id[name] = i + 1
		l, ok := raw[name]
		if !ok {
			return nil, fmt.Errorf("Load: vertex %q: %w", name, ErrMissingLabel)
		}
		rawLabels[i] = l
	}

	ds.Encoder = labels.NewEncoder(rawLabels)
	if ds.Labels, err = ds.Encoder.Encode(rawLabels); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	edges := make([]adjacency.Edge, len(kept))
	for i, r := range kept {
		edges[i] = adjacency.Edge{X: id[r[0]], Y: id[r[1]]}
	}
	if ds.Graph, err = adjacency.New(len(ds.Names), edges, adjacency.WithDedup()); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	ds.Repeated = len(kept) - ds.Graph.EdgeCount()

	return ds, nil
}

// readPairs reads the first two trimmed fields of every data row.
func readPairs(r io.Reader, opts Options, table string) ([][2]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.Delimiter
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var out [][2]string
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Load: %s: %w", table, err)
		}
		line++
		if line == 1 && opts.Header {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("Load: %s row %d: %w", table, line, ErrShortRow)
		}
		out = append(out, [2]string{strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])})
	}
	return out, nil
}

// Name returns the original name of vertex v.
func (ds *Dataset) Name(v int) string {
	if v < 1 || v > len(ds.Names) {
		return ""
	}
	return ds.Names[v-1]
}
