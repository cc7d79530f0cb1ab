// SPDX-License-Identifier: MIT
// Package: triadic/labels
//
// encoder.go - string label ↔ dense category code mapping.

package labels

import (
	"fmt"
	"sort"
)

// Encoder maps raw string labels to codes 1..K in lexicographic order of the
// label text, so the same label set always yields the same codes.
type Encoder struct {
	codes map[string]int
	names []string // names[c-1] is the label of code c
}

// NewEncoder builds an Encoder over the distinct values in raw.
func NewEncoder(raw []string) *Encoder {
	seen := make(map[string]struct{}, len(raw))
	for _, s := range raw {
		seen[s] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for s := range seen {
		names = append(names, s)
	}
	sort.Strings(names)

	codes := make(map[string]int, len(names))
	for i, s := range names {
		codes[s] = i + 1
	}
	return &Encoder{codes: codes, names: names}
}

// K returns the number of categories.
func (e *Encoder) K() int { return len(e.names) }

// Code returns the code of label s.
func (e *Encoder) Code(s string) (int, bool) {
	c, ok := e.codes[s]
	return c, ok
}

// Decode returns the label text for code c.
func (e *Encoder) Decode(c int) (string, error) {
	if c < 1 || c > len(e.names) {
		return "", fmt.Errorf("Decode: code %d (K=%d): %w", c, len(e.names), ErrCodeOutOfRange)
	}
	return e.names[c-1], nil
}

// Names returns the label texts ordered by code.
func (e *Encoder) Names() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)
	return out
}

// Encode converts raw labels (raw[i] belongs to vertex i+1) into an Assignment.
func (e *Encoder) Encode(raw []string) (Assignment, error) {
	out := make(Assignment, len(raw))
	for i, s := range raw {
		c, ok := e.codes[s]
		if !ok {
			return nil, fmt.Errorf("Encode: vertex %d label %q: %w", i+1, s, ErrCodeOutOfRange)
		}
		out[i] = c
	}
	return out, nil
}
