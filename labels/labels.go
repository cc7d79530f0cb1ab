// SPDX-License-Identifier: MIT
// Package labels holds categorical label assignments over vertices 1..N and
// the permutation primitive used by the null model.
//
// An Assignment stores one category code per vertex; codes are drawn from 1..K.
// Index 0 of the backing slice belongs to vertex 1.
//
// Ownership:
//   - The caller owns the original Assignment and must not mutate it while an
//     analysis is running.
//   - Clone/Shuffle produce working copies that belong to a single trial.
package labels

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for label validation.
var (
	// ErrLengthMismatch indicates len(Assignment) != vertex count.
	ErrLengthMismatch = errors.New("labels: assignment length mismatch")

	// ErrCodeOutOfRange indicates a category code outside 1..K.
	ErrCodeOutOfRange = errors.New("labels: category code out of range")
)

// Assignment maps vertex v (1-based) to Assignment[v-1].
type Assignment []int

// Label returns the category of vertex v (1-based).
func (a Assignment) Label(v int) int { return a[v-1] }

// Len returns the number of labeled vertices.
func (a Assignment) Len() int { return len(a) }

// Validate checks that a has exactly n entries and every code lies in 1..k.
// k <= 0 means "infer K from the maximum code", so only codes < 1 fail.
func (a Assignment) Validate(n, k int) error {
	if len(a) != n {
		return fmt.Errorf("Validate: len=%d, vertices=%d: %w", len(a), n, ErrLengthMismatch)
	}
	for i, c := range a {
		if c < 1 || (k > 0 && c > k) {
			return fmt.Errorf("Validate: vertex %d code %d (K=%d): %w", i+1, c, k, ErrCodeOutOfRange)
		}
	}
	return nil
}

// Categories returns the largest code present (K for a dense code space).
func (a Assignment) Categories() int {
	k := 0
	for _, c := range a {
		if c > k {
			k = c
		}
	}
	return k
}

// Counts returns per-category frequencies indexed by code (index 0 unused).
func (a Assignment) Counts() []int {
	counts := make([]int, a.Categories()+1)
	for _, c := range a {
		if c > 0 {
			counts[c]++
		}
	}
	return counts
}

// Clone returns an independent copy of a.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	copy(out, a)
	return out
}

// Shuffle performs an in-place Fisher–Yates shuffle of a using rng.
// It permutes the existing codes, so per-category counts are preserved exactly.
//
// Complexity: O(n) time, O(1) extra space.
func (a Assignment) Shuffle(rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Permuted returns a shuffled copy of a, leaving a untouched.
func (a Assignment) Permuted(rng *rand.Rand) Assignment {
	out := a.Clone()
	out.Shuffle(rng)
	return out
}
