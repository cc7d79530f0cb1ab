// SPDX-License-Identifier: MIT
// Package: triadic/community
//
// source.go - deterministic 64-bit random source for gonum.

package community

// source is a SplitMix64 generator. It exposes Uint64 and Seed(uint64), which
// is the method set gonum's modularisation expects from its random source.
type source struct {
	state uint64
}

// newSource seeds a source; seed 0 maps to 1 like the sampler's policy.
func newSource(seed int64) *source {
	if seed == 0 {
		seed = 1
	}
	return &source{state: uint64(seed)}
}

// Uint64 returns the next value of the stream.
func (s *source) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Seed resets the stream.
func (s *source) Seed(seed uint64) { s.state = seed }
