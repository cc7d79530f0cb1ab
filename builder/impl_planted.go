// SPDX-License-Identifier: MIT
// Package: triadic/builder
//
// impl_planted.go - PlantedPartition(sizes, pIn, pOut) constructor.
//
// Canonical model (stochastic block model):
//   - Block b has sizes[b] vertices, all labeled b+1 (Labeled is ignored).
//   - A pair inside one block is linked with prob pIn, across blocks with pOut.
//   - pIn > pOut yields homophily: same-label wedges close far more often than
//     under a label permutation.
//
// Contract:
//   - len(sizes) ≥ 1 and every size ≥ 1 (else ErrTooFewVertices).
//   - pIn, pOut ∈ [0,1] (else ErrInvalidProbability).
//   - cfg.rng required unless both probabilities are 0 or 1.
//
// Complexity: O(n²) Bernoulli trials, n = Σ sizes.

package builder

import "fmt"

const (
	methodPlantedPartition = "PlantedPartition"
	minBlocks              = 1
	minBlockSize           = 1
)

// PlantedPartition returns a Constructor for a labeled stochastic block model.
func PlantedPartition(sizes []int, pIn, pOut float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if len(sizes) < minBlocks {
			return fmt.Errorf("%s: blocks=%d < min=%d: %w", methodPlantedPartition, len(sizes), minBlocks, ErrTooFewVertices)
		}
		for b, s := range sizes {
			if s < minBlockSize {
				return fmt.Errorf("%s: block %d size=%d < min=%d: %w",
					methodPlantedPartition, b, s, minBlockSize, ErrTooFewVertices)
			}
		}
		if err := validateProbability(methodPlantedPartition, pIn); err != nil {
			return err
		}
		if err := validateProbability(methodPlantedPartition, pOut); err != nil {
			return err
		}
		stochastic := func(p float64) bool { return p > probMin && p < probMax }
		if cfg.rng == nil && (stochastic(pIn) || stochastic(pOut)) {
			return fmt.Errorf("%s: rng is required: %w", methodPlantedPartition, ErrNeedRandSource)
		}

		// block[i] is the block index of the i-th vertex added here.
		var block []int
		first := d.VertexCount() + 1
		for b, s := range sizes {
			d.AddVertices(s, b+1)
			for i := 0; i < s; i++ {
				block = append(block, b)
			}
		}

		n := len(block)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				p := pOut
				if block[i] == block[j] {
					p = pIn
				}
				if bernoulli(cfg, p) {
					d.AddEdge(first+i, first+j)
				}
			}
		}
		return nil
	}
}
