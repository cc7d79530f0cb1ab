// SPDX-License-Identifier: MIT
// Package: triadic/community
//
// strategy.go - community detection strategies and their one-time selection.

package community

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/triadic/adjacency"
)

// Strategy names accepted by Select.
const (
	StrategyLouvain    = "louvain"
	StrategyComponents = "components"
	StrategyNone       = "none"
)

// ErrUnknownStrategy is returned by Select for an unrecognised name.
var ErrUnknownStrategy = errors.New("community: unknown strategy")

// Strategy partitions the vertices of a graph into communities.
// Detect returns groups of vertex ids, each ascending, ordered by first id.
type Strategy interface {
	Name() string
	Detect(g adjacency.Graph) ([][]int, error)
}

// Select resolves a strategy by name. "none" (or "") yields a nil Strategy.
func Select(name string, resolution float64, seed int64) (Strategy, error) {
	switch name {
	case StrategyLouvain:
		if resolution <= 0 {
			resolution = 1
		}
		return Louvain{Resolution: resolution, Seed: seed}, nil
	case StrategyComponents:
		return Components{}, nil
	case StrategyNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("Select: %q: %w", name, ErrUnknownStrategy)
	}
}

// Louvain maximises modularity with gonum's community.Modularize.
type Louvain struct {
	Resolution float64
	Seed       int64
}

// Name returns StrategyLouvain.
func (Louvain) Name() string { return StrategyLouvain }

// Detect runs Modularize with a deterministic source derived from Seed.
func (l Louvain) Detect(g adjacency.Graph) ([][]int, error) {
	reduced := community.Modularize(ToGonum(g), l.Resolution, newSource(l.Seed))
	return toIDs(reduced.Communities()), nil
}

// Components treats each connected component as a community.
type Components struct{}

// Name returns StrategyComponents.
func (Components) Name() string { return StrategyComponents }

// Detect returns the connected components of g.
func (Components) Detect(g adjacency.Graph) ([][]int, error) {
	return toIDs(topo.ConnectedComponents(ToGonum(g))), nil
}

// sortGroups orders groups by their first (smallest) member; empty groups last.
func sortGroups(groups [][]int) {
	sort.Slice(groups, func(i, j int) bool {
		gi, gj := groups[i], groups[j]
		if len(gi) == 0 || len(gj) == 0 {
			return len(gi) > len(gj)
		}
		return gi[0] < gj[0]
	})
}
