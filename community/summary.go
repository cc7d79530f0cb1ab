// SPDX-License-Identifier: MIT
// Package: triadic/community
//
// summary.go - partition statistics and betweenness ranking.

package community

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/network"

	"github.com/katalvlaran/triadic/adjacency"
	"github.com/katalvlaran/triadic/labels"
	"github.com/katalvlaran/triadic/measure"
)

// Summary describes one detected partition.
type Summary struct {
	Strategy   string        `json:"strategy" yaml:"strategy"`
	Count      int           `json:"count" yaml:"count"`
	Sizes      []int         `json:"sizes" yaml:"sizes"`
	Modularity measure.Value `json:"modularity" yaml:"modularity"`

	// LabelPurity is the fraction of vertices carrying their community's
	// majority label.
	LabelPurity measure.Value `json:"label_purity" yaml:"label_purity"`
}

// Ranked is a vertex with a centrality score.
type Ranked struct {
	Vertex int     `json:"vertex" yaml:"vertex"`
	Score  float64 `json:"score" yaml:"score"`
}

// Summarize runs s on g and scores the partition against lab.
// Modularity is undefined for an edgeless graph.
func Summarize(s Strategy, g adjacency.Graph, lab labels.Assignment) (*Summary, error) {
	groups, err := s.Detect(g)
	if err != nil {
		return nil, fmt.Errorf("Summarize: %s: %w", s.Name(), err)
	}
	out := &Summary{Strategy: s.Name(), Count: len(groups)}
	for _, grp := range groups {
		out.Sizes = append(out.Sizes, len(grp))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out.Sizes)))

	if adjacency.EdgeCount(g) > 0 {
		out.Modularity = measure.Of(community.Q(ToGonum(g), toNodes(groups), 1))
	}

	majority, total := 0, 0
	for _, grp := range groups {
		freq := make(map[int]int)
		best := 0
		for _, v := range grp {
			freq[lab.Label(v)]++
			if freq[lab.Label(v)] > best {
				best = freq[lab.Label(v)]
			}
		}
		majority += best
		total += len(grp)
	}
	out.LabelPurity = measure.Ratio(majority, total)
	return out, nil
}

// Betweenness returns the top vertices by betweenness centrality, highest
// first; ties break on the smaller vertex id. top <= 0 returns all vertices
// with a non-zero score.
func Betweenness(g adjacency.Graph, top int) []Ranked {
	scores := network.Betweenness(ToGonum(g))
	out := make([]Ranked, 0, len(scores))
	for id, sc := range scores {
		if sc == 0 {
			continue
		}
		out = append(out, Ranked{Vertex: int(id), Score: sc})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Vertex < out[j].Vertex
	})
	if top > 0 && len(out) > top {
		out = out[:top]
	}
	return out
}
