// SPDX-License-Identifier: MIT
// Package report renders the outcome of one triadic run as text, JSON or YAML.
//
// An Envelope bundles the balance.Report with its run identity, input
// provenance, and the optional homophily and community summaries. Undefined
// measures render as "undefined" in text and null in JSON/YAML.
package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/triadic/balance"
	"github.com/katalvlaran/triadic/community"
	"github.com/katalvlaran/triadic/homophily"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned by Render for an unsupported format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Input describes where the analysed graph came from.
type Input struct {
	Edges      string   `json:"edges,omitempty" yaml:"edges,omitempty"`
	Labels     string   `json:"labels,omitempty" yaml:"labels,omitempty"`
	SelfLoops  int      `json:"self_loops_dropped" yaml:"self_loops_dropped"`
	Repeated   int      `json:"repeated_edges_collapsed" yaml:"repeated_edges_collapsed"`
	Categories []string `json:"categories" yaml:"categories"`
}

// Central is a named vertex with its betweenness score.
type Central struct {
	Name  string  `json:"name" yaml:"name"`
	Score float64 `json:"score" yaml:"score"`
}

// Envelope is the complete, serialisable result of one run.
type Envelope struct {
	RunID     string             `json:"run_id" yaml:"run_id"`
	Generated time.Time          `json:"generated" yaml:"generated"`
	Input     Input              `json:"input" yaml:"input"`
	Report    *balance.Report    `json:"report" yaml:"report"`
	Homophily *homophily.Summary `json:"homophily,omitempty" yaml:"homophily,omitempty"`
	Community *community.Summary `json:"community,omitempty" yaml:"community,omitempty"`
	Central   []Central          `json:"central,omitempty" yaml:"central,omitempty"`
}

// NewEnvelope stamps rep with a fresh run id and the current UTC time.
func NewEnvelope(in Input, rep *balance.Report) *Envelope {
	return &Envelope{
		RunID:     uuid.NewString(),
		Generated: time.Now().UTC(),
		Input:     in,
		Report:    rep,
	}
}

// Render writes env to w in the named format.
func Render(w io.Writer, format string, env *Envelope) error {
	switch format {
	case FormatText, "":
		return Text(w, env)
	case FormatJSON:
		return JSON(w, env)
	case FormatYAML:
		return YAML(w, env)
	default:
		return fmt.Errorf("Render: %q: %w", format, ErrUnknownFormat)
	}
}
