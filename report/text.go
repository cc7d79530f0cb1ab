// SPDX-License-Identifier: MIT
// Package: triadic/report
//
// text.go - terminal renderer.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/triadic/measure"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#6C7A89")
	colorWarn   = lipgloss.Color("#F4D03F")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleSection = lipgloss.NewStyle().Bold(true)
	styleKey     = lipgloss.NewStyle().Foreground(colorMuted).Width(22)
	styleUndef   = lipgloss.NewStyle().Foreground(colorWarn)
	styleBox     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
)

// Text writes a human-readable summary of env.
func Text(w io.Writer, env *Envelope) error {
	var b strings.Builder
	row := func(k string, v any) {
		b.WriteString(styleKey.Render(k))
		b.WriteString(fmt.Sprint(v))
		b.WriteByte('\n')
	}
	val := func(k string, v measure.Value) {
		if !v.Defined() {
			row(k, styleUndef.Render(v.String()))
			return
		}
		row(k, v.String())
	}
	section := func(name string) {
		b.WriteByte('\n')
		b.WriteString(styleSection.Render(name))
		b.WriteByte('\n')
	}

	b.WriteString(styleTitle.Render("triadic run " + env.RunID))
	b.WriteByte('\n')
	if env.Input.Edges != "" {
		row("edges file", env.Input.Edges)
	}
	if env.Input.Labels != "" {
		row("labels file", env.Input.Labels)
	}

	r := env.Report
	if r != nil {
		row("vertices", r.Vertices)
		row("edges", r.Edges)
		row("categories", len(env.Input.Categories))
		if env.Input.SelfLoops > 0 || env.Input.Repeated > 0 {
			row("dropped", fmt.Sprintf("%d self-loops, %d repeated", env.Input.SelfLoops, env.Input.Repeated))
		}

		section("Triads")
		row("triangles", r.Triangles)
		row("balanced", r.Balanced)
		row("by negatives 0/1/2/3", fmt.Sprintf("%d/%d/%d/%d",
			r.NegativeCensus[0], r.NegativeCensus[1], r.NegativeCensus[2], r.NegativeCensus[3]))
		val("balance ratio", r.BalanceRatio)

		section("Wedge closure")
		row("same-label wedges", r.Wedges)
		row("closed", r.Closed)
		val("closure rate", r.ClosureRate)

		section("Null model")
		row("trials", fmt.Sprintf("%d (%d defined)", r.Trials, r.ValidTrials))
		row("seed", r.Seed)
		val("baseline mean", r.BaselineMean)
		val("baseline std", r.BaselineStd)
		val("lift", r.Lift)
		val("z-score", r.ZScore)
	}

	if h := env.Homophily; h != nil {
		section("Homophily")
		row("same-label edges", h.SameLabel)
		val("edge homophily", h.EdgeHomophily)
		val("assortativity", h.Assortativity)
	}

	if c := env.Community; c != nil {
		section("Communities (" + c.Strategy + ")")
		row("count", c.Count)
		row("sizes", joinInts(c.Sizes))
		val("modularity", c.Modularity)
		val("label purity", c.LabelPurity)
	}

	if len(env.Central) > 0 {
		section("Betweenness")
		for _, c := range env.Central {
			row(c.Name, fmt.Sprintf("%.4f", c.Score))
		}
	}

	_, err := fmt.Fprintln(w, styleBox.Render(strings.TrimRight(b.String(), "\n")))
	return err
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, " ")
}
