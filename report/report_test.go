package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/triadic/balance"
	"github.com/katalvlaran/triadic/community"
	"github.com/katalvlaran/triadic/homophily"
	"github.com/katalvlaran/triadic/measure"
	"github.com/katalvlaran/triadic/report"
)

func sampleEnvelope() *report.Envelope {
	env := report.NewEnvelope(report.Input{
		Edges:      "edges.csv",
		Labels:     "labels.csv",
		Categories: []string{"blue", "red"},
	}, &balance.Report{
		Vertices:       4,
		Edges:          4,
		Triangles:      1,
		Balanced:       1,
		NegativeCensus: [4]int{1, 0, 0, 0},
		BalanceRatio:   measure.Of(1),
		Wedges:         3,
		Closed:         3,
		ClosureRate:    measure.Of(1),
		Trials:         0,
	})
	env.Homophily = &homophily.Summary{
		Categories:    2,
		SameLabel:     3,
		EdgeHomophily: measure.Of(0.75),
		Assortativity: measure.Of(-0.2),
	}
	env.Community = &community.Summary{
		Strategy:    community.StrategyComponents,
		Count:       1,
		Sizes:       []int{4},
		Modularity:  measure.Of(0),
		LabelPurity: measure.Of(0.75),
	}
	env.Central = []report.Central{{Name: "carol", Score: 2}}
	return env
}

func TestNewEnvelope_RunID(t *testing.T) {
	a, b := sampleEnvelope(), sampleEnvelope()
	_, err := uuid.Parse(a.RunID)
	require.NoError(t, err)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.False(t, a.Generated.IsZero())
}

func TestJSON(t *testing.T) {
	env := sampleEnvelope()
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatJSON, env))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, env.RunID, doc["run_id"])

	rep := doc["report"].(map[string]any)
	assert.Equal(t, 1.0, rep["balance_ratio"])
	assert.Nil(t, rep["lift"], "undefined lift is null")
	assert.Nil(t, rep["z_score"])
	assert.Contains(t, rep, "baseline_mean")

	hom := doc["homophily"].(map[string]any)
	assert.Equal(t, 0.75, hom["edge_homophily"])
	assert.NotContains(t, hom, "Mixing")
}

func TestYAML(t *testing.T) {
	env := sampleEnvelope()
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatYAML, env))

	out := buf.String()
	assert.Contains(t, out, "run_id: "+env.RunID)
	assert.Contains(t, out, "lift: null")
	assert.Contains(t, out, "closure_rate: 1")

	var doc struct {
		Report struct {
			Lift        measure.Value `yaml:"lift"`
			ClosureRate measure.Value `yaml:"closure_rate"`
		} `yaml:"report"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.False(t, doc.Report.Lift.Defined())
	assert.Equal(t, measure.Of(1), doc.Report.ClosureRate)
}

func TestText(t *testing.T) {
	env := sampleEnvelope()
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, "", env))

	out := buf.String()
	for _, want := range []string{
		env.RunID,
		"balance ratio",
		"1.000000",
		"undefined",
		"Homophily",
		"Communities (components)",
		"carol",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	err := report.Render(&bytes.Buffer{}, "xml", sampleEnvelope())
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}
