package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triadic/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 100, cfg.Analysis.Trials)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "none", cfg.Community.Strategy)
	assert.Equal(t, ',', cfg.Input.Rune())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triadic.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
analysis:
  trials: 250
  seed: 9
input:
  edges: data/edges.tsv
  delimiter: "\t"
community:
  strategy: louvain
  resolution: 0.8
`), 0o600))

	t.Setenv("TRIADIC_ANALYSIS_TRIALS", "500")
	t.Setenv("TRIADIC_OUTPUT_FORMAT", "json")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Analysis.Trials, "environment beats file")
	assert.Equal(t, int64(9), cfg.Analysis.Seed)
	assert.Equal(t, "data/edges.tsv", cfg.Input.Edges)
	assert.Equal(t, '\t', cfg.Input.Rune())
	assert.True(t, cfg.Input.Header, "default survives a partial file")
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "louvain", cfg.Community.Strategy)
	assert.InDelta(t, 0.8, cfg.Community.Resolution, 1e-12)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"negative trials", func(c *config.Config) { c.Analysis.Trials = -1 }},
		{"negative workers", func(c *config.Config) { c.Analysis.Workers = -2 }},
		{"format", func(c *config.Config) { c.Output.Format = "xml" }},
		{"strategy", func(c *config.Config) { c.Community.Strategy = "spectral" }},
		{"resolution", func(c *config.Config) { c.Community.Resolution = 0 }},
		{"log level", func(c *config.Config) { c.Log.Level = "trace" }},
		{"delimiter", func(c *config.Config) { c.Input.Delimiter = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
	assert.NoError(t, config.Default().Validate())
}

func TestInputConfig_Rune(t *testing.T) {
	assert.Equal(t, '\t', config.InputConfig{Delimiter: `\t`}.Rune())
	assert.Equal(t, '\t', config.InputConfig{Delimiter: "tab"}.Rune())
	assert.Equal(t, ';', config.InputConfig{Delimiter: ";"}.Rune())
	assert.Equal(t, ',', config.InputConfig{}.Rune())
}
