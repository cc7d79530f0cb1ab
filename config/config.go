// SPDX-License-Identifier: MIT
// Package: triadic/config
//
// config.go - run configuration from file, environment and defaults.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// TRIADIC_ANALYSIS_TRIALS=500.
const EnvPrefix = "TRIADIC"

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Config holds all run configuration.
type Config struct {
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Input     InputConfig     `mapstructure:"input"`
	Output    OutputConfig    `mapstructure:"output"`
	Community CommunityConfig `mapstructure:"community"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	Log       LogConfig       `mapstructure:"log"`
}

type AnalysisConfig struct {
	Trials  int   `mapstructure:"trials" validate:"gte=0"`
	Seed    int64 `mapstructure:"seed"`
	Workers int   `mapstructure:"workers" validate:"gte=0"` // 0 means GOMAXPROCS
}

type InputConfig struct {
	Edges     string `mapstructure:"edges"`
	Labels    string `mapstructure:"labels"`
	Delimiter string `mapstructure:"delimiter" validate:"required"`
	Header    bool   `mapstructure:"header"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text json yaml"`
	Path   string `mapstructure:"path"` // empty means stdout
}

type CommunityConfig struct {
	Strategy   string  `mapstructure:"strategy" validate:"oneof=louvain components none"`
	Resolution float64 `mapstructure:"resolution" validate:"gt=0"`
	Top        int     `mapstructure:"top" validate:"gte=0"` // betweenness ranking size
}

type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

type TracingConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name" validate:"required"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Analysis:  AnalysisConfig{Trials: 100},
		Input:     InputConfig{Delimiter: ",", Header: true},
		Output:    OutputConfig{Format: "text"},
		Community: CommunityConfig{Strategy: "none", Resolution: 1.0, Top: 5},
		Tracing:   TracingConfig{ServiceName: "triadic"},
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// setDefaults registers every key so AutomaticEnv can resolve it on Unmarshal.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("analysis.trials", d.Analysis.Trials)
	v.SetDefault("analysis.seed", d.Analysis.Seed)
	v.SetDefault("analysis.workers", d.Analysis.Workers)
	v.SetDefault("input.edges", d.Input.Edges)
	v.SetDefault("input.labels", d.Input.Labels)
	v.SetDefault("input.delimiter", d.Input.Delimiter)
	v.SetDefault("input.header", d.Input.Header)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.path", d.Output.Path)
	v.SetDefault("community.strategy", d.Community.Strategy)
	v.SetDefault("community.resolution", d.Community.Resolution)
	v.SetDefault("community.top", d.Community.Top)
	v.SetDefault("metrics.textfile", d.Metrics.Textfile)
	v.SetDefault("tracing.endpoint", d.Tracing.Endpoint)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// New returns a viper instance with defaults and environment binding, and
// the config file set when path is non-empty. Callers may bind flags to it
// before calling Decode.
func New(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from path (optional) and the environment.
func Load(path string) (*Config, error) {
	return Decode(New(path))
}

// Decode reads the config file bound to v, if any, then unmarshals and
// validates the merged settings.
func Decode(v *viper.Viper) (*Config, error) {
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks field constraints and reports every failure under ErrInvalid.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// Rune returns the first rune of the input delimiter. The escape `\t` and
// the word "tab" both mean a tab character.
func (c InputConfig) Rune() rune {
	switch c.Delimiter {
	case `\t`, "tab":
		return '\t'
	}
	for _, r := range c.Delimiter {
		return r
	}
	return ','
}
