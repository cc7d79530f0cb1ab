// SPDX-License-Identifier: MIT
// Package: triadic/report
//
// encode.go - JSON and YAML renderers.

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// JSON writes env as indented JSON followed by a newline.
func JSON(w io.Writer, env *Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("JSON: %w", err)
	}
	return nil
}

// YAML writes env as a YAML document.
func YAML(w io.Writer, env *Envelope) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("YAML: %w", err)
	}
	return nil
}
