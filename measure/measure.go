// SPDX-License-Identifier: MIT
// Package: triadic/measure
//
// measure.go - explicit optional float used for every statistic that may be
// undefined (empty triangle set, zero wedges, zero baseline variance, ...).
//
// Contract:
//   - A Value is either defined (finite float64) or undefined. There is no third state.
//   - NaN and ±Inf never enter a Value: Of(NaN) == Undefined().
//   - Arithmetic helpers propagate undefined operands and never substitute zero.
//   - The zero Value is Undefined().
//
// AI-Hints:
//   - Branch with v.Defined() or v.Get(); never compare a Value against 0 to detect "no data".
//   - JSON/YAML render undefined as null.

package measure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// undefinedText is the human-readable rendering of an undefined Value.
const undefinedText = "undefined"

// Value is a float64 that may be undefined.
type Value struct {
	x  float64
	ok bool
}

// Of wraps x. Non-finite inputs collapse to Undefined().
func Of(x float64) Value {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Value{}
	}
	return Value{x: x, ok: true}
}

// Undefined returns the undefined Value.
func Undefined() Value { return Value{} }

// Ratio returns num/den, or Undefined() when den == 0.
func Ratio(num, den int) Value {
	if den == 0 {
		return Value{}
	}
	return Of(float64(num) / float64(den))
}

// Get returns the wrapped float and whether it is defined.
func (v Value) Get() (float64, bool) { return v.x, v.ok }

// Defined reports whether v carries a number.
func (v Value) Defined() bool { return v.ok }

// Float64Or returns the wrapped float, or def when v is undefined.
func (v Value) Float64Or(def float64) float64 {
	if !v.ok {
		return def
	}
	return v.x
}

// IsZero reports whether v is defined and exactly zero.
func (v Value) IsZero() bool { return v.ok && v.x == 0 }

// Div returns a/b. Undefined if either operand is undefined or b is zero.
func Div(a, b Value) Value {
	if !a.ok || !b.ok || b.x == 0 {
		return Value{}
	}
	return Of(a.x / b.x)
}

// Sub returns a-b, undefined if either operand is undefined.
func Sub(a, b Value) Value {
	if !a.ok || !b.ok {
		return Value{}
	}
	return Of(a.x - b.x)
}

// String renders v with six decimals, or "undefined".
func (v Value) String() string {
	if !v.ok {
		return undefinedText
	}
	return fmt.Sprintf("%.6f", v.x)
}

// MarshalJSON encodes undefined as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return json.Marshal(v.x)
}

// UnmarshalJSON decodes null as undefined.
func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = Value{}
		return nil
	}
	var x float64
	if err := json.Unmarshal(data, &x); err != nil {
		return fmt.Errorf("measure: decode value: %w", err)
	}
	*v = Of(x)
	return nil
}

// MarshalYAML encodes undefined as a YAML null node.
func (v Value) MarshalYAML() (interface{}, error) {
	if !v.ok {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
	return v.x, nil
}

// UnmarshalYAML decodes a null node as undefined.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" || node.Value == "" || node.Value == "null" || node.Value == "~" {
		*v = Value{}
		return nil
	}
	var x float64
	if err := node.Decode(&x); err != nil {
		return fmt.Errorf("measure: decode value: %w", err)
	}
	*v = Of(x)
	return nil
}
