package measure_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/triadic/measure"
)

func TestOf_NonFiniteIsUndefined(t *testing.T) {
	assert.False(t, measure.Of(math.NaN()).Defined())
	assert.False(t, measure.Of(math.Inf(1)).Defined())
	assert.False(t, measure.Of(math.Inf(-1)).Defined())

	v := measure.Of(0.25)
	x, ok := v.Get()
	require.True(t, ok)
	assert.Equal(t, 0.25, x)
}

func TestZeroValueIsUndefined(t *testing.T) {
	var v measure.Value
	assert.Equal(t, measure.Undefined(), v)
	assert.False(t, v.IsZero(), "undefined must not read as zero")
	assert.True(t, measure.Of(0).IsZero())
	assert.Equal(t, "undefined", v.String())
	assert.Equal(t, 7.0, v.Float64Or(7))
}

func TestRatio(t *testing.T) {
	assert.False(t, measure.Ratio(3, 0).Defined())
	assert.Equal(t, measure.Of(0.75), measure.Ratio(3, 4))
	assert.True(t, measure.Ratio(0, 5).IsZero())
}

func TestArithmeticPropagatesUndefined(t *testing.T) {
	u := measure.Undefined()
	one, two := measure.Of(1), measure.Of(2)

	cases := []struct {
		name string
		got  measure.Value
		want measure.Value
	}{
		{"div", measure.Div(one, two), measure.Of(0.5)},
		{"div by zero", measure.Div(one, measure.Of(0)), u},
		{"div undefined num", measure.Div(u, two), u},
		{"div undefined den", measure.Div(one, u), u},
		{"sub", measure.Sub(two, one), measure.Of(1)},
		{"sub undefined", measure.Sub(u, one), u},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestJSON_NullForUndefined(t *testing.T) {
	type doc struct {
		A measure.Value `json:"a"`
		B measure.Value `json:"b"`
	}
	out, err := json.Marshal(doc{A: measure.Of(1.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1.5,"b":null}`, string(out))

	var back doc
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, measure.Of(1.5), back.A)
	assert.False(t, back.B.Defined())
}

func TestYAML_NullForUndefined(t *testing.T) {
	type doc struct {
		A measure.Value `yaml:"a"`
		B measure.Value `yaml:"b"`
	}
	out, err := yaml.Marshal(doc{A: measure.Of(2)})
	require.NoError(t, err)
	assert.Contains(t, string(out), "a: 2")
	assert.Contains(t, string(out), "b: null")

	var back doc
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, measure.Of(2), back.A)
	assert.False(t, back.B.Defined())
}
