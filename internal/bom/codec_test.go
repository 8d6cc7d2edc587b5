package bom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SortsUnitsAndPrints(t *testing.T) {
	prints, err := Parse([]byte(`{"10":{"b":1,"a":2},"2":{},"x":{"z":0}}`))
	require.NoError(t, err)

	want := []Print{
		{Name: "2", Units: []Unit{}},
		{Name: "10", Units: []Unit{{Name: "a", Quantity: 2}, {Name: "b", Quantity: 1}}},
		{Name: "x", Units: []Unit{{Name: "z", Quantity: 0}}},
	}
	if diff := cmp.Diff(want, prints, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Scenario(t *testing.T) {
	prints, err := Parse([]byte(`{"1":{"BFO24I":234,"BFO COIL":150}}`))
	require.NoError(t, err)
	require.Len(t, prints, 1)
	assert.Equal(t, "1", prints[0].Name)
	assert.Equal(t, []Unit{{Name: "BFO COIL", Quantity: 150}, {Name: "BFO24I", Quantity: 234}}, prints[0].Units)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty input", ``},
		{"not json", `units`},
		{"top-level null", `null`},
		{"top-level array", `[]`},
		{"top-level number", `3`},
		{"print is number", `{"a": 1}`},
		{"print is null", `{"a": null}`},
		{"print is array", `{"a": [1]}`},
		{"negative quantity", `{"a": {"x": -1}}`},
		{"fractional quantity", `{"a": {"x": 1.5}}`},
		{"exponent quantity", `{"a": {"x": 1e2}}`},
		{"string quantity", `{"a": {"x": "5"}}`},
		{"null quantity", `{"a": {"x": null}}`},
		{"nested object quantity", `{"a": {"x": {"y": 1}}}`},
		{"quantity overflows u32", `{"a": {"x": 4294967296}}`},
		{"trailing data", `{"a": {}} {}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prints, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, prints)
			var pe *ParseError
			assert.True(t, errors.As(err, &pe), "want *ParseError, got %T", err)
		})
	}
}

func TestParse_AcceptsLimits(t *testing.T) {
	prints, err := Parse([]byte(`{"": {"": 0, "max": 4294967295}}`))
	require.NoError(t, err)
	require.Len(t, prints, 1)
	assert.Equal(t, []Unit{{Name: "", Quantity: 0}, {Name: "max", Quantity: 4294967295}}, prints[0].Units)
}

func TestMarshal_Empty(t *testing.T) {
	data, err := Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestMarshal_PrintWithoutUnits(t *testing.T) {
	data, err := Marshal([]Print{{Name: "solo"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"solo":{}}`, string(data))
}

func TestMarshal_PlainIntegers(t *testing.T) {
	data, err := Marshal([]Print{{Name: "1", Units: []Unit{{Name: "BFO24I", Quantity: 234}}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"1":{"BFO24I":234}}`, string(data))
	assert.Contains(t, string(data), `"BFO24I": 234`)
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`{}`,
		`{"1":{"BFO24I":234,"BFO COIL":150}}`,
		`{"10":{"a":1},"2":{"b":2,"c":4294967295},"alpha":{},"ünïcode":{"ß":7}}`,
	}
	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			first, err := Parse([]byte(doc))
			require.NoError(t, err)

			data, err := Marshal(first)
			require.NoError(t, err)
			assert.JSONEq(t, doc, string(data))

			second, err := Parse(data)
			require.NoError(t, err)
			if diff := cmp.Diff(first, second, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-first +second):\n%s", diff)
			}
		})
	}
}
