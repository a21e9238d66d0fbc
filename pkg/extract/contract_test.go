package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autodiag/refinery/pkg/llm"
)

func TestCanonicalDTCCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"P0300", "P0300", true},
		{"p0300", "P0300", true},
		{" u0100 ", "U0100", true},
		{"b1a2f", "B1A2F", true},
		{"C0561", "C0561", true},
		{"P030", "", false},   // too short
		{"P03000", "", false}, // too long
		{"X0300", "", false},  // bad system letter
		{"P03G0", "", false},  // not hex
		{"", "", false},
		{"P 0300", "", false},
	}
	for _, tt := range tests {
		got, ok := CanonicalDTCCode(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestNormalizeLikelihood(t *testing.T) {
	assert.Equal(t, "high", NormalizeLikelihood("High"))
	assert.Equal(t, "medium", NormalizeLikelihood("moderate"))
	assert.Equal(t, "low", NormalizeLikelihood(" low "))
	assert.Equal(t, "", NormalizeLikelihood("certain"))
	assert.Equal(t, "", NormalizeLikelihood(""))
}

func TestNormalizeSeverity(t *testing.T) {
	assert.Equal(t, "minor", NormalizeSeverity("Minor"))
	assert.Equal(t, "moderate", NormalizeSeverity("medium"))
	assert.Equal(t, "critical", NormalizeSeverity("severe"))
	assert.Equal(t, "informational", NormalizeSeverity("INFO"))
	assert.Equal(t, "", NormalizeSeverity("catastrophic"))
}

func TestNormalizeCategory(t *testing.T) {
	got, ok := NormalizeCategory(" Forum_Discussion ")
	require.True(t, ok)
	assert.Equal(t, "forum_discussion", got)

	_, ok = NormalizeCategory("spam")
	assert.False(t, ok)
	_, ok = NormalizeCategory("")
	assert.False(t, ok)
}

func TestCanonicalCodes_DropsMalformedAndDuplicates(t *testing.T) {
	got := canonicalCodes([]string{"p0300", "P0300", "nope", "U0100", ""})
	assert.Equal(t, []string{"P0300", "U0100"}, got)
}

func TestExtractionContract_ParsesModelResponse(t *testing.T) {
	raw := "```json\n" + `{
		"dtc_codes": [{"code": "p0171", "description": "System too lean", "category": "powertrain", "severity": "moderate"}],
		"causes": [{"dtc_code": "P0171", "description": "Vacuum leak", "likelihood": "high"}],
		"diagnostic_steps": [{"dtc_code": "P0171", "step_order": 1, "description": "Inspect intake boots"}],
		"sensors": [{"name": "MAF sensor", "unit": "g/s", "related_dtc_codes": ["P0171", "P0174"]}],
		"tsb_references": [],
		"vehicles_mentioned": [{"make": "Toyota", "model": "Camry", "year_start": 2007, "year_end": 2011}],
		"document_category": "forum_discussion"
	}` + "\n```"

	var ex extraction
	require.NoError(t, llm.ParseJSONObject(raw, &ex))

	require.Len(t, ex.DTCs, 1)
	code, ok := CanonicalDTCCode(ex.DTCs[0].Code)
	require.True(t, ok)
	assert.Equal(t, "P0171", code)
	assert.Equal(t, "moderate", NormalizeSeverity(ex.DTCs[0].Severity))

	require.Len(t, ex.Causes, 1)
	assert.Equal(t, "high", NormalizeLikelihood(ex.Causes[0].Likelihood))

	require.Len(t, ex.Sensors, 1)
	assert.Equal(t, []string{"P0171", "P0174"}, canonicalCodes(ex.Sensors[0].RelatedDTCCodes))

	require.Len(t, ex.Vehicles, 1)
	assert.Equal(t, 2007, ex.Vehicles[0].YearStart)

	category, ok := NormalizeCategory(ex.Category)
	require.True(t, ok)
	assert.Equal(t, "forum_discussion", category)
}
