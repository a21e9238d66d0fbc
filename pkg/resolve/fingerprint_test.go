package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Faulty ignition coil", "faulty ignition coil"},
		{"faulty  ignition\tcoil!", "faulty ignition coil"},
		{"Faulty, ignition; coil.", "faulty ignition coil"},
		{"O2-sensor heater circuit", "o2-sensor heater circuit"},
		{"  leading and trailing  ", "leading and trailing"},
		{"ALL CAPS", "all caps"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fingerprint(tt.in), "input %q", tt.in)
	}
}

func TestFingerprint_EquivalentPhrasingsCollide(t *testing.T) {
	a := Fingerprint("Replace the spark plugs.")
	b := Fingerprint("replace   the spark plugs")
	c := Fingerprint("Replace, the spark plugs!")
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
}

func TestFingerprint_HyphenSurvives(t *testing.T) {
	assert.NotEqual(t, Fingerprint("o2-sensor"), Fingerprint("o2 sensor"))
}
