package severity

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		expected string
	}{
		{"patch level", SeverityPatch, "patch"},
		{"minor level", SeverityMinor, "minor"},
		{"major level", SeverityMajor, "major"},

		// Edge cases: Invalid severity values
		{"unknown negative", Severity(-1), "unknown"},
		{"unknown large value", Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.severity.String()
			assert.Equal(t, tt.expected, result, "Severity(%d).String() = %q, want %q", tt.severity, result, tt.expected)
		})
	}
}

// TestSeverityStringConsistency verifies that all defined severity levels
// return non-empty, lowercase strings without whitespace.
func TestSeverityStringConsistency(t *testing.T) {
	for _, sev := range All() {
		str := sev.String()
		assert.NotEmpty(t, str)
		assert.Equal(t, strings.ToLower(str), str)
		assert.NotContains(t, str, " ")
	}
}

func TestSeverityOrdering(t *testing.T) {
	assert.Less(t, SeverityPatch, SeverityMinor)
	assert.Less(t, SeverityMinor, SeverityMajor)
	assert.Equal(t, []Severity{SeverityMajor, SeverityMinor, SeverityPatch}, All())
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Severity
		wantErr bool
	}{
		{"patch", SeverityPatch, false},
		{"MINOR", SeverityMinor, false},
		{" major ", SeverityMajor, false},
		{"critical", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMax(t *testing.T) {
	_, ok := Max()
	assert.False(t, ok)

	got, ok := Max(SeverityPatch, SeverityMajor, SeverityMinor)
	assert.True(t, ok)
	assert.Equal(t, SeverityMajor, got)

	got, ok = Max(SeverityPatch, SeverityPatch)
	assert.True(t, ok)
	assert.Equal(t, SeverityPatch, got)
}

func TestSeverityJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Severity{"level": SeverityMinor})
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":"minor"}`, string(data))

	var decoded map[string]Severity
	require.NoError(t, json.Unmarshal([]byte(`{"level":"major"}`), &decoded))
	assert.Equal(t, SeverityMajor, decoded["level"])

	assert.Error(t, json.Unmarshal([]byte(`{"level":"huge"}`), &decoded))
}
