// Package severity provides the semantic-versioning severity levels assigned
// to differences between two OpenAPI documents.
//
// The levels are ordered from least to most severe:
// Patch < Minor < Major
//
// Each level names the version segment a change of that class bumps.
package severity

import (
	"fmt"
	"strings"
)

// Severity classifies a single difference by the version segment it bumps.
type Severity int

const (
	// SeverityPatch marks documentation-only changes.
	SeverityPatch Severity = iota

	// SeverityMinor marks backward-compatible additions.
	SeverityMinor

	// SeverityMajor marks changes that can break existing clients.
	SeverityMajor
)

// All returns the severity levels from most to least severe.
func All() []Severity {
	return []Severity{SeverityMajor, SeverityMinor, SeverityPatch}
}

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityPatch:
		return "patch"
	case SeverityMinor:
		return "minor"
	case SeverityMajor:
		return "major"
	default:
		return "unknown"
	}
}

// Parse converts a severity name back into its level. Matching is case-insensitive.
func Parse(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "patch":
		return SeverityPatch, nil
	case "minor":
		return SeverityMinor, nil
	case "major":
		return SeverityMajor, nil
	default:
		return 0, fmt.Errorf("severity: unknown level %q", s)
	}
}

// Max returns the most severe of the given levels and false when none are given.
func Max(levels ...Severity) (Severity, bool) {
	if len(levels) == 0 {
		return 0, false
	}
	highest := levels[0]
	for _, s := range levels[1:] {
		if s > highest {
			highest = s
		}
	}
	return highest, true
}

// MarshalText implements encoding.TextMarshaler so levels serialize by name
// in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
