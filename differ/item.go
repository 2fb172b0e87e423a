package differ

import (
	"encoding/json"
	"fmt"

	"github.com/fresha/openapi-diff/internal/pathutil"
	"github.com/fresha/openapi-diff/internal/severity"
)

// Severity classifies a difference by the version segment it bumps.
type Severity = severity.Severity

const (
	// SeverityPatch marks documentation-only changes
	SeverityPatch = severity.SeverityPatch
	// SeverityMinor marks backward-compatible additions
	SeverityMinor = severity.SeverityMinor
	// SeverityMajor marks changes that can break existing clients
	SeverityMajor = severity.SeverityMajor
)

// Messages used for presence and value changes. Set differences use
// parametrized variants such as "added tag pets".
const (
	MessageAdded   = "added"
	MessageRemoved = "removed"
	MessageChanged = "changed"
)

// DiffItem is a single difference between two documents.
type DiffItem struct {
	pointer  string
	severity Severity
	message  string
}

// NewDiffItem creates a DiffItem.
func NewDiffItem(pointer string, sev Severity, message string) DiffItem {
	return DiffItem{pointer: pointer, severity: sev, message: message}
}

func newItem(ptr pathutil.Pointer, sev Severity, message string) DiffItem {
	return NewDiffItem(ptr.String(), sev, message)
}

// Pointer returns the location of the difference, e.g. "#/paths/pets/get".
func (i DiffItem) Pointer() string { return i.pointer }

// Severity returns the severity of the difference.
func (i DiffItem) Severity() Severity { return i.severity }

// Message returns a short description of the difference.
func (i DiffItem) Message() string { return i.message }

// String renders the item as "[severity] pointer message".
func (i DiffItem) String() string {
	return fmt.Sprintf("[%s] %s %s", i.severity, i.pointer, i.message)
}

// itemView is the structured form of a DiffItem.
type itemView struct {
	Pointer  string   `json:"pointer" yaml:"pointer"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

func (i DiffItem) view() itemView {
	return itemView{Pointer: i.pointer, Severity: i.severity, Message: i.message}
}

// MarshalJSON implements json.Marshaler.
func (i DiffItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.view())
}

// MarshalYAML implements yaml.Marshaler.
func (i DiffItem) MarshalYAML() (any, error) {
	return i.view(), nil
}

// Counts holds the number of items per severity.
type Counts struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`
}

// Total returns the number of items counted.
func (c Counts) Total() int {
	return c.Major + c.Minor + c.Patch
}

// Of returns the count for one severity.
func (c Counts) Of(sev Severity) int {
	switch sev {
	case SeverityMajor:
		return c.Major
	case SeverityMinor:
		return c.Minor
	case SeverityPatch:
		return c.Patch
	}
	return 0
}

// CountItems tallies items by severity.
func CountItems(items []DiffItem) Counts {
	var c Counts
	for _, item := range items {
		switch item.severity {
		case SeverityMajor:
			c.Major++
		case SeverityMinor:
			c.Minor++
		case SeverityPatch:
			c.Patch++
		}
	}
	return c
}

// Report is the structured result of a comparison, suitable for JSON or YAML
// output.
type Report struct {
	Items           []DiffItem `json:"items" yaml:"items"`
	Counts          Counts     `json:"counts" yaml:"counts"`
	OutdatedVersion bool       `json:"outdated_version" yaml:"outdated_version"`
	NewVersion      string     `json:"new_version" yaml:"new_version"`
}
