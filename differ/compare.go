package differ

import (
	"fmt"

	"github.com/fresha/openapi-diff/internal/equalutil"
	"github.com/fresha/openapi-diff/internal/pathutil"
)

// diffText records a string field. An empty string counts as absent.
func (d *Differ) diffText(ptr pathutil.Pointer, from, to string, sev Severity) {
	switch {
	case from == to:
	case from == "":
		d.add(ptr, sev, MessageAdded)
	case to == "":
		d.add(ptr, sev, MessageRemoved)
	default:
		d.add(ptr, sev, MessageChanged)
	}
}

// diffRef records a $ref field like diffText. A retargeted local component
// reference names both components in the message.
func (d *Differ) diffRef(ptr pathutil.Pointer, from, to string, sev Severity) {
	fromName, toName := pathutil.RefName(from), pathutil.RefName(to)
	if from == to || fromName == "" || toName == "" {
		d.diffText(ptr, from, to, sev)
		return
	}
	d.add(ptr, sev, fmt.Sprintf("%s %s -> %s", MessageChanged, fromName, toName))
}

func (d *Differ) diffFlag(ptr pathutil.Pointer, from, to bool, sev Severity) {
	if from != to {
		d.add(ptr, sev, MessageChanged)
	}
}

// diffValue records a loosely typed value such as default or an extension.
func (d *Differ) diffValue(ptr pathutil.Pointer, from, to any, sev Severity) {
	switch {
	case sameValue(from, to):
	case from == nil:
		d.add(ptr, sev, MessageAdded)
	case to == nil:
		d.add(ptr, sev, MessageRemoved)
	default:
		d.add(ptr, sev, MessageChanged)
	}
}

// diffOptional records an optional constraint such as minLength.
func diffOptional[T comparable](d *Differ, ptr pathutil.Pointer, from, to *T, sev Severity) {
	switch {
	case equalutil.EqualPtr(from, to):
	case from == nil:
		d.add(ptr, sev, MessageAdded)
	case to == nil:
		d.add(ptr, sev, MessageRemoved)
	default:
		d.add(ptr, sev, MessageChanged)
	}
}

// presence records an added or removed object and reports whether both
// sides are present and need a field-by-field comparison.
func (d *Differ) presence(ptr pathutil.Pointer, fromPresent, toPresent bool, added, removed Severity) bool {
	switch {
	case fromPresent && toPresent:
		return true
	case toPresent:
		d.add(ptr, added, MessageAdded)
	case fromPresent:
		d.add(ptr, removed, MessageRemoved)
	}
	return false
}

func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equalutil.EqualValue(a, b)
}
