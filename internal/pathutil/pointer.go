package pathutil

import (
	"strconv"
	"strings"
)

// Pointer is a location inside an OpenAPI document, rendered as "#/a/b/c".
type Pointer string

// Root is the pointer to the document itself.
const Root Pointer = "#"

// Child appends one "/"-separated segment per argument.
func (p Pointer) Child(segments ...string) Pointer {
	if len(segments) == 0 {
		return p
	}
	var b strings.Builder
	n := len(p)
	for _, s := range segments {
		n += len(s) + 1
	}
	b.Grow(n)
	b.WriteString(string(p))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(s)
	}
	return Pointer(b.String())
}

// Index appends an array position.
func (p Pointer) Index(i int) Pointer {
	return p + "/" + Pointer(strconv.Itoa(i))
}

// Raw appends s verbatim, without a separator.
func (p Pointer) Raw(s string) Pointer {
	return p + Pointer(s)
}

// String returns the rendered pointer.
func (p Pointer) String() string {
	return string(p)
}
