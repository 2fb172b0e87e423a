// Package setutil provides small set primitives used to partition two
// collections into added, removed and stable members.
package setutil

import (
	"cmp"
	"slices"
)

// Set is a membership set over comparable values.
type Set[T comparable] map[T]struct{}

// NewSet builds a set from the given values.
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether v is a member.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Add inserts v and reports whether it was newly added.
func (s Set[T]) Add(v T) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

// Partition splits two collections A (old) and B (new).
// Added holds B\A, Removed holds A\B, Stable holds A∩B.
type Partition[T any] struct {
	Added   []T
	Removed []T
	Stable  []T
}

// Empty reports whether nothing was added or removed.
func (p Partition[T]) Empty() bool {
	return len(p.Added) == 0 && len(p.Removed) == 0
}

// DiffSet partitions two slices of comparable values. Added follows the order
// of b; Removed and Stable follow the order of a. Duplicates are collapsed to
// their first occurrence.
func DiffSet[T comparable](a, b []T) Partition[T] {
	inA := NewSet(a...)
	inB := NewSet(b...)

	var p Partition[T]
	seen := make(Set[T], len(a))
	for _, v := range a {
		if !seen.Add(v) {
			continue
		}
		if inB.Has(v) {
			p.Stable = append(p.Stable, v)
		} else {
			p.Removed = append(p.Removed, v)
		}
	}
	seen = make(Set[T], len(b))
	for _, v := range b {
		if !seen.Add(v) {
			continue
		}
		if !inA.Has(v) {
			p.Added = append(p.Added, v)
		}
	}
	return p
}

// DiffStringSet partitions two string slices with the ordering rules of DiffSet.
func DiffStringSet(a, b []string) Partition[string] {
	return DiffSet(a, b)
}

// DiffMapKeys partitions the key sets of two maps. Keys in every bucket are
// sorted ascending.
func DiffMapKeys[K cmp.Ordered, V1, V2 any](a map[K]V1, b map[K]V2) Partition[K] {
	var p Partition[K]
	for _, k := range SortedKeys(a) {
		if _, ok := b[k]; ok {
			p.Stable = append(p.Stable, k)
		} else {
			p.Removed = append(p.Removed, k)
		}
	}
	for _, k := range SortedKeys(b) {
		if _, ok := a[k]; !ok {
			p.Added = append(p.Added, k)
		}
	}
	return p
}

// SortedKeys returns the keys of m in ascending order. A nil map yields an
// empty, non-nil slice.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
