package setutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffStringSet(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []string
		added   []string
		removed []string
		stable  []string
	}{
		{
			name: "both empty",
		},
		{
			name:  "only additions",
			b:     []string{"pets", "owners"},
			added: []string{"pets", "owners"},
		},
		{
			name:    "only removals",
			a:       []string{"pets"},
			removed: []string{"pets"},
		},
		{
			name:    "mixed keeps input order",
			a:       []string{"c", "a", "b"},
			b:       []string{"b", "d", "c", "e"},
			added:   []string{"d", "e"},
			removed: []string{"a"},
			stable:  []string{"c", "b"},
		},
		{
			name:   "duplicates collapsed",
			a:      []string{"x", "x", "y"},
			b:      []string{"y", "z", "z", "x"},
			added:  []string{"z"},
			stable: []string{"x", "y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DiffStringSet(tt.a, tt.b)
			assert.Equal(t, tt.added, p.Added, "Added")
			assert.Equal(t, tt.removed, p.Removed, "Removed")
			assert.Equal(t, tt.stable, p.Stable, "Stable")
		})
	}
}

func TestDiffStringSet_Symmetry(t *testing.T) {
	a := []string{"read", "write"}
	b := []string{"write", "admin"}

	forward := DiffStringSet(a, b)
	backward := DiffStringSet(b, a)

	assert.Equal(t, forward.Added, backward.Removed)
	assert.Equal(t, forward.Removed, backward.Added)
	assert.ElementsMatch(t, forward.Stable, backward.Stable)
}

func TestDiffMapKeys(t *testing.T) {
	a := map[string]int{"/pets": 1, "/owners": 2, "/vets": 3}
	b := map[string]bool{"/pets": true, "/clinics": true, "/appointments": true}

	p := DiffMapKeys(a, b)
	assert.Equal(t, []string{"/appointments", "/clinics"}, p.Added)
	assert.Equal(t, []string{"/owners", "/vets"}, p.Removed)
	assert.Equal(t, []string{"/pets"}, p.Stable)
	assert.False(t, p.Empty())
}

func TestDiffMapKeys_NilMaps(t *testing.T) {
	var a map[string]int
	var b map[string]int

	p := DiffMapKeys(a, b)
	assert.True(t, p.Empty())
	assert.Empty(t, p.Stable)
}

func TestSortedKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]bool
		expected []string
	}{
		{
			name:     "sorted keys",
			input:    map[string]bool{"zebra": true, "apple": true, "mango": true},
			expected: []string{"apple", "mango", "zebra"},
		},
		{
			name:     "empty map",
			input:    map[string]bool{},
			expected: []string{},
		},
		{
			name:     "nil map",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortedKeys(tt.input)
			assert.Equal(t, tt.expected, got, "SortedKeys(%v)", tt.input)
		})
	}
}

func TestSet(t *testing.T) {
	s := NewSet("a", "b")
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("c"))
	assert.True(t, s.Add("c"))
	assert.False(t, s.Add("c"))
	assert.Len(t, s, 3)
}

func TestDiffSet_Structs(t *testing.T) {
	type key struct{ in, name string }
	a := []key{{"query", "limit"}, {"path", "id"}}
	b := []key{{"path", "id"}, {"query", "offset"}}

	p := DiffSet(a, b)
	assert.Equal(t, []key{{"query", "offset"}}, p.Added)
	assert.Equal(t, []key{{"query", "limit"}}, p.Removed)
	assert.Equal(t, []key{{"path", "id"}}, p.Stable)
}
