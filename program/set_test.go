package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetIncludes(t *testing.T) {
	tests := []struct {
		name   string
		outer  Set[string]
		inner  Set[string]
		expect bool
	}{
		{"empty outer, empty inner is false by convention", NewSet[string](), NewSet[string](), false},
		{"non-empty outer, empty inner is true", NewSet("x"), NewSet[string](), true},
		{"empty outer, non-empty inner is false", NewSet[string](), NewSet("x"), false},
		{"proper superset", NewSet("x", "y"), NewSet("x"), true},
		{"equal sets", NewSet("x", "y"), NewSet("x", "y"), true},
		{"missing element", NewSet("x"), NewSet("x", "y"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, SetIncludes(tt.outer, tt.inner))
		})
	}
}

func TestAreDifferent(t *testing.T) {
	assert.False(t, AreDifferent(NewSet("a", "b"), NewSet("b", "a")))
	assert.True(t, AreDifferent(NewSet("a", "b"), NewSet("a")))
	assert.True(t, AreDifferent(NewSet[string](), NewSet("a")))
}

func TestUnionDifference(t *testing.T) {
	a := NewSet("x", "y")
	b := NewSet("y", "z")
	assert.ElementsMatch(t, []string{"x", "y", "z"}, Union(a, b).Slice())
	assert.ElementsMatch(t, []string{"x"}, Difference(a, b).Slice())
}

func TestConcatenateArrays(t *testing.T) {
	byKey := map[string][]int{
		"b": {3, 4},
		"a": {1, 2},
	}
	assert.Equal(t, []int{1, 2, 3, 4}, ConcatenateArrays(byKey))
}

func TestSortedStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedStrings(NewSet("c", "a", "b")))
}
