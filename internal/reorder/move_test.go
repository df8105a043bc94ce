package reorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveElement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"forward shifts middle left", 0, 3, []string{"b", "c", "d", "a", "e"}},
		{"backward shifts middle right", 4, 1, []string{"a", "e", "b", "c", "d"}},
		{"neighbour swap", 1, 2, []string{"a", "c", "b", "d", "e"}},
		{"same index", 2, 2, []string{"a", "b", "c", "d", "e"}},
		{"from out of range", 9, 0, []string{"a", "b", "c", "d", "e"}},
		{"to out of range", 0, -1, []string{"a", "b", "c", "d", "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := []string{"a", "b", "c", "d", "e"}
			got := MoveElement(in, tt.from, tt.to)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"a", "b", "c", "d", "e"}, in, "input must not be modified")
		})
	}
}

func TestMoveElement_IsPermutation(t *testing.T) {
	t.Parallel()

	in := []int{1, 2, 3, 4, 5, 6}
	for from := range in {
		for to := range in {
			got := MoveElement(in, from, to)
			assert.ElementsMatch(t, in, got, "move %d->%d", from, to)
			assert.Equal(t, in[from], got[to], "move %d->%d", from, to)
		}
	}
}

func TestMoveElement_Empty(t *testing.T) {
	t.Parallel()

	got := MoveElement([]int{}, 0, 0)
	assert.Empty(t, got)
}

func TestAdjacent(t *testing.T) {
	t.Parallel()

	assert.True(t, Adjacent(1, 1))
	assert.True(t, Adjacent(1, 0))
	assert.True(t, Adjacent(1, 2))
	assert.False(t, Adjacent(0, 2))
	assert.False(t, Adjacent(3, 0))
}
