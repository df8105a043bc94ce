// Package reorder computes board orderings for drag gestures. Every function
// here is pure: inputs are never modified and new slices are returned.
package reorder

// MoveElement relocates the element at from to index to and returns the new
// sequence. Elements between the two indexes shift by one position toward
// the vacated slot. Out-of-range indexes return an unchanged copy.
func MoveElement[T any](seq []T, from, to int) []T {
	out := make([]T, len(seq))
	copy(out, seq)

	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}

	item := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = item

	return out
}
