package bst

import (
	"cmp"

	"github.com/katalvlaran/lvltree/builder"
)

// FromSorted builds a height-balanced Tree from a strictly increasing
// slice, delegating shape construction to builder.FromSorted. Returns
// builder.ErrNotSorted when the input is out of order or has duplicates.
// Complexity: O(n)
func FromSorted[T cmp.Ordered](values []T) (*Tree[T], error) {
	root, err := builder.FromSorted(values)
	if err != nil {
		return nil, err
	}

	return &Tree[T]{root: root, size: len(values)}, nil
}
