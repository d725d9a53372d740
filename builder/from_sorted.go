package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvltree/core"
)

// FromSorted builds a height-balanced search tree from a strictly
// increasing slice: the lower-middle element roots each subtree (the
// stable, reproducible choice on even-length windows), recursing on the
// halves. The result spans ⌈log2(n+1)⌉ levels. An empty slice yields a
// nil root. Out-of-order or duplicate values yield ErrNotSorted.
// Complexity: O(n)
func FromSorted[T cmp.Ordered](sorted []T) (*core.Node[T], error) {
	for i := 1; i < len(sorted); i++ {
		if sorted[i] <= sorted[i-1] {
			return nil, fmt.Errorf("%w: index %d (%v after %v)", ErrNotSorted, i, sorted[i], sorted[i-1])
		}
	}

	return fromSorted(sorted), nil
}

// fromSorted roots the window at its lower-middle element and recurses.
func fromSorted[T cmp.Ordered](window []T) *core.Node[T] {
	if len(window) == 0 {
		return nil
	}

	mid := (len(window) - 1) / 2
	n := core.NewNode(window[mid])
	n.Left = fromSorted(window[:mid])
	n.Right = fromSorted(window[mid+1:])

	return n
}
