package builder

import (
	"cmp"

	"github.com/katalvlaran/lvltree/core"
)

// Diameter returns the longest path, in edges, between any two nodes of
// the subtree rooted at root — not necessarily passing through the root.
// Empty and single-node trees have diameter 0. One post-order pass tracks
// each subtree's height and the running best left+right span.
// Complexity: O(n) time, O(h) recursion space.
func Diameter[T cmp.Ordered](root *core.Node[T]) int {
	best := 0
	spanHeight(root, &best)

	return best
}

// spanHeight returns the height of n's subtree while folding the longest
// through-n path (leftHeight + rightHeight + 2 edges) into best.
func spanHeight[T cmp.Ordered](n *core.Node[T], best *int) int {
	if n == nil {
		return core.EmptyHeight
	}

	lh := spanHeight(n.Left, best)
	rh := spanHeight(n.Right, best)
	if span := lh + rh + 2; span > *best {
		*best = span
	}

	return 1 + max(lh, rh)
}

// Equal reports structural and value equality: both trees nil, or both
// non-nil with equal values and recursively Equal children.
// Complexity: O(min(|a|, |b|))
func Equal[T cmp.Ordered](a, b *core.Node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Value == b.Value && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}
