package traverse

import (
	"cmp"

	"github.com/katalvlaran/lvltree/core"
)

// InOrderIterative returns exactly the sequence InOrder returns, computed
// with an explicit stack instead of recursion. Use it when the tree height
// is unbounded or untrusted: a degenerate (list-shaped) tree costs O(n)
// heap-allocated stack here instead of O(n) call-stack frames.
// Complexity: O(n) time, O(h) stack space.
func InOrderIterative[T cmp.Ordered](root *core.Node[T]) []T {
	out := make([]T, 0, core.Count(root))
	stack := make([]*core.Node[T], 0)

	n := root
	for n != nil || len(stack) > 0 {
		// Slide down the left spine, stacking ancestors.
		for n != nil {
			stack = append(stack, n)
			n = n.Left
		}
		// Emit the deepest pending ancestor, then turn right.
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.Value)
		n = n.Right
	}

	return out
}
