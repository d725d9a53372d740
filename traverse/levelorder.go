package traverse

import (
	"cmp"

	"github.com/katalvlaran/lvltree/core"
)

// LevelOrder returns the breadth-first view of the subtree rooted at root:
// one slice per depth, values left to right within each depth. The result
// is empty, never nil, for a nil root.
// Complexity: O(n) time, O(n) queue space worst case.
func LevelOrder[T cmp.Ordered](root *core.Node[T]) [][]T {
	levels := make([][]T, 0)
	if root == nil {
		return levels
	}

	queue := []*core.Node[T]{root}
	for len(queue) > 0 {
		// Everything currently queued belongs to one depth.
		width := len(queue)
		level := make([]T, 0, width)
		for i := 0; i < width; i++ {
			n := queue[0]
			queue = queue[1:]
			level = append(level, n.Value)
			if n.Left != nil {
				queue = append(queue, n.Left)
			}
			if n.Right != nil {
				queue = append(queue, n.Right)
			}
		}
		levels = append(levels, level)
	}

	return levels
}
