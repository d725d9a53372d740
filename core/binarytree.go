package core

import "cmp"

// Insert attaches a new Node holding v to the first Node, in breadth-first
// order from the root, that has an unfilled child slot. On an empty tree the
// new Node becomes the root. The tree stays complete only if every insertion
// ever performed used this policy.
// Complexity: O(n) time, O(n) queue space worst case.
func (t *BinaryTree[T]) Insert(v T) {
	n := NewNode(v)
	t.size++
	if t.root == nil {
		t.root = n
		return
	}

	// Scan level by level for the first open slot.
	queue := []*Node[T]{t.root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.Left == nil {
			cur.Left = n
			return
		}
		if cur.Right == nil {
			cur.Right = n
			return
		}
		queue = append(queue, cur.Left, cur.Right)
	}
}

// Search reports whether v is stored anywhere in the tree. With no ordering
// invariant to exploit, this is a full recursive scan.
// Complexity: O(n) time, O(h) recursion space.
func (t *BinaryTree[T]) Search(v T) bool {
	return Contains(t.root, v)
}

// Height returns the number of edges on the longest root-to-leaf path,
// or EmptyHeight (-1) for an empty tree.
// Complexity: O(n)
func (t *BinaryTree[T]) Height() int {
	return Height(t.root)
}

// Count recounts the stored values by walking the whole tree. It always
// agrees with Len for trees mutated only through Insert; it exists as the
// recursive summation query and as an integrity check over raw Node trees.
// Complexity: O(n)
func (t *BinaryTree[T]) Count() int {
	return Count(t.root)
}

// IsBalanced reports whether, at every Node, the heights of the two
// subtrees differ by at most one. Computed in a single bottom-up pass that
// memoizes subtree heights; the naive top-down recomputation (O(n²) worst
// case) is deliberately not provided.
// Complexity: O(n)
func (t *BinaryTree[T]) IsBalanced() bool {
	return IsBalanced(t.root)
}

// Min returns the smallest stored value, scanning the whole tree.
// Returns ErrEmptyTree when the tree has no nodes.
// Complexity: O(n)
func (t *BinaryTree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return minValue(t.root), nil
}

// Max returns the largest stored value, scanning the whole tree.
// Returns ErrEmptyTree when the tree has no nodes.
// Complexity: O(n)
func (t *BinaryTree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return maxValue(t.root), nil
}

// Contains reports whether v occurs in the subtree rooted at n.
func Contains[T cmp.Ordered](n *Node[T], v T) bool {
	if n == nil {
		return false
	}
	if n.Value == v {
		return true
	}

	return Contains(n.Left, v) || Contains(n.Right, v)
}

// Height returns the edge-count height of the subtree rooted at n,
// EmptyHeight (-1) when n is nil.
func Height[T cmp.Ordered](n *Node[T]) int {
	if n == nil {
		return EmptyHeight
	}

	return 1 + max(Height(n.Left), Height(n.Right))
}

// Count returns the number of Nodes in the subtree rooted at n.
func Count[T cmp.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + Count(n.Left) + Count(n.Right)
}

// IsBalanced reports whether every Node in the subtree rooted at n has
// subtree heights differing by at most one. Single bottom-up pass, O(n).
func IsBalanced[T cmp.Ordered](n *Node[T]) bool {
	_, ok := balancedHeight(n)
	return ok
}

// balancedHeight returns the height of n's subtree and whether the subtree
// is balanced, short-circuiting as soon as one node violates the bound.
func balancedHeight[T cmp.Ordered](n *Node[T]) (int, bool) {
	if n == nil {
		return EmptyHeight, true
	}

	lh, ok := balancedHeight(n.Left)
	if !ok {
		return 0, false
	}
	rh, ok := balancedHeight(n.Right)
	if !ok {
		return 0, false
	}
	if d := lh - rh; d < -1 || d > 1 {
		return 0, false
	}

	return 1 + max(lh, rh), true
}

// minValue scans the subtree rooted at n (non-nil) for its smallest value.
func minValue[T cmp.Ordered](n *Node[T]) T {
	best := n.Value
	if n.Left != nil {
		best = min(best, minValue(n.Left))
	}
	if n.Right != nil {
		best = min(best, minValue(n.Right))
	}

	return best
}

// maxValue scans the subtree rooted at n (non-nil) for its largest value.
func maxValue[T cmp.Ordered](n *Node[T]) T {
	best := n.Value
	if n.Left != nil {
		best = max(best, maxValue(n.Left))
	}
	if n.Right != nil {
		best = max(best, maxValue(n.Right))
	}

	return best
}
