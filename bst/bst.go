package bst

import (
	"cmp"

	"github.com/katalvlaran/lvltree/core"
	"github.com/katalvlaran/lvltree/traverse"
)

// Insert stores v, descending by comparison and attaching a new leaf at
// the first nil slot. Inserting a value already stored is a no-op by
// policy; the return value reports whether the tree changed.
// Complexity: O(h) time, O(h) recursion space.
func (t *Tree[T]) Insert(v T) bool {
	var added bool
	t.root, added = insert(t.root, v)
	if added {
		t.size++
	}

	return added
}

// insert descends to the ordered position of v and returns the (possibly
// new) subtree root plus whether a node was attached.
func insert[T cmp.Ordered](n *core.Node[T], v T) (*core.Node[T], bool) {
	if n == nil {
		return core.NewNode(v), true
	}

	var added bool
	switch {
	case v < n.Value:
		n.Left, added = insert(n.Left, v)
	case v > n.Value:
		n.Right, added = insert(n.Right, v)
	default:
		// duplicate: silently dropped
	}

	return n, added
}

// Search reports whether v is stored, descending left or right by
// comparison until found or a nil slot is reached.
// Complexity: O(h) time, O(1) space.
func (t *Tree[T]) Search(v T) bool {
	for n := t.root; n != nil; {
		switch {
		case v < n.Value:
			n = n.Left
		case v > n.Value:
			n = n.Right
		default:
			return true
		}
	}

	return false
}

// Delete removes v if present and reports whether the tree changed.
// Deleting an absent value is a no-op, so Delete is idempotent.
//
// Three structural cases at the located node:
//  1. leaf          — detach; the parent's slot becomes empty
//  2. one child     — splice; the sole child subtree replaces the node
//  3. two children  — copy the in-order successor (minimum of the right
//     subtree) into the node, then delete that successor from the right
//     subtree, which is then guaranteed to be case 1 or 2
//
// Complexity: O(h) time, O(h) recursion space.
func (t *Tree[T]) Delete(v T) bool {
	var removed bool
	t.root, removed = remove(t.root, v)
	if removed {
		t.size--
	}

	return removed
}

// remove locates v by ordered descent and resolves the three cases,
// returning the new subtree root plus whether a node was removed.
func remove[T cmp.Ordered](n *core.Node[T], v T) (*core.Node[T], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case v < n.Value:
		n.Left, removed = remove(n.Left, v)
		return n, removed
	case v > n.Value:
		n.Right, removed = remove(n.Right, v)
		return n, removed
	}

	// Found. Leaf and one-child cases collapse to "promote the other side".
	switch {
	case n.Left == nil:
		return n.Right, true
	case n.Right == nil:
		return n.Left, true
	}

	// Two children: copy the successor's value, then recurse to delete it.
	// The value copy, not a pointer swap, is what keeps the ordering
	// invariant trivially intact.
	succ := leftmost(n.Right)
	n.Value = succ.Value
	n.Right, _ = remove(n.Right, succ.Value)

	return n, true
}

// Min returns the smallest stored value via all-left descent.
// Returns ErrEmptyTree when the tree has no nodes.
// Complexity: O(h) time, O(1) space.
func (t *Tree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}

	return leftmost(t.root).Value, nil
}

// Max returns the largest stored value via all-right descent.
// Returns ErrEmptyTree when the tree has no nodes.
// Complexity: O(h) time, O(1) space.
func (t *Tree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}

	n := t.root
	for n.Right != nil {
		n = n.Right
	}

	return n.Value, nil
}

// IsValid re-checks the ordering invariant over the whole tree: every
// node's value must lie strictly inside the open interval formed by the
// tightest ancestor bounds. Trees mutated only through Insert and Delete
// always pass; the check exists for trees assembled from raw Nodes.
// Complexity: O(n)
func (t *Tree[T]) IsValid() bool {
	return valid(t.root, nil, nil)
}

// valid propagates (lo, hi) ancestor bounds down the tree. nil means
// unbounded on that side, which spares us sentinel extreme values.
func valid[T cmp.Ordered](n *core.Node[T], lo, hi *T) bool {
	if n == nil {
		return true
	}
	if lo != nil && n.Value <= *lo {
		return false
	}
	if hi != nil && n.Value >= *hi {
		return false
	}

	return valid(n.Left, lo, &n.Value) && valid(n.Right, &n.Value, hi)
}

// InOrder returns all stored values in ascending order.
// Complexity: O(n)
func (t *Tree[T]) InOrder() []T {
	return traverse.InOrder(t.root)
}

// leftmost returns the minimum node of the subtree rooted at n (non-nil).
func leftmost[T cmp.Ordered](n *core.Node[T]) *core.Node[T] {
	for n.Left != nil {
		n = n.Left
	}

	return n
}
