package bst

import (
	"fmt"

	"github.com/katalvlaran/lvltree/core"
)

// KthSmallest returns the value at rank k (1-indexed) in ascending order,
// walking inorder with an explicit stack and stopping as soon as the k-th
// value is reached. Ranks outside [1, Len()] yield ErrKOutOfRange — a
// distinct condition, never conflated with a stored value.
// Complexity: O(h + k) time, O(h) stack space.
func (t *Tree[T]) KthSmallest(k int) (T, error) {
	var zero T
	if k < 1 || k > t.size {
		return zero, fmt.Errorf("%w: k=%d with %d stored values", ErrKOutOfRange, k, t.size)
	}

	stack := make([]*core.Node[T], 0)
	seen := 0
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.Left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen++; seen == k {
			return n.Value, nil
		}
		n = n.Right
	}

	// Unreachable while size bookkeeping is accurate.
	return zero, ErrKOutOfRange
}

// LCA returns the lowest common ancestor of a and b: the deepest node
// whose value separates (or equals one of) the two operands. Both values
// must be stored; an absent operand yields ErrValueNotFound rather than
// an arbitrary answer.
// Complexity: O(h) time, O(1) space.
func (t *Tree[T]) LCA(a, b T) (T, error) {
	var zero T
	if !t.Search(a) {
		return zero, fmt.Errorf("%w: %v", ErrValueNotFound, a)
	}
	if !t.Search(b) {
		return zero, fmt.Errorf("%w: %v", ErrValueNotFound, b)
	}

	lo, hi := min(a, b), max(a, b)
	n := t.root
	for {
		switch {
		case hi < n.Value:
			// both operands live in the left subtree
			n = n.Left
		case lo > n.Value:
			// both operands live in the right subtree
			n = n.Right
		default:
			// the paths diverge here (or n holds an operand)
			return n.Value, nil
		}
	}
}
