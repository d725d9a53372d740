package traverse

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvltree/core"
)

// Walk visits every node of the subtree rooted at root in the given Order,
// invoking visit with each value and its depth. A nil root is a valid,
// empty walk. An error returned by visit aborts the walk immediately and
// is propagated wrapped with the aborting depth.
// Complexity: O(n) time, O(h) call-stack space.
func Walk[T cmp.Ordered](root *core.Node[T], order Order, visit VisitFunc[T]) error {
	if visit == nil {
		return ErrNilVisit
	}
	if order != In && order != Pre && order != Post {
		return fmt.Errorf("%w: %d", ErrUnknownOrder, int(order))
	}

	return walk(root, order, visit, 0)
}

// walk recurses in the requested order, threading the current depth.
func walk[T cmp.Ordered](n *core.Node[T], order Order, visit VisitFunc[T], depth int) error {
	if n == nil {
		return nil
	}

	if order == Pre {
		if err := visit(n.Value, depth); err != nil {
			return fmt.Errorf("traverse: visit at depth %d: %w", depth, err)
		}
	}
	if err := walk(n.Left, order, visit, depth+1); err != nil {
		return err
	}
	if order == In {
		if err := visit(n.Value, depth); err != nil {
			return fmt.Errorf("traverse: visit at depth %d: %w", depth, err)
		}
	}
	if err := walk(n.Right, order, visit, depth+1); err != nil {
		return err
	}
	if order == Post {
		if err := visit(n.Value, depth); err != nil {
			return fmt.Errorf("traverse: visit at depth %d: %w", depth, err)
		}
	}

	return nil
}

// InOrder returns the values of the subtree rooted at root in
// left-node-right order. The result is empty, never nil, for a nil root.
// Complexity: O(n)
func InOrder[T cmp.Ordered](root *core.Node[T]) []T {
	return collect(root, In)
}

// PreOrder returns the values of the subtree rooted at root in
// node-left-right order.
// Complexity: O(n)
func PreOrder[T cmp.Ordered](root *core.Node[T]) []T {
	return collect(root, Pre)
}

// PostOrder returns the values of the subtree rooted at root in
// left-right-node order.
// Complexity: O(n)
func PostOrder[T cmp.Ordered](root *core.Node[T]) []T {
	return collect(root, Post)
}

// collect materializes a walk into a slice. The visit func never fails,
// so the Walk error is impossible by construction.
func collect[T cmp.Ordered](root *core.Node[T], order Order) []T {
	out := make([]T, 0, core.Count(root))
	_ = Walk(root, order, func(v T, _ int) error {
		out = append(out, v)
		return nil
	})

	return out
}
