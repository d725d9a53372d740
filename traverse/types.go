// Package traverse declares the Order discipline, the VisitFunc hook,
// and sentinel errors for tree walks.
package traverse

import (
	"cmp"
	"errors"
)

// Sentinel errors for traversal execution.
var (
	// ErrNilVisit is returned when Walk receives a nil VisitFunc.
	ErrNilVisit = errors.New("traverse: visit func is nil")

	// ErrUnknownOrder is returned when Walk receives an Order
	// outside In, Pre, Post.
	ErrUnknownOrder = errors.New("traverse: unknown order")
)

// Order selects the visiting discipline for Walk.
type Order int

const (
	// In visits left subtree, node, right subtree.
	// On a BST, values arrive in ascending sorted order.
	In Order = iota

	// Pre visits node, left subtree, right subtree.
	Pre

	// Post visits left subtree, right subtree, node.
	Post
)

// String returns the canonical name of the Order.
func (o Order) String() string {
	switch o {
	case In:
		return "inorder"
	case Pre:
		return "preorder"
	case Post:
		return "postorder"
	default:
		return "unknown"
	}
}

// VisitFunc is invoked once per node with the node's value and its depth
// (edges from the root; the root is at depth 0). Returning an error aborts
// the walk; Walk propagates it wrapped.
type VisitFunc[T cmp.Ordered] func(value T, depth int) error
