// Package core declares the Node type, the BinaryTree handle,
// and sentinel errors shared across lvltree.
package core

import (
	"cmp"
	"errors"
)

// Sentinel errors for core tree operations.
var (
	// ErrEmptyTree indicates a value query on a tree with no nodes.
	ErrEmptyTree = errors.New("core: tree is empty")
)

// EmptyHeight is the height of an empty (sub)tree under the edge-counting
// convention: a single node has height 0, no node at all has height -1.
const EmptyHeight = -1

// Node is a single tree node: one value and two optional child links.
//
// Value is the payload; Left and Right are the owned subtree roots, either
// of which may be nil. A Node carries no parent pointer — ownership is
// strictly tree-shaped, one parent (or tree handle) per node, no sharing.
type Node[T cmp.Ordered] struct {
	// Value is the payload stored at this node.
	Value T

	// Left is the root of the left subtree, or nil.
	Left *Node[T]

	// Right is the root of the right subtree, or nil.
	Right *Node[T]
}

// NewNode returns a leaf Node holding v.
func NewNode[T cmp.Ordered](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// BinaryTree is an unordered binary tree whose Insert fills the first
// incomplete level, left to right. Completeness is a policy of insertion,
// not an invariant: trees assembled from raw Nodes may have any shape.
type BinaryTree[T cmp.Ordered] struct {
	root *Node[T]
	size int
}

// New creates an empty BinaryTree.
// Complexity: O(1)
func New[T cmp.Ordered]() *BinaryTree[T] {
	return &BinaryTree[T]{}
}

// Root exposes the root Node for the traversal and builder packages.
// Returns nil for an empty tree. Callers must not re-link the returned
// subtree into another tree.
func (t *BinaryTree[T]) Root() *Node[T] { return t.root }

// Len reports the number of stored values in O(1).
func (t *BinaryTree[T]) Len() int { return t.size }
