// Package bst declares the Tree handle and sentinel errors.
package bst

import (
	"cmp"
	"errors"

	"github.com/katalvlaran/lvltree/core"
)

// Sentinel errors for BST operations.
var (
	// ErrEmptyTree indicates a value query on a tree with no nodes.
	ErrEmptyTree = errors.New("bst: tree is empty")

	// ErrKOutOfRange indicates KthSmallest was asked for a rank outside
	// [1, Len()]. Distinct from any stored value by construction.
	ErrKOutOfRange = errors.New("bst: k out of range")

	// ErrValueNotFound indicates an LCA operand is not stored in the tree.
	ErrValueNotFound = errors.New("bst: value not found")
)

// Tree is a binary search tree handle owning an optional root Node.
// Created empty; Insert and Delete may replace the root reference itself
// (deleting the last value yields an empty tree again).
//
// Invariant: for every node, left-subtree values < node value <
// right-subtree values. Duplicates are never stored.
type Tree[T cmp.Ordered] struct {
	root *core.Node[T]
	size int
}

// New creates an empty binary search tree.
// Complexity: O(1)
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Len reports the number of stored values in O(1).
func (t *Tree[T]) Len() int { return t.size }

// Root exposes the root Node for the traversal and builder packages.
// Returns nil for an empty tree. Callers must not mutate the returned
// subtree; ordered behavior is undefined afterwards.
func (t *Tree[T]) Root() *core.Node[T] { return t.root }
