// Package lvltree is your in-memory playground for building, traversing,
// and analyzing binary trees — from the bare Node up to order statistics
// and shape reconstruction.
//
// 🚀 What is lvltree?
//
//	A small, dependency-light library that brings together:
//		• Core primitives: the Node type and an unordered, level-order-filled BinaryTree
//		• Ordered storage: a classic binary search tree with three-case deletion,
//		  k-th order statistics and lowest-common-ancestor queries
//		• Traversals: inorder (recursive & iterative), preorder, postorder, level-order
//		• Builders: reconstruct a tree from preorder+inorder, grow a height-balanced
//		  BST from a sorted slice
//		• Analysis: balance checking, diameter, structural equality
//
// ✨ Why choose lvltree?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – every operation is a pure function of its inputs
//   - Pure Go – generic over cmp.Ordered, no cgo
//   - Honest contracts – sentinel errors, documented complexity on every operation
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     — Node and the unordered BinaryTree container
//	bst/      — the ordered binary search tree
//	traverse/ — inorder, preorder, postorder, level-order walks
//	builder/  — tree reconstruction, balanced construction, diameter, equality
//
// Quick ASCII example:
//
//	      50
//	     /  \
//	   30    70
//	  /  \  /  \
//	 20 40 60  80
//
//	a BST whose inorder walk yields 20 30 40 50 60 70 80.
//
// Concurrency: a tree instance is exclusively owned by its caller. The
// library takes no locks; wrap the handle in your own mutex if you must
// share it between goroutines.
//
//	go get github.com/katalvlaran/lvltree
package lvltree
