// Package builder sentinel errors. Callers branch with errors.Is;
// constructors attach context via %w wrapping, never by mutating these.
package builder

import "errors"

var (
	// ErrLengthMismatch indicates preorder and inorder have different lengths,
	// so they cannot be traversals of one tree.
	ErrLengthMismatch = errors.New("builder: preorder and inorder lengths differ")

	// ErrDuplicateValue indicates a value occurs more than once in the input.
	// Duplicates make the inorder split ambiguous and are unsupported.
	ErrDuplicateValue = errors.New("builder: duplicate values are not supported")

	// ErrSequenceMismatch indicates the two sequences disagree: some preorder
	// value falls outside the inorder window it must occupy.
	ErrSequenceMismatch = errors.New("builder: preorder and inorder are not traversals of one tree")

	// ErrNotSorted indicates FromSorted input that is not strictly increasing
	// (out-of-order values or duplicates).
	ErrNotSorted = errors.New("builder: input must be strictly increasing")
)
