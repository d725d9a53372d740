// Package builder constructs trees from raw sequences and analyzes whole
// trees: reconstruction from matched preorder+inorder traversals, balanced
// construction from a sorted slice, diameter, and structural equality.
//
// What
//
//   - FromTraversals(preorder, inorder): the preorder head is the subtree
//     root; its position in inorder splits both sequences into left/right
//     halves of known length, recursed on each side. Inputs must be
//     permutations of the same duplicate-free value set — duplicates make
//     the split ambiguous and are rejected, never silently accepted.
//   - FromSorted(sorted): picks the lower-middle element as each subtree
//     root, producing a tree of ⌈log2(n+1)⌉ levels — height-balanced by
//     construction. Input must be strictly increasing.
//   - Diameter(root): longest path in edges between any two nodes, not
//     necessarily through the root; one post-order pass tracking subtree
//     heights and the best left+right span.
//   - Equal(a, b): structural and value equality — both nil, or both
//     non-nil with equal values and recursively equal children.
//
// Why
//
//   - Reconstruction closes the loop with the traverse package: for any
//     tree T with unique values, FromTraversals(PreOrder(T), InOrder(T))
//     rebuilds a tree Equal to T.
//
// Complexity (n = nodes)
//
//   - FromTraversals: O(n) time with an inorder position index, O(n) space.
//   - FromSorted:     O(n) time after the O(n) monotonicity check.
//   - Diameter:       O(n) time, O(h) recursion space.
//   - Equal:          O(min(|a|,|b|)) time.
//
// Usage
//
//	root, err := builder.FromTraversals([]int{50, 30, 20, 40}, []int{20, 30, 40, 50})
//	if err != nil {
//	    // ErrLengthMismatch, ErrDuplicateValue, or ErrSequenceMismatch
//	}
//	d := builder.Diameter(root)
//
// Errors
//
//   - ErrLengthMismatch   — preorder and inorder lengths differ.
//   - ErrDuplicateValue   — a value occurs twice in inorder.
//   - ErrSequenceMismatch — the sequences are not traversals of one tree.
//   - ErrNotSorted        — FromSorted input not strictly increasing.
package builder
