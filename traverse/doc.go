// Package traverse provides the depth-first and breadth-first orderings
// over a tree of core.Node, as eagerly materialized sequences and as a
// visitor-driven Walk.
//
// What
//
//   - InOrder (left, node, right): on a BST this yields values in
//     ascending sorted order — a property worth testing directly.
//   - PreOrder (node, left, right): together with InOrder, sufficient to
//     reconstruct the exact tree shape (see builder.FromTraversals).
//   - PostOrder (left, right, node): safe bottom-up aggregation order.
//   - InOrderIterative: explicit-stack equivalent of InOrder; produces
//     the identical sequence for any tree without call-stack recursion.
//   - LevelOrder: breadth-first, one slice of values per depth, computed
//     via a FIFO queue seeded with the root.
//   - Walk: runs a VisitFunc over every node in the chosen Order; a
//     returned error aborts the walk and is propagated wrapped.
//
// Why
//
//   - Traversal is the read path of every tree algorithm in lvltree:
//     sortedness checks, order statistics, reconstruction, equality.
//
// Determinism
//
//	Every function is a pure function of the tree snapshot it is given.
//	Traversal assumes the tree is not mutated during iteration; the
//	output over an unmutated tree is fully reproducible.
//
// Complexity (n = nodes, h = height)
//
//   - All traversals: O(n) time.
//   - Recursive walks: O(h) call-stack space.
//   - InOrderIterative: O(h) explicit-stack space — prefer it when the
//     height is unbounded or untrusted (degenerate trees recurse O(n) deep).
//   - LevelOrder: O(n) queue space worst case (widest level).
//
// Usage
//
//	seq := traverse.InOrder(t.Root())
//	levels := traverse.LevelOrder(t.Root())
//
//	err := traverse.Walk(t.Root(), traverse.Pre, func(v int, depth int) error {
//	    if depth > 10 {
//	        return errTooDeep // aborts the walk
//	    }
//	    return nil
//	})
//
// Errors
//
//   - ErrNilVisit     — Walk called with a nil VisitFunc.
//   - ErrUnknownOrder — Walk called with an Order outside In/Pre/Post.
//   - Wrapped VisitFunc errors, annotated with the aborting depth.
package traverse
