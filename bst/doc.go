// Package bst implements a classic binary search tree over core.Node:
// ordered insert, search, three-case delete, min/max, validity checking,
// k-th order statistics, and lowest-common-ancestor queries.
//
// What
//
//   - Tree[T]: an ordered container maintaining the invariant that, at
//     every node, all left-subtree values are strictly less than the
//     node's value and all right-subtree values strictly greater.
//   - No duplicates: inserting a stored value is a silent no-op. This is
//     a deliberate policy, not an omission.
//   - Delete reproduces the three structural cases exactly:
//     leaf → detach; one child → splice; two children → copy the in-order
//     successor's value into the node, then delete that successor from the
//     right subtree. The copy-then-recurse strategy keeps the invariant
//     trivially satisfied without any rebalancing.
//   - IsValid re-checks the invariant with open-interval bounds propagated
//     from the root, so a tree that is locally ordered but globally broken
//     (a right-left grandchild smaller than the root) is rejected.
//   - KthSmallest walks inorder with an early-stop counter; LCA descends
//     by ordering in O(h).
//
// Why
//
//   - Ordered descent turns search, min, max, and ancestor queries from
//     the O(n) scans of core.BinaryTree into O(h) walks.
//
// Complexity (n = nodes, h = height; h = O(log n) expected, O(n) worst)
//
//   - Insert/Search/Delete: O(h) time, O(h) recursion space for the
//     recursive paths, O(1) extra for the iterative ones.
//   - Min/Max:              O(h) time, O(1) space (iterative descent).
//   - IsValid:              O(n).
//   - KthSmallest:          O(h + k) time, stopped early.
//   - LCA:                  O(h) time after membership validation.
//
// Usage
//
//	t := bst.New[int]()
//	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
//	    t.Insert(v)
//	}
//	t.InOrder()          // [20 30 40 50 60 70 80]
//	v, _ := t.KthSmallest(3) // 40
//	a, _ := t.LCA(20, 40)    // 30
//	t.Delete(30)             // leaf/one-child/two-children handled uniformly
//
// Errors
//
//   - ErrEmptyTree     — Min/Max on an empty tree.
//   - ErrKOutOfRange   — KthSmallest with k outside [1, Len()].
//   - ErrValueNotFound — LCA operand absent from the tree.
//
// Delete of an absent value and Insert of a duplicate are no-ops by
// contract, reported through the boolean return, never as errors.
//
// Concurrency: none. Single-writer, exclusively-owned handles; wrap the
// tree in your own mutex if a concurrent host shares it.
package bst
