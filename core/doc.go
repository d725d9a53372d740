// Package core defines the central Node type and the unordered BinaryTree
// container — the primitives every other lvltree package builds on.
//
// What
//
//   - Node[T]: one value plus two optional child links (Left, Right).
//     No parent pointer; every algorithm works top-down.
//   - BinaryTree[T]: an unordered container whose Insert fills the first
//     incomplete level, left to right (breadth-first).
//   - Structural queries: Height, Count, IsBalanced.
//   - Value queries: Search, Min, Max — all linear scans, since an
//     unordered tree has no invariant to exploit.
//
// Why
//
//   - Node is the atomic owned unit shared by bst, traverse, and builder.
//   - The level-order container demonstrates completeness as an insertion
//     policy, in contrast to the ordering invariant bst enforces.
//
// Ownership
//
//	A Node is referenced by exactly one parent (or by a tree handle);
//	there is no sharing and no cycles. Replacing a child link releases
//	the subtree beneath it.
//
// Complexity (n = nodes, h = height)
//
//   - Insert:     O(n) time (breadth-first scan), O(n) queue space worst case
//   - Search:     O(n) time, O(h) recursion space
//   - Height:     O(n); an empty tree reports EmptyHeight (-1)
//   - Count:      O(n); Len is the O(1) bookkeeping twin
//   - IsBalanced: O(n) single bottom-up pass with memoized subtree heights
//   - Min/Max:    O(n) full scan
//
// Usage
//
//	t := core.New[int]()
//	t.Insert(1) // becomes the root
//	t.Insert(2) // root.Left
//	t.Insert(3) // root.Right
//	h := t.Height() // 1
//
// Errors
//
//   - ErrEmptyTree — Min/Max on a tree with no nodes.
//
// Concurrency: none. A tree is exclusively owned by its caller; callers
// embedding a tree in a concurrent host must synchronize externally.
package core
