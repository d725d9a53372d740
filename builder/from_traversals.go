package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvltree/core"
)

// FromTraversals reconstructs the unique tree whose preorder and inorder
// walks are the given sequences. Two empty sequences yield a nil root and
// no error. The inputs must be permutations of the same duplicate-free
// value set; violations surface as ErrLengthMismatch, ErrDuplicateValue,
// or ErrSequenceMismatch — never as a silently wrong tree.
// Complexity: O(n) time and space, using an inorder position index.
func FromTraversals[T cmp.Ordered](preorder, inorder []T) (*core.Node[T], error) {
	if len(preorder) != len(inorder) {
		return nil, fmt.Errorf("%w: preorder=%d, inorder=%d", ErrLengthMismatch, len(preorder), len(inorder))
	}

	// Index every inorder position once; a collision is a duplicate.
	pos := make(map[T]int, len(inorder))
	for i, v := range inorder {
		if _, dup := pos[v]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateValue, v)
		}
		pos[v] = i
	}

	rec := &reconstruction[T]{preorder: preorder, pos: pos}
	root, err := rec.build(0, len(inorder))
	if err != nil {
		return nil, err
	}

	return root, nil
}

// reconstruction carries the shared state of the recursive split:
// the preorder sequence consumed left to right, and the inorder index.
type reconstruction[T cmp.Ordered] struct {
	preorder []T
	pos      map[T]int
	next     int // next preorder index to consume
}

// build reconstructs the subtree whose inorder window is [lo, hi).
// The next preorder value is the subtree root; its inorder position
// splits the window into the left and right child windows.
func (r *reconstruction[T]) build(lo, hi int) (*core.Node[T], error) {
	if lo == hi {
		return nil, nil
	}

	v := r.preorder[r.next]
	at, ok := r.pos[v]
	if !ok || at < lo || at >= hi {
		return nil, fmt.Errorf("%w: preorder value %v outside its inorder window", ErrSequenceMismatch, v)
	}
	r.next++

	n := core.NewNode(v)
	var err error
	if n.Left, err = r.build(lo, at); err != nil {
		return nil, err
	}
	if n.Right, err = r.build(at+1, hi); err != nil {
		return nil, err
	}

	return n, nil
}
