package bst

import (
	"testing"

	"github.com/katalvlaran/lvltree/core"
)

// White-box tests: IsValid must reject trees that Insert can never build,
// so the broken shapes are assembled from raw Nodes here.

func TestIsValid_GloballyBrokenLocallyOrdered(t *testing.T) {
	// Each parent/child pair is ordered, but 5 sits in the root's right
	// subtree while being smaller than the root:
	//
	//	  10
	//	    \
	//	     15
	//	    /
	//	   5   ← locally fine (5 < 15), globally broken (5 < 10)
	root := core.NewNode(10)
	root.Right = core.NewNode(15)
	root.Right.Left = core.NewNode(5)

	tree := &Tree[int]{root: root, size: 3}
	if tree.IsValid() {
		t.Error("IsValid accepted a right-left grandchild smaller than the root")
	}
}

func TestIsValid_LeftSideViolation(t *testing.T) {
	//	   10
	//	  /
	//	 4
	//	  \
	//	   12  ← 12 > 10 inside the left subtree
	root := core.NewNode(10)
	root.Left = core.NewNode(4)
	root.Left.Right = core.NewNode(12)

	tree := &Tree[int]{root: root, size: 3}
	if tree.IsValid() {
		t.Error("IsValid accepted a left-right grandchild larger than the root")
	}
}

func TestIsValid_EqualValueViolation(t *testing.T) {
	// The invariant is strict: equal values are never valid.
	root := core.NewNode(7)
	root.Left = core.NewNode(7)

	tree := &Tree[int]{root: root, size: 2}
	if tree.IsValid() {
		t.Error("IsValid accepted a duplicate value")
	}
}

func TestIsValid_ProperTree(t *testing.T) {
	root := core.NewNode(10)
	root.Left = core.NewNode(4)
	root.Left.Right = core.NewNode(9)
	root.Right = core.NewNode(15)
	root.Right.Left = core.NewNode(11)

	tree := &Tree[int]{root: root, size: 5}
	if !tree.IsValid() {
		t.Error("IsValid rejected a correctly ordered tree")
	}
}
