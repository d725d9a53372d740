package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvltree/builder"
	"github.com/katalvlaran/lvltree/traverse"
)

// ExampleFromTraversals reconstructs a tree from its preorder and inorder
// walks, then proves the round trip by re-deriving both sequences.
func ExampleFromTraversals() {
	pre := []int{50, 30, 20, 40, 70}
	in := []int{20, 30, 40, 50, 70}

	root, err := builder.FromTraversals(pre, in)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("root:    ", root.Value)
	fmt.Println("preorder:", traverse.PreOrder(root))
	fmt.Println("inorder: ", traverse.InOrder(root))
	// Output:
	// root:     50
	// preorder: [50 30 20 40 70]
	// inorder:  [20 30 40 50 70]
}

// ExampleFromSorted turns a sorted slice into a height-balanced tree.
func ExampleFromSorted() {
	root, err := builder.FromSorted([]int{1, 2, 3, 4, 5, 6, 7})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for depth, level := range traverse.LevelOrder(root) {
		fmt.Println(depth, level)
	}
	// Output:
	// 0 [4]
	// 1 [2 6]
	// 2 [1 3 5 7]
}

// ExampleDiameter measures the longest node-to-node path in edges.
func ExampleDiameter() {
	root, _ := builder.FromSorted([]int{1, 2, 3, 4, 5, 6, 7})
	fmt.Println("diameter:", builder.Diameter(root))
	// Output:
	// diameter: 4
}
