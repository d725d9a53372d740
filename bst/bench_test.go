package bst_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvltree/bst"
)

// shuffled returns 0..n-1 in a fixed pseudo-random order, so insertions
// build a reasonably bushy (not degenerate) tree.
func shuffled(n int) []int {
	return rand.New(rand.NewSource(42)).Perm(n)
}

func BenchmarkTree_Insert(b *testing.B) {
	const N = 1 << 14
	values := shuffled(N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t := bst.New[int]()
		for _, v := range values {
			t.Insert(v)
		}
	}
}

func BenchmarkTree_Search(b *testing.B) {
	const N = 1 << 14
	t := bst.New[int]()
	for _, v := range shuffled(N) {
		t.Insert(v)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.Search(i % (2 * N))
	}
}

func BenchmarkTree_Delete(b *testing.B) {
	const N = 1 << 12
	values := shuffled(N)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := bst.New[int]()
		for _, v := range values {
			t.Insert(v)
		}
		b.StartTimer()
		for _, v := range values {
			t.Delete(v)
		}
	}
}

func BenchmarkTree_KthSmallest(b *testing.B) {
	const N = 1 << 14
	t := bst.New[int]()
	for _, v := range shuffled(N) {
		t.Insert(v)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = t.KthSmallest(i%N + 1)
	}
}
