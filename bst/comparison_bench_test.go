package bst_test

import (
	"testing"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	gbtree "github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/katalvlaran/lvltree/bst"
)

// Comparison benchmarks against the usual ordered-container suspects.
// The self-balancing trees are expected to win on skewed workloads; the
// point is to keep an honest baseline for the unbalanced BST.

const cmpN = 1 << 14

func BenchmarkOrderedInsert(b *testing.B) {
	values := shuffled(cmpN)

	b.Run("lvltree-bst", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			t := bst.New[int]()
			for _, v := range values {
				t.Insert(v)
			}
		}
	})

	b.Run("google-btree", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			t := gbtree.NewOrderedG[int](32)
			for _, v := range values {
				t.ReplaceOrInsert(v)
			}
		}
	})

	b.Run("gollrb", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			t := llrb.New()
			for _, v := range values {
				t.ReplaceOrInsert(llrb.Int(v))
			}
		}
	})

	b.Run("gods-redblack", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			t := rbt.NewWithIntComparator()
			for _, v := range values {
				t.Put(v, nil)
			}
		}
	})
}

func BenchmarkOrderedSearch(b *testing.B) {
	values := shuffled(cmpN)

	ours := bst.New[int]()
	gb := gbtree.NewOrderedG[int](32)
	ll := llrb.New()
	rb := rbt.NewWithIntComparator()
	for _, v := range values {
		ours.Insert(v)
		gb.ReplaceOrInsert(v)
		ll.ReplaceOrInsert(llrb.Int(v))
		rb.Put(v, nil)
	}

	b.Run("lvltree-bst", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = ours.Search(i % (2 * cmpN))
		}
	})

	b.Run("google-btree", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = gb.Has(i % (2 * cmpN))
		}
	})

	b.Run("gollrb", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = ll.Has(llrb.Int(i % (2 * cmpN)))
		}
	})

	b.Run("gods-redblack", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = rb.Get(i % (2 * cmpN))
		}
	})
}

func BenchmarkOrderedDelete(b *testing.B) {
	values := shuffled(cmpN)

	b.Run("lvltree-bst", func(b *testing.B) {
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
	})

	b.Run("google-btree", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			t := gbtree.NewOrderedG[int](32)
			for _, v := range values {
				t.ReplaceOrInsert(v)
			}
			b.StartTimer()
			for _, v := range values {
				_, _ = t.Delete(v)
			}
		}
	})

	b.Run("gollrb", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			t := llrb.New()
			for _, v := range values {
				t.ReplaceOrInsert(llrb.Int(v))
			}
			b.StartTimer()
			for _, v := range values {
				_ = t.Delete(llrb.Int(v))
			}
		}
	})

	b.Run("gods-redblack", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			t := rbt.NewWithIntComparator()
			for _, v := range values {
				t.Put(v, nil)
			}
			b.StartTimer()
			for _, v := range values {
				t.Remove(v)
			}
		}
	})
}
