package comparisons

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const (
	benchmarkItemCount = 1 << 14
	tRounds            = 16
	tAddN              = 3000
	tAddValRange       = 2000
)

var _R = rand.New(rand.NewSource(0))

func randomValues(n, valRange int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = _R.Intn(valRange)
	}
	return a
}

// google/btree is used as the reference for ascending order.
func TestInOrderMatchesBTree(t *testing.T) {
	for iter := 0; iter < tRounds; iter++ {
		a := randomValues(_R.Intn(tAddN), tAddValRange)
		tree, ref := Trees.New[int, uint](), btree.NewOrderedG[int](8)
		for _, v := range a {
			tree.Add(v)
			ref.ReplaceOrInsert(v)
		}
		want := make([]int, 0, ref.Len())
		ref.Ascend(func(v int) bool {
			want = append(want, v)
			return true
		})
		if got := tree.Values(); !slices.Equal(got, want) {
			t.Errorf("in-order differs from btree: %d vs %d values", len(got), len(want))
		}
		if int(tree.Size()) != ref.Len() {
			t.Errorf("tree size is %d, want %d", tree.Size(), ref.Len())
		}
	}
}

// gods' treeset is used as the reference for set semantics.
func TestSetSemanticsMatchesTreeSet(t *testing.T) {
	for iter := 0; iter < tRounds; iter++ {
		a := randomValues(_R.Intn(tAddN), tAddValRange/4)
		tree, ref := Trees.New[int, uint32](), treeset.NewWithIntComparator()
		for _, v := range a {
			tree.Add(v)
			ref.Add(v)
		}
		got := tree.Values()
		if len(got) != ref.Size() {
			t.Fatalf("tree has %d values, treeset %d", len(got), ref.Size())
		}
		for i, v := range ref.Values() {
			if got[i] != v.(int) {
				t.Errorf("value %d is %v, treeset has %v", i, got[i], v)
			}
		}
	}
}

// haxmap tracks which insertions were new, which must match the growth of Size.
func TestDuplicatesTrackedByHaxMap(t *testing.T) {
	a := randomValues(tAddN, tAddValRange/8)
	tree, seen := Trees.New[int, uint16](), haxmap.New[int, struct{}]()
	for _, v := range a {
		before := tree.Size()
		tree.Add(v)
		_, in := seen.Get(v)
		seen.Set(v, struct{}{})
		if grew := tree.Size() != before; grew == in {
			t.Errorf("adding %v: size grew=%v, already seen=%v", v, grew, in)
		}
		if h, ok := tree.HeightOf(v); !ok || h == 0 {
			t.Errorf("node %v has height %d,%v", v, h, ok)
		}
	}
	if uintptr(tree.Size()) != seen.Len() {
		t.Errorf("tree size is %d, haxmap has %d", tree.Size(), seen.Len())
	}
	if !tree.IsBST() || tree.Corrupt() {
		t.Errorf("bst=%v corrupt=%v", tree.IsBST(), tree.Corrupt())
	}
}

func BenchmarkAddBSTree(b *testing.B) {
	perm := rand.Perm(benchmarkItemCount)
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		t := Trees.New[int, uint]()
		for _, v := range perm {
			t.Add(v)
		}
	}
}

func BenchmarkAddBTree(b *testing.B) {
	perm := rand.Perm(benchmarkItemCount)
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		t := btree.NewOrderedG[int](32)
		for _, v := range perm {
			t.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkAddGodsAVL(b *testing.B) {
	perm := rand.Perm(benchmarkItemCount)
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		t := avltree.NewWithIntComparator()
		for _, v := range perm {
			t.Put(v, nil)
		}
	}
}

func BenchmarkAddGodsRedBlack(b *testing.B) {
	perm := rand.Perm(benchmarkItemCount)
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		t := redblacktree.NewWithIntComparator()
		for _, v := range perm {
			t.Put(v, nil)
		}
	}
}

func BenchmarkAddLLRB(b *testing.B) {
	perm := rand.Perm(benchmarkItemCount)
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		t := llrb.New()
		for _, v := range perm {
			t.ReplaceOrInsert(llrb.Int(v))
		}
	}
}

func BenchmarkInOrderBSTree(b *testing.B) {
	t := Trees.New[int, uint]()
	for _, v := range rand.Perm(benchmarkItemCount) {
		t.Add(v)
	}
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		f := t.InOrder()
		for _, ok := f(); ok; _, ok = f() {
		}
	}
}

func BenchmarkInOrderLLRB(b *testing.B) {
	t := llrb.New()
	for _, v := range rand.Perm(benchmarkItemCount) {
		t.ReplaceOrInsert(llrb.Int(v))
	}
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		t.AscendGreaterOrEqual(llrb.Inf(-1), func(llrb.Item) bool {
			return true
		})
	}
}

func BenchmarkHasBSTree(b *testing.B) {
	t := Trees.New[int, uint]()
	for _, v := range rand.Perm(benchmarkItemCount) {
		t.Add(v)
	}
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if !t.Has(i) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasBTree(b *testing.B) {
	t := btree.NewOrderedG[int](32)
	for _, v := range rand.Perm(benchmarkItemCount) {
		t.ReplaceOrInsert(v)
	}
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if !t.Has(i) {
				b.Fail()
			}
		}
	}
}

// hash maps give the lower bound for membership without any ordering.
func BenchmarkHasHaxMap(b *testing.B) {
	m := haxmap.New[int, struct{}]()
	for _, v := range rand.Perm(benchmarkItemCount) {
		m.Set(v, struct{}{})
	}
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if _, ok := m.Get(i); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasHashMap(b *testing.B) {
	m := hashmap.New[int, struct{}]()
	for _, v := range rand.Perm(benchmarkItemCount) {
		m.Set(v, struct{}{})
	}
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if _, ok := m.Get(i); !ok {
				b.Fail()
			}
		}
	}
}
