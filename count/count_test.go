package count

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// keep is a no-op ascent callback for hand-built fixtures.
func keep[T any](n *Node[T], _ bintree.WalkAction) *Node[T] { return n }

// testNodes builds the sequence 8, 12, 7, 5 by hand.
func testNodes() *Node[int] {
	cn := newNode(7)
	cn = bintree.InsertBefore(cn, newNode(8), keep[int])
	cn = bintree.InsertBefore(cn, newNode(12), keep[int])
	cn.InsertRight(newNode(5))
	return cn
}

func get(t *testing.T, ct *Tree[int], index int) int {
	t.Helper()
	v, err := ct.Get(index)
	if err != nil {
		t.Fatalf("get(%d) failed: %v", index, err)
	}
	return v
}

func TestCustomNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	ct := &Tree[int]{root: testNodes()}
	for i, want := range []int{8, 12, 7, 5} {
		if v := get(t, ct, i); v != want {
			t.Errorf("get(%d) = %d, want %d", i, v, want)
		}
	}
	if _, err := ct.Get(4); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("get(4) should be out of bounds, got %v", err)
	}
	ref, err := ct.GetMut(3)
	if err != nil {
		t.Fatalf("get-mut(3) failed: %v", err)
	}
	*ref = 100
	if v := get(t, ct, 3); v != 100 {
		t.Errorf("mutation through get-mut not visible, get(3) = %d", v)
	}
}

func TestCounting(t *testing.T) {
	cn := testNodes()
	if cn.lcount() != 2 {
		t.Errorf("lcount = %d, want 2", cn.lcount())
	}
	if cn.rcount() != 1 {
		t.Errorf("rcount = %d, want 1", cn.rcount())
	}
	if cn.count != 4 {
		t.Errorf("count = %d, want 4", cn.count)
	}
	if cn.height != 2 {
		t.Errorf("height = %d, want 2", cn.height)
	}
}

func TestRebalance(t *testing.T) {
	cn := testNodes()
	if bf := cn.balanceFactor(); bf != 1 {
		t.Fatalf("balance factor = %d, want 1", bf)
	}
	cn.DetachRight()
	cn = cn.rebalance()
	if bf := cn.balanceFactor(); bf != 0 {
		t.Errorf("balance factor after rebalance = %d, want 0", bf)
	}
	if lvl := bintree.ComputeLevel(cn, 1); !lvl.Balanced || lvl.Value != 2 {
		t.Errorf("level after rebalance = %+v, want balanced 2", lvl)
	}
	ct := &Tree[int]{root: cn}
	for i, want := range []int{8, 12, 7} {
		if v := get(t, ct, i); v != want {
			t.Errorf("get(%d) = %d, want %d", i, v, want)
		}
	}
	if _, err := ct.Get(3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("get(3) should be out of bounds, got %v", err)
	}
}

func TestInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	ct := New[int]()
	if _, err := ct.Get(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("get(0) on empty tree should be out of bounds, got %v", err)
	}
	for _, v := range []int{2, 3, 4, 5, 6} {
		if err := ct.Insert(0, v); err != nil {
			t.Fatalf("insert(0, %d) failed: %v", v, err)
		}
	}
	for i, want := range []int{6, 5, 4} {
		if v := get(t, ct, i); v != want {
			t.Errorf("get(%d) = %d, want %d", i, v, want)
		}
	}
	if err := ct.Insert(0, 7); err != nil {
		t.Fatalf("insert(0, 7) failed: %v", err)
	}
	if v := get(t, ct, 4); v != 3 {
		t.Errorf("get(4) = %d, want 3", v)
	}
	if v := get(t, ct, 5); v != 2 {
		t.Errorf("get(5) = %d, want 2", v)
	}
	if h := ct.Height(); h != 2 {
		t.Errorf("height = %d, want 2", h)
	}
	if lvl := bintree.ComputeLevel(ct.Root(), 1); !lvl.Balanced || lvl.Value != 3 {
		t.Errorf("level = %+v, want balanced 3", lvl)
	}
	if err := ct.Insert(6, 1); err != nil {
		t.Fatalf("insert(6, 1) failed: %v", err)
	}
	if v := get(t, ct, 6); v != 1 {
		t.Errorf("get(6) = %d, want 1", v)
	}
	if h := ct.Height(); h != 3 {
		t.Errorf("height = %d, want 3", h)
	}
	if lvl := bintree.ComputeLevel(ct.Root(), 1); !lvl.Balanced || lvl.Value != 4 {
		t.Errorf("level = %+v, want balanced 4", lvl)
	}
	if err := ct.Insert(9, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("insert(9, 0) should be out of bounds, got %v", err)
	}
	if err := ct.Check(); err != nil {
		t.Error(err)
	}
}

func rangeTree(n int) *Tree[int] {
	return Collect(func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	})
}

func TestCollect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	ct := rangeTree(63)
	if h := ct.Height(); h != 5 {
		t.Errorf("height of 63-element tree = %d, want 5", h)
	}
	if lvl := bintree.ComputeLevel(ct.Root(), 0); !lvl.Balanced || lvl.Value != 6 {
		t.Errorf("level = %+v, want perfectly balanced 6", lvl)
	}
	ct = rangeTree(94)
	if bf := ct.Root().balanceFactor(); bf != -1 {
		t.Errorf("root balance factor = %d, want -1", bf)
	}
	if h := ct.Height(); h != 6 {
		t.Errorf("height of 94-element tree = %d, want 6", h)
	}
	if lvl := bintree.ComputeLevel(ct.Root(), 1); !lvl.Balanced || lvl.Value != 7 {
		t.Errorf("level = %+v, want balanced 7", lvl)
	}
	for i := 0; i < 94; i++ {
		if v := get(t, ct, i); v != i {
			t.Fatalf("get(%d) = %d after collect", i, v)
		}
	}
	if err := ct.Check(); err != nil {
		t.Error(err)
	}
}

func TestRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	ct := rangeTree(94)
	for i := 0; i < 20; i++ {
		v, err := ct.Remove(64)
		if err != nil {
			t.Fatalf("remove(64) failed: %v", err)
		}
		if v != 64+i {
			t.Fatalf("remove(64) = %d, want %d", v, 64+i)
		}
		if lvl := bintree.ComputeLevel(ct.Root(), 1); !lvl.Balanced {
			t.Fatalf("tree unbalanced after removing %d", v)
		}
		if err := ct.Check(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := ct.Remove(94); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("remove(94) should be out of bounds, got %v", err)
	}
}

func TestSet(t *testing.T) {
	ct := FromSlice([]int{1, 2, 3})
	if err := ct.Set(1, 20); err != nil {
		t.Fatalf("set(1) failed: %v", err)
	}
	if v := get(t, ct, 1); v != 20 {
		t.Errorf("get(1) = %d after set, want 20", v)
	}
	if err := ct.Set(3, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("set(3) should be out of bounds, got %v", err)
	}
}

func TestPops(t *testing.T) {
	ct := FromSlice([]int{1, 2, 3, 4, 5})
	if v, ok := ct.PopFront(); !ok || v != 1 {
		t.Errorf("pop-front = %d, %v, want 1, true", v, ok)
	}
	if v, ok := ct.PopBack(); !ok || v != 5 {
		t.Errorf("pop-back = %d, %v, want 5, true", v, ok)
	}
	if ct.Len() != 3 {
		t.Errorf("len = %d after pops, want 3", ct.Len())
	}
	if err := ct.Check(); err != nil {
		t.Error(err)
	}
	ct.Clear()
	if !ct.IsEmpty() {
		t.Error("tree not empty after clear")
	}
	if _, ok := ct.PopFront(); ok {
		t.Error("pop-front on empty tree should report false")
	}
	if _, ok := ct.PopBack(); ok {
		t.Error("pop-back on empty tree should report false")
	}
}

func TestPush(t *testing.T) {
	ct := New[int]()
	for i := 5; i >= 1; i-- {
		ct.PushFront(i)
	}
	for i := 6; i <= 10; i++ {
		ct.PushBack(i)
	}
	for i := 0; i < 10; i++ {
		if v := get(t, ct, i); v != i+1 {
			t.Fatalf("get(%d) = %d, want %d", i, v, i+1)
		}
	}
	if err := ct.Check(); err != nil {
		t.Error(err)
	}
}

func TestIterate(t *testing.T) {
	ct := FromSlice([]int{10, 20, 30, 40})
	var got []int
	for v := range ct.All() {
		got = append(got, v)
	}
	if len(got) != 4 || got[0] != 10 || got[3] != 40 {
		t.Errorf("all() = %v", got)
	}
	err := ct.Each(func(v, i int) error {
		if v != (i+1)*10 {
			t.Errorf("each: value %d at index %d", v, i)
		}
		return nil
	})
	if err != nil {
		t.Error(err)
	}
	got = got[:0]
	for v := range ct.Drain() {
		got = append(got, v)
	}
	if len(got) != 4 || !ct.IsEmpty() {
		t.Errorf("drain left tree in state len=%d, drained %v", ct.Len(), got)
	}
}

func TestEachStopsOnError(t *testing.T) {
	ct := FromSlice([]int{1, 2, 3})
	boom := errors.New("boom")
	calls := 0
	err := ct.Each(func(v, i int) error {
		calls++
		if i == 1 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("each should propagate the callback error, got %v", err)
	}
	if calls != 2 {
		t.Errorf("each made %d calls before stopping, want 2", calls)
	}
}

func TestDump(t *testing.T) {
	ct := FromSlice([]int{1, 2, 3, 4, 5})
	var sb strings.Builder
	ct.Dump(&sb, 40)
	out := sb.String()
	if !strings.Contains(out, "5") || !strings.Contains(out, "1") {
		t.Errorf("dump output misses elements:\n%s", out)
	}
	if strings.Index(out, "5") > strings.Index(out, "1") {
		t.Errorf("dump should print rightmost element first:\n%s", out)
	}
}
