package bintree

import "testing"

func TestComputeLevel(t *testing.T) {
	root := testTree()
	level := ComputeLevel(root, 1)
	if !level.Balanced || level.Value != 3 {
		t.Errorf("expected balanced level 3, got %+v", level)
	}
}

func TestComputeLevelImbalance(t *testing.T) {
	// a pure right spine of 4 nodes is imbalanced for tolerance 1
	root := tn(1)
	cur := root
	for i := 2; i <= 4; i++ {
		next := tn(i)
		cur.InsertRight(next)
		cur = next
	}
	level := ComputeLevel(root, 1)
	if level.Balanced || level.Value != 4 {
		t.Errorf("expected imbalanced level 4, got %+v", level)
	}
	var none *testNode
	empty := ComputeLevel(none, 1)
	if !empty.Balanced || empty.Value != 0 {
		t.Errorf("expected empty subtree to be balanced at level 0, got %+v", empty)
	}
}
