package bintree

import (
	"bytes"
	"strings"
	"testing"
)

func TestInOrderIteration(t *testing.T) {
	root := tn(7)
	l := tn(8)
	l.InsertRight(tn(12))
	root.InsertLeft(l)
	root.InsertRight(tn(5))

	if got := inorder(root); !equalInts(got, []int{8, 12, 7, 5}) {
		t.Errorf("expected [8 12 7 5], got %v", got)
	}
}

func TestInOrderEarlyStop(t *testing.T) {
	root := testTree()
	var got []int
	for v := range InOrder[int](root) {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	if !equalInts(got, []int{10, 20}) {
		t.Errorf("expected [10 20], got %v", got)
	}
}

func TestDrainDismantles(t *testing.T) {
	root := testTree()
	var got []int
	for v := range Drain[int](root) {
		got = append(got, v)
	}
	if !equalInts(got, []int{10, 20, 25, 30}) {
		t.Errorf("expected [10 20 25 30], got %v", got)
	}
	if root.left != nil || root.right != nil {
		t.Errorf("drained tree must be decomposed")
	}
}

func TestDrainDeepSpine(t *testing.T) {
	// 200k nodes chained as a pure left spine; draining must not recurse.
	node := tn(20)
	for i := 0; i < 200000; i++ {
		parent := tn(20)
		parent.InsertLeft(node)
		node = parent
	}
	count := 0
	for range Drain[int](node) {
		count++
	}
	if count != 200001 {
		t.Errorf("expected 200001 drained values, got %d", count)
	}
}

func TestDotOutput(t *testing.T) {
	root := testTree()
	var buf bytes.Buffer
	Dot[int](root, &buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("expected DOT digraph preamble, got %q", out)
	}
	if !strings.Contains(out, "label=\"25\"") {
		t.Errorf("expected node label for 25 in DOT output")
	}
	if strings.Count(out, "->") < 4 {
		t.Errorf("expected at least 4 edges in DOT output:\n%s", out)
	}
}
