package count

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"github.com/npillmayer/bintree"
)

// Tree is a counting tree: a balanced binary tree which keeps track of the
// total number of nodes in each subtree, so that elements can be read,
// inserted and deleted by their in-order index.
//
// A tree created by
//
//	count.Tree[int]{}
//
// is valid and behaves like an empty sequence. Positional operations report
// ErrIndexOutOfBounds for invalid indices; they never panic.
//
//	Operation     |  count.Tree  |  slice
//	--------------+--------------+--------
//	Index         |  O(log n)    |  O(1)
//	Insert        |  O(log n)    |  O(n)
//	Delete        |  O(log n)    |  O(n)
//	Iterate       |  O(n)        |  O(n)
type Tree[T any] struct {
	root *Node[T]
}

// New returns an empty counting tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// Root returns the root node, or nil for an empty tree. Structural mutation
// through the returned node may unbalance the tree; see Node.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// IsEmpty reports whether the tree contains no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of elements in the tree. Time complexity: O(1)
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.root.Size()
}

// Height returns the height of the tree; empty trees and single elements
// have height 0.
func (t *Tree[T]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	return t.root.Height()
}

// indexWalker returns the descent policy shared by all positional
// operations: compare the target index against the in-order position of the
// current node (its left-subtree size plus the count of nodes already
// passed on the way down, tracked in upCount) and branch accordingly.
func indexWalker[T any](index int, upCount *int, found func(*Node[T])) func(*Node[T]) bintree.WalkAction {
	return func(n *Node[T]) bintree.WalkAction {
		cur := int(n.lcount()) + *upCount
		switch {
		case index < cur:
			return bintree.Left
		case index == cur:
			if found != nil {
				found(n)
			}
			return bintree.Stop
		default:
			*upCount = cur + 1
			return bintree.Right
		}
	}
}

// Get returns the element at the given index, or ErrIndexOutOfBounds.
// Time complexity: O(log(n))
func (t *Tree[T]) Get(index int) (T, error) {
	node, err := t.locate(index)
	if err != nil {
		var none T
		return none, err
	}
	return node.val, nil
}

// GetMut returns a mutable reference to the element at the given index, or
// ErrIndexOutOfBounds. Mutating the referenced payload does not change the
// tree structure. Time complexity: O(log(n))
func (t *Tree[T]) GetMut(index int) (*T, error) {
	node, err := t.locate(index)
	if err != nil {
		return nil, err
	}
	return &node.val, nil
}

// Set replaces the element at the given index, returning
// ErrIndexOutOfBounds for invalid indices. Time complexity: O(log(n))
func (t *Tree[T]) Set(index int, value T) error {
	node, err := t.locate(index)
	if err != nil {
		return err
	}
	node.val = value
	return nil
}

func (t *Tree[T]) locate(index int) (*Node[T], error) {
	if t == nil || index < 0 || index >= t.Len() {
		return nil, ErrIndexOutOfBounds
	}
	upCount := 0
	node := bintree.Walk(t.root, indexWalker[T](index, &upCount, nil))
	assert(node != nil, "in-bounds index must resolve to a node")
	return node, nil
}

// Insert inserts an element at the given index, shifting the elements at
// index and above one position up. index == Len() appends. Time
// complexity: O(log(n))
func (t *Tree[T]) Insert(index int, value T) error {
	length := t.Len()
	switch {
	case index < 0 || index > length:
		return ErrIndexOutOfBounds
	case index == 0:
		t.PushFront(value)
	case index == length:
		t.PushBack(value)
	default:
		node := newNode(value)
		upCount := 0
		t.root = bintree.WalkReshape(t.root,
			indexWalker[T](index, &upCount, nil),
			func(at *Node[T]) *Node[T] {
				return bintree.InsertBefore(at, node, rebalanceAfter[T])
			},
			rebalanceAfter[T])
	}
	return nil
}

// PushFront prepends an element at the beginning.
func (t *Tree[T]) PushFront(value T) {
	node := newNode(value)
	if t.root == nil {
		t.root = node
		return
	}
	t.root = bintree.WalkReshape(t.root,
		func(*Node[T]) bintree.WalkAction { return bintree.Left },
		func(leftmost *Node[T]) *Node[T] {
			leftmost.InsertLeft(node)
			return leftmost
		},
		rebalanceAfter[T])
}

// PushBack appends an element at the end.
func (t *Tree[T]) PushBack(value T) {
	node := newNode(value)
	if t.root == nil {
		t.root = node
		return
	}
	t.root = bintree.WalkReshape(t.root,
		func(*Node[T]) bintree.WalkAction { return bintree.Right },
		func(rightmost *Node[T]) *Node[T] {
			rightmost.InsertRight(node)
			return rightmost
		},
		rebalanceAfter[T])
}

// Remove removes and returns the element at the given index, or
// ErrIndexOutOfBounds. Time complexity: O(log(n))
func (t *Tree[T]) Remove(index int) (T, error) {
	var none T
	length := t.Len()
	switch {
	case index < 0 || index >= length:
		return none, ErrIndexOutOfBounds
	case index == 0:
		value, _ := t.PopFront()
		return value, nil
	case index == length-1:
		value, _ := t.PopBack()
		return value, nil
	}
	upCount := 0
	var removed *Node[T]
	t.root, removed = bintree.WalkExtract(t.root,
		indexWalker[T](index, &upCount, nil),
		func(at *Node[T]) (*Node[T], *Node[T]) {
			// a leaf yields no replacement, which removes it outright
			replacement, _ := bintree.TryRemove(at, rebalanceAfter[T])
			return replacement, at
		},
		rebalanceAfter[T])
	assert(removed != nil, "in-bounds index must extract a node")
	return removed.val, nil
}

// PopFront removes and returns the first element, or false if the tree is
// empty.
func (t *Tree[T]) PopFront() (T, bool) {
	var none T
	if t.IsEmpty() {
		return none, false
	}
	var extracted *Node[T]
	t.root, extracted = bintree.WalkExtract(t.root,
		func(*Node[T]) bintree.WalkAction { return bintree.Left },
		func(leftmost *Node[T]) (*Node[T], *Node[T]) {
			return leftmost.DetachRight(), leftmost
		},
		rebalanceAfter[T])
	return extracted.val, true
}

// PopBack removes and returns the last element, or false if the tree is
// empty.
func (t *Tree[T]) PopBack() (T, bool) {
	var none T
	if t.IsEmpty() {
		return none, false
	}
	var extracted *Node[T]
	t.root, extracted = bintree.WalkExtract(t.root,
		func(*Node[T]) bintree.WalkAction { return bintree.Right },
		func(rightmost *Node[T]) (*Node[T], *Node[T]) {
			return rightmost.DetachLeft(), rightmost
		},
		rebalanceAfter[T])
	return extracted.val, true
}

// Clear removes all elements. The tree is dismantled iteratively, so
// clearing a degenerate, very deep tree cannot overflow the call stack.
func (t *Tree[T]) Clear() {
	root := t.root
	t.root = nil
	if root == nil {
		return
	}
	n := 0
	for range bintree.Drain[T](root) {
		n++
	}
	tracer().Debugf("count tree cleared, dropped %d elements", n)
}
