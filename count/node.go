package count

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"github.com/npillmayer/bintree"
)

// Node is a node of a count.Tree.
//
// Node satisfies the bintree capability contracts, so all generic walk and
// reshape algorithms apply to it. The structural methods keep the per-node
// bookkeeping (subtree size and height) intact, but they do not rebalance:
// calling them directly on nodes of a live tree may make it imbalanced.
// Balanced mutation goes through the Tree operations, which repair balance
// in their reshape callbacks.
type Node[T any] struct {
	val         T
	left, right *Node[T]
	count       uint32
	height      uint16
}

func newNode[T any](value T) *Node[T] {
	return &Node[T]{val: value, count: 1}
}

// Size returns the number of nodes in the subtree rooted at n, in O(1).
func (n *Node[T]) Size() int {
	if n == nil {
		return 0
	}
	return int(n.count)
}

// Height returns the height of the subtree rooted at n; a single node has
// height 0.
func (n *Node[T]) Height() int {
	return int(n.height)
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] { return n.right }

// Value returns the payload of this node.
func (n *Node[T]) Value() T { return n.val }

// ValueRef grants mutable access to the payload.
func (n *Node[T]) ValueRef() *T { return &n.val }

// DetachLeft removes and returns the left subtree.
func (n *Node[T]) DetachLeft() *Node[T] {
	l := n.left
	n.left = nil
	n.updateStats()
	return l
}

// DetachRight removes and returns the right subtree.
func (n *Node[T]) DetachRight() *Node[T] {
	r := n.right
	n.right = nil
	n.updateStats()
	return r
}

// InsertLeft replaces the left subtree with sub and returns the old one.
func (n *Node[T]) InsertLeft(sub *Node[T]) *Node[T] {
	old := n.left
	n.left = sub
	n.updateStats()
	return old
}

// InsertRight replaces the right subtree with sub and returns the old one.
func (n *Node[T]) InsertRight(sub *Node[T]) *Node[T] {
	old := n.right
	n.right = sub
	n.updateStats()
	return old
}

// IntoParts decomposes the node into payload and detached children.
func (n *Node[T]) IntoParts() (T, *Node[T], *Node[T]) {
	l, r := n.DetachLeft(), n.DetachRight()
	return n.val, l, r
}

func (n *Node[T]) lcount() uint32 {
	if n.left == nil {
		return 0
	}
	return n.left.count
}

func (n *Node[T]) rcount() uint32 {
	if n.right == nil {
		return 0
	}
	return n.right.count
}

// balanceFactor is the generalized AVL balance factor h(left) - h(right),
// where an empty subtree counts as height -1.
func (n *Node[T]) balanceFactor() int {
	lh, rh := -1, -1
	if n.left != nil {
		lh = int(n.left.height)
	}
	if n.right != nil {
		rh = int(n.right.height)
	}
	return lh - rh
}

func (n *Node[T]) updateStats() {
	n.count = n.lcount() + n.rcount() + 1
	var h uint16
	if n.left != nil {
		h = n.left.height
	}
	if n.right != nil && n.right.height > h {
		h = n.right.height
	}
	n.height = h
	if n.count > 1 {
		n.height++
	}
}

// rebalance repairs an AVL imbalance at n with a single or double rotation
// and returns the new subtree root. Nodes further down are expected to be
// balanced already; rebalance is meant to run bottom-up along a reshape
// path via the stepOut callbacks.
func (n *Node[T]) rebalance() *Node[T] {
	bf := n.balanceFactor()
	if bf > 1 {
		if left := n.left; left != nil && left.balanceFactor() < 0 {
			rot, err := bintree.RotateLeft(n.DetachLeft())
			assert(err == nil, "double rotation expects a right child below")
			n.InsertLeft(rot)
		}
		rot, err := bintree.RotateRight(n)
		assert(err == nil, "left-heavy node must have a left child")
		return rot
	}
	if bf < -1 {
		if right := n.right; right != nil && right.balanceFactor() > 0 {
			rot, err := bintree.RotateRight(n.DetachRight())
			assert(err == nil, "double rotation expects a left child below")
			n.InsertRight(rot)
		}
		rot, err := bintree.RotateLeft(n)
		assert(err == nil, "right-heavy node must have a right child")
		return rot
	}
	return n
}

// rebalanceAfter adapts rebalance to the stepOut callback signature of the
// bintree reshape operations.
func rebalanceAfter[T any](n *Node[T], _ bintree.WalkAction) *Node[T] {
	return n.rebalance()
}
