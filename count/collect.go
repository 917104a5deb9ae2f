package count

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"iter"
	"math/bits"
	"slices"

	"github.com/npillmayer/bintree"
)

// Collect builds a counting tree from the elements of a sequence, in order.
// The result is better balanced than inserting the elements one by one would
// be, and building is cheaper: O(n + log²(n)) instead of O(n·log(n)).
//
// The construction chains each element in as the new root, with the tree
// built so far as its left subtree, and rotates the left spine right
// whenever the element count crosses a run of set low bits. Afterwards only
// the right spine can still be out of shape, and a few descending passes
// fix it.
func Collect[T any](seq iter.Seq[T]) *Tree[T] {
	next, stop := iter.Pull(seq)
	defer stop()
	value, ok := next()
	if !ok {
		return &Tree[T]{}
	}
	root := newNode(value)
	count := uint32(1)
	for {
		value, ok := next()
		if !ok {
			break
		}
		node := newNode(value)
		node.InsertLeft(root)
		root = node
		count++
		rcount := count
		if isPower(count + 1) {
			rcount = count >> 1
		}
		rotatePoints := uint32(1)
		for rcount&rotatePoints == rotatePoints {
			root = mustRotateRight(root)
			rotatePoints = rotatePoints<<1 | 1
		}
	}
	balancedTill := floorPow2(count+1) - 1 // largest 2^k-1 not exceeding count
	count = root.lcount() + 1
	for count > balancedTill {
		root = mustRotateRight(root)
		right := fixRightSpine(root.DetachRight())
		root.InsertRight(right)
		count = root.lcount() + 1
	}
	tracer().Debugf("collected %d elements into counting tree of height %d",
		root.Size(), root.Height())
	return &Tree[T]{root: root}
}

// FromSlice builds a counting tree holding the elements of a slice, in
// order. See Collect.
func FromSlice[T any](values []T) *Tree[T] {
	return Collect(slices.Values(values))
}

// fixRightSpine walks down the right spine of a subtree left over by the
// Collect chaining phase, rotating every left-heavy node right once and
// continuing at the node the rotation demoted.
func fixRightSpine[T any](n *Node[T]) *Node[T] {
	if n == nil || n.balanceFactor() <= 1 {
		return n
	}
	top := mustRotateRight(n)
	parent := top
	for {
		child := parent.DetachRight()
		if child == nil {
			return top
		}
		if child.balanceFactor() <= 1 {
			parent.InsertRight(child)
			return top
		}
		rotated := mustRotateRight(child)
		parent.InsertRight(rotated)
		parent = rotated
	}
}

func mustRotateRight[T any](n *Node[T]) *Node[T] {
	r, err := bintree.RotateRight(n)
	assert(err == nil, "rotation pivot must have a left child")
	return r
}

// isPower is true iff x is a power of 2. isPower(0) is false.
func isPower(x uint32) bool {
	return x > 0 && x&(x-1) == 0
}

// floorPow2 returns the largest power of 2 not exceeding x, and 0 for 0.
func floorPow2(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	return 1 << (bits.Len32(x) - 1)
}
