package bintree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import "iter"

// InOrder returns an iterator over the payloads of the subtree rooted at n,
// in in-order (left, node, right) sequence. The traversal keeps an explicit
// node stack instead of recursing, so the call stack stays flat regardless
// of tree depth. The tree must not be structurally modified while iterating.
//
// The value type cannot be inferred from n alone, so call sites name it
// explicitly: bintree.InOrder[int](root).
func InOrder[T any, N Node[N, T]](n N) iter.Seq[T] {
	return func(yield func(T) bool) {
		var none N
		var stack []N
		cur := n
		for cur != none || len(stack) > 0 {
			for cur != none {
				stack = append(stack, cur)
				cur = cur.Left()
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur.Value()) {
				return
			}
			cur = cur.Right()
		}
	}
}

// Drain returns a consuming iterator over the subtree rooted at n. It
// dismantles the tree while iterating: every yielded payload's node has been
// decomposed via IntoParts and is unreachable afterwards.
//
// Dismantling is iterative. A degenerate tree of depth d costs O(d) slice
// space but never grows the call stack, so draining (and in particular
// clearing) arbitrarily deep trees cannot overflow it.
func Drain[T any, N NodeMut[N, T]](n N) iter.Seq[T] {
	return func(yield func(T) bool) {
		var none N
		var stack []N
		cur := n
		for cur != none || len(stack) > 0 {
			for cur != none {
				stack = append(stack, cur)
				cur = cur.DetachLeft()
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			value, _, right := cur.IntoParts()
			if !yield(value) {
				return
			}
			cur = right
		}
	}
}
