package count

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"iter"

	"github.com/npillmayer/bintree"
)

// All returns an in-order sequence over the elements of the tree, i.e. in
// ascending index order.
func (t *Tree[T]) All() iter.Seq[T] {
	if t.IsEmpty() {
		return func(yield func(T) bool) {}
	}
	return bintree.InOrder[T](t.root)
}

// Drain returns a consuming in-order sequence: the tree is emptied up
// front and its nodes are released as the sequence advances. Draining is
// iterative and safe on degenerate, very deep trees.
func (t *Tree[T]) Drain() iter.Seq[T] {
	root := t.root
	t.root = nil
	if root == nil {
		return func(yield func(T) bool) {}
	}
	return bintree.Drain[T](root)
}

// Each calls f for every element together with its index, in ascending
// index order. If f returns an error, the iteration stops and Each returns
// that error.
func (t *Tree[T]) Each(f func(value T, index int) error) error {
	index := 0
	for value := range t.All() {
		if err := f(value, index); err != nil {
			return err
		}
		index++
	}
	return nil
}
