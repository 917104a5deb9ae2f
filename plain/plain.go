/*
Package plain provides a simple binary tree.

# When should you use plain.Tree?

You should not use plain.Tree for anything, except may be to get to know
what a binary tree is. It carries no bookkeeping and does not balance
itself; its value lies in being the smallest possible implementation of the
bintree capability set, which makes every generic algorithm of package
bintree available on it.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file in the repository root.
*/
package plain

// Tree is a plain binary-tree node. Every node doubles as the tree rooted
// at it.
type Tree[T any] struct {
	val         T
	left, right *Tree[T]
}

// New creates a single-node tree holding value.
func New[T any](value T) *Tree[T] {
	return &Tree[T]{val: value}
}

// Root returns the node itself.
func (t *Tree[T]) Root() *Tree[T] { return t }

// Left returns the left child, or nil.
func (t *Tree[T]) Left() *Tree[T] { return t.left }

// Right returns the right child, or nil.
func (t *Tree[T]) Right() *Tree[T] { return t.right }

// Value returns the payload of this node.
func (t *Tree[T]) Value() T { return t.val }

// ValueRef grants mutable access to the payload.
func (t *Tree[T]) ValueRef() *T { return &t.val }

// DetachLeft removes and returns the left subtree.
func (t *Tree[T]) DetachLeft() *Tree[T] {
	l := t.left
	t.left = nil
	return l
}

// DetachRight removes and returns the right subtree.
func (t *Tree[T]) DetachRight() *Tree[T] {
	r := t.right
	t.right = nil
	return r
}

// InsertLeft replaces the left subtree with n and returns the old one.
func (t *Tree[T]) InsertLeft(n *Tree[T]) *Tree[T] {
	old := t.left
	t.left = n
	return old
}

// InsertRight replaces the right subtree with n and returns the old one.
func (t *Tree[T]) InsertRight(n *Tree[T]) *Tree[T] {
	old := t.right
	t.right = n
	return old
}

// IntoParts decomposes the node into payload and detached children.
func (t *Tree[T]) IntoParts() (T, *Tree[T], *Tree[T]) {
	l, r := t.DetachLeft(), t.DetachRight()
	return t.val, l, r
}
