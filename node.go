package bintree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// WalkAction directs a tree walk. A traversal policy returns one of these
// for every node visited: Left and Right continue the descent into the
// respective child, Stop halts the walk at the current node.
type WalkAction int8

const (
	Stop WalkAction = iota
	Left
	Right
)

func (a WalkAction) String() string {
	switch a {
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Stop"
}

// Node is the read-only capability of a binary-tree position.
//
// The type parameter N is the implementing node type itself, normally a
// pointer type; the zero value of N means "no child". Node embeds comparable
// and is therefore a constraint, not a value type.
//
// Invariant: following Left/Right describes a binary tree — at most two
// children per node, no cycles.
type Node[N comparable, T any] interface {
	comparable
	// Left returns the left child, or the zero N if there is none.
	Left() N
	// Right returns the right child, or the zero N if there is none.
	Right() N
	// Value returns the payload stored at this position.
	Value() T
}

// NodeMut extends Node with structural mutation.
//
// A node exclusively owns its children until they are detached; detaching
// hands the subtree to the caller. Insert replaces a child subtree and
// returns the previous one (zero N if there was none).
type NodeMut[N comparable, T any] interface {
	Node[N, T]
	// DetachLeft removes and returns the left subtree, leaving no child in
	// its place.
	DetachLeft() N
	// DetachRight removes and returns the right subtree, leaving no child in
	// its place.
	DetachRight() N
	// InsertLeft replaces the left subtree with n and returns the old one.
	InsertLeft(n N) N
	// InsertRight replaces the right subtree with n and returns the old one.
	InsertRight(n N) N
	// ValueRef grants mutable access to the payload.
	ValueRef() *T
	// IntoParts decomposes the node into payload and detached children.
	// The node must not be used afterwards.
	IntoParts() (T, N, N)
}

// Shape is the value-free structural subset of Node. The walk and reshape
// algorithms of this package constrain on Shape/ShapeMut rather than on
// Node/NodeMut: they never touch payloads, and dropping the value type from
// their signatures lets Go infer all type arguments at call sites.
//
// Every Node implementation satisfies Shape.
type Shape[N comparable] interface {
	comparable
	Left() N
	Right() N
}

// ShapeMut is the value-free structural subset of NodeMut.
type ShapeMut[N comparable] interface {
	Shape[N]
	DetachLeft() N
	DetachRight() N
	InsertLeft(n N) N
	InsertRight(n N) N
}

// Tree is implemented by containers exposing a root node.
type Tree[N comparable] interface {
	// Root returns the root node, or the zero N for an empty container.
	Root() N
}
