package bintree

import "errors"

var (
	// ErrNoLeftChild signals a right rotation on a node without a left child.
	ErrNoLeftChild = errors.New("bintree: node has no left child")
	// ErrNoRightChild signals a left rotation on a node without a right child.
	ErrNoRightChild = errors.New("bintree: node has no right child")
)
