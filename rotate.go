package bintree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// RotateLeft rotates the subtree rooted at n to the left and returns the new
// subtree root (the former right child). If n has no right child to pivot
// on, n is returned unchanged together with ErrNoRightChild.
//
//	    n                r
//	   / \              / \
//	  a   r     =>     n   c
//	     / \          / \
//	    b   c        a   b
func RotateLeft[N ShapeMut[N]](n N) (N, error) {
	var none N
	assert(n != none, "rotation of empty subtree")
	r := n.DetachRight()
	if r == none {
		return n, ErrNoRightChild
	}
	n.InsertRight(r.DetachLeft())
	r.InsertLeft(n)
	return r, nil
}

// RotateRight rotates the subtree rooted at n to the right and returns the
// new subtree root (the former left child). If n has no left child to pivot
// on, n is returned unchanged together with ErrNoLeftChild.
func RotateRight[N ShapeMut[N]](n N) (N, error) {
	var none N
	assert(n != none, "rotation of empty subtree")
	l := n.DetachLeft()
	if l == none {
		return n, ErrNoLeftChild
	}
	n.InsertLeft(l.DetachRight())
	l.InsertRight(n)
	return l, nil
}
