package count

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import "fmt"

// Check validates the bookkeeping of the tree: every subtree count must
// equal the number of nodes below it plus one, every height must be one
// more than the taller child's height, and no node may lean by more than
// one level. It returns nil for a healthy tree and an error wrapping
// ErrInvariant for the first violation found.
//
// Check traverses the whole tree and is intended for tests and debugging.
func (t *Tree[T]) Check() error {
	if t.IsEmpty() {
		return nil
	}
	return checkNode(t.root, 0)
}

func checkNode[T any](n *Node[T], index int) error {
	if n == nil {
		return nil
	}
	if err := checkNode(n.left, index); err != nil {
		return err
	}
	cur := index + int(n.lcount())
	if c := n.lcount() + n.rcount() + 1; c != n.count {
		return fmt.Errorf("node #%d: count %d, subtrees hold %d: %w",
			cur, n.count, c, ErrInvariant)
	}
	h := uint16(0)
	if n.left != nil {
		h = n.left.height + 1
	}
	if n.right != nil && n.right.height+1 > h {
		h = n.right.height + 1
	}
	if h != n.height {
		return fmt.Errorf("node #%d: height %d, children suggest %d: %w",
			cur, n.height, h, ErrInvariant)
	}
	if bf := n.balanceFactor(); bf < -1 || bf > 1 {
		return fmt.Errorf("node #%d: balance factor %d out of range: %w",
			cur, bf, ErrInvariant)
	}
	return checkNode(n.right, cur+1)
}
