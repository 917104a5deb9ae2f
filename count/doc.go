/*
Package count provides a counting tree: a self-balancing binary tree over an
unsorted sequence, indexed by in-order position.

# When should you use count.Tree?

  - You want to maintain a possibly large unsorted list.
  - You want to access, modify, insert, and delete elements at arbitrary
    positions with O(log(n)) time complexity.
  - You have less than 4.29 billion elements.

Every node tracks the size of its subtree, so positions translate to
branching decisions by comparing against left-subtree sizes, and the total
length is available in O(1). The balancing algorithm is a variation of an
AVL tree (https://en.wikipedia.org/wiki/AVL_tree): a generalized balance
factor over tracked node heights, repaired with single or double rotations.
Time complexities below are worst case and of the same order as those of an
AVL tree.

The tree is built entirely on the generic capabilities and reshape
algorithms of package bintree: positional descent is a bintree.Walk policy,
insertion and removal are WalkReshape/WalkExtract policies, and rebalancing
hooks into their stepOut callbacks.

All operations assume exclusive access for the duration of a mutating call;
callers needing concurrent access must synchronize externally.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file in the repository root.
*/
package count

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
