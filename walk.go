package bintree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// Walk descends from n, directed by the policy stepIn, and returns the node
// at which the walk halted: either the policy returned Stop, or the child it
// asked for does not exist. Walking an empty subtree returns the zero N.
//
// Walk performs no structural changes. Since node handles are pointers,
// callers are free to mutate payloads of visited nodes; structural edits
// must go through WalkReshape or WalkExtract instead.
func Walk[N Shape[N]](n N, stepIn func(N) WalkAction) N {
	var none N
	if n == none {
		return none
	}
	for {
		var child N
		switch stepIn(n) {
		case Left:
			child = n.Left()
		case Right:
			child = n.Right()
		default:
			return n
		}
		if child == none {
			return n
		}
		n = child
	}
}

// pathFrame records one detached ancestor on a reshape path, together with
// the direction the walk took out of it.
type pathFrame[N comparable] struct {
	node   N
	action WalkAction
}

// WalkReshape performs a structural edit along a single root-to-node path.
//
// Phase one descends from n, directed by stepIn, detaching each entered
// subtree from its parent. The descent ends when stepIn returns Stop or the
// requested child does not exist; then stop is invoked on the current node
// and may replace it (returning the new subtree root).
//
// Phase two reattaches the detached ancestors bottom-up. After each
// reattachment, stepOut is invoked for that ancestor — but never for the
// stopping node itself — and may in turn replace the subtree root, which is
// how self-balancing trees hook their rebalancing in. WalkReshape returns
// the root of the reshaped subtree.
//
// At no point is the tree disassembled beyond the single walk path, so an
// interrupted reshape (a panicking callback) can lose at most that path.
func WalkReshape[N ShapeMut[N]](
	n N,
	stepIn func(N) WalkAction,
	stop func(N) N,
	stepOut func(N, WalkAction) N,
) N {
	var none N
	assert(n != none, "reshape of empty subtree")
	var path []pathFrame[N]
	cur := n
	for {
		action := stepIn(cur)
		if action == Stop {
			break
		}
		var child N
		if action == Left {
			child = cur.DetachLeft()
		} else {
			child = cur.DetachRight()
		}
		if child == none {
			break
		}
		path = append(path, pathFrame[N]{cur, action})
		cur = child
	}
	cur = stop(cur)
	for i := len(path) - 1; i >= 0; i-- {
		frame := path[i]
		if frame.action == Left {
			frame.node.InsertLeft(cur)
		} else {
			frame.node.InsertRight(cur)
		}
		cur = stepOut(frame.node, frame.action)
	}
	return cur
}

// InsertBefore inserts newNode immediately before n in in-order sequence,
// i.e. at the rightmost free position of n's left subtree. It returns the
// (possibly new) root of the subtree formerly rooted at n.
//
// stepOut is invoked for every node strictly between the insertion point and
// n, plus n itself. The insertion point — the node that receives newNode as
// its right child — is the stopping node of the underlying reshape and gets
// no callback; when n's left subtree is empty, n itself is the insertion
// point and no callback fires at all.
func InsertBefore[N ShapeMut[N]](n, newNode N, stepOut func(N, WalkAction) N) N {
	var none N
	assert(n != none && newNode != none, "insertion needs a position and a node")
	left := n.DetachLeft()
	if left == none {
		n.InsertLeft(newNode)
		return n
	}
	left = WalkReshape(left,
		func(N) WalkAction { return Right },
		func(m N) N {
			m.InsertRight(newNode)
			return m
		},
		stepOut)
	n.InsertLeft(left)
	return stepOut(n, Left)
}

// WalkExtract removes one node from the subtree rooted at n, directed by the
// policy stepIn (same contract as in WalkReshape). At the node where the
// descent halts, extract decides the outcome: it returns the replacement to
// splice into the node's place (zero N to remove without replacement) and
// the node handed out to the caller (zero N to extract nothing).
//
// The path above the extraction point is reattached and repaired exactly as
// in WalkReshape. WalkExtract returns the new subtree root — the zero N if
// the subtree became empty — and the extracted node.
func WalkExtract[N ShapeMut[N]](
	n N,
	stepIn func(N) WalkAction,
	extract func(N) (replacement N, extracted N),
	stepOut func(N, WalkAction) N,
) (N, N) {
	var none N
	assert(n != none, "extraction from empty subtree")
	var path []pathFrame[N]
	cur := n
	for {
		action := stepIn(cur)
		if action == Stop {
			break
		}
		var child N
		if action == Left {
			child = cur.DetachLeft()
		} else {
			child = cur.DetachRight()
		}
		if child == none {
			break
		}
		path = append(path, pathFrame[N]{cur, action})
		cur = child
	}
	replacement, extracted := extract(cur)
	cur = replacement
	for i := len(path) - 1; i >= 0; i-- {
		frame := path[i]
		if frame.action == Left {
			frame.node.InsertLeft(cur)
		} else {
			frame.node.InsertRight(cur)
		}
		cur = stepOut(frame.node, frame.action)
	}
	return cur, extracted
}

// TryRemove detaches a descendant of n to take n's place, preparing n for
// removal from its tree. It returns the replacement subtree root and true,
// or the zero N and false if n is a leaf (nothing to promote — callers
// remove leaves by simply not reattaching them).
//
// A single child is promoted as a whole. With two children, the in-order
// predecessor (rightmost node of the left subtree) is extracted and takes
// n's place. stepOut is then invoked for every node on the predecessor path
// and once for the promoted node itself, so balanced trees can repair the
// disturbed path. n's children are detached in every successful case.
func TryRemove[N ShapeMut[N]](n N, stepOut func(N, WalkAction) N) (N, bool) {
	var none N
	assert(n != none, "removal of empty subtree")
	left := n.DetachLeft()
	right := n.DetachRight()
	switch {
	case left == none && right == none:
		return none, false
	case left == none:
		return right, true
	case right == none:
		return left, true
	}
	rest, pred := WalkExtract(left,
		func(N) WalkAction { return Right },
		func(m N) (N, N) { return m.DetachLeft(), m },
		stepOut)
	pred.InsertLeft(rest)
	pred.InsertRight(right)
	return stepOut(pred, Left), true
}
