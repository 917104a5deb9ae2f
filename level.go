package bintree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// Level is the result of measuring a subtree with ComputeLevel: the level of
// its root (height + 1; an empty subtree has level 0) and whether the
// subtree is balanced within the given tolerance.
type Level struct {
	Value    int
	Balanced bool
}

// ComputeLevel recursively computes the level of node n and checks whether
// the subtree is balanced: at every node, the levels of the two child
// subtrees may differ by at most tolerance.
//
// This is a diagnostic for tests and debugging. It recurses, so it is itself
// limited by the height of the tree — exactly the property it measures.
func ComputeLevel[N Shape[N]](n N, tolerance int) Level {
	var none N
	if n == none {
		return Level{Value: 0, Balanced: true}
	}
	llevel := ComputeLevel(n.Left(), tolerance)
	rlevel := ComputeLevel(n.Right(), tolerance)
	level := Level{
		Value:    max(llevel.Value, rlevel.Value) + 1,
		Balanced: llevel.Balanced && rlevel.Balanced,
	}
	if diff := llevel.Value - rlevel.Value; diff > tolerance || -diff > tolerance {
		level.Balanced = false
	}
	return level
}
