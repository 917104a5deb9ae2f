/*
Package bintree provides capability contracts for binary-tree nodes and a
family of generic walk and reshape algorithms built on top of them.

A concrete node type plugs into the package by satisfying Node (read-only
traversal) and NodeMut (structural mutation). In return it gains the generic
algorithms — Walk, RotateLeft/RotateRight, WalkReshape, InsertBefore,
WalkExtract, TryRemove and the iterators — without reimplementing any
traversal logic. Package count builds its indexed, self-balancing tree
entirely on these primitives; package plain contains a minimal node type for
demonstration and testing.

All reshape operations work iteratively along a single root-to-node path,
detaching subtrees on the way down and reattaching them on the way up. The
tree is never disassembled beyond that one path, so memory disturbance and
auxiliary stack space stay proportional to the tree depth.

Mutating algorithms return the (possibly new) root of the subtree they were
applied to; callers rewire parents by reattachment. Calling structural
methods directly on nodes of a self-balancing tree may leave it imbalanced —
balanced containers like count.Tree repair their invariants through the
stepOut callbacks of the reshape operations.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package bintree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
