package count

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/bintree"
)

// TestRandomizedAgainstSlice drives a tree and a plain slice with the same
// random edit script and verifies that they stay in sync and that the tree
// stays balanced.
func TestRandomizedAgainstSlice(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5eed))
	ct := New[int]()
	var model []int
	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(10); {
		case op < 5 || len(model) == 0: // insert
			index := rng.Intn(len(model) + 1)
			value := rng.Int()
			if err := ct.Insert(index, value); err != nil {
				t.Fatalf("step %d: insert(%d) failed: %v", step, index, err)
			}
			model = slices.Insert(model, index, value)
		case op < 8: // remove
			index := rng.Intn(len(model))
			got, err := ct.Remove(index)
			if err != nil {
				t.Fatalf("step %d: remove(%d) failed: %v", step, index, err)
			}
			if want := model[index]; got != want {
				t.Fatalf("step %d: remove(%d) = %d, want %d", step, index, got, want)
			}
			model = slices.Delete(model, index, index+1)
		default: // overwrite
			index := rng.Intn(len(model))
			value := rng.Int()
			if err := ct.Set(index, value); err != nil {
				t.Fatalf("step %d: set(%d) failed: %v", step, index, err)
			}
			model[index] = value
		}
		if ct.Len() != len(model) {
			t.Fatalf("step %d: len = %d, model holds %d", step, ct.Len(), len(model))
		}
		if step%97 == 0 {
			if err := ct.Check(); err != nil {
				t.Fatalf("step %d: %v", step, err)
			}
			if lvl := bintree.ComputeLevel(ct.Root(), 1); !lvl.Balanced {
				t.Fatalf("step %d: tree out of balance", step)
			}
			if got := slices.Collect(ct.All()); !slices.Equal(got, model) {
				t.Fatalf("step %d: sequences diverge", step)
			}
		}
	}
	if got := slices.Collect(ct.All()); !slices.Equal(got, model) {
		t.Fatalf("final sequences diverge: tree %v, model %v", got, model)
	}
}
