/*
Package cow provides copy-on-write shared pointers.

A Ptr hands out cheap O(1) clones which all read the same payload. The
payload is only ever copied when a holder asks for mutable access while the
pointer is still shared: the mutating holder silently diverges onto a
private copy, and the remaining holders keep observing the old value. This
is the standard building block for persistent data structures, e.g. tree
nodes shared between tree versions.

Ptr keeps a plain reference count and is for use within a single goroutine;
SyncPtr counts atomically so that distinct handles may live on different
goroutines. Neither type makes a single handle safe for concurrent use.

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package cow

import "github.com/npillmayer/schuko/tracing"

// tracer traces to a global core tracer.
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}

// Ptr is a copy-on-write shared pointer for single-goroutine use.
//
// The zero Ptr is invalid; create one with New. Handles are small and
// copied by value, but only Clone creates a handle the pointer knows
// about — assigning a Ptr to a second variable without Clone breaks the
// bookkeeping.
type Ptr[T any] struct {
	cell *cell[T]
}

type cell[T any] struct {
	val  T
	refs int
}

// New creates a copy-on-write pointer owning value, with a single handle.
func New[T any](value T) Ptr[T] {
	return Ptr[T]{cell: &cell[T]{val: value, refs: 1}}
}

// Clone returns a new handle sharing the payload. Time complexity: O(1)
func (p Ptr[T]) Clone() Ptr[T] {
	p.cell.refs++
	return p
}

// Ref returns a reference to the shared payload, for reading. Callers must
// not write through it; mutation goes through MutRef.
func (p Ptr[T]) Ref() *T {
	return &p.cell.val
}

// Shared reports whether more than one handle currently points to the
// payload.
func (p Ptr[T]) Shared() bool {
	return p.cell.refs > 1
}

// MutRef returns a reference to a payload exclusively held by p. If the
// pointer is shared, p diverges onto a private copy of the payload first,
// so holders of other handles never observe the mutation.
func (p *Ptr[T]) MutRef() *T {
	c := p.cell
	if c.refs > 1 {
		c.refs--
		p.cell = &cell[T]{val: cloneValue(c.val), refs: 1}
		tracer().Debugf("cow pointer diverged, %d handles remain on the original", c.refs)
	}
	return &p.cell.val
}

// Release gives up the handle. A released handle must not be used again.
// Releasing all other handles re-enables in-place mutation for the
// remaining one.
func (p *Ptr[T]) Release() {
	p.cell.refs--
	p.cell = nil
}

// Unbox consumes the handle and returns the payload as an owned value: the
// payload is moved out if p was the last handle, and copied otherwise.
func (p *Ptr[T]) Unbox() T {
	c := p.cell
	p.cell = nil
	c.refs--
	if c.refs > 0 {
		return cloneValue(c.val)
	}
	return c.val
}
