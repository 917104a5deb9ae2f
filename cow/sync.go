package cow

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import "sync/atomic"

// SyncPtr is a copy-on-write shared pointer whose reference count is
// maintained atomically. Distinct handles may be cloned, mutated, released
// and unboxed from different goroutines without a data race on the count; a
// single handle is still owned by one goroutine at a time, and concurrent
// reads of a payload some handle mutates need external synchronization.
type SyncPtr[T any] struct {
	cell *syncCell[T]
}

type syncCell[T any] struct {
	val  T
	refs atomic.Int64
}

// NewSync creates an atomically counted copy-on-write pointer owning value,
// with a single handle.
func NewSync[T any](value T) SyncPtr[T] {
	c := &syncCell[T]{val: value}
	c.refs.Store(1)
	return SyncPtr[T]{cell: c}
}

// Clone returns a new handle sharing the payload. Time complexity: O(1)
func (p SyncPtr[T]) Clone() SyncPtr[T] {
	p.cell.refs.Add(1)
	return p
}

// Ref returns a reference to the shared payload, for reading. Callers must
// not write through it; mutation goes through MutRef.
func (p SyncPtr[T]) Ref() *T {
	return &p.cell.val
}

// Shared reports whether more than one handle currently points to the
// payload.
func (p SyncPtr[T]) Shared() bool {
	return p.cell.refs.Load() > 1
}

// MutRef returns a reference to a payload exclusively held by p, diverging
// onto a private copy first if the pointer is shared. A count observed as 1
// cannot grow behind p's back, since new handles only spring from existing
// ones.
func (p *SyncPtr[T]) MutRef() *T {
	c := p.cell
	if c.refs.Load() > 1 {
		next := &syncCell[T]{val: cloneValue(c.val)}
		next.refs.Store(1)
		p.cell = next
		c.refs.Add(-1)
	}
	return &p.cell.val
}

// Release gives up the handle. A released handle must not be used again.
func (p *SyncPtr[T]) Release() {
	p.cell.refs.Add(-1)
	p.cell = nil
}

// Unbox consumes the handle and returns the payload as an owned value: the
// payload is moved out if p was the last handle, and copied otherwise.
func (p *SyncPtr[T]) Unbox() T {
	c := p.cell
	p.cell = nil
	if c.refs.Add(-1) > 0 {
		return cloneValue(c.val)
	}
	return c.val
}
