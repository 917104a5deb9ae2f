/*
Package unbox specifies the unboxing capability of wrapper types: consuming
the wrapper and yielding the wrapped value, owned by the caller.

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package unbox

// Unboxer is the capability of extracting the wrapped value out of a
// wrapper, consuming the wrapper. The cow package's shared pointers
// implement it, cloning the payload only when it is still shared.
type Unboxer[T any] interface {
	Unbox() T
}

// Box is an exclusively owning cell, the trivial Unboxer: unboxing always
// moves, never copies.
type Box[T any] struct {
	val *T
}

// New creates a box owning value.
func New[T any](value T) Box[T] {
	return Box[T]{val: &value}
}

// Ref returns a reference to the boxed value.
func (b Box[T]) Ref() *T {
	return b.val
}

// Unbox consumes the box and returns the value. The box must not be used
// afterwards.
func (b *Box[T]) Unbox() T {
	v := *b.val
	b.val = nil
	return v
}
