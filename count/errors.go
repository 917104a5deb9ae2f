package count

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("count: index out of bounds")
	// ErrInvariant marks structural invariant violations found by Check.
	ErrInvariant = errors.New("count: invariant violation")
)
