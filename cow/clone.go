package cow

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// Cloner is implemented by payload types which need deep copies when a
// shared pointer diverges. Payloads without it are copied by plain
// assignment, which is fine for value types but shares referenced memory
// (slices, maps, pointers).
type Cloner[T any] interface {
	Clone() T
}

func cloneValue[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
