// Package boxed provides the exclusive ownership variant of the mode
// contract: every mode lives in a Box that has exactly one owner, and a
// transition consumes the Box it was called through.
package boxed

import "github.com/librescoot/mode"

// Box is an exclusively owned handle to a mode. Once its value has been
// taken or dropped the box is dead and any further use panics.
type Box[T any] struct {
	value T
	live  bool
}

// New boxes v
func New[T any](v T) *Box[T] {
	return &Box[T]{value: v, live: true}
}

// Get returns the boxed value
func (b *Box[T]) Get() T {
	if !b.live {
		panic("boxed: use of moved box")
	}
	return b.value
}

// Live reports whether the box still holds its value
func (b *Box[T]) Live() bool {
	return b.live
}

// Take moves the value out of the box, leaving the box dead. A mode that
// hands its state to a successor takes itself first, so the box is not
// dropped behind it.
func (b *Box[T]) Take() T {
	v := b.Get()
	var zero T
	b.value = zero
	b.live = false
	return v
}

// Drop discards the boxed value, calling its Drop method if it has one.
// No-op on a dead box.
func (b *Box[T]) Drop() {
	if !b.live {
		return
	}
	mode.Drop(b.Take())
}
