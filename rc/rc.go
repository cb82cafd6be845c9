// Package rc provides the shared, single-goroutine ownership variant of the
// mode contract: modes live behind a reference-counted handle whose count is
// not synchronized. Use package arc when holders live on different
// goroutines.
//
// A transition is only performed through the last live reference. Attempts
// made while other references are held leave the mode in place.
package rc

import "github.com/librescoot/mode"

// Rc is a reference-counted handle to a mode. Clone and Release adjust the
// count; the value is dropped when the last reference is released.
type Rc[T any] struct {
	value T
	count int
}

// New returns a handle to v holding one reference
func New[T any](v T) *Rc[T] {
	return &Rc[T]{value: v, count: 1}
}

// Get returns the shared value
func (r *Rc[T]) Get() T {
	if r.count == 0 {
		panic("rc: use of released handle")
	}
	return r.value
}

// Clone adds a reference and returns the handle
func (r *Rc[T]) Clone() *Rc[T] {
	if r.count == 0 {
		panic("rc: clone of released handle")
	}
	r.count++
	return r
}

// Release gives up one reference. Releasing the last one drops the value,
// calling its Drop method if it has one.
func (r *Rc[T]) Release() {
	if r.count == 0 {
		panic("rc: release of released handle")
	}
	r.count--
	if r.count > 0 {
		return
	}
	v := r.value
	var zero T
	r.value = zero
	mode.Drop(v)
}

// Count returns the number of live references
func (r *Rc[T]) Count() int {
	return r.count
}

// Unique reports whether the caller holds the only live reference
func (r *Rc[T]) Unique() bool {
	return r.count == 1
}

// TryTake moves the value out of the handle if it is the last reference.
// The handle is dead afterwards.
func (r *Rc[T]) TryTake() (T, error) {
	var zero T
	switch {
	case r.count == 0:
		return zero, mode.ErrReleased
	case r.count > 1:
		return zero, mode.ErrShared
	}
	v := r.value
	r.value = zero
	r.count = 0
	return v, nil
}

// Take is TryTake for callers that know they hold the last reference, such
// as a mode inside Swap. It panics otherwise.
func (r *Rc[T]) Take() T {
	v, err := r.TryTake()
	if err != nil {
		panic("rc: take: " + err.Error())
	}
	return v
}
