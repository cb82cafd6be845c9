// Package arc provides the shared, cross-goroutine ownership variant of the
// mode contract: modes live behind a handle whose reference count is updated
// atomically, so references may be cloned and released from any goroutine.
//
// The count is the only synchronized part of a handle. Goroutines that
// mutate the shared mode must coordinate among themselves.
package arc

import (
	"sync/atomic"

	"github.com/librescoot/mode"
)

// Arc is an atomically reference-counted handle to a mode
type Arc[T any] struct {
	value T
	count atomic.Int64
}

// New returns a handle to v holding one reference
func New[T any](v T) *Arc[T] {
	a := &Arc[T]{value: v}
	a.count.Store(1)
	return a
}

// Get returns the shared value
func (a *Arc[T]) Get() T {
	if a.count.Load() == 0 {
		panic("arc: use of released handle")
	}
	return a.value
}

// Clone adds a reference and returns the handle. The caller must hold a
// reference already.
func (a *Arc[T]) Clone() *Arc[T] {
	for {
		n := a.count.Load()
		if n == 0 {
			panic("arc: clone of released handle")
		}
		if a.count.CompareAndSwap(n, n+1) {
			return a
		}
	}
}

// Release gives up one reference. Whoever releases the last one drops the
// value, calling its Drop method if it has one.
func (a *Arc[T]) Release() {
	for {
		n := a.count.Load()
		if n == 0 {
			panic("arc: release of released handle")
		}
		if a.count.CompareAndSwap(n, n-1) {
			if n > 1 {
				return
			}
			break
		}
	}
	v := a.value
	var zero T
	a.value = zero
	mode.Drop(v)
}

// Count returns the number of live references at the time of the call
func (a *Arc[T]) Count() int {
	return int(a.count.Load())
}

// Unique reports whether the caller holds the only live reference
func (a *Arc[T]) Unique() bool {
	return a.count.Load() == 1
}

// TryTake moves the value out of the handle if it is the last reference.
// The claim is a compare-and-swap of the count from one to zero, so at most
// one holder can win it.
func (a *Arc[T]) TryTake() (T, error) {
	var zero T
	if !a.count.CompareAndSwap(1, 0) {
		if a.count.Load() == 0 {
			return zero, mode.ErrReleased
		}
		return zero, mode.ErrShared
	}
	v := a.value
	a.value = zero
	return v, nil
}

// Take is TryTake for callers that know they hold the last reference, such
// as a mode inside Swap. It panics otherwise.
func (a *Arc[T]) Take() T {
	v, err := a.TryTake()
	if err != nil {
		panic("arc: take: " + err.Error())
	}
	return v
}
