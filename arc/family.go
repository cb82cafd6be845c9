package arc

import "github.com/librescoot/mode"

// Mode is the transition contract for modes held behind an Arc. Swap is only
// called when self is the last live reference.
type Mode[T, In, Out any] interface {
	Swap(self *Arc[T], in In) Out
}

// TrySwap runs the transition of the mode behind a. It fails with
// mode.ErrShared while other references are live and with mode.ErrReleased
// once a is dead; a is untouched in both cases. When the transition yields a
// different handle, a is released unless the mode took its value.
//
// A caller holding the last reference cannot race with a Clone, since
// cloning requires a reference of its own.
func TrySwap[T Mode[T, In, Out], In, Out any](a *Arc[T], in In) (Out, error) {
	var zero Out
	switch n := a.count.Load(); {
	case n == 0:
		return zero, mode.ErrReleased
	case n > 1:
		return zero, mode.ErrShared
	}

	out := a.value.Swap(a, in)
	if next, ok := mode.Successor[*Arc[T]](out); ok && next != nil && next != a && a.count.Load() > 0 {
		a.Release()
	}
	return out, nil
}

// Family adapts Arc modes to mode.Family for transitions that produce the
// next handle. A shared handle stays active unchanged.
type Family[T Mode[T, In, *Arc[T]], In any] struct{}

// Base returns the shared mode
func (Family[T, In]) Base(a *Arc[T]) T {
	return a.Get()
}

// Swap runs TrySwap, keeping a when the transition is refused
func (Family[T, In]) Swap(a *Arc[T], in In) *Arc[T] {
	out, err := TrySwap[T, In, *Arc[T]](a, in)
	if err != nil {
		return a
	}
	return out
}

// OutputFamily adapts Arc modes whose transitions also report a value of
// type R. A refused transition keeps a and reports the zero R.
type OutputFamily[T Mode[T, In, mode.Swapped[*Arc[T], R]], In, R any] struct{}

// Base returns the shared mode
func (OutputFamily[T, In, R]) Base(a *Arc[T]) T {
	return a.Get()
}

// Swap runs TrySwap, keeping a when the transition is refused
func (OutputFamily[T, In, R]) Swap(a *Arc[T], in In) mode.Swapped[*Arc[T], R] {
	out, err := TrySwap[T, In, mode.Swapped[*Arc[T], R]](a, in)
	if err != nil {
		var zero R
		return mode.Stay(a, zero)
	}
	return out
}
