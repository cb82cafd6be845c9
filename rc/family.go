package rc

import "github.com/librescoot/mode"

// Mode is the transition contract for modes held behind an Rc. Swap is only
// called when self is the last live reference.
type Mode[T, In, Out any] interface {
	Swap(self *Rc[T], in In) Out
}

// TrySwap runs the transition of the mode behind r. It fails with
// mode.ErrShared while other references are live and with mode.ErrReleased
// once r is dead; r is untouched in both cases. When the transition yields a
// different handle, r is released unless the mode took its value.
func TrySwap[T Mode[T, In, Out], In, Out any](r *Rc[T], in In) (Out, error) {
	var zero Out
	switch {
	case r.count == 0:
		return zero, mode.ErrReleased
	case r.count > 1:
		return zero, mode.ErrShared
	}

	out := r.value.Swap(r, in)
	if next, ok := mode.Successor[*Rc[T]](out); ok && next != nil && next != r && r.count > 0 {
		r.Release()
	}
	return out, nil
}

// Family adapts Rc modes to mode.Family for transitions that produce the
// next handle. A shared handle stays active unchanged.
type Family[T Mode[T, In, *Rc[T]], In any] struct{}

// Base returns the shared mode
func (Family[T, In]) Base(r *Rc[T]) T {
	return r.Get()
}

// Swap runs TrySwap, keeping r when the transition is refused
func (Family[T, In]) Swap(r *Rc[T], in In) *Rc[T] {
	out, err := TrySwap[T, In, *Rc[T]](r, in)
	if err != nil {
		return r
	}
	return out
}

// OutputFamily adapts Rc modes whose transitions also report a value of type
// R. A refused transition keeps r and reports the zero R.
type OutputFamily[T Mode[T, In, mode.Swapped[*Rc[T], R]], In, R any] struct{}

// Base returns the shared mode
func (OutputFamily[T, In, R]) Base(r *Rc[T]) T {
	return r.Get()
}

// Swap runs TrySwap, keeping r when the transition is refused
func (OutputFamily[T, In, R]) Swap(r *Rc[T], in In) mode.Swapped[*Rc[T], R] {
	out, err := TrySwap[T, In, mode.Swapped[*Rc[T], R]](r, in)
	if err != nil {
		var zero R
		return mode.Stay(r, zero)
	}
	return out
}
