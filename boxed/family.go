package boxed

import "github.com/librescoot/mode"

// Mode is the transition contract for modes held in a Box. Swap receives the
// box it was called through: returning self keeps the mode active, returning
// a different box replaces it.
type Mode[T, In, Out any] interface {
	Swap(self *Box[T], in In) Out
}

// Family adapts boxed modes to mode.Family. Out is usually *Box[T] or a
// mode.Swapped carrying one.
type Family[T Mode[T, In, Out], In, Out any] struct{}

// Base returns the boxed mode
func (Family[T, In, Out]) Base(b *Box[T]) T {
	return b.Get()
}

// Swap runs the boxed mode's transition. When the result carries a different
// non-nil box, the old one is dropped unless the mode took its value.
func (Family[T, In, Out]) Swap(b *Box[T], in In) Out {
	out := b.Get().Swap(b, in)
	if next, ok := mode.Successor[*Box[T]](out); ok && next != nil && next != b {
		b.Drop()
	}
	return out
}
