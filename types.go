package mode

import (
	"errors"
	"log/slog"
)

// None is the input type for families whose transitions need no context
type None = struct{}

// Swapped is the output of a transition that reports a value alongside
// the mode that becomes active.
type Swapped[M, R any] struct {
	Mode   M
	Result R
}

// Active returns the mode carried by s
func (s Swapped[M, R]) Active() M {
	return s.Mode
}

// Stay builds a Swapped that keeps m active and reports r
func Stay[M, R any](m M, r R) Swapped[M, R] {
	return Swapped[M, R]{Mode: m, Result: r}
}

// Dropper is implemented by modes that release resources when they are
// discarded without their state being moved into a successor.
type Dropper interface {
	Drop()
}

// Drop calls v.Drop if v implements Dropper
func Drop(v any) {
	if d, ok := v.(Dropper); ok {
		d.Drop()
	}
}

// Successor extracts the next mode from a transition output that is either
// the mode itself or a Swapped carrying it.
func Successor[M any](out any) (M, bool) {
	switch o := out.(type) {
	case M:
		return o, true
	case interface{ Active() M }:
		return o.Active(), true
	}
	var zero M
	return zero, false
}

var (
	// ErrShared is returned when a transition is attempted through a counted
	// handle that is not the last live reference to its mode.
	ErrShared = errors.New("mode is shared: transition requires the last reference")
	// ErrReleased is returned when a transition is attempted through a handle
	// whose mode was already taken or released.
	ErrReleased = errors.New("mode handle already released")
)

// Logger is the default logger used when none is provided
var Logger = slog.Default()
