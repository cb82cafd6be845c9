package mode

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"
)

// Automaton is the runtime container of a state machine. It always holds
// exactly one mode of family F and exposes it only through the family's
// public interface B.
//
// M must be comparable so the automaton can tell a mode that stayed from
// one that was replaced. A mode whose dynamic value cannot be compared (a
// struct holding a slice stored in an interface-typed M) is always counted
// as replaced; store modes behind pointers or handles to avoid that.
type Automaton[F Family[M, B, In, Out], M comparable, B, In, Out any] struct {
	family  F
	current M
	mu      sync.RWMutex

	transitions  uint64
	name         string
	logger       *slog.Logger
	swapCallback func(from, to B)
}

type settings struct {
	name         string
	logger       *slog.Logger
	swapCallback any
}

// Option is a functional option for configuring an Automaton
type Option func(*settings)

// WithLogger sets the logger for the automaton
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithName sets the name attached to the automaton's log records
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// WithSwapCallback sets a callback invoked after the active mode is
// replaced. B must be the public interface of the automaton it is passed to;
// WithMode panics otherwise.
func WithSwapCallback[B any](fn func(from, to B)) Option {
	return func(s *settings) {
		s.swapCallback = fn
	}
}

// WithMode creates an automaton whose active mode is initial.
// It panics if initial is nil, since an automaton without a mode is not
// representable, and if a swap callback was given for another interface.
func WithMode[F Family[M, B, In, Out], M comparable, B, In, Out any](initial M, opts ...Option) *Automaton[F, M, B, In, Out] {
	if isNil(initial) {
		panic("mode: automaton requires an initial mode")
	}

	s := settings{logger: Logger}
	for _, opt := range opts {
		opt(&s)
	}

	a := &Automaton[F, M, B, In, Out]{
		current: initial,
		name:    s.name,
		logger:  s.logger,
	}
	if a.name != "" {
		a.logger = a.logger.With("automaton", a.name)
	}
	if s.swapCallback != nil {
		fn, ok := s.swapCallback.(func(from, to B))
		if !ok {
			panic(fmt.Sprintf("mode: swap callback %T does not take %v", s.swapCallback, reflect.TypeFor[B]()))
		}
		a.swapCallback = fn
	}
	return a
}

// OnSwap sets a callback invoked after the active mode is replaced,
// overriding any set by WithSwapCallback. The callback runs while the
// automaton is locked, so it must not call any method of the automaton or
// Next on it.
func (a *Automaton[F, M, B, In, Out]) OnSwap(fn func(from, to B)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.swapCallback = fn
}

// Base returns the active mode through the family's public interface
func (a *Automaton[F, M, B, In, Out]) Base() B {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.family.Base(a.current)
}

// Do runs fn against the active mode with the automaton locked, so that no
// transition can interleave with it.
func (a *Automaton[F, M, B, In, Out]) Do(fn func(B)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn(a.family.Base(a.current))
}

// Transitions returns how many times the active mode has been replaced
func (a *Automaton[F, M, B, In, Out]) Transitions() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.transitions
}

// Next lets the active mode swap itself for the mode produced by its
// transition, given in. It is the only way to change the active mode.
func Next[F Family[M, B, In, M], M comparable, B, In any](a *Automaton[F, M, B, In, M], in In) {
	a.step(in, func(out M) M { return out })
}

// NextWithOutput is Next for families whose transitions report a value
// alongside the next mode. The reported value is returned.
func NextWithOutput[F Family[M, B, In, Swapped[M, R]], M comparable, B, In, R any](a *Automaton[F, M, B, In, Swapped[M, R]], in In) R {
	out := a.step(in, func(out Swapped[M, R]) M { return out.Mode })
	return out.Result
}

// step consumes the active mode and installs the mode settled from the
// transition's output. The lock is held throughout, so observers only ever
// see the mode before or after the transition.
func (a *Automaton[F, M, B, In, Out]) step(in In, settle func(Out) M) Out {
	a.mu.Lock()
	defer a.mu.Unlock()

	from := a.current
	prev := a.family.Base(from)
	a.logger.Debug("swapping mode", "mode", fmt.Sprintf("%T", prev))

	out := a.family.Swap(from, in)
	to := settle(out)
	if isNil(to) {
		panic(fmt.Sprintf("mode: transition from %T produced no mode", prev))
	}

	if sameMode(to, from) {
		a.logger.Debug("mode unchanged", "mode", fmt.Sprintf("%T", prev))
		return out
	}

	a.current = to
	a.transitions++
	next := a.family.Base(to)
	a.logger.Debug("mode swapped", "from", fmt.Sprintf("%T", prev), "to", fmt.Sprintf("%T", next))

	if a.swapCallback != nil {
		a.swapCallback(prev, next)
	}

	return out
}

// sameMode reports whether a and b are the same mode. Values that cannot be
// compared are never the same, so the comparison cannot panic.
func sameMode(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() {
		return false
	}
	return a == b
}

// isNil reports whether v is a nil interface, pointer, map, slice, channel
// or function.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
