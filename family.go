package mode

// Family groups the modes that can be hosted by the same Automaton. A family
// is a zero-size tag type: it carries no state and is only ever used through
// its zero value.
//
//   - M is the storage of a mode (a pointer, or a boxed/counted handle)
//   - B is the public interface the automaton exposes
//   - In is the input of a transition attempt
//   - Out is the result of a transition attempt, usually M
//
// The handle packages (boxed, rc, arc) each provide Family implementations
// that adapt their ownership-specific contract to this one.
type Family[M, B, In, Out any] interface {
	// Base returns the stored mode as the family's public interface
	Base(m M) B
	// Swap consumes m and produces the transition result
	Swap(m M, in In) Out
}

// Self is the family of modes stored directly: the mode is its own storage
// and its own public interface.
type Self[M Mode[In, Out], In, Out any] struct{}

// Base returns m unchanged
func (Self[M, In, Out]) Base(m M) M {
	return m
}

// Swap forwards to m.Swap
func (Self[M, In, Out]) Swap(m M, in In) Out {
	return m.Swap(in)
}
