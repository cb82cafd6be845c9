// Package mode builds behavioral state machines: an Automaton holds exactly
// one mode of a Family, exposes it through the family's public interface,
// and lets the active mode replace itself by consuming its own storage.
//
// Modes are stored directly (Self) or behind the handles of packages boxed,
// rc and arc, which differ in how a mode is owned.
package mode

// Mode is the transition contract for modes stored directly, without a
// wrapping handle. Swap consumes the receiver: once it returns, the caller
// must not use the receiver again unless it was returned as part of Out.
//
// Implementations stay in the current mode by returning the receiver, and
// transition by returning a different mode of the same family. Because the
// receiver is consumed, its fields (slices, maps, buffers) may be moved into
// the replacement as they are.
type Mode[In, Out any] interface {
	Swap(in In) Out
}
