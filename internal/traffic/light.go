// Package traffic is a state machine over a single concrete mode type: a
// traffic light whose color decides its transitions.
package traffic

import "github.com/librescoot/mode"

// Color of a traffic light
type Color int

const (
	Red Color = iota
	Green
	Yellow
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	}
	return "unknown"
}

// next returns the color that follows c
func (c Color) next() Color {
	switch c {
	case Red:
		return Green
	case Green:
		return Yellow
	}
	return Red
}

// Timing is how many ticks each color is shown for
type Timing map[Color]int

// DefaultTiming is used when a Light is built without one
var DefaultTiming = Timing{Red: 3, Green: 3, Yellow: 1}

// Light is the only mode of the traffic light automaton
type Light struct {
	Color  Color
	Ticks  int
	Cycles int
	timing Timing
}

// Tick advances the light by one tick
func (l *Light) Tick() {
	l.Ticks++
}

// Swap changes color once the current one has been shown long enough. The
// timing table moves into the next light.
func (l *Light) Swap(mode.None) *Light {
	if l.Ticks < l.timing[l.Color] {
		return l
	}
	next := &Light{Color: l.Color.next(), Cycles: l.Cycles, timing: l.timing}
	if next.Color == Red {
		next.Cycles++
	}
	l.timing = nil
	return next
}

// Family is the traffic light's mode family
type Family = mode.Self[*Light, mode.None, *Light]

// Signal is the traffic light automaton
type Signal = mode.Automaton[Family, *Light, *Light, mode.None, *Light]

// NewSignal returns a signal showing red. A nil timing selects
// DefaultTiming.
func NewSignal(timing Timing, opts ...mode.Option) *Signal {
	if timing == nil {
		timing = DefaultTiming
	}
	return mode.WithMode[Family, *Light, *Light, mode.None, *Light](&Light{Color: Red, timing: timing}, opts...)
}

// Tick advances the signal by one tick and lets it change color
func Tick(s *Signal) {
	s.Do(func(l *Light) { l.Tick() })
	mode.Next(s, mode.None{})
}
