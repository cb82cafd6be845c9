// Package turing runs the two-state busy beaver as a state machine whose
// transitions take the tape as input and report each step as output.
package turing

import (
	"errors"
	"fmt"

	"github.com/librescoot/mode"
	"github.com/librescoot/mode/boxed"
)

// ErrStepLimit is returned by Run when the machine has not halted within the
// allowed number of steps.
var ErrStepLimit = errors.New("step limit reached before halting")

// Step reports what one transition did to the tape
type Step struct {
	From   string
	Read   bool
	Wrote  bool
	Moved  Direction
	Halted bool
}

// Output is the result of a transition
type Output = mode.Swapped[*boxed.Box[State], Step]

// State is the public interface of every machine state
type State interface {
	Name() string
	Swap(self *boxed.Box[State], tape *Tape) Output
}

// Family groups the machine states
type Family = boxed.Family[State, *Tape, Output]

// Machine is the busy beaver automaton
type Machine = mode.Automaton[Family, *boxed.Box[State], State, *Tape, Output]

// NewMachine returns a machine in its start state
func NewMachine(opts ...mode.Option) *Machine {
	return mode.WithMode[Family, *boxed.Box[State], State, *Tape, Output](boxed.New[State](stateA{}), opts...)
}

// Run steps m over tape until it halts or limit steps have been taken. It
// returns the number of steps that changed the tape.
func Run(m *Machine, tape *Tape, limit int) (int, error) {
	for steps := 0; steps < limit; {
		step := mode.NextWithOutput(m, tape)
		if step.Halted {
			return steps, nil
		}
		steps++
	}
	if m.Base().Name() == "H" {
		return limit, nil
	}
	return limit, fmt.Errorf("run tape %s: %w", tape.ID, ErrStepLimit)
}

// rule writes, moves and hands over to next, consuming self
func rule(self *boxed.Box[State], tape *Tape, write bool, d Direction, next State) Output {
	step := Step{From: self.Get().Name(), Read: tape.Read(), Wrote: write, Moved: d}
	tape.Write(write)
	tape.Move(d)
	self.Take()
	return Output{Mode: boxed.New(next), Result: step}
}

type stateA struct{}

func (stateA) Name() string { return "A" }

func (stateA) Swap(self *boxed.Box[State], tape *Tape) Output {
	if tape.Read() {
		return rule(self, tape, true, Left, stateB{})
	}
	return rule(self, tape, true, Right, stateB{})
}

type stateB struct{}

func (stateB) Name() string { return "B" }

func (stateB) Swap(self *boxed.Box[State], tape *Tape) Output {
	if tape.Read() {
		return rule(self, tape, true, Right, halted{})
	}
	return rule(self, tape, true, Left, stateA{})
}

// halted is the terminal state: it never leaves and never touches the tape
type halted struct{}

func (halted) Name() string { return "H" }

func (halted) Swap(self *boxed.Box[State], tape *Tape) Output {
	return mode.Stay(self, Step{From: "H", Read: tape.Read(), Halted: true})
}
