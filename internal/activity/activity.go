// Package activity models a person's day as a state machine over three
// separate mode types sharing one public interface.
package activity

import (
	"github.com/librescoot/mode"
	"github.com/librescoot/mode/boxed"
)

// Activity is the public interface of every mode a Person can be in
type Activity interface {
	// Update advances the activity by one hour
	Update()
	// Status reports what the activity has accumulated so far
	Status() Status
	Swap(self *boxed.Box[Activity], in mode.None) *boxed.Box[Activity]
}

// Status is the observable state of an Activity
type Status struct {
	Activity         string
	HoursWorked      int
	CaloriesConsumed int
	HoursRested      int
}

// Family groups the activities of a Person
type Family = boxed.Family[Activity, mode.None, *boxed.Box[Activity]]

// Person is an automaton switching between activities
type Person = mode.Automaton[Family, *boxed.Box[Activity], Activity, mode.None, *boxed.Box[Activity]]

// NewPerson returns a Person starting a working day
func NewPerson(opts ...mode.Option) *Person {
	return mode.WithMode[Family, *boxed.Box[Activity], Activity, mode.None, *boxed.Box[Activity]](
		boxed.New[Activity](&Working{}),
		opts...,
	)
}

// Tick updates the current activity, then lets it hand over to the next
func Tick(p *Person) {
	p.Do(func(a Activity) { a.Update() })
	mode.Next(p, mode.None{})
}

// Working counts hours at work. Lunch is at four hours, dinner from eight.
type Working struct {
	HoursWorked int
}

func (w *Working) Update() {
	w.HoursWorked++
}

func (w *Working) Status() Status {
	return Status{Activity: "working", HoursWorked: w.HoursWorked}
}

func (w *Working) Swap(self *boxed.Box[Activity], _ mode.None) *boxed.Box[Activity] {
	if w.HoursWorked != 4 && w.HoursWorked < 8 {
		return self
	}
	self.Take()
	return boxed.New[Activity](&Eating{HoursWorked: w.HoursWorked})
}

// Eating counts calories. A meal is over at 500.
type Eating struct {
	HoursWorked      int
	CaloriesConsumed int
}

func (e *Eating) Update() {
	e.CaloriesConsumed += 100
}

func (e *Eating) Status() Status {
	return Status{Activity: "eating", HoursWorked: e.HoursWorked, CaloriesConsumed: e.CaloriesConsumed}
}

func (e *Eating) Swap(self *boxed.Box[Activity], _ mode.None) *boxed.Box[Activity] {
	if e.CaloriesConsumed < 500 {
		return self
	}
	self.Take()
	if e.HoursWorked >= 8 {
		return boxed.New[Activity](&Sleeping{})
	}
	return boxed.New[Activity](&Working{HoursWorked: e.HoursWorked})
}

// Sleeping counts hours of rest. Breakfast comes after eight.
type Sleeping struct {
	HoursRested int
}

func (s *Sleeping) Update() {
	s.HoursRested++
}

func (s *Sleeping) Status() Status {
	return Status{Activity: "sleeping", HoursRested: s.HoursRested}
}

func (s *Sleeping) Swap(self *boxed.Box[Activity], _ mode.None) *boxed.Box[Activity] {
	if s.HoursRested < 8 {
		return self
	}
	self.Take()
	return boxed.New[Activity](&Eating{})
}
