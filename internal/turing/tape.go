package turing

import (
	"strings"

	"github.com/google/uuid"
)

// Direction the head moves after writing
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Tape is an unbounded binary tape with a read/write head. It is the input
// threaded through every transition of a Machine.
type Tape struct {
	ID    uuid.UUID
	cells map[int]bool
	head  int
}

// NewTape returns a blank tape with the head at cell zero
func NewTape() *Tape {
	return &Tape{ID: uuid.New(), cells: make(map[int]bool)}
}

// Read returns the symbol under the head
func (t *Tape) Read() bool {
	return t.cells[t.head]
}

// Write sets the symbol under the head
func (t *Tape) Write(symbol bool) {
	if symbol {
		t.cells[t.head] = true
		return
	}
	delete(t.cells, t.head)
}

// Move shifts the head one cell
func (t *Tape) Move(d Direction) {
	t.head += int(d)
}

// Head returns the head position
func (t *Tape) Head() int {
	return t.head
}

// Ones returns how many cells hold a one
func (t *Tape) Ones() int {
	return len(t.cells)
}

// String renders the written span of the tape, marking the head with
// brackets.
func (t *Tape) String() string {
	lo, hi := t.head, t.head
	for c := range t.cells {
		lo = min(lo, c)
		hi = max(hi, c)
	}

	var b strings.Builder
	for c := lo; c <= hi; c++ {
		sym := "0"
		if t.cells[c] {
			sym = "1"
		}
		if c == t.head {
			sym = "[" + sym + "]"
		}
		b.WriteString(sym)
	}
	return b.String()
}
