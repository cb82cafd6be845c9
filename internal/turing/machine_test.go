package turing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librescoot/mode"
)

func TestBusyBeaver(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	tape := NewTape()

	steps, err := Run(m, tape, 100)
	require.NoError(t, err)
	assert.Equal(t, 6, steps)
	assert.Equal(t, 4, tape.Ones())
	assert.Equal(t, "11[1]1", tape.String())
	assert.Equal(t, "H", m.Base().Name())
	assert.Equal(t, uint64(6), m.Transitions())
}

func TestStepReports(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	tape := NewTape()

	var got []Step
	for range 7 {
		got = append(got, mode.NextWithOutput(m, tape))
	}

	assert.Equal(t, []Step{
		{From: "A", Read: false, Wrote: true, Moved: Right},
		{From: "B", Read: false, Wrote: true, Moved: Left},
		{From: "A", Read: true, Wrote: true, Moved: Left},
		{From: "B", Read: false, Wrote: true, Moved: Left},
		{From: "A", Read: false, Wrote: true, Moved: Right},
		{From: "B", Read: true, Wrote: true, Moved: Right},
		{From: "H", Read: true, Halted: true},
	}, got)
}

func TestHaltedIsSteady(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	tape := NewTape()
	_, err := Run(m, tape, 100)
	require.NoError(t, err)

	before := tape.String()
	for range 10 {
		step := mode.NextWithOutput(m, tape)
		require.True(t, step.Halted)
	}
	assert.Equal(t, before, tape.String())
	assert.Equal(t, uint64(6), m.Transitions())
}

func TestStepLimit(t *testing.T) {
	t.Parallel()

	tape := NewTape()
	steps, err := Run(NewMachine(), tape, 3)
	require.ErrorIs(t, err, ErrStepLimit)
	assert.Equal(t, 3, steps)
	assert.Contains(t, err.Error(), tape.ID.String())
}

func TestRunExactLimit(t *testing.T) {
	t.Parallel()

	steps, err := Run(NewMachine(), NewTape(), 6)
	require.NoError(t, err)
	assert.Equal(t, 6, steps)
}

func TestTapeWriteZeroClears(t *testing.T) {
	t.Parallel()

	tape := NewTape()
	tape.Write(true)
	tape.Move(Right)
	tape.Write(true)
	tape.Write(false)
	assert.Equal(t, 1, tape.Ones())
	assert.Equal(t, 1, tape.Head())
	assert.Equal(t, "1[0]", tape.String())
}
