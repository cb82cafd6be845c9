package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librescoot/mode"
	"github.com/librescoot/mode/arc"
	"github.com/librescoot/mode/boxed"
	"github.com/librescoot/mode/rc"
)

// reading is the observable state of a tank in every ownership variant
type reading struct {
	Filling bool
	Level   int
}

func (r reading) Reading() reading { return r }

// advance is the transition logic shared by every variant: a tank fills
// until it reaches ten, then drains until it is empty.
func advance(r reading, in int) reading {
	if r.Filling {
		r.Level += in
		if r.Level >= 10 {
			r.Filling = false
		}
		return r
	}
	r.Level -= in
	if r.Level <= 0 {
		r.Filling = true
	}
	return r
}

type directTank struct{ reading }

func (t *directTank) Swap(in int) *directTank {
	next := advance(t.reading, in)
	if next.Filling == t.Filling {
		t.reading = next
		return t
	}
	return &directTank{next}
}

type boxedTank struct{ reading }

func (t *boxedTank) Swap(self *boxed.Box[*boxedTank], in int) *boxed.Box[*boxedTank] {
	next := advance(t.reading, in)
	if next.Filling == t.Filling {
		t.reading = next
		return self
	}
	self.Take()
	return boxed.New(&boxedTank{next})
}

type rcTank struct{ reading }

func (t *rcTank) Swap(self *rc.Rc[*rcTank], in int) *rc.Rc[*rcTank] {
	next := advance(t.reading, in)
	if next.Filling == t.Filling {
		t.reading = next
		return self
	}
	self.Take()
	return rc.New(&rcTank{next})
}

type arcTank struct{ reading }

func (t *arcTank) Swap(self *arc.Arc[*arcTank], in int) *arc.Arc[*arcTank] {
	next := advance(t.reading, in)
	if next.Filling == t.Filling {
		t.reading = next
		return self
	}
	self.Take()
	return arc.New(&arcTank{next})
}

type trace struct {
	Readings    []reading
	Transitions uint64
}

func drive[F mode.Family[M, B, int, M], M comparable, B interface{ Reading() reading }](a *mode.Automaton[F, M, B, int, M], inputs []int) trace {
	var tr trace
	for _, in := range inputs {
		mode.Next(a, in)
		tr.Readings = append(tr.Readings, a.Base().Reading())
	}
	tr.Transitions = a.Transitions()
	return tr
}

func TestOwnershipVariantsAgree(t *testing.T) {
	inputs := []int{3, 4, 5, 2, 6, 1, 1, 7, 3, 3, 9, 2, 2, 2, 5, 4, 1, 8, 8, 3}
	start := reading{Filling: true}

	var want trace
	r := start
	for _, in := range inputs {
		next := advance(r, in)
		if next.Filling != r.Filling {
			want.Transitions++
		}
		r = next
		want.Readings = append(want.Readings, r)
	}
	require.NotZero(t, want.Transitions)

	direct := drive(mode.WithMode[mode.Self[*directTank, int, *directTank], *directTank, *directTank, int, *directTank](
		&directTank{start},
	), inputs)
	boxedRun := drive(mode.WithMode[boxed.Family[*boxedTank, int, *boxed.Box[*boxedTank]], *boxed.Box[*boxedTank], *boxedTank, int, *boxed.Box[*boxedTank]](
		boxed.New(&boxedTank{start}),
	), inputs)
	rcRun := drive(mode.WithMode[rc.Family[*rcTank, int], *rc.Rc[*rcTank], *rcTank, int, *rc.Rc[*rcTank]](
		rc.New(&rcTank{start}),
	), inputs)
	arcRun := drive(mode.WithMode[arc.Family[*arcTank, int], *arc.Arc[*arcTank], *arcTank, int, *arc.Arc[*arcTank]](
		arc.New(&arcTank{start}),
	), inputs)

	assert.Equal(t, want, direct, "direct")
	assert.Equal(t, want, boxedRun, "boxed")
	assert.Equal(t, want, rcRun, "rc")
	assert.Equal(t, want, arcRun, "arc")
}
