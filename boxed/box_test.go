package boxed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librescoot/mode"
	"github.com/librescoot/mode/boxed"
)

type token struct {
	name    string
	dropped *int
}

func (t *token) Drop() { *t.dropped++ }

// Swap moves to a token named in. "take:<name>" takes the current token
// first, so the family has nothing left to drop.
func (t *token) Swap(self *boxed.Box[*token], in string) *boxed.Box[*token] {
	switch in {
	case t.name:
		return self
	case "take:" + t.name:
		self.Take()
		return boxed.New(&token{name: "taken", dropped: t.dropped})
	}
	return boxed.New(&token{name: in, dropped: t.dropped})
}

type family = boxed.Family[*token, string, *boxed.Box[*token]]

func TestBoxLifecycle(t *testing.T) {
	var dropped int
	b := boxed.New(&token{name: "a", dropped: &dropped})
	require.True(t, b.Live())
	assert.Equal(t, "a", b.Get().name)

	v := b.Take()
	assert.Equal(t, "a", v.name)
	assert.False(t, b.Live())
	assert.PanicsWithValue(t, "boxed: use of moved box", func() { b.Get() })
	assert.PanicsWithValue(t, "boxed: use of moved box", func() { b.Take() })

	b.Drop()
	assert.Equal(t, 0, dropped, "a moved value is not dropped")
}

func TestBoxDrop(t *testing.T) {
	var dropped int
	b := boxed.New(&token{name: "a", dropped: &dropped})
	b.Drop()
	b.Drop()
	assert.Equal(t, 1, dropped)
	assert.False(t, b.Live())

	// Values without a Drop method are simply discarded.
	n := boxed.New(42)
	n.Drop()
	assert.False(t, n.Live())
}

func TestFamilySwap(t *testing.T) {
	var f family
	var dropped int
	b := boxed.New(&token{name: "a", dropped: &dropped})

	t.Run("stay", func(t *testing.T) {
		out := f.Swap(b, "a")
		assert.Same(t, b, out)
		assert.True(t, b.Live())
		assert.Equal(t, 0, dropped)
	})

	t.Run("replace drops the old mode", func(t *testing.T) {
		out := f.Swap(b, "b")
		assert.Equal(t, "b", f.Base(out).name)
		assert.False(t, b.Live())
		assert.Equal(t, 1, dropped)
		b = out
	})

	t.Run("replace after take does not drop", func(t *testing.T) {
		out := f.Swap(b, "take:b")
		assert.Equal(t, "taken", f.Base(out).name)
		assert.False(t, b.Live())
		assert.Equal(t, 1, dropped)
	})
}

type counter struct {
	n       int
	dropped *int
}

func (c *counter) Drop() { *c.dropped++ }

func (c *counter) Swap(self *boxed.Box[*counter], step int) mode.Swapped[*boxed.Box[*counter], int] {
	if step == 0 {
		return mode.Stay(self, c.n)
	}
	return mode.Swapped[*boxed.Box[*counter], int]{Mode: boxed.New(&counter{n: c.n + step, dropped: c.dropped}), Result: c.n}
}

func TestFamilySwapWithOutput(t *testing.T) {
	type output = mode.Swapped[*boxed.Box[*counter], int]
	var dropped int
	a := mode.WithMode[boxed.Family[*counter, int, output], *boxed.Box[*counter], *counter, int, output](
		boxed.New(&counter{dropped: &dropped}),
	)

	assert.Equal(t, 0, mode.NextWithOutput(a, 5))
	assert.Equal(t, 5, mode.NextWithOutput(a, 0))
	assert.Equal(t, 5, mode.NextWithOutput(a, 2))
	assert.Equal(t, 7, a.Base().n)
	assert.Equal(t, 2, dropped)
	assert.Equal(t, uint64(2), a.Transitions())
}
