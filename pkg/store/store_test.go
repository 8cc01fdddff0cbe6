package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomSetNotifiesOnChange(t *testing.T) {
	a := NewAtom(1)
	var got []int
	stop := a.Listen(func(v int) { got = append(got, v) })

	a.Set(2)
	a.Set(2)
	a.Update(func(v int) int { return v + 1 })
	stop()
	a.Set(10)

	assert.Equal(t, []int{2, 3}, got)
	assert.Equal(t, 10, a.Get())
}

func TestAtomSubscribeCallsImmediately(t *testing.T) {
	a := NewAtom("x")
	var got []string
	stop := a.Subscribe(func(v string) { got = append(got, v) })
	defer stop()

	a.Set("y")
	assert.Equal(t, []string{"x", "y"}, got)
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	a := NewAtom(0)
	stop := a.Listen(func(int) {})
	other := a.Listen(func(int) {})
	require.Equal(t, 2, a.Listeners())

	stop()
	stop()
	assert.Equal(t, 1, a.Listeners())
	other()
	assert.Equal(t, 0, a.Listeners())
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	a := NewAtom(0)
	var calls int
	var stopB func()
	stopA := a.Listen(func(int) { stopB() })
	stopB = a.Listen(func(int) { calls++ })
	defer stopA()

	a.Set(1)
	assert.Equal(t, 0, calls, "removed during delivery, not called")
}

func TestDefaultEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"same int", 1, 1, true},
		{"int vs float", 1, 1.0, false},
		{"strings", "a", "a", true},
		{"slices", []any{"a"}, []any{"a"}, true},
		{"maps differ", map[string]any{"a": 1}, map[string]any{"a": 2}, false},
		{"nil", nil, nil, true},
		{"nil vs zero", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultEquals(tt.a, tt.b))
		})
	}
}

func TestWithEquals(t *testing.T) {
	a := NewAtom(1).WithEquals(func(x, y int) bool { return x%2 == y%2 })
	var calls int
	a.Listen(func(int) { calls++ })

	a.Set(3)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, a.Get())
	a.Set(4)
	assert.Equal(t, 1, calls)
}

func TestAtomSource(t *testing.T) {
	var src Source = NewAtom(5)
	assert.Equal(t, 5, src.Current())

	var got []any
	stop := src.SubscribeAny(func(v any) { got = append(got, v) })
	src.(*Atom[int]).Set(6)
	stop()
	assert.Equal(t, []any{5, 6}, got)
}

func TestAtomIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, NewAtom(0).ID(), NewAtom(0).ID())
}

func TestComputed(t *testing.T) {
	n := NewAtom(2)
	double := NewComputed(func() int { return n.Get() * 2 }, n)

	assert.Equal(t, 4, double.Get(), "evaluates while detached")
	assert.Equal(t, 0, n.Listeners())

	var got []int
	stop := double.Subscribe(func(v int) { got = append(got, v) })
	assert.Equal(t, 1, n.Listeners(), "attached on first subscription")

	n.Set(3)
	assert.Equal(t, 6, double.Get())
	stop()
	assert.Equal(t, 0, n.Listeners(), "detached with the last subscriber")

	n.Set(4)
	assert.Equal(t, []int{4, 6}, got)
	assert.Equal(t, 8, double.Get())
}

func TestComputedSuppressesUnchanged(t *testing.T) {
	n := NewAtom(1)
	parity := NewComputed(func() bool { return n.Get()%2 == 0 }, n)

	var calls int
	stop := parity.Listen(func(bool) { calls++ })
	defer stop()

	n.Set(3)
	assert.Equal(t, 0, calls)
	n.Set(4)
	assert.Equal(t, 1, calls)
}

func TestComputedSource(t *testing.T) {
	a := NewAtom("a")
	var src Source = NewComputed(func() string { return a.Get() + "!" }, a)
	assert.Equal(t, "a!", src.Current())

	var got []any
	stop := src.ListenAny(func(v any) { got = append(got, v) })
	a.Set("b")
	stop()
	assert.Equal(t, []any{"b!"}, got)
}
