package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput(t *testing.T) {
	t.Run("read and write", func(t *testing.T) {
		in := NewInput(NewEngine(), 0)
		assert.Equal(t, 0, in.Get())

		in.Set(10)
		assert.Equal(t, 10, in.Get())
	})

	t.Run("reentrant assignment panics", func(t *testing.T) {
		in := NewInput(NewEngine(), 0)
		r := NewReceiver[int](in, func(Transaction[int]) {
			in.Set(99)
		})
		defer r.Close()

		assert.Panics(t, func() { in.Set(1) })
	})

	t.Run("modify applies f to current value", func(t *testing.T) {
		in := NewInput(NewEngine(), 5)
		in.Modify(func(v int) int { return v + 1 })
		assert.Equal(t, 6, in.Get())
	})
}

func TestSignalBasePriming(t *testing.T) {
	// Invariant I2: a fresh subscription to a node whose latest_value.has
	// is true receives exactly one (Begin, End(v)) pair synchronously.
	c := NewConst(42)

	var kinds []TxnKind
	r := NewReceiver[int](c, func(txn Transaction[int]) {
		kinds = append(kinds, txn.Kind())
	})
	defer r.Close()

	assert.Equal(t, []TxnKind{TxnBegin, TxnEnd}, kinds)
}

func TestNeverDoesNotPrime(t *testing.T) {
	n := NewNever[int]()

	var fired bool
	r := NewReceiver[int](n, func(Transaction[int]) { fired = true })
	defer r.Close()

	assert.False(t, fired)
	assert.False(t, n.LatestValue().Has())
}

func TestReceiverCloseDeregisters(t *testing.T) {
	// Invariant I3: dropping a Receiver deregisters before any further
	// push on its source observes it.
	in := NewInput(NewEngine(), 0)

	var count int
	r := NewReceiver[int](in, func(Transaction[int]) { count++ })

	in.Set(1)
	countAfterFirst := count

	r.Close()
	in.Set(2)

	assert.Equal(t, countAfterFirst, count)
}

func TestMapped(t *testing.T) {
	in := NewInput(NewEngine(), 0)
	m := NewMapped(in, func(n int) int { return n + 1 })

	var captured []int
	out := NewOutput[int](m, func(v int) { captured = append(captured, v) })
	defer out.Close()

	// Scenario S1.
	in.Set(3)
	in.Set(4)
	in.Set(5)

	assert.Equal(t, []int{1, 4, 5, 6}, captured)
}

func TestFilter(t *testing.T) {
	in := NewInput(NewEngine(), 0)
	f := NewFilter(in, func(n int) bool { return n < 5 })

	var captured []int
	out := NewOutput[int](f, func(v int) { captured = append(captured, v) })
	defer out.Close()

	// Scenario S2: priming through Filter admits the initial 0.
	in.Set(3)
	in.Set(4)
	in.Set(7)

	assert.Equal(t, []int{0, 3, 4}, captured)

	assert.False(t, f.LatestValue().Has(), "Filter never overrides LatestValue")
}

func TestDiamondCombinerSuppressesGlitches(t *testing.T) {
	// Scenario S3.
	w := NewInput(NewEngine(), 0)
	x := NewMapped(w, func(n int) int { return n + 2 })
	y := NewFilter(NewMapped(w, func(n int) int { return n - 9 }), func(n int) bool { return n < 5 })
	z := NewCombiner2(x, y, func(a, b int) int { return a + b })

	var captured []int
	out := NewOutput[int](z, func(v int) { captured = append(captured, v) })
	defer out.Close()

	assert.Equal(t, []int{-7}, captured)

	w.Set(12)
	assert.Equal(t, []int{-7, 17}, captured)

	w.Set(20)
	assert.Equal(t, []int{-7, 17}, captured, "rejected branch must cancel, not emit a glitch")
}

func TestLatestNeverDoubleWraps(t *testing.T) {
	// Invariant I5.
	in := NewInput(NewEngine(), 0)
	l1 := AsLatest[int](in)
	l2 := AsLatest[int](l1)

	assert.Same(t, l1, l2)
}

func TestOnChangeSuppressesRepeats(t *testing.T) {
	// Invariant I6.
	in := NewInput(NewEngine(), 0)
	oc := NewOnChange(in)

	var captured []int
	out := NewOutput[int](oc, func(v int) { captured = append(captured, v) })
	defer out.Close()

	in.Set(1)
	in.Set(1)
	in.Set(2)
	in.Set(2)
	in.Set(2)

	assert.Equal(t, []int{0, 1, 2}, captured)
}

func TestEventNeverPrimesAndNeverCaches(t *testing.T) {
	// Invariant I7.
	in := NewInput(NewEngine(), 0)
	ev := NewEvent[int](in)

	var captured []int
	out := NewOutput[int](ev, func(v int) { captured = append(captured, v) })
	defer out.Close()

	assert.Empty(t, captured, "Event must not prime new subscribers")
	assert.False(t, ev.LatestValue().Has())

	in.Set(9)
	assert.Equal(t, []int{9}, captured)
	assert.False(t, ev.LatestValue().Has())
}

func TestUnionForwardsEachParentIndependently(t *testing.T) {
	a := NewInput(NewEngine(), 0)
	b := NewInput(NewEngine(), 0)
	u := NewUnion[int](a, b)

	var captured []int
	out := NewOutput[int](u, func(v int) { captured = append(captured, v) })
	defer out.Close()

	a.Set(1)
	b.Set(2)

	assert.Equal(t, []int{1, 2}, captured)
}

func TestGate(t *testing.T) {
	// Scenario S4.
	s := NewInput(NewEngine(), 0)
	g := NewInput(NewEngine(), false)
	gated := NewGate[int](NewEvent[int](s), g)

	var captured []int
	out := NewOutput[int](gated, func(v int) { captured = append(captured, v) })
	defer out.Close()

	s.Set(5)
	s.Set(6)
	assert.Empty(t, captured)

	g.Set(true)
	g.Set(false)
	g.Set(true)

	assert.Equal(t, []int{6}, captured, "only a single release for the one pending value")
}

func TestGateClearsDeferredOnNewSourceBegin(t *testing.T) {
	// Invariant I8.
	s := NewInput(NewEngine(), 0)
	g := NewInput(NewEngine(), false)
	gated := NewGate[int](NewEvent[int](s), g)

	var captured []int
	out := NewOutput[int](gated, func(v int) { captured = append(captured, v) })
	defer out.Close()

	s.Set(1)
	s.Set(2) // clears the still-pending deferred(1) before it's ever released
	g.Set(true)

	assert.Equal(t, []int{2}, captured)
}

func TestBooleanCombinators(t *testing.T) {
	// Scenario S5.
	a := NewInput(NewEngine(), false)
	b := NewInput(NewEngine(), false)
	or := NewCombiner2(a, b, func(x, y bool) bool { return x || y })

	var captured []bool
	out := NewOutput[bool](or, func(v bool) { captured = append(captured, v) })
	defer out.Close()

	a.Set(true)
	b.Set(true)
	a.Set(false)
	b.Set(false)

	assert.Equal(t, []bool{false, true, true, true, false}, captured)
}

func TestJoinSwitchesInnerAndStopsForwardingOld(t *testing.T) {
	// Scenario S6.
	inner1 := NewInput(NewEngine(), false)
	outer := NewInput[SignalNode[bool]](NewEngine(), inner1)
	j := NewJoined[bool](outer)

	var captured []bool
	out := NewOutput[bool](j, func(v bool) { captured = append(captured, v) })
	defer out.Close()

	assert.Equal(t, []bool{false}, captured)

	inner1.Set(true)
	assert.Equal(t, []bool{false, true}, captured)

	inner2 := NewInput(NewEngine(), true)
	outer.Set(inner2)

	inner1.Set(false)
	assert.Equal(t, []bool{false, true}, captured, "old inner must no longer be forwarded")
}

func TestMappedWith1CancelsWhenAuxMissing(t *testing.T) {
	parent := NewInput(NewEngine(), 0)
	aux := NewNever[int]()
	mw := NewMappedWith1[int, int, int](parent, aux, func(a, x int) int { return a + x })

	var captured []int
	out := NewOutput[int](mw, func(v int) { captured = append(captured, v) })
	defer out.Close()

	parent.Set(1)
	assert.Empty(t, captured, "no aux value yet, transaction must cancel")
}

func TestKeyedSetSafeDuringIteration(t *testing.T) {
	ks := NewKeyedSet[func()]()

	var ran []string
	var keyB int64

	ks.Add(func() { ran = append(ran, "a") })
	keyB = ks.Add(func() { ran = append(ran, "b") })
	ks.Add(func() {
		ks.Remove(keyB)
		ran = append(ran, "c")
	})

	ks.Each(func(fn func()) { fn() })

	assert.Equal(t, []string{"a", "b", "c"}, ran, "removal mid-iteration must not skip or double-visit")
	assert.Equal(t, 2, ks.Len())
}
