package core

// Input is a Signal whose value is set by imperative code at the boundary.
// Assignment is reentrancy-guarded: calling Set again from within a
// callback that is itself downstream of this same Input's current
// propagation is a programmer error and panics, mirroring the teacher's
// Signal.Write guard (internal/signal.go).
type Input[V any] struct {
	*signalBase[V]

	engine *Engine
	value  V
	inTxn  bool
}

// NewInput creates an Input seeded with initial.
func NewInput[V any](engine *Engine, initial V) *Input[V] {
	in := &Input[V]{value: initial, engine: engine}
	in.signalBase = newSignalBase[V](in)
	return in
}

// Get returns the current value.
func (in *Input[V]) Get() V {
	return in.value
}

// Set assigns a new value and pushes a single Begin/End(v) transaction.
// Reentrant assignment from within this Input's own propagation aborts.
func (in *Input[V]) Set(v V) {
	in.engine.checkAffinity()

	if in.inTxn {
		panic("core: reentrant Input.Set during its own propagation")
	}

	in.inTxn = true
	defer func() { in.inTxn = false }()

	in.value = v
	in.PushValue(v)
}

// Modify applies f to the current value and assigns the result.
func (in *Input[V]) Modify(f func(V) V) {
	in.Set(f(in.Get()))
}

// LatestValue is always Stored(value) for an Input.
func (in *Input[V]) LatestValue() LatestValue[V] {
	return LVStoredOf(in.value)
}
