package core

// Const is a Signal with an immutable value; it never pushes and primes
// every new subscriber once with that value.
type Const[V any] struct {
	*signalBase[V]
	value V
}

func NewConst[V any](v V) *Const[V] {
	c := &Const[V]{value: v}
	c.signalBase = newSignalBase[V](c)
	return c
}

func (c *Const[V]) LatestValue() LatestValue[V] {
	return LVStoredOf(c.value)
}

// Never is an inert node: it never pushes and its LatestValue is always
// None, so it never primes subscribers.
type Never[V any] struct {
	*signalBase[V]
}

func NewNever[V any]() *Never[V] {
	n := &Never[V]{}
	n.signalBase = newSignalBase[V](n)
	return n
}

// ComputedSignal wraps a thunk; it never pushes and its LatestValue is
// always Computed(thunk), recomputed on every pull.
type ComputedSignal[V any] struct {
	*signalBase[V]
	thunk func() V
}

func NewComputedSignal[V any](thunk func() V) *ComputedSignal[V] {
	c := &ComputedSignal[V]{thunk: thunk}
	c.signalBase = newSignalBase[V](c)
	return c
}

func (c *ComputedSignal[V]) LatestValue() LatestValue[V] {
	return LVComputedOf(c.thunk)
}
