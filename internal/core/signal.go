package core

// Observer is a callback registered on a SignalNode; it receives every
// transaction pushed through the node it's registered on.
type Observer[V any] func(Transaction[V])

// SignalNode is the interface every concrete node type (Input, Const,
// ComputedSignal, and every operator) presents to its children and parents:
// push callbacks outward, pull LatestValue inward. Embedding *signalBase[V]
// and overriding LatestValue where needed is the idiomatic way to implement
// it — the trait-with-virtual-dispatch shape the design notes recommend,
// expressed through Go's method-shadowing-on-embedding rather than an
// explicit vtable.
type SignalNode[V any] interface {
	AddObserver(cb Observer[V]) int64
	RemoveObserver(key int64)
	PushTransaction(t Transaction[V])
	PushValue(v V)
	LatestValue() LatestValue[V]

	// addRaw registers cb without priming it from the current LatestValue,
	// bypassing any embedder's AddObserver override (e.g. Filter's). Joined
	// uses this for its inner subscription: switching to a new inner must
	// only forward the inner's own future transactions, never replay its
	// current value as a synthetic one (spec §4.16).
	addRaw(cb Observer[V]) int64
}

// signalBase is the base node every concrete Signal type embeds. It owns
// the observer KeyedSet and implements the priming handshake, but does not
// override LatestValue — embedders that have no cached/stored value at all
// (e.g. Filter) get the correct default of None for free.
type signalBase[V any] struct {
	self      SignalNode[V] // set by the embedder so LatestValue() for priming dispatches virtually
	observers *KeyedSet[Observer[V]]
}

func newSignalBase[V any](self SignalNode[V]) *signalBase[V] {
	return &signalBase[V]{
		self:      self,
		observers: NewKeyedSet[Observer[V]](),
	}
}

// AddObserver registers cb. If the node's LatestValue reports Has() == true,
// cb is primed synchronously with a Begin/End(v) pair before being
// inserted into the observer set — new subscribers see current state.
func (s *signalBase[V]) AddObserver(cb Observer[V]) int64 {
	lv := s.self.LatestValue()
	if lv.Has() {
		v := lv.Get().Unwrap()
		cb(Begin[V]())
		cb(End(v))
	}

	return s.observers.Add(cb)
}

func (s *signalBase[V]) RemoveObserver(key int64) {
	s.observers.Remove(key)
}

func (s *signalBase[V]) addRaw(cb Observer[V]) int64 {
	return s.observers.Add(cb)
}

// PushTransaction synchronously invokes every currently-registered observer
// with t, in KeyedSet iteration order.
func (s *signalBase[V]) PushTransaction(t Transaction[V]) {
	s.observers.Each(func(cb Observer[V]) {
		cb(t)
	})
}

// PushValue is shorthand for PushTransaction(Begin) then
// PushTransaction(End(v)).
func (s *signalBase[V]) PushValue(v V) {
	s.PushTransaction(Begin[V]())
	s.PushTransaction(End(v))
}

// LatestValue defaults to None; overridden by concrete node types that have
// a value to report.
func (s *signalBase[V]) LatestValue() LatestValue[V] {
	return LVNoneOf[V]()
}
