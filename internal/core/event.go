package core

// Event passes every transaction from parent verbatim but overrides
// LatestValue to always be None, so new subscribers are never primed with
// a synthetic initial value. It turns a stored-value signal into a pure
// event stream.
type Event[V any] struct {
	*signalBase[V]

	parent SignalNode[V]
	sub    *Receiver[V]
}

func NewEvent[V any](parent SignalNode[V]) *Event[V] {
	e := &Event[V]{parent: parent}
	e.signalBase = newSignalBase[V](e)

	e.sub = subscribeWeak(parent, e, func(self *Event[V], t Transaction[V]) {
		self.PushTransaction(t)
	})

	return e
}

func (e *Event[V]) LatestValue() LatestValue[V] {
	return LVNoneOf[V]()
}

func (e *Event[V]) Close() { e.sub.Close() }
