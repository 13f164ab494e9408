package core

// Wrapped forwards all transactions and mirrors the parent's LatestValue
// directly, without caching of its own. It is a type-erasure aid: unlike
// Latest, it doesn't remember a value independently of the parent.
type Wrapped[V any] struct {
	*signalBase[V]

	parent SignalNode[V]
	sub    *Receiver[V]
}

func NewWrapped[V any](parent SignalNode[V]) *Wrapped[V] {
	w := &Wrapped[V]{parent: parent}
	w.signalBase = newSignalBase[V](w)

	w.sub = subscribeWeak(parent, w, func(self *Wrapped[V], t Transaction[V]) {
		self.PushTransaction(t)
	})

	return w
}

func (w *Wrapped[V]) LatestValue() LatestValue[V] {
	return w.parent.LatestValue()
}

func (w *Wrapped[V]) Close() { w.sub.Close() }
