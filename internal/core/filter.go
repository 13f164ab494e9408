package core

// Filter admits End(v) downstream only when p(v) holds; otherwise the
// transaction is cancelled. LatestValue is intentionally NOT overridden —
// it defaults to None, because a filter has no value until it has actually
// admitted one. Compose with Latest when a cached value is wanted.
type Filter[V any] struct {
	*signalBase[V]

	parent SignalNode[V]
	p      func(V) bool
	sub    *Receiver[V]
}

func NewFilter[V any](parent SignalNode[V], p func(V) bool) *Filter[V] {
	f := &Filter[V]{parent: parent, p: p}
	f.signalBase = newSignalBase[V](f)

	f.sub = subscribeWeak(parent, f, func(self *Filter[V], t Transaction[V]) {
		switch t.Kind() {
		case TxnBegin:
			self.PushTransaction(Begin[V]())
		case TxnEnd:
			v := t.Value()
			if self.p(v) {
				self.PushTransaction(End(v))
			} else {
				self.PushTransaction(Cancel[V]())
			}
		case TxnCancel:
			self.PushTransaction(Cancel[V]())
		}
	})

	return f
}

// AddObserver primes each new subscriber individually by pulling the
// parent's current LatestValue and applying the predicate — Filter keeps
// no cache of its own (LatestValue stays None, per above), but a new
// subscriber still needs to see an already-admitted current value the same
// way Input/Const subscribers do. Pulling fresh per subscriber (rather than
// replaying push history) is what makes Filter composable as a Combiner/
// Gate parent via AsLatest regardless of when it was constructed relative
// to its own first observer.
func (f *Filter[V]) AddObserver(cb Observer[V]) int64 {
	if pv := f.parent.LatestValue().Get(); pv.IsSome() && f.p(pv.Unwrap()) {
		cb(Begin[V]())
		cb(End(pv.Unwrap()))
	}
	return f.signalBase.AddObserver(cb)
}

func (f *Filter[V]) Close() { f.sub.Close() }
