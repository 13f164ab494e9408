package core

// OnChange suppresses repeated equal values: End(v) is forwarded only when
// v differs from the last admitted value, otherwise it is cancelled.
// Begin/Cancel pass through unchanged.
type OnChange[V comparable] struct {
	*signalBase[V]

	parent SignalNode[V]
	cached Option[V]
	sub    *Receiver[V]
}

func NewOnChange[V comparable](parent SignalNode[V]) *OnChange[V] {
	o := &OnChange[V]{parent: parent}
	o.signalBase = newSignalBase[V](o)

	o.sub = subscribeWeak(parent, o, func(self *OnChange[V], t Transaction[V]) {
		switch t.Kind() {
		case TxnBegin:
			self.PushTransaction(Begin[V]())
		case TxnEnd:
			v := t.Value()
			if self.cached.IsSome() && self.cached.Unwrap() == v {
				self.PushTransaction(Cancel[V]())
				return
			}
			self.cached = Some(v)
			self.PushTransaction(End(v))
		case TxnCancel:
			self.PushTransaction(Cancel[V]())
		}
	})

	return o
}

func (o *OnChange[V]) LatestValue() LatestValue[V] {
	if o.cached.IsSome() {
		return LVStoredOf(o.cached.Unwrap())
	}
	return LVNoneOf[V]()
}

func (o *OnChange[V]) Close() { o.sub.Close() }
