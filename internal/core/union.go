package core

// Union forwards every transaction from any of N homogeneous parents,
// unchanged and uncoalesced: simultaneous events from multiple parents
// produce multiple downstream transactions, in parent-subscription order.
// LatestValue is not overridden (defaults to None) — compose with Latest
// when a cached value across the union is wanted.
type Union[V any] struct {
	*signalBase[V]

	subs []*Receiver[V]
}

func NewUnion[V any](parents ...SignalNode[V]) *Union[V] {
	u := &Union[V]{}
	u.signalBase = newSignalBase[V](u)

	for _, p := range parents {
		u.subs = append(u.subs, subscribeWeak(p, u, func(self *Union[V], t Transaction[V]) {
			self.PushTransaction(t)
		}))
	}

	return u
}

func (u *Union[V]) Close() {
	for _, sub := range u.subs {
		sub.Close()
	}
}
