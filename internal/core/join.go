package core

// Joined is the monadic join for Signal[Signal[V]] -> Signal[V] (spec
// §4.16). Each outer End(innerSignal) replaces the active inner
// subscription with a fresh one that forwards the inner's transactions
// verbatim; the outer's own Begin/Cancel are never forwarded, only the
// inner's are. Replacing the inner cleanly closes the old subscription
// first. The new subscription is non-priming: switching inner must not
// replay the new inner's current value as a synthetic transaction, only
// forward events the inner emits from here on.
type Joined[V any] struct {
	*signalBase[V]

	outer    SignalNode[SignalNode[V]]
	outerSub *Receiver[SignalNode[V]]

	inner    SignalNode[V]
	innerSub *Receiver[V]
}

func NewJoined[V any](outer SignalNode[SignalNode[V]]) *Joined[V] {
	j := &Joined[V]{outer: outer}
	j.signalBase = newSignalBase[V](j)

	j.outerSub = subscribeWeak(outer, j, func(self *Joined[V], t Transaction[SignalNode[V]]) {
		if t.IsEnd() {
			self.switchInner(t.Value())
		}
	})

	return j
}

func (j *Joined[V]) switchInner(inner SignalNode[V]) {
	if j.innerSub != nil {
		j.innerSub.Close()
		j.innerSub = nil
	}

	j.inner = inner
	j.innerSub = subscribeWeakNoPrime(inner, j, func(self *Joined[V], t Transaction[V]) {
		self.PushTransaction(t)
	})
}

func (j *Joined[V]) LatestValue() LatestValue[V] {
	if j.inner == nil {
		return LVNoneOf[V]()
	}
	return j.inner.LatestValue()
}

func (j *Joined[V]) Close() {
	if j.innerSub != nil {
		j.innerSub.Close()
	}
	j.outerSub.Close()
}
