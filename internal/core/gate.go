package core

// Gate defers a source value until a boolean gate condition is satisfied
// (spec §4.14). deferred holds at most one pending value; a subsequent
// source Begin clears it regardless of whether the gate released it yet
// (invariant I8). transaction_count is shared across both the source and
// the gate subscriptions, exactly like a 2-parent Combiner.
type Gate[A any] struct {
	*signalBase[A]

	source SignalNode[A]
	gate   SignalNode[bool]

	deferred Option[A]
	counter  txnCounter

	subSource *Receiver[A]
	subGate   *Receiver[bool]
}

func NewGate[A any](source SignalNode[A], gate SignalNode[bool]) *Gate[A] {
	g := &Gate[A]{source: source, gate: AsLatest(gate)}
	g.signalBase = newSignalBase[A](g)

	g.subSource = subscribeWeak(source, g, func(self *Gate[A], t Transaction[A]) {
		switch t.Kind() {
		case TxnBegin:
			self.deferred = None[A]()
			self.counter.handle(TxnBegin, func() { self.PushTransaction(Begin[A]()) }, self.resolve)
		case TxnEnd:
			self.deferred = Some(t.Value())
			self.counter.handle(TxnEnd, func() { self.PushTransaction(Begin[A]()) }, self.resolve)
		case TxnCancel:
			self.counter.handle(TxnCancel, func() { self.PushTransaction(Begin[A]()) }, self.resolve)
		}
	})

	g.subGate = subscribeWeak(g.gate, g, func(self *Gate[A], t Transaction[bool]) {
		self.counter.handle(t.Kind(), func() { self.PushTransaction(Begin[A]()) }, self.resolve)
	})

	return g
}

// resolve is end-transaction bookkeeping: when the shared transaction_count
// returns to 0, release the deferred value iff one is pending and the gate
// currently reads true; otherwise cancel.
func (g *Gate[A]) resolve(bool) {
	if g.deferred.IsSome() {
		if gv := g.gate.LatestValue().Get(); gv.IsSome() && gv.Unwrap() {
			v := g.deferred.Unwrap()
			g.deferred = None[A]()
			g.PushTransaction(End(v))
			return
		}
	}
	g.PushTransaction(Cancel[A]())
}

func (g *Gate[A]) Close() {
	g.subSource.Close()
	g.subGate.Close()
}
