package core

// Combiner2 coalesces transactions from two upstream parents into one
// downstream transaction per external event (spec §4.12). Parents are
// subscribed through AsLatest so LatestValue().Get() is current once each
// has fired at least once.
type Combiner2[A, B, R any] struct {
	*signalBase[R]

	p1      SignalNode[A]
	p2      SignalNode[B]
	combine func(A, B) R
	counter txnCounter
	sub1    *Receiver[A]
	sub2    *Receiver[B]
}

func NewCombiner2[A, B, R any](p1 SignalNode[A], p2 SignalNode[B], combine func(A, B) R) *Combiner2[A, B, R] {
	c := &Combiner2[A, B, R]{p1: AsLatest(p1), p2: AsLatest(p2), combine: combine}
	c.signalBase = newSignalBase[R](c)

	c.sub1 = subscribeWeak(c.p1, c, func(self *Combiner2[A, B, R], t Transaction[A]) {
		self.onParent(t.Kind())
	})
	c.sub2 = subscribeWeak(c.p2, c, func(self *Combiner2[A, B, R], t Transaction[B]) {
		self.onParent(t.Kind())
	})

	return c
}

func (c *Combiner2[A, B, R]) onParent(kind TxnKind) {
	c.counter.handle(kind,
		func() { c.PushTransaction(Begin[R]()) },
		func(nu bool) { resolveCombiner[R](c, nu) },
	)
}

func (c *Combiner2[A, B, R]) LatestValue() LatestValue[R] {
	v1 := c.p1.LatestValue().Get()
	v2 := c.p2.LatestValue().Get()
	if !v1.IsSome() || !v2.IsSome() {
		return LVNoneOf[R]()
	}
	combine := c.combine
	return LVComputedOf(func() R { return combine(v1.Unwrap(), v2.Unwrap()) })
}

func (c *Combiner2[A, B, R]) Close() {
	c.sub1.Close()
	c.sub2.Close()
}
