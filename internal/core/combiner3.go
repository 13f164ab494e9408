package core

// Combiner3 is Combiner2 generalized to three parents; see Combiner2 for
// the shared rationale (spec §4.12).
type Combiner3[A, B, C, R any] struct {
	*signalBase[R]

	p1      SignalNode[A]
	p2      SignalNode[B]
	p3      SignalNode[C]
	combine func(A, B, C) R
	counter txnCounter
	sub1    *Receiver[A]
	sub2    *Receiver[B]
	sub3    *Receiver[C]
}

func NewCombiner3[A, B, C, R any](p1 SignalNode[A], p2 SignalNode[B], p3 SignalNode[C], combine func(A, B, C) R) *Combiner3[A, B, C, R] {
	c := &Combiner3[A, B, C, R]{p1: AsLatest(p1), p2: AsLatest(p2), p3: AsLatest(p3), combine: combine}
	c.signalBase = newSignalBase[R](c)

	c.sub1 = subscribeWeak(c.p1, c, func(self *Combiner3[A, B, C, R], t Transaction[A]) { self.onParent(t.Kind()) })
	c.sub2 = subscribeWeak(c.p2, c, func(self *Combiner3[A, B, C, R], t Transaction[B]) { self.onParent(t.Kind()) })
	c.sub3 = subscribeWeak(c.p3, c, func(self *Combiner3[A, B, C, R], t Transaction[C]) { self.onParent(t.Kind()) })

	return c
}

func (c *Combiner3[A, B, C, R]) onParent(kind TxnKind) {
	c.counter.handle(kind,
		func() { c.PushTransaction(Begin[R]()) },
		func(nu bool) { resolveCombiner[R](c, nu) },
	)
}

func (c *Combiner3[A, B, C, R]) LatestValue() LatestValue[R] {
	v1 := c.p1.LatestValue().Get()
	v2 := c.p2.LatestValue().Get()
	v3 := c.p3.LatestValue().Get()
	if !v1.IsSome() || !v2.IsSome() || !v3.IsSome() {
		return LVNoneOf[R]()
	}
	combine := c.combine
	return LVComputedOf(func() R { return combine(v1.Unwrap(), v2.Unwrap(), v3.Unwrap()) })
}

func (c *Combiner3[A, B, C, R]) Close() {
	c.sub1.Close()
	c.sub2.Close()
	c.sub3.Close()
}
