package core

// Combiner6 is Combiner2 generalized to six parents; see Combiner2 for
// the shared rationale (spec §4.12).
type Combiner6[A, B, C, D, E, F, R any] struct {
	*signalBase[R]

	p1      SignalNode[A]
	p2      SignalNode[B]
	p3      SignalNode[C]
	p4      SignalNode[D]
	p5      SignalNode[E]
	p6      SignalNode[F]
	combine func(A, B, C, D, E, F) R
	counter txnCounter
	sub1    *Receiver[A]
	sub2    *Receiver[B]
	sub3    *Receiver[C]
	sub4    *Receiver[D]
	sub5    *Receiver[E]
	sub6    *Receiver[F]
}

func NewCombiner6[A, B, C, D, E, F, R any](p1 SignalNode[A], p2 SignalNode[B], p3 SignalNode[C], p4 SignalNode[D], p5 SignalNode[E], p6 SignalNode[F], combine func(A, B, C, D, E, F) R) *Combiner6[A, B, C, D, E, F, R] {
	c := &Combiner6[A, B, C, D, E, F, R]{p1: AsLatest(p1), p2: AsLatest(p2), p3: AsLatest(p3), p4: AsLatest(p4), p5: AsLatest(p5), p6: AsLatest(p6), combine: combine}
	c.signalBase = newSignalBase[R](c)

	c.sub1 = subscribeWeak(c.p1, c, func(self *Combiner6[A, B, C, D, E, F, R], t Transaction[A]) { self.onParent(t.Kind()) })
	c.sub2 = subscribeWeak(c.p2, c, func(self *Combiner6[A, B, C, D, E, F, R], t Transaction[B]) { self.onParent(t.Kind()) })
	c.sub3 = subscribeWeak(c.p3, c, func(self *Combiner6[A, B, C, D, E, F, R], t Transaction[C]) { self.onParent(t.Kind()) })
	c.sub4 = subscribeWeak(c.p4, c, func(self *Combiner6[A, B, C, D, E, F, R], t Transaction[D]) { self.onParent(t.Kind()) })
	c.sub5 = subscribeWeak(c.p5, c, func(self *Combiner6[A, B, C, D, E, F, R], t Transaction[E]) { self.onParent(t.Kind()) })
	c.sub6 = subscribeWeak(c.p6, c, func(self *Combiner6[A, B, C, D, E, F, R], t Transaction[F]) { self.onParent(t.Kind()) })

	return c
}

func (c *Combiner6[A, B, C, D, E, F, R]) onParent(kind TxnKind) {
	c.counter.handle(kind,
		func() { c.PushTransaction(Begin[R]()) },
		func(nu bool) { resolveCombiner[R](c, nu) },
	)
}

func (c *Combiner6[A, B, C, D, E, F, R]) LatestValue() LatestValue[R] {
	v1 := c.p1.LatestValue().Get()
	v2 := c.p2.LatestValue().Get()
	v3 := c.p3.LatestValue().Get()
	v4 := c.p4.LatestValue().Get()
	v5 := c.p5.LatestValue().Get()
	v6 := c.p6.LatestValue().Get()
	if !v1.IsSome() || !v2.IsSome() || !v3.IsSome() || !v4.IsSome() || !v5.IsSome() || !v6.IsSome() {
		return LVNoneOf[R]()
	}
	combine := c.combine
	return LVComputedOf(func() R {
		return combine(v1.Unwrap(), v2.Unwrap(), v3.Unwrap(), v4.Unwrap(), v5.Unwrap(), v6.Unwrap())
	})
}

func (c *Combiner6[A, B, C, D, E, F, R]) Close() {
	c.sub1.Close()
	c.sub2.Close()
	c.sub3.Close()
	c.sub4.Close()
	c.sub5.Close()
	c.sub6.Close()
}
