package core

// txnCounter is the transaction_count/needs_update bookkeeping shared by
// Combiner, Gate, and Throttle (spec §4.12/§4.14/§4.15 describe the same
// shape three times): a counting semaphore across N upstream Begin/End|
// Cancel pairs that only lets one downstream Begin through on the 0->1
// edge, and decides End vs. Cancel once the count falls back to zero.
type txnCounter struct {
	count        uint32
	needsUpdate  bool
	anyCancelled bool
}

// handle processes one upstream transaction kind. onBeginEdge fires exactly
// once per 0->1 transition. onZero fires exactly once per 1->0 transition,
// with its argument true iff at least one End was observed during the span
// that just closed AND no sibling transaction in that same span Cancelled.
// The latter half isn't in so many words in the combiner write-up, but is
// required for the diamond-dependency case where one branch rejects: a
// rejection anywhere in the coalescing window must force an overall
// Cancel, never a recombination computed from a stale sibling value.
func (c *txnCounter) handle(kind TxnKind, onBeginEdge func(), onZero func(ready bool)) {
	switch kind {
	case TxnBegin:
		if c.count == 0 {
			onBeginEdge()
			c.needsUpdate = false
			c.anyCancelled = false
		}
		c.count++

	case TxnEnd:
		c.needsUpdate = true
		c.decrement(onZero)

	case TxnCancel:
		c.anyCancelled = true
		c.decrement(onZero)
	}
}

func (c *txnCounter) decrement(onZero func(ready bool)) {
	if c.count == 0 {
		panic("core: transaction count underflow (unbalanced Begin/End|Cancel)")
	}

	c.count--
	if c.count == 0 {
		ready := c.needsUpdate && !c.anyCancelled
		c.needsUpdate = false
		c.anyCancelled = false
		onZero(ready)
	}
}
