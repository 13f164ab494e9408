package core

// Mapped is the f: A -> B pure-transform operator. Begin and Cancel pass
// through unchanged; End(v) becomes End(f(v)).
type Mapped[A, B any] struct {
	*signalBase[B]

	parent SignalNode[A]
	f      func(A) B
	sub    *Receiver[A]
}

func NewMapped[A, B any](parent SignalNode[A], f func(A) B) *Mapped[A, B] {
	m := &Mapped[A, B]{parent: parent, f: f}
	m.signalBase = newSignalBase[B](m)

	m.sub = subscribeWeak(parent, m, func(self *Mapped[A, B], t Transaction[A]) {
		switch t.Kind() {
		case TxnBegin:
			self.PushTransaction(Begin[B]())
		case TxnEnd:
			self.PushTransaction(End(self.f(t.Value())))
		case TxnCancel:
			self.PushTransaction(Cancel[B]())
		}
	})

	return m
}

// LatestValue mirrors the parent's: None passes through; Stored/Computed
// become Computed(f applied to the parent's current value).
func (m *Mapped[A, B]) LatestValue() LatestValue[B] {
	lv := m.parent.LatestValue()
	if !lv.Has() {
		return LVNoneOf[B]()
	}

	f := m.f
	return LVComputedOf(func() B { return f(lv.Get().Unwrap()) })
}

// Close eagerly cancels the subscription on the parent.
func (m *Mapped[A, B]) Close() { m.sub.Close() }
