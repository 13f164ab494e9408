package core

// MappedWith1 is the pull-style variant of Mapped (spec §4.13): the
// primary parent's End drives emission, but the auxiliary signal's value
// is sampled via LatestValue (pull), not pushed. If the auxiliary has no
// value yet, the transaction is cancelled rather than emitted.
type MappedWith1[A, X, R any] struct {
	*signalBase[R]

	parent SignalNode[A]
	aux    SignalNode[X]
	f      func(A, X) R
	sub    *Receiver[A]
}

func NewMappedWith1[A, X, R any](parent SignalNode[A], aux SignalNode[X], f func(A, X) R) *MappedWith1[A, X, R] {
	m := &MappedWith1[A, X, R]{parent: parent, aux: aux, f: f}
	m.signalBase = newSignalBase[R](m)

	m.sub = subscribeWeak(parent, m, func(self *MappedWith1[A, X, R], t Transaction[A]) {
		switch t.Kind() {
		case TxnBegin:
			self.PushTransaction(Begin[R]())
		case TxnEnd:
			av := self.aux.LatestValue().Get()
			if !av.IsSome() {
				self.PushTransaction(Cancel[R]())
				return
			}
			self.PushTransaction(End(self.f(t.Value(), av.Unwrap())))
		case TxnCancel:
			self.PushTransaction(Cancel[R]())
		}
	})

	return m
}

func (m *MappedWith1[A, X, R]) LatestValue() LatestValue[R] {
	pv := m.parent.LatestValue()
	if !pv.Has() {
		return LVNoneOf[R]()
	}
	if !m.aux.LatestValue().Has() {
		return LVNoneOf[R]()
	}

	f, parent, aux := m.f, m.parent, m.aux
	return LVComputedOf(func() R {
		a := parent.LatestValue().Get().Unwrap()
		x := aux.LatestValue().Get().Unwrap()
		return f(a, x)
	})
}

func (m *MappedWith1[A, X, R]) Close() { m.sub.Close() }

// MappedWith2 is MappedWith1 generalized to two auxiliary signals.
type MappedWith2[A, X, Y, R any] struct {
	*signalBase[R]

	parent SignalNode[A]
	aux1   SignalNode[X]
	aux2   SignalNode[Y]
	f      func(A, X, Y) R
	sub    *Receiver[A]
}

func NewMappedWith2[A, X, Y, R any](parent SignalNode[A], aux1 SignalNode[X], aux2 SignalNode[Y], f func(A, X, Y) R) *MappedWith2[A, X, Y, R] {
	m := &MappedWith2[A, X, Y, R]{parent: parent, aux1: aux1, aux2: aux2, f: f}
	m.signalBase = newSignalBase[R](m)

	m.sub = subscribeWeak(parent, m, func(self *MappedWith2[A, X, Y, R], t Transaction[A]) {
		switch t.Kind() {
		case TxnBegin:
			self.PushTransaction(Begin[R]())
		case TxnEnd:
			v1 := self.aux1.LatestValue().Get()
			v2 := self.aux2.LatestValue().Get()
			if !v1.IsSome() || !v2.IsSome() {
				self.PushTransaction(Cancel[R]())
				return
			}
			self.PushTransaction(End(self.f(t.Value(), v1.Unwrap(), v2.Unwrap())))
		case TxnCancel:
			self.PushTransaction(Cancel[R]())
		}
	})

	return m
}

func (m *MappedWith2[A, X, Y, R]) LatestValue() LatestValue[R] {
	pv := m.parent.LatestValue()
	if !pv.Has() {
		return LVNoneOf[R]()
	}
	if !m.aux1.LatestValue().Has() || !m.aux2.LatestValue().Has() {
		return LVNoneOf[R]()
	}

	f, parent, aux1, aux2 := m.f, m.parent, m.aux1, m.aux2
	return LVComputedOf(func() R {
		a := parent.LatestValue().Get().Unwrap()
		x := aux1.LatestValue().Get().Unwrap()
		y := aux2.LatestValue().Get().Unwrap()
		return f(a, x, y)
	})
}

func (m *MappedWith2[A, X, Y, R]) Close() { m.sub.Close() }
