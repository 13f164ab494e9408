package core

// Receiver owns exactly one registration on its source. Close deregisters
// it; Close is idempotent, mirroring the teacher's Owner.Dispose being safe
// to call when there's nothing left to dispose (sig/owner.go).
type Receiver[V any] struct {
	source SignalNode[V]
	key    int64
	closed bool
}

// NewReceiver registers cb on source and returns a handle that owns the
// registration.
func NewReceiver[V any](source SignalNode[V], cb Observer[V]) *Receiver[V] {
	r := &Receiver[V]{source: source}
	r.key = source.AddObserver(cb)
	return r
}

// Close deregisters the callback from its source. Safe to call more than
// once.
func (r *Receiver[V]) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.source.RemoveObserver(r.key)
}

// Output is a Receiver whose callback only fires on End-phase values.
type Output[V any] struct {
	*Receiver[V]
}

// NewOutput builds an Output that invokes f with every End(v) transaction's
// value and ignores Begin/Cancel.
func NewOutput[V any](source SignalNode[V], f func(V)) *Output[V] {
	r := NewReceiver[V](source, func(t Transaction[V]) {
		if t.IsEnd() {
			f(t.Value())
		}
	})
	return &Output[V]{Receiver: r}
}

// WillOutput is the Begin-phase symmetric counterpart to Output: f is
// invoked, with no argument, every time the source begins a transaction.
type WillOutput[V any] struct {
	*Receiver[V]
}

// NewWillOutput builds a WillOutput that invokes f on every Begin and
// ignores End/Cancel.
func NewWillOutput[V any](source SignalNode[V], f func()) *WillOutput[V] {
	r := NewReceiver[V](source, func(t Transaction[V]) {
		if t.IsBegin() {
			f()
		}
	})
	return &WillOutput[V]{Receiver: r}
}
