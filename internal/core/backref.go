package core

import "weak"

// subscribeWeak registers a handler on parent that holds only a weak
// back-reference to self (design notes §9, "Back references"): the
// subscription from an operator to its parent must never be the thing that
// keeps the operator alive. Go's weak package (stdlib, 1.24+) is exactly the
// GC-weak primitive the design notes ask for when the host language has
// one, so it is used directly rather than hand-rolled.
//
// On each parent transaction, the callback tries to upgrade the weak
// pointer; if self has been collected, the subscription removes itself from
// parent lazily (the design notes' "cancelled lazily when upgrade first
// fails"). Callers that want eager cleanup hold the returned *Receiver and
// Close it explicitly in their own Close/destructor.
func subscribeWeak[A, T any](parent SignalNode[A], self *T, handle func(*T, Transaction[A])) *Receiver[A] {
	wp := weak.Make(self)

	var key int64
	cb := func(t Transaction[A]) {
		s := wp.Value()
		if s == nil {
			parent.RemoveObserver(key)
			return
		}
		handle(s, t)
	}
	key = parent.AddObserver(cb)

	return &Receiver[A]{source: parent, key: key}
}

// subscribeWeakNoPrime is subscribeWeak without the priming handshake: cb
// only ever sees transactions pushed after registration, never a synthetic
// Begin/End replay of parent's current value. Joined's inner subscription
// needs exactly this — switching to a new inner must forward only the
// inner's own future events, not re-announce its already-current value.
func subscribeWeakNoPrime[A, T any](parent SignalNode[A], self *T, handle func(*T, Transaction[A])) *Receiver[A] {
	wp := weak.Make(self)

	var key int64
	cb := func(t Transaction[A]) {
		s := wp.Value()
		if s == nil {
			parent.RemoveObserver(key)
			return
		}
		handle(s, t)
	}
	key = parent.addRaw(cb)

	return &Receiver[A]{source: parent, key: key}
}
