package core

import "time"

// Throttle enforces a minimum interval between emissions (spec §4.15).
// last_emit_time starts at the zero Time, so the first value is never
// throttled (now.Sub(zero) always exceeds any realistic min_interval) —
// this is a deliberate use of Go's zero value instead of a separate
// "has emitted yet" flag.
//
// The scheduled End transaction reuses the value captured at defer time,
// not a fresh sample (design notes, open question 1): a later upstream
// value arriving while the timer is still pending replaces the deferred
// payload and cancels the superseded one, rather than accumulating both.
type Throttle[A any] struct {
	*signalBase[A]

	parent      SignalNode[A]
	clock       Clock
	scheduler   Scheduler
	minInterval time.Duration

	lastEmitTime time.Time
	timerHandle  TimerHandle
	timerActive  bool
	deferred     A

	counter txnCounter
	sub     *Receiver[A]
}

func NewThrottle[A any](parent SignalNode[A], minInterval time.Duration, clock Clock, scheduler Scheduler) *Throttle[A] {
	t := &Throttle[A]{
		parent:      parent,
		clock:       clock,
		scheduler:   scheduler,
		minInterval: minInterval,
	}
	t.signalBase = newSignalBase[A](t)

	t.sub = subscribeWeak(parent, t, func(self *Throttle[A], txn Transaction[A]) {
		switch txn.Kind() {
		case TxnBegin:
			self.counter.handle(TxnBegin, func() { self.PushTransaction(Begin[A]()) }, func(bool) {})
		case TxnEnd:
			self.onEnd(txn.Value())
		case TxnCancel:
			self.decrementEmit(Cancel[A]())
		}
	})

	// The priming pair delivered by the subscription above reaches no
	// observer of t, so it does not count as an emission: the throttle
	// window starts with the first value pushed after construction.
	t.lastEmitTime = time.Time{}

	return t
}

func (t *Throttle[A]) onEnd(v A) {
	if t.timerActive {
		t.scheduler.Cancel(t.timerHandle)
		t.timerActive = false
		t.decrementEmit(Cancel[A]())
	}

	now := t.clock.Now()
	if now.Sub(t.lastEmitTime) > t.minInterval {
		t.lastEmitTime = now
		t.decrementEmit(End(v))
		return
	}

	t.deferred = v
	delay := t.minInterval - now.Sub(t.lastEmitTime)

	// The Scheduler contract guarantees task runs on the engine's
	// designated goroutine (spec §6) — task here does not dispatch itself,
	// it trusts the scheduler implementation to have already routed it.
	t.timerHandle = t.scheduler.ScheduleOnce(delay, func() {
		t.timerActive = false
		t.lastEmitTime = t.clock.Now()
		t.decrementEmit(End(t.deferred))
	})
	t.timerActive = true
}

// decrementEmit is the "decrement path" of spec §4.15: transaction_count
// -= 1; if now zero, emit the given transaction downstream.
func (t *Throttle[A]) decrementEmit(txn Transaction[A]) {
	t.counter.decrement(func(bool) {
		t.PushTransaction(txn)
	})
}

// Close cancels any outstanding timer and the parent subscription.
func (t *Throttle[A]) Close() {
	if t.timerActive {
		t.scheduler.Cancel(t.timerHandle)
		t.timerActive = false
	}
	t.sub.Close()
}
