package frp

import (
	"time"

	"github.com/signalcore/frp/frp/clock"
	"github.com/signalcore/frp/internal/core"
)

// Signal is a node in the dataflow graph producing values of type T.
// Identity is by node: two Signals are "the same" only if they share the
// same underlying node, never by comparing values.
type Signal[T any] struct {
	node core.SignalNode[T]
}

func wrap[T any](node core.SignalNode[T]) *Signal[T] {
	return &Signal[T]{node: node}
}

// NewInput creates a writable Signal whose value is assigned from
// imperative code at the graph's boundary.
func NewInput[T any](en *Engine, initial T) *Input[T] {
	return &Input[T]{Signal: Signal[T]{node: core.NewInput[T](en.core(), initial)}, in: nil}
}

// Const returns a Signal with an immutable value; it primes every new
// subscriber once and never pushes again.
func Const[T any](v T) *Signal[T] {
	return wrap[T](core.NewConst(v))
}

// Never returns an inert Signal: it never pushes and never primes a
// subscriber, since its LatestValue is always None.
func Never[T any]() *Signal[T] {
	return wrap[T](core.NewNever[T]())
}

// Computed returns a Signal wrapping a thunk; it never pushes and its
// LatestValue recomputes the thunk on every pull.
func Computed[T any](thunk func() T) *Signal[T] {
	return wrap[T](core.NewComputedSignal(thunk))
}

// Get returns the signal's current value and whether one is available yet.
// For Filter/Union/Event/Joined results, ok may be false before any value
// has flowed — wrap with Latest to get a stable cached value instead.
func (s *Signal[T]) Get() (T, bool) {
	opt := s.node.LatestValue().Get()
	if !opt.IsSome() {
		var zero T
		return zero, false
	}
	return opt.Unwrap(), true
}

// Filter admits only values for which p returns true; a rejected value
// cancels the transaction instead of propagating. The resulting Signal's
// LatestValue is always None — compose with Latest when a cached value is
// wanted (Filter(p).Latest()).
func (s *Signal[T]) Filter(p func(T) bool) *Signal[T] {
	return wrap[T](core.NewFilter(s.node, p))
}

// Event turns a stored-value Signal into a pure event stream: every
// transaction passes through unchanged, but new subscribers are never
// primed with a current value.
func (s *Signal[T]) Event() *Signal[T] {
	return wrap[T](core.NewEvent(s.node))
}

// Signal returns a type-erasure wrapper forwarding every transaction and
// mirroring the parent's LatestValue directly, without its own cache.
func (s *Signal[T]) Signal() *Signal[T] {
	return wrap[T](core.NewWrapped(s.node))
}

// Latest caches the most recently seen value so that a Signal that
// otherwise reports None (e.g. a Filter result) gains a stable, pullable
// value. Returns s unchanged when it is already Stored (never double-wraps,
// see core.AsLatest).
func (s *Signal[T]) Latest() *Signal[T] {
	return wrap[T](core.AsLatest(s.node))
}

// Throttle enforces a minimum interval between emissions using the
// supplied Clock and Scheduler (see frp/clock).
func (s *Signal[T]) Throttle(minInterval time.Duration, c clock.Clock, sched clock.Scheduler) *Signal[T] {
	return wrap[T](core.NewThrottle(s.node, minInterval, c, sched))
}

// Output registers f to run on every End-phase transaction from s. The
// returned Output owns the subscription; closing it deregisters f.
func (s *Signal[T]) Output(f func(T)) *Output {
	return &Output{r: core.NewOutput(s.node, f)}
}

// WillOutput registers f to run on every Begin-phase transaction from s.
func (s *Signal[T]) WillOutput(f func()) *WillOutput {
	return &WillOutput{r: core.NewWillOutput(s.node, f)}
}

// coreNode exposes the underlying core.SignalNode for free functions in this
// package that need extra type parameters a method cannot carry (Map,
// OnChange, Combine2..6, MapWith1/2, Join, Union).
func (s *Signal[T]) coreNode() core.SignalNode[T] { return s.node }

// Input is a Signal whose value is set by imperative code at the graph's
// boundary.
type Input[T any] struct {
	Signal[T]
	in *core.Input[T]
}

func (in *Input[T]) input() *core.Input[T] {
	if in.in == nil {
		in.in = in.node.(*core.Input[T])
	}
	return in.in
}

// Value returns the Input's current value.
func (in *Input[T]) Value() T { return in.input().Get() }

// Set assigns a new value, pushing a single Begin/End(v) transaction to
// every observer. Reentrant assignment from within this Input's own
// propagation panics (programmer error).
func (in *Input[T]) Set(v T) { in.input().Set(v) }

// Modify applies f to the current value and assigns the result.
func (in *Input[T]) Modify(f func(T) T) { in.input().Modify(f) }

// Assign is the "<--" sugar named in the spec: an alias for Set chosen to
// read naturally at call sites (input.Assign(v)).
func (in *Input[T]) Assign(v T) { in.Set(v) }

// closer is satisfied by every *core.Receiver[T] regardless of T, letting
// Output/WillOutput stay non-generic even though the subscriptions they
// wrap are not.
type closer interface{ Close() }

// Output is a scoped subscription invoking a plain value callback on every
// End-phase transaction. Closing it deregisters the callback.
type Output struct {
	r closer
}

// Close deregisters the callback. Safe to call more than once.
func (o *Output) Close() { o.r.Close() }

// WillOutput is a scoped subscription invoking a parameterless callback on
// every Begin-phase transaction.
type WillOutput struct {
	r closer
}

// Close deregisters the callback. Safe to call more than once.
func (w *WillOutput) Close() { w.r.Close() }
