package frp

import "github.com/signalcore/frp/internal/core"

// Map applies f to every value flowing through s. Go methods cannot add
// their own type parameters, so operators that change the value type
// (Map, OnChange's comparable constraint, the combiners, MapWith, Join)
// are free functions rather than methods.
func Map[A, B any](s *Signal[A], f func(A) B) *Signal[B] {
	return wrap[B](core.NewMapped(s.coreNode(), f))
}

// OnChange suppresses repeated values: End(v) only propagates when v
// differs from the previously admitted value.
func OnChange[T comparable](s *Signal[T]) *Signal[T] {
	return wrap[T](core.NewOnChange(s.coreNode()))
}

// Union forwards every transaction from any of the given parents,
// unchanged and uncoalesced, in subscription order.
func Union[T any](signals ...*Signal[T]) *Signal[T] {
	nodes := make([]core.SignalNode[T], len(signals))
	for i, s := range signals {
		nodes[i] = s.coreNode()
	}
	return wrap[T](core.NewUnion(nodes...))
}

// Combine2 coalesces two parents into one downstream transaction per
// external event and computes combine from each parent's current
// LatestValue once the coalesced count returns to zero.
func Combine2[A, B, R any](a *Signal[A], b *Signal[B], combine func(A, B) R) *Signal[R] {
	return wrap[R](core.NewCombiner2(a.coreNode(), b.coreNode(), combine))
}

func Combine3[A, B, C, R any](a *Signal[A], b *Signal[B], c *Signal[C], combine func(A, B, C) R) *Signal[R] {
	return wrap[R](core.NewCombiner3(a.coreNode(), b.coreNode(), c.coreNode(), combine))
}

func Combine4[A, B, C, D, R any](a *Signal[A], b *Signal[B], c *Signal[C], d *Signal[D], combine func(A, B, C, D) R) *Signal[R] {
	return wrap[R](core.NewCombiner4(a.coreNode(), b.coreNode(), c.coreNode(), d.coreNode(), combine))
}

func Combine5[A, B, C, D, E, R any](a *Signal[A], b *Signal[B], c *Signal[C], d *Signal[D], e *Signal[E], combine func(A, B, C, D, E) R) *Signal[R] {
	return wrap[R](core.NewCombiner5(a.coreNode(), b.coreNode(), c.coreNode(), d.coreNode(), e.coreNode(), combine))
}

func Combine6[A, B, C, D, E, F, R any](a *Signal[A], b *Signal[B], c *Signal[C], d *Signal[D], e *Signal[E], f *Signal[F], combine func(A, B, C, D, E, F) R) *Signal[R] {
	return wrap[R](core.NewCombiner6(a.coreNode(), b.coreNode(), c.coreNode(), d.coreNode(), e.coreNode(), f.coreNode(), combine))
}

// MapWith1 emits f(v, aux) on every End(v) from s, sampling aux's
// LatestValue (pull, not push). If aux has no value yet, the transaction
// cancels instead of propagating.
func MapWith1[A, X, R any](s *Signal[A], aux *Signal[X], f func(A, X) R) *Signal[R] {
	return wrap[R](core.NewMappedWith1(s.coreNode(), aux.coreNode(), f))
}

// MapWith2 is MapWith1 generalized to two auxiliary signals.
func MapWith2[A, X, Y, R any](s *Signal[A], aux1 *Signal[X], aux2 *Signal[Y], f func(A, X, Y) R) *Signal[R] {
	return wrap[R](core.NewMappedWith2(s.coreNode(), aux1.coreNode(), aux2.coreNode(), f))
}

// Join flattens a Signal of Signals: on every outer End(inner), the result
// switches to forwarding inner's transactions verbatim. The outer's own
// Begin/Cancel are never forwarded.
func Join[T any](outer *Signal[*Signal[T]]) *Signal[T] {
	innerNodes := Map(outer, func(s *Signal[T]) core.SignalNode[T] { return s.coreNode() })
	return wrap[T](core.NewJoined(innerNodes.coreNode()))
}

// Not negates a boolean signal.
func Not(s *Signal[bool]) *Signal[bool] {
	return Map(s, func(b bool) bool { return !b })
}

// And combines two boolean signals with &&. Both sides are always
// evaluated (non-short-circuit) — this is observed, preserved behavior.
func And(a, b *Signal[bool]) *Signal[bool] {
	return Combine2(a, b, func(x, y bool) bool { return x && y })
}

// Or combines two boolean signals with ||, also non-short-circuit.
func Or(a, b *Signal[bool]) *Signal[bool] {
	return Combine2(a, b, func(x, y bool) bool { return x || y })
}

// IsNil maps a signal of nilable pointers to whether each pushed value is
// nil.
func IsNil[T any](s *Signal[*T]) *Signal[bool] {
	return Map(s, func(v *T) bool { return v == nil })
}

// NotNil filters out nil pointers and unwraps the rest, mirroring the
// spec's "Filter != nil then Map unwrap" composition.
func NotNil[T any](s *Signal[*T]) *Signal[T] {
	nonNil := s.Filter(func(v *T) bool { return v != nil })
	return Map(nonNil, func(v *T) T { return *v })
}
