package frp

import "github.com/signalcore/frp/internal/core"

// Gate defers s's values until gate currently reads true, releasing at
// most one pending value per gate rising-edge-with-pending (or a
// simultaneous change of both). A subsequent Begin on s drops any
// deferred value even if the gate never released it.
func (s *Signal[T]) Gate(gate *Signal[bool]) *Signal[T] {
	return wrap[T](core.NewGate(s.coreNode(), gate.coreNode()))
}

// OnRisingEdge invokes cb each time a boolean signal transitions to true.
// Go methods can't be specialized to one instantiation of a generic
// receiver (no "func (s *Signal[bool]) ..."), so this and OnFallingEdge
// are free functions rather than methods restricted to boolean Signals.
func OnRisingEdge(s *Signal[bool], cb func()) *Output {
	changed := OnChange(s)
	rising := changed.Filter(func(v bool) bool { return v })
	return rising.Output(func(bool) { cb() })
}

// OnFallingEdge invokes cb each time a boolean signal transitions to
// false.
func OnFallingEdge(s *Signal[bool], cb func()) *Output {
	changed := OnChange(s)
	falling := changed.Filter(func(v bool) bool { return !v })
	return falling.Output(func(bool) { cb() })
}
