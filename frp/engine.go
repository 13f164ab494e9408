// Package frp is the public surface of a push-pull functional-reactive
// dataflow library: signals form a graph, Inputs are assigned from
// imperative code, and operators propagate discrete changes to observers
// via a two-phase transaction protocol. See internal/core for the engine
// this package wraps.
package frp

import "github.com/signalcore/frp/internal/core"

// Engine owns the single designated propagation thread a graph of signals
// runs on. All Input assignments and all timer-driven re-entries (via
// Pump) on a given Engine must happen from the same goroutine.
type Engine struct {
	e *core.Engine
}

// NewEngine creates an Engine with its own propagation thread affinity,
// established lazily on first use.
func NewEngine() *Engine {
	return &Engine{e: core.NewEngine()}
}

// DefaultEngine returns the package-level default Engine, convenient for
// programs that only ever run one dataflow graph.
func DefaultEngine() *Engine {
	return &Engine{e: core.DefaultEngine()}
}

// Dispatch queues fn to run the next time Pump is called. Scheduler
// implementations (see frp/clock) use this to route timer fires back onto
// the engine's designated thread.
func (en *Engine) Dispatch(fn func()) { en.e.Dispatch(fn) }

// Pump drains any functions queued via Dispatch. Call it from the thread
// that owns this Engine, typically in the host application's event loop.
func (en *Engine) Pump() { en.e.Pump() }

func (en *Engine) core() *core.Engine { return en.e }
