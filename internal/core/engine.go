package core

import (
	"fmt"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// Engine is the designated-goroutine guard shared by every node built from
// it. The teacher keys a per-goroutine runtime table by goid.Get() so every
// calling goroutine gets its own tracking context (internal/runtime_default.go);
// this engine has exactly one propagation goroutine (spec: no internal locks,
// no shared state), so the same primitive is repurposed from a lookup into an
// assertion: the first goroutine to touch the engine owns it for its
// lifetime, and any later call from a different goroutine panics.
type Engine struct {
	affinity atomic.Int64 // 0 means unset; goid.Get() never returns 0

	// pending holds callbacks dispatched from outside the engine goroutine
	// (Throttle's timer fires on the scheduler's own goroutine per spec §6)
	// until the engine goroutine drains them via Pump.
	pending chan func()
}

// NewEngine creates a fresh, unbound engine. A Signal graph is typically
// built from a single Engine shared by every node in it.
func NewEngine() *Engine {
	return &Engine{pending: make(chan func(), 256)}
}

// checkAffinity binds the engine to the calling goroutine on first use and
// panics if a later call arrives from a different goroutine.
func (e *Engine) checkAffinity() {
	gid := goid.Get()

	if e.affinity.CompareAndSwap(0, gid) {
		return
	}

	if bound := e.affinity.Load(); bound != gid {
		panic(fmt.Sprintf("core: engine used from goroutine %d, previously bound to goroutine %d", gid, bound))
	}
}

// Dispatch queues fn to run on the engine's designated goroutine. It is
// safe to call from any goroutine — this is the hook a Scheduler
// implementation uses to route a timer fire back onto the engine thread
// (spec §5: "timer callbacks MUST be dispatched onto the engine thread
// before invoking any signal operation").
func (e *Engine) Dispatch(fn func()) {
	e.pending <- fn
}

// Pump runs every callback queued by Dispatch since the last Pump call.
// Callers that use Throttle must call Pump from the engine's own goroutine
// (e.g. once per loop iteration of whatever drives the engine) for deferred
// timer emissions to ever be delivered.
func (e *Engine) Pump() {
	e.checkAffinity()

	for {
		select {
		case fn := <-e.pending:
			fn()
		default:
			return
		}
	}
}

// defaultEngine backs the package-level constructors that don't take an
// explicit *Engine, mirroring internal.GetRuntime()'s implicit-runtime
// convenience.
var defaultEngine = NewEngine()

// DefaultEngine returns the shared engine used by constructors that don't
// take one explicitly.
func DefaultEngine() *Engine { return defaultEngine }
