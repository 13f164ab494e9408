// Package clock provides the default Clock/Scheduler backend Throttle
// consumes (spec §6) plus a deterministic fake for tests. No third-party
// clock/fake-clock library appears anywhere in the retrieved example pack,
// so this wraps the standard library's time.AfterFunc directly rather than
// reaching for one — see DESIGN.md.
package clock

import (
	"time"

	"github.com/signalcore/frp/internal/core"
)

// Clock and Scheduler re-export the engine's consumed interfaces so callers
// don't need to import internal/core directly.
type Clock = core.Clock
type Scheduler = core.Scheduler
type TimerHandle = core.TimerHandle

// SystemClock wraps time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// TimerScheduler wraps time.AfterFunc. Timer fires happen on a goroutine
// owned by the Go runtime's timer machinery, so ScheduleOnce routes the
// fire through engine.Dispatch — the engine's own goroutine must call
// Engine.Pump for it to actually run (spec §5: timer callbacks must be
// dispatched onto the engine thread before touching any signal).
type TimerScheduler struct {
	engine *core.Engine
}

func NewTimerScheduler(engine *core.Engine) *TimerScheduler {
	return &TimerScheduler{engine: engine}
}

func (s *TimerScheduler) ScheduleOnce(delay time.Duration, task func()) core.TimerHandle {
	timer := time.AfterFunc(delay, func() {
		s.engine.Dispatch(task)
	})
	return timer
}

// Cancel is idempotent: time.Timer.Stop on an already-fired or
// already-stopped timer is a safe no-op.
func (s *TimerScheduler) Cancel(handle core.TimerHandle) {
	if handle == nil {
		return
	}
	if timer, ok := handle.(*time.Timer); ok {
		timer.Stop()
	}
}
