package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// testClock and testScheduler are minimal, deterministic stand-ins for
// frp/clock's SystemClock/TimerScheduler, kept local to this package to
// avoid the test importing anything that itself imports core.
type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type testScheduler struct {
	clock   *testClock
	pending map[int]struct {
		fireAt time.Time
		task   func()
	}
	nextID int
}

func newTestScheduler(c *testClock) *testScheduler {
	return &testScheduler{clock: c, pending: make(map[int]struct {
		fireAt time.Time
		task   func()
	})}
}

func (s *testScheduler) ScheduleOnce(delay time.Duration, task func()) TimerHandle {
	s.nextID++
	id := s.nextID
	s.pending[id] = struct {
		fireAt time.Time
		task   func()
	}{fireAt: s.clock.Now().Add(delay), task: task}
	return id
}

func (s *testScheduler) Cancel(handle TimerHandle) {
	id, ok := handle.(int)
	if !ok {
		return
	}
	delete(s.pending, id)
}

func (s *testScheduler) fireDue() {
	for id, t := range s.pending {
		if t.fireAt.After(s.clock.Now()) {
			continue
		}
		delete(s.pending, id)
		t.task()
	}
}

func TestThrottleFirstValuePassesImmediately(t *testing.T) {
	clock := &testClock{now: time.Unix(0, 0)}
	sched := newTestScheduler(clock)

	in := NewInput(NewEngine(), 0)
	th := NewThrottle[int](in, 100*time.Millisecond, clock, sched)

	var captured []int
	out := NewOutput[int](th, func(v int) { captured = append(captured, v) })
	defer out.Close()

	in.Set(1)
	assert.Equal(t, []int{1}, captured, "first value is never throttled (zero-value lastEmitTime)")
}

func TestThrottleDefersWithinWindow(t *testing.T) {
	clock := &testClock{now: time.Unix(0, 0)}
	sched := newTestScheduler(clock)

	in := NewInput(NewEngine(), 0)
	th := NewThrottle[int](in, 100*time.Millisecond, clock, sched)

	var captured []int
	out := NewOutput[int](th, func(v int) { captured = append(captured, v) })
	defer out.Close()

	in.Set(1)
	in.Set(2) // inside the window: deferred, timer armed
	assert.Equal(t, []int{1}, captured)

	clock.advance(50 * time.Millisecond)
	sched.fireDue() // not due yet
	assert.Equal(t, []int{1}, captured)

	clock.advance(60 * time.Millisecond)
	sched.fireDue()
	assert.Equal(t, []int{1, 2}, captured)
}

func TestThrottleLaterValueSupersedesDeferred(t *testing.T) {
	clock := &testClock{now: time.Unix(0, 0)}
	sched := newTestScheduler(clock)

	in := NewInput(NewEngine(), 0)
	th := NewThrottle[int](in, 100*time.Millisecond, clock, sched)

	var captured []int
	out := NewOutput[int](th, func(v int) { captured = append(captured, v) })
	defer out.Close()

	in.Set(1)
	in.Set(2) // deferred = 2, timer armed
	in.Set(3) // cancels the pending deferred(2) as Cancel, defers 3 instead

	clock.advance(150 * time.Millisecond)
	sched.fireDue()

	assert.Equal(t, []int{1, 3}, captured, "only the most recently deferred value is ever emitted")
}
