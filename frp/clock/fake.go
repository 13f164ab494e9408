package clock

import "time"

// FakeClock is a manually-advanced Clock for deterministic Throttle tests —
// the teacher has no analogous type (it never does wall-clock timing), so
// this follows the generic "swap the real backend for a controllable test
// double" shape the teacher itself uses for Runtime (runtime_default.go vs.
// runtime_wasm.go).
type FakeClock struct {
	now time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (c *FakeClock) Now() time.Time { return c.now }

func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// FakeScheduler records scheduled tasks instead of arming real timers;
// tests fire them explicitly via FireDue once the fake clock has been
// advanced past their delay, giving tests full control over ordering.
type FakeScheduler struct {
	clock   *FakeClock
	nextID  int
	pending map[int]fakeTask
}

type fakeTask struct {
	fireAt time.Time
	task   func()
}

func NewFakeScheduler(clock *FakeClock) *FakeScheduler {
	return &FakeScheduler{clock: clock, pending: make(map[int]fakeTask)}
}

func (s *FakeScheduler) ScheduleOnce(delay time.Duration, task func()) TimerHandle {
	s.nextID++
	id := s.nextID
	s.pending[id] = fakeTask{fireAt: s.clock.Now().Add(delay), task: task}
	return id
}

func (s *FakeScheduler) Cancel(handle TimerHandle) {
	id, ok := handle.(int)
	if !ok {
		return
	}
	delete(s.pending, id)
}

// FireDue runs and removes every scheduled task whose fire time is at or
// before the fake clock's current time, in ascending fire-time order.
func (s *FakeScheduler) FireDue() {
	for {
		var dueID int
		found := false
		var dueAt time.Time

		for id, t := range s.pending {
			if t.fireAt.After(s.clock.Now()) {
				continue
			}
			if !found || t.fireAt.Before(dueAt) {
				dueID, dueAt, found = id, t.fireAt, true
			}
		}

		if !found {
			return
		}

		task := s.pending[dueID].task
		delete(s.pending, dueID)
		task()
	}
}

// Pending reports how many timers are still outstanding.
func (s *FakeScheduler) Pending() int { return len(s.pending) }
