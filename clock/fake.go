package clock

import (
	"sync"
	"time"
)

// Fake returns a FakeClock initialized to the given time.
//
// FakeClock is safe for concurrent use by multiple goroutines.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

// FakeClock is a deterministic Clock for tests. Time moves only when
// Advance or FireNext is called. Callbacks run synchronously in the
// goroutine that moves the clock, one at a time, in deadline order; ties
// fire in registration order. While a callback runs, Now reports its
// deadline, so a callback that schedules another one gets an exact
// deadline even inside a large Advance.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	seq     uint64
	waiters []*fakeWaiter
}

type fakeWaiter struct {
	deadline time.Time
	seq      uint64
	callback func()
	stopped  bool
	fired    bool
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// AfterFunc schedules f to be called after duration d. A non-positive d
// queues f at the current instant; it runs on the next Advance (including
// Advance(0)) or FireNext.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) *Timer {
	if d < 0 {
		d = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	waiter := &fakeWaiter{
		deadline: c.current.Add(d),
		seq:      c.seq,
		callback: f,
	}
	c.waiters = append(c.waiters, waiter)

	return &Timer{
		stopFunc: func() bool {
			c.mu.Lock()
			defer c.mu.Unlock()
			if waiter.stopped || waiter.fired {
				return false
			}
			waiter.stopped = true
			c.removeLocked(waiter)
			return true
		},
	}
}

// Advance moves the clock forward by d, firing every callback whose
// deadline falls within the new time, including callbacks scheduled by
// callbacks fired during this Advance.
//
// A chain of zero-delay callbacks never lets Advance return; drive those
// with FireNext.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.current.Add(d)
	c.mu.Unlock()

	for c.fireNext(target, true) {
	}

	c.mu.Lock()
	if target.After(c.current) {
		c.current = target
	}
	c.mu.Unlock()
}

// FireNext moves the clock to the earliest pending deadline and fires that
// one callback. Returns false if nothing is pending.
func (c *FakeClock) FireNext() bool {
	return c.fireNext(time.Time{}, false)
}

// Pending returns the number of scheduled callbacks that have not fired
// or been stopped.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.waiters)
}

// NextDeadline returns the earliest pending deadline.
func (c *FakeClock) NextDeadline() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	w := c.earliestLocked()
	if w == nil {
		return time.Time{}, false
	}
	return w.deadline, true
}

// fireNext fires the earliest waiter, if bounded only when it is due at or
// before limit.
func (c *FakeClock) fireNext(limit time.Time, bounded bool) bool {
	c.mu.Lock()
	w := c.earliestLocked()
	if w == nil || (bounded && w.deadline.After(limit)) {
		c.mu.Unlock()
		return false
	}
	c.removeLocked(w)
	w.fired = true
	if w.deadline.After(c.current) {
		c.current = w.deadline
	}
	c.mu.Unlock()

	w.callback()
	return true
}

func (c *FakeClock) earliestLocked() *fakeWaiter {
	var best *fakeWaiter
	for _, w := range c.waiters {
		if best == nil || w.deadline.Before(best.deadline) ||
			(w.deadline.Equal(best.deadline) && w.seq < best.seq) {
			best = w
		}
	}
	return best
}

func (c *FakeClock) removeLocked(target *fakeWaiter) {
	for i, w := range c.waiters {
		if w == target {
			c.waiters = append(c.waiters[:i], c.waiters[i+1:]...)
			return
		}
	}
}
