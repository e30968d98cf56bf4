// Package clock is the scheduling capability the animator depends on:
// "run f after d, give me a handle to cancel it".
//
// Production code uses Real(), backed by time.AfterFunc. Tests use Fake(),
// whose time only moves when the test calls Advance or FireNext:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	a := animator.New(cfg, animator.Options{Clock: c})
//	a.Start()
//	c.Advance(10 * time.Millisecond) // fires the first typing tick
//
// A zero or negative delay never runs f inline. Real() hands it to a timer
// goroutine and Fake() queues it at the current instant, so a callback that
// schedules the next callback cannot recurse.
package clock
