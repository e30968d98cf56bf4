// Package animator runs an engine.Machine on a clock.
//
// An Animator owns exactly one pending timer while the run can still change
// and none once it has stopped or been disposed. Every armed timer carries a
// generation number; a callback whose generation is no longer current (the
// timer was superseded or the animator disposed) returns without touching
// state, so a late time.AfterFunc callback cannot write into a dead run.
//
// Frames are delivered through Options.OnFrame in the order they were
// produced. The next timer is armed only after OnFrame returns, so deliveries
// never overlap even with zero delays on the real clock.
package animator
