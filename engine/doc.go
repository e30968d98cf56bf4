// Package engine implements the pure typed-text state machine.
//
// A Machine types Config.Text one grapheme cluster at a time, holds the full
// text for Config.PauseDuration, deletes it again, and either stops or starts
// over. The machine never sleeps or schedules anything: Delay reports how long
// the driver should wait and Step applies the next transition. Drivers live in
// the animator (clock timers) and effect (Bubble Tea ticks) packages.
package engine
