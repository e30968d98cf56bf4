// Package effect provides a Bubble Tea typewriter component backed by the
// engine package.
//
// The component schedules its own ticks with tea.Tick. Each tick carries the
// component id and a tag; ticks that do not match the current tag belong to a
// stopped or replaced run and are ignored, which is how a Bubble Tea program
// cancels a pending timer.
package effect
