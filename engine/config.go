package engine

import (
	"errors"
	"fmt"
	"time"
)

var ErrNegativeDuration = errors.New("duration must not be negative")

// Config describes one animation run. It is not modified by the machine.
type Config struct {
	// Text to type out. May be empty.
	Text string

	TypingSpeed   time.Duration // between insertions
	DeletingSpeed time.Duration // between removals
	PauseDuration time.Duration // full text hold before deletion

	// Loop restarts typing as soon as deletion empties the text.
	Loop bool
}

// Validate reports negative durations. Machines tolerate them (they are
// clamped to zero), so only config loaders need to call this.
func (c Config) Validate() error {
	if c.TypingSpeed < 0 {
		return fmt.Errorf("typing speed %v: %w", c.TypingSpeed, ErrNegativeDuration)
	}
	if c.DeletingSpeed < 0 {
		return fmt.Errorf("deleting speed %v: %w", c.DeletingSpeed, ErrNegativeDuration)
	}
	if c.PauseDuration < 0 {
		return fmt.Errorf("pause duration %v: %w", c.PauseDuration, ErrNegativeDuration)
	}
	return nil
}

func (c Config) normalized() Config {
	c.TypingSpeed = nonNegative(c.TypingSpeed)
	c.DeletingSpeed = nonNegative(c.DeletingSpeed)
	c.PauseDuration = nonNegative(c.PauseDuration)
	return c
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
