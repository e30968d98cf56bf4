package effect

import (
	"time"

	"github.com/iw2rmb/typewriter/engine"
)

// Config configures the typewriter Model.
type Config struct {
	Text          string
	TypingSpeed   time.Duration
	DeletingSpeed time.Duration
	PauseDuration time.Duration
	Loop          bool

	// Cursor is drawn after the typed text. Empty draws nothing.
	Cursor string

	// Reserve pads the view to the width of the full text so the layout
	// around the component does not shift while typing.
	Reserve bool

	Style  Style
	KeyMap KeyMap

	// OnChange is called with the start frame (from Init and Restart) and
	// with every frame the component steps to.
	OnChange func(engine.Frame)
}

func (c Config) engineConfig() engine.Config {
	return engine.Config{
		Text:          c.Text,
		TypingSpeed:   c.TypingSpeed,
		DeletingSpeed: c.DeletingSpeed,
		PauseDuration: c.PauseDuration,
		Loop:          c.Loop,
	}
}
