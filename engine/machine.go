package engine

import (
	"time"

	"github.com/iw2rmb/typewriter/internal/grapheme"
)

// Frame is one observable state of a run.
type Frame struct {
	// Text is the visible prefix of Config.Text.
	Text  string
	Phase Phase

	// Cycle counts completed type-pause-delete cycles.
	Cycle int

	// Tick is the number of transitions applied so far; 0 for the start frame.
	Tick int
}

// Machine is the typed-text automaton. It is not safe for concurrent use;
// drivers serialize access.
type Machine struct {
	cfg      Config
	clusters []string

	shown int
	phase Phase
	cycle int
	tick  int
}

// NewMachine returns a machine at the start of its first cycle.
//
// Empty text has nothing to type, so the machine starts out paused.
func NewMachine(cfg Config) *Machine {
	m := &Machine{
		cfg:      cfg.normalized(),
		clusters: grapheme.Split(cfg.Text),
		phase:    Typing,
	}
	m.settle()
	return m
}

func (m *Machine) Config() Config { return m.cfg }

// Delay returns how long the driver waits before calling Step. ok is false
// once the machine has stopped and nothing should be scheduled.
func (m *Machine) Delay() (d time.Duration, ok bool) {
	switch m.phase {
	case Typing:
		return m.cfg.TypingSpeed, true
	case PausedAfterTyping:
		return m.cfg.PauseDuration, true
	case Deleting:
		return m.cfg.DeletingSpeed, true
	default:
		return 0, false
	}
}

// Step applies one timer fire and returns the resulting frame. Stepping a
// stopped machine changes nothing.
func (m *Machine) Step() Frame {
	switch m.phase {
	case Typing:
		m.shown++
	case PausedAfterTyping:
		m.phase = Deleting
	case Deleting:
		m.shown--
	default:
		return m.Frame()
	}
	m.tick++
	m.settle()
	return m.Frame()
}

// settle applies the transitions that need no timer. There is no pause after
// deletion: a looping machine goes back to typing on the same tick.
func (m *Machine) settle() {
	for {
		switch {
		case m.phase == Typing && m.shown >= len(m.clusters):
			m.shown = len(m.clusters)
			m.phase = PausedAfterTyping
			return
		case m.phase == Deleting && m.shown <= 0:
			m.shown = 0
			m.cycle++
			if !m.cfg.Loop {
				m.phase = Stopped
				return
			}
			m.phase = Typing
			// Empty text goes straight back to the pause.
			continue
		default:
			return
		}
	}
}

func (m *Machine) Frame() Frame {
	return Frame{
		Text:  m.Text(),
		Phase: m.phase,
		Cycle: m.cycle,
		Tick:  m.tick,
	}
}

func (m *Machine) Text() string { return grapheme.Join(m.clusters, m.shown) }

func (m *Machine) Phase() Phase { return m.phase }

func (m *Machine) Cycle() int { return m.cycle }

// Len returns the length of the visible text in grapheme clusters.
func (m *Machine) Len() int { return m.shown }

// Done reports whether the run has reached Stopped.
func (m *Machine) Done() bool { return m.phase == Stopped }
