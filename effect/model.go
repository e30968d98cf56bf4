package effect

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/typewriter/engine"
)

var lastID atomic.Int64

func nextID() int { return int(lastID.Add(1)) }

// TickMsg advances the component with the matching ID.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Model is a Bubble Tea component that types and deletes Config.Text.
type Model struct {
	cfg     Config
	machine *engine.Machine

	id      int
	tag     int
	stopped bool
}

func New(cfg Config) Model {
	return Model{
		cfg:     cfg,
		machine: engine.NewMachine(cfg.engineConfig()),
		id:      nextID(),
	}
}

// Init reports the start frame to OnChange and schedules the first tick.
func (m Model) Init() tea.Cmd {
	m.notify(m.machine.Frame())
	return m.tick()
}

func (m Model) ID() int { return m.id }

func (m Model) Frame() engine.Frame { return m.machine.Frame() }

func (m Model) Text() string { return m.machine.Text() }

// IsDone reports whether the run stopped on its own or through Stop.
func (m Model) IsDone() bool { return m.stopped || m.machine.Done() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.ID != m.id || msg.tag != m.tag || m.IsDone() {
			return m, nil
		}
		m.tag++
		m.notify(m.machine.Step())
		return m, m.tick()
	case tea.KeyMsg:
		if key.Matches(msg, m.cfg.KeyMap.Restart) {
			return m.Restart()
		}
	}
	return m, nil
}

// Stop ends the run. A tick already in flight is ignored when it arrives.
func (m Model) Stop() Model {
	m.stopped = true
	m.tag++
	return m
}

// Restart replaces the run with a fresh one from the start of the first
// cycle and reports its start frame to OnChange.
func (m Model) Restart() (Model, tea.Cmd) {
	m.machine = engine.NewMachine(m.cfg.engineConfig())
	m.stopped = false
	m.tag++
	m.notify(m.machine.Frame())
	return m, m.tick()
}

// SetText restarts the component with different text. The running cycle is
// abandoned rather than migrated.
func (m Model) SetText(text string) (Model, tea.Cmd) {
	m.cfg.Text = text
	return m.Restart()
}

func (m Model) View() string {
	text := m.machine.Text()
	var sb strings.Builder
	sb.WriteString(m.cfg.Style.Text.Render(text))

	used := runewidth.StringWidth(text)
	if m.cfg.Cursor != "" && !m.IsDone() {
		sb.WriteString(m.cfg.Style.Cursor.Render(m.cfg.Cursor))
		used += runewidth.StringWidth(m.cfg.Cursor)
	}

	if m.cfg.Reserve {
		full := runewidth.StringWidth(m.cfg.Text) + runewidth.StringWidth(m.cfg.Cursor)
		if pad := full - used; pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
	}
	return sb.String()
}

func (m Model) notify(frame engine.Frame) {
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(frame)
	}
}

func (m Model) tick() tea.Cmd {
	delay, ok := m.machine.Delay()
	if !ok || m.stopped {
		return nil
	}
	id, tag := m.id, m.tag
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t, tag: tag}
	})
}
