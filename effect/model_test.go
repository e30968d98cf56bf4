package effect

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/typewriter/engine"
)

func currentTick(m Model) TickMsg {
	return TickMsg{ID: m.id, tag: m.tag}
}

// advance delivers n current ticks.
func advance(m Model, n int) Model {
	for i := 0; i < n; i++ {
		m, _ = m.Update(currentTick(m))
	}
	return m
}

func TestModel_TicksTypeThenDelete(t *testing.T) {
	var frames []engine.Frame
	m := New(Config{
		Text:          "AI",
		TypingSpeed:   10 * time.Millisecond,
		DeletingSpeed: 5 * time.Millisecond,
		PauseDuration: 100 * time.Millisecond,
		OnChange:      func(f engine.Frame) { frames = append(frames, f) },
	})
	if m.Init() == nil {
		t.Fatalf("Init should schedule the first tick")
	}

	var texts []string
	for !m.IsDone() {
		var cmd tea.Cmd
		m, cmd = m.Update(currentTick(m))
		texts = append(texts, m.Text())
		if m.IsDone() && cmd != nil {
			t.Fatalf("stopped component scheduled another tick")
		}
		if !m.IsDone() && cmd == nil {
			t.Fatalf("running component did not schedule a tick")
		}
	}

	if got, want := strings.Join(texts, ","), "A,AI,AI,A,"; got != want {
		t.Fatalf("texts: got %q, want %q", got, want)
	}
	if len(frames) != 6 || frames[0].Text != "" || frames[0].Tick != 0 || frames[5].Phase != engine.Stopped {
		t.Fatalf("OnChange frames: got %+v", frames)
	}
}

func TestModel_OnChangeReceivesStartFrames(t *testing.T) {
	var frames []engine.Frame
	m := New(Config{
		Text:        "ab",
		TypingSpeed: time.Millisecond,
		OnChange:    func(f engine.Frame) { frames = append(frames, f) },
	})
	m.Init()
	m = advance(m, 1)
	m, _ = m.SetText("xy")

	if len(frames) != 3 {
		t.Fatalf("OnChange frames: got %+v", frames)
	}
	for i, want := range []engine.Frame{
		{Text: "", Phase: engine.Typing},
		{Text: "a", Phase: engine.Typing, Tick: 1},
		{Text: "", Phase: engine.Typing},
	} {
		if frames[i] != want {
			t.Fatalf("frame %d: got %+v, want %+v", i, frames[i], want)
		}
	}
	if got := m.Text(); got != "" {
		t.Fatalf("text after SetText: got %q, want empty", got)
	}
}

func TestModel_IgnoresStaleAndForeignTicks(t *testing.T) {
	m := New(Config{Text: "abc", TypingSpeed: time.Millisecond})
	other := New(Config{Text: "xyz", TypingSpeed: time.Millisecond})

	stale := currentTick(m)
	m = advance(m, 1)
	if got := m.Text(); got != "a" {
		t.Fatalf("text: got %q, want %q", got, "a")
	}

	m, cmd := m.Update(stale)
	if cmd != nil || m.Text() != "a" {
		t.Fatalf("stale tick was applied: text=%q cmd=%v", m.Text(), cmd != nil)
	}

	m, _ = m.Update(currentTick(other))
	if got := m.Text(); got != "a" {
		t.Fatalf("foreign tick was applied: text=%q", got)
	}
	if m.ID() == other.ID() {
		t.Fatalf("components share id %d", m.ID())
	}
}

func TestModel_StopDropsPendingTick(t *testing.T) {
	m := New(Config{Text: "abc", TypingSpeed: time.Millisecond, Loop: true})
	inFlight := currentTick(m)

	m = m.Stop()
	if !m.IsDone() {
		t.Fatalf("stopped component should be done")
	}
	m, cmd := m.Update(inFlight)
	if cmd != nil || m.Text() != "" {
		t.Fatalf("tick after Stop was applied: text=%q", m.Text())
	}
	m, cmd = m.Update(currentTick(m))
	if cmd != nil || m.Text() != "" {
		t.Fatalf("stopped component stepped: text=%q", m.Text())
	}
}

func TestModel_RestartAndSetTextReplaceTheRun(t *testing.T) {
	m := New(Config{Text: "abc", TypingSpeed: time.Millisecond, KeyMap: DefaultKeyMap()})
	m = advance(m, 2)
	old := currentTick(m)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd == nil {
		t.Fatalf("restart should schedule a tick")
	}
	if got := m.Text(); got != "" {
		t.Fatalf("text after restart: got %q, want empty", got)
	}
	m, _ = m.Update(old)
	if got := m.Text(); got != "" {
		t.Fatalf("tick from the replaced run was applied: %q", got)
	}

	m, _ = m.SetText("xy")
	m = advance(m, 2)
	if got, phase := m.Text(), m.Frame().Phase; got != "xy" || phase != engine.PausedAfterTyping {
		t.Fatalf("after SetText: got (%q, %v), want (%q, %v)", got, phase, "xy", engine.PausedAfterTyping)
	}
}

func TestModel_ZeroKeyMapIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "abc"})
	m = advance(m, 1)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd != nil || m.Text() != "a" {
		t.Fatalf("key handled without a binding: text=%q", m.Text())
	}
}

func TestModel_ZeroDelayTickRunsThroughTeaTick(t *testing.T) {
	m := New(Config{Text: "ok"})
	msg := m.Init()()
	tick, ok := msg.(TickMsg)
	if !ok {
		t.Fatalf("Init produced %T, want TickMsg", msg)
	}
	m, _ = m.Update(tick)
	if got := m.Text(); got != "o" {
		t.Fatalf("text: got %q, want %q", got, "o")
	}
}

func TestView_CursorAndReserve(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	st := Style{
		Text:   r.NewStyle().Bold(true),
		Cursor: r.NewStyle().Foreground(lipgloss.Color("#ff00aa")),
	}

	m := New(Config{Text: "hey", Cursor: "_", Reserve: true, Style: st})
	m = advance(m, 1)

	got := m.View()
	want := st.Text.Render("h") + st.Cursor.Render("_") + "  "
	if got != want {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
	if w := lipgloss.Width(got); w != 4 {
		t.Fatalf("reserved width: got %d, want %d", w, 4)
	}
}

func TestView_WideCharactersAndDoneCursor(t *testing.T) {
	m := New(Config{Text: "日本", Cursor: "|", Reserve: true})
	m = advance(m, 1)
	if got, want := ansi.Strip(m.View()), "日|  "; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}

	m = advance(m, 10)
	if !m.IsDone() {
		t.Fatalf("component should be done")
	}
	if got, want := ansi.Strip(m.View()), "     "; got != want {
		t.Fatalf("view after stop: got %q, want %q", got, want)
	}
}
