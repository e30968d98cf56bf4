package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/typewriter/config"
	"github.com/iw2rmb/typewriter/effect"
)

type keyMap struct {
	Quit key.Binding
	Help key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "scene")),
}

var (
	frameStyle = lipgloss.NewStyle().Padding(1, 2)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

type model struct {
	scene    *config.Scene
	lines    []effect.Model
	showHelp bool
}

func newModel(scene *config.Scene) model {
	m := model{scene: scene}
	for _, line := range scene.Lines {
		cfg := line.EngineConfig()
		m.lines = append(m.lines, effect.New(effect.Config{
			Text:          cfg.Text,
			TypingSpeed:   cfg.TypingSpeed,
			DeletingSpeed: cfg.DeletingSpeed,
			PauseDuration: cfg.PauseDuration,
			Loop:          cfg.Loop,
			Cursor:        scene.Cursor,
			Reserve:       scene.Reserve,
			Style:         effect.DefaultStyle(),
			KeyMap:        effect.DefaultKeyMap(),
		}))
	}
	return m
}

func (m model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.lines))
	for _, line := range m.lines {
		cmds = append(cmds, line.Init())
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	cmds := make([]tea.Cmd, 0, len(m.lines))
	for i := range m.lines {
		var cmd tea.Cmd
		m.lines[i], cmd = m.lines[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	views := make([]string, 0, len(m.lines)+2)
	for _, line := range m.lines {
		views = append(views, line.View())
	}
	views = append(views, "", helpStyle.Render("r restart • ? scene • q quit"))
	base := frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, views...))
	if !m.showHelp {
		return base
	}
	// The lines keep animating underneath the panel.
	panel := m.scenePanel()
	width := max(lipgloss.Width(base), lipgloss.Width(panel))
	height := max(lipgloss.Height(base), lipgloss.Height(panel))
	base = lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, base)
	return overlay.Composite(panel, base, overlay.Center, overlay.Center, 0, 0)
}

// scenePanel lists every line with its timing.
func (m model) scenePanel() string {
	rows := make([]string, 0, len(m.scene.Lines)+1)
	rows = append(rows, "scene")
	for i, line := range m.scene.Lines {
		cfg := line.EngineConfig()
		mode := "once"
		if cfg.Loop {
			mode = "loop"
		}
		rows = append(rows, fmt.Sprintf("%d. %q type %s delete %s pause %s %s",
			i+1, cfg.Text, cfg.TypingSpeed, cfg.DeletingSpeed, cfg.PauseDuration, mode))
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}

func runTUI(ctx context.Context, scene *config.Scene) error {
	p := tea.NewProgram(newModel(scene), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
