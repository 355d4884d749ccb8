// Package tui renders a board store in the terminal and feeds key presses
// back into it.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"svw.info/sudokupad/internal/domain"
	"svw.info/sudokupad/internal/usecase"
)

// Options configures the view.
type Options struct {
	ShowOptions bool
	Logger      *slog.Logger
}

// Model is the bubbletea model for a play session.
type Model struct {
	play        *usecase.Service
	keys        keyMap
	help        help.Model
	styles      styles
	log         *slog.Logger
	showOptions bool
	width       int
	height      int
	err         error
	quitting    bool
}

// New returns a model bound to play. It fails with a *domain.UsageError when
// play has no store.
func New(play *usecase.Service, opts Options) (Model, error) {
	if play == nil || play.Store == nil {
		return Model{}, &domain.UsageError{Op: "tui.New"}
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return Model{
		play:        play,
		keys:        newKeyMap(),
		help:        help.New(),
		styles:      defaultStyles(),
		log:         log.With("component", "tui"),
		showOptions: opts.ShowOptions,
	}, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		err = m.play.Move(-1, 0)
	case key.Matches(msg, m.keys.Down):
		err = m.play.Move(1, 0)
	case key.Matches(msg, m.keys.Left):
		err = m.play.Move(0, -1)
	case key.Matches(msg, m.keys.Right):
		err = m.play.Move(0, 1)
	case key.Matches(msg, m.keys.Digit):
		err = m.play.Input(int(msg.String()[0] - '0'))
	case key.Matches(msg, m.keys.Clear):
		err = m.play.Clear()
	case key.Matches(msg, m.keys.Mode):
		var mode domain.InputMode
		mode, err = m.play.ToggleMode()
		m.log.Debug("mode changed", "mode", mode)
	case key.Matches(msg, m.keys.Deselect):
		err = m.play.Deselect()
	default:
		return m, nil
	}
	if err != nil {
		m.log.Warn("input rejected", "key", msg.String(), "err", err)
	}
	m.err = err
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	snap, err := m.play.Snapshot()
	if err != nil {
		return m.styles.err.Render(err.Error()) + "\n"
	}
	status := m.styles.status.Render(statusLine(snap))
	if m.err != nil {
		status += " " + m.styles.err.Render(m.err.Error())
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		renderGrid(snap, m.showOptions, m.styles),
		"",
		status,
		m.help.View(m.keys),
	)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body + "\n"
}
