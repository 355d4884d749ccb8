package tui

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"svw.info/sudokupad/internal/domain"
	"svw.info/sudokupad/internal/store"
	"svw.info/sudokupad/internal/usecase"
)

func newModel(t *testing.T, showOptions bool) (Model, *store.Store) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := store.New(store.WithLogger(log))
	m, err := New(usecase.NewService(s), Options{ShowOptions: showOptions, Logger: log})
	require.NoError(t, err)
	m.styles = plainStyles()
	return m, s
}

func plainStyles() styles {
	plain := lipgloss.NewStyle()
	return styles{value: plain, option: plain, selected: plain, border: plain, status: plain, err: plain}
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestNewWithoutStore(t *testing.T) {
	for _, play := range []*usecase.Service{nil, usecase.NewService(nil)} {
		_, err := New(play, Options{})
		if !errors.Is(err, domain.ErrNoStore) {
			t.Fatalf("err = %v, want ErrNoStore", err)
		}
	}
}

func TestKeysDriveStore(t *testing.T) {
	m, s := newModel(t, true)

	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyRight}, // selects cell 0
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyDown},
		runes("5"),
	)
	require.Equal(t, 10, s.SelectedCell())
	require.Equal(t, 5, s.Board()[10])

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("7"), runes("3"), runes("7"))
	require.True(t, s.EditingOptions())
	require.Equal(t, domain.OptionSet{3}, s.OptionsAt(10))

	m = press(t, m, runes("m"), tea.KeyMsg{Type: tea.KeyBackspace})
	require.False(t, s.EditingOptions())
	require.Equal(t, 0, s.Board()[10])

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, domain.NoSelection, s.SelectedCell())
	require.NoError(t, m.err)
}

func TestVimKeys(t *testing.T) {
	m, s := newModel(t, false)
	press(t, m, runes("j"), runes("j"), runes("l"), runes("k"), runes("h"), runes("l"))
	require.Equal(t, 1, s.SelectedCell())
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t, false)
	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Empty(t, next.View())
}

func TestViewShowsValuesAndOptions(t *testing.T) {
	m, s := newModel(t, true)
	s.SetBoardValue(0, 4)
	s.AddOption(1, 1)
	s.AddOption(1, 9)
	s.SetSelectedCell(1)
	s.SetEditingOptions(true)

	view := m.View()
	lines := strings.Split(view, "\n")
	require.True(t, strings.HasPrefix(lines[0], "    1  "), "line 0: %q", lines[0])
	require.True(t, strings.HasPrefix(lines[1], " 4     "), "line 1: %q", lines[1])
	require.True(t, strings.HasPrefix(lines[2], "      9"), "line 2: %q", lines[2])
	require.Contains(t, view, "mode: options")
	require.Contains(t, view, "cell: r1c2")
	require.Contains(t, view, "filled: 1/81")
}

func TestCompactView(t *testing.T) {
	m, s := newModel(t, false)
	s.SetBoardValue(8, 2)
	lines := strings.Split(m.View(), "\n")
	require.Equal(t, " ·   ·   · │ ·   ·   · │ ·   ·   2", strings.TrimRight(lines[0], " "))
	rule := strings.Repeat("─", 11) + "┼" + strings.Repeat("─", 11) + "┼" + strings.Repeat("─", 11)
	require.Equal(t, rule, strings.TrimRight(lines[3], " "))
}

func TestInvalidDigitShowsError(t *testing.T) {
	m, _ := newModel(t, false)
	m.err = errors.New("boom")
	require.Contains(t, m.View(), "boom")
}
