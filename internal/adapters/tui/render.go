package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/sudokupad/internal/domain"
)

type styles struct {
	value    lipgloss.Style
	option   lipgloss.Style
	selected lipgloss.Style
	border   lipgloss.Style
	status   lipgloss.Style
	err      lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		value:    lipgloss.NewStyle().Bold(true),
		option:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		selected: lipgloss.NewStyle().Reverse(true),
		border:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1),
		err:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

const cellWidth = 3

// cellLines renders one cell as height lines of cellWidth runes.
func cellLines(value int, opts domain.OptionSet, height int) []string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", cellWidth)
	}
	mid := height / 2
	switch {
	case value != 0:
		lines[mid] = fmt.Sprintf(" %d ", value)
	case height == 1:
		lines[mid] = " · "
	default:
		for r := 0; r < 3 && r < height; r++ {
			var b strings.Builder
			for c := 1; c <= 3; c++ {
				d := r*3 + c
				if opts.Contains(d) {
					fmt.Fprintf(&b, "%d", d)
				} else {
					b.WriteByte(' ')
				}
			}
			lines[r] = b.String()
		}
	}
	return lines
}

// renderGrid draws the board. With showOptions each cell is three lines tall
// and empty cells show their candidates in keypad order.
func renderGrid(snap domain.Snapshot, showOptions bool, st styles) string {
	height := 1
	if showOptions {
		height = 3
	}

	var rule strings.Builder
	for c := 0; c < domain.Size; c++ {
		rule.WriteString(strings.Repeat("─", cellWidth))
		if c < domain.Size-1 {
			if c%3 == 2 {
				rule.WriteString("┼")
			} else {
				rule.WriteString("─")
			}
		}
	}

	var out []string
	for r := 0; r < domain.Size; r++ {
		if r > 0 {
			switch {
			case r%3 == 0:
				out = append(out, st.border.Render(rule.String()))
			case showOptions:
				out = append(out, "")
			}
		}
		rows := make([]strings.Builder, height)
		for c := 0; c < domain.Size; c++ {
			idx := domain.Index(r, c)
			value := snap.Board[idx]
			lines := cellLines(value, snap.Options[idx], height)
			style := st.option
			if value != 0 {
				style = st.value
			}
			if idx == snap.Selected {
				style = st.selected
			}
			for i, line := range lines {
				rows[i].WriteString(style.Render(line))
				if c < domain.Size-1 {
					if c%3 == 2 {
						rows[i].WriteString(st.border.Render("│"))
					} else {
						rows[i].WriteByte(' ')
					}
				}
			}
		}
		for i := range rows {
			out = append(out, rows[i].String())
		}
	}
	return strings.Join(out, "\n")
}

func statusLine(snap domain.Snapshot) string {
	cell := "none"
	if domain.InRange(snap.Selected) {
		c := domain.CoordOf(snap.Selected)
		cell = fmt.Sprintf("r%dc%d", c.Row+1, c.Col+1)
	}
	return fmt.Sprintf("mode: %s  cell: %s  filled: %d/%d",
		domain.ModeOf(snap.Editing), cell, snap.Board.Filled(), domain.Cells)
}
