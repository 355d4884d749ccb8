package usecase

import (
	"svw.info/sudokupad/internal/domain"
	"svw.info/sudokupad/internal/ports"
)

// Service translates player intents into store operations.
type Service struct {
	Store ports.BoardStore
}

func NewService(s ports.BoardStore) *Service {
	return &Service{Store: s}
}

func notConfigured(op string) error { return &domain.UsageError{Op: "usecase." + op} }

// Snapshot returns the current state for rendering.
func (u *Service) Snapshot() (domain.Snapshot, error) {
	if u == nil || u.Store == nil {
		return domain.Snapshot{}, notConfigured("Snapshot")
	}
	return u.Store.Snapshot(), nil
}

// Select makes index the target of further input.
func (u *Service) Select(index int) error {
	if u == nil || u.Store == nil {
		return notConfigured("Select")
	}
	if err := domain.CheckIndex(index); err != nil {
		return err
	}
	u.Store.SetSelectedCell(index)
	return nil
}

func (u *Service) Deselect() error {
	if u == nil || u.Store == nil {
		return notConfigured("Deselect")
	}
	u.Store.SetSelectedCell(domain.NoSelection)
	return nil
}

// Move shifts the selection by whole rows and columns, stopping at the grid
// edge. With nothing selected the first move selects the top-left cell.
func (u *Service) Move(dRow, dCol int) error {
	if u == nil || u.Store == nil {
		return notConfigured("Move")
	}
	cur := u.Store.SelectedCell()
	if !domain.InRange(cur) {
		u.Store.SetSelectedCell(0)
		return nil
	}
	c := domain.CoordOf(cur)
	next := domain.Index(clamp(c.Row+dRow), clamp(c.Col+dCol))
	if next != cur {
		u.Store.SetSelectedCell(next)
	}
	return nil
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v >= domain.Size {
		return domain.Size - 1
	}
	return v
}

// Input feeds a digit to the selected cell.
func (u *Service) Input(digit int) error {
	if u == nil || u.Store == nil {
		return notConfigured("Input")
	}
	if err := domain.CheckOption(digit); err != nil {
		return err
	}
	u.Store.OnInput(digit)
	return nil
}

// Clear empties the selected cell's value. It does nothing in option mode.
func (u *Service) Clear() error {
	if u == nil || u.Store == nil {
		return notConfigured("Clear")
	}
	if u.Store.EditingOptions() {
		return nil
	}
	u.Store.OnInput(0)
	return nil
}

// ToggleMode switches between value and option entry.
func (u *Service) ToggleMode() (domain.InputMode, error) {
	if u == nil || u.Store == nil {
		return domain.ValueEntry, notConfigured("ToggleMode")
	}
	editing := !u.Store.EditingOptions()
	u.Store.SetEditingOptions(editing)
	return domain.ModeOf(editing), nil
}
