package ports

import "svw.info/sudokupad/internal/domain"

// BoardReader is the read surface renderers draw from.
type BoardReader interface {
	Board() domain.Board
	Options() domain.Options
	OptionsAt(index int) domain.OptionSet
	SelectedCell() int
	EditingOptions() bool
	Snapshot() domain.Snapshot
}

// BoardWriter is the write surface input handlers call.
type BoardWriter interface {
	SetBoardValue(index, value int)
	AddOption(index, option int)
	RemoveOption(index, option int)
	ToggleOption(index, option int)
	OnInput(value int)
	SetSelectedCell(index int)
	SetEditingOptions(editing bool)
}

// Observable publishes a snapshot after every change.
type Observable interface {
	Subscribe(fn func(domain.Snapshot)) (cancel func())
}

// BoardStore is the full store surface.
type BoardStore interface {
	BoardReader
	BoardWriter
	Observable
}
