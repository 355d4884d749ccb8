// Package store holds the playing state of a Sudoku board: committed values,
// per-cell candidates, the selected cell and the input mode.
//
// Every mutation builds a new state value and publishes it with a single
// pointer swap, so a reader always sees either the state before or after a
// mutation, never a partial one. Accessors hand out copies.
package store

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"svw.info/sudokupad/internal/domain"
	"svw.info/sudokupad/internal/ports"
)

var _ ports.BoardStore = (*Store)(nil)

// state is immutable once published. Option slices are shared between
// versions and must never be written to.
type state struct {
	version  uint64
	board    domain.Board
	options  domain.Options
	selected int
	editing  bool
}

func (st *state) snapshot() domain.Snapshot {
	return domain.Snapshot{
		Version:  st.version,
		Board:    st.board,
		Options:  st.options.Clone(),
		Selected: st.selected,
		Editing:  st.editing,
	}
}

type subscriber struct {
	id int
	fn func(domain.Snapshot)
}

// Store is the board store. Create it with New; the zero value is unusable
// and panics with a *domain.UsageError.
type Store struct {
	id     string
	cur    atomic.Pointer[state]
	log    *slog.Logger
	strict bool
	reject func(error)

	mu     sync.Mutex
	subs   []subscriber
	nextID int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for rejected mutations.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithStrictValues makes SetBoardValue reject values outside 0..9 and
// AddOption reject options outside 1..9. Rejected calls leave state unchanged.
func WithStrictValues(on bool) Option {
	return func(s *Store) { s.strict = on }
}

// WithRejectHook receives every strict-mode rejection.
func WithRejectHook(fn func(error)) Option {
	return func(s *Store) { s.reject = fn }
}

// New returns a store with an empty board, no candidates, no selection and
// value entry mode.
func New(opts ...Option) *Store {
	s := &Store{id: uuid.NewString(), log: slog.Default()}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With("component", "store", "store", s.id)
	st := &state{selected: domain.NoSelection}
	for i := range st.options {
		st.options[i] = domain.OptionSet{}
	}
	s.cur.Store(st)
	return s
}

// ID identifies this store instance in logs.
func (s *Store) ID() string {
	s.load("ID")
	return s.id
}

func (s *Store) load(op string) *state {
	if s == nil {
		panic(&domain.UsageError{Op: op})
	}
	st := s.cur.Load()
	if st == nil {
		panic(&domain.UsageError{Op: op})
	}
	return st
}

// commit applies fn to a copy of the current state and publishes it unless fn
// reports no change. fn may run more than once under contention.
func (s *Store) commit(op string, fn func(next *state) bool) {
	for {
		cur := s.load(op)
		next := *cur
		if !fn(&next) {
			return
		}
		next.version = cur.version + 1
		if s.cur.CompareAndSwap(cur, &next) {
			s.notify(&next)
			return
		}
	}
}

// accept reports whether a cell mutation may proceed.
func (s *Store) accept(op string, index, v int, check func(int) error) bool {
	s.load(op)
	if !domain.InRange(index) {
		s.log.Debug("index out of range, ignored", "op", op, "index", index)
		return false
	}
	if s.strict && check != nil {
		if err := check(v); err != nil {
			s.log.Warn("value rejected", "op", op, "index", index, "err", err)
			if s.reject != nil {
				s.reject(err)
			}
			return false
		}
	}
	return true
}

// Board returns the committed values.
func (s *Store) Board() domain.Board { return s.load("Board").board }

// Options returns every cell's candidates.
func (s *Store) Options() domain.Options { return s.load("Options").options.Clone() }

// OptionsAt returns the candidates of one cell, or nil for an index off the board.
func (s *Store) OptionsAt(index int) domain.OptionSet {
	st := s.load("OptionsAt")
	if !domain.InRange(index) {
		return nil
	}
	return st.options[index].Clone()
}

// HasOption reports whether option is a candidate of the cell.
func (s *Store) HasOption(index, option int) bool {
	st := s.load("HasOption")
	return domain.InRange(index) && st.options[index].Contains(option)
}

func (s *Store) SelectedCell() int { return s.load("SelectedCell").selected }

func (s *Store) EditingOptions() bool { return s.load("EditingOptions").editing }

// Mode returns the input mode implied by EditingOptions.
func (s *Store) Mode() domain.InputMode { return domain.ModeOf(s.load("Mode").editing) }

// Version increases by one with every published change.
func (s *Store) Version() uint64 { return s.load("Version").version }

// Snapshot returns a consistent copy of the whole state.
func (s *Store) Snapshot() domain.Snapshot { return s.load("Snapshot").snapshot() }

// SetBoardValue commits value to the cell. Indexes off the board are ignored.
func (s *Store) SetBoardValue(index, value int) {
	const op = "SetBoardValue"
	if !s.accept(op, index, value, domain.CheckValue) {
		return
	}
	s.commit(op, func(st *state) bool {
		st.board[index] = value
		return true
	})
}

// AddOption adds a candidate to the cell. Adding a present candidate does
// nothing; indexes off the board are ignored.
func (s *Store) AddOption(index, option int) {
	const op = "AddOption"
	if !s.accept(op, index, option, domain.CheckOption) {
		return
	}
	s.commit(op, func(st *state) bool {
		cur := st.options[index]
		if cur.Contains(option) {
			return false
		}
		next := make(domain.OptionSet, len(cur), len(cur)+1)
		copy(next, cur)
		st.options[index] = append(next, option)
		return true
	})
}

// RemoveOption removes a candidate from the cell. Removing an absent
// candidate does nothing; indexes off the board are ignored.
func (s *Store) RemoveOption(index, option int) {
	const op = "RemoveOption"
	if !s.accept(op, index, option, nil) {
		return
	}
	s.commit(op, func(st *state) bool {
		cur := st.options[index]
		if !cur.Contains(option) {
			return false
		}
		next := make(domain.OptionSet, 0, len(cur))
		for _, v := range cur {
			if v != option {
				next = append(next, v)
			}
		}
		st.options[index] = next
		return true
	})
}

// ToggleOption removes the candidate if present and adds it otherwise.
func (s *Store) ToggleOption(index, option int) {
	if s.HasOption(index, option) {
		s.RemoveOption(index, option)
		return
	}
	s.AddOption(index, option)
}

// OnInput applies numeric input to the selected cell according to the mode.
func (s *Store) OnInput(value int) {
	st := s.load("OnInput")
	if st.editing {
		s.ToggleOption(st.selected, value)
		return
	}
	s.SetBoardValue(st.selected, value)
}

// SetSelectedCell selects a cell. Any index is stored as given; -1 means no
// selection.
func (s *Store) SetSelectedCell(index int) {
	s.commit("SetSelectedCell", func(st *state) bool {
		st.selected = index
		return true
	})
}

func (s *Store) SetEditingOptions(editing bool) {
	s.commit("SetEditingOptions", func(st *state) bool {
		st.editing = editing
		return true
	})
}

// ToggleEditingOptions flips the input mode.
func (s *Store) ToggleEditingOptions() {
	s.commit("ToggleEditingOptions", func(st *state) bool {
		st.editing = !st.editing
		return true
	})
}
