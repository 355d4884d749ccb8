// Package fixture seeds a board store from YAML documents.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"svw.info/sudokupad/internal/domain"
	"svw.info/sudokupad/internal/ports"
)

// CellValue is one committed value.
type CellValue struct {
	Index int `yaml:"index"`
	Value int `yaml:"value"`
}

// CellOptions is the candidate list of one cell, applied in order.
type CellOptions struct {
	Index  int   `yaml:"index"`
	Values []int `yaml:"values"`
}

// Seed is the state a store starts a session from.
type Seed struct {
	Board    []CellValue   `yaml:"board"`
	Options  []CellOptions `yaml:"options"`
	Selected *int          `yaml:"selected,omitempty"`
	Editing  bool          `yaml:"editing"`
}

// Demo returns the sample position used by the demo binary.
func Demo() Seed {
	return Seed{
		Board: []CellValue{
			{Index: 15, Value: 5},
			{Index: 18, Value: 6},
			{Index: 27, Value: 7},
		},
		Options: []CellOptions{
			{Index: 65, Values: []int{7, 3, 2}},
			{Index: 69, Values: []int{1, 8}},
		},
	}
}

// Load decodes a single seed document. Unknown keys are an error.
func Load(r io.Reader) (Seed, error) {
	var s Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Seed{}, nil
		}
		return Seed{}, fmt.Errorf("decode fixture: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Seed{}, err
	}
	return s, nil
}

func LoadFile(path string) (Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return Seed{}, err
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return Seed{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks every index and digit against the board's domains.
func (s Seed) Validate() error {
	var errs []error
	for _, c := range s.Board {
		errs = append(errs, domain.CheckIndex(c.Index), domain.CheckValue(c.Value))
	}
	for _, c := range s.Options {
		errs = append(errs, domain.CheckIndex(c.Index))
		for _, o := range c.Values {
			errs = append(errs, domain.CheckOption(o))
		}
	}
	if s.Selected != nil && *s.Selected != domain.NoSelection {
		errs = append(errs, domain.CheckIndex(*s.Selected))
	}
	return errors.Join(errs...)
}

// Apply writes the seed through the store's write surface.
func (s Seed) Apply(w ports.BoardWriter) {
	for _, c := range s.Board {
		w.SetBoardValue(c.Index, c.Value)
	}
	for _, c := range s.Options {
		for _, o := range c.Values {
			w.AddOption(c.Index, o)
		}
	}
	if s.Selected != nil {
		w.SetSelectedCell(*s.Selected)
	}
	if s.Editing {
		w.SetEditingOptions(true)
	}
}
