package domain

import (
	"errors"
	"fmt"
)

// ErrNoStore is returned when the board store is used without having been
// constructed or provided.
var ErrNoStore = errors.New("board store is undefined: it must be created with store.New or provided through a context")

// UsageError reports a programming error: an operation on a store that does
// not exist.
type UsageError struct {
	Op string
}

func (e *UsageError) Error() string {
	if e.Op == "" {
		return ErrNoStore.Error()
	}
	return e.Op + ": " + ErrNoStore.Error()
}

func (e *UsageError) Unwrap() error { return ErrNoStore }

// ValidationError reports a value outside its allowed domain.
type ValidationError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %d: must be in %d..%d", e.Field, e.Value, e.Min, e.Max)
}

// CheckIndex validates a cell index.
func CheckIndex(index int) error {
	if !InRange(index) {
		return &ValidationError{Field: "index", Value: index, Min: 0, Max: Cells - 1}
	}
	return nil
}

// CheckValue validates a committed value (0 clears).
func CheckValue(v int) error {
	if v < MinValue || v > MaxValue {
		return &ValidationError{Field: "value", Value: v, Min: MinValue, Max: MaxValue}
	}
	return nil
}

// CheckOption validates a candidate digit.
func CheckOption(o int) error {
	if o < MinOption || o > MaxOption {
		return &ValidationError{Field: "option", Value: o, Min: MinOption, Max: MaxOption}
	}
	return nil
}
