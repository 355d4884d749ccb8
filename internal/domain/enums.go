package domain

// InputMode decides what numeric input does to the selected cell.
type InputMode int

const (
	ValueEntry  InputMode = iota // input commits the cell value
	OptionEntry                  // input toggles a candidate
)

// ModeOf maps the editing-options flag to its mode.
func ModeOf(editing bool) InputMode {
	if editing {
		return OptionEntry
	}
	return ValueEntry
}

func (m InputMode) String() string {
	switch m {
	case OptionEntry:
		return "options"
	default:
		return "value"
	}
}
