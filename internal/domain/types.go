package domain

const (
	// Size is the edge length of the grid.
	Size = 9
	// Cells is the number of cells on the board.
	Cells = Size * Size
	// NoSelection marks that no cell is selected.
	NoSelection = -1

	MinValue  = 0
	MaxValue  = 9
	MinOption = 1
	MaxOption = 9
)

// Board holds committed values in row-major order; 0 means empty.
type Board [Cells]int

// OptionSet holds the pencil-mark candidates of one cell.
type OptionSet []int

// Options holds one OptionSet per cell.
type Options [Cells]OptionSet

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Snapshot is a consistent read of the whole store.
type Snapshot struct {
	Version  uint64
	Board    Board
	Options  Options
	Selected int
	Editing  bool
}

// InRange reports whether index addresses a cell.
func InRange(index int) bool { return index >= 0 && index < Cells }

// Index converts a row/col pair to a linear cell index.
func Index(row, col int) int { return row*Size + col }

// CoordOf converts a linear cell index to its row/col pair.
func CoordOf(index int) CellCoord {
	return CellCoord{Row: index / Size, Col: index % Size}
}

// Contains reports whether option is in the set.
func (s OptionSet) Contains(option int) bool {
	for _, v := range s {
		if v == option {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no memory with s.
func (s OptionSet) Clone() OptionSet {
	if s == nil {
		return OptionSet{}
	}
	out := make(OptionSet, len(s))
	copy(out, s)
	return out
}

// Clone returns a deep copy of every cell's set.
func (o *Options) Clone() Options {
	var out Options
	for i := range o {
		out[i] = o[i].Clone()
	}
	return out
}

// Filled counts the cells holding a non-zero value.
func (b *Board) Filled() int {
	n := 0
	for _, v := range b {
		if v != 0 {
			n++
		}
	}
	return n
}
