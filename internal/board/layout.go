package board

import "fmt"

// WordBits is the storage granularity. Capacity is always a multiple of it.
const WordBits = 64

// Layout fixes the dimensions of a bitboard and whether ordinary accessors
// validate coordinates.
type Layout struct {
	Files      uint
	Ranks      uint
	CheckRange bool
}

// Chess is the 8x8 range-checked layout.
var Chess = Layout{Files: 8, Ranks: 8, CheckRange: true}

// Checked returns a range-checked layout of the given dimensions.
func Checked(files, ranks uint) Layout {
	return Layout{Files: files, Ranks: ranks, CheckRange: true}
}

// Unchecked returns a layout whose Get/Set/Reset trust the caller.
func Unchecked(files, ranks uint) Layout {
	return Layout{Files: files, Ranks: ranks}
}

// Size returns the number of logical bits (files x ranks).
func (l Layout) Size() uint {
	return l.Files * l.Ranks
}

// Capacity returns Size rounded up to a whole number of storage words.
func (l Layout) Capacity() uint {
	return (l.Size() + WordBits - 1) / WordBits * WordBits
}

// Words returns the number of 64-bit storage words.
func (l Layout) Words() uint {
	return l.Capacity() / WordBits
}

// Validate reports whether the layout describes a non-empty grid.
func (l Layout) Validate() error {
	if l.Files == 0 || l.Ranks == 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyLayout, l.Files, l.Ranks)
	}
	return nil
}

func (l Layout) String() string {
	mode := "checked"
	if !l.CheckRange {
		mode = "unchecked"
	}
	return fmt.Sprintf("%dx%d (%s)", l.Files, l.Ranks, mode)
}

// Index maps a coordinate to its flat bit offset: rank-major, file-minor.
// Bit 0 is file 0 on rank 0. Index does no range checking.
func Index(f File, r Rank, files uint) uint {
	return uint(r)*files + uint(f)
}
