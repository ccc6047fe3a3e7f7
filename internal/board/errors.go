package board

import "errors"

var (
	// ErrRange matches every *RangeError via errors.Is.
	ErrRange = errors.New("coordinate out of range")

	// ErrEmptyLayout is returned for a layout with zero files or ranks.
	ErrEmptyLayout = errors.New("layout needs at least one file and one rank")
)

// Axis names the coordinate that failed a range check.
type Axis uint8

const (
	AxisFile Axis = iota
	AxisRank
)

func (a Axis) String() string {
	if a == AxisFile {
		return "file"
	}
	return "rank"
}

// RangeError reports a coordinate outside the logical grid.
// When both coordinates are out of range the file is reported.
type RangeError struct {
	Axis   Axis
	Square Square
	Layout Layout
}

func (e *RangeError) Error() string {
	if e.Axis == AxisFile {
		return "Requested file is too large."
	}
	return "Requested rank is too large."
}

// Is makes errors.Is(err, ErrRange) hold for any range error.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// checkRange validates a coordinate against the layout, file first.
func checkRange(l Layout, f File, r Rank) error {
	if uint(f) >= l.Files {
		return &RangeError{Axis: AxisFile, Square: NewSquare(f, r), Layout: l}
	}
	if uint(r) >= l.Ranks {
		return &RangeError{Axis: AxisRank, Square: NewSquare(f, r), Layout: l}
	}
	return nil
}
