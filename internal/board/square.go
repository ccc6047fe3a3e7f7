// Package board implements a fixed-dimension bit-packed grid ("bitboard") and the
// coordinate types used to index into it.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// File is a column coordinate (0 = leftmost file).
// File and Rank are distinct types so they cannot be swapped by accident.
type File uint

// Rank is a row coordinate (0 = bottom rank).
type Rank uint

// Chess file and rank names.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// ErrInvalidSquare is returned when a square cannot be parsed.
var ErrInvalidSquare = errors.New("invalid square")

// Value returns the underlying index.
func (f File) Value() uint { return uint(f) }

// Value returns the underlying index.
func (r Rank) Value() uint { return uint(r) }

// String returns the file letter ("a".."z"), or its number past the alphabet.
func (f File) String() string {
	if f < 26 {
		return string(rune('a' + f))
	}
	return strconv.FormatUint(uint64(f), 10)
}

// String returns the 1-based rank number.
func (r Rank) String() string {
	return strconv.FormatUint(uint64(r)+1, 10)
}

// Square identifies one cell of a board.
type Square struct {
	file File
	rank Rank
}

// NewSquare creates a square from a file and a rank.
func NewSquare(f File, r Rank) Square {
	return Square{file: f, rank: r}
}

// File returns the file (column) of the square.
func (sq Square) File() File {
	return sq.file
}

// Rank returns the rank (row) of the square.
func (sq Square) Rank() Rank {
	return sq.rank
}

// String returns algebraic notation for the square (e.g., "e4", "j10").
// Files past 'z' fall back to zero-based "file,rank" coordinates.
func (sq Square) String() string {
	if sq.file >= 26 {
		return fmt.Sprintf("%d,%d", sq.file, sq.rank)
	}
	return sq.file.String() + sq.rank.String()
}

// ParseSquare parses algebraic notation (e.g., "e4", "j10") into a Square.
// The square is not checked against any board.
func ParseSquare(s string) (Square, error) {
	if len(s) < 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	c := s[0]
	if c < 'a' || c > 'z' {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	n, err := strconv.ParseUint(s[1:], 10, 32)
	if err != nil || n == 0 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	return NewSquare(File(c-'a'), Rank(n-1)), nil
}

// ParseCoords parses a zero-based "file,rank" pair (e.g., "4,3").
func ParseCoords(s string) (Square, error) {
	fs, rs, ok := strings.Cut(s, ",")
	if !ok {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	f, err := strconv.ParseUint(strings.TrimSpace(fs), 10, 32)
	if err != nil {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	r, err := strconv.ParseUint(strings.TrimSpace(rs), 10, 32)
	if err != nil {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	return NewSquare(File(f), Rank(r)), nil
}

// Parse accepts either algebraic notation or a "file,rank" pair.
func Parse(s string) (Square, error) {
	if strings.Contains(s, ",") {
		return ParseCoords(s)
	}
	return ParseSquare(s)
}
