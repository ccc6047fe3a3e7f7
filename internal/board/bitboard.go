package board

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/holiman/uint256"
)

// Bitboard is a Files x Ranks grid with one bit per square.
// Bit 0 = file 0 on rank 0, bit Files = file 0 on rank 1 (see Index).
//
// Storage is rounded up to whole 64-bit words. The bits between Size and
// Capacity are padding: an unchecked board can address them through Get, Set
// and Reset, but they never affect All, Any, None, Count, Squares or the
// rendered strings.
//
// A Bitboard is not safe for concurrent mutation. Give each goroutine its own
// Clone instead.
type Bitboard struct {
	layout Layout
	bits   *bitset.BitSet
}

// New creates an empty bitboard. It panics if the layout has a zero dimension.
func New(l Layout) *Bitboard {
	if err := l.Validate(); err != nil {
		panic(err)
	}
	return &Bitboard{layout: l, bits: bitset.New(l.Capacity())}
}

// FromUint64 creates a bitboard whose physical bit k is bit k of v.
func FromUint64(l Layout, v uint64) *Bitboard {
	if err := l.Validate(); err != nil {
		panic(err)
	}
	words := make([]uint64, l.Words())
	words[0] = v
	return &Bitboard{layout: l, bits: bitset.From(words)}
}

// FromUint256 is FromUint64 for up to 256 bits. Seed bits beyond Capacity are dropped.
func FromUint256(l Layout, v *uint256.Int) *Bitboard {
	if err := l.Validate(); err != nil {
		panic(err)
	}
	words := make([]uint64, l.Words())
	copy(words, v[:])
	return &Bitboard{layout: l, bits: bitset.From(words)}
}

// Layout returns the board's configuration.
func (b *Bitboard) Layout() Layout { return b.layout }

// Files returns the number of files.
func (b *Bitboard) Files() uint { return b.layout.Files }

// Ranks returns the number of ranks.
func (b *Bitboard) Ranks() uint { return b.layout.Ranks }

// ChecksRange reports whether Get, Set and Reset validate coordinates.
func (b *Bitboard) ChecksRange() bool { return b.layout.CheckRange }

// Size returns the number of logical bits.
func (b *Bitboard) Size() uint { return b.layout.Size() }

// Capacity returns the number of physical bits.
func (b *Bitboard) Capacity() uint { return b.layout.Capacity() }

// index returns the bit offset for (f, r), validating it when the layout
// asks for it or when force is set.
func (b *Bitboard) index(f File, r Rank, force bool) (uint, error) {
	if force || b.layout.CheckRange {
		if err := checkRange(b.layout, f, r); err != nil {
			return 0, err
		}
	}
	return Index(f, r, b.layout.Files), nil
}

// Get reports whether the square is set.
//
// On an unchecked board the coordinate is not validated; the caller must keep
// Index(f, r, Files) below Capacity.
func (b *Bitboard) Get(f File, r Rank) (bool, error) {
	i, err := b.index(f, r, false)
	if err != nil {
		return false, err
	}
	return b.bits.Test(i), nil
}

// GetSquare is Get for a Square.
func (b *Bitboard) GetSquare(sq Square) (bool, error) {
	return b.Get(sq.File(), sq.Rank())
}

// Test is Get with the range check always applied, whatever the layout says.
func (b *Bitboard) Test(f File, r Rank) (bool, error) {
	i, err := b.index(f, r, true)
	if err != nil {
		return false, err
	}
	return b.bits.Test(i), nil
}

// TestSquare is Test for a Square.
func (b *Bitboard) TestSquare(sq Square) (bool, error) {
	return b.Test(sq.File(), sq.Rank())
}

// Set sets the square. The board is untouched if an error is returned.
func (b *Bitboard) Set(f File, r Rank) error {
	return b.SetTo(f, r, true)
}

// SetSquare is Set for a Square.
func (b *Bitboard) SetSquare(sq Square) error {
	return b.SetTo(sq.File(), sq.Rank(), true)
}

// SetTo writes v to the square.
func (b *Bitboard) SetTo(f File, r Rank, v bool) error {
	i, err := b.index(f, r, false)
	if err != nil {
		return err
	}
	b.bits.SetTo(i, v)
	return nil
}

// Reset clears the square.
func (b *Bitboard) Reset(f File, r Rank) error {
	return b.SetTo(f, r, false)
}

// ResetSquare is Reset for a Square.
func (b *Bitboard) ResetSquare(sq Square) error {
	return b.SetTo(sq.File(), sq.Rank(), false)
}

// SetAll sets every bit, padding included.
func (b *Bitboard) SetAll() {
	b.bits.ClearAll()
	b.bits.FlipRange(0, b.layout.Capacity())
}

// ResetAll clears every bit, padding included.
func (b *Bitboard) ResetAll() {
	b.bits.ClearAll()
}

// All reports whether every logical square is set.
func (b *Bitboard) All() bool {
	i, ok := b.bits.NextClear(0)
	return !ok || i >= b.layout.Size()
}

// Any reports whether at least one logical square is set.
func (b *Bitboard) Any() bool {
	i, ok := b.bits.NextSet(0)
	return ok && i < b.layout.Size()
}

// None reports whether no logical square is set.
func (b *Bitboard) None() bool {
	return !b.Any()
}

// Count returns the number of set logical squares.
func (b *Bitboard) Count() uint {
	var n uint
	b.each(func(uint) { n++ })
	return n
}

// Squares returns the set logical squares in index order.
func (b *Bitboard) Squares() []Square {
	var squares []Square
	b.each(func(i uint) {
		squares = append(squares, b.square(i))
	})
	return squares
}

// ForEach calls fn for each set logical square in index order.
func (b *Bitboard) ForEach(fn func(Square)) {
	b.each(func(i uint) { fn(b.square(i)) })
}

func (b *Bitboard) each(fn func(uint)) {
	size := b.layout.Size()
	for i, ok := b.bits.NextSet(0); ok && i < size; i, ok = b.bits.NextSet(i + 1) {
		fn(i)
	}
}

func (b *Bitboard) square(i uint) Square {
	return NewSquare(File(i%b.layout.Files), Rank(i/b.layout.Files))
}

// Uint64 returns the low 64 physical bits.
func (b *Bitboard) Uint64() uint64 {
	return b.bits.Words()[0]
}

// Uint256 returns the low 256 physical bits.
func (b *Bitboard) Uint256() *uint256.Int {
	v := new(uint256.Int)
	copy(v[:], b.words())
	return v
}

// Clone returns an independent copy of the board.
func (b *Bitboard) Clone() *Bitboard {
	return &Bitboard{layout: b.layout, bits: b.bits.Clone()}
}

// Equal reports whether both boards have the same layout and the same bits,
// padding included. Storage grown by writes past Capacity is not compared.
func (b *Bitboard) Equal(o *Bitboard) bool {
	return b.layout == o.layout && slices.Equal(b.words(), o.words())
}

// words returns the Capacity-sized prefix of the backing storage.
func (b *Bitboard) words() []uint64 {
	return b.bits.Words()[:b.layout.Words()]
}

// Render returns one character per logical bit, highest index first, so the
// last character is file 0 on rank 0.
func (b *Bitboard) Render(empty, set byte) string {
	size := b.layout.Size()
	var sb strings.Builder
	sb.Grow(int(size))
	for i := size; i > 0; i-- {
		if b.bits.Test(i - 1) {
			sb.WriteByte(set)
		} else {
			sb.WriteByte(empty)
		}
	}
	return sb.String()
}

// String returns Render('-', 'x').
func (b *Bitboard) String() string {
	return b.Render('-', 'x')
}

// Grid returns a multi-line picture of the board, top rank first, with rank
// numbers on the left and file names underneath.
func (b *Bitboard) Grid(empty, set byte) string {
	width := len(Rank(b.layout.Ranks - 1).String())
	var sb strings.Builder
	for r := b.layout.Ranks; r > 0; r-- {
		rank := Rank(r - 1)
		fmt.Fprintf(&sb, "%*s ", width, rank)
		for f := uint(0); f < b.layout.Files; f++ {
			c := empty
			if b.bits.Test(Index(File(f), rank, b.layout.Files)) {
				c = set
			}
			sb.WriteByte(c)
			sb.WriteByte(' ')
		}
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat(" ", width+1))
	for f := uint(0); f < b.layout.Files; f++ {
		sb.WriteString(File(f).String())
		sb.WriteByte(' ')
	}
	sb.WriteString("\n")
	return sb.String()
}

// Column is a read-only view of one file, so b.At(f).Get(r) reads like b[f][r].
type Column struct {
	board *Bitboard
	file  File
}

// At returns a view of file f.
func (b *Bitboard) At(f File) Column {
	return Column{board: b, file: f}
}

// Get is Bitboard.Get for this column's file.
func (c Column) Get(r Rank) (bool, error) {
	return c.board.Get(c.file, r)
}
