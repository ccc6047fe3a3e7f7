// Package render draws bitboards as SVG and PNG pictures for debugging.
package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hailam/gridboard/internal/board"
	"golang.org/x/image/colornames"
)

// labelMargin is the space reserved left of and below the grid for labels.
const labelMargin = 20

// ErrUnknownColor is returned for a color that is not an SVG color name.
var ErrUnknownColor = errors.New("unknown color name")

// Options controls how a board is drawn. Colors are SVG color names.
type Options struct {
	CellSize   int
	SetColor   string
	EmptyColor string
	GridColor  string
	LabelColor string
	Background string
	Labels     bool
}

// DefaultOptions returns 40px cells with file and rank labels.
func DefaultOptions() Options {
	return Options{
		CellSize:   40,
		SetColor:   "darkslategray",
		EmptyColor: "whitesmoke",
		GridColor:  "lightgray",
		LabelColor: "black",
		Background: "white",
		Labels:     true,
	}
}

func (o Options) validate() error {
	if o.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", o.CellSize)
	}
	for _, name := range []string{o.SetColor, o.EmptyColor, o.GridColor, o.LabelColor, o.Background} {
		if _, err := lookupColor(name); err != nil {
			return err
		}
	}
	return nil
}

func lookupColor(name string) (color.RGBA, error) {
	c, ok := colornames.Map[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return c, nil
}

// geometry holds the pixel layout of a drawing.
type geometry struct {
	margin int
	cell   int
	files  int
	ranks  int
}

func newGeometry(bb *board.Bitboard, o Options) geometry {
	g := geometry{cell: o.CellSize, files: int(bb.Files()), ranks: int(bb.Ranks())}
	if o.Labels {
		g.margin = labelMargin
	}
	return g
}

func (g geometry) width() int  { return g.margin + g.files*g.cell }
func (g geometry) height() int { return g.ranks*g.cell + g.margin }

// origin returns the top-left pixel of a cell. The top rank is drawn first.
func (g geometry) origin(f board.File, r board.Rank) (x, y int) {
	return g.margin + int(f)*g.cell, (g.ranks - 1 - int(r)) * g.cell
}
