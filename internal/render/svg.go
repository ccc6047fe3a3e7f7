package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/hailam/gridboard/internal/board"
)

// SVG writes an SVG picture of the logical grid: one rect per square, file 0
// on the left and rank 0 at the bottom.
func SVG(w io.Writer, bb *board.Bitboard, o Options) error {
	if err := o.validate(); err != nil {
		return err
	}
	writeSVG(w, bb, o, o.Labels)
	return nil
}

// writeSVG draws the board. text controls whether labels are emitted as SVG
// text; the PNG path reserves the margin but draws labels itself.
func writeSVG(w io.Writer, bb *board.Bitboard, o Options, text bool) {
	g := newGeometry(bb, o)
	canvas := svg.New(w)
	canvas.Startview(g.width(), g.height(), 0, 0, g.width(), g.height())
	canvas.Rect(0, 0, g.width(), g.height(), "fill:"+o.Background)

	setStyle := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", o.SetColor, o.GridColor)
	emptyStyle := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", o.EmptyColor, o.GridColor)

	for r := 0; r < g.ranks; r++ {
		for f := 0; f < g.files; f++ {
			file, rank := board.File(f), board.Rank(r)
			style := emptyStyle
			// Coordinates are in range by construction.
			if v, _ := bb.Test(file, rank); v {
				style = setStyle
			}
			x, y := g.origin(file, rank)
			canvas.Rect(x, y, g.cell, g.cell, style)
		}
	}

	if text {
		labelStyle := fmt.Sprintf("font-family:monospace;font-size:12px;text-anchor:middle;fill:%s", o.LabelColor)
		for r := 0; r < g.ranks; r++ {
			rank := board.Rank(r)
			_, y := g.origin(0, rank)
			canvas.Text(g.margin/2, y+g.cell/2+4, rank.String(), labelStyle)
		}
		for f := 0; f < g.files; f++ {
			file := board.File(f)
			x, _ := g.origin(file, 0)
			canvas.Text(x+g.cell/2, g.ranks*g.cell+g.margin-6, file.String(), labelStyle)
		}
	}

	canvas.End()
}
