package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/hailam/gridboard/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Image rasterizes the board. Cells go through the same SVG as SVG; labels
// are drawn with a bitmap font since the rasterizer has no text support.
func Image(bb *board.Bitboard, o Options) (*image.RGBA, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writeSVG(&buf, bb, o, false)

	icon, err := oksvg.ReadIconStream(&buf, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse board svg: %w", err)
	}

	g := newGeometry(bb, o)
	w, h := g.width(), g.height()
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	if o.Labels {
		if err := drawLabels(rgba, g, o); err != nil {
			return nil, err
		}
	}
	return rgba, nil
}

// PNG writes the rasterized board as a PNG image.
func PNG(w io.Writer, bb *board.Bitboard, o Options) error {
	img, err := Image(bb, o)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func drawLabels(dst *image.RGBA, g geometry, o Options) error {
	c, err := lookupColor(o.LabelColor)
	if err != nil {
		return err
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
	}
	ascent := d.Face.Metrics().Ascent.Ceil()

	center := func(s string, cx, cy int) {
		width := d.MeasureString(s).Ceil()
		d.Dot = fixed.P(cx-width/2, cy+ascent/2)
		d.DrawString(s)
	}

	for r := 0; r < g.ranks; r++ {
		rank := board.Rank(r)
		_, y := g.origin(0, rank)
		center(rank.String(), g.margin/2, y+g.cell/2)
	}
	for f := 0; f < g.files; f++ {
		file := board.File(f)
		x, _ := g.origin(file, 0)
		center(file.String(), x+g.cell/2, g.ranks*g.cell+g.margin/2)
	}
	return nil
}
