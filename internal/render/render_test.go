package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/hailam/gridboard/internal/board"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func newTestBoard(t *testing.T) *board.Bitboard {
	t.Helper()
	bb := board.New(board.Checked(2, 3))
	require.NoError(t, bb.Set(0, 0))
	require.NoError(t, bb.Set(1, 2))
	return bb
}

func TestSVG_DrawsOneRectPerSquare(t *testing.T) {
	bb := newTestBoard(t)
	o := DefaultOptions()

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, bb, o))
	out := buf.String()

	// background + one per square
	require.Equal(t, 1+int(bb.Size()), strings.Count(out, "<rect"))
	require.Equal(t, 2, strings.Count(out, "fill:"+o.SetColor))
	require.Equal(t, 4, strings.Count(out, "fill:"+o.EmptyColor))
	require.Contains(t, out, `viewBox="0 0 100 140"`)
	require.Equal(t, 5, strings.Count(out, "<text"))
}

func TestSVG_NoLabels(t *testing.T) {
	o := DefaultOptions()
	o.Labels = false

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, newTestBoard(t), o))
	require.NotContains(t, buf.String(), "<text")
	require.Contains(t, buf.String(), `viewBox="0 0 80 120"`)
}

func TestSVG_RejectsBadOptions(t *testing.T) {
	o := DefaultOptions()
	o.SetColor = "not-a-color"
	require.ErrorIs(t, SVG(&bytes.Buffer{}, newTestBoard(t), o), ErrUnknownColor)

	o = DefaultOptions()
	o.CellSize = 0
	require.Error(t, SVG(&bytes.Buffer{}, newTestBoard(t), o))
}

func requireColorNear(t *testing.T, want color.RGBA, got color.Color) {
	t.Helper()
	r, g, b, _ := got.RGBA()
	near := func(a uint8, b uint32) bool {
		d := int(a) - int(b>>8)
		return d >= -2 && d <= 2
	}
	require.True(t, near(want.R, r) && near(want.G, g) && near(want.B, b),
		"want %v, got %v", want, got)
}

func TestImage_FillsSetCells(t *testing.T) {
	bb := newTestBoard(t)
	o := DefaultOptions()

	img, err := Image(bb, o)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 100, 140), img.Bounds())

	set := colornames.Map[o.SetColor]
	empty := colornames.Map[o.EmptyColor]

	// a1 is bottom-left, b3 top-right; cell centers sit 20px into each 40px cell.
	requireColorNear(t, set, img.At(40, 100))
	requireColorNear(t, empty, img.At(80, 100))
	requireColorNear(t, set, img.At(80, 20))
	requireColorNear(t, empty, img.At(40, 20))
}

func TestPNG_Encodes(t *testing.T) {
	o := DefaultOptions()
	o.CellSize = 10
	o.Labels = false

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, board.New(board.Chess), o))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 80, 80), img.Bounds())
	requireColorNear(t, colornames.Map[o.EmptyColor], img.At(5, 5))
}
