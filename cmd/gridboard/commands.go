package main

import (
	"fmt"
	"os"

	"github.com/hailam/gridboard/internal/board"
	"github.com/hailam/gridboard/internal/render"
	"github.com/hailam/gridboard/internal/storage"
	"github.com/urfave/cli/v2"
)

var ShowCmd = cli.Command{
	Action: doShow,
	Name:   "show",
	Usage:  "print a board as a debug string and a grid",
	Flags:  boardFlags,
}

var ProbeCmd = cli.Command{
	Action:    doProbe,
	Name:      "probe",
	Usage:     "range-checked read of one square, whatever the layout's mode",
	ArgsUsage: "<square>",
	Flags:     boardFlags,
}

var (
	outFlag = cli.StringFlag{
		Name:  "out",
		Usage: "output file",
	}
	cellFlag = cli.IntFlag{
		Name:  "cell",
		Usage: "cell size in pixels; defaults to the stored preference",
	}
	noLabelsFlag = cli.BoolFlag{
		Name:  "no-labels",
		Usage: "omit file and rank labels",
	}
)

var SVGCmd = cli.Command{
	Action: doSVG,
	Name:   "svg",
	Usage:  "draw a board as SVG (stdout unless --out is given)",
	Flags:  append([]cli.Flag{&outFlag, &cellFlag, &noLabelsFlag}, boardFlags...),
}

var PNGCmd = cli.Command{
	Action: doPNG,
	Name:   "png",
	Usage:  "draw a board as PNG",
	Flags: append([]cli.Flag{
		&cli.StringFlag{Name: outFlag.Name, Usage: outFlag.Usage, Required: true},
		&cellFlag,
		&noLabelsFlag,
	}, boardFlags...),
}

func doShow(c *cli.Context) error {
	prefs := loadPreferences(c)
	bb, err := buildBoard(c, prefs)
	if err != nil {
		return err
	}

	empty, set := prefs.EmptyChar[0], prefs.SetChar[0]
	w := c.App.Writer
	fmt.Fprintf(w, "layout:   %s\n", bb.Layout())
	fmt.Fprintf(w, "size:     %d\n", bb.Size())
	fmt.Fprintf(w, "capacity: %d\n", bb.Capacity())
	fmt.Fprintf(w, "bits:     %s\n", bb.Render(empty, set))
	fmt.Fprintf(w, "uint256:  %s\n", bb.Uint256().Hex())
	fmt.Fprint(w, bb.Grid(empty, set))
	fmt.Fprintf(w, "all=%t any=%t none=%t count=%d\n", bb.All(), bb.Any(), bb.None(), bb.Count())
	return nil
}

func doProbe(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("missing square parameter")
	}
	sq, err := board.Parse(c.Args().Get(0))
	if err != nil {
		return err
	}

	bb, err := buildBoard(c, loadPreferences(c))
	if err != nil {
		return err
	}

	v, err := bb.TestSquare(sq)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, v)
	return nil
}

func renderOptions(c *cli.Context, prefs *storage.Preferences) render.Options {
	o := render.DefaultOptions()
	o.CellSize = prefs.CellSize
	if c.IsSet(cellFlag.Name) {
		o.CellSize = c.Int(cellFlag.Name)
	}
	o.Labels = !c.Bool(noLabelsFlag.Name)
	return o
}

func doSVG(c *cli.Context) error {
	prefs := loadPreferences(c)
	bb, err := buildBoard(c, prefs)
	if err != nil {
		return err
	}

	out := c.String(outFlag.Name)
	if out == "" {
		return render.SVG(c.App.Writer, bb, renderOptions(c, prefs))
	}
	return writeFile(out, func(f *os.File) error {
		return render.SVG(f, bb, renderOptions(c, prefs))
	})
}

func doPNG(c *cli.Context) error {
	prefs := loadPreferences(c)
	bb, err := buildBoard(c, prefs)
	if err != nil {
		return err
	}
	return writeFile(c.String(outFlag.Name), func(f *os.File) error {
		return render.PNG(f, bb, renderOptions(c, prefs))
	})
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
