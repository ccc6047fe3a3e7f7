package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hailam/gridboard/internal/board"
	"github.com/hailam/gridboard/internal/storage"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"
)

// errPastCapacity rejects unchecked writes that would land outside storage.
var errPastCapacity = errors.New("square is past the board's capacity")

var (
	filesFlag = cli.UintFlag{
		Name:  "files",
		Usage: "number of files (columns); defaults to the stored preference",
	}
	ranksFlag = cli.UintFlag{
		Name:  "ranks",
		Usage: "number of ranks (rows); defaults to the stored preference",
	}
	uncheckedFlag = cli.BoolFlag{
		Name:  "unchecked",
		Usage: "skip range checks on get/set/reset",
	}
	seedFlag = cli.StringFlag{
		Name:  "seed",
		Usage: "initial bit pattern as a decimal or 0x-prefixed hex integer (up to 256 bits)",
	}
	fillFlag = cli.BoolFlag{
		Name:  "fill",
		Usage: "set every bit before applying --set and --clear",
	}
	setFlag = cli.StringSliceFlag{
		Name:  "set",
		Usage: "square to set, as e4 or file,rank (repeatable)",
	}
	clearFlag = cli.StringSliceFlag{
		Name:  "clear",
		Usage: "square to reset, as e4 or file,rank (repeatable)",
	}
)

var boardFlags = []cli.Flag{
	&filesFlag,
	&ranksFlag,
	&uncheckedFlag,
	&seedFlag,
	&fillFlag,
	&setFlag,
	&clearFlag,
}

// layoutFromFlags starts from the preferences and applies explicit flags.
func layoutFromFlags(c *cli.Context, prefs *storage.Preferences) (board.Layout, error) {
	l := prefs.Layout()
	if c.IsSet(filesFlag.Name) {
		l.Files = c.Uint(filesFlag.Name)
	}
	if c.IsSet(ranksFlag.Name) {
		l.Ranks = c.Uint(ranksFlag.Name)
	}
	if c.IsSet(uncheckedFlag.Name) {
		l.CheckRange = !c.Bool(uncheckedFlag.Name)
	}
	return l, l.Validate()
}

// parseSeed accepts decimal or 0x-prefixed hex.
func parseSeed(s string) (*uint256.Int, error) {
	if hex, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		// uint256 rejects leading zeros in hex input.
		hex = strings.TrimLeft(hex, "0")
		if hex == "" {
			hex = "0"
		}
		v, err := uint256.FromHex("0x" + hex)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", s, err)
		}
		return v, nil
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return v, nil
}

// buildBoard creates the board described by the command's flags.
func buildBoard(c *cli.Context, prefs *storage.Preferences) (*board.Bitboard, error) {
	l, err := layoutFromFlags(c, prefs)
	if err != nil {
		return nil, err
	}

	var bb *board.Bitboard
	if c.IsSet(seedFlag.Name) {
		seed, err := parseSeed(c.String(seedFlag.Name))
		if err != nil {
			return nil, err
		}
		bb = board.FromUint256(l, seed)
	} else {
		bb = board.New(l)
	}

	if c.Bool(fillFlag.Name) {
		bb.SetAll()
	}
	for _, s := range c.StringSlice(setFlag.Name) {
		if err := writeSquare(bb, s, true); err != nil {
			return nil, fmt.Errorf("set %s: %w", s, err)
		}
	}
	for _, s := range c.StringSlice(clearFlag.Name) {
		if err := writeSquare(bb, s, false); err != nil {
			return nil, fmt.Errorf("clear %s: %w", s, err)
		}
	}
	return bb, nil
}

// writeSquare parses s and writes v to it. Unchecked boards leave the
// capacity bound to the caller, so it is enforced here.
func writeSquare(bb *board.Bitboard, s string, v bool) error {
	sq, err := board.Parse(s)
	if err != nil {
		return err
	}
	if !bb.ChecksRange() {
		if i := board.Index(sq.File(), sq.Rank(), bb.Files()); i >= bb.Capacity() {
			return fmt.Errorf("%w: index %d, capacity %d", errPastCapacity, i, bb.Capacity())
		}
	}
	return bb.SetTo(sq.File(), sq.Rank(), v)
}
