package main

import (
	"fmt"

	"github.com/hailam/gridboard/internal/storage"
	"github.com/urfave/cli/v2"
)

var (
	prefFilesFlag      = cli.UintFlag{Name: "files", Usage: "default number of files"}
	prefRanksFlag      = cli.UintFlag{Name: "ranks", Usage: "default number of ranks"}
	prefCheckRangeFlag = cli.BoolFlag{Name: "check-range", Usage: "range-check get/set/reset by default"}
	prefEmptyCharFlag  = cli.StringFlag{Name: "empty-char", Usage: "character for clear bits"}
	prefSetCharFlag    = cli.StringFlag{Name: "set-char", Usage: "character for set bits"}
	prefCellFlag       = cli.IntFlag{Name: "cell", Usage: "default picture cell size in pixels"}
)

var PrefsCmd = cli.Command{
	Name:  "prefs",
	Usage: "show or change stored defaults",
	Subcommands: []*cli.Command{
		{
			Name:   "show",
			Usage:  "print the stored preferences",
			Action: doPrefsShow,
		},
		{
			Name:   "set",
			Usage:  "change stored preferences",
			Action: doPrefsSet,
			Flags: []cli.Flag{
				&prefFilesFlag,
				&prefRanksFlag,
				&prefCheckRangeFlag,
				&prefEmptyCharFlag,
				&prefSetCharFlag,
				&prefCellFlag,
			},
		},
		{
			Name:   "reset",
			Usage:  "forget stored preferences",
			Action: doPrefsReset,
		},
	},
}

func withStore(c *cli.Context, fn func(preferenceStore) error) error {
	store, err := openStore(c.String(dbFlag.Name))
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func printPreferences(c *cli.Context, prefs *storage.Preferences) {
	w := c.App.Writer
	fmt.Fprintf(w, "layout:     %s\n", prefs.Layout())
	fmt.Fprintf(w, "empty-char: %s\n", prefs.EmptyChar)
	fmt.Fprintf(w, "set-char:   %s\n", prefs.SetChar)
	fmt.Fprintf(w, "cell:       %d\n", prefs.CellSize)
}

func doPrefsShow(c *cli.Context) error {
	return withStore(c, func(store preferenceStore) error {
		prefs, err := store.LoadPreferences()
		if err != nil {
			return err
		}
		printPreferences(c, prefs)
		return nil
	})
}

func doPrefsSet(c *cli.Context) error {
	return withStore(c, func(store preferenceStore) error {
		prefs, err := store.LoadPreferences()
		if err != nil {
			return err
		}

		if c.IsSet(prefFilesFlag.Name) {
			prefs.Files = c.Uint(prefFilesFlag.Name)
		}
		if c.IsSet(prefRanksFlag.Name) {
			prefs.Ranks = c.Uint(prefRanksFlag.Name)
		}
		if c.IsSet(prefCheckRangeFlag.Name) {
			prefs.CheckRange = c.Bool(prefCheckRangeFlag.Name)
		}
		if c.IsSet(prefEmptyCharFlag.Name) {
			prefs.EmptyChar = c.String(prefEmptyCharFlag.Name)
		}
		if c.IsSet(prefSetCharFlag.Name) {
			prefs.SetChar = c.String(prefSetCharFlag.Name)
		}
		if c.IsSet(prefCellFlag.Name) {
			prefs.CellSize = c.Int(prefCellFlag.Name)
		}

		if err := store.SavePreferences(prefs); err != nil {
			return err
		}
		printPreferences(c, prefs)
		return nil
	})
}

func doPrefsReset(c *cli.Context) error {
	return withStore(c, func(store preferenceStore) error {
		return store.ResetPreferences()
	})
}
