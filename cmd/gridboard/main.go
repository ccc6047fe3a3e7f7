// Command gridboard builds, inspects and draws bitboards from the command line.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/gridboard <command> <flags>

var (
	dbFlag = cli.StringFlag{
		Name:    "db",
		Usage:   "preferences database directory (defaults to the platform data dir)",
		EnvVars: []string{"GRIDBOARD_DB"},
	}
	cpuProfileFlag = cli.StringFlag{
		Name:    "cpuprofile",
		Usage:   "write cpu profile to file, disabled if empty",
		EnvVars: []string{"CPUPROFILE"},
	}
)

var commands = []*cli.Command{
	&ShowCmd,
	&ProbeCmd,
	&SVGCmd,
	&PNGCmd,
	&PrefsCmd,
}

func newApp() *cli.App {
	var profile *os.File

	return &cli.App{
		Name:  "gridboard",
		Usage: "fixed-dimension bitboard toolbox",
		Flags: []cli.Flag{
			&dbFlag,
			&cpuProfileFlag,
		},
		Commands: commands,
		// squares may be given as "file,rank"
		DisableSliceFlagSeparator: true,
		Before: func(c *cli.Context) error {
			path := c.String(cpuProfileFlag.Name)
			if path == "" {
				return nil
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				f.Close()
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
			profile = f
			log.Printf("CPU profiling enabled, writing to %s", path)
			return nil
		},
		After: func(c *cli.Context) error {
			if profile == nil {
				return nil
			}
			pprof.StopCPUProfile()
			return profile.Close()
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
