// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/someonegg/stablematch/prefgen"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "stable-match",
		Usage: "Utility for doctor-proposing stable matching",
		Commands: []*cli.Command{
			matchCmd,
			genCmd,
			experimentCmd,
		},
	}
}

var kindUsage = "specify the generator (" + strings.Join(prefgen.Kinds(), ", ") + ")"

var matchCmd = &cli.Command{
	Name:    "match",
	Usage:   "Match the doctors and hospitals of an instance file",
	Aliases: []string{"m"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Required: true,
			Usage:    "specify the input instance (.json, .yaml)",
		},
		&cli.StringFlag{
			Name:     "output",
			Required: true,
			Usage:    "specify the output matching (.json, .yaml)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "print every proposal",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doMatch(ctx.Context, ctx.String("input"), ctx.String("output"), ctx.Bool("verbose"))
	},
}

var genCmd = &cli.Command{
	Name:    "gen",
	Usage:   "Generate a random instance file",
	Aliases: []string{"g"},
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:     "n",
			Required: true,
			Usage:    "specify the number of doctors (and hospitals)",
		},
		&cli.StringFlag{
			Name:  "kind",
			Value: prefgen.KindUniform,
			Usage: kindUsage,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "specify the random seed (0 uses the default seed)",
		},
		&cli.StringFlag{
			Name:     "output",
			Required: true,
			Usage:    "specify the output instance (.json, .yaml)",
		},
	},
	Action: func(ctx *cli.Context) error {
		var (
			n      = ctx.Int("n")
			kind   = ctx.String("kind")
			seed   = ctx.Int64("seed")
			output = ctx.String("output")
		)
		if n <= 0 {
			return errors.New("invalid n")
		}
		gen, err := prefgen.Lookup(kind)
		if err != nil {
			return err
		}
		return doGen(ctx.Context, gen, n, seed, output)
	},
}

var experimentCmd = &cli.Command{
	Name:    "experiment",
	Usage:   "Run the proposal and partner rank experiments",
	Aliases: []string{"e"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "kind",
			Value: prefgen.KindUniform,
			Usage: kindUsage,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "specify the random seed (0 uses the default seed)",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "specify the number of concurrent trials (0 uses all CPUs)",
		},
		&cli.IntSliceFlag{
			Name:  "ns",
			Usage: "specify the sizes of the sweeps (default 100..1000)",
		},
		&cli.IntFlag{
			Name:  "sweep-trials",
			Usage: "specify the trials per size of the sweeps",
		},
		&cli.IntFlag{
			Name:  "n",
			Usage: "specify the size of the distributions",
		},
		&cli.IntFlag{
			Name:  "trials",
			Usage: "specify the trials of the distributions",
		},
		&cli.IntFlag{
			Name:  "bins",
			Usage: "specify the bins of the proposal distribution",
		},
		&cli.StringFlag{
			Name:     "output",
			Required: true,
			Usage:    "specify the output report (.json, .yaml)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "print progress",
		},
	},
	Action: func(ctx *cli.Context) error {
		kind := ctx.String("kind")
		gen, err := prefgen.Lookup(kind)
		if err != nil {
			return err
		}
		for _, n := range ctx.IntSlice("ns") {
			if n <= 0 {
				return errors.New("invalid ns")
			}
		}
		for _, name := range []string{"workers", "sweep-trials", "n", "trials", "bins"} {
			if ctx.Int(name) < 0 {
				return fmt.Errorf("invalid %s", name)
			}
		}
		return doExperiment(ctx.Context, kind, gen, experimentRunner(ctx), ctx.String("output"))
	},
}
