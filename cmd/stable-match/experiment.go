// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/someonegg/stablematch/experiment"
	"github.com/someonegg/stablematch/prefgen"
)

// experimentRunner leaves unset flags at zero so the runner applies its
// defaults.
func experimentRunner(ctx *cli.Context) *experiment.Runner {
	return &experiment.Runner{
		Ns:          ctx.IntSlice("ns"),
		SweepTrials: ctx.Int("sweep-trials"),
		N:           ctx.Int("n"),
		Trials:      ctx.Int("trials"),
		Bins:        ctx.Int("bins"),
		Seed:        ctx.Int64("seed"),
		Workers:     ctx.Int("workers"),
		Verbose:     ctx.Bool("verbose"),
	}
}

func doExperiment(ctx context.Context, kind string, gen prefgen.Generator,
	runner *experiment.Runner, outputFile string) error {

	report, err := runner.All(ctx, kind, gen)
	if err != nil {
		return fmt.Errorf("run experiments failed: %w", err)
	}

	if err := writeFile(outputFile, report); err != nil {
		return fmt.Errorf("write report file failed: %w", err)
	}

	fmt.Printf("kind: %v, sizes: %v, trials: %v\n", kind, len(report.AverageProposals), report.Runner.Trials)
	return nil
}
