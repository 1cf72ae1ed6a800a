// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package experiment

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/someonegg/stablematch"
	"github.com/someonegg/stablematch/prefgen"
)

func (r *Runner) init() {
	if len(r.Ns) == 0 {
		r.Ns = DefaultNs()
	}
	if r.SweepTrials <= 0 {
		r.SweepTrials = DefaultSweepTrials
	}
	if r.N <= 0 {
		r.N = DefaultN
	}
	if r.Trials <= 0 {
		r.Trials = DefaultTrials
	}
	if r.Bins <= 0 {
		r.Bins = DefaultBins
	}
	if r.Workers <= 0 {
		r.Workers = runtime.NumCPU()
	}
}

type outcome struct {
	proposals int
	// zero-based partner ranks, in profile order
	doctorRanks   []int
	hospitalRanks []int
}

// runTrials matches trials independent profiles of size n. Trial i draws
// from its own stream derived from (Seed, n, i), so the outcomes do not
// depend on Workers.
func (r *Runner) runTrials(ctx context.Context, gen prefgen.Generator, n, trials int) ([]outcome, error) {
	outcomes := make([]outcome, trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Workers)

	for i := 0; i < trials; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rng := prefgen.DeriveRNG(r.Seed, uint64(n)<<32|uint64(i))
			doctors, hospitals := gen(n, rng)

			matches, proposals, err := stablematch.StableMatch(doctors, hospitals)
			if err != nil {
				return fmt.Errorf("n=%d trial=%d: %w", n, i, err)
			}
			dr, hr, err := stablematch.PartnerRanks(doctors, hospitals, matches)
			if err != nil {
				return fmt.Errorf("n=%d trial=%d: %w", n, i, err)
			}

			o := outcome{
				proposals:     proposals,
				doctorRanks:   make([]int, n),
				hospitalRanks: make([]int, n),
			}
			for j := range doctors {
				o.doctorRanks[j] = dr[doctors[j].ID]
			}
			for j := range hospitals {
				o.hospitalRanks[j] = hr[hospitals[j].ID]
			}
			outcomes[i] = o
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// AverageProposals reports the mean proposal count for every n in Ns.
func (r *Runner) AverageProposals(ctx context.Context, gen prefgen.Generator) ([]Point, error) {
	r.init()

	points := make([]Point, 0, len(r.Ns))
	for _, n := range r.Ns {
		outcomes, err := r.runTrials(ctx, gen, n, r.SweepTrials)
		if err != nil {
			return nil, err
		}

		total := 0
		for _, o := range outcomes {
			total += o.proposals
		}
		p := Point{N: n, Value: float64(total) / float64(len(outcomes))}
		points = append(points, p)

		if r.Verbose {
			fmt.Println("n:", n, "average proposals:", p.Value)
		}
	}
	return points, nil
}

// ProposalDistribution histograms the proposal counts of Trials runs of
// size N.
func (r *Runner) ProposalDistribution(ctx context.Context, gen prefgen.Generator) (Histogram, error) {
	r.init()

	outcomes, err := r.runTrials(ctx, gen, r.N, r.Trials)
	if err != nil {
		return Histogram{}, err
	}

	values := make([]float64, len(outcomes))
	for i, o := range outcomes {
		values[i] = float64(o.proposals)
	}
	h := histogram(values, r.Bins)

	if r.Verbose {
		fmt.Println("n:", r.N, "trials:", r.Trials, "proposal range:", h.Edges[0], "-", h.Edges[len(h.Edges)-1])
	}
	return h, nil
}

// AveragePartnerRanks reports the mean one-based rank each side assigns to
// its partner for every n in Ns.
func (r *Runner) AveragePartnerRanks(ctx context.Context, gen prefgen.Generator) ([]RankPoint, error) {
	r.init()

	points := make([]RankPoint, 0, len(r.Ns))
	for _, n := range r.Ns {
		outcomes, err := r.runTrials(ctx, gen, n, r.SweepTrials)
		if err != nil {
			return nil, err
		}

		dSum, hSum := 0, 0
		for _, o := range outcomes {
			for j := 0; j < n; j++ {
				dSum += o.doctorRanks[j] + 1
				hSum += o.hospitalRanks[j] + 1
			}
		}
		agents := float64(n * len(outcomes))
		p := RankPoint{N: n, Doctor: float64(dSum) / agents, Hospital: float64(hSum) / agents}
		points = append(points, p)

		if r.Verbose {
			fmt.Println("n:", n, "doctor rank:", p.Doctor, "hospital rank:", p.Hospital)
		}
	}
	return points, nil
}

// RankDistribution counts partner ranks over Trials runs of size N,
// averaged per trial.
func (r *Runner) RankDistribution(ctx context.Context, gen prefgen.Generator) (RankHistogram, error) {
	r.init()

	outcomes, err := r.runTrials(ctx, gen, r.N, r.Trials)
	if err != nil {
		return RankHistogram{}, err
	}

	dFreq, hFreq := make([]float64, r.N), make([]float64, r.N)
	for _, o := range outcomes {
		for j := 0; j < r.N; j++ {
			dFreq[o.doctorRanks[j]]++
			hFreq[o.hospitalRanks[j]]++
		}
	}
	for i := 0; i < r.N; i++ {
		dFreq[i] /= float64(len(outcomes))
		hFreq[i] /= float64(len(outcomes))
	}

	if r.Verbose {
		fmt.Println("n:", r.N, "trials:", r.Trials, "doctors at first choice:", dFreq[0], "hospitals at first choice:", hFreq[0])
	}
	return RankHistogram{N: r.N, Doctor: dFreq, Hospital: hFreq}, nil
}

// All runs the four experiments in turn.
func (r *Runner) All(ctx context.Context, kind string, gen prefgen.Generator) (*Report, error) {
	var (
		rep = &Report{Kind: kind}
		err error
	)

	if rep.AverageProposals, err = r.AverageProposals(ctx, gen); err != nil {
		return nil, fmt.Errorf("average proposals: %w", err)
	}
	if rep.ProposalDistribution, err = r.ProposalDistribution(ctx, gen); err != nil {
		return nil, fmt.Errorf("proposal distribution: %w", err)
	}
	if rep.AveragePartnerRanks, err = r.AveragePartnerRanks(ctx, gen); err != nil {
		return nil, fmt.Errorf("average partner ranks: %w", err)
	}
	if rep.RankDistribution, err = r.RankDistribution(ctx, gen); err != nil {
		return nil, fmt.Errorf("rank distribution: %w", err)
	}

	rep.Runner = *r
	return rep, nil
}

// histogram splits [min, max] into bins equal-width buckets, the last one
// closed, and returns each bucket's share in percent. A degenerate range is
// widened to [v-0.5, v+0.5].
func histogram(values []float64, bins int) Histogram {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if len(values) == 0 {
		lo, hi = 0, 1
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	h := Histogram{
		Edges:   make([]float64, bins+1),
		Percent: make([]float64, bins),
	}
	width := (hi - lo) / float64(bins)
	for i := range h.Edges {
		h.Edges[i] = lo + float64(i)*width
	}
	h.Edges[bins] = hi

	for _, v := range values {
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		// the quotient may round across an edge; the edges decide
		if v < h.Edges[i] && i > 0 {
			i--
		} else if i+1 < bins && v >= h.Edges[i+1] {
			i++
		}
		h.Percent[i]++
	}
	if len(values) > 0 {
		for i := range h.Percent {
			h.Percent[i] = h.Percent[i] / float64(len(values)) * 100
		}
	}
	return h
}
