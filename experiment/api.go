// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package experiment runs stablematch repeatedly over generated profiles
// and aggregates proposal counts and partner ranks.
package experiment

const (
	DefaultSweepTrials = 5
	DefaultN           = 100
	DefaultTrials      = 1000
	DefaultBins        = 25
)

// DefaultNs is 100, 200, ..., 1000.
func DefaultNs() []int {
	ns := make([]int, 10)
	for i := range ns {
		ns[i] = (i + 1) * 100
	}
	return ns
}

// Runner holds the experiment parameters. Zero values select the defaults.
type Runner struct {
	// Sizes swept by AverageProposals and AveragePartnerRanks.
	Ns          []int `json:"ns" yaml:"ns"`
	SweepTrials int   `json:"sweep_trials" yaml:"sweep_trials"`

	// Size and repetitions of ProposalDistribution and RankDistribution.
	N      int `json:"n" yaml:"n"`
	Trials int `json:"trials" yaml:"trials"`
	Bins   int `json:"bins" yaml:"bins"`

	Seed    int64 `json:"seed" yaml:"seed"`
	Workers int   `json:"workers" yaml:"workers"`

	Verbose bool `json:"-" yaml:"-"`
}

type Point struct {
	N     int     `json:"n" yaml:"n"`
	Value float64 `json:"value" yaml:"value"`
}

type RankPoint struct {
	N        int     `json:"n" yaml:"n"`
	Doctor   float64 `json:"doctor" yaml:"doctor"`
	Hospital float64 `json:"hospital" yaml:"hospital"`
}

// Histogram has len(Edges) == len(Percent)+1.
type Histogram struct {
	Edges   []float64 `json:"edges" yaml:"edges"`
	Percent []float64 `json:"percent" yaml:"percent"`
}

// RankHistogram holds, at index r-1, how many agents per trial got a
// partner they ranked r-th.
type RankHistogram struct {
	N        int       `json:"n" yaml:"n"`
	Doctor   []float64 `json:"doctor" yaml:"doctor"`
	Hospital []float64 `json:"hospital" yaml:"hospital"`
}

type Report struct {
	Kind                 string        `json:"kind" yaml:"kind"`
	Runner               Runner        `json:"runner" yaml:"runner"`
	AverageProposals     []Point       `json:"average_proposals" yaml:"average_proposals"`
	ProposalDistribution Histogram     `json:"proposal_distribution" yaml:"proposal_distribution"`
	AveragePartnerRanks  []RankPoint   `json:"average_partner_ranks" yaml:"average_partner_ranks"`
	RankDistribution     RankHistogram `json:"rank_distribution" yaml:"rank_distribution"`
}
