// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stablematch provides the doctor-proposing deferred acceptance
// (Gale-Shapley) algorithm for one-to-one stable matching.
package stablematch

type Matcher interface {
	Match(doctors, hospitals Profile) (matches Matches, proposals int, err error)
}

// Preference lists the opposite side's agents, most preferred first.
type Preference struct {
	ID    string   `json:"id" yaml:"id"`
	Prefs []string `json:"prefs" yaml:"prefs"`
}

// Profile keeps the agents in insertion order, which is also the order
// doctors enter the unmatched queue.
type Profile []Preference

func (p Profile) IDs() []string {
	ids := make([]string, len(p))
	for i := range p {
		ids[i] = p[i].ID
	}
	return ids
}

type Matches map[string]string // doctorID -> hospitalID

type Pair struct {
	Doctor   string `json:"doctor"`
	Hospital string `json:"hospital"`
}

// StableMatch runs the doctor-proposing deferred acceptance algorithm and
// returns the doctor-optimal stable matching with the number of proposals.
func StableMatch(doctors, hospitals Profile) (Matches, int, error) {
	return DeferredAcceptance(false).Match(doctors, hospitals)
}
