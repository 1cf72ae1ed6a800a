// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import (
	"fmt"

	"github.com/eapache/queue"
)

const none = -1

type daMatcher struct {
	verbose bool
}

// DeferredAcceptance returns the doctor-proposing deferred acceptance
// matcher. Doctors propose in FIFO order of the unmatched queue, so the
// proposal count is reproducible for a given input.
func DeferredAcceptance(verbose bool) Matcher {
	return daMatcher{verbose}
}

func (m daMatcher) Match(doctors, hospitals Profile) (matches Matches, proposals int, err error) {
	dIndex, hIndex, err := validate(doctors, hospitals)
	if err != nil {
		return nil, 0, err
	}
	return m.run(doctors, hospitals, dIndex, hIndex)
}

// rankTable returns ranks[i][j], the position of opposite agent j in the
// list of p[i], or none if p[i] does not list it.
func rankTable(p Profile, opposite map[string]int) [][]int {
	ranks := make([][]int, len(p))
	for i := range p {
		row := make([]int, len(opposite))
		for j := range row {
			row[j] = none
		}
		for r, id := range p[i].Prefs {
			if j, ok := opposite[id]; ok {
				row[j] = r
			}
		}
		ranks[i] = row
	}
	return ranks
}

// run assumes validated input. Anything that goes wrong in here is an
// InvariantError.
func (m daMatcher) run(doctors, hospitals Profile, dIndex, hIndex map[string]int) (Matches, int, error) {
	var (
		nd = len(doctors)
		nh = len(hospitals)

		ranks         = rankTable(hospitals, dIndex)
		doctorMatch   = make([]int, nd)
		hospitalMatch = make([]int, nh)
		cursor        = make([]int, nd)
		unmatched     = queue.New()
		proposals     = 0
	)

	for h := 0; h < nh; h++ {
		hospitalMatch[h] = none
	}
	for d := 0; d < nd; d++ {
		doctorMatch[d] = none
		unmatched.Add(d)
	}

	for unmatched.Length() > 0 {
		d := unmatched.Remove().(int)
		doctor := &doctors[d]

		if cursor[d] >= len(doctor.Prefs) {
			return nil, proposals, &InvariantError{
				Doctor: doctor.ID,
				Detail: fmt.Sprintf("exhausted all %d preferences", len(doctor.Prefs)),
			}
		}
		hid := doctor.Prefs[cursor[d]]
		cursor[d]++
		proposals++

		h, ok := hIndex[hid]
		if !ok {
			return nil, proposals, &InvariantError{
				Doctor: doctor.ID,
				Detail: fmt.Sprintf("proposed to unknown hospital %q", hid),
			}
		}

		c := hospitalMatch[h]
		if c == none {
			hospitalMatch[h] = d
			doctorMatch[d] = h
			if m.verbose {
				fmt.Println(doctor.ID, "->", hid, "accepted")
			}
			continue
		}

		rd, rc := ranks[h][d], ranks[h][c]
		if rd == none || rc == none {
			return nil, proposals, &InvariantError{
				Doctor: doctor.ID,
				Detail: fmt.Sprintf("hospital %q cannot rank the proposal", hid),
			}
		}

		if rd < rc {
			hospitalMatch[h] = d
			doctorMatch[d] = h
			doctorMatch[c] = none
			unmatched.Add(c)
			if m.verbose {
				fmt.Println(doctor.ID, "->", hid, "accepted, displaced:", doctors[c].ID)
			}
		} else {
			unmatched.Add(d)
			if m.verbose {
				fmt.Println(doctor.ID, "->", hid, "rejected, held:", doctors[c].ID)
			}
		}
	}

	matches := make(Matches, nd)
	for d, h := range doctorMatch {
		if h == none {
			return nil, proposals, &InvariantError{
				Doctor: doctors[d].ID,
				Detail: "left the queue without a hospital",
			}
		}
		matches[doctors[d].ID] = hospitals[h].ID
	}

	if m.verbose {
		fmt.Println("doctors:", nd, "proposals:", proposals)
	}

	return matches, proposals, nil
}
