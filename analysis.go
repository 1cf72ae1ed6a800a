// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import "fmt"

// BlockingPairs returns every doctor/hospital pair that prefer each other to
// their partners in matches. A stable matching has none.
func BlockingPairs(doctors, hospitals Profile, matches Matches) ([]Pair, error) {
	dRank, hRank, dPartner, hPartner, err := prepare(doctors, hospitals, matches)
	if err != nil {
		return nil, err
	}

	var pairs []Pair
	for d := range doctors {
		for h := range hospitals {
			if h == dPartner[d] {
				continue
			}
			if dRank[d][h] < dRank[d][dPartner[d]] && hRank[h][d] < hRank[h][hPartner[h]] {
				pairs = append(pairs, Pair{doctors[d].ID, hospitals[h].ID})
			}
		}
	}
	return pairs, nil
}

func IsStable(doctors, hospitals Profile, matches Matches) (bool, error) {
	pairs, err := BlockingPairs(doctors, hospitals, matches)
	if err != nil {
		return false, err
	}
	return len(pairs) == 0, nil
}

// PartnerRanks returns, for each agent, the zero-based position of its
// partner in its own preference list.
func PartnerRanks(doctors, hospitals Profile, matches Matches) (doctorRanks, hospitalRanks map[string]int, err error) {
	dRank, hRank, dPartner, hPartner, err := prepare(doctors, hospitals, matches)
	if err != nil {
		return nil, nil, err
	}

	doctorRanks = make(map[string]int, len(doctors))
	hospitalRanks = make(map[string]int, len(hospitals))
	for d := range doctors {
		doctorRanks[doctors[d].ID] = dRank[d][dPartner[d]]
	}
	for h := range hospitals {
		hospitalRanks[hospitals[h].ID] = hRank[h][hPartner[h]]
	}
	return doctorRanks, hospitalRanks, nil
}

// prepare validates the input, builds rank tables for both sides and
// resolves matches into partner indexes.
func prepare(doctors, hospitals Profile, matches Matches) (dRank, hRank [][]int, dPartner, hPartner []int, err error) {
	dIndex, hIndex, err := validate(doctors, hospitals)
	if err != nil {
		return
	}
	if len(matches) != len(doctors) {
		err = fmt.Errorf("%w: %d pairs for %d doctors", ErrNotPerfect, len(matches), len(doctors))
		return
	}

	dPartner = make([]int, len(doctors))
	hPartner = make([]int, len(hospitals))
	for h := range hPartner {
		hPartner[h] = none
	}
	for d := range doctors {
		hid, ok := matches[doctors[d].ID]
		if !ok {
			err = fmt.Errorf("%w: doctor %q unmatched", ErrNotPerfect, doctors[d].ID)
			return
		}
		h, ok := hIndex[hid]
		if !ok {
			err = fmt.Errorf("%w: doctor %q matched to unknown hospital %q", ErrNotPerfect, doctors[d].ID, hid)
			return
		}
		if hPartner[h] != none {
			err = fmt.Errorf("%w: hospital %q matched twice", ErrNotPerfect, hid)
			return
		}
		dPartner[d] = h
		hPartner[h] = d
	}

	return rankTable(doctors, hIndex), rankTable(hospitals, dIndex), dPartner, hPartner, nil
}
