// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import "fmt"

// Validate checks that both profiles describe complete strict preferences
// over equally sized sides.
func Validate(doctors, hospitals Profile) error {
	_, _, err := validate(doctors, hospitals)
	return err
}

func validate(doctors, hospitals Profile) (dIndex, hIndex map[string]int, err error) {
	if len(doctors) != len(hospitals) {
		return nil, nil, &ProfileError{
			Side:   Doctors,
			Defect: fmt.Sprintf("%d doctors but %d hospitals", len(doctors), len(hospitals)),
		}
	}

	if dIndex, err = indexOf(Doctors, doctors); err != nil {
		return nil, nil, err
	}
	if hIndex, err = indexOf(Hospitals, hospitals); err != nil {
		return nil, nil, err
	}

	if err = checkLists(Doctors, doctors, hIndex); err != nil {
		return nil, nil, err
	}
	if err = checkLists(Hospitals, hospitals, dIndex); err != nil {
		return nil, nil, err
	}

	return dIndex, hIndex, nil
}

func indexOf(side Side, p Profile) (map[string]int, error) {
	index := make(map[string]int, len(p))
	for i := range p {
		id := p[i].ID
		if id == "" {
			return nil, &ProfileError{Side: side, Defect: fmt.Sprintf("empty agent ID at position %d", i)}
		}
		if _, ok := index[id]; ok {
			return nil, &ProfileError{Side: side, Agent: id, Defect: "duplicate agent"}
		}
		index[id] = i
	}
	return index, nil
}

// checkLists verifies every list in p is a permutation of the opposite side.
// Length n plus no unknown and no repeated entries rules out omissions.
func checkLists(side Side, p Profile, opposite map[string]int) error {
	n := len(opposite)
	seen := make([]int, n) // stamp of the last list that named the agent

	for i := range p {
		prefs := p[i].Prefs
		if len(prefs) != n {
			return &ProfileError{
				Side:   side,
				Agent:  p[i].ID,
				Defect: fmt.Sprintf("preference list has %d entries, want %d", len(prefs), n),
			}
		}
		for _, other := range prefs {
			j, ok := opposite[other]
			if !ok {
				return &ProfileError{
					Side:   side,
					Agent:  p[i].ID,
					Defect: fmt.Sprintf("unknown %v %q", side.opposite(), other),
				}
			}
			if seen[j] == i+1 {
				return &ProfileError{
					Side:   side,
					Agent:  p[i].ID,
					Defect: fmt.Sprintf("%v %q listed twice", side.opposite(), other),
				}
			}
			seen[j] = i + 1
		}
	}

	return nil
}
