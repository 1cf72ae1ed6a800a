// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefgen

import (
	"math/rand"

	"github.com/someonegg/stablematch"
)

// Uniform gives every agent an independent, uniformly random list.
func Uniform(n int, rng *rand.Rand) (doctors, hospitals stablematch.Profile) {
	ds, hs := IDs("D", n), IDs("H", n)
	return uniformProfile(ds, hs, rng), uniformProfile(hs, ds, rng)
}

func uniformProfile(ids, opposite []string, rng *rand.Rand) stablematch.Profile {
	p := make(stablematch.Profile, len(ids))
	for i, id := range ids {
		prefs := make([]string, len(opposite))
		for j, k := range rng.Perm(len(opposite)) {
			prefs[j] = opposite[k]
		}
		p[i] = stablematch.Preference{ID: id, Prefs: prefs}
	}
	return p
}
