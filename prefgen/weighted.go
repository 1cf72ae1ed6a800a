// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefgen

import (
	"math"
	"math/rand"
	"sort"

	"github.com/someonegg/stablematch"
)

// Exponential weighs slot i as 2^i.
func Exponential(i int) float64 {
	return float64(i) * math.Ln2
}

// Linear weighs slot i as i+1.
func Linear(i int) float64 {
	return math.Log(float64(i + 1))
}

// Weighted shuffles the popularity slots over each side, then draws every
// list by sampling the opposite side without replacement with probability
// proportional to popularity.
func Weighted(popularity Popularity) Generator {
	return func(n int, rng *rand.Rand) (doctors, hospitals stablematch.Profile) {
		ds, hs := IDs("D", n), IDs("H", n)
		dw, hw := popularityOf(n, popularity, rng), popularityOf(n, popularity, rng)
		return weightedProfile(ds, hs, hw, rng), weightedProfile(hs, ds, dw, rng)
	}
}

// popularityOf returns the log-weight of every agent on one side.
func popularityOf(n int, popularity Popularity, rng *rand.Rand) []float64 {
	w := make([]float64, n)
	for i, slot := range rng.Perm(n) {
		w[i] = popularity(slot)
	}
	return w
}

type sampleKey struct {
	agent int
	key   float64
}

// weightedProfile orders each list by Efraimidis-Spirakis keys
// log(E) - log(w), E ~ Exp(1); ascending keys are a weighted sample without
// replacement. Working in log space keeps 2^n weights finite.
func weightedProfile(ids, opposite []string, logWeights []float64, rng *rand.Rand) stablematch.Profile {
	p := make(stablematch.Profile, len(ids))
	keys := make([]sampleKey, len(opposite))

	for i, id := range ids {
		for j := range keys {
			keys[j] = sampleKey{j, math.Log(rng.ExpFloat64()) - logWeights[j]}
		}
		sort.SliceStable(keys, func(a, b int) bool {
			return keys[a].key < keys[b].key
		})

		prefs := make([]string, len(opposite))
		for j, k := range keys {
			prefs[j] = opposite[k.agent]
		}
		p[i] = stablematch.Preference{ID: id, Prefs: prefs}
	}
	return p
}
