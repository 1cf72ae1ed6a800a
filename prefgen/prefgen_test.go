// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefgen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/someonegg/stablematch"
)

func TestGenerators_Valid(t *testing.T) {
	for _, kind := range Kinds() {
		gen, err := Lookup(kind)
		require.NoError(t, err)

		t.Run(kind, func(t *testing.T) {
			for _, n := range []int{1, 2, 7, 64} {
				doctors, hospitals := gen(n, NewRNG(int64(n)))
				require.Len(t, doctors, n)
				require.Len(t, hospitals, n)
				require.Equal(t, IDs("D", n), doctors.IDs())
				require.Equal(t, IDs("H", n), hospitals.IDs())
				require.NoError(t, stablematch.Validate(doctors, hospitals))
			}
		})
	}
}

func TestGenerators_Reproducible(t *testing.T) {
	for _, kind := range Kinds() {
		gen, _ := Lookup(kind)

		d1, h1 := gen(20, NewRNG(99))
		d2, h2 := gen(20, NewRNG(99))
		require.Equal(t, d1, d2, kind)
		require.Equal(t, h1, h2, kind)

		d3, _ := gen(20, NewRNG(100))
		require.NotEqual(t, d1, d3, kind)
	}
}

func TestWeighted_LargeN(t *testing.T) {
	// 2^1100 overflows float64; log-weights must not.
	doctors, hospitals := Weighted(Exponential)(1100, NewRNG(5))
	require.NoError(t, stablematch.Validate(doctors, hospitals))
}

func TestWeightedProfile_Bias(t *testing.T) {
	ids := IDs("D", 200)
	opposite := IDs("H", 3)
	// H3 is e^40 times as popular as the others.
	p := weightedProfile(ids, opposite, []float64{0, 0, 40}, NewRNG(1))
	for _, pref := range p {
		require.Equal(t, "H3", pref.Prefs[0])
	}

	// Equal weights: every hospital shows up first some of the time.
	p = weightedProfile(ids, opposite, []float64{0, 0, 0}, NewRNG(1))
	first := make(map[string]int)
	for _, pref := range p {
		first[pref.Prefs[0]]++
	}
	require.Len(t, first, 3)
}

func TestPopularity(t *testing.T) {
	require.InDelta(t, math.Log(8), Exponential(3), 1e-12)
	require.InDelta(t, math.Log(4), Linear(3), 1e-12)
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("zipf")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestRNG(t *testing.T) {
	require.Equal(t, NewRNG(0).Int63(), NewRNG(DefaultSeed).Int63())
	require.Equal(t, DeriveRNG(3, 1).Int63(), DeriveRNG(3, 1).Int63())
	require.NotEqual(t, DeriveRNG(3, 1).Int63(), DeriveRNG(3, 2).Int63())
}
