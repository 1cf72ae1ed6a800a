// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefgen

import "math/rand"

// DefaultSeed replaces a zero seed so that "no seed" is still reproducible.
const DefaultSeed int64 = 1

// NewRNG returns a deterministic source. *rand.Rand is not safe for
// concurrent use; give each goroutine its own.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveRNG returns an independent stream for (seed, stream), e.g. one per
// trial of an experiment.
func DeriveRNG(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// deriveSeed is a SplitMix64 finalizer over the parent seed and stream id.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
