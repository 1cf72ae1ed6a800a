// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prefgen generates random preference profiles for stablematch.
package prefgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/someonegg/stablematch"
)

var ErrUnknownKind = errors.New("prefgen: unknown generator kind")

// Generator returns n doctors D1..Dn and n hospitals H1..Hn with complete
// preference lists. All randomness comes from rng.
type Generator func(n int, rng *rand.Rand) (doctors, hospitals stablematch.Profile)

// Popularity returns the natural log of the weight of the i-th popularity
// slot, i in [0, n).
type Popularity func(i int) float64

const (
	KindUniform        = "uniform"
	KindWeighted       = "weighted"
	KindWeightedLinear = "weighted-linear"
)

func Kinds() []string {
	return []string{KindUniform, KindWeighted, KindWeightedLinear}
}

func Lookup(kind string) (Generator, error) {
	switch kind {
	case KindUniform:
		return Uniform, nil
	case KindWeighted:
		return Weighted(Exponential), nil
	case KindWeightedLinear:
		return Weighted(Linear), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

func IDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return ids
}
