// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/someonegg/stablematch/prefgen"
)

func doGen(ctx context.Context, gen prefgen.Generator, n int, seed int64, outputFile string) error {
	doctors, hospitals := gen(n, prefgen.NewRNG(seed))

	if err := writeFile(outputFile, Instance{Doctors: doctors, Hospitals: hospitals}); err != nil {
		return fmt.Errorf("write instance file failed: %w", err)
	}

	fmt.Printf("doctors: %v, hospitals: %v\n", len(doctors), len(hospitals))
	return nil
}
