// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch_test

import (
	"fmt"

	"github.com/someonegg/stablematch"
)

func ExampleStableMatch() {
	doctors := stablematch.Profile{
		{ID: "D1", Prefs: []string{"H1", "H2"}},
		{ID: "D2", Prefs: []string{"H1", "H2"}},
	}
	hospitals := stablematch.Profile{
		{ID: "H1", Prefs: []string{"D2", "D1"}},
		{ID: "H2", Prefs: []string{"D1", "D2"}},
	}

	matches, proposals, err := stablematch.StableMatch(doctors, hospitals)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, d := range doctors.IDs() {
		fmt.Println(d, "->", matches[d])
	}
	fmt.Println("proposals:", proposals)
	// Output:
	// D1 -> H2
	// D2 -> H1
	// proposals: 3
}

func ExampleValidate() {
	doctors := stablematch.Profile{{ID: "D1", Prefs: []string{"H1"}}}
	hospitals := stablematch.Profile{{ID: "H1", Prefs: []string{"D9"}}}

	fmt.Println(stablematch.Validate(doctors, hospitals))
	// Output:
	// stablematch: malformed profile: hospital "H1": unknown doctor "D9"
}
