// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedProfile = errors.New("stablematch: malformed profile")
	ErrInvariant        = errors.New("stablematch: internal invariant violated")
	ErrNotPerfect       = errors.New("stablematch: not a perfect matching")
)

type Side int

const (
	Doctors Side = iota
	Hospitals
)

func (s Side) String() string {
	switch s {
	case Doctors:
		return "doctor"
	case Hospitals:
		return "hospital"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

func (s Side) opposite() Side {
	if s == Doctors {
		return Hospitals
	}
	return Doctors
}

// ProfileError reports bad input. Agent is empty when the defect concerns
// the profile as a whole.
type ProfileError struct {
	Side   Side
	Agent  string
	Defect string
}

func (e *ProfileError) Error() string {
	if e.Agent == "" {
		return fmt.Sprintf("%v: %v profile: %s", ErrMalformedProfile, e.Side, e.Defect)
	}
	return fmt.Sprintf("%v: %v %q: %s", ErrMalformedProfile, e.Side, e.Agent, e.Defect)
}

func (e *ProfileError) Unwrap() error { return ErrMalformedProfile }

// InvariantError means the algorithm itself went wrong; it is never caused
// by input that passed validation.
type InvariantError struct {
	Doctor string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: doctor %q: %s", ErrInvariant, e.Doctor, e.Detail)
}

func (e *InvariantError) Unwrap() error { return ErrInvariant }
