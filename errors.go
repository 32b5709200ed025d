package gf2cyclic

import (
	"github.com/ericlevine/gf2cyclic/cyclic"
	"github.com/ericlevine/gf2cyclic/gf2"
)

var (
	// ErrDegenerateDivisor is returned when the generator polynomial is empty,
	// zero, constant or lacks a constant term.
	ErrDegenerateDivisor = gf2.ErrDegenerateDivisor

	// ErrInfeasibleParameters is returned when no code length fits the
	// message length, or the generator has too few check bits for it.
	ErrInfeasibleParameters = cyclic.ErrInfeasibleParameters

	// ErrUncorrectable is returned when a received word's syndrome matches no
	// single-bit error.
	ErrUncorrectable = cyclic.ErrUncorrectable
)
