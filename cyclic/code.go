// Package cyclic implements single-error-correcting binary cyclic codes: a
// systematic encoder driven by a fixed generator polynomial and a
// table-lookup corrector keyed by syndrome.
package cyclic

import (
	"errors"
	"fmt"

	"github.com/ericlevine/gf2cyclic/gf2"
)

// MaxCheckBits is the largest generator degree supported. Syndromes are
// keyed as fixed-width integers.
const MaxCheckBits = 64

// maxCodeLength bounds the code-parameter search.
const maxCodeLength = 1 << 20

var (
	// ErrInfeasibleParameters is returned when no code length satisfies the
	// single-error Hamming bound for the message length, or when the
	// generator supplies fewer check bits than the bound requires.
	ErrInfeasibleParameters = errors.New("cyclic: infeasible code parameters")

	// ErrInvalidMessage is returned when a message does not have exactly k bits.
	ErrInvalidMessage = errors.New("cyclic: invalid message length")

	// ErrLengthMismatch is returned when a codeword does not have exactly n bits.
	ErrLengthMismatch = errors.New("cyclic: codeword length mismatch")
)

// Parameters returns the smallest code length n such that
// 2^k <= 2^n / (1+n), and the number of check bits p = n - k.
func Parameters(k int) (n, p int, err error) {
	if k < 0 {
		return 0, 0, fmt.Errorf("cyclic: negative message length %d: %w", k, ErrInfeasibleParameters)
	}
	for n = 1; n <= maxCodeLength; n++ {
		if satisfiesBound(n, k) {
			return n, n - k, nil
		}
	}
	return 0, 0, fmt.Errorf("cyclic: no code length up to %d for k=%d: %w", maxCodeLength, k, ErrInfeasibleParameters)
}

// satisfiesBound reports whether 1+n <= 2^(n-k).
func satisfiesBound(n, k int) bool {
	if n < k {
		return false
	}
	if n-k >= 63 {
		return true
	}
	return uint64(n)+1 <= uint64(1)<<uint(n-k)
}

// Code describes a binary cyclic code with message length k and a fixed
// generator polynomial of degree p, giving codewords of length n = k + p.
type Code struct {
	generator gf2.Poly
	k         int
	p         int
}

// NewCode validates the generator and message length and returns a Code.
// The generator must have degree between 1 and MaxCheckBits and a constant
// term of 1, and must supply at least as many check bits as Parameters
// requires for k.
func NewCode(generator gf2.Poly, k int) (*Code, error) {
	g := generator.Normalize()
	degree := g.Degree()
	switch {
	case g.IsZero() || degree < 1:
		return nil, fmt.Errorf("cyclic: generator %s has degree < 1: %w", g, gf2.ErrDegenerateDivisor)
	case g.Coefficient(0) != 1:
		return nil, fmt.Errorf("cyclic: generator %s has zero constant term: %w", g, gf2.ErrDegenerateDivisor)
	case degree > MaxCheckBits:
		return nil, fmt.Errorf("cyclic: generator degree %d exceeds %d: %w", degree, MaxCheckBits, gf2.ErrDegenerateDivisor)
	}
	if k < 1 {
		return nil, fmt.Errorf("cyclic: message length %d: %w", k, ErrInfeasibleParameters)
	}
	_, required, err := Parameters(k)
	if err != nil {
		return nil, err
	}
	if required > degree {
		return nil, fmt.Errorf("cyclic: k=%d needs %d check bits, generator %s has %d: %w",
			k, required, g, degree, ErrInfeasibleParameters)
	}
	return &Code{generator: g, k: k, p: degree}, nil
}

// Generator returns the normalized generator polynomial.
func (c *Code) Generator() gf2.Poly { return c.generator }

// MessageLength returns k.
func (c *Code) MessageLength() int { return c.k }

// CheckBits returns p, the degree of the generator.
func (c *Code) CheckBits() int { return c.p }

// Length returns n = k + p.
func (c *Code) Length() int { return c.k + c.p }

// String returns a description such as "(10,4) x^6 + x + 1".
func (c *Code) String() string {
	return fmt.Sprintf("(%d,%d) %s", c.Length(), c.k, c.generator)
}
