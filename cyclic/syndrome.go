package cyclic

import (
	"fmt"

	"github.com/ericlevine/gf2cyclic/bitutil"
	"github.com/ericlevine/gf2cyclic/gf2"
)

// Syndrome is the remainder of a received word divided by the generator,
// packed so that bit i holds the coefficient of x^i. Keying on the packed
// value keeps remainders of different structural length distinct.
type Syndrome uint64

// IsZero returns true if the syndrome indicates no detectable error.
func (s Syndrome) IsZero() bool { return s == 0 }

// Bits renders the syndrome as a fixed-width bit string.
func (s Syndrome) Bits(width int) string {
	return fmt.Sprintf("%0*b", width, uint64(s))
}

// Poly returns the syndrome as a polynomial of width coefficients.
func (s Syndrome) Poly(width int) gf2.Poly {
	c := make([]uint8, width)
	for d := 0; d < width; d++ {
		c[width-1-d] = uint8(uint64(s) >> uint(d) & 1)
	}
	return gf2.New(c...)
}

// syndromeOf divides word by the code's generator.
func (c *Code) syndromeOf(word *bitutil.BitVector) (Syndrome, error) {
	if word.Len() != c.Length() {
		return 0, fmt.Errorf("cyclic: word has %d bits, want %d: %w", word.Len(), c.Length(), ErrLengthMismatch)
	}
	p, err := word.Poly()
	if err != nil {
		return 0, err
	}
	rem, err := gf2.Mod(p, c.generator)
	if err != nil {
		return 0, err
	}
	return Syndrome(rem.Uint64()), nil
}
