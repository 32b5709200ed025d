// Package gf2 implements polynomial arithmetic over GF(2), the two-element
// field where addition is XOR and multiplication is AND.
package gf2

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDegenerateDivisor is returned when a polynomial is divided by an empty
// or all-zero divisor.
var ErrDegenerateDivisor = errors.New("gf2: degenerate divisor")

// ErrInvalidCoefficient is returned when parsing a coefficient other than 0 or 1.
var ErrInvalidCoefficient = errors.New("gf2: coefficient must be 0 or 1")

// Poly represents a polynomial whose coefficients are elements of GF(2).
// Coefficients are ordered from highest-degree to lowest-degree and may carry
// leading zeros. Instances are never mutated after construction.
type Poly struct {
	coefficients []uint8
}

// New creates a polynomial from the given coefficients, copying them.
// It panics if coefficients is empty or holds a value other than 0 or 1.
func New(coefficients ...uint8) Poly {
	if len(coefficients) == 0 {
		panic("gf2: empty coefficients")
	}
	c := make([]uint8, len(coefficients))
	for i, v := range coefficients {
		if v > 1 {
			panic("gf2: coefficient out of range")
		}
		c[i] = v
	}
	return Poly{coefficients: c}
}

// Parse creates a polynomial from a string of '0' and '1' characters, most
// significant term first.
func Parse(s string) (Poly, error) {
	if s == "" {
		return Poly{}, fmt.Errorf("gf2: empty polynomial string: %w", ErrInvalidCoefficient)
	}
	c := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			c[i] = 1
		default:
			return Poly{}, fmt.Errorf("gf2: %q at position %d: %w", s[i], i, ErrInvalidCoefficient)
		}
	}
	return Poly{coefficients: c}, nil
}

// Monomial returns x^degree.
func Monomial(degree int) Poly {
	if degree < 0 {
		panic("gf2: negative degree")
	}
	c := make([]uint8, degree+1)
	c[0] = 1
	return Poly{coefficients: c}
}

// Coefficients returns a copy of the coefficients, leading zeros included.
func (p Poly) Coefficients() []uint8 {
	c := make([]uint8, len(p.coefficients))
	copy(c, p.coefficients)
	return c
}

// Len returns the number of stored coefficients, leading zeros included.
func (p Poly) Len() int {
	return len(p.coefficients)
}

// Degree returns the degree of the highest non-zero term. The zero
// polynomial has degree 0.
func (p Poly) Degree() int {
	for i, c := range p.coefficients {
		if c != 0 {
			return len(p.coefficients) - 1 - i
		}
	}
	return 0
}

// IsZero returns true if every coefficient is zero.
func (p Poly) IsZero() bool {
	for _, c := range p.coefficients {
		if c != 0 {
			return false
		}
	}
	return true
}

// Coefficient returns the coefficient of x^degree.
func (p Poly) Coefficient(degree int) uint8 {
	if degree < 0 || degree >= len(p.coefficients) {
		return 0
	}
	return p.coefficients[len(p.coefficients)-1-degree]
}

// Normalize strips leading zero coefficients. The zero polynomial
// normalizes to a single zero coefficient.
func (p Poly) Normalize() Poly {
	if len(p.coefficients) == 0 {
		return Poly{coefficients: []uint8{0}}
	}
	firstNonZero := 0
	for firstNonZero < len(p.coefficients) && p.coefficients[firstNonZero] == 0 {
		firstNonZero++
	}
	if firstNonZero == len(p.coefficients) {
		return Poly{coefficients: []uint8{0}}
	}
	if firstNonZero == 0 {
		return p
	}
	c := make([]uint8, len(p.coefficients)-firstNonZero)
	copy(c, p.coefficients[firstNonZero:])
	return Poly{coefficients: c}
}

// Equal reports whether p and other represent the same polynomial, ignoring
// leading zeros.
func (p Poly) Equal(other Poly) bool {
	a := p.Normalize().coefficients
	b := other.Normalize().coefficients
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Add returns a + b. Addition and subtraction are the same in GF(2). The
// result is as long as the longer operand.
func Add(a, b Poly) Poly {
	smaller, larger := a.coefficients, b.coefficients
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}
	sum := make([]uint8, len(larger))
	copy(sum, larger)
	lengthDiff := len(larger) - len(smaller)
	for i, c := range smaller {
		sum[lengthDiff+i] ^= c
	}
	return Poly{coefficients: sum}
}

// Multiply returns a * b. The result has len(a)+len(b)-1 coefficients.
func Multiply(a, b Poly) Poly {
	if len(a.coefficients) == 0 || len(b.coefficients) == 0 {
		panic("gf2: empty coefficients")
	}
	product := make([]uint8, len(a.coefficients)+len(b.coefficients)-1)
	for i, ac := range a.coefficients {
		if ac == 0 {
			continue
		}
		for j, bc := range b.coefficients {
			product[i+j] ^= ac & bc
		}
	}
	return Poly{coefficients: product}
}

// Mod returns the remainder of a divided by divisor using long division.
// Leading zeros of the divisor are ignored; the remainder keeps
// divisor.Degree() coefficients when a is at least that long, and is
// otherwise a unchanged.
func Mod(a, divisor Poly) (Poly, error) {
	d := divisor.Normalize().coefficients
	if len(divisor.coefficients) == 0 || d[0] == 0 {
		return Poly{}, ErrDegenerateDivisor
	}
	dividend := make([]uint8, len(a.coefficients))
	copy(dividend, a.coefficients)
	for len(dividend) >= len(d) {
		if dividend[0] != 0 {
			for i, c := range d {
				dividend[i] ^= c
			}
		}
		dividend = dividend[1:]
	}
	if len(dividend) == 0 {
		return Poly{coefficients: []uint8{0}}, nil
	}
	return Poly{coefficients: dividend}, nil
}

// Uint64 packs the polynomial into an integer whose bit i is the coefficient
// of x^i. It panics if the degree is 64 or more.
func (p Poly) Uint64() uint64 {
	n := p.Normalize()
	if len(n.coefficients) > 64 {
		panic("gf2: polynomial too wide for uint64")
	}
	var v uint64
	for _, c := range n.coefficients {
		v = v<<1 | uint64(c)
	}
	return v
}

// BitString returns every stored coefficient as '0' or '1', leading zeros
// included.
func (p Poly) BitString() string {
	var sb strings.Builder
	sb.Grow(len(p.coefficients))
	for _, c := range p.coefficients {
		sb.WriteByte('0' + c)
	}
	return sb.String()
}

// String renders the polynomial symbolically in descending degree order,
// for example "x^6 + x + 1". The zero polynomial renders as "0".
func (p Poly) String() string {
	var terms []string
	for i, c := range p.coefficients {
		if c == 0 {
			continue
		}
		switch degree := len(p.coefficients) - 1 - i; degree {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, fmt.Sprintf("x^%d", degree))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}
