// Package bitutil provides the dense bit vectors that carry codewords between
// the polynomial engine and the syndrome table.
package bitutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ericlevine/gf2cyclic/gf2"
)

const loadFactor = 0.75

var (
	// ErrEmptyVector is returned when converting an empty vector to a polynomial.
	ErrEmptyVector = errors.New("bitutil: empty bit vector")

	// ErrInvalidBit is returned when parsing a character other than '0' or '1'.
	ErrInvalidBit = errors.New("bitutil: bit must be '0' or '1'")
)

// BitVector is a fixed-order sequence of bits represented compactly by an
// array of uint32 values internally. Index 0 is the most significant bit,
// which maps to the highest-degree coefficient of a polynomial.
type BitVector struct {
	bits []uint32
	size int
}

// NewBitVector creates a zeroed BitVector with the given size.
func NewBitVector(size int) *BitVector {
	if size <= 0 {
		return &BitVector{}
	}
	return &BitVector{
		bits: makeArray(size),
		size: size,
	}
}

// ParseBitVector creates a BitVector from a string of '0' and '1' characters.
func ParseBitVector(s string) (*BitVector, error) {
	bv := NewBitVector(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			bv.Set(i)
		default:
			return nil, fmt.Errorf("bitutil: %q at position %d: %w", s[i], i, ErrInvalidBit)
		}
	}
	return bv, nil
}

// FromBits creates a BitVector from a slice of 0/1 values. Any non-zero
// value is treated as a set bit.
func FromBits(b []uint8) *BitVector {
	bv := NewBitVector(len(b))
	for i, v := range b {
		if v != 0 {
			bv.Set(i)
		}
	}
	return bv
}

// FromPoly renders p as a BitVector of exactly width bits, big-endian. Leading
// zeros are added or stripped to fit; it panics if the non-zero part of p does
// not fit in width bits.
func FromPoly(p gf2.Poly, width int) *BitVector {
	n := p.Normalize()
	if !n.IsZero() && n.Len() > width {
		panic("bitutil: polynomial wider than vector")
	}
	bv := NewBitVector(width)
	for d := 0; d < width; d++ {
		if n.Coefficient(d) != 0 {
			bv.Set(width - 1 - d)
		}
	}
	return bv
}

// Poly interprets the vector as polynomial coefficients, most significant
// term first.
func (bv *BitVector) Poly() (gf2.Poly, error) {
	if bv.size == 0 {
		return gf2.Poly{}, ErrEmptyVector
	}
	return gf2.New(bv.Bits()...), nil
}

// Len returns the number of bits in the vector.
func (bv *BitVector) Len() int {
	return bv.size
}

func (bv *BitVector) ensureCapacity(newSize int) {
	if newSize > len(bv.bits)*32 {
		newBits := makeArray(int(float64(newSize) / loadFactor))
		copy(newBits, bv.bits)
		bv.bits = newBits
	}
}

func (bv *BitVector) checkIndex(i int) {
	if i < 0 || i >= bv.size {
		panic(fmt.Sprintf("bitutil: index %d out of range [0, %d)", i, bv.size))
	}
}

// Get returns true if bit i is set.
func (bv *BitVector) Get(i int) bool {
	bv.checkIndex(i)
	return (bv.bits[i/32] & (1 << uint(i&0x1F))) != 0
}

// Set sets bit i.
func (bv *BitVector) Set(i int) {
	bv.checkIndex(i)
	bv.bits[i/32] |= 1 << uint(i&0x1F)
}

// Flip flips bit i in place.
func (bv *BitVector) Flip(i int) {
	bv.checkIndex(i)
	bv.bits[i/32] ^= 1 << uint(i&0x1F)
}

// WithFlipped returns a copy of the vector with bit i flipped, leaving the
// receiver untouched.
func (bv *BitVector) WithFlipped(i int) *BitVector {
	c := bv.Clone()
	c.Flip(i)
	return c
}

// AppendBit appends a single bit.
func (bv *BitVector) AppendBit(bit bool) {
	bv.ensureCapacity(bv.size + 1)
	if bit {
		bv.bits[bv.size/32] |= 1 << uint(bv.size&0x1F)
	}
	bv.size++
}

// AppendBits appends the least-significant numBits bits of value, from most
// significant to least significant.
func (bv *BitVector) AppendBits(value uint64, numBits int) {
	if numBits < 0 || numBits > 64 {
		panic("bitutil: numBits must be between 0 and 64")
	}
	nextSize := bv.size
	bv.ensureCapacity(nextSize + numBits)
	for numBitsLeft := numBits - 1; numBitsLeft >= 0; numBitsLeft-- {
		if (value & (1 << uint(numBitsLeft))) != 0 {
			bv.bits[nextSize/32] |= 1 << uint(nextSize&0x1F)
		}
		nextSize++
	}
	bv.size = nextSize
}

// AppendVector appends another BitVector to this one.
func (bv *BitVector) AppendVector(other *BitVector) {
	bv.ensureCapacity(bv.size + other.size)
	for i := 0; i < other.size; i++ {
		bv.AppendBit(other.Get(i))
	}
}

// Xor performs XOR with another BitVector of the same size.
func (bv *BitVector) Xor(other *BitVector) {
	if bv.size != other.size {
		panic("bitutil: sizes don't match")
	}
	for i := range bv.bits {
		bv.bits[i] ^= other.bits[i]
	}
}

// Equal reports whether both vectors have the same size and bits.
func (bv *BitVector) Equal(other *BitVector) bool {
	if bv.size != other.size {
		return false
	}
	for i := 0; i < bv.size; i++ {
		if bv.Get(i) != other.Get(i) {
			return false
		}
	}
	return true
}

// Bits returns the vector as a slice of 0/1 values.
func (bv *BitVector) Bits() []uint8 {
	b := make([]uint8, bv.size)
	for i := range b {
		if bv.Get(i) {
			b[i] = 1
		}
	}
	return b
}

// Clone returns a copy of this BitVector.
func (bv *BitVector) Clone() *BitVector {
	b := make([]uint32, len(bv.bits))
	copy(b, bv.bits)
	return &BitVector{bits: b, size: bv.size}
}

// String returns the bits as '0' and '1' characters.
func (bv *BitVector) String() string {
	var sb strings.Builder
	sb.Grow(bv.size)
	for i := 0; i < bv.size; i++ {
		if bv.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func makeArray(size int) []uint32 {
	return make([]uint32, (size+31)/32)
}
