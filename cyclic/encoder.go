package cyclic

import (
	"fmt"

	"github.com/ericlevine/gf2cyclic/bitutil"
	"github.com/ericlevine/gf2cyclic/gf2"
)

// Encoding holds a systematic codeword together with the intermediate
// polynomials used to produce it.
type Encoding struct {
	Message   gf2.Poly // g(x), k coefficients
	Shift     gf2.Poly // x^p
	Shifted   gf2.Poly // g(x) * x^p
	Remainder gf2.Poly // g(x) * x^p mod P(x), p coefficients
	Codeword  gf2.Poly // message bits followed by the remainder, n coefficients
	Bits      *bitutil.BitVector
}

// Encoder performs systematic cyclic encoding.
type Encoder struct {
	code *Code
	xp   gf2.Poly
}

// NewEncoder creates a new Encoder for the given code.
func NewEncoder(code *Code) *Encoder {
	return &Encoder{code: code, xp: gf2.Monomial(code.p)}
}

// EncodePoly encodes a message polynomial with exactly k coefficients.
// The resulting codeword is divisible by the generator.
func (e *Encoder) EncodePoly(message gf2.Poly) (*Encoding, error) {
	if message.Len() != e.code.k {
		return nil, fmt.Errorf("cyclic: message has %d bits, want %d: %w", message.Len(), e.code.k, ErrInvalidMessage)
	}
	shifted := gf2.Multiply(message, e.xp)
	remainder, err := gf2.Mod(shifted, e.code.generator)
	if err != nil {
		return nil, err
	}
	checkBits := bitutil.FromPoly(remainder, e.code.p)

	bits := bitutil.FromBits(message.Coefficients())
	bits.AppendVector(checkBits)
	codeword, err := bits.Poly()
	if err != nil {
		return nil, err
	}
	rem, err := checkBits.Poly()
	if err != nil {
		return nil, err
	}
	return &Encoding{
		Message:   message,
		Shift:     e.xp,
		Shifted:   shifted,
		Remainder: rem,
		Codeword:  codeword,
		Bits:      bits,
	}, nil
}

// Encode encodes a k-bit message vector and returns the n-bit codeword.
func (e *Encoder) Encode(message *bitutil.BitVector) (*bitutil.BitVector, error) {
	if message.Len() != e.code.k {
		return nil, fmt.Errorf("cyclic: message has %d bits, want %d: %w", message.Len(), e.code.k, ErrInvalidMessage)
	}
	m, err := message.Poly()
	if err != nil {
		return nil, err
	}
	enc, err := e.EncodePoly(m)
	if err != nil {
		return nil, err
	}
	return enc.Bits, nil
}
