package cyclic

import (
	"errors"
	"fmt"

	"github.com/ericlevine/gf2cyclic/bitutil"
)

// ErrUncorrectable indicates that a received word's syndrome matches no
// single-bit error in the table.
var ErrUncorrectable = errors.New("cyclic: uncorrectable error")

// Correction is the outcome of decoding one received word.
type Correction struct {
	Syndrome Syndrome
	// Index is the corrected bit position, or -1 if no bit was flipped.
	Index int
	// NoError is set when the syndrome is zero.
	NoError bool
	// Corrected is the repaired codeword; it is nil when decoding failed.
	Corrected *bitutil.BitVector
}

// Decoder performs table-lookup single-error correction.
type Decoder struct {
	code  *Code
	table *Table
}

// NewDecoder creates a new Decoder using a table built for code.
func NewDecoder(code *Code, table *Table) *Decoder {
	return &Decoder{code: code, table: table}
}

// Syndrome divides received by the generator.
func (d *Decoder) Syndrome(received *bitutil.BitVector) (Syndrome, error) {
	return d.code.syndromeOf(received)
}

// Correct locates and flips a single erroneous bit. The received vector is
// not modified. A zero syndrome yields NoError with an unchanged copy. A
// syndrome missing from the table returns ErrUncorrectable.
func (d *Decoder) Correct(received *bitutil.BitVector) (*Correction, error) {
	s, err := d.Syndrome(received)
	if err != nil {
		return nil, err
	}
	if s.IsZero() {
		return &Correction{Syndrome: s, Index: -1, NoError: true, Corrected: received.Clone()}, nil
	}
	i, ok := d.table.Lookup(s)
	if !ok {
		return &Correction{Syndrome: s, Index: -1},
			fmt.Errorf("cyclic: syndrome %s: %w", s.Bits(d.code.p), ErrUncorrectable)
	}
	return &Correction{Syndrome: s, Index: i, Corrected: received.WithFlipped(i)}, nil
}
