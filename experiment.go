// Package gf2cyclic runs single-bit error correction experiments with a
// binary cyclic code: random messages are encoded, one bit is corrupted, and
// the syndrome table locates and repairs it.
package gf2cyclic

import (
	"errors"
	"fmt"

	"github.com/ericlevine/gf2cyclic/bitutil"
	"github.com/ericlevine/gf2cyclic/cyclic"
	"github.com/ericlevine/gf2cyclic/gf2"
)

// DefaultGenerator is x^6 + x + 1.
const DefaultGenerator = "1000011"

// Config configures a series of experiments.
type Config struct {
	// MessageLength is k, the number of random message bits per run.
	MessageLength int

	// Generator is the generator polynomial as a bit string, most
	// significant term first.
	Generator string

	// Runs is the number of independent experiments.
	Runs int
}

// DefaultConfig returns six runs of 42-bit messages under x^6 + x + 1.
func DefaultConfig() Config {
	return Config{
		MessageLength: 42,
		Generator:     DefaultGenerator,
		Runs:          6,
	}
}

// Validate checks the configuration and builds the code it describes.
func (c Config) Validate() (*cyclic.Code, error) {
	if c.Runs < 0 {
		return nil, fmt.Errorf("gf2cyclic: negative run count %d", c.Runs)
	}
	generator, err := gf2.Parse(c.Generator)
	if err != nil {
		return nil, fmt.Errorf("gf2cyclic: generator: %w", err)
	}
	return cyclic.NewCode(generator, c.MessageLength)
}

// RunResult holds every observable value of one experiment.
type RunResult struct {
	Index int

	// N and P are the code length and check-bit count required by the
	// Hamming bound for the message length.
	N, P int

	Code     *cyclic.Code
	Message  *bitutil.BitVector
	Encoding *cyclic.Encoding
	Table    *cyclic.Table

	// ErrorPosition is the injected bit position.
	ErrorPosition int
	Corrupted     *bitutil.BitVector

	// Correction is set even when the word was uncorrectable; Uncorrectable
	// reports that case.
	Correction    *cyclic.Correction
	Uncorrectable bool
}

// Corrected reports whether decoding restored the original codeword.
func (r *RunResult) Corrected() bool {
	return !r.Uncorrectable && r.Correction.Corrected.Equal(r.Encoding.Bits)
}

// RandomMessage draws k bits from src.
func RandomMessage(k int, src BitSource) *bitutil.BitVector {
	bv := bitutil.NewBitVector(k)
	for i := 0; i < k; i++ {
		if src.Bit() == 1 {
			bv.Set(i)
		}
	}
	return bv
}

// InjectError flips one uniformly chosen bit and returns the corrupted copy
// together with the chosen position.
func InjectError(codeword *bitutil.BitVector, src BitSource) (*bitutil.BitVector, int) {
	i := src.Intn(codeword.Len())
	return codeword.WithFlipped(i), i
}

// RunOnce performs a single experiment with an already validated code.
func RunOnce(index int, code *cyclic.Code, src BitSource) (*RunResult, error) {
	n, p, err := cyclic.Parameters(code.MessageLength())
	if err != nil {
		return nil, err
	}
	message := RandomMessage(code.MessageLength(), src)
	m, err := message.Poly()
	if err != nil {
		return nil, err
	}
	enc, err := cyclic.NewEncoder(code).EncodePoly(m)
	if err != nil {
		return nil, err
	}
	table, err := cyclic.BuildTable(code, enc.Bits)
	if err != nil {
		return nil, err
	}
	corrupted, pos := InjectError(enc.Bits, src)

	result := &RunResult{
		Index:         index,
		N:             n,
		P:             p,
		Code:          code,
		Message:       message,
		Encoding:      enc,
		Table:         table,
		ErrorPosition: pos,
		Corrupted:     corrupted,
	}
	result.Correction, err = cyclic.NewDecoder(code, table).Correct(corrupted)
	switch {
	case errors.Is(err, cyclic.ErrUncorrectable):
		result.Uncorrectable = true
	case err != nil:
		return nil, err
	}
	return result, nil
}

// Run validates cfg and performs cfg.Runs independent experiments. An
// uncorrectable word is recorded in its result and does not stop the series.
func Run(cfg Config, src BitSource) ([]*RunResult, error) {
	code, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	results := make([]*RunResult, 0, cfg.Runs)
	for i := 0; i < cfg.Runs; i++ {
		r, err := RunOnce(i+1, code, src)
		if err != nil {
			return results, fmt.Errorf("gf2cyclic: run %d: %w", i+1, err)
		}
		results = append(results, r)
	}
	return results, nil
}
