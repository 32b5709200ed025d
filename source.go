package gf2cyclic

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/bits"

	"golang.org/x/crypto/chacha20"
)

// BitSource supplies the randomness for one experiment: message bits and
// error positions. Implementations must be uniform.
type BitSource interface {
	// Bit returns 0 or 1.
	Bit() uint8
	// Intn returns an integer in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// ChaChaSource is a deterministic BitSource backed by a ChaCha20 keystream.
// It is not safe for concurrent use.
type ChaChaSource struct {
	cipher *chacha20.Cipher
	buf    [8]byte
	word   uint64
	left   int
}

// NewChaChaSource creates a source whose stream is fully determined by seed.
func NewChaChaSource(seed uint64) (*ChaChaSource, error) {
	key := make([]byte, chacha20.KeySize)
	binary.LittleEndian.PutUint64(key, seed)
	cipher, err := chacha20.NewUnauthenticatedCipher(key, make([]byte, chacha20.NonceSize))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ChaCha20: %w", err)
	}
	return &ChaChaSource{cipher: cipher}, nil
}

// RandomSeed reads a seed from the operating system's entropy source.
func RandomSeed() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Uint64 returns the next 64 bits of keystream.
func (s *ChaChaSource) Uint64() uint64 {
	s.buf = [8]byte{}
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Bit returns the next keystream bit.
func (s *ChaChaSource) Bit() uint8 {
	if s.left == 0 {
		s.word = s.Uint64()
		s.left = 64
	}
	b := uint8(s.word & 1)
	s.word >>= 1
	s.left--
	return b
}

// Intn returns a uniform integer in [0, n) using Lemire's
// multiply-and-reject method.
func (s *ChaChaSource) Intn(n int) int {
	if n <= 0 {
		panic("gf2cyclic: Intn argument must be positive")
	}
	bound := uint64(n)
	hi, lo := bits.Mul64(s.Uint64(), bound)
	if lo < bound {
		threshold := -bound % bound
		for lo < threshold {
			hi, lo = bits.Mul64(s.Uint64(), bound)
		}
	}
	return int(hi)
}
