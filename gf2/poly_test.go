package gf2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Poly {
	t.Helper()
	p, err := Parse(s)
	require.NoError(t, err)
	return p
}

func TestParse(t *testing.T) {
	p := mustParse(t, "1000011")
	assert.Equal(t, []uint8{1, 0, 0, 0, 0, 1, 1}, p.Coefficients())
	assert.Equal(t, 6, p.Degree())

	_, err := Parse("")
	assert.ErrorIs(t, err, ErrInvalidCoefficient)
	_, err = Parse("10a1")
	assert.ErrorIs(t, err, ErrInvalidCoefficient)
}

func TestNewPanics(t *testing.T) {
	assert.Panics(t, func() { New() })
	assert.Panics(t, func() { New(1, 2) })
	assert.Panics(t, func() { Monomial(-1) })
}

func TestNewCopiesInput(t *testing.T) {
	c := []uint8{1, 0, 1}
	p := New(c...)
	c[0] = 0
	assert.Equal(t, "101", p.BitString())

	out := p.Coefficients()
	out[2] = 0
	assert.Equal(t, "101", p.BitString())
}

func TestString(t *testing.T) {
	tests := []struct {
		bits string
		want string
	}{
		{"1000011", "x^6 + x + 1"},
		{"1101", "x^3 + x^2 + 1"},
		{"10", "x"},
		{"1", "1"},
		{"0", "0"},
		{"0000", "0"},
		{"0011", "x + 1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mustParse(t, tt.bits).String(), tt.bits)
	}
}

func TestNormalizeAndEqual(t *testing.T) {
	assert.Equal(t, "11", mustParse(t, "00011").Normalize().BitString())
	assert.Equal(t, "0", mustParse(t, "0000").Normalize().BitString())
	assert.True(t, mustParse(t, "0011").Equal(mustParse(t, "11")))
	assert.False(t, mustParse(t, "0011").Equal(mustParse(t, "111")))
	assert.True(t, mustParse(t, "000").Equal(mustParse(t, "0")))
}

func TestAdd(t *testing.T) {
	sum := Add(mustParse(t, "1101"), mustParse(t, "11"))
	assert.Equal(t, "1110", sum.BitString())
	assert.True(t, Add(mustParse(t, "1011"), mustParse(t, "1011")).IsZero())
}

func TestMultiply(t *testing.T) {
	// (x + 1)(x + 1) = x^2 + 1 over GF(2)
	sq := Multiply(mustParse(t, "11"), mustParse(t, "11"))
	assert.Equal(t, "101", sq.BitString())

	shifted := Multiply(mustParse(t, "1101"), Monomial(6))
	assert.Equal(t, "1101000000", shifted.BitString())

	a, b := mustParse(t, "10011"), mustParse(t, "111")
	assert.Equal(t, Multiply(a, b).BitString(), Multiply(b, a).BitString())
}

func TestMultiplyDegree(t *testing.T) {
	for a := uint64(1); a < 64; a++ {
		for b := uint64(1); b < 64; b++ {
			pa, pb := fromUint64(a), fromUint64(b)
			product := Multiply(pa, pb)
			require.Equal(t, len(pa.coefficients)+len(pb.coefficients)-1, product.Len())
			require.Equal(t, pa.Degree()+pb.Degree(), product.Degree(), "a=%b b=%b", a, b)
		}
	}
}

func TestMod(t *testing.T) {
	px := mustParse(t, "1000011")
	rem, err := Mod(mustParse(t, "1101000000"), px)
	require.NoError(t, err)
	// x^9 + x^8 + x^6 = (x^3 + x^2 + 1)(x^6 + x + 1) + x^4 + x^2 + x + 1
	assert.Equal(t, "010111", rem.BitString())
	assert.Equal(t, "x^4 + x^2 + x + 1", rem.String())

	rem, err = Mod(mustParse(t, "101"), px)
	require.NoError(t, err)
	assert.Equal(t, "101", rem.BitString())

	rem, err = Mod(px, px)
	require.NoError(t, err)
	assert.True(t, rem.IsZero())

	rem, err = Mod(mustParse(t, "1011"), mustParse(t, "1"))
	require.NoError(t, err)
	assert.True(t, rem.IsZero())
}

func TestModIgnoresDivisorLeadingZeros(t *testing.T) {
	a := mustParse(t, "110101")
	want, err := Mod(a, mustParse(t, "1011"))
	require.NoError(t, err)
	got, err := Mod(a, mustParse(t, "001011"))
	require.NoError(t, err)
	assert.Equal(t, want.BitString(), got.BitString())
}

func TestModDegenerateDivisor(t *testing.T) {
	a := mustParse(t, "1101")
	_, err := Mod(a, Poly{})
	assert.ErrorIs(t, err, ErrDegenerateDivisor)
	_, err = Mod(a, mustParse(t, "000"))
	assert.ErrorIs(t, err, ErrDegenerateDivisor)
}

func TestModRemainderBound(t *testing.T) {
	divisors := []string{"11", "111", "1011", "1000011", "100101"}
	for _, d := range divisors {
		divisor := mustParse(t, d)
		for a := uint64(1); a < 1<<10; a++ {
			rem, err := Mod(fromUint64(a), divisor)
			require.NoError(t, err)
			require.Less(t, rem.Degree(), divisor.Degree())
			// a = q*d + r, so a + r must be divisible by d.
			check, err := Mod(Add(fromUint64(a), rem), divisor)
			require.NoError(t, err)
			require.True(t, check.IsZero(), "a=%b d=%s", a, d)
		}
	}
}

func TestUint64(t *testing.T) {
	assert.Equal(t, uint64(0x43), mustParse(t, "1000011").Uint64())
	assert.Equal(t, uint64(0x17), mustParse(t, "010111").Uint64())
	assert.Equal(t, uint64(0), mustParse(t, "000").Uint64())
	assert.Panics(t, func() { Monomial(64).Uint64() })
}

func fromUint64(v uint64) Poly {
	var c []uint8
	for v != 0 {
		c = append([]uint8{uint8(v & 1)}, c...)
		v >>= 1
	}
	if len(c) == 0 {
		c = []uint8{0}
	}
	return Poly{coefficients: c}
}
