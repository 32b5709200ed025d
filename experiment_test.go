package gf2cyclic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed bits and positions.
type scriptedSource struct {
	bits      []uint8
	positions []int
}

func (s *scriptedSource) Bit() uint8 {
	b := s.bits[0]
	s.bits = s.bits[1:]
	return b
}

func (s *scriptedSource) Intn(n int) int {
	p := s.positions[0]
	s.positions = s.positions[1:]
	if p >= n {
		panic("scripted position out of range")
	}
	return p
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	code, err := cfg.Validate()
	require.NoError(t, err)
	assert.Equal(t, 48, code.Length())
	assert.Equal(t, 6, code.CheckBits())
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator = "10x"
	_, err := cfg.Validate()
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Generator = "1000010"
	_, err = cfg.Validate()
	assert.ErrorIs(t, err, ErrDegenerateDivisor)

	cfg = DefaultConfig()
	cfg.MessageLength = 100
	_, err = cfg.Validate()
	assert.ErrorIs(t, err, ErrInfeasibleParameters)

	cfg = DefaultConfig()
	cfg.Runs = -1
	_, err = cfg.Validate()
	assert.Error(t, err)
}

func TestRunOnceScripted(t *testing.T) {
	code, err := Config{MessageLength: 4, Generator: DefaultGenerator, Runs: 1}.Validate()
	require.NoError(t, err)

	src := &scriptedSource{bits: []uint8{1, 1, 0, 1}, positions: []int{0}}
	r, err := RunOnce(1, code, src)
	require.NoError(t, err)

	assert.Equal(t, 7, r.N)
	assert.Equal(t, 3, r.P)
	assert.Equal(t, "1101", r.Message.String())
	assert.Equal(t, "1101010111", r.Encoding.Bits.String())
	assert.Equal(t, 0, r.ErrorPosition)
	assert.Equal(t, "0101010111", r.Corrupted.String())
	assert.False(t, r.Uncorrectable)
	assert.Equal(t, 0, r.Correction.Index)
	assert.True(t, r.Corrected())
	assert.Equal(t, 10, r.Table.Len())
}

func TestRunSeries(t *testing.T) {
	src, err := NewChaChaSource(7)
	require.NoError(t, err)

	results, err := Run(DefaultConfig(), src)
	require.NoError(t, err)
	require.Len(t, results, 6)
	for i, r := range results {
		assert.Equal(t, i+1, r.Index)
		assert.Equal(t, 42, r.Message.Len())
		assert.Equal(t, 48, r.Corrupted.Len())
		assert.Equal(t, r.ErrorPosition, r.Correction.Index)
		assert.True(t, r.Corrected(), "run %d", r.Index)
		assert.Empty(t, r.Table.Collisions())
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	src, err := NewChaChaSource(1)
	require.NoError(t, err)
	_, err = Run(Config{MessageLength: 4, Generator: "0", Runs: 1}, src)
	assert.ErrorIs(t, err, ErrDegenerateDivisor)
}

func TestInjectError(t *testing.T) {
	src := &scriptedSource{positions: []int{3}}
	cw := RandomMessage(4, &scriptedSource{bits: []uint8{0, 0, 0, 0}})
	corrupted, pos := InjectError(cw, src)
	assert.Equal(t, 3, pos)
	assert.Equal(t, "0001", corrupted.String())
	assert.Equal(t, "0000", cw.String())
}

func TestChaChaSourceDeterministic(t *testing.T) {
	a, err := NewChaChaSource(42)
	require.NoError(t, err)
	b, err := NewChaChaSource(42)
	require.NoError(t, err)
	c, err := NewChaChaSource(43)
	require.NoError(t, err)

	same, diff := true, false
	for i := 0; i < 256; i++ {
		x, y, z := a.Bit(), b.Bit(), c.Bit()
		same = same && x == y
		diff = diff || x != z
	}
	assert.True(t, same)
	assert.True(t, diff)
}

func TestChaChaSourceIntn(t *testing.T) {
	src, err := NewChaChaSource(3)
	require.NoError(t, err)

	seen := make([]bool, 10)
	for i := 0; i < 1000; i++ {
		v := src.Intn(10)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
		seen[v] = true
	}
	for v, ok := range seen {
		assert.True(t, ok, "value %d never drawn", v)
	}
	assert.Equal(t, 0, src.Intn(1))
	assert.Panics(t, func() { src.Intn(0) })
}

func TestChaChaSourceBitsBalanced(t *testing.T) {
	src, err := NewChaChaSource(11)
	require.NoError(t, err)
	ones := 0
	for i := 0; i < 4096; i++ {
		ones += int(src.Bit())
	}
	assert.InDelta(t, 2048, ones, 300)
}

func TestRandomSeed(t *testing.T) {
	_, err := RandomSeed()
	assert.NoError(t, err)
}
