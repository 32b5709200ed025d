package cyclic

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/ericlevine/gf2cyclic/bitutil"
)

// Collision records two positions whose single-bit flips produce the same
// syndrome. The later position owns the table entry.
type Collision struct {
	Syndrome Syndrome
	First    int
	Later    int
}

// Entry is one syndrome-to-position mapping.
type Entry struct {
	Syndrome Syndrome
	Position int
}

// Table maps the syndrome of every single-bit error to its position. It is
// read-only once built.
type Table struct {
	width       int
	length      int
	positions   map[Syndrome]int
	correctable *bitset.BitSet
	collisions  []Collision
}

// BuildTable flips each bit of an error-free codeword in turn and records
// the resulting syndrome. Collisions are kept, with later positions
// overwriting earlier ones.
func BuildTable(code *Code, codeword *bitutil.BitVector) (*Table, error) {
	n := code.Length()
	if codeword.Len() != n {
		return nil, fmt.Errorf("cyclic: codeword has %d bits, want %d: %w", codeword.Len(), n, ErrLengthMismatch)
	}
	t := &Table{
		width:       code.p,
		length:      n,
		positions:   make(map[Syndrome]int, n),
		correctable: bitset.New(uint(n)),
	}
	for i := 0; i < n; i++ {
		s, err := code.syndromeOf(codeword.WithFlipped(i))
		if err != nil {
			return nil, err
		}
		if prev, ok := t.positions[s]; ok {
			t.collisions = append(t.collisions, Collision{Syndrome: s, First: prev, Later: i})
			t.correctable.Clear(uint(prev))
		}
		t.positions[s] = i
		t.correctable.Set(uint(i))
	}
	return t, nil
}

// Lookup returns the error position for syndrome s.
func (t *Table) Lookup(s Syndrome) (int, bool) {
	i, ok := t.positions[s]
	return i, ok
}

// Len returns the number of distinct syndromes in the table.
func (t *Table) Len() int { return len(t.positions) }

// Width returns the syndrome width in bits.
func (t *Table) Width() int { return t.width }

// CodewordLength returns n, the number of positions the table was built for.
func (t *Table) CodewordLength() int { return t.length }

// Collisions returns every syndrome collision found while building.
func (t *Table) Collisions() []Collision { return t.collisions }

// Correctable reports whether a single error at position i is located
// correctly by the table.
func (t *Table) Correctable(i int) bool {
	if i < 0 || i >= t.length {
		return false
	}
	return t.correctable.Test(uint(i))
}

// CorrectableCount returns the number of correctable positions.
func (t *Table) CorrectableCount() int { return int(t.correctable.Count()) }

// Entries returns the table ordered by position.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.positions))
	for s, i := range t.positions {
		entries = append(entries, Entry{Syndrome: s, Position: i})
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].Position < entries[b].Position })
	return entries
}
