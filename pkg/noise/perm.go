package noise

import "math/rand"

// Table is a seeded permutation of 0..255 duplicated into 256..511 so that
// corner hashing can index with an offset of up to 255+1 without wrapping.
// A Table is immutable after NewTable and safe for concurrent readers.
type Table [512]int

// defaultTable backs evaluation when no table has been built yet (seed 0),
// keeping noise functions total.
var defaultTable = NewTable(0)

// Default returns the shared seed-0 table.
func Default() *Table {
	return defaultTable
}

// NewTable builds the permutation table for a seed. The shuffle uses a
// math/rand generator seeded once per build; it is never observable outside
// this call, so two builds with the same seed yield byte-identical tables.
func NewTable(seed int32) *Table {
	rnd := rand.New(rand.NewSource(int64(seed)))

	t := &Table{}
	for i := 0; i < 256; i++ {
		t[i] = i
	}
	for i := 0; i < 256; i++ {
		j := rnd.Intn(256-i) + i
		t[i], t[j] = t[j], t[i]
		t[i+256] = t[i]
	}
	return t
}
