package bornagain

import "github.com/pedrosbmartins/born-again/featurespace"

// unset marks a memo slot that has not yet been filled. Depths are always
// non-negative, so a negative sentinel is unambiguous.
const unset = -1

// Memo is the region table: a jagged array indexed first by the region's
// bottom cell lo, then by the densely perfect-hashed shape of hi-lo. Once a
// slot is set it is never changed: a region's optimal depth, once known,
// is final.
type Memo struct {
	rows [][]int
}

// NewMemo allocates one row per cell, sized exactly to the number of
// distinct region shapes rooted at that cell: fs.MaxRegionHash(lo) + 1.
func NewMemo(fs *featurespace.FeatureSpace) *Memo {
	rows := make([][]int, fs.NbCells)
	for lo := range rows {
		row := make([]int, fs.MaxRegionHash(lo)+1)
		for i := range row {
			row[i] = unset
		}
		rows[lo] = row
	}
	return &Memo{rows: rows}
}

// Get returns the memoized depth for (lo, hash) and whether it has been set.
func (m *Memo) Get(lo, hash int) (int, bool) {
	d := m.rows[lo][hash]
	return d, d != unset
}

// Set records the optimal depth for (lo, hash). Callers never overwrite an
// already-set slot; the DP only ever computes a region's value once.
func (m *Memo) Set(lo, hash, depth int) {
	m.rows[lo][hash] = depth
}
