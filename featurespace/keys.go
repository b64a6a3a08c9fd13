package featurespace

// CellCoords extracts the per-axis coordinates of a linear cell index:
// c_0 = index div s_0, and for f > 0, c_f = (index mod s_{f-1}) div s_f.
func (fs *FeatureSpace) CellCoords(index int) []int {
	coords := make([]int, len(fs.Levels))
	coords[0] = index / fs.strides[0]
	for f := 1; f < len(fs.Levels); f++ {
		coords[f] = (index % fs.strides[f-1]) / fs.strides[f]
	}
	return coords
}

// CellIndex is the inverse of CellCoords: it linearizes per-axis
// coordinates back into a single cell index, index = Σ c_f · s_f.
func (fs *FeatureSpace) CellIndex(coords []int) int {
	index := 0
	for f, c := range coords {
		index += c * fs.strides[f]
	}
	return index
}

// AxisRange returns the per-axis cell-coordinate range [rLo, rHi] a region
// (lo, hi) spans along feature f.
func (fs *FeatureSpace) AxisRange(lo, hi, f int) (rLo, rHi int) {
	loCoords := fs.CellCoords(lo)
	hiCoords := fs.CellCoords(hi)
	return loCoords[f], hiCoords[f]
}

// ShiftHi returns the top cell index of the left child region obtained by
// narrowing axis f's upper coordinate from rHi down to l, everything else
// held fixed: hi' = hi + s_f * (l - rHi).
func (fs *FeatureSpace) ShiftHi(hi, f, l, rHi int) int {
	return hi + fs.strides[f]*(l-rHi)
}

// ShiftLo returns the bottom cell index of the right child region obtained
// by narrowing axis f's lower coordinate from rLo up to l, everything else
// held fixed: lo' = lo + s_f * (l - rLo).
func (fs *FeatureSpace) ShiftLo(lo, f, l, rLo int) int {
	return lo + fs.strides[f]*(l-rLo)
}

// RegionHash computes a densely perfect-hashed "shape" key for a region
// (lo, hi): for a fixed lo, only the size vector hi-lo varies, and this
// function enumerates that vector into [0, H(lo)) (or [0, H(lo)] when hi
// is the maximal corner).
func (fs *FeatureSpace) RegionHash(lo, hi int) int {
	loCoords := fs.CellCoords(lo)
	hiCoords := fs.CellCoords(hi)

	h := 0
	code := 1
	for f := len(fs.Levels) - 1; f >= 0; f-- {
		size := len(fs.Levels[f])
		if size == 1 {
			continue
		}
		vLo, vHi := loCoords[f], hiCoords[f]
		h += (vHi - vLo) * code
		code *= size - vLo
	}
	return h
}

// MaxRegionHash is H(lo): the region hash of the largest region rooted at
// lo, i.e. (lo, NbCells-1). A memo row for lo needs exactly H(lo)+1 slots.
func (fs *FeatureSpace) MaxRegionHash(lo int) int {
	return fs.RegionHash(lo, fs.NbCells-1)
}
