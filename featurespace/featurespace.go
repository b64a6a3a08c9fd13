// Package featurespace derives the axis-aligned cell decomposition of a
// forest's input space: per-feature hyperplane levels, the stride
// arithmetic linearizing cell coordinates, and the precomputed majority
// class of every cell.
package featurespace

import (
	"math"
	"sort"

	"github.com/pedrosbmartins/born-again/ensemble"
)

// DefaultMaxCells is the cell-count ceiling used when a caller does not
// configure one explicitly. 2^30 cells of a single int each is already a
// multi-gigabyte allocation, and the cell array is the engine's hard
// memory ceiling.
const DefaultMaxCells = 1 << 30

// FeatureSpace is the immutable grid built from a forest: one hyperplane
// level list per feature and the majority class of every cell in their
// Cartesian product. Construction is the only place cells are computed;
// everything downstream only reads it.
type FeatureSpace struct {
	// Levels holds, per feature, the sorted distinct split thresholds used
	// by the forest plus a +Inf sentinel. Levels[f][i] is also the
	// representative value used to query the forest for cell index i along
	// axis f: no split threshold lies strictly inside a cell, so any point
	// between a cell's bounding hyperplanes classifies identically.
	Levels [][]float64

	// NbCells is the total number of cells, Π (m_f+1).
	NbCells int

	strides   []int
	cellClass []int
}

// New builds the feature space for f, rejecting forests whose induced grid
// would exceed maxCells. Pass DefaultMaxCells absent a caller-specific
// ceiling.
func New(f ensemble.Forest, maxCells int) (*FeatureSpace, error) {
	if err := ensemble.Validate(f); err != nil {
		return nil, err
	}

	levels := collectLevels(f)

	nbCells := 1
	for _, lv := range levels {
		nbCells *= len(lv)
		if nbCells > maxCells {
			return nil, ErrGridTooLarge
		}
	}

	fs := &FeatureSpace{
		Levels:    levels,
		NbCells:   nbCells,
		strides:   computeStrides(levels),
		cellClass: make([]int, nbCells),
	}
	fs.enumerateCells(f)
	return fs, nil
}

// NbFeatures is the dimensionality of the grid.
func (fs *FeatureSpace) NbFeatures() int { return len(fs.Levels) }

// PossibleRegions is an informational sizing diagnostic, not a gate: the
// product across features of n_f*(n_f+1)/2 where n_f is the cell count
// along axis f, i.e. the count of distinct contiguous index ranges
// [lo_f, hi_f] per axis, and so an upper bound on how many distinct
// regions the memo could ever be asked to solve. Returned as float64 since
// it overflows int well before the cell-count ceiling does on grids with
// several high-cardinality features.
func (fs *FeatureSpace) PossibleRegions() float64 {
	total := 1.0
	for _, lv := range fs.Levels {
		n := float64(len(lv))
		total *= n * (n + 1) / 2
	}
	return total
}

// CellClass is the precomputed majority class of cell index.
func (fs *FeatureSpace) CellClass(index int) int { return fs.cellClass[index] }

// collectLevels gathers, per feature, the distinct split thresholds used by
// any internal node across every tree in the forest, sorts them ascending,
// and appends a +Inf sentinel.
func collectLevels(f ensemble.Forest) [][]float64 {
	sets := make([]map[float64]struct{}, f.NbFeatures)
	for i := range sets {
		sets[i] = make(map[float64]struct{})
	}

	for _, t := range f.Trees {
		for _, n := range t.Nodes {
			if in, ok := n.(*ensemble.InternalNode); ok {
				sets[in.Feature][in.Threshold] = struct{}{}
			}
		}
	}

	levels := make([][]float64, f.NbFeatures)
	for i, set := range sets {
		lv := make([]float64, 0, len(set)+1)
		for t := range set {
			lv = append(lv, t)
		}
		sort.Float64s(lv)
		levels[i] = append(lv, math.Inf(1))
	}
	return levels
}

// computeStrides implements s_{F-1} = 1, s_f = s_{f+1} * (m_{f+1}+1): the
// recurrence that keeps cell-index round trips invariant.
func computeStrides(levels [][]float64) []int {
	f := len(levels)
	strides := make([]int, f)
	strides[f-1] = 1
	for i := f - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * len(levels[i+1])
	}
	return strides
}

// enumerateCells walks a depth-F recursion: at depth k it iterates level
// index i over [0, m_k], accumulating the linear cell index, and at depth
// F queries the forest's majority class at the per-axis representative
// point.
func (fs *FeatureSpace) enumerateCells(f ensemble.Forest) {
	rep := make([]float64, len(fs.Levels))
	fs.enumerate(f, 0, 0, rep)
}

func (fs *FeatureSpace) enumerate(f ensemble.Forest, depth, index int, rep []float64) {
	if depth == len(fs.Levels) {
		fs.cellClass[index] = f.MajorityClass(rep)
		return
	}
	for i, v := range fs.Levels[depth] {
		rep[depth] = v
		fs.enumerate(f, depth+1, index+fs.strides[depth]*i, rep)
	}
}
