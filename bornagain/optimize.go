package bornagain

import (
	"math"

	"github.com/pedrosbmartins/born-again/featurespace"
)

// Optimizer runs the recursive search that proves, for a region of cells,
// the minimum depth of any axis-aligned binary decision tree that labels
// every cell in the region with that cell's precomputed class, filling the
// region memo as it goes.
type Optimizer struct {
	fs   *featurespace.FeatureSpace
	memo *Memo
}

// NewOptimizer builds an optimizer with a freshly allocated, empty memo
// sized for fs.
func NewOptimizer(fs *featurespace.FeatureSpace) *Optimizer {
	return &Optimizer{fs: fs, memo: NewMemo(fs)}
}

// Memo exposes the region table. It is mutated only by Optimize and is
// safe to read once the top-level call on (0, NbCells-1) has returned.
func (o *Optimizer) Memo() *Memo { return o.memo }

// Optimize returns the minimum equivalent-tree depth for the region
// [lo, hi]. Calling it again on the same region after the top-level call
// has completed returns the cached value without further recursion.
func (o *Optimizer) Optimize(lo, hi int) int {
	if lo == hi {
		return 0
	}

	hash := o.fs.RegionHash(lo, hi)
	if d, ok := o.memo.Get(lo, hash); ok {
		return d
	}

	bestLB := 0
	bestUB := math.MaxInt

	for f := 0; f < o.fs.NbFeatures(); f++ {
		rLo, rHi := o.fs.AxisRange(lo, hi, f)
		if rLo == rHi {
			continue
		}

		loL, hiL := rLo, rHi
		for loL < hiL && bestLB < bestUB {
			l := (loL + hiL) / 2

			leftHi := o.fs.ShiftHi(hi, f, l, rHi)
			dL := o.Optimize(lo, leftHi)

			rightLo := o.fs.ShiftLo(lo, f, l+1, rLo)
			dR := o.Optimize(rightLo, hi)

			if dL == 0 && dR == 0 {
				if o.fs.CellClass(lo) == o.fs.CellClass(hi) {
					o.memo.Set(lo, hash, 0)
					return 0
				}
				o.memo.Set(lo, hash, 1)
				return 1
			}

			if dL > bestLB {
				bestLB = dL
			}
			if dR > bestLB {
				bestLB = dR
			}

			if cand := 1 + max(dL, dR); cand < bestUB {
				bestUB = cand
			}

			if 1+dL >= bestUB {
				hiL = l
			}
			if 1+dR >= bestUB {
				loL = l + 1
			}
		}
	}

	o.memo.Set(lo, hash, bestUB)
	return bestUB
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
