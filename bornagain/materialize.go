package bornagain

import (
	"fmt"

	"github.com/pedrosbmartins/born-again/ensemble"
	"github.com/pedrosbmartins/born-again/featurespace"
)

// Materialize makes a second pass over the grid that reconstructs one
// concrete depth-optimal tree from opt's filled memo. It first calls
// opt.Optimize(0, fs.NbCells-1) itself: if the caller already ran it, this
// is a cheap cache hit (the memo is a cache); otherwise it fills the memo.
func Materialize(fs *featurespace.FeatureSpace, opt *Optimizer) (ensemble.Tree, error) {
	opt.Optimize(0, fs.NbCells-1)

	m := &materializer{fs: fs, opt: opt}
	if _, err := m.build(0, fs.NbCells-1, 0); err != nil {
		return ensemble.Tree{}, err
	}
	return ensemble.Tree{Nodes: m.nodes}, nil
}

type materializer struct {
	fs    *featurespace.FeatureSpace
	opt   *Optimizer
	nodes []ensemble.Node
}

// depthOf resolves the memoized depth of a region without recomputing the
// DP: a region collapsed to a single cell is 0 by construction, otherwise
// it is a pure memo read.
func (m *materializer) depthOf(lo, hi int) (int, bool) {
	if lo == hi {
		return 0, true
	}
	return m.opt.Memo().Get(lo, m.fs.RegionHash(lo, hi))
}

// build reconstructs the subtree for region [lo, hi] at the given depth,
// returning the id of its root node.
func (m *materializer) build(lo, hi, depth int) (int, error) {
	opt, ok := m.depthOf(lo, hi)
	if !ok {
		return 0, fmt.Errorf("%w: region (%d,%d) has no memoized depth", ErrMaterializeInvariant, lo, hi)
	}

	if opt == 0 {
		id := len(m.nodes)
		m.nodes = append(m.nodes, &ensemble.LeafNode{
			IDValue:    id,
			DepthValue: depth,
			Class:      m.fs.CellClass(lo),
		})
		return id, nil
	}

	for f := 0; f < m.fs.NbFeatures(); f++ {
		rLo, rHi := m.fs.AxisRange(lo, hi, f)

		for l := rLo; l < rHi; l++ {
			leftHi := m.fs.ShiftHi(hi, f, l, rHi)
			rightLo := m.fs.ShiftLo(lo, f, l+1, rLo)

			dL, okL := m.depthOf(lo, leftHi)
			dR, okR := m.depthOf(rightLo, hi)
			if !okL || !okR || 1+max(dL, dR) != opt {
				continue
			}

			id := len(m.nodes)
			m.nodes = append(m.nodes, nil)

			leftID, err := m.build(lo, leftHi, depth+1)
			if err != nil {
				return 0, err
			}
			rightID, err := m.build(rightLo, hi, depth+1)
			if err != nil {
				return 0, err
			}

			m.nodes[id] = &ensemble.InternalNode{
				IDValue:    id,
				DepthValue: depth,
				Feature:    f,
				Threshold:  m.fs.Levels[f][l],
				Left:       leftID,
				Right:      rightID,
			}
			return id, nil
		}
	}

	return 0, fmt.Errorf("%w: region (%d,%d) claims depth %d", ErrMaterializeInvariant, lo, hi, opt)
}
