// Package bornagain is the born-again optimization engine: the
// dynamic-programming search that proves a depth-optimal axis-aligned
// decision tree equivalent to a random forest and materializes it. It is
// synchronous and single-threaded; nothing in this package performs I/O or
// touches a goroutine.
package bornagain

import (
	"github.com/pedrosbmartins/born-again/ensemble"
	"github.com/pedrosbmartins/born-again/featurespace"
)

// BuildOptimalTree runs the full pipeline on an already-parsed forest:
// validate, build the feature space, run the depth optimizer to
// completion, then materialize the reborn tree. maxCells bounds the
// induced grid size; pass featurespace.DefaultMaxCells absent a
// caller-specific ceiling.
func BuildOptimalTree(f ensemble.Forest, maxCells int) (ensemble.Tree, error) {
	fs, err := featurespace.New(f, maxCells)
	if err != nil {
		return ensemble.Tree{}, err
	}

	opt := NewOptimizer(fs)
	opt.Optimize(0, fs.NbCells-1)

	return Materialize(fs, opt)
}
