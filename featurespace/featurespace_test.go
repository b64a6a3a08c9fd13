package featurespace_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pedrosbmartins/born-again/ensemble"
	"github.com/pedrosbmartins/born-again/featurespace"
)

func stump(feature int, threshold float64, leftClass, rightClass int) ensemble.Tree {
	return ensemble.Tree{
		Nodes: []ensemble.Node{
			&ensemble.InternalNode{IDValue: 0, DepthValue: 0, Feature: feature, Threshold: threshold, Left: 1, Right: 2},
			&ensemble.LeafNode{IDValue: 1, DepthValue: 1, Class: leftClass},
			&ensemble.LeafNode{IDValue: 2, DepthValue: 1, Class: rightClass},
		},
	}
}

func TestNewSingleFeature(t *testing.T) {
	f := ensemble.Forest{NbFeatures: 1, NbClasses: 2, Trees: []ensemble.Tree{stump(0, 0.5, 0, 1)}}

	fs, err := featurespace.New(f, featurespace.DefaultMaxCells)
	require.NoError(t, err)

	require.Equal(t, 2, fs.NbCells)
	require.Len(t, fs.Levels, 1)
	require.Equal(t, 0.5, fs.Levels[0][0])
	require.True(t, math.IsInf(fs.Levels[0][1], 1))

	require.Equal(t, 0, fs.CellClass(0))
	require.Equal(t, 1, fs.CellClass(1))
}

func TestNewTwoFeatures(t *testing.T) {
	// Majority partitions the plane: (x<=0,y<=0)->A(=0), (x<=0,y>0)->B(=1),
	// (x>0,y<=0)->B(=1), (x>0,y>0)->A(=0). Thresholds both at 0.
	tx := ensemble.Tree{Nodes: []ensemble.Node{
		&ensemble.InternalNode{IDValue: 0, DepthValue: 0, Feature: 0, Threshold: 0, Left: 1, Right: 2},
		&ensemble.InternalNode{IDValue: 1, DepthValue: 1, Feature: 1, Threshold: 0, Left: 3, Right: 4},
		&ensemble.InternalNode{IDValue: 2, DepthValue: 1, Feature: 1, Threshold: 0, Left: 5, Right: 6},
		&ensemble.LeafNode{IDValue: 3, DepthValue: 2, Class: 0},
		&ensemble.LeafNode{IDValue: 4, DepthValue: 2, Class: 1},
		&ensemble.LeafNode{IDValue: 5, DepthValue: 2, Class: 1},
		&ensemble.LeafNode{IDValue: 6, DepthValue: 2, Class: 0},
	}}

	f := ensemble.Forest{NbFeatures: 2, NbClasses: 2, Trees: []ensemble.Tree{tx}}
	fs, err := featurespace.New(f, featurespace.DefaultMaxCells)
	require.NoError(t, err)

	require.Equal(t, 4, fs.NbCells)
	require.Equal(t, 2, fs.NbFeatures())

	// strides: s_1=1, s_0 = 1 * len(levels[1]) = 2
	// cell(x=0,y=0) -> coords (0,0) -> index 0 -> class 0
	// cell(x=0,y=1) -> coords (0,1) -> index 1 -> class 1
	// cell(x=1,y=0) -> coords (1,0) -> index 2 -> class 1
	// cell(x=1,y=1) -> coords (1,1) -> index 3 -> class 0
	require.Equal(t, 0, fs.CellClass(0))
	require.Equal(t, 1, fs.CellClass(1))
	require.Equal(t, 1, fs.CellClass(2))
	require.Equal(t, 0, fs.CellClass(3))
}

func TestCellCoordsIndexRoundTrip(t *testing.T) {
	tx := ensemble.Tree{Nodes: []ensemble.Node{
		&ensemble.InternalNode{IDValue: 0, DepthValue: 0, Feature: 0, Threshold: 0, Left: 1, Right: 2},
		&ensemble.InternalNode{IDValue: 1, DepthValue: 1, Feature: 1, Threshold: 0, Left: 3, Right: 4},
		&ensemble.InternalNode{IDValue: 2, DepthValue: 1, Feature: 1, Threshold: 1, Left: 5, Right: 6},
		&ensemble.LeafNode{IDValue: 3, DepthValue: 2, Class: 0},
		&ensemble.LeafNode{IDValue: 4, DepthValue: 2, Class: 1},
		&ensemble.LeafNode{IDValue: 5, DepthValue: 2, Class: 1},
		&ensemble.LeafNode{IDValue: 6, DepthValue: 2, Class: 0},
	}}
	f := ensemble.Forest{NbFeatures: 2, NbClasses: 2, Trees: []ensemble.Tree{tx}}
	fs, err := featurespace.New(f, featurespace.DefaultMaxCells)
	require.NoError(t, err)

	for i := 0; i < fs.NbCells; i++ {
		coords := fs.CellCoords(i)
		require.Equal(t, i, fs.CellIndex(coords))
	}
}

func TestRegionHashSingleAxis(t *testing.T) {
	f := ensemble.Forest{NbFeatures: 1, NbClasses: 2, Trees: []ensemble.Tree{stump(0, 0.5, 0, 1)}}
	fs, err := featurespace.New(f, featurespace.DefaultMaxCells)
	require.NoError(t, err)

	require.Equal(t, 0, fs.RegionHash(0, 0))
	require.Equal(t, 1, fs.RegionHash(0, 1))
	require.Equal(t, 1, fs.MaxRegionHash(0))
}

func TestNewRejectsGridTooLarge(t *testing.T) {
	tx := ensemble.Tree{Nodes: []ensemble.Node{
		&ensemble.InternalNode{IDValue: 0, DepthValue: 0, Feature: 0, Threshold: 0, Left: 1, Right: 2},
		&ensemble.LeafNode{IDValue: 1, DepthValue: 1, Class: 0},
		&ensemble.LeafNode{IDValue: 2, DepthValue: 1, Class: 1},
	}}
	f := ensemble.Forest{NbFeatures: 1, NbClasses: 2, Trees: []ensemble.Tree{tx}}

	_, err := featurespace.New(f, 1)
	require.ErrorIs(t, err, featurespace.ErrGridTooLarge)
}

func TestNewPropagatesValidationError(t *testing.T) {
	f := ensemble.Forest{NbFeatures: 0, NbClasses: 2}
	_, err := featurespace.New(f, featurespace.DefaultMaxCells)
	require.ErrorIs(t, err, ensemble.ErrNoFeatures)
}

func TestPossibleRegionsSingleFeature(t *testing.T) {
	f := ensemble.Forest{NbFeatures: 1, NbClasses: 2, Trees: []ensemble.Tree{stump(0, 0.5, 0, 1)}}
	fs, err := featurespace.New(f, featurespace.DefaultMaxCells)
	require.NoError(t, err)

	// two cells along the single axis -> 2*3/2 == 3 contiguous ranges
	require.Equal(t, 3.0, fs.PossibleRegions())
}
