package format

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pedrosbmartins/born-again/ensemble"
)

// Encode writes f in the line-oriented tree-ensemble text format.
// datasetName and ensembleName are written verbatim into the DATASET_NAME
// and ENSEMBLE header fields; callers reborning a forest typically pass the
// source dataset's name and "BA" for the latter.
func Encode(w io.Writer, f ensemble.Forest, datasetName, ensembleName string) error {
	bw := bufio.NewWriter(w)

	// MAX_TREE_DEPTH is the max node depth of the first tree, computed by
	// walking its emitted nodes rather than threaded through from the
	// engine's own depth result (the two agree for a single reborn tree).
	maxDepth := 0
	if len(f.Trees) > 0 {
		maxDepth = f.Trees[0].Depth()
	}

	fmt.Fprintf(bw, "DATASET_NAME: %s\n", datasetName)
	fmt.Fprintf(bw, "ENSEMBLE: %s\n", ensembleName)
	fmt.Fprintf(bw, "NB_TREES: %d\n", len(f.Trees))
	fmt.Fprintf(bw, "NB_FEATURES: %d\n", f.NbFeatures)
	fmt.Fprintf(bw, "NB_CLASSES: %d\n", f.NbClasses)
	fmt.Fprintf(bw, "MAX_TREE_DEPTH: %d\n", maxDepth)
	fmt.Fprintln(bw)

	for id, t := range f.Trees {
		fmt.Fprintf(bw, "[TREE %d]\n", id)
		fmt.Fprintf(bw, "NB_NODES: %d\n", len(t.Nodes))
		for _, n := range t.Nodes {
			if err := encodeNode(bw, n); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

func encodeNode(bw *bufio.Writer, n ensemble.Node) error {
	switch v := n.(type) {
	case *ensemble.LeafNode:
		_, err := fmt.Fprintf(bw, "%d LN -1 -1 -1 -1 %d %d\n", v.IDValue, v.DepthValue, v.Class)
		return err
	case *ensemble.InternalNode:
		_, err := fmt.Fprintf(bw, "%d IN %d %d %d %s %d -1\n",
			v.IDValue, v.Left, v.Right, v.Feature, formatFloat(v.Threshold), v.DepthValue)
		return err
	default:
		return fmt.Errorf("format: %w", ErrUnknownNodeType)
	}
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}
