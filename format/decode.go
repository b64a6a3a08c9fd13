package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pedrosbmartins/born-again/ensemble"
)

// Decode reads the line-oriented tree-ensemble text format and returns the
// parsed forest. DATASET_NAME and MAX_TREE_DEPTH are accepted but ignored,
// since they are export-only fields. ENSEMBLE is accepted but not
// interpreted: the engine treats any input as a forest to reborn,
// regardless of what produced it. Node lines use "-1" as the sentinel
// value for fields a node's type does not carry (child indices and split
// feature for a leaf, classification for an internal node).
func Decode(r io.Reader) (ensemble.Forest, error) {
	sc := bufio.NewScanner(r)

	var (
		nbTrees, nbFeatures, nbClasses int
		haveNbTrees, haveNbFeatures    bool
		haveNbClasses                  bool
		trees                          []ensemble.Tree
	)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "DATASET_NAME:"), strings.HasPrefix(line, "ENSEMBLE:"):
			// accepted, not interpreted

		case strings.HasPrefix(line, "NB_TREES:"):
			v, err := parseHeaderInt(line, "NB_TREES:")
			if err != nil {
				return ensemble.Forest{}, err
			}
			nbTrees, haveNbTrees = v, true

		case strings.HasPrefix(line, "NB_FEATURES:"):
			v, err := parseHeaderInt(line, "NB_FEATURES:")
			if err != nil {
				return ensemble.Forest{}, err
			}
			nbFeatures, haveNbFeatures = v, true

		case strings.HasPrefix(line, "NB_CLASSES:"):
			v, err := parseHeaderInt(line, "NB_CLASSES:")
			if err != nil {
				return ensemble.Forest{}, err
			}
			nbClasses, haveNbClasses = v, true

		case strings.HasPrefix(line, "MAX_TREE_DEPTH:"):
			// export-only, ignored on import

		case strings.HasPrefix(line, "[TREE"):
			if !haveNbTrees || !haveNbFeatures || !haveNbClasses {
				return ensemble.Forest{}, ErrMissingHeader
			}
			t, err := decodeTree(sc)
			if err != nil {
				return ensemble.Forest{}, err
			}
			trees = append(trees, t)

		default:
			// free-form comment/description line: ignored
		}
	}
	if err := sc.Err(); err != nil {
		return ensemble.Forest{}, err
	}

	if !haveNbTrees || !haveNbFeatures || !haveNbClasses {
		return ensemble.Forest{}, ErrMissingHeader
	}
	if len(trees) != nbTrees {
		return ensemble.Forest{}, ErrTreeCountMismatch
	}

	return ensemble.Forest{Trees: trees, NbFeatures: nbFeatures, NbClasses: nbClasses}, nil
}

func parseHeaderInt(line, prefix string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, prefix)))
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrMalformedLine, line)
	}
	return v, nil
}

// decodeTree reads the NB_NODES line and that many node lines following a
// [TREE id] line already consumed by the caller.
func decodeTree(sc *bufio.Scanner) (ensemble.Tree, error) {
	if !sc.Scan() {
		return ensemble.Tree{}, ErrMissingHeader
	}
	line := strings.TrimSpace(sc.Text())
	if !strings.HasPrefix(line, "NB_NODES:") {
		return ensemble.Tree{}, ErrMissingHeader
	}
	nbNodes, err := parseHeaderInt(line, "NB_NODES:")
	if err != nil {
		return ensemble.Tree{}, err
	}

	nodes := make([]ensemble.Node, nbNodes)
	for i := 0; i < nbNodes; i++ {
		if !sc.Scan() {
			return ensemble.Tree{}, ErrNodeCountMismatch
		}
		n, err := decodeNode(sc.Text())
		if err != nil {
			return ensemble.Tree{}, err
		}
		if n.ID() < 0 || n.ID() >= nbNodes || nodes[n.ID()] != nil {
			return ensemble.Tree{}, ErrMalformedNode
		}
		nodes[n.ID()] = n
	}

	return ensemble.Tree{Nodes: nodes}, nil
}

// decodeNode parses one whitespace-separated node line:
//
//	<node_id> <LN|IN> <left_child> <right_child> <split_feature> <split_value> <depth> <class>
func decodeNode(line string) (ensemble.Node, error) {
	f := strings.Fields(line)
	if len(f) != 8 {
		return nil, ErrMalformedNode
	}

	id, err1 := strconv.Atoi(f[0])
	left, err2 := strconv.Atoi(f[2])
	right, err3 := strconv.Atoi(f[3])
	feature, err4 := strconv.Atoi(f[4])
	value, err5 := strconv.ParseFloat(f[5], 64)
	depth, err6 := strconv.Atoi(f[6])
	class, err7 := strconv.Atoi(f[7])
	for _, err := range []error{err1, err2, err3, err4, err5, err6, err7} {
		if err != nil {
			return nil, ErrMalformedNode
		}
	}

	switch f[1] {
	case "LN":
		return &ensemble.LeafNode{IDValue: id, DepthValue: depth, Class: class}, nil
	case "IN":
		return &ensemble.InternalNode{
			IDValue:    id,
			DepthValue: depth,
			Feature:    feature,
			Threshold:  value,
			Left:       left,
			Right:      right,
		}, nil
	default:
		return nil, ErrUnknownNodeType
	}
}
