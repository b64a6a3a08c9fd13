package ensemble

import "errors"

// Sentinel errors for malformed forests. Validation never wraps these with
// fmt.Errorf: a sentinel is enough context for a caller to act on, and
// errors.Is comparisons stay cheap.
var (
	// ErrNoFeatures indicates a forest with zero features.
	ErrNoFeatures = errors.New("ensemble: forest has zero features")

	// ErrNoClasses indicates a forest with zero classes.
	ErrNoClasses = errors.New("ensemble: forest has zero classes")

	// ErrNoTrees indicates a forest with zero trees.
	ErrNoTrees = errors.New("ensemble: forest has zero trees")

	// ErrEmptyTree indicates a tree with zero nodes.
	ErrEmptyTree = errors.New("ensemble: tree has zero nodes")

	// ErrFeatureOutOfRange indicates an internal node's split feature is
	// outside [0, nb_features).
	ErrFeatureOutOfRange = errors.New("ensemble: split feature out of range")

	// ErrClassOutOfRange indicates a leaf's classification is outside
	// [0, nb_classes).
	ErrClassOutOfRange = errors.New("ensemble: classification out of range")

	// ErrChildOutOfRange indicates an internal node's left or right child
	// index does not address a node in the same tree.
	ErrChildOutOfRange = errors.New("ensemble: child index out of range")

	// ErrCyclicTree indicates a tree whose child references form a cycle,
	// so it is not the acyclic, single-parent graph a tree must be.
	ErrCyclicTree = errors.New("ensemble: tree contains a cycle")

	// ErrMultipleParents indicates a non-root node reachable from more than
	// one parent, violating the "each non-root node has exactly one
	// parent" invariant.
	ErrMultipleParents = errors.New("ensemble: node has more than one parent")

	// ErrUnreachableNode indicates a node in the tree's node list that no
	// path from the root reaches.
	ErrUnreachableNode = errors.New("ensemble: node unreachable from root")

	// ErrDepthMismatch indicates a child's depth is not parent depth + 1.
	ErrDepthMismatch = errors.New("ensemble: child depth does not follow parent depth")
)
