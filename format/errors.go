package format

import "errors"

// Sentinel errors for the tree-ensemble text format.
var (
	// ErrMissingHeader indicates one of NB_TREES/NB_FEATURES/NB_CLASSES
	// was never found before the first [TREE ...] block.
	ErrMissingHeader = errors.New("format: missing required header line")

	// ErrMalformedLine indicates a line did not match any recognized
	// pattern where one was required.
	ErrMalformedLine = errors.New("format: malformed line")

	// ErrMalformedNode indicates a node line did not have the expected
	// eight whitespace-separated fields or an unparsable numeric field.
	ErrMalformedNode = errors.New("format: malformed node line")

	// ErrNodeCountMismatch indicates a [TREE id] block's NB_NODES did not
	// match the number of node lines actually present.
	ErrNodeCountMismatch = errors.New("format: node count does not match NB_NODES")

	// ErrTreeCountMismatch indicates NB_TREES did not match the number of
	// [TREE ...] blocks actually present.
	ErrTreeCountMismatch = errors.New("format: tree count does not match NB_TREES")

	// ErrUnknownNodeType indicates a node line's type field was neither
	// LN nor IN.
	ErrUnknownNodeType = errors.New("format: node type must be LN or IN")
)
