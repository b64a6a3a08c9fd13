package featurespace

import "errors"

// ErrGridTooLarge indicates the product of (m_f+1) across all features
// exceeds the caller's configured cell-count ceiling. This check happens
// before the cell array is allocated, since the array is the hard memory
// ceiling of the whole engine.
var ErrGridTooLarge = errors.New("featurespace: cell grid exceeds configured ceiling")
