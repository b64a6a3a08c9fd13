package bornagain

import "errors"

// ErrMaterializeInvariant indicates the tree materializer's feature/split
// scan finished without finding a split that reproduces the depth-optimal
// value already proved for a region. The scan must find a witness whenever
// the memo claims a finite depth, so reaching this path means the memo and
// the scan have gone out of sync: a bug, not a reportable input error.
var ErrMaterializeInvariant = errors.New("bornagain: no split reproduces the memoized optimal depth")
