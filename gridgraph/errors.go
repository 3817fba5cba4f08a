package gridgraph

import "errors"

// ErrStartOutOfRange indicates a flood fill starting outside the grid.
var ErrStartOutOfRange = errors.New("gridgraph: start position out of range")
