package grid

// Pos is a zero-based cell position. Col is the horizontal coordinate
// (0 ≤ Col < width), Row the vertical one (0 ≤ Row < height).
type Pos struct {
	Col, Row int
}

// Offset is a signed displacement relative to an anchor position.
type Offset struct {
	DX, DY int
}

// CellMapper converts one input character at pos into a cell value.
// A returned error aborts FromText and is passed through unchanged.
type CellMapper[T any] func(r rune, pos Pos) (T, error)

// Connectivity selects neighbour offsets: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	conn4Offsets = []Offset{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = []Offset{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns a fresh copy of the neighbour table for c.
// Unknown values fall back to Conn4.
func (c Connectivity) Offsets() []Offset {
	src := conn4Offsets
	if c == Conn8 {
		src = conn8Offsets
	}
	out := make([]Offset, len(src))
	copy(out, src)

	return out
}

// offsets returns the shared table; callers must not modify it.
func (c Connectivity) offsets() []Offset {
	if c == Conn8 {
		return conn8Offsets
	}

	return conn4Offsets
}
