package parabox

import "fmt"

// Cell is a column/row position inside a grid. The origin is the top-left
// cell, with Row increasing downward.
type Cell struct {
	Col, Row int
}

// CellIndex is the linear encoding of a Cell. Index values are written into
// level files, so the encoding must never change.
type CellIndex int

// Grid is a square grid of Extent x Extent cells. Indices are assigned in 2x2
// tile groups so the four cells of a group are index-adjacent, which limits
// Extent to even values:
//
//	 0  1 |  4  5
//	 2  3 |  6  7
//	------+------
//	 8  9 | 12 13
//	10 11 | 14 15
type Grid struct {
	Extent int
}

// FaceGrid is the 4x4 grid of slots on the face of every box.
var FaceGrid = Grid{Extent: 4}

// NewGrid returns a grid with the given extent. The extent must be even and
// at least 2.
func NewGrid(extent int) (Grid, error) {
	g := Grid{Extent: extent}
	if err := g.check(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

func (g Grid) check() error {
	if g.Extent < 2 || g.Extent%2 != 0 {
		return fmt.Errorf("extent %d: %w", g.Extent, ErrInvalidGrid)
	}
	return nil
}

// Len returns the number of addressable cells.
func (g Grid) Len() int {
	return g.Extent * g.Extent
}

// Valid reports whether c lies inside the grid.
func (g Grid) Valid(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Extent && c.Row >= 0 && c.Row < g.Extent
}

// ValidIndex reports whether i addresses a cell of the grid.
func (g Grid) ValidIndex(i CellIndex) bool {
	return i >= 0 && int(i) < g.Len()
}

// Encode maps c to its cell index. Cells outside the grid fail with
// ErrInvalidAddress.
func (g Grid) Encode(c Cell) (CellIndex, error) {
	if err := g.check(); err != nil {
		return 0, err
	}
	if !g.Valid(c) {
		return 0, fmt.Errorf("encode (%d,%d) in %dx%d grid: %w", c.Col, c.Row, g.Extent, g.Extent, ErrInvalidAddress)
	}
	groupsPerRow := g.Extent / 2
	group := (c.Row/2)*groupsPerRow + c.Col/2
	within := (c.Row%2)*2 + c.Col%2
	return CellIndex(group*4 + within), nil
}

// MustEncode is like Encode but panics on an invalid cell. Intended for
// worlds built from literals.
func (g Grid) MustEncode(c Cell) CellIndex {
	i, err := g.Encode(c)
	if err != nil {
		panic(err)
	}
	return i
}

// Decode maps i back to its cell. Indices outside [0, Len) fail with
// ErrInvalidAddress.
func (g Grid) Decode(i CellIndex) (Cell, error) {
	if err := g.check(); err != nil {
		return Cell{}, err
	}
	if !g.ValidIndex(i) {
		return Cell{}, fmt.Errorf("decode %d in %dx%d grid: %w", i, g.Extent, g.Extent, ErrInvalidAddress)
	}
	groupsPerRow := g.Extent / 2
	group := int(i) / 4
	within := int(i) % 4
	return Cell{
		Col: (group%groupsPerRow)*2 + within%2,
		Row: (group/groupsPerRow)*2 + within/2,
	}, nil
}
