/*
Package maze provides an evolving rectangular maze driven by the origin-shift
algorithm.

The maze is a spanning tree over a grid of cells, stored as one parent pointer
per cell aimed toward a distinguished origin cell, plus a wall flag per grid
edge. The set of open walls is always exactly the tree's edge set. Each Step
moves the origin to a random neighbor and re-roots the tree in constant time,
so repeated stepping perpetually reshuffles the maze without ever breaking its
perfect (connected, acyclic) structure.

The package includes wall and parent queries for external visualizers and an
ASCII rendering of the current state.
*/
package maze

import (
	"errors"
)

// Maze-related errors.
var (
	ErrInvalidDimension = errors.New("maze dimensions must be at least 1x1")
	ErrDegenerateGrid   = errors.New("grid has no valid move for the origin")
	ErrOutOfBounds      = errors.New("cell position out of maze bounds")
)

// Rand is the randomness capability Step draws from. *math/rand.Rand
// satisfies it; tests may inject a scripted source.
type Rand interface {
	// Intn returns a non-negative pseudo-random number in [0, n).
	Intn(n int) int
}

// Position is a cell coordinate in the maze grid.
type Position struct {
	Row int `json:"row"` // Row index, 0 at the top
	Col int `json:"col"` // Column index, 0 at the left
}

// OriginShiftMaze represents a rectangular maze whose spanning tree evolves
// as the origin performs a random walk.
type OriginShiftMaze struct {
	width     int      // Number of columns
	height    int      // Number of rows
	parents   []Parent // Per-cell parent pointer, row-major (col + row*width)
	horzWalls []bool   // Wall below cell (row, col), true = closed; col + row*width, row < height-1
	vertWalls []bool   // Wall right of cell (row, col), true = closed; col + row*(width-1), col < width-1
	origin    Position // Cell currently holding the Origin pointer
}

// New initializes a maze of the given dimensions with its comb-shaped initial
// tree: every cell points West to its row neighbor except column 0, which
// points North, and (0,0) is the origin. All vertical walls start open, all
// horizontal walls start closed except those in column 0.
func New(width, height int) (*OriginShiftMaze, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimension
	}

	parents := make([]Parent, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			switch {
			case col > 0:
				parents[col+row*width] = ToWest
			case row > 0:
				parents[col+row*width] = ToNorth
			default:
				parents[col+row*width] = Origin
			}
		}
	}

	horzWalls := make([]bool, width*(height-1))
	for i := range horzWalls {
		horzWalls[i] = i%width != 0
	}
	vertWalls := make([]bool, (width-1)*height)

	return &OriginShiftMaze{
		width:     width,
		height:    height,
		parents:   parents,
		horzWalls: horzWalls,
		vertWalls: vertWalls,
		origin:    Position{Row: 0, Col: 0},
	}, nil
}

// Width returns the number of columns in the maze.
func (m *OriginShiftMaze) Width() int {
	return m.width
}

// Height returns the number of rows in the maze.
func (m *OriginShiftMaze) Height() int {
	return m.height
}

// OriginPosition returns the cell the origin currently occupies.
func (m *OriginShiftMaze) OriginPosition() Position {
	return m.origin
}

// InBound checks whether a cell position lies inside the maze grid.
func (m *OriginShiftMaze) InBound(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// cellIndex maps a cell position to its row-major array index.
func (m *OriginShiftMaze) cellIndex(p Position) int {
	return p.Col + p.Row*m.width
}

// horzWallIndex maps a cell to the wall between it and the cell below it.
// Valid only for p.Row < height-1.
func (m *OriginShiftMaze) horzWallIndex(p Position) int {
	return p.Col + p.Row*m.width
}

// vertWallIndex maps a cell to the wall between it and the cell to its east.
// Valid only for p.Col < width-1.
func (m *OriginShiftMaze) vertWallIndex(p Position) int {
	return p.Col + p.Row*(m.width-1)
}

// HorizontalWallOpen reports whether the wall between cell (row, col) and
// cell (row+1, col) is open.
func (m *OriginShiftMaze) HorizontalWallOpen(row, col int) (bool, error) {
	if row < 0 || row >= m.height-1 || col < 0 || col >= m.width {
		return false, ErrOutOfBounds
	}
	return !m.horzWalls[m.horzWallIndex(Position{Row: row, Col: col})], nil
}

// VerticalWallOpen reports whether the wall between cell (row, col) and
// cell (row, col+1) is open.
func (m *OriginShiftMaze) VerticalWallOpen(row, col int) (bool, error) {
	if row < 0 || row >= m.height || col < 0 || col >= m.width-1 {
		return false, ErrOutOfBounds
	}
	return !m.vertWalls[m.vertWallIndex(Position{Row: row, Col: col})], nil
}

// ParentAt returns the parent pointer of cell (row, col).
func (m *OriginShiftMaze) ParentAt(row, col int) (Parent, error) {
	if !m.InBound(row, col) {
		return Origin, ErrOutOfBounds
	}
	return m.parents[m.cellIndex(Position{Row: row, Col: col})], nil
}

// Step moves the origin to a uniformly chosen in-bounds neighbor and updates
// the tree and wall flags so the maze stays a perfect spanning tree.
//
// Directions are drawn by rejection sampling: out-of-bounds draws are
// discarded and redrawn. Grids with fewer than 2 cells have no valid move
// and fail with ErrDegenerateGrid before any draw.
func (m *OriginShiftMaze) Step(rng Rand) error {
	if m.width*m.height < 2 {
		return ErrDegenerateGrid
	}

	var dir Direction
	var next Position
	for {
		dir = Direction(rng.Intn(4))
		dRow, dCol := dir.offset()
		candidate := Position{Row: m.origin.Row + dRow, Col: m.origin.Col + dCol}
		if m.InBound(candidate.Row, candidate.Col) {
			next = candidate
			break
		}
	}

	prev := m.origin

	// Open the traversed edge. The wall index belongs to whichever of the
	// two cells is north/west of the edge.
	switch dir {
	case North:
		m.horzWalls[m.horzWallIndex(next)] = false
	case South:
		m.horzWalls[m.horzWallIndex(prev)] = false
	case West:
		m.vertWalls[m.vertWallIndex(next)] = false
	case East:
		m.vertWalls[m.vertWallIndex(prev)] = false
	}

	// The next cell's old parent edge leaves the tree, unless the walk just
	// retraced that same edge in reverse.
	switch m.parents[m.cellIndex(next)] {
	case ToNorth:
		if dir != South {
			m.horzWalls[m.horzWallIndex(Position{Row: next.Row - 1, Col: next.Col})] = true
		}
	case ToSouth:
		if dir != North {
			m.horzWalls[m.horzWallIndex(next)] = true
		}
	case ToWest:
		if dir != East {
			m.vertWalls[m.vertWallIndex(Position{Row: next.Row, Col: next.Col - 1})] = true
		}
	case ToEast:
		if dir != West {
			m.vertWalls[m.vertWallIndex(next)] = true
		}
	}

	m.parents[m.cellIndex(prev)] = parentOf(dir)
	m.parents[m.cellIndex(next)] = Origin
	m.origin = next

	return nil
}

// Shuffle thoroughly randomizes the tree away from its initial comb shape by
// stepping the origin width*height*10 times.
func (m *OriginShiftMaze) Shuffle(rng Rand) error {
	if m.width*m.height < 2 {
		return ErrDegenerateGrid
	}
	for i := 0; i < m.width*m.height*10; i++ {
		if err := m.Step(rng); err != nil {
			return err
		}
	}
	return nil
}
