package i

import (
	"github.com/beka-birhanu/origin-shift-api/maze"
)

// Maze is the evolving spanning-tree maze a session drives.
type Maze interface {
	// Step moves the origin to a random neighbor, keeping the maze perfect.
	Step(rng maze.Rand) error

	// Shuffle randomizes the tree with width*height*10 steps.
	Shuffle(rng maze.Rand) error

	// Render returns an ASCII snapshot; showParents adds the pointer glyphs.
	Render(showParents bool) string

	// HorizontalWallOpen reports whether the wall below cell (row, col) is open.
	HorizontalWallOpen(row, col int) (bool, error)

	// VerticalWallOpen reports whether the wall east of cell (row, col) is open.
	VerticalWallOpen(row, col int) (bool, error)

	// OriginPosition returns the cell the origin currently occupies.
	OriginPosition() maze.Position

	Width() int
	Height() int
}
