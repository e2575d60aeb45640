package i

import (
	"github.com/beka-birhanu/origin-shift-api/maze"
	"github.com/google/uuid"
)

// WallSnapshot is the read-only wall state a visualizer polls after each
// step. Flags are true when the wall is open (passable).
type WallSnapshot struct {
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Horizontal [][]bool      `json:"horizontal"` // [row][col], Height-1 rows of Width walls
	Vertical   [][]bool      `json:"vertical"`   // [row][col], Height rows of Width-1 walls
	Origin     maze.Position `json:"origin"`
}

// MazeSessionManager owns the live mazes, keyed by session ID.
type MazeSessionManager interface {
	// Create makes a new maze session and returns its ID. A zero seed picks
	// one from the clock; shuffled pre-randomizes the comb tree.
	Create(width, height int, seed int64, shuffled bool) (uuid.UUID, error)

	// Step advances the session's maze by one origin move.
	Step(id uuid.UUID) error

	// Shuffle randomizes the session's maze.
	Shuffle(id uuid.UUID) error

	// Render returns the ASCII snapshot of the session's maze.
	Render(id uuid.UUID, showParents bool) (string, error)

	// Walls returns the bulk wall state of the session's maze.
	Walls(id uuid.UUID) (*WallSnapshot, error)

	// Origin returns the current origin cell of the session's maze.
	Origin(id uuid.UUID) (maze.Position, error)

	// End discards the session.
	End(id uuid.UUID) error
}
