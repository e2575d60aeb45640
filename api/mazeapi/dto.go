// Package mazeapi exposes maze sessions over HTTP: creation, stepping, and
// the read-only queries a visualizer polls between steps.
package mazeapi

import (
	"github.com/beka-birhanu/origin-shift-api/maze"
)

// CreateMazeRequest represents a request to create a new maze session.
type CreateMazeRequest struct {
	Width  int `json:"width" binding:"required,min=1"`
	Height int `json:"height" binding:"required,min=1"`

	// Seed drives the session's random walk; zero means pick one from the
	// clock. Equal seeds on equal dimensions replay identical mazes.
	Seed int64 `json:"seed"`

	// Shuffled pre-randomizes the maze away from its comb-shaped initial tree.
	Shuffled bool `json:"shuffled"`
}

// CreateMazeResponse carries the new session's ID and the token that grants
// its mutating routes.
type CreateMazeResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// MazeStateResponse is the textual snapshot of a maze session.
type MazeStateResponse struct {
	ID     string        `json:"id"`
	Render string        `json:"render"`
	Origin maze.Position `json:"origin"`
}

// OriginResponse carries the maze's current origin cell.
type OriginResponse struct {
	Origin maze.Position `json:"origin"`
}
