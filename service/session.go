// Package service implements the application services sitting between the
// HTTP controllers and the maze core.
package service

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/beka-birhanu/origin-shift-api/maze"
	"github.com/beka-birhanu/origin-shift-api/service/i"
	"github.com/google/uuid"
)

const defaultMaxDimension = 64

// Service-related errors.
var (
	ErrSessionNotFound   = errors.New("maze session not found")
	ErrDimensionTooLarge = errors.New("maze dimension exceeds the configured maximum")
)

// MazeSessionManager keeps the live mazes in memory. Mazes are never
// persisted; a session exists only for the lifetime of the process.
type MazeSessionManager struct {
	sessions     map[uuid.UUID]*session
	mazeFactory  func(width, height int) (i.Maze, error)
	maxDimension int
	logger       *log.Logger
	sync.RWMutex
}

// session pairs a live maze with its private random source so every session
// replays deterministically from its seed.
type session struct {
	maze i.Maze
	rng  *rand.Rand
	seed int64
}

// Config holds the dependencies for a MazeSessionManager.
type Config struct {
	MazeFactory  func(width, height int) (i.Maze, error)
	MaxDimension int
	Logger       *log.Logger
}

// NewMazeSessionManager creates a MazeSessionManager from the given config.
func NewMazeSessionManager(c *Config) (*MazeSessionManager, error) {
	if c.MazeFactory == nil {
		return nil, errors.New("maze factory is required")
	}

	maxDimension := c.MaxDimension
	if maxDimension <= 0 {
		maxDimension = defaultMaxDimension
	}

	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &MazeSessionManager{
		sessions:     make(map[uuid.UUID]*session),
		mazeFactory:  c.MazeFactory,
		maxDimension: maxDimension,
		logger:       logger,
	}, nil
}

// Create makes a new maze session and returns its ID. A zero seed picks one
// from the clock; shuffled pre-randomizes the comb tree.
func (sm *MazeSessionManager) Create(width, height int, seed int64, shuffled bool) (uuid.UUID, error) {
	if width > sm.maxDimension || height > sm.maxDimension {
		return uuid.Nil, ErrDimensionTooLarge
	}

	m, err := sm.mazeFactory(width, height)
	if err != nil {
		return uuid.Nil, err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &session{
		maze: m,
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}

	if shuffled {
		if err := m.Shuffle(s.rng); err != nil {
			return uuid.Nil, err
		}
	}

	id := uuid.New()
	sm.Lock()
	sm.sessions[id] = s
	sm.Unlock()

	sm.logger.Printf("Created maze session %s (%dx%d, seed=%d, shuffled=%t)", id, width, height, seed, shuffled)
	return id, nil
}

// Step advances the session's maze by one origin move.
func (sm *MazeSessionManager) Step(id uuid.UUID) error {
	sm.Lock()
	defer sm.Unlock()

	s, ok := sm.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	return s.maze.Step(s.rng)
}

// Shuffle randomizes the session's maze.
func (sm *MazeSessionManager) Shuffle(id uuid.UUID) error {
	sm.Lock()
	defer sm.Unlock()

	s, ok := sm.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	return s.maze.Shuffle(s.rng)
}

// Render returns the ASCII snapshot of the session's maze.
func (sm *MazeSessionManager) Render(id uuid.UUID, showParents bool) (string, error) {
	sm.RLock()
	defer sm.RUnlock()

	s, ok := sm.sessions[id]
	if !ok {
		return "", ErrSessionNotFound
	}
	return s.maze.Render(showParents), nil
}

// Walls returns the bulk wall state of the session's maze for visualizers
// polling between steps.
func (sm *MazeSessionManager) Walls(id uuid.UUID) (*i.WallSnapshot, error) {
	sm.RLock()
	defer sm.RUnlock()

	s, ok := sm.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	m := s.maze
	snapshot := &i.WallSnapshot{
		Width:      m.Width(),
		Height:     m.Height(),
		Horizontal: make([][]bool, 0, m.Height()-1),
		Vertical:   make([][]bool, 0, m.Height()),
		Origin:     m.OriginPosition(),
	}

	for row := 0; row < m.Height()-1; row++ {
		walls := make([]bool, m.Width())
		for col := range walls {
			open, err := m.HorizontalWallOpen(row, col)
			if err != nil {
				return nil, fmt.Errorf("unexpected error: %w", err)
			}
			walls[col] = open
		}
		snapshot.Horizontal = append(snapshot.Horizontal, walls)
	}
	for row := 0; row < m.Height(); row++ {
		walls := make([]bool, m.Width()-1)
		for col := range walls {
			open, err := m.VerticalWallOpen(row, col)
			if err != nil {
				return nil, fmt.Errorf("unexpected error: %w", err)
			}
			walls[col] = open
		}
		snapshot.Vertical = append(snapshot.Vertical, walls)
	}

	return snapshot, nil
}

// Origin returns the current origin cell of the session's maze.
func (sm *MazeSessionManager) Origin(id uuid.UUID) (maze.Position, error) {
	sm.RLock()
	defer sm.RUnlock()

	s, ok := sm.sessions[id]
	if !ok {
		return maze.Position{}, ErrSessionNotFound
	}
	return s.maze.OriginPosition(), nil
}

// End discards the session.
func (sm *MazeSessionManager) End(id uuid.UUID) error {
	sm.Lock()
	defer sm.Unlock()

	if _, ok := sm.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(sm.sessions, id)
	sm.logger.Printf("Ended maze session %s", id)
	return nil
}
