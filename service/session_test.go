package service

import (
	"log"
	"os"
	"testing"

	"github.com/beka-birhanu/origin-shift-api/maze"
	"github.com/beka-birhanu/origin-shift-api/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, maxDimension int) *MazeSessionManager {
	t.Helper()
	sm, err := NewMazeSessionManager(&Config{
		MazeFactory: func(width, height int) (i.Maze, error) {
			return maze.New(width, height)
		},
		MaxDimension: maxDimension,
		Logger:       log.New(os.Stdout, "[TEST] ", log.LstdFlags),
	})
	require.NoError(t, err)
	return sm
}

func TestNewMazeSessionManager(t *testing.T) {
	t.Run("requires a maze factory", func(t *testing.T) {
		_, err := NewMazeSessionManager(&Config{})
		assert.Error(t, err)
	})

	t.Run("defaults optional config", func(t *testing.T) {
		sm, err := NewMazeSessionManager(&Config{
			MazeFactory: func(width, height int) (i.Maze, error) {
				return maze.New(width, height)
			},
		})
		require.NoError(t, err)
		assert.Equal(t, defaultMaxDimension, sm.maxDimension)
		assert.NotNil(t, sm.logger)
	})
}

func TestCreate(t *testing.T) {
	sm := newTestManager(t, 16)

	t.Run("creates a comb maze", func(t *testing.T) {
		id, err := sm.Create(3, 3, 1, false)
		require.NoError(t, err)

		render, err := sm.Render(id, false)
		require.NoError(t, err)
		reference, err := maze.New(3, 3)
		require.NoError(t, err)
		assert.Equal(t, reference.Render(false), render)

		origin, err := sm.Origin(id)
		require.NoError(t, err)
		assert.Equal(t, maze.Position{Row: 0, Col: 0}, origin)
	})

	t.Run("creates a pre-shuffled maze", func(t *testing.T) {
		id, err := sm.Create(4, 4, 7, true)
		require.NoError(t, err)

		render, err := sm.Render(id, false)
		require.NoError(t, err)
		reference, err := maze.New(4, 4)
		require.NoError(t, err)
		assert.NotEqual(t, reference.Render(false), render)
	})

	t.Run("rejects oversized dimensions", func(t *testing.T) {
		_, err := sm.Create(17, 3, 1, false)
		assert.ErrorIs(t, err, ErrDimensionTooLarge)
		_, err = sm.Create(3, 17, 1, false)
		assert.ErrorIs(t, err, ErrDimensionTooLarge)
	})

	t.Run("propagates factory errors", func(t *testing.T) {
		_, err := sm.Create(0, 3, 1, false)
		assert.ErrorIs(t, err, maze.ErrInvalidDimension)
	})
}

func TestSessionsAreDeterministicPerSeed(t *testing.T) {
	sm := newTestManager(t, 16)

	a, err := sm.Create(6, 5, 99, false)
	require.NoError(t, err)
	b, err := sm.Create(6, 5, 99, false)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		require.NoError(t, sm.Step(a))
		require.NoError(t, sm.Step(b))
	}

	renderA, err := sm.Render(a, true)
	require.NoError(t, err)
	renderB, err := sm.Render(b, true)
	require.NoError(t, err)
	assert.Equal(t, renderA, renderB)
}

func TestWalls(t *testing.T) {
	sm := newTestManager(t, 16)
	id, err := sm.Create(3, 2, 1, false)
	require.NoError(t, err)

	snapshot, err := sm.Walls(id)
	require.NoError(t, err)

	assert.Equal(t, 3, snapshot.Width)
	assert.Equal(t, 2, snapshot.Height)
	assert.Equal(t, maze.Position{Row: 0, Col: 0}, snapshot.Origin)

	// Comb layout: horizontal walls open only in column 0, vertical all open.
	require.Len(t, snapshot.Horizontal, 1)
	assert.Equal(t, []bool{true, false, false}, snapshot.Horizontal[0])
	require.Len(t, snapshot.Vertical, 2)
	for _, row := range snapshot.Vertical {
		assert.Equal(t, []bool{true, true}, row)
	}
}

func TestSessionLifecycle(t *testing.T) {
	sm := newTestManager(t, 16)
	id, err := sm.Create(4, 4, 3, false)
	require.NoError(t, err)

	require.NoError(t, sm.Step(id))
	require.NoError(t, sm.Shuffle(id))
	require.NoError(t, sm.End(id))

	assert.ErrorIs(t, sm.Step(id), ErrSessionNotFound)
	assert.ErrorIs(t, sm.End(id), ErrSessionNotFound)
	_, err = sm.Render(id, false)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = sm.Walls(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = sm.Origin(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUnknownSession(t *testing.T) {
	sm := newTestManager(t, 16)
	assert.ErrorIs(t, sm.Step(uuid.New()), ErrSessionNotFound)
	assert.ErrorIs(t, sm.Shuffle(uuid.New()), ErrSessionNotFound)
}
