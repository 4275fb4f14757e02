package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))

func newGrid(t *testing.T, size int) *entity.Grid {
	t.Helper()

	grid, err := entity.NewGrid(size)
	require.NoError(t, err)

	return grid
}

func errorIs(target error) interface{} {
	return mock.MatchedBy(func(err error) bool {
		return errors.Is(err, target)
	})
}

func TestPlayer_Move(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns hit when the target holds a vessel", func(t *testing.T) {
		// Given: an enemy grid with a vessel at (0, 0) and a strategy aiming there
		own, enemy := newGrid(t, 6), newGrid(t, 6)
		vessel, err := entity.NewVessel(entity.NewCoordinate(0, 0), 1, entity.Horizontal)
		require.NoError(t, err)
		require.NoError(t, enemy.AddVessel(vessel))

		strategy := &mockStrategy{}
		strategy.On("NextTarget", mock.Anything, enemy).Return(entity.NewCoordinate(0, 0), nil).Once()

		reporter := &mockReporter{}
		reporter.On("ShotFired", "human", entity.NewCoordinate(0, 0), entity.ShotHit).Once()

		player := NewPlayer(discardLogger, "human", strategy, own, enemy, reporter)

		// When: the player moves
		result, err := player.Move(ctx)

		// Then: the shot is a hit and the enemy has nothing afloat
		require.NoError(t, err)
		assert.Equal(t, entity.ShotHit, result)
		assert.Equal(t, 0, enemy.Afloat())
		assert.Equal(t, 1, player.Shots())
		strategy.AssertExpectations(t)
		reporter.AssertExpectations(t)
	})

	t.Run("Retries after out of bounds and repeated targets", func(t *testing.T) {
		// Given: an enemy grid where (1, 1) was already shot
		own, enemy := newGrid(t, 6), newGrid(t, 6)
		_, err := enemy.Shoot(entity.NewCoordinate(1, 1))
		require.NoError(t, err)

		strategy := &mockStrategy{}
		strategy.On("NextTarget", mock.Anything, enemy).Return(entity.NewCoordinate(10, 10), nil).Once()
		strategy.On("NextTarget", mock.Anything, enemy).Return(entity.NewCoordinate(1, 1), nil).Once()
		strategy.On("NextTarget", mock.Anything, enemy).Return(entity.NewCoordinate(2, 2), nil).Once()

		reporter := &mockReporter{}
		reporter.On("ShotRejected", "bot", entity.NewCoordinate(10, 10), errorIs(apperror.ErrShotOutOfBounds)).Once()
		reporter.On("ShotRejected", "bot", entity.NewCoordinate(1, 1), errorIs(apperror.ErrAlreadyShot)).Once()
		reporter.On("ShotFired", "bot", entity.NewCoordinate(2, 2), entity.ShotMiss).Once()

		player := NewPlayer(discardLogger, "bot", strategy, own, enemy, reporter)

		// When: the player moves
		result, err := player.Move(ctx)

		// Then: both bad targets are reported and the third one resolves as a miss
		require.NoError(t, err)
		assert.Equal(t, entity.ShotMiss, result)
		assert.Equal(t, 1, player.Shots())
		strategy.AssertExpectations(t)
		reporter.AssertExpectations(t)
	})

	t.Run("Stops when the strategy fails", func(t *testing.T) {
		// Given: a strategy whose input is closed
		own, enemy := newGrid(t, 6), newGrid(t, 6)
		strategy := &mockStrategy{}
		strategy.On("NextTarget", mock.Anything, enemy).Return(entity.Coordinate{}, apperror.ErrInputClosed).Once()

		player := NewPlayer(discardLogger, "human", strategy, own, enemy, &mockReporter{})

		// When: the player moves
		_, err := player.Move(ctx)

		// Then: the error is returned
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Equal(t, 0, player.Shots())
	})

	t.Run("Stops when the context is cancelled", func(t *testing.T) {
		// Given: a cancelled context
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		strategy := &mockStrategy{}
		player := NewPlayer(discardLogger, "human", strategy, newGrid(t, 6), newGrid(t, 6), &mockReporter{})

		// When: the player moves
		_, err := player.Move(cancelled)

		// Then: context.Canceled is returned and no target was requested
		require.ErrorIs(t, err, context.Canceled)
		strategy.AssertNotCalled(t, "NextTarget", mock.Anything, mock.Anything)
	})
}
