package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

// Strategy picks the next cell to fire at on the enemy grid.
type Strategy interface {
	NextTarget(ctx context.Context, enemy entity.GridView) (entity.Coordinate, error)
}

type shotReporter interface {
	ShotFired(name string, target entity.Coordinate, result entity.ShotResult)
	ShotRejected(name string, target entity.Coordinate, err error)
}

// Player is one side of a match: its own grid, the enemy grid it fires at,
// and the strategy choosing targets.
type Player struct {
	logger   *slog.Logger
	name     string
	strategy Strategy
	reporter shotReporter

	own   *entity.Grid
	enemy *entity.Grid

	shots int
}

func NewPlayer(logger *slog.Logger, name string, strategy Strategy, own, enemy *entity.Grid, reporter shotReporter) *Player {
	return &Player{
		logger:   logger.With("component", "player", "player", name),
		name:     name,
		strategy: strategy,
		reporter: reporter,
		own:      own,
		enemy:    enemy,
	}
}

func (that *Player) Name() string {
	return that.name
}

func (that *Player) Grid() *entity.Grid {
	return that.own
}

func (that *Player) EnemyGrid() *entity.Grid {
	return that.enemy
}

// Shots returns the number of resolved shots fired so far.
func (that *Player) Shots() int {
	return that.shots
}

// Move fires until one shot resolves. Targets off the board or already shot
// are reported and a new target is requested, with no retry limit.
func (that *Player) Move(ctx context.Context) (entity.ShotResult, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entity.ShotMiss, fmt.Errorf("move interrupted: %w", err)
		}

		target, err := that.strategy.NextTarget(ctx, that.enemy)
		if err != nil {
			return entity.ShotMiss, fmt.Errorf("failed to pick target: %w", err)
		}

		afloat := that.enemy.Afloat()

		result, err := that.enemy.Shoot(target)
		if errors.Is(err, apperror.ErrShotOutOfBounds) || errors.Is(err, apperror.ErrAlreadyShot) {
			that.logger.Debug("shot rejected", "target", target.String(), "error", err)
			that.reporter.ShotRejected(that.name, target, err)
			continue
		}

		if err != nil {
			return entity.ShotMiss, fmt.Errorf("failed to shoot: %w", err)
		}

		that.shots++
		that.logger.Debug("shot resolved", "target", target.String(), "result", result.String())

		if that.enemy.Afloat() < afloat {
			that.logger.Info("vessel sunk", "target", target.String(), "enemy_afloat", that.enemy.Afloat())
		}

		that.reporter.ShotFired(that.name, target, result)

		return result, nil
	}
}
