package fleet

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

// Placer lays a fleet out on a fresh grid at random.
type Placer struct {
	logger *slog.Logger
	rng    *rand.Rand

	fleet             []int
	placementAttempts int
	boardAttempts     int
}

func NewPlacer(logger *slog.Logger, rng *rand.Rand, fleet []int, placementAttempts, boardAttempts int) *Placer {
	return &Placer{
		logger:            logger.With("component", "fleet"),
		rng:               rng,
		fleet:             fleet,
		placementAttempts: placementAttempts,
		boardAttempts:     boardAttempts,
	}
}

// Populate builds a grid of the given size carrying the whole fleet. Each
// vessel gets placementAttempts random tries; when one runs out the board is
// thrown away and started again, up to boardAttempts times.
func (that *Placer) Populate(size int, opts ...entity.GridOption) (*entity.Grid, error) {
	for attempt := 1; attempt <= that.boardAttempts; attempt++ {
		grid, err := entity.NewGrid(size, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create grid: %w", err)
		}

		placed, err := that.placeFleet(grid)
		if err != nil {
			return nil, err
		}

		if placed {
			that.logger.Debug("fleet placed", "size", size, "vessels", len(that.fleet), "attempt", attempt)
			return grid, nil
		}
	}

	return nil, fmt.Errorf("%w: %d vessels on %dx%d after %d boards",
		apperror.ErrFleetPlacement, len(that.fleet), size, size, that.boardAttempts)
}

func (that *Placer) placeFleet(grid *entity.Grid) (bool, error) {
	for _, length := range that.fleet {
		placed, err := that.placeVessel(grid, length)
		if err != nil || !placed {
			return false, err
		}
	}

	return true, nil
}

func (that *Placer) placeVessel(grid *entity.Grid, length int) (bool, error) {
	for attempt := 0; attempt < that.placementAttempts; attempt++ {
		origin := entity.NewCoordinate(that.rng.Intn(grid.Size()), that.rng.Intn(grid.Size()))
		orientation := entity.Orientation(that.rng.Intn(2))

		vessel, err := entity.NewVessel(origin, length, orientation)
		if err != nil {
			return false, fmt.Errorf("failed to build vessel: %w", err)
		}

		err = grid.AddVessel(vessel)
		if errors.Is(err, apperror.ErrPlacementOutOfBounds) {
			continue
		}

		if err != nil {
			return false, fmt.Errorf("failed to add vessel: %w", err)
		}

		return true, nil
	}

	return false, nil
}
