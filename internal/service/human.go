package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/battleship/internal/entity"
)

type coordinateSource interface {
	ReadCoordinate(ctx context.Context, size int) (entity.Coordinate, error)
}

// Human takes targets from an interactive coordinate source.
type Human struct {
	source coordinateSource
}

func NewHuman(source coordinateSource) *Human {
	return &Human{source: source}
}

func (that *Human) NextTarget(ctx context.Context, enemy entity.GridView) (entity.Coordinate, error) {
	target, err := that.source.ReadCoordinate(ctx, enemy.Size())
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("failed to read coordinate: %w", err)
	}

	return target, nil
}
