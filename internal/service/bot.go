package service

import (
	"context"
	"math/rand"

	"github.com/rocketscienceinc/battleship/internal/entity"
)

// Bot fires at uniformly random cells. It keeps no memory: repeats are
// caught by the grid and retried by Player.Move.
type Bot struct {
	rng *rand.Rand
}

func NewBot(rng *rand.Rand) *Bot {
	return &Bot{rng: rng}
}

func (that *Bot) NextTarget(_ context.Context, enemy entity.GridView) (entity.Coordinate, error) {
	size := enemy.Size()

	return entity.NewCoordinate(that.rng.Intn(size), that.rng.Intn(size)), nil
}
