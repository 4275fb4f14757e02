package match

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/battleship/internal/entity"
)

type Outcome int

const (
	OutcomeUndecided Outcome = iota
	HumanWins
	AutomatedWins
)

// Winner returns the side name stored in the match history.
func (that Outcome) Winner() string {
	switch that {
	case HumanWins:
		return entity.SideHuman
	case AutomatedWins:
		return entity.SideBot
	default:
		return ""
	}
}

type Event int

const (
	EventHumanHit Event = iota
	EventBotHit
	EventHumanWins
	EventBotWins
)

type Result struct {
	Outcome    Outcome
	Rounds     int
	HumanShots int
	BotShots   int
}

type player interface {
	Move(ctx context.Context) (entity.ShotResult, error)
	Grid() *entity.Grid
	Shots() int
}

type display interface {
	ShowBoards(own, enemy entity.GridView)
	Notify(event Event)
}

// Match drives the human and the bot through alternating shots.
type Match struct {
	logger  *slog.Logger
	display display

	human player
	bot   player

	humanGrid *entity.Grid
	botGrid   *entity.Grid
}

func New(logger *slog.Logger, human, bot player, display display) *Match {
	return &Match{
		logger:    logger.With("component", "match"),
		display:   display,
		human:     human,
		bot:       bot,
		humanGrid: human.Grid(),
		botGrid:   bot.Grid(),
	}
}

// Loop plays rounds until one side has nothing afloat. A hit is announced
// as earning another shot, but the turn still passes to the other side.
func (that *Match) Loop(ctx context.Context) (Result, error) {
	var rounds int

	for {
		if err := ctx.Err(); err != nil {
			return that.result(OutcomeUndecided, rounds), fmt.Errorf("match interrupted: %w", err)
		}

		rounds++
		that.display.ShowBoards(that.humanGrid, that.botGrid)

		shot, err := that.human.Move(ctx)
		if err != nil {
			return that.result(OutcomeUndecided, rounds), fmt.Errorf("human move failed: %w", err)
		}

		if shot == entity.ShotHit {
			that.display.Notify(EventHumanHit)
		}

		if that.botGrid.Afloat() == 0 {
			that.display.Notify(EventHumanWins)
			return that.finish(HumanWins, rounds), nil
		}

		shot, err = that.bot.Move(ctx)
		if err != nil {
			return that.result(OutcomeUndecided, rounds), fmt.Errorf("bot move failed: %w", err)
		}

		if shot == entity.ShotHit {
			that.display.Notify(EventBotHit)
		}

		if that.humanGrid.Afloat() == 0 {
			that.display.Notify(EventBotWins)
			return that.finish(AutomatedWins, rounds), nil
		}
	}
}

func (that *Match) finish(outcome Outcome, rounds int) Result {
	result := that.result(outcome, rounds)

	that.logger.Info("match finished",
		"winner", outcome.Winner(),
		"rounds", result.Rounds,
		"human_shots", result.HumanShots,
		"bot_shots", result.BotShots,
	)

	return result
}

func (that *Match) result(outcome Outcome, rounds int) Result {
	return Result{
		Outcome:    outcome,
		Rounds:     rounds,
		HumanShots: that.human.Shots(),
		BotShots:   that.bot.Shots(),
	}
}
