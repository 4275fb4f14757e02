package console

import (
	"fmt"

	"github.com/rocketscienceinc/battleship/internal/entity"
	"github.com/rocketscienceinc/battleship/internal/match"
)

func (that *Console) Greet(size int) {
	fmt.Fprintln(that.out, "Welcome to Battleship!")
	fmt.Fprintf(that.out, "Enter targets as: X Y (row and column, 0 to %d)\n", size-1)
	fmt.Fprintln(that.out, "Example: 1 3")
	fmt.Fprintf(that.out, "Legend: %s water, %s ship, %s hit, %s miss, %s no ships here\n",
		symbolEmpty, symbolOccupied, symbolHit, symbolMiss, symbolNoPlace)
}

func (that *Console) Notify(event match.Event) {
	switch event {
	case match.EventHumanHit:
		fmt.Fprintln(that.out, "You hit a ship! Fire again.")
	case match.EventBotHit:
		fmt.Fprintln(that.out, "The computer hit your ship! Its turn continues.")
	case match.EventHumanWins:
		fmt.Fprintln(that.out, "Congratulations! You won!")
	case match.EventBotWins:
		fmt.Fprintln(that.out, "Sorry, you lost.")
	}
}

func (that *Console) ShotFired(name string, target entity.Coordinate, result entity.ShotResult) {
	if name == entity.SideBot {
		fmt.Fprintf(that.out, "The computer fires at %s: %s\n", target, result)
		return
	}

	fmt.Fprintf(that.out, "You fire at %s: %s\n", target, result)
}

// ShotRejected tells the human why a target was refused. The bot's own bad
// picks are only logged.
func (that *Console) ShotRejected(name string, target entity.Coordinate, err error) {
	if name == entity.SideBot {
		that.logger.Debug("bot target rejected", "target", target.String(), "error", err)
		return
	}

	fmt.Fprintf(that.out, "Error: %v\n", err)
}

func (that *Console) Totals(totals map[string]int) {
	fmt.Fprintf(that.out, "Match history: you won %d, the computer won %d.\n",
		totals[entity.SideHuman], totals[entity.SideBot])
}
