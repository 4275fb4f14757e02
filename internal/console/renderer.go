package console

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/rocketscienceinc/battleship/internal/entity"
)

const (
	symbolEmpty    = "O"
	symbolNoPlace  = "."
	symbolOccupied = "■"
	symbolHit      = "X"
	symbolMiss     = "*"
)

func symbol(state entity.CellState) string {
	switch state {
	case entity.CellNoPlace:
		return symbolNoPlace
	case entity.CellOccupied:
		return symbolOccupied
	case entity.CellHit:
		return symbolHit
	case entity.CellMiss:
		return symbolMiss
	default:
		return symbolEmpty
	}
}

// Render writes the board with row numbers down the side and column numbers
// on top. Concealment is applied by the view itself.
func Render(w io.Writer, view entity.GridView) error {
	tw := tabwriter.NewWriter(w, 2, 0, 1, ' ', 0)

	fmt.Fprint(tw, "\t")
	for y := 0; y < view.Size(); y++ {
		fmt.Fprint(tw, strconv.Itoa(y)+"\t")
	}
	fmt.Fprint(tw, "\n")

	for x := 0; x < view.Size(); x++ {
		fmt.Fprint(tw, strconv.Itoa(x)+"\t")
		for y := 0; y < view.Size(); y++ {
			fmt.Fprint(tw, symbol(view.Visible(entity.NewCoordinate(x, y)))+"\t")
		}
		fmt.Fprint(tw, "\n")
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

func (that *Console) ShowBoards(own, enemy entity.GridView) {
	fmt.Fprintln(that.out, "\nYour board:")
	if err := Render(that.out, own); err != nil {
		that.logger.Error("could not render own board", "error", err)
	}

	fmt.Fprintln(that.out, "\nEnemy board:")
	if err := Render(that.out, enemy); err != nil {
		that.logger.Error("could not render enemy board", "error", err)
	}
}
