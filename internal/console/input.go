package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

// ReadCoordinate prompts until a line holds two integers inside the board.
// The read blocks; the context is only checked between prompts.
func (that *Console) ReadCoordinate(ctx context.Context, size int) (entity.Coordinate, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entity.Coordinate{}, err
		}

		fmt.Fprint(that.out, "Your move: ")

		line, tooLong, err := that.readLine()
		if errors.Is(err, io.EOF) {
			return entity.Coordinate{}, apperror.ErrInputClosed
		}

		if err != nil {
			return entity.Coordinate{}, fmt.Errorf("failed to read input: %w", err)
		}

		fields := strings.Fields(line)
		if tooLong || len(fields) != 2 {
			fmt.Fprintln(that.out, "Invalid format, enter two numbers. Try again.")
			continue
		}

		x, errX := strconv.Atoi(fields[0])
		y, errY := strconv.Atoi(fields[1])
		if errX != nil || errY != nil {
			fmt.Fprintln(that.out, "Coordinates must be whole numbers. Try again.")
			continue
		}

		if x < 0 || x >= size || y < 0 || y >= size {
			fmt.Fprintf(that.out, "Coordinates must be between 0 and %d. Try again.\n", size-1)
			continue
		}

		return entity.NewCoordinate(x, y), nil
	}
}

// readLine returns the next input line. A line that does not fit the reader
// buffer is drained to its end and flagged as too long.
func (that *Console) readLine() (string, bool, error) {
	line, isPrefix, err := that.reader.ReadLine()
	if err != nil {
		return "", false, err
	}

	if !isPrefix {
		return string(line), false, nil
	}

	for isPrefix {
		_, isPrefix, err = that.reader.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return "", false, err
		}
	}

	return "", true, nil
}
