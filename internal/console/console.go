package console

import (
	"bufio"
	"io"
	"log/slog"
)

// Console is the terminal side of the game: it draws boards, reads targets
// and prints what happens.
type Console struct {
	logger *slog.Logger
	reader *bufio.Reader
	out    io.Writer
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		reader: bufio.NewReader(in),
		out:    out,
	}
}
