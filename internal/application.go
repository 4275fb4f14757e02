package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/config"
	"github.com/rocketscienceinc/battleship/internal/console"
	"github.com/rocketscienceinc/battleship/internal/entity"
	"github.com/rocketscienceinc/battleship/internal/fleet"
	"github.com/rocketscienceinc/battleship/internal/match"
	"github.com/rocketscienceinc/battleship/internal/repository"
	"github.com/rocketscienceinc/battleship/internal/repository/storage"
	"github.com/rocketscienceinc/battleship/internal/service"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	var recorder service.RecordService
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		recorder = service.NewRecordService(repository.NewMatchRepository(redisStorage, entity.MatchHistoryLimit))
	}

	return run(ctx, logger, conf, os.Stdin, os.Stdout, recorder)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer, recorder service.RecordService) error {
	log := logger.With("component", "app")

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint: gosec // it's ok
	log.Debug("random source ready", "seed", seed)

	placer := fleet.NewPlacer(logger, rng, conf.Board.Fleet, conf.Board.PlacementAttempts, conf.Board.BoardAttempts)
	blockContour := entity.WithContourBlockingShots(conf.Board.ContourBlocksShots)

	humanGrid, err := placer.Populate(conf.Board.Size, blockContour)
	if err != nil {
		return fmt.Errorf("failed to set up human board: %w", err)
	}

	botGrid, err := placer.Populate(conf.Board.Size, blockContour, entity.WithConcealment())
	if err != nil {
		return fmt.Errorf("failed to set up bot board: %w", err)
	}

	term := console.New(logger, in, out)
	human := service.NewPlayer(logger, entity.SideHuman, service.NewHuman(term), humanGrid, botGrid, term)
	bot := service.NewPlayer(logger, entity.SideBot, service.NewBot(rng), botGrid, humanGrid, term)

	term.Greet(conf.Board.Size)

	result, err := match.New(logger, human, bot, term).Loop(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, apperror.ErrInputClosed) {
		log.Info("match abandoned", "rounds", result.Rounds, "reason", err)
		return nil
	}

	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	if recorder != nil {
		saveHistory(ctx, log, recorder, term, conf.Board.Size, result)
	}

	return nil
}

// saveHistory never fails the run; a broken history store only costs the scoreboard.
func saveHistory(ctx context.Context, log *slog.Logger, recorder service.RecordService, term *console.Console, size int, result match.Result) {
	record := &entity.MatchRecord{
		Winner:     result.Outcome.Winner(),
		Rounds:     result.Rounds,
		HumanShots: result.HumanShots,
		BotShots:   result.BotShots,
		BoardSize:  size,
	}

	if err := recorder.Record(ctx, record); err != nil {
		log.Error("could not record match", "error", err)
		return
	}

	totals, err := recorder.Totals(ctx)
	if err != nil {
		log.Error("could not load match history", "error", err)
		return
	}

	term.Totals(totals)
}
