package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketplay/gridgame/internal/apperror"
	"github.com/rocketplay/gridgame/internal/config"
	"github.com/rocketplay/gridgame/internal/entity"
	"github.com/rocketplay/gridgame/internal/input"
	"github.com/rocketplay/gridgame/internal/repository"
	"github.com/rocketplay/gridgame/internal/repository/storage"
	"github.com/rocketplay/gridgame/internal/terminal"
	"github.com/rocketplay/gridgame/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - plays one game on stdin/stdout and records the outcome on the
// scoreboard when one is configured.
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

	board, err := entity.NewBoard(conf.Board.Dimension)
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}

	scores, closeStorage, err := connectScoreboard(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	renderer := terminal.NewRenderer(os.Stdout, conf.Board.NoughtGlyph, conf.Board.CrossGlyph)
	source := input.NewInteractive(os.Stdin)

	loop := usecase.NewGameLoop(logger, board, source, renderer)
	result := loop.Run(ctx)

	if scores == nil {
		return nil
	}

	if err = recordResult(ctx, scores, result); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// connectScoreboard - connects the redis-backed scoreboard when enabled.
// The returned close func is a no-op when the scoreboard is off.
func connectScoreboard(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.ScoreRepository, func(), error) {
	if !conf.Scoreboard.Enabled {
		return nil, func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	client, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if closeErr := client.Close(); closeErr != nil {
			log.Error("could not close redis storage", "error", closeErr)
		}
	}

	scores := repository.NewScoreRepository(client)

	totals, err := scores.Totals(ctx)
	if err != nil {
		closeStorage()
		return nil, nil, fmt.Errorf("failed to load scoreboard: %w", err)
	}

	log.Info("scoreboard loaded",
		"nought-wins", totals.NoughtWins,
		"cross-wins", totals.CrossWins,
		"draws", totals.Draws,
	)

	return scores, closeStorage, nil
}

// recordResult - tallies a finished game. Quit and input failure leave
// the scoreboard untouched.
func recordResult(ctx context.Context, scores repository.ScoreRepository, result usecase.Result) error {
	switch result.Status {
	case usecase.StatusWon:
		return scores.AddWin(ctx, result.Winner)
	case usecase.StatusDraw:
		return scores.AddDraw(ctx)
	case usecase.StatusQuit, usecase.StatusInputClosed:
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, result.Status)
	}
}
