package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketplay/gridgame/internal/entity"
	"github.com/rocketplay/gridgame/internal/protocol"
)

const (
	StatusQuit        = "quit"
	StatusWon         = "won"
	StatusDraw        = "draw"
	StatusInputClosed = "input-closed"
)

type source interface {
	Next() (string, bool)
}

type renderer interface {
	Greeting()
	Prompt(mark entity.Mark)
	RenderBoard(board *entity.Board)
	Report(message string)
}

// Result - how a game ended. Winner is set only for StatusWon.
type Result struct {
	Status    string
	Winner    entity.Mark
	MovesMade int
}

// GameLoop runs one game to completion: it pulls raw lines from the
// source, parses them, and applies placements to the board. The board is
// owned exclusively by the loop for the lifetime of the game.
type GameLoop struct {
	logger   *slog.Logger
	board    *entity.Board
	source   source
	renderer renderer
}

func NewGameLoop(logger *slog.Logger, board *entity.Board, source source, renderer renderer) *GameLoop {
	return &GameLoop{
		logger: logger,

		board:    board,
		source:   source,
		renderer: renderer,
	}
}

// Run - plays until a terminal state is reached. Nought always moves
// first. Parse failures and illegal moves are reported and do not consume
// the turn; only source exhaustion ends the game uncontrolled.
func (that *GameLoop) Run(ctx context.Context) Result {
	log := that.logger.With("component", "game-loop")

	that.renderer.Greeting()

	turn := entity.MarkNought

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, abandoning game")
			return that.finish(StatusInputClosed, "")
		default:
		}

		that.renderer.Prompt(turn)

		rawLine, ok := that.source.Next()
		if !ok {
			log.Error("input source closed before the game finished")
			that.renderer.Report("failed to read input")

			return that.finish(StatusInputClosed, "")
		}

		command, err := protocol.ParseCommand(rawLine)
		if err != nil {
			that.renderer.Report(err.Error())
			continue
		}

		if command.Kind == protocol.CommandQuit {
			that.renderer.Report("quitting!")
			return that.finish(StatusQuit, "")
		}

		outcome, err := that.board.Place(command.Position, turn)
		that.renderer.RenderBoard(that.board)

		if err != nil {
			that.renderer.Report(fmt.Sprintf("%v, try again", err))
			continue
		}

		switch outcome.Status {
		case entity.StatusWon:
			that.renderer.Report(fmt.Sprintf("%s wins!", outcome.Winner))
			return that.finish(StatusWon, outcome.Winner)
		case entity.StatusDraw:
			that.renderer.Report("draw!")
			return that.finish(StatusDraw, "")
		default:
			turn = turn.Opponent()
		}
	}
}

func (that *GameLoop) finish(status string, winner entity.Mark) Result {
	log := that.logger.With("component", "game-loop")

	result := Result{
		Status:    status,
		Winner:    winner,
		MovesMade: that.board.MovesMade(),
	}

	log.Info("game over", "status", result.Status, "winner", string(result.Winner), "moves", result.MovesMade)

	return result
}
