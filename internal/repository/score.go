package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketplay/gridgame/internal/apperror"
	"github.com/rocketplay/gridgame/internal/entity"
)

const scoreKey = "scoreboard"

const (
	fieldNoughtWins = "nought-wins"
	fieldCrossWins  = "cross-wins"
	fieldDraws      = "draws"
)

// Score - accumulated results of finished games.
type Score struct {
	NoughtWins int64
	CrossWins  int64
	Draws      int64
}

type ScoreRepository interface {
	AddWin(ctx context.Context, winner entity.Mark) error
	AddDraw(ctx context.Context) error
	Totals(ctx context.Context) (Score, error)
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func (that *dbScore) AddWin(ctx context.Context, winner entity.Mark) error {
	var field string

	switch winner {
	case entity.MarkNought:
		field = fieldNoughtWins
	case entity.MarkCross:
		field = fieldCrossWins
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownMark, winner)
	}

	if err := that.client.HIncrBy(ctx, scoreKey, field, 1).Err(); err != nil {
		return fmt.Errorf("failed to record win: %w", err)
	}

	return nil
}

func (that *dbScore) AddDraw(ctx context.Context) error {
	if err := that.client.HIncrBy(ctx, scoreKey, fieldDraws, 1).Err(); err != nil {
		return fmt.Errorf("failed to record draw: %w", err)
	}

	return nil
}

func (that *dbScore) Totals(ctx context.Context) (Score, error) {
	fields, err := that.client.HGetAll(ctx, scoreKey).Result()
	if err != nil {
		return Score{}, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	score := Score{}
	for field, value := range fields {
		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return Score{}, fmt.Errorf("failed to parse scoreboard field %s: %w", field, err)
		}

		switch field {
		case fieldNoughtWins:
			score.NoughtWins = count
		case fieldCrossWins:
			score.CrossWins = count
		case fieldDraws:
			score.Draws = count
		}
	}

	return score, nil
}
