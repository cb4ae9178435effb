package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketplay/gridgame/internal/apperror"
	"github.com/rocketplay/gridgame/internal/entity"
	"github.com/rocketplay/gridgame/testing/suite"
)

func TestScoreRepository_Totals(t *testing.T) {
	t.Run("Empty scoreboard reads as all zeroes", func(t *testing.T) {
		ctx, st := suite.New(t)

		scores := NewScoreRepository(st.Storage)

		// When: reading totals from a fresh database
		totals, err := scores.Totals(ctx)

		// Then: every counter is zero
		require.NoError(t, err)
		assert.Equal(t, Score{}, totals)
	})

	t.Run("Recorded results accumulate", func(t *testing.T) {
		ctx, st := suite.New(t)

		scores := NewScoreRepository(st.Storage)

		// Given: two Nought wins, one Cross win, and a draw
		require.NoError(t, scores.AddWin(ctx, entity.MarkNought))
		require.NoError(t, scores.AddWin(ctx, entity.MarkNought))
		require.NoError(t, scores.AddWin(ctx, entity.MarkCross))
		require.NoError(t, scores.AddDraw(ctx))

		// When: reading totals
		totals, err := scores.Totals(ctx)

		// Then: the counters match what was recorded
		require.NoError(t, err)
		assert.Equal(t, Score{NoughtWins: 2, CrossWins: 1, Draws: 1}, totals)
	})
}

func TestScoreRepository_AddWin(t *testing.T) {
	t.Run("Rejects an unknown mark", func(t *testing.T) {
		ctx, st := suite.New(t)

		scores := NewScoreRepository(st.Storage)

		// When: recording a win for a mark that does not exist
		err := scores.AddWin(ctx, "Z")

		// Then: an ErrUnknownMark error should be returned
		require.ErrorIs(t, err, apperror.ErrUnknownMark)

		// And: nothing was recorded
		totals, err := scores.Totals(ctx)
		require.NoError(t, err)
		assert.Equal(t, Score{}, totals)
	})
}
