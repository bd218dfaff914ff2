// Package boardtest holds the behaviour every leaderboard.Board backend
// must share. Backend tests call Run with a factory for fresh boards.
package boardtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wordguess/internal/leaderboard"
)

// Factory returns an empty board keeping size entries.
type Factory func(t *testing.T, size int) leaderboard.Board

// Run exercises a backend.
func Run(t *testing.T, ctx context.Context, newBoard Factory) {
	t.Run("OrdersByScore", func(t *testing.T) { ordersByScore(t, ctx, newBoard) })
	t.Run("KeepsTopEntries", func(t *testing.T) { keepsTopEntries(t, ctx, newBoard) })
	t.Run("RanksTiesNewestFirst", func(t *testing.T) { ranksTiesNewestFirst(t, ctx, newBoard) })
	t.Run("Rank", func(t *testing.T) { ranksScores(t, ctx, newBoard) })
	t.Run("RejectsInvalid", func(t *testing.T) { rejectsInvalid(t, ctx, newBoard) })
	t.Run("Clear", func(t *testing.T) { clearsBoard(t, ctx, newBoard) })
}

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func entry(name string, score int, at int) leaderboard.Entry {
	return leaderboard.Entry{
		ID:        fmt.Sprintf("id-%s-%d", name, at),
		Name:      name,
		Score:     score,
		Word:      "apple",
		Guesses:   3,
		CreatedAt: base.Add(time.Duration(at) * time.Minute),
	}
}

func names(entries []leaderboard.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func ordersByScore(t *testing.T, ctx context.Context, newBoard Factory) {
	// Given
	board := newBoard(t, 10)

	// When
	for i, e := range []leaderboard.Entry{
		entry("bob", 50, 1),
		entry("ann", 120, 2),
		entry("cid", 80, 3),
	} {
		_, err := board.Add(ctx, e)
		require.NoError(t, err, "entry %d", i)
	}

	// Then
	top, err := board.Top(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"ann", "cid", "bob"}, names(top))
	assert.Equal(t, "APPLE", top[0].Word, "words are stored upper-case")
	assert.Equal(t, 3, top[0].Guesses)
	assert.True(t, top[0].CreatedAt.Equal(base.Add(2*time.Minute)))

	top, err = board.Top(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func keepsTopEntries(t *testing.T, ctx context.Context, newBoard Factory) {
	// Given
	board := newBoard(t, 3)

	// When
	for i := 1; i <= 5; i++ {
		rank, err := board.Add(ctx, entry(fmt.Sprintf("p%d", i), i*10, i))
		require.NoError(t, err)
		assert.Equal(t, 1, rank, "each new entry beats the previous ones")
	}
	rank, err := board.Add(ctx, entry("low", 5, 6))
	require.NoError(t, err)

	// Then
	assert.Equal(t, 0, rank, "an entry below the cut is not kept")
	top, err := board.Top(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"p5", "p4", "p3"}, names(top))
}

func ranksTiesNewestFirst(t *testing.T, ctx context.Context, newBoard Factory) {
	// Given
	board := newBoard(t, 10)
	_, err := board.Add(ctx, entry("old", 100, 1))
	require.NoError(t, err)

	// When
	rank, err := board.Add(ctx, entry("new", 100, 2))
	require.NoError(t, err)

	// Then
	assert.Equal(t, 1, rank)
	top, err := board.Top(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "old"}, names(top))
}

func ranksScores(t *testing.T, ctx context.Context, newBoard Factory) {
	// Given
	board := newBoard(t, 10)

	r, err := board.Rank(ctx, 40)
	require.NoError(t, err)
	assert.Equal(t, 1, r, "empty board")

	for i, s := range []int{100, 60, 60, 20} {
		_, err := board.Add(ctx, entry(fmt.Sprintf("p%d", i), s, i))
		require.NoError(t, err)
	}

	// Then
	for _, tc := range []struct{ score, rank int }{
		{150, 1},
		{100, 1},
		{80, 2},
		{60, 2},
		{40, 4},
		{0, 5},
	} {
		r, err := board.Rank(ctx, tc.score)
		require.NoError(t, err)
		assert.Equal(t, tc.rank, r, "score %d", tc.score)
	}
}

func rejectsInvalid(t *testing.T, ctx context.Context, newBoard Factory) {
	board := newBoard(t, 10)

	e := entry("   ", 10, 1)
	_, err := board.Add(ctx, e)
	assert.ErrorIs(t, err, leaderboard.ErrInvalidEntry)

	e = entry("ann", 10, 1)
	e.Word = ""
	_, err = board.Add(ctx, e)
	assert.ErrorIs(t, err, leaderboard.ErrInvalidEntry)

	top, err := board.Top(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func clearsBoard(t *testing.T, ctx context.Context, newBoard Factory) {
	board := newBoard(t, 10)
	_, err := board.Add(ctx, entry("ann", 10, 1))
	require.NoError(t, err)

	require.NoError(t, board.Clear(ctx))

	top, err := board.Top(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}
