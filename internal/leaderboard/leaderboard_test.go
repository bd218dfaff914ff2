package leaderboard_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wordguess/internal/leaderboard"
	"github.com/vovakirdan/wordguess/internal/leaderboard/boardtest"
	"github.com/vovakirdan/wordguess/testing/suite"
)

func TestMemoryBoard(t *testing.T) {
	boardtest.Run(t, context.Background(), func(t *testing.T, size int) leaderboard.Board {
		b := leaderboard.NewMemory(size)
		t.Cleanup(func() { _ = b.Close() })
		return b
	})
}

func TestMemoryBoard_Closed(t *testing.T) {
	ctx := context.Background()
	b := leaderboard.NewMemory(0)
	require.NoError(t, b.Close())

	_, err := b.Top(ctx, 1)
	assert.ErrorIs(t, err, leaderboard.ErrClosed)

	e, err := leaderboard.NewEntry("ann", 10, "apple", 2)
	require.NoError(t, err)
	_, err = b.Add(ctx, e)
	assert.ErrorIs(t, err, leaderboard.ErrClosed)
}

func TestRedisBoard(t *testing.T) {
	ctx, s := suite.NewRedis(t)

	boardtest.Run(t, ctx, func(t *testing.T, size int) leaderboard.Board {
		return leaderboard.NewRedis(s.Redis, "test:"+t.Name(), size)
	})
}

func TestNewEntry(t *testing.T) {
	e, err := leaderboard.NewEntry("  Ann  ", 90, "apple", 4)
	require.NoError(t, err)
	assert.Equal(t, "Ann", e.Name)
	assert.Equal(t, "APPLE", e.Word)
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.CreatedAt.IsZero())

	other, err := leaderboard.NewEntry("Ann", 90, "apple", 4)
	require.NoError(t, err)
	assert.NotEqual(t, e.ID, other.ID)

	long, err := leaderboard.NewEntry(strings.Repeat("x", 50), 1, "apple", 1)
	require.NoError(t, err)
	assert.Len(t, long.Name, leaderboard.MaxNameLength)

	_, err = leaderboard.NewEntry("", 1, "apple", 1)
	assert.ErrorIs(t, err, leaderboard.ErrInvalidEntry)
}

func TestQualifies(t *testing.T) {
	assert.True(t, leaderboard.Qualifies(1, 10))
	assert.True(t, leaderboard.Qualifies(10, 10))
	assert.False(t, leaderboard.Qualifies(11, 10))
	assert.False(t, leaderboard.Qualifies(0, 10))
}
