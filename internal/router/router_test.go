package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		kind Kind
		word string
	}{
		{"wordguess://game", RouteGame, ""},
		{"wordguess://game/", RouteGame, ""},
		{"wordguess://game/new", RouteNewGame, ""},
		{"wordguess://game?word=SWIFT", RouteGameWithWord, "SWIFT"},
		{"wordguess://game?word=swift&x=1", RouteGameWithWord, "swift"},
		{"wordguess://game?word=", RouteGame, ""},
		{"wordguess://leaderboard", RouteLeaderboard, ""},
		{"WORDGUESS://leaderboard", RouteLeaderboard, ""},
		{"  wordguess://game/new  ", RouteNewGame, ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, r.Kind)
			assert.Equal(t, tt.word, r.Word)
			assert.Equal(t, tt.raw, r.Raw)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		raw string
		err error
	}{
		{"https://example.com/game", ErrUnknownScheme},
		{"game/new", ErrUnknownScheme},
		{"", ErrUnknownScheme},
		{"wordguess://settings", ErrUnknownRoute},
		{"wordguess://", ErrUnknownRoute},
		{"wordguess://game%zz", ErrUnknownRoute},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r, err := Parse(tt.raw)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, RouteUnknown, r.Kind)
		})
	}
}

func TestExamplesParse(t *testing.T) {
	seen := map[Kind]bool{}
	for _, ex := range Examples {
		r, err := Parse(ex.URL)
		require.NoError(t, err, ex.Title)
		seen[r.Kind] = true
	}
	assert.Len(t, seen, 4, "one example per route")
}

func TestRouteNotice(t *testing.T) {
	r, err := Parse("wordguess://game?word=swift")
	require.NoError(t, err)
	assert.Equal(t, "Started a new game (link word: SWIFT)", r.Notice())

	r, _ = Parse("wordguess://nowhere")
	assert.Equal(t, "Unknown URL: wordguess://nowhere", r.Notice())

	assert.Equal(t, "leaderboard", RouteLeaderboard.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
