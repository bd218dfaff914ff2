package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/wordguess.yaml
var defaultYAML []byte

// DefaultRules returns the standard rules: six guesses, three hints
// costing 10, 15 and 20 points, +20 per correct letter and +5 per
// misplaced letter.
func DefaultRules() Rules {
	return Rules{
		MaxGuesses:      6,
		MaxHints:        3,
		BaseScore:       0,
		CorrectPoints:   20,
		MisplacedPoints: 5,
		HintPenalties:   []int{10, 15, 20},
		WordLength:      0,
	}
}

// Default returns the hardcoded application defaults.
// It mirrors defaults/wordguess.yaml and is used when the embedded file
// cannot be decoded.
func Default() App {
	return App{
		LogLevel: "info",
		DBPath:   "~/.wordguess/scores.db",
		Pack:     "classic",
		Rules:    DefaultRules(),
		Leaderboard: Leaderboard{
			Backend: BackendSQLite,
			Size:    10,
		},
		Redis: Redis{
			Addr:      "localhost:6379",
			KeyPrefix: "wordguess",
		},
		SSH: SSH{
			Addr:        ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
// Used by `wordguess config` to print a starting point for users.
func DefaultYAML() []byte {
	return defaultYAML
}
