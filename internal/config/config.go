// Package config provides YAML and environment based configuration for the
// word game: game rules, storage, leaderboard backends and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Rules holds the tunable game rules.
type Rules struct {
	MaxGuesses      int   `yaml:"max_guesses" env:"WORDGUESS_MAX_GUESSES"`
	MaxHints        int   `yaml:"max_hints" env:"WORDGUESS_MAX_HINTS"`
	BaseScore       int   `yaml:"base_score" env:"WORDGUESS_BASE_SCORE"`
	CorrectPoints   int   `yaml:"correct_points" env:"WORDGUESS_CORRECT_POINTS"`
	MisplacedPoints int   `yaml:"misplaced_points" env:"WORDGUESS_MISPLACED_POINTS"`
	HintPenalties   []int `yaml:"hint_penalties" env:"WORDGUESS_HINT_PENALTIES"` // magnitudes, 1st hint first
	WordLength      int   `yaml:"word_length" env:"WORDGUESS_WORD_LENGTH"`       // 0 = any length of the pack
}

// Validate checks budgets and the hint penalty schedule.
// Penalties must be positive, strictly increasing and cover every hint.
func (r Rules) Validate() error {
	if r.MaxGuesses < 1 {
		return fmt.Errorf("%w: max_guesses must be at least 1, got %d", ErrInvalid, r.MaxGuesses)
	}
	if r.MaxHints < 0 {
		return fmt.Errorf("%w: max_hints must not be negative, got %d", ErrInvalid, r.MaxHints)
	}
	if len(r.HintPenalties) < r.MaxHints {
		return fmt.Errorf("%w: %d hint penalties for %d hints", ErrInvalid, len(r.HintPenalties), r.MaxHints)
	}
	for i, p := range r.HintPenalties {
		if p <= 0 {
			return fmt.Errorf("%w: hint penalty %d must be positive, got %d", ErrInvalid, i+1, p)
		}
		if i > 0 && p <= r.HintPenalties[i-1] {
			return fmt.Errorf("%w: hint penalties must strictly increase (%d after %d)", ErrInvalid, p, r.HintPenalties[i-1])
		}
	}
	if r.MisplacedPoints < 0 || r.CorrectPoints <= r.MisplacedPoints {
		return fmt.Errorf("%w: need correct_points > misplaced_points >= 0, got %d/%d", ErrInvalid, r.CorrectPoints, r.MisplacedPoints)
	}
	if r.WordLength < 0 {
		return fmt.Errorf("%w: word_length must not be negative, got %d", ErrInvalid, r.WordLength)
	}
	return nil
}

// Leaderboard selects and sizes the score board.
type Leaderboard struct {
	Backend string `yaml:"backend" env:"WORDGUESS_LEADERBOARD"` // "sqlite", "redis" or "memory"
	Size    int    `yaml:"size" env:"WORDGUESS_LEADERBOARD_SIZE"`
}

// Leaderboard backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Redis configures the Redis leaderboard backend.
type Redis struct {
	Addr      string `yaml:"addr" env:"WORDGUESS_REDIS_ADDR"`
	Password  string `yaml:"password" env:"WORDGUESS_REDIS_PASSWORD"`
	DB        int    `yaml:"db" env:"WORDGUESS_REDIS_DB"`
	KeyPrefix string `yaml:"key_prefix" env:"WORDGUESS_REDIS_PREFIX"`
}

// SSH configures the wish server.
type SSH struct {
	Addr        string        `yaml:"addr" env:"WORDGUESS_SSH_ADDR"`
	HostKey     string        `yaml:"host_key" env:"WORDGUESS_SSH_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"WORDGUESS_SSH_IDLE_TIMEOUT"`
}

// App is the complete application configuration.
type App struct {
	LogLevel    string      `yaml:"log_level" env:"WORDGUESS_LOG_LEVEL"`
	DBPath      string      `yaml:"db_path" env:"WORDGUESS_DB"`
	Pack        string      `yaml:"pack" env:"WORDGUESS_PACK"`
	WordsFile   string      `yaml:"words_file" env:"WORDGUESS_WORDS_FILE"`
	PacksDir    string      `yaml:"packs_dir" env:"WORDGUESS_PACKS_DIR"`
	Rules       Rules       `yaml:"rules"`
	Leaderboard Leaderboard `yaml:"leaderboard"`
	Redis       Redis       `yaml:"redis"`
	SSH         SSH         `yaml:"ssh"`
}

// Validate checks the whole configuration.
func (a App) Validate() error {
	if err := a.Rules.Validate(); err != nil {
		return err
	}
	switch a.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalid, a.LogLevel)
	}
	switch a.Leaderboard.Backend {
	case BackendSQLite, BackendMemory:
	case BackendRedis:
		if a.Redis.Addr == "" {
			return fmt.Errorf("%w: redis backend needs redis.addr", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown leaderboard backend %q", ErrInvalid, a.Leaderboard.Backend)
	}
	if a.Leaderboard.Size < 1 {
		return fmt.Errorf("%w: leaderboard size must be at least 1, got %d", ErrInvalid, a.Leaderboard.Size)
	}
	return nil
}
