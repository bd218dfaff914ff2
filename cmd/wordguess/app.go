package main

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"golang.org/x/term"

	"github.com/vovakirdan/wordguess/internal/config"
	"github.com/vovakirdan/wordguess/internal/core"
	"github.com/vovakirdan/wordguess/internal/events"
	"github.com/vovakirdan/wordguess/internal/leaderboard"
	"github.com/vovakirdan/wordguess/internal/platform/tui"
	"github.com/vovakirdan/wordguess/internal/storage"
	"github.com/vovakirdan/wordguess/internal/words"
)

// app holds everything a command shares: config, logger, store,
// leaderboard and event sink.
type app struct {
	cfg    config.App
	logger *log.Logger
	store  *storage.Store // nil when the database could not be opened
	board  leaderboard.Board
	sink   events.Sink
}

// loadConfig reads the config file and applies the global flags on top.
func loadConfig() (config.App, string, error) {
	cfg, path, err := config.Load(flagConfig)
	if err != nil {
		return cfg, path, err
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagLeaderboard != "" {
		cfg.Leaderboard.Backend = flagLeaderboard
	}
	if flagRedisAddr != "" {
		cfg.Redis.Addr = flagRedisAddr
	}
	return cfg, path, cfg.Validate()
}

// newLogger builds the stderr logger; stdout belongs to the TUI.
func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "wordguess",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// newApp loads config, registers extra packs and opens storage. Storage
// failures are not fatal for the sqlite backend: the game falls back to
// an in-memory leaderboard.
func newApp(ctx context.Context) (*app, error) {
	cfg, path, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg.LogLevel)
	if dotenvErr != nil {
		logger.Warn("environment file ignored", "err", dotenvErr)
	}
	if path != "" {
		logger.Debug("config loaded", "path", path)
	}

	if cfg.PacksDir != "" {
		dir, err := storage.ExpandPath(cfg.PacksDir)
		if err != nil {
			return nil, err
		}
		added, skipped, err := words.RegisterDir(dir)
		if err != nil {
			return nil, err
		}
		if len(skipped) > 0 {
			logger.Warn("duplicate word packs skipped", "ids", skipped)
		}
		logger.Debug("word packs registered", "dir", dir, "ids", added)
	}

	a := &app{cfg: cfg, logger: logger}

	store, err := storage.Open(cfg.DBPath, storage.WithLogger(logger))
	if err != nil {
		logger.Warn("could not open scores database", "path", cfg.DBPath, "err", err)
	} else {
		a.store = store
	}

	a.board, err = a.openBoard(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	sinks := events.Multi{events.NewLogSink(logger)}
	if a.store != nil {
		sinks = append(sinks, events.NewStoreSink(a.store))
	}
	a.sink = sinks
	return a, nil
}

// mustApp is newApp for commands that cannot run without it.
func mustApp(ctx context.Context) *app {
	a, err := newApp(ctx)
	if err != nil {
		fail("%v", err)
	}
	return a
}

func (a *app) openBoard(ctx context.Context) (leaderboard.Board, error) {
	size := a.cfg.Leaderboard.Size
	switch a.cfg.Leaderboard.Backend {
	case config.BackendRedis:
		return leaderboard.DialRedis(ctx, &redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		}, a.cfg.Redis.KeyPrefix, size)
	case config.BackendMemory:
		return leaderboard.NewMemory(size), nil
	default:
		if a.store == nil {
			a.logger.Warn("scores will not be kept after exit")
			return leaderboard.NewMemory(size), nil
		}
		return a.store.Leaderboard(size), nil
	}
}

// Close releases the leaderboard and the store.
func (a *app) Close() {
	if a.board != nil {
		if err := a.board.Close(); err != nil {
			a.logger.Warn("closing leaderboard", "err", err)
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("closing database", "err", err)
		}
	}
}

// rules returns the configured rules with a difficulty preset applied.
func (a *app) rules(difficulty string) (config.Rules, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.Rules{}, err
	}
	rules := a.cfg.Rules
	rules.HintPenalties = append([]int(nil), rules.HintPenalties...)
	config.ApplyPreset(&rules, preset)
	return rules, rules.Validate()
}

// deps builds the game collaborators for a pack. A words file overrides
// the registered packs.
func (a *app) deps(ctx context.Context, packID, wordsFile string, rules config.Rules) (tui.Deps, error) {
	opt := words.WithLength(rules.WordLength)

	var (
		bank  *words.Bank
		title string
	)
	if wordsFile != "" {
		path, err := storage.ExpandPath(wordsFile)
		if err != nil {
			return tui.Deps{}, err
		}
		pack, err := words.LoadFile(path)
		if err != nil {
			return tui.Deps{}, err
		}
		if bank, err = pack.Bank(opt); err != nil {
			return tui.Deps{}, err
		}
		packID, title = pack.ID(), pack.Title()
	} else {
		if packID == "" {
			packID = a.cfg.Pack
		}
		b, pack, err := words.Open(packID, opt)
		if err != nil {
			return tui.Deps{}, err
		}
		bank, title = b, pack.Title()
	}

	return tui.Deps{
		Bank:      bank,
		Rules:     rules,
		Board:     a.board,
		Sink:      a.sink,
		PackID:    packID,
		PackTitle: title,
		Player:    os.Getenv("USER"),
		Logger:    a.logger,
		Context:   ctx,
	}, nil
}

// runtimeConfig reads the terminal size and the seed flag.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
