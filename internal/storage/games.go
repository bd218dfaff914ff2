package storage

import (
	"context"
	"fmt"
	"time"
)

// GameRecord is one finished game.
type GameRecord struct {
	SessionID string
	Pack      string
	Word      string
	Won       bool
	Completed bool // false when the player ended the game early
	Score     int
	Guesses   int
	HintsUsed int
	PlayedAt  time.Time
}

// Stats summarizes stored games.
type Stats struct {
	Played        int // won or lost; ended games are only counted in Abandoned
	Won           int
	Abandoned     int
	WinRate       float64 // 0..1
	AvgGuesses    float64 // over won games
	BestScore     int
	CurrentStreak int
	MaxStreak     int
	Distribution  map[int]int // guesses -> won games
	LastPlayed    time.Time
}

// RecordGame stores a finished game.
func (s *Store) RecordGame(ctx context.Context, g GameRecord) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO games (session_id, pack, word, won, completed, score, guesses, hints, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.SessionID, g.Pack, g.Word, boolToInt(g.Won), boolToInt(g.Completed),
		g.Score, g.Guesses, g.HintsUsed, formatTime(g.PlayedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentGames returns the latest games, newest first. An empty pack matches
// every pack.
func (s *Store) RecentGames(ctx context.Context, pack string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.games(ctx, pack, "DESC", limit)
}

// Stats computes totals, streaks and the guess distribution. An empty pack
// matches every pack. Games ended before a win or loss neither count as
// played nor break a streak.
func (s *Store) Stats(ctx context.Context, pack string) (Stats, error) {
	games, err := s.games(ctx, pack, "ASC", -1)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{Distribution: make(map[int]int)}
	totalGuesses := 0
	for _, g := range games {
		st.LastPlayed = g.PlayedAt
		if !g.Completed {
			st.Abandoned++
			continue
		}
		st.Played++
		if g.Won {
			st.Won++
			st.CurrentStreak++
			totalGuesses += g.Guesses
			st.Distribution[g.Guesses]++
		} else {
			st.CurrentStreak = 0
		}
		st.MaxStreak = max(st.MaxStreak, st.CurrentStreak)
		if st.Played == 1 || g.Score > st.BestScore {
			st.BestScore = g.Score
		}
	}
	if st.Played > 0 {
		st.WinRate = float64(st.Won) / float64(st.Played)
	}
	if st.Won > 0 {
		st.AvgGuesses = float64(totalGuesses) / float64(st.Won)
	}
	return st, nil
}

func (s *Store) games(ctx context.Context, pack, order string, limit int) ([]GameRecord, error) {
	query := `SELECT session_id, pack, word, won, completed, score, guesses, hints, created_at
		 FROM games
		 WHERE (? = '' OR pack = ?)
		 ORDER BY created_at ` + order + `, id ` + order + `
		 LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, pack, pack, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		var won, completed int
		var createdAt any
		if err := rows.Scan(&g.SessionID, &g.Pack, &g.Word, &won, &completed,
			&g.Score, &g.Guesses, &g.HintsUsed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.Won = won != 0
		g.Completed = completed != 0
		g.PlayedAt = parseTime(createdAt)
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
