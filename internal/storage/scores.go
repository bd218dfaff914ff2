package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vovakirdan/wordguess/internal/leaderboard"
)

const scoreOrder = "ORDER BY score DESC, created_at DESC, uuid DESC"

// SaveScore records a leaderboard entry.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(ctx context.Context, e leaderboard.Entry) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO scores (uuid, name, score, word, guesses, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Score, e.Word, e.Guesses, formatTime(e.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the best scores, best first.
// A limit <= 0 returns every stored score.
func (s *Store) TopScores(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT uuid, name, score, word, guesses, created_at
		 FROM scores `+scoreOrder+`
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []leaderboard.Entry
	for rows.Next() {
		var e leaderboard.Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Word, &e.Guesses, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest stored score.
// Returns 0 if no scores exist.
func (s *Store) HighScore(ctx context.Context) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRowContext(ctx, "SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// CountAbove returns how many stored scores are strictly greater than score.
func (s *Store) CountAbove(ctx context.Context, score int) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM scores WHERE score > ?", score).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count scores: %w", err)
	}
	return n, nil
}

// TrimScores keeps only the best keep scores.
func (s *Store) TrimScores(ctx context.Context, keep int) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM scores WHERE id NOT IN (
			SELECT id FROM scores `+scoreOrder+` LIMIT ?
		)`,
		keep,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot trim scores: %w", err)
	}
	return nil
}

// ClearScores deletes every score.
func (s *Store) ClearScores(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Board adapts the scores table to leaderboard.Board.
type Board struct {
	store *Store
	size  int
}

// Leaderboard returns a board over the scores table keeping size entries.
func (s *Store) Leaderboard(size int) *Board {
	if size <= 0 {
		size = leaderboard.DefaultSize
	}
	return &Board{store: s, size: size}
}

// Add stores e, trims the table and returns e's rank or 0 if it was cut.
func (b *Board) Add(ctx context.Context, e leaderboard.Entry) (int, error) {
	e, err := leaderboard.Normalize(e)
	if err != nil {
		return 0, err
	}
	if _, err := b.store.SaveScore(ctx, e); err != nil {
		return 0, err
	}
	if err := b.store.TrimScores(ctx, b.size); err != nil {
		return 0, err
	}

	top, err := b.store.TopScores(ctx, b.size)
	if err != nil {
		return 0, err
	}
	for i, x := range top {
		if x.ID == e.ID {
			return i + 1, nil
		}
	}
	return 0, nil
}

// Top returns up to n entries, best first.
func (b *Board) Top(ctx context.Context, n int) ([]leaderboard.Entry, error) {
	if n <= 0 || n > b.size {
		n = b.size
	}
	return b.store.TopScores(ctx, n)
}

// Rank returns the position a new entry with score would take.
func (b *Board) Rank(ctx context.Context, score int) (int, error) {
	above, err := b.store.CountAbove(ctx, score)
	if err != nil {
		return 0, err
	}
	return above + 1, nil
}

// Clear removes every entry.
func (b *Board) Clear(ctx context.Context) error {
	return b.store.ClearScores(ctx)
}

// Close is a no-op; the Store is closed by whoever opened it.
func (b *Board) Close() error {
	return nil
}

var _ leaderboard.Board = (*Board)(nil)
