// Package leaderboard defines the score board shared by every frontend and
// its in-memory and Redis backends. The SQLite backend lives in storage.
package leaderboard

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultSize is the number of entries a board keeps.
const DefaultSize = 10

// MaxNameLength bounds player names, in runes.
const MaxNameLength = 20

var (
	// ErrInvalidEntry is returned for entries without a name or word.
	ErrInvalidEntry = errors.New("leaderboard: invalid entry")
	// ErrClosed is returned by a board used after Close.
	ErrClosed = errors.New("leaderboard: closed")
)

// Entry is one leaderboard row.
type Entry struct {
	ID        string
	Name      string
	Score     int
	Word      string
	Guesses   int
	CreatedAt time.Time
}

// Board stores the best scores. Implementations keep only the top Size
// entries, ordered by score descending with newer entries first on ties.
type Board interface {
	// Add stores e and returns its 1-based rank, or 0 if it did not make
	// the board.
	Add(ctx context.Context, e Entry) (int, error)
	// Top returns up to n entries, best first. n <= 0 means all.
	Top(ctx context.Context, n int) ([]Entry, error)
	// Rank returns the position a new entry with this score would take.
	Rank(ctx context.Context, score int) (int, error)
	// Clear removes every entry.
	Clear(ctx context.Context) error
	Close() error
}

// NewEntry builds a normalized entry with a fresh ID and timestamp.
func NewEntry(name string, score int, word string, guesses int) (Entry, error) {
	e := Entry{
		ID:        uuid.NewString(),
		Name:      name,
		Score:     score,
		Word:      word,
		Guesses:   guesses,
		CreatedAt: time.Now().UTC(),
	}
	return Normalize(e)
}

// Normalize trims and bounds the name, upper-cases the word and fills a
// missing ID or timestamp.
func Normalize(e Entry) (Entry, error) {
	e.Name = strings.TrimSpace(e.Name)
	if r := []rune(e.Name); len(r) > MaxNameLength {
		e.Name = string(r[:MaxNameLength])
	}
	e.Word = strings.ToUpper(strings.TrimSpace(e.Word))
	if e.Name == "" || e.Word == "" || e.Guesses < 0 {
		return e, ErrInvalidEntry
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return e, nil
}

// Qualifies reports whether a rank earns a place on a board of size entries.
func Qualifies(rank, size int) bool {
	return rank >= 1 && rank <= size
}

// less orders entries: higher score first, newer first on ties.
func less(a, b Entry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// Sort orders entries the way every board returns them.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool { return less(entries[i], entries[j]) })
}
