package leaderboard

import (
	"context"
	"sync"

	"github.com/samber/lo"
)

// Memory is a process-local board. State is lost when the process exits.
// Selected with the "memory" leaderboard backend.
type Memory struct {
	mu      sync.RWMutex
	size    int
	entries []Entry
	closed  bool
}

// NewMemory creates an empty board keeping size entries.
func NewMemory(size int) *Memory {
	if size <= 0 {
		size = DefaultSize
	}
	return &Memory{size: size}
}

// Add inserts the entry and trims the board.
func (m *Memory) Add(_ context.Context, e Entry) (int, error) {
	e, err := Normalize(e)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, ErrClosed
	}

	m.entries = append(m.entries, e)
	Sort(m.entries)
	if len(m.entries) > m.size {
		m.entries = m.entries[:m.size]
	}

	_, idx, ok := lo.FindIndexOf(m.entries, func(x Entry) bool { return x.ID == e.ID })
	if !ok {
		return 0, nil
	}
	return idx + 1, nil
}

// Top returns up to n entries.
func (m *Memory) Top(_ context.Context, n int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}

	if n <= 0 || n > len(m.entries) {
		n = len(m.entries)
	}
	return append([]Entry(nil), m.entries[:n]...), nil
}

// Rank returns the position a new entry with score would take.
func (m *Memory) Rank(_ context.Context, score int) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return 0, ErrClosed
	}

	return lo.CountBy(m.entries, func(e Entry) bool { return e.Score > score }) + 1, nil
}

// Clear removes every entry.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.entries = nil
	return nil
}

// Close marks the board unusable.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

var _ Board = (*Memory)(nil)
