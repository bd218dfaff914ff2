package events

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Tracker reports the events of one player's games to a sink. It keeps the
// session id and the guess counter of the current game. A Tracker belongs to
// a single frontend and is not safe for concurrent use.
type Tracker struct {
	sink    Sink
	logger  *log.Logger
	pack    string
	session string
	total   int
	now     func() time.Time
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) { t.now = now }
}

// WithTrackerLogger sets where sink failures are reported.
func WithTrackerLogger(l *log.Logger) TrackerOption {
	return func(t *Tracker) { t.logger = l }
}

// NewTracker creates a tracker for games played from pack.
// A nil sink discards events.
func NewTracker(sink Sink, pack string, opts ...TrackerOption) *Tracker {
	if sink == nil {
		sink = Discard
	}
	t := &Tracker{
		sink:    sink,
		logger:  log.Default(),
		pack:    pack,
		session: uuid.NewString(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Session returns the id of the current game.
func (t *Tracker) Session() string { return t.session }

// TotalGuesses returns the number of accepted guesses in the current game.
func (t *Tracker) TotalGuesses() int { return t.total }

func (t *Tracker) meta() Meta {
	return Meta{Session: t.session, Pack: t.pack, At: t.now().UTC()}
}

func (t *Tracker) emit(ctx context.Context, e Event) {
	if err := t.sink.Emit(ctx, e); err != nil {
		t.logger.Warn("event not recorded", "event", e.Name(), "err", err)
	}
}

// GameStarted begins a new session and resets the guess counter.
func (t *Tracker) GameStarted(ctx context.Context) {
	t.session = uuid.NewString()
	t.total = 0
	t.emit(ctx, GameStarted{Meta: t.meta()})
}

// WordGuessed counts an accepted guess.
func (t *Tracker) WordGuessed(ctx context.Context, word string, length, correct, misplaced int) {
	t.total++
	t.emit(ctx, WordGuessed{
		Meta:       t.meta(),
		Word:       word,
		WordLength: length,
		Correct:    correct,
		Misplaced:  misplaced,
		Total:      t.total,
	})
}

// HintRequested reports the hint number and its penalty magnitude.
func (t *Tracker) HintRequested(ctx context.Context, count, penalty int) {
	t.emit(ctx, HintRequested{Meta: t.meta(), HintCount: count, Penalty: penalty})
}

// GameRestarted resets the guess counter. The session is kept.
func (t *Tracker) GameRestarted(ctx context.Context) {
	t.total = 0
	t.emit(ctx, GameRestarted{Meta: t.meta()})
}

// GameEnded reports the outcome and resets the guess counter.
func (t *Tracker) GameEnded(ctx context.Context, e GameEnded) {
	e.Meta = t.meta()
	t.emit(ctx, e)
	t.total = 0
}

// ErrorEncountered reports a rejected guess.
func (t *Tracker) ErrorEncountered(ctx context.Context, word, message string) {
	t.emit(ctx, ErrorEncountered{Meta: t.meta(), Word: word, Message: message})
}
