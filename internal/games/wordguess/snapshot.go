package wordguess

import (
	"github.com/samber/lo"

	"github.com/vovakirdan/wordguess/internal/core"
)

// State is the engine lifecycle state.
type State string

const (
	StateWaiting State = "waiting" // no active game
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Decided reports whether the game has ended in a win or a loss.
func (s State) Decided() bool {
	return s == StateWon || s == StateLost
}

// MaskRune hides unrevealed letters in Snapshot.DisplayWord.
const MaskRune = '_'

// GuessRecord is one accepted guess.
type GuessRecord struct {
	Raw        string // as typed
	Normalized string // upper-cased, trimmed
	Feedback   []LetterFeedback
}

// Snapshot is a read-only view of the engine, returned by every operation.
type Snapshot struct {
	State            State
	Score            int // may be negative
	DisplayScore     int // Score clamped to >= 0
	GuessCount       int
	MaxGuesses       int
	IncorrectGuesses int // accepted guesses that were not the winning one
	HintsUsed        int
	MaxHints         int
	CanHint          bool
	WordLength       int
	DisplayWord      string // secret with hidden letters replaced by MaskRune
	History          []GuessRecord
	ErrorMessage     string
	Secret           string // only set once the game is won or lost
}

// GuessResult is returned by GuessWord.
type GuessResult struct {
	Accepted bool
	Err      error
	Feedback []LetterFeedback
	Summary  Summary
	Snapshot Snapshot
}

// HintResult is returned by UseHint.
type HintResult struct {
	Applied  bool
	Err      error
	Index    int // 1-based hint number
	Penalty  int // negative score delta
	Position int // 0-based letter position
	Letter   rune
	Snapshot Snapshot
}

// Outcome describes a game closed by EndGame.
type Outcome struct {
	Secret       string
	Score        int
	DisplayScore int
	Guesses      int
	HintsUsed    int
	Won          bool
	Completed    bool // won or lost, as opposed to abandoned
}

// Snapshot returns the current engine view.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		State:        e.state,
		Score:        e.score,
		DisplayScore: displayScore(e.score),
		GuessCount:   len(e.history),
		MaxGuesses:   e.rules.MaxGuesses,
		HintsUsed:    e.hintsUsed,
		MaxHints:     e.rules.MaxHints,
		ErrorMessage: e.errMsg,
	}
	if e.state == StateWaiting {
		return snap
	}

	secret := []rune(e.secret)
	revealed := e.revealed()
	display := make([]rune, len(secret))
	for i, r := range secret {
		if revealed[i] || e.state.Decided() {
			display[i] = r
		} else {
			display[i] = MaskRune
		}
	}

	snap.WordLength = len(secret)
	snap.DisplayWord = string(display)
	snap.IncorrectGuesses = len(e.history)
	if e.state == StateWon {
		snap.IncorrectGuesses--
		snap.Secret = e.secret
	}
	if e.state == StateLost {
		snap.Secret = e.secret
	}
	snap.CanHint = e.state == StatePlaying && e.hintsUsed < e.rules.MaxHints && lo.Contains(revealed, false)

	snap.History = make([]GuessRecord, len(e.history))
	for i, g := range e.history {
		g.Feedback = cloneFeedback(g.Feedback)
		snap.History[i] = g
	}
	return snap
}

func displayScore(score int) int {
	return core.NonNegative(score)
}

