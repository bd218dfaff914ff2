// Package wordguess implements the secret-word game engine: secret selection,
// per-guess letter feedback, scoring with hint penalties and the
// waiting/playing/won/lost state machine.
//
// An Engine is owned by exactly one caller (a TUI model or an SSH session).
// It performs no I/O and holds no locks; callers that share
// one across goroutines must serialize access themselves.
package wordguess

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/vovakirdan/wordguess/internal/config"
	"github.com/vovakirdan/wordguess/internal/words"
)

// Engine is the game state machine.
type Engine struct {
	bank   *words.Bank
	rules  config.Rules
	policy ScoringPolicy
	rng    *rand.Rand

	state      State
	secret     string
	lastSecret string // secret of the last ended game, not picked again next
	history    []GuessRecord
	score      int
	hintsUsed  int
	hinted     []bool // positions revealed by hints
	errMsg     string
}

// Option configures NewEngine.
type Option func(*Engine)

// WithSeed makes secret word selection deterministic.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for secret word selection.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// NewEngine creates an engine in the waiting state.
// It fails with words.ErrEmptyBank when there is no bank, and with a
// config validation error for inconsistent rules.
func NewEngine(bank *words.Bank, rules config.Rules, opts ...Option) (*Engine, error) {
	if bank == nil || bank.Len() == 0 {
		return nil, words.ErrEmptyBank
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rules.WordLength > 0 && !lo.EveryBy(bank.Lengths(), func(n int) bool { return n == rules.WordLength }) {
		return nil, fmt.Errorf("wordguess: bank is not limited to %d-letter words: %w", rules.WordLength, words.ErrEmptyBank)
	}

	e := &Engine{
		bank:   bank,
		rules:  rules,
		policy: NewScoringPolicy(rules),
		state:  StateWaiting,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e, nil
}

// Rules returns the rules the engine was built with.
func (e *Engine) Rules() config.Rules {
	return e.rules
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// StartNewGame picks a secret word and opens the game.
// It is only valid from the waiting state; otherwise nothing changes and
// ErrGameInProgress is returned.
func (e *Engine) StartNewGame() (Snapshot, error) {
	if e.state != StateWaiting {
		return e.Snapshot(), ErrGameInProgress
	}
	e.begin(e.bank.PickExcluding(e.rng, e.lastSecret))
	return e.Snapshot(), nil
}

// GuessWord submits a guess. Length is checked first, then the dictionary;
// a rejected guess only sets the error message. An accepted guess is
// evaluated, scored and appended to the history, and may end the game.
// Outside the playing state the call changes nothing.
func (e *Engine) GuessWord(text string) GuessResult {
	if e.state != StatePlaying {
		return GuessResult{Err: ErrNotPlaying, Snapshot: e.Snapshot()}
	}

	normalized := strings.ToUpper(strings.TrimSpace(text))
	length := utf8.RuneCountInString(e.secret)

	if utf8.RuneCountInString(normalized) != length {
		e.errMsg = fmt.Sprintf("Guess must be %d letters long", length)
		return GuessResult{Err: ErrLengthMismatch, Snapshot: e.Snapshot()}
	}
	if !e.bank.IsValid(normalized) {
		e.errMsg = fmt.Sprintf("%q is not in the word list", normalized)
		return GuessResult{Err: ErrInvalidWord, Snapshot: e.Snapshot()}
	}

	feedback, err := Evaluate(e.secret, normalized)
	if err != nil {
		e.errMsg = err.Error()
		return GuessResult{Err: err, Snapshot: e.Snapshot()}
	}

	e.history = append(e.history, GuessRecord{
		Raw:        text,
		Normalized: normalized,
		Feedback:   feedback,
	})
	e.score += e.policy.ScoreForGuess(feedback)
	e.errMsg = ""

	switch {
	case Solved(feedback):
		e.state = StateWon
	case len(e.history) >= e.rules.MaxGuesses:
		e.state = StateLost
	}

	return GuessResult{
		Accepted: true,
		Feedback: cloneFeedback(feedback),
		Summary:  Summarize(feedback),
		Snapshot: e.Snapshot(),
	}
}

// UseHint reveals the next hidden letter and charges the hint penalty.
// With no hints left, nothing left to reveal or no game in progress it is
// a no-op and Applied is false.
func (e *Engine) UseHint() HintResult {
	if e.state != StatePlaying {
		return HintResult{Err: ErrNotPlaying, Snapshot: e.Snapshot()}
	}

	h, err := NextHint(e.secret, e.revealed(), e.hintsUsed, e.rules.MaxHints)
	if err != nil {
		return HintResult{Err: err, Snapshot: e.Snapshot()}
	}

	e.hintsUsed++
	penalty := e.policy.HintPenalty(e.hintsUsed)
	e.score += penalty
	e.hinted[h.Position] = true
	e.errMsg = ""

	return HintResult{
		Applied:  true,
		Index:    e.hintsUsed,
		Penalty:  penalty,
		Position: h.Position,
		Letter:   h.Letter,
		Snapshot: e.Snapshot(),
	}
}

// RestartGame ends the current game and starts a new one in a single step.
// The new secret differs from the previous one whenever the bank allows it.
// In the waiting state there is no game to restart and nothing changes.
func (e *Engine) RestartGame() Snapshot {
	if e.state == StateWaiting {
		return e.Snapshot()
	}
	e.begin(e.bank.PickExcluding(e.rng, e.secret))
	return e.Snapshot()
}

// EndGame returns to the waiting state, discarding the secret and history.
// The Outcome describes the game that was ended; it is zero when no game
// was open.
func (e *Engine) EndGame() (Outcome, Snapshot) {
	var out Outcome
	if e.state != StateWaiting {
		out = Outcome{
			Secret:       e.secret,
			Score:        e.score,
			DisplayScore: displayScore(e.score),
			Guesses:      len(e.history),
			HintsUsed:    e.hintsUsed,
			Won:          e.state == StateWon,
			Completed:    e.state == StateWon || e.state == StateLost,
		}
		e.lastSecret = e.secret
	}

	e.state = StateWaiting
	e.secret = ""
	e.history = nil
	e.score = 0
	e.hintsUsed = 0
	e.hinted = nil
	e.errMsg = ""

	return out, e.Snapshot()
}

func (e *Engine) begin(secret string) {
	e.state = StatePlaying
	e.secret = secret
	e.history = nil
	e.score = e.rules.BaseScore
	e.hintsUsed = 0
	e.hinted = make([]bool, utf8.RuneCountInString(secret))
	e.errMsg = ""
}

// revealed marks positions uncovered by hints or by a correct letter in
// any accepted guess.
func (e *Engine) revealed() []bool {
	out := append([]bool(nil), e.hinted...)
	for _, g := range e.history {
		for i, f := range g.Feedback {
			if f.State == LetterCorrect && i < len(out) {
				out[i] = true
			}
		}
	}
	return out
}

func cloneFeedback(f []LetterFeedback) []LetterFeedback {
	return append([]LetterFeedback(nil), f...)
}
