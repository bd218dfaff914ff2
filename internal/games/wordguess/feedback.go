package wordguess

import (
	"unicode/utf8"

	"github.com/samber/lo"
)

// LetterState is the evaluation result for a single letter of a guess.
type LetterState int

const (
	// LetterUnknown is the zero value. The evaluator never produces it;
	// the UI uses it for empty board cells.
	LetterUnknown   LetterState = iota
	LetterCorrect               // right letter, right position
	LetterMisplaced             // letter occurs elsewhere in the secret
	LetterAbsent                // letter not in the secret (or all its occurrences are used up)
)

// String returns a human-readable name for the state.
func (s LetterState) String() string {
	switch s {
	case LetterCorrect:
		return "correct"
	case LetterMisplaced:
		return "misplaced"
	case LetterAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// LetterFeedback pairs a guessed letter with its evaluation.
type LetterFeedback struct {
	Letter rune
	State  LetterState
}

// Summary counts the states of one guess.
type Summary struct {
	Correct   int
	Misplaced int
	Absent    int
}

// Evaluate compares guess against secret position by position.
// Both must already be normalized to the same case. A guess whose length
// differs from the secret is rejected with ErrLengthMismatch, never
// partially evaluated.
//
// Pass 1 marks exact matches and counts the secret letters left unmatched.
// Pass 2 marks a remaining guess letter misplaced while the secret still has
// an unmatched copy of it, absent otherwise. A letter can therefore never
// be credited more often than it occurs in the secret.
func Evaluate(secret, guess string) ([]LetterFeedback, error) {
	if utf8.RuneCountInString(secret) != utf8.RuneCountInString(guess) {
		return nil, ErrLengthMismatch
	}

	s := []rune(secret)
	g := []rune(guess)
	out := make([]LetterFeedback, len(g))
	remaining := make(map[rune]int, len(s))

	for i := range g {
		out[i].Letter = g[i]
		if g[i] == s[i] {
			out[i].State = LetterCorrect
			continue
		}
		remaining[s[i]]++
	}

	for i := range g {
		if out[i].State == LetterCorrect {
			continue
		}
		if remaining[g[i]] > 0 {
			out[i].State = LetterMisplaced
			remaining[g[i]]--
		} else {
			out[i].State = LetterAbsent
		}
	}

	return out, nil
}

// Summarize counts correct, misplaced and absent letters.
func Summarize(feedback []LetterFeedback) Summary {
	counts := lo.CountValuesBy(feedback, func(f LetterFeedback) LetterState {
		return f.State
	})
	return Summary{
		Correct:   counts[LetterCorrect],
		Misplaced: counts[LetterMisplaced],
		Absent:    counts[LetterAbsent],
	}
}

// Solved reports whether every letter is in the correct position.
func Solved(feedback []LetterFeedback) bool {
	return len(feedback) > 0 && lo.EveryBy(feedback, func(f LetterFeedback) bool {
		return f.State == LetterCorrect
	})
}
