package wordguess

import "github.com/vovakirdan/wordguess/internal/config"

// ScoringPolicy turns feedback and hint usage into score deltas.
// Misses are never penalized; hints cost more the more are used.
type ScoringPolicy struct {
	CorrectPoints   int
	MisplacedPoints int
	HintPenalties   []int // magnitudes, index 0 is the first hint
}

// NewScoringPolicy builds a policy from the game rules.
func NewScoringPolicy(r config.Rules) ScoringPolicy {
	return ScoringPolicy{
		CorrectPoints:   r.CorrectPoints,
		MisplacedPoints: r.MisplacedPoints,
		HintPenalties:   append([]int(nil), r.HintPenalties...),
	}
}

// ScoreForGuess returns the points earned by one evaluated guess.
func (p ScoringPolicy) ScoreForGuess(feedback []LetterFeedback) int {
	s := Summarize(feedback)
	return s.Correct*p.CorrectPoints + s.Misplaced*p.MisplacedPoints
}

// HintPenalty returns the (negative) delta for the n-th hint, 1-based.
// Past the end of the schedule the last penalty is repeated.
func (p ScoringPolicy) HintPenalty(n int) int {
	if n < 1 || len(p.HintPenalties) == 0 {
		return 0
	}
	if n > len(p.HintPenalties) {
		n = len(p.HintPenalties)
	}
	return -p.HintPenalties[n-1]
}
