package wordguess

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wordguess/internal/config"
)

func states(f []LetterFeedback) []LetterState {
	out := make([]LetterState, len(f))
	for i := range f {
		out[i] = f[i].State
	}
	return out
}

const (
	C = LetterCorrect
	M = LetterMisplaced
	A = LetterAbsent
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		secret, guess string
		expected      []LetterState
	}{
		{"APPLE", "ALLEY", []LetterState{C, M, A, M, A}},
		{"APPLE", "APPLE", []LetterState{C, C, C, C, C}},
		{"APPLE", "CRANE", []LetterState{A, A, M, A, C}},
		{"ABCDE", "AABBB", []LetterState{C, A, M, A, A}},
		{"ABBEY", "BABES", []LetterState{M, M, C, C, A}},
		{"SPEED", "EERIE", []LetterState{M, M, A, A, A}},
		{"LLAMA", "HALLO", []LetterState{A, M, M, M, A}},
		{"BOOK", "OBOE", []LetterState{M, M, C, A}},
	}

	for _, tc := range tests {
		t.Run(tc.secret+"/"+tc.guess, func(t *testing.T) {
			fb, err := Evaluate(tc.secret, tc.guess)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, states(fb))
			for i, r := range tc.guess {
				assert.Equal(t, r, fb[i].Letter)
			}
		})
	}
}

func TestEvaluate_LengthMismatch(t *testing.T) {
	for _, guess := range []string{"", "APP", "APPLES"} {
		fb, err := Evaluate("APPLE", guess)
		assert.ErrorIs(t, err, ErrLengthMismatch, "guess %q", guess)
		assert.Nil(t, fb)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	first, err := Evaluate("APPLE", "ALLEY")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Evaluate("APPLE", "ALLEY")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// Every generated pair must respect the letter budget: a letter is marked
// correct only where it matches, and correct+misplaced marks for a letter
// equal the smaller of its counts in secret and guess.
func TestEvaluate_LetterCountBound(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	const alphabet = "ABCE"

	randomWord := func(n int) string {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(alphabet[r.Intn(len(alphabet))])
		}
		return b.String()
	}

	for n := 0; n < 2000; n++ {
		length := 4 + r.Intn(4)
		secret, guess := randomWord(length), randomWord(length)

		fb, err := Evaluate(secret, guess)
		require.NoError(t, err)
		require.Len(t, fb, length)

		credited := map[rune]int{}
		correct := map[rune]int{}
		misplaced := map[rune]int{}
		for i, f := range fb {
			require.NotEqual(t, LetterUnknown, f.State)
			if f.State == LetterCorrect {
				require.Equal(t, secret[i], guess[i], "%s/%s position %d", secret, guess, i)
				correct[f.Letter]++
			}
			if f.State == LetterMisplaced {
				require.NotEqual(t, secret[i], guess[i])
				misplaced[f.Letter]++
			}
			if f.State != LetterAbsent {
				credited[f.Letter]++
			}
		}

		for _, letter := range alphabet {
			inSecret := strings.Count(secret, string(letter))
			inGuess := strings.Count(guess, string(letter))
			assert.LessOrEqual(t, misplaced[letter], inSecret-correct[letter], "%s/%s letter %c", secret, guess, letter)
			assert.Equal(t, min(inSecret, inGuess), credited[letter], "%s/%s letter %c", secret, guess, letter)
		}
	}
}

func TestSummarizeAndSolved(t *testing.T) {
	fb, err := Evaluate("APPLE", "ALLEY")
	require.NoError(t, err)
	assert.Equal(t, Summary{Correct: 1, Misplaced: 2, Absent: 2}, Summarize(fb))
	assert.False(t, Solved(fb))

	fb, err = Evaluate("APPLE", "APPLE")
	require.NoError(t, err)
	assert.Equal(t, Summary{Correct: 5}, Summarize(fb))
	assert.True(t, Solved(fb))

	assert.False(t, Solved(nil))
}

func TestLetterStateString(t *testing.T) {
	assert.Equal(t, "correct", LetterCorrect.String())
	assert.Equal(t, "misplaced", LetterMisplaced.String())
	assert.Equal(t, "absent", LetterAbsent.String())
	assert.Equal(t, "unknown", LetterUnknown.String())
}

func TestScoringPolicy(t *testing.T) {
	p := NewScoringPolicy(config.DefaultRules())

	fb, err := Evaluate("APPLE", "ALLEY")
	require.NoError(t, err)
	assert.Equal(t, 30, p.ScoreForGuess(fb))

	fb, err = Evaluate("APPLE", "BOOST")
	require.NoError(t, err)
	assert.Equal(t, 0, p.ScoreForGuess(fb), "misses are never penalized")

	assert.Equal(t, -10, p.HintPenalty(1))
	assert.Equal(t, -15, p.HintPenalty(2))
	assert.Equal(t, -20, p.HintPenalty(3))
	assert.Greater(t, p.HintPenalty(1), p.HintPenalty(2))
	assert.Greater(t, p.HintPenalty(2), p.HintPenalty(3))
	assert.Equal(t, -45, p.HintPenalty(1)+p.HintPenalty(2)+p.HintPenalty(3))

	assert.Equal(t, 0, p.HintPenalty(0))
	assert.Equal(t, -20, p.HintPenalty(4), "schedule repeats its last step")
	assert.Equal(t, 0, ScoringPolicy{}.HintPenalty(1))
}

func TestNextHint(t *testing.T) {
	h, err := NextHint("APPLE", nil, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, Hint{Position: 0, Letter: 'A'}, h)

	h, err = NextHint("APPLE", []bool{true, false, true}, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, Hint{Position: 1, Letter: 'P'}, h)

	h, err = NextHint("APPLE", []bool{true, true, true, false, false}, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, Hint{Position: 3, Letter: 'L'}, h)

	_, err = NextHint("APPLE", nil, 3, 3)
	assert.ErrorIs(t, err, ErrNoHintsLeft)

	_, err = NextHint("APPLE", []bool{true, true, true, true, true}, 0, 3)
	assert.ErrorIs(t, err, ErrNothingToReveal)
}
