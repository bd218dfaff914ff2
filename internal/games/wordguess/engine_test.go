package wordguess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wordguess/internal/config"
	"github.com/vovakirdan/wordguess/internal/words"
)

var testAllowed = []string{"ALLEY", "CRANE", "BOOST", "SLATE", "PLANE"}

// newTestEngine returns an engine whose only secret is APPLE.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	bank, err := words.NewBank([]string{"APPLE"}, testAllowed)
	require.NoError(t, err)
	e, err := NewEngine(bank, config.DefaultRules(), WithSeed(1))
	require.NoError(t, err)
	return e
}

func startedEngine(t *testing.T) *Engine {
	t.Helper()
	e := newTestEngine(t)
	_, err := e.StartNewGame()
	require.NoError(t, err)
	return e
}

func TestNewEngine_Errors(t *testing.T) {
	_, err := NewEngine(nil, config.DefaultRules())
	assert.ErrorIs(t, err, words.ErrEmptyBank)

	bank, err := words.NewBank([]string{"APPLE"}, nil)
	require.NoError(t, err)

	rules := config.DefaultRules()
	rules.HintPenalties = []int{20, 15, 10}
	_, err = NewEngine(bank, rules)
	assert.ErrorIs(t, err, config.ErrInvalid)

	rules = config.DefaultRules()
	rules.WordLength = 6
	_, err = NewEngine(bank, rules)
	assert.ErrorIs(t, err, words.ErrEmptyBank)
}

func TestEngine_InitialState(t *testing.T) {
	e := newTestEngine(t)
	snap := e.Snapshot()

	assert.Equal(t, StateWaiting, snap.State)
	assert.Equal(t, 0, snap.GuessCount)
	assert.Empty(t, snap.DisplayWord)
	assert.Empty(t, snap.Secret)
	assert.False(t, snap.CanHint)
}

func TestEngine_StartNewGame(t *testing.T) {
	e := newTestEngine(t)

	snap, err := e.StartNewGame()
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 5, snap.WordLength)
	assert.Equal(t, "_____", snap.DisplayWord)
	assert.Equal(t, 6, snap.MaxGuesses)
	assert.Equal(t, 3, snap.MaxHints)
	assert.True(t, snap.CanHint)
	assert.Empty(t, snap.Secret, "secret stays hidden while playing")

	// Only valid from waiting.
	e.GuessWord("ALLEY")
	before := e.Snapshot()
	again, err := e.StartNewGame()
	assert.ErrorIs(t, err, ErrGameInProgress)
	assert.Equal(t, before, again)
}

func TestEngine_BaseScore(t *testing.T) {
	bank, err := words.NewBank([]string{"APPLE"}, nil)
	require.NoError(t, err)
	rules := config.DefaultRules()
	rules.BaseScore = 100

	e, err := NewEngine(bank, rules)
	require.NoError(t, err)
	snap, err := e.StartNewGame()
	require.NoError(t, err)
	assert.Equal(t, 100, snap.Score)
}

func TestEngine_GuessAccepted(t *testing.T) {
	e := startedEngine(t)

	res := e.GuessWord("alley")
	require.True(t, res.Accepted)
	require.NoError(t, res.Err)
	assert.Equal(t, Summary{Correct: 1, Misplaced: 2, Absent: 2}, res.Summary)
	assert.Len(t, res.Feedback, 5)

	snap := res.Snapshot
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, 30, snap.Score)
	assert.Equal(t, 1, snap.GuessCount)
	assert.Equal(t, 1, snap.IncorrectGuesses)
	assert.Equal(t, "A____", snap.DisplayWord, "correct letters are revealed")
	require.Len(t, snap.History, 1)
	assert.Equal(t, "alley", snap.History[0].Raw)
	assert.Equal(t, "ALLEY", snap.History[0].Normalized)
}

func TestEngine_GuessRejected(t *testing.T) {
	tests := []struct {
		name  string
		guess string
		err   error
	}{
		{"unknown word", "ZZZZZ", ErrInvalidWord},
		{"too short", "APP", ErrLengthMismatch},
		{"too long", "APPLES", ErrLengthMismatch},
		{"empty", "", ErrLengthMismatch},
		{"length checked first", "QQ", ErrLengthMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := startedEngine(t)
			e.GuessWord("ALLEY")

			res := e.GuessWord(tc.guess)
			assert.False(t, res.Accepted)
			assert.ErrorIs(t, res.Err, tc.err)
			assert.NotEmpty(t, res.Snapshot.ErrorMessage)
			assert.Equal(t, 30, res.Snapshot.Score, "no score change")
			assert.Equal(t, 1, res.Snapshot.GuessCount, "no guess count change")
			assert.Equal(t, StatePlaying, res.Snapshot.State)
		})
	}
}

func TestEngine_SuccessClearsError(t *testing.T) {
	e := startedEngine(t)

	res := e.GuessWord("ZZZZZ")
	require.NotEmpty(t, res.Snapshot.ErrorMessage)

	res = e.GuessWord("CRANE")
	require.True(t, res.Accepted)
	assert.Empty(t, res.Snapshot.ErrorMessage)

	e.GuessWord("XX")
	hint := e.UseHint()
	require.True(t, hint.Applied)
	assert.Empty(t, hint.Snapshot.ErrorMessage)
}

func TestEngine_RepeatedGuessesScoreEachTime(t *testing.T) {
	e := startedEngine(t)

	e.GuessWord("ALLEY")
	snap := e.GuessWord("ALLEY").Snapshot
	assert.Equal(t, 60, snap.Score)
	assert.Equal(t, 2, snap.GuessCount)
}

func TestEngine_Win(t *testing.T) {
	e := startedEngine(t)
	e.GuessWord("CRANE")

	res := e.GuessWord("Apple")
	require.True(t, res.Accepted)
	snap := res.Snapshot
	assert.Equal(t, StateWon, snap.State)
	assert.Equal(t, "APPLE", snap.Secret)
	assert.Equal(t, "APPLE", snap.DisplayWord)
	assert.Equal(t, 2, snap.GuessCount)
	assert.Equal(t, 1, snap.IncorrectGuesses, "the winning guess is not incorrect")
	assert.Equal(t, 25+100, snap.Score)
	assert.False(t, snap.CanHint)
}

func TestEngine_WinOnFirstGuess(t *testing.T) {
	e := startedEngine(t)
	snap := e.GuessWord("APPLE").Snapshot
	assert.Equal(t, StateWon, snap.State)
	assert.Equal(t, 0, snap.IncorrectGuesses)
}

func TestEngine_LossOnSixthGuess(t *testing.T) {
	e := startedEngine(t)

	for i := 1; i <= 5; i++ {
		snap := e.GuessWord("CRANE").Snapshot
		require.Equal(t, StatePlaying, snap.State, "guess %d", i)
		require.Empty(t, snap.Secret)
	}

	snap := e.GuessWord("CRANE").Snapshot
	assert.Equal(t, StateLost, snap.State)
	assert.Equal(t, 6, snap.GuessCount)
	assert.Equal(t, 6, snap.IncorrectGuesses)
	assert.Equal(t, "APPLE", snap.Secret)
	assert.Equal(t, 6*25, snap.Score)
}

func TestEngine_WinOnLastGuess(t *testing.T) {
	e := startedEngine(t)
	for i := 0; i < 5; i++ {
		e.GuessWord("CRANE")
	}
	snap := e.GuessWord("APPLE").Snapshot
	assert.Equal(t, StateWon, snap.State, "a win on the last guess is a win")
}

func TestEngine_CustomGuessBudget(t *testing.T) {
	bank, err := words.NewBank([]string{"APPLE"}, testAllowed)
	require.NoError(t, err)
	rules := config.DefaultRules()
	rules.MaxGuesses = 2

	e, err := NewEngine(bank, rules)
	require.NoError(t, err)
	_, err = e.StartNewGame()
	require.NoError(t, err)

	e.GuessWord("CRANE")
	assert.Equal(t, StateLost, e.GuessWord("SLATE").Snapshot.State)
}

func TestEngine_NoMutationOutsidePlaying(t *testing.T) {
	won := startedEngine(t)
	won.GuessWord("APPLE")

	lost := startedEngine(t)
	for i := 0; i < 6; i++ {
		lost.GuessWord("CRANE")
	}

	waiting := newTestEngine(t)

	for name, e := range map[string]*Engine{"won": won, "lost": lost, "waiting": waiting} {
		t.Run(name, func(t *testing.T) {
			before := e.Snapshot()

			res := e.GuessWord("APPLE")
			assert.False(t, res.Accepted)
			assert.ErrorIs(t, res.Err, ErrNotPlaying)

			hint := e.UseHint()
			assert.False(t, hint.Applied)
			assert.ErrorIs(t, hint.Err, ErrNotPlaying)

			assert.Equal(t, before, e.Snapshot())
		})
	}
}

func TestEngine_Hints(t *testing.T) {
	e := startedEngine(t)

	expected := []struct {
		penalty  int
		position int
		letter   rune
		display  string
	}{
		{-10, 0, 'A', "A____"},
		{-15, 1, 'P', "AP___"},
		{-20, 2, 'P', "APP__"},
	}

	for i, want := range expected {
		res := e.UseHint()
		require.True(t, res.Applied, "hint %d", i+1)
		assert.Equal(t, i+1, res.Index)
		assert.Equal(t, want.penalty, res.Penalty)
		assert.Equal(t, want.position, res.Position)
		assert.Equal(t, want.letter, res.Letter)
		assert.Equal(t, want.display, res.Snapshot.DisplayWord)
	}

	snap := e.Snapshot()
	assert.Equal(t, -45, snap.Score)
	assert.Equal(t, 0, snap.DisplayScore, "display score is clamped")
	assert.Equal(t, 3, snap.HintsUsed)
	assert.False(t, snap.CanHint)

	// A fourth hint is a silent no-op.
	res := e.UseHint()
	assert.False(t, res.Applied)
	assert.ErrorIs(t, res.Err, ErrNoHintsLeft)
	assert.Equal(t, snap, e.Snapshot())
}

func TestEngine_HintSkipsGuessedPositions(t *testing.T) {
	e := startedEngine(t)
	e.GuessWord("PLANE") // E is correct at position 4
	e.GuessWord("ALLEY") // A is correct at position 0

	res := e.UseHint()
	require.True(t, res.Applied)
	assert.Equal(t, 1, res.Position)
	assert.Equal(t, "AP__E", res.Snapshot.DisplayWord)
}

func TestEngine_RestartGame(t *testing.T) {
	bank, err := words.NewBank([]string{"APPLE", "CRANE"}, testAllowed)
	require.NoError(t, err)
	e, err := NewEngine(bank, config.DefaultRules(), WithSeed(99))
	require.NoError(t, err)

	_, err = e.StartNewGame()
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		// Given a game in progress with a guess and a hint
		e.GuessWord("SLATE")
		e.UseHint()
		prev := e.Snapshot().DisplayWord

		// When it is restarted
		snap := e.RestartGame()

		// Then a fresh game starts on the other word
		assert.Equal(t, StatePlaying, snap.State)
		assert.Equal(t, 0, snap.GuessCount)
		assert.Equal(t, 0, snap.HintsUsed)
		assert.Equal(t, 0, snap.Score)
		assert.Empty(t, snap.History)
		assert.Equal(t, "_____", snap.DisplayWord)

		hint := e.UseHint()
		require.True(t, hint.Applied)
		assert.NotEqual(t, prev[:1], hint.Snapshot.DisplayWord[:1], "restart picks a different word")
	}
}

func TestEngine_RestartFromWaiting(t *testing.T) {
	e := newTestEngine(t)

	snap := e.RestartGame()
	assert.Equal(t, StateWaiting, snap.State)
	assert.Empty(t, snap.DisplayWord)
	assert.Equal(t, e.Snapshot(), snap)

	// After an ended game the engine waits again and restart stays a no-op.
	_, err := e.StartNewGame()
	require.NoError(t, err)
	e.GuessWord("ALLEY")
	e.EndGame()

	snap = e.RestartGame()
	assert.Equal(t, StateWaiting, snap.State)
	assert.Equal(t, 0, snap.GuessCount)
}

func TestEngine_StartAfterEndAvoidsLastWord(t *testing.T) {
	bank, err := words.NewBank([]string{"APPLE", "CRANE"}, testAllowed)
	require.NoError(t, err)
	e, err := NewEngine(bank, config.DefaultRules(), WithSeed(7))
	require.NoError(t, err)

	_, err = e.StartNewGame()
	require.NoError(t, err)
	prev, _ := e.EndGame()

	for i := 0; i < 10; i++ {
		_, err := e.StartNewGame()
		require.NoError(t, err)
		out, _ := e.EndGame()
		assert.NotEqual(t, prev.Secret, out.Secret)
		prev = out
	}
}

func TestEngine_RestartFromDecidedStates(t *testing.T) {
	e := startedEngine(t)
	e.GuessWord("APPLE")
	require.Equal(t, StateWon, e.State())

	snap := e.RestartGame()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Empty(t, snap.Secret)
	assert.Empty(t, snap.History)
}

func TestEngine_EndGame(t *testing.T) {
	e := startedEngine(t)
	e.GuessWord("ALLEY")
	e.UseHint()

	out, snap := e.EndGame()
	assert.Equal(t, Outcome{
		Secret:       "APPLE",
		Score:        20,
		DisplayScore: 20,
		Guesses:      1,
		HintsUsed:    1,
		Won:          false,
		Completed:    false,
	}, out)
	assert.Equal(t, StateWaiting, snap.State)
	assert.Empty(t, snap.History)
	assert.Empty(t, snap.DisplayWord)
	assert.Equal(t, 0, snap.HintsUsed)

	// Nothing to end.
	out, _ = e.EndGame()
	assert.Equal(t, Outcome{}, out)

	// waiting -> playing again
	snap, err := e.StartNewGame()
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, snap.State)
}

func TestEngine_EndGameAfterWin(t *testing.T) {
	e := startedEngine(t)
	e.GuessWord("APPLE")

	out, _ := e.EndGame()
	assert.True(t, out.Won)
	assert.True(t, out.Completed)
	assert.Equal(t, 100, out.Score)
	assert.Equal(t, 1, out.Guesses)
}

func TestEngine_SnapshotIsACopy(t *testing.T) {
	e := startedEngine(t)
	e.GuessWord("ALLEY")

	snap := e.Snapshot()
	snap.History[0].Feedback[0].State = LetterAbsent
	snap.History[0].Normalized = "XXXXX"

	fresh := e.Snapshot()
	assert.Equal(t, LetterCorrect, fresh.History[0].Feedback[0].State)
	assert.Equal(t, "ALLEY", fresh.History[0].Normalized)
}

func TestEngine_DeterministicWithSeed(t *testing.T) {
	bank, _, err := words.Open(words.DefaultPack)
	require.NoError(t, err)

	e1, err := NewEngine(bank, config.DefaultRules(), WithSeed(12345))
	require.NoError(t, err)
	e2, err := NewEngine(bank, config.DefaultRules(), WithSeed(12345))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		_, err := e1.StartNewGame()
		require.NoError(t, err)
		_, err = e2.StartNewGame()
		require.NoError(t, err)

		o1, _ := e1.EndGame()
		o2, _ := e2.EndGame()
		require.Equal(t, o1.Secret, o2.Secret, "game %d", i)
		require.True(t, bank.IsValid(o1.Secret))
	}
}
