package wordguess

import "errors"

// Per-action errors. None of them is fatal: the engine reports them through
// result values and Snapshot.ErrorMessage instead of changing state.
var (
	ErrInvalidWord     = errors.New("not a valid word")
	ErrLengthMismatch  = errors.New("guess length does not match the secret word")
	ErrNoHintsLeft     = errors.New("no hints left")
	ErrNothingToReveal = errors.New("every letter is already revealed")
	ErrNotPlaying      = errors.New("no game in progress")
	ErrGameInProgress  = errors.New("a game is already in progress")
)
