package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows screens to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Up arrow, k - move selection up
	ActionDown               // Down arrow, j - move selection down
	ActionConfirm            // Enter - submit guess / confirm selection
	ActionHint               // Ctrl+T - reveal a letter
	ActionRestart            // Ctrl+R - restart with a new word
	ActionEnd                // Ctrl+E - abandon the current game
	ActionLeaderboard        // L, Tab - open the leaderboard
	ActionNewGame            // N, S - start a new game from a menu screen
	ActionBack               // Escape - go back / skip
	ActionClear              // C - clear the leaderboard
	ActionQuit               // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionHint:
		return "Hint"
	case ActionRestart:
		return "Restart"
	case ActionEnd:
		return "End"
	case ActionLeaderboard:
		return "Leaderboard"
	case ActionNewGame:
		return "NewGame"
	case ActionBack:
		return "Back"
	case ActionClear:
		return "Clear"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
