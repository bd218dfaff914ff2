package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordguess/internal/core"
)

// KeyMap defines the key bindings of every screen.
type KeyMap struct {
	Guess       key.Binding
	Hint        key.Binding
	Restart     key.Binding
	End         key.Binding
	Back        key.Binding
	Quit        key.Binding
	Up          key.Binding
	Down        key.Binding
	Leaderboard key.Binding
	NewGame     key.Binding
	Clear       key.Binding
	Yes         key.Binding
	No          key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Guess: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "guess"),
		),
		Hint: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "hint"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
		End: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "end game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("l", "tab"),
			key.WithHelp("l", "leaderboard"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n", "s"),
			key.WithHelp("n", "new game"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear scores"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "no"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action. While typing, printable
// keys belong to the text input and only control keys map to actions.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, typing bool) core.Action {
	if msg.Type == tea.KeyCtrlC {
		return core.ActionQuit
	}

	// Control keys work on every screen.
	switch {
	case key.Matches(msg, km.keys.Guess):
		return core.ActionConfirm
	case key.Matches(msg, km.keys.Hint):
		return core.ActionHint
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.keys.End):
		return core.ActionEnd
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack
	}

	if typing {
		return core.ActionNone
	}

	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown
	case key.Matches(msg, km.keys.Leaderboard):
		return core.ActionLeaderboard
	case key.Matches(msg, km.keys.NewGame):
		return core.ActionNewGame
	case key.Matches(msg, km.keys.Clear):
		return core.ActionClear
	}

	return core.ActionNone
}

// playingHelp lists the bindings shown under the guess input.
func (k KeyMap) playingHelp() []key.Binding {
	return []key.Binding{k.Guess, k.Hint, k.Restart, k.End, k.Quit}
}

func (k KeyMap) startHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NewGame, k.Leaderboard, k.Quit}
}

func (k KeyMap) leaderboardHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NewGame, k.Clear, k.Back, k.Quit}
}
