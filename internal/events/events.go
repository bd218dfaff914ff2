// Package events is a local journal of what happens during a game.
// Frontends report through a Tracker; sinks decide where events go.
package events

import "time"

// Event names.
const (
	NameGameStarted      = "game started"
	NameWordGuessed      = "word guessed"
	NameHintRequested    = "hint requested"
	NameGameRestarted    = "game restarted"
	NameGameEnded        = "game ended"
	NameErrorEncountered = "error encountered"
)

// Meta is carried by every event.
type Meta struct {
	Session string // regenerated on every game start
	Pack    string
	At      time.Time
}

// Event is one journal record.
type Event interface {
	Name() string
	Metadata() Meta
	// Fields returns the payload as alternating keys and values.
	Fields() []any
}

type GameStarted struct {
	Meta
}

func (e GameStarted) Name() string   { return NameGameStarted }
func (e GameStarted) Metadata() Meta { return e.Meta }
func (e GameStarted) Fields() []any  { return nil }

type WordGuessed struct {
	Meta
	Word       string
	WordLength int
	Correct    int
	Misplaced  int
	Total      int // guesses so far in this game
}

func (e WordGuessed) Name() string   { return NameWordGuessed }
func (e WordGuessed) Metadata() Meta { return e.Meta }
func (e WordGuessed) Fields() []any {
	return []any{
		"word", e.Word,
		"length", e.WordLength,
		"correct", e.Correct,
		"misplaced", e.Misplaced,
		"total", e.Total,
	}
}

type HintRequested struct {
	Meta
	HintCount int
	Penalty   int
}

func (e HintRequested) Name() string   { return NameHintRequested }
func (e HintRequested) Metadata() Meta { return e.Meta }
func (e HintRequested) Fields() []any {
	return []any{"hints", e.HintCount, "penalty", e.Penalty}
}

type GameRestarted struct {
	Meta
}

func (e GameRestarted) Name() string   { return NameGameRestarted }
func (e GameRestarted) Metadata() Meta { return e.Meta }
func (e GameRestarted) Fields() []any  { return nil }

// GameEnded is emitted once per game. Completed is false when the player
// gave up before the game was decided.
type GameEnded struct {
	Meta
	Won       bool
	Completed bool
	Score     int
	Guesses   int
	HintsUsed int
	Word      string
}

func (e GameEnded) Name() string   { return NameGameEnded }
func (e GameEnded) Metadata() Meta { return e.Meta }
func (e GameEnded) Fields() []any {
	return []any{
		"won", e.Won,
		"completed", e.Completed,
		"score", e.Score,
		"guesses", e.Guesses,
		"hints", e.HintsUsed,
	}
}

type ErrorEncountered struct {
	Meta
	Word    string
	Message string
}

func (e ErrorEncountered) Name() string   { return NameErrorEncountered }
func (e ErrorEncountered) Metadata() Meta { return e.Meta }
func (e ErrorEncountered) Fields() []any {
	return []any{"word", e.Word, "error", e.Message}
}
