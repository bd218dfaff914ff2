// Package router parses wordguess:// deep links into navigation targets.
package router

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Scheme is the URL scheme handled by Parse.
const Scheme = "wordguess"

var (
	// ErrUnknownScheme is returned for URLs outside the wordguess scheme.
	ErrUnknownScheme = errors.New("router: unknown URL scheme")
	// ErrUnknownRoute is returned for wordguess URLs with no matching screen.
	ErrUnknownRoute = errors.New("router: unknown route")
)

// Kind identifies a navigation target.
type Kind int

const (
	RouteUnknown Kind = iota
	RouteGame
	RouteNewGame
	RouteGameWithWord
	RouteLeaderboard
)

func (k Kind) String() string {
	switch k {
	case RouteGame:
		return "game"
	case RouteNewGame:
		return "new game"
	case RouteGameWithWord:
		return "game with word"
	case RouteLeaderboard:
		return "leaderboard"
	default:
		return "unknown"
	}
}

// Route is a parsed deep link.
type Route struct {
	Kind Kind
	Word string // RouteGameWithWord only, as given in the URL
	Raw  string
}

// Example is a sample deep link.
type Example struct {
	Title string
	URL   string
}

// Examples lists one URL per route.
var Examples = []Example{
	{Title: "Open Game", URL: "wordguess://game"},
	{Title: "New Game", URL: "wordguess://game/new"},
	{Title: "Game with Word", URL: "wordguess://game?word=SWIFT"},
	{Title: "Leaderboard", URL: "wordguess://leaderboard"},
}

// Parse resolves raw into a route. On failure the returned route has
// RouteUnknown and the error wraps ErrUnknownScheme or ErrUnknownRoute.
func Parse(raw string) (Route, error) {
	unknown := Route{Kind: RouteUnknown, Raw: raw}

	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return unknown, fmt.Errorf("%w: %v", ErrUnknownRoute, err)
	}
	if !strings.EqualFold(u.Scheme, Scheme) {
		scheme := u.Scheme
		if scheme == "" {
			scheme = "none"
		}
		return unknown, fmt.Errorf("%w: %s", ErrUnknownScheme, scheme)
	}

	switch u.Host {
	case "game":
		if u.Path == "/new" {
			return Route{Kind: RouteNewGame, Raw: raw}, nil
		}
		if word := u.Query().Get("word"); word != "" {
			return Route{Kind: RouteGameWithWord, Word: word, Raw: raw}, nil
		}
		return Route{Kind: RouteGame, Raw: raw}, nil
	case "leaderboard":
		return Route{Kind: RouteLeaderboard, Raw: raw}, nil
	default:
		return unknown, fmt.Errorf("%w: %s", ErrUnknownRoute, raw)
	}
}

// Notice is the message shown after navigating to r.
func (r Route) Notice() string {
	switch r.Kind {
	case RouteGame:
		return "Opened game"
	case RouteNewGame:
		return "Started a new game"
	case RouteGameWithWord:
		return fmt.Sprintf("Started a new game (link word: %s)", strings.ToUpper(r.Word))
	case RouteLeaderboard:
		return "Opened leaderboard"
	default:
		return "Unknown URL: " + r.Raw
	}
}
