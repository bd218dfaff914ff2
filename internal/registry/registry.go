// Package registry provides a global registry of word packs.
// Packs register themselves in init() functions, allowing the CLI and the
// menu to discover them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownPack is returned by Create for an ID that was never registered.
var ErrUnknownPack = errors.New("registry: unknown pack")

// Pack is a named source of words for the game.
type Pack interface {
	// ID returns a unique identifier for this pack (e.g., "classic").
	// Used for CLI arguments and config files.
	ID() string

	// Title returns a human-readable name for display (e.g., "Classic (5 letters)").
	Title() string

	// Words returns the secret candidates and the extra accepted guesses.
	// Normalization is left to the word bank.
	Words() (answers, allowed []string, err error)
}

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a pack.
type Factory func() Pack

type entry struct {
	factory Factory
	title   string
}

var (
	mu    sync.RWMutex
	packs = make(map[string]entry)
)

// Register adds a pack factory to the registry.
// Panics if a pack with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}

	packs[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]PackInfo, 0, len(packs))
	for id, e := range packs {
		infos = append(infos, PackInfo{ID: id, Title: e.title})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })

	return infos
}

// Create instantiates a pack by its ID.
func Create(id string) (Pack, error) {
	mu.RLock()
	e, ok := packs[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPack, id)
	}
	return e.factory(), nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[id]
	return ok
}
