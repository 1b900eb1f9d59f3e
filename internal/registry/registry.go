// Package registry provides a global registry for runner variant factories.
// Variants register themselves in init() functions, allowing the platforms
// and the CLI to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game is the interface every runner variant implements.
// Games contain pure logic with no platform dependencies; platforms handle
// input delivery, frame timing and presentation.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "classic").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes all session state. Called once before Start.
	Reset(cfg core.RuntimeConfig)

	// Start attaches the game to a host and requests the first frame.
	Start(host core.Host)

	// HandleInput folds a platform input event into the game.
	HandleInput(ev core.InputEvent)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a variant.
type Factory func() Game

// ErrUnknown is returned by Create for IDs nobody registered.
var ErrUnknown = errors.New("registry: unknown game")

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a factory to the registry.
// Typically called from an init() function.
// Panics if a variant with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	entries[id] = entry{factory: f, info: GameInfo{ID: id, Title: f().Title()}}
}

// List returns information about all registered variants, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})

	return result
}

// Create instantiates a new variant by its ID.
// Returns an error wrapping ErrUnknown if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, id)
	}

	return e.factory(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
