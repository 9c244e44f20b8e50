// Package registry provides a global registry for game factories.
// Game modes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/coin-race/internal/core"
)

// Game is the interface every game mode implements.
// Games contain pure logic with no UI dependencies; the platform handles
// input collection, timing and the concrete drawing surface.
type Game interface {
	// ID returns a unique identifier for this mode (e.g., "race").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset recreates the whole match state.
	// Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick using the held keys.
	Step(in core.KeyReader) core.StepResult

	// Render draws the current state onto the surface.
	Render(dst core.Surface)

	// State returns the current match state.
	State() core.GameState
}

// WinReporter is implemented by games that announce a winner.
type WinReporter interface {
	SetWinPresenter(p core.WinPresenter)
}

// ScoreReporter is implemented by games that publish score changes.
type ScoreReporter interface {
	OnScore(fn func([]core.PlayerScore))
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
