// Package registry holds the factories of every playable game.
// Games register themselves from init(), so front-ends can list and create
// them by ID without importing each game directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-chroma/internal/core"
)

// Game is the contract between a game and the platform.
// Games hold pure logic; the platform owns input mapping, timing and drawing.
type Game interface {
	// ID is the unique identifier used by the CLI and the score store.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh game. Called once at start and on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick with the actions of that tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a cleared screen.
	Render(dst *core.Screen)

	// State returns the current status.
	State() core.GameState
}

// Describer is implemented by games that provide a menu blurb.
type Describer interface {
	Description() string
}

// GameInfo is the metadata of a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a game factory. Registering the same ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}

	factories[id] = f
	infos[id] = info
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup returns the metadata of one game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
