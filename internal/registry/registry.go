// Package registry holds the global catalog of playable games. Each game
// registers a factory from an init() function, so the platform can list
// and instantiate games without hardcoded imports beyond the blank ones in
// cmd/arena.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/polyarena/polyarena/internal/core"
)

// Game is the interface every arena game implements. Games contain pure
// simulation logic on top of the physics core, with no platform
// dependencies; the platform owns timing, input mapping, and display.
type Game interface {
	// ID returns the unique identifier used for CLI commands and score
	// storage (e.g. "brawl").
	ID() string

	// Title returns the human-readable display name.
	Title() string

	// Reset initializes or restarts the game with the given runtime
	// configuration (screen size, tick rate, RNG seed).
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick with the given
	// semantic input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer. The buffer is
	// not pre-cleared; games clear or repaint it themselves.
	Render(dst *core.Screen)

	// State returns the current score/game-over/paused snapshot.
	State() core.GameState
}

// Info describes a registered game.
type Info struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory. Called from game init() functions; panics
// on duplicate IDs since that is a wiring bug.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, 0, len(factories))
	for id := range factories {
		out = append(out, Info{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
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

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
