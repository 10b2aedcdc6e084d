package engine

import (
	"sync"
)

// EngineFactory creates a new engine instance.
type EngineFactory func() Engine

// registry holds registered engines.
var (
	registryMu sync.RWMutex
	engines    = make(map[string]EngineFactory)
	// Priority order for engine selection (first available wins).
	enginePriority = []string{EngineCLI}
)

// Register registers an engine factory with the given name.
// This is typically called from init() functions in engine packages.
// If an engine with the same name is already registered, it will be replaced.
func Register(name string, factory EngineFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	engines[name] = factory
}

// Unregister removes an engine from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(engines, name)
}

// Available returns a list of registered engine names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if an engine with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := engines[name]
	return ok
}

// Get returns an engine instance by name.
// Returns nil if the engine is not registered.
func Get(name string) Engine {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := engines[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available engine based on priority.
// Returns nil if no engines are registered.
func Default() Engine {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range enginePriority {
		if factory, ok := engines[name]; ok {
			if e := factory(); e != nil {
				return e
			}
		}
	}

	// Fallback: return first available
	for _, factory := range engines {
		if e := factory(); e != nil {
			return e
		}
	}

	return nil
}

// InitDefault initializes the default engine based on availability.
// This is called automatically by gmt.New() when no engine is injected.
func InitDefault() (Engine, error) {
	e := Default()
	if e == nil {
		return nil, ErrNotAvailable
	}

	if err := e.Init(); err != nil {
		return nil, err
	}

	return e, nil
}
