// Package engine defines the boundary to the native GMT plotting
// engine.
//
// The engine owns all rendering, geospatial projection, and format
// conversion. This package only carries the call interface across that
// boundary: a module name plus an option string, invoked synchronously.
// The binding layer above depends on two module families, "figure"
// (select or create a figure by name) and "psconvert" (convert the
// active figure to another format), but CallModule accepts any module
// the engine knows.
//
// Engines must be registered via Register() and are selected via
// Get() or Default().
package engine

import (
	"errors"
	"fmt"
)

// Engine names for registration and selection.
const (
	// EngineCLI shells out to the gmt executable (package engine/cli).
	EngineCLI = "cli"
)

// Common engine errors.
var (
	// ErrNotAvailable is returned when no usable engine can be found,
	// or by Init when the native library or executable is missing.
	ErrNotAvailable = errors.New("engine: not available")

	// ErrNotInitialized is returned when CallModule is used before Init.
	ErrNotInitialized = errors.New("engine: not initialized")
)

// Engine is the call interface to the native plotting engine. Calls
// are synchronous and blocking; there is no async variant, no
// cancellation, and no retry. Any engine-reported failure is returned
// unchanged to the caller.
type Engine interface {
	// Name returns the engine identifier (e.g., "cli").
	Name() string

	// Init prepares the engine for use. This should be called before
	// any CallModule. Returns ErrNotAvailable (possibly wrapped) when
	// the native engine cannot be used on this system.
	Init() error

	// Close releases engine resources. The engine should not be used
	// after Close is called.
	Close()

	// CallModule invokes a native module with an option string in the
	// engine's flag syntax (e.g., "psconvert", "-A -P -Tg -Fmap").
	CallModule(module, args string) error
}

// CallError reports a failed native module call. It wraps the
// underlying process or library error and carries any diagnostics the
// engine wrote to its error stream.
type CallError struct {
	Module string
	Args   string
	Stderr string
	Err    error
}

func (e *CallError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("engine: %s failed: %s", e.Module, e.Stderr)
	}
	return fmt.Sprintf("engine: %s failed: %v", e.Module, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}
