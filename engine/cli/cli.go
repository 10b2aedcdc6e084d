// Package cli implements the engine boundary by shelling out to the
// gmt executable.
//
// Each module call runs one gmt process. All calls from one Engine
// share a session, identified by a per-Engine name exported through
// GMT_SESSION_NAME, so figure state accumulated by the engine persists
// between calls.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/google/uuid"

	"github.com/gmtgo/gmt/engine"
)

// binary is the engine executable resolved on PATH.
const binary = "gmt"

func init() {
	engine.Register(engine.EngineCLI, func() engine.Engine { return New() })
}

// Engine runs gmt modules as child processes.
type Engine struct {
	path    string // resolved executable, set by Init
	session string
	logger  *slog.Logger
}

// Compile-time interface check.
var _ engine.Engine = (*Engine)(nil)

// New creates a CLI engine with a fresh session identity.
func New() *Engine {
	return &Engine{
		session: "gmtgo-" + uuid.NewString(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Name implements engine.Engine.
func (e *Engine) Name() string { return engine.EngineCLI }

// Session returns the session name exported to child processes.
func (e *Engine) Session() string { return e.session }

// SetLogger sets the logger used for call tracing and cleanup warnings.
func (e *Engine) SetLogger(l *slog.Logger) {
	if l != nil {
		e.logger = l
	}
}

// Init resolves the gmt executable and opens the engine session.
func (e *Engine) Init() error {
	path, err := exec.LookPath(binary)
	if err != nil {
		return fmt.Errorf("%w: %q not found on PATH", engine.ErrNotAvailable, binary)
	}
	e.path = path
	return e.CallModule("begin", "")
}

// Close ends the engine session and discards its scratch state.
// Safe to call without Init.
func (e *Engine) Close() {
	if e.path == "" {
		return
	}
	if err := e.CallModule("end", ""); err != nil {
		e.logger.Warn("ending engine session", "session", e.session, "err", err)
	}
	e.path = ""
}

// CallModule implements engine.Engine. The option string is split on
// whitespace; each field becomes one argument to the module, so option
// values must not contain spaces (an output prefix like "my maps/out"
// would be split apart).
func (e *Engine) CallModule(module, args string) error {
	if e.path == "" {
		return engine.ErrNotInitialized
	}

	argv := append([]string{module}, strings.Fields(args)...)
	cmd := exec.Command(e.path, argv...)
	cmd.Env = append(os.Environ(), "GMT_SESSION_NAME="+e.session)

	var stderr strings.Builder
	cmd.Stderr = &stderr

	e.logger.Debug("engine call", "module", module, "args", args)
	if err := cmd.Run(); err != nil {
		return &engine.CallError{
			Module: module,
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return nil
}
