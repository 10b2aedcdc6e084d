package gmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gmtgo/gmt/engine"
	_ "github.com/gmtgo/gmt/engine/cli" // registers the default engine
)

// Figure is a single plot, addressed inside the engine by a
// process-unique name. All drawing state lives in the engine; the
// Figure itself owns only its name and a private temporary directory
// for previews.
//
// The engine routes drawing commands to whichever figure was selected
// most recently, so the Figure re-selects itself before every call.
// Figure implements io.Closer; Close releases the preview directory.
type Figure struct {
	name       string
	eng        engine.Engine
	ownsEngine bool
	previewDir string
	closed     bool
}

// Ensure Figure implements io.Closer
var _ io.Closer = (*Figure)(nil)

// New creates a figure with a fresh unique name and an empty preview
// directory. Without WithEngine it selects and initializes the default
// registered engine (normally engine/cli).
func New(opts ...FigureOption) (*Figure, error) {
	options := defaultFigureOptions()
	for _, opt := range opts {
		opt(&options)
	}

	eng := options.engine
	ownsEngine := eng == nil
	if ownsEngine {
		var err error
		eng, err = engine.InitDefault()
		if err != nil {
			return nil, err
		}
		// Engines created here follow the package logger; injected
		// engines keep whatever logging their owner configured.
		propagateLogger(eng, Logger())
	}

	name, err := uniqueName()
	if err != nil {
		if ownsEngine {
			eng.Close()
		}
		return nil, err
	}

	dir, err := os.MkdirTemp(options.previewParent, name+"-preview-")
	if err != nil {
		if ownsEngine {
			eng.Close()
		}
		return nil, fmt.Errorf("gmt: creating preview directory: %w", err)
	}

	return &Figure{name: name, eng: eng, ownsEngine: ownsEngine, previewDir: dir}, nil
}

// uniqueName allocates a figure name through the OS temp-file
// primitive: the file is created atomically, then discarded, and only
// its basename is kept. Names are never reused within a process.
func uniqueName() (string, error) {
	f, err := os.CreateTemp("", "gmtgo-")
	if err != nil {
		return "", fmt.Errorf("gmt: allocating figure name: %w", err)
	}
	name := filepath.Base(f.Name())
	f.Close()
	os.Remove(f.Name())
	return name, nil
}

// Name returns the figure's engine-visible name. It never changes
// after construction.
func (f *Figure) Name() string { return f.name }

// Close removes the figure's preview directory. When the figure
// created its own engine (no WithEngine), Close also closes that
// engine, ending its session.
// After Close, the Figure should not be used.
// Close is idempotent - multiple calls are safe.
// Implements io.Closer.
//
// An injected engine may be shared by other figures and is the
// caller's to close.
func (f *Figure) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if f.ownsEngine {
		f.eng.Close()
	}
	if err := os.RemoveAll(f.previewDir); err != nil {
		return fmt.Errorf("gmt: removing preview directory: %w", err)
	}
	return nil
}

// activate re-selects this figure as the engine's active drawing
// target. The trailing "-" format sentinel tells the engine not to
// auto-emit an output file; files are produced only by Savefig and
// PsConvert. Repeated activation is harmless.
func (f *Figure) activate() error {
	if f.closed {
		return ErrClosed
	}
	return f.eng.CallModule("figure", f.name+" -")
}

// Call activates the figure and invokes an arbitrary engine module
// with the given options. Drawing methods are thin wrappers over Call.
func (f *Figure) Call(module string, opts Options) error {
	if err := f.activate(); err != nil {
		return err
	}
	return f.eng.CallModule(module, opts.String())
}

// Basemap plots map frames, axes, and scales.
func (f *Figure) Basemap(opts Options) error { return f.Call("basemap", opts) }

// Coast plots continents, shorelines, rivers, and borders.
func (f *Figure) Coast(opts Options) error { return f.Call("coast", opts) }

// Plot plots lines, polygons, and symbols.
func (f *Figure) Plot(opts Options) error { return f.Call("plot", opts) }
