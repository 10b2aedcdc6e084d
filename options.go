package gmt

import (
	"github.com/gmtgo/gmt/engine"
)

// FigureOption configures a Figure during creation.
// Use functional options to customize Figure behavior.
//
// Example:
//
//	// Default engine (gmt executable on PATH)
//	fig, err := gmt.New()
//
//	// Custom engine (dependency injection)
//	fig, err := gmt.New(gmt.WithEngine(myEngine))
type FigureOption func(*figureOptions)

// figureOptions holds optional configuration for Figure creation.
type figureOptions struct {
	engine        engine.Engine
	previewParent string
}

// defaultFigureOptions returns the default figure options.
func defaultFigureOptions() figureOptions {
	return figureOptions{
		engine:        nil, // Will be resolved via engine.InitDefault if nil
		previewParent: "",  // Empty means the OS temp directory
	}
}

// WithEngine injects a specific engine instead of the registered
// default. The engine must already be initialized; New will not call
// Init on it, Figure.Close will not close it, and its logger is left
// untouched. Use this for testing or to select an alternative engine
// implementation.
func WithEngine(e engine.Engine) FigureOption {
	return func(o *figureOptions) {
		o.engine = e
	}
}

// WithPreviewParent places the figure's preview directory under dir
// instead of the OS temp directory. The directory must exist.
func WithPreviewParent(dir string) FigureOption {
	return func(o *figureOptions) {
		o.previewParent = dir
	}
}
