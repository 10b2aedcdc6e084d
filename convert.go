package gmt

import (
	"fmt"
	"path/filepath"
	"strings"
)

// formatCodes maps supported output extensions to the engine's format
// codes. The uppercase variant of a code requests a transparent
// background, which the engine supports for png only.
var formatCodes = map[string]string{
	"png": "g",
	"pdf": "f",
	"jpg": "j",
	"bmp": "b",
	"eps": "e",
	"tif": "t",
}

// PsConvert converts the current figure to a raster or vector format.
//
// Options use the engine's psconvert flags: F output prefix, T format
// code, E dpi, A crop, P portrait, Q anti-aliasing, and so on. Crop
// (A) and portrait mode (P) default to on when absent; set them to
// false to suppress the flag. Any failure reported by the engine
// propagates unchanged.
func (f *Figure) PsConvert(opts Options) error {
	merged := opts.clone()
	if _, ok := merged["A"]; !ok {
		merged["A"] = true
	}
	if _, ok := merged["P"]; !ok {
		merged["P"] = true
	}
	if err := f.activate(); err != nil {
		return err
	}
	return f.eng.CallModule("psconvert", merged.String())
}

// saveConfig holds the resolved Savefig settings.
type saveConfig struct {
	orientation string
	transparent bool
	crop        bool
	extra       Options
}

// SaveOption configures a single Savefig call.
type SaveOption func(*saveConfig)

// WithOrientation sets the page orientation: "portrait" (the default)
// or "landscape". Any other value is rejected before the engine is
// called.
func WithOrientation(orientation string) SaveOption {
	return func(c *saveConfig) {
		c.orientation = orientation
	}
}

// Transparent requests a transparent background. Valid for png output
// only.
func Transparent() SaveOption {
	return func(c *saveConfig) {
		c.transparent = true
	}
}

// NoCrop disables cropping the canvas to the plot area.
func NoCrop() SaveOption {
	return func(c *saveConfig) {
		c.crop = false
	}
}

// WithConvertOptions passes extra options through to PsConvert
// unmodified, e.g. Options{"E": 600} for a higher resolution.
func WithConvertOptions(opts Options) SaveOption {
	return func(c *saveConfig) {
		if c.extra == nil {
			c.extra = Options{}
		}
		for k, v := range opts {
			c.extra[k] = v
		}
	}
}

// Savefig saves the figure to fname, picking the output format from
// the file extension: png, pdf, jpg, bmp, eps, or tif.
//
// All argument validation happens before any engine call: an unknown
// extension, an orientation outside portrait/landscape, or a
// transparency request for a non-png format fail immediately.
func (f *Figure) Savefig(fname string, opts ...SaveOption) error {
	cfg := saveConfig{orientation: "portrait", crop: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.orientation != "portrait" && cfg.orientation != "landscape" {
		return fmt.Errorf("%w: got %q", ErrInvalidOrientation, cfg.orientation)
	}

	ext := strings.TrimPrefix(filepath.Ext(fname), ".")
	code, ok := formatCodes[ext]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownExtension, filepath.Ext(fname))
	}
	if cfg.transparent {
		if ext != "png" {
			return fmt.Errorf("%w: got %q", ErrTransparencyUnsupported, ext)
		}
		code = strings.ToUpper(code)
	}

	conv := Options{
		"F": strings.TrimSuffix(fname, filepath.Ext(fname)),
		"T": code,
		"A": cfg.crop,
		"P": cfg.orientation == "portrait",
	}
	for k, v := range cfg.extra {
		conv[k] = v
	}
	return f.PsConvert(conv)
}
