package gmt

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Preview resolutions, in dots per inch.
const (
	showDPI     = 300 // inline Show
	externalDPI = 600 // external PDF viewer
	shellDPI    = 70  // PNG bytes for interactive front-ends
	embedDPI    = 300 // HTML embedding
)

// embedWidth is the fixed display width of the HTML <img> embed, in
// pixels.
const embedWidth = 500

// preview renders a disposable preview into the figure's private
// directory and returns its path. Each format reuses the fixed name
// <figure-name>.<format>, so a later preview silently overwrites an
// earlier one of the same format. When antiAlias is set, subsample
// boxes of size 4 are requested for both graphics and text.
func (f *Figure) preview(format string, dpi int, antiAlias bool) (string, error) {
	extra := Options{"E": dpi}
	if antiAlias {
		extra["Qg"] = 4
		extra["Qt"] = 4
	}
	fname := filepath.Join(f.previewDir, f.name+"."+format)
	if err := f.Savefig(fname, WithConvertOptions(extra)); err != nil {
		return "", err
	}
	return fname, nil
}

// previewBytes renders a preview and returns its contents.
func (f *Figure) previewBytes(format string, dpi int, antiAlias bool) ([]byte, error) {
	fname, err := f.preview(format, dpi, antiAlias)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("gmt: reading preview: %w", err)
	}
	return data, nil
}

// PNG returns raw PNG preview bytes for interactive front-ends. A dpi
// of zero or less uses a low resolution suited to inline display.
func (f *Figure) PNG(dpi int) ([]byte, error) {
	if dpi <= 0 {
		dpi = shellDPI
	}
	return f.previewBytes("png", dpi, true)
}

// HTML returns the PNG preview embedded in an <img> tag as a base64
// data URI with a fixed display width, for HTML front-ends.
func (f *Figure) HTML() (string, error) {
	raw, err := f.previewBytes("png", embedDPI, true)
	if err != nil {
		return "", err
	}
	encoded := base64.StdEncoding.EncodeToString(raw)
	return fmt.Sprintf(`<img src="data:image/png;base64,%s" width="%dpx">`,
		encoded, embedWidth), nil
}

// showConfig holds the resolved Show settings.
type showConfig struct {
	dpi      int
	external bool
}

// ShowOption configures a single Show call.
type ShowOption func(*showConfig)

// WithDPI sets the preview resolution. Ignored with External, which
// always renders at high resolution.
func WithDPI(dpi int) ShowOption {
	return func(c *showConfig) {
		c.dpi = dpi
	}
}

// External renders a PDF preview and opens it in the OS-native viewer
// instead of returning an image.
func External() ShowOption {
	return func(c *showConfig) {
		c.external = true
	}
}

// Show displays a preview of the figure.
//
// By default it renders an anti-aliased PNG preview and returns it
// decoded, ready for an interactive front-end to display. With
// External it writes a PDF preview instead and hands it to the
// platform's viewer (see launchViewer); the viewer does not block the
// current process and the returned image is nil.
//
// All previews live in the figure's temporary directory and are
// removed when the figure is closed.
func (f *Figure) Show(opts ...ShowOption) (image.Image, error) {
	cfg := showConfig{dpi: showDPI}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.external {
		pdf, err := f.preview("pdf", externalDPI, false)
		if err != nil {
			return nil, err
		}
		return nil, launchViewer(pdf)
	}

	data, err := f.previewBytes("png", cfg.dpi, true)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gmt: decoding preview: %w", err)
	}
	return img, nil
}

// Load reads a previously saved figure file back as an image. Raster
// formats only: png, jpg, bmp, and tif. Vector formats (pdf, eps) have
// no image decoding and return ErrNotDecodable.
func Load(fname string) (image.Image, error) {
	ext := strings.TrimPrefix(filepath.Ext(fname), ".")
	if _, ok := formatCodes[ext]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, filepath.Ext(fname))
	}

	var decode func(io.Reader) (image.Image, error)
	switch ext {
	case "png":
		decode = png.Decode
	case "jpg":
		decode = jpeg.Decode
	case "bmp":
		decode = bmp.Decode
	case "tif":
		decode = tiff.Decode
	default:
		return nil, fmt.Errorf("%w: %q", ErrNotDecodable, ext)
	}

	file, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("gmt: opening figure file: %w", err)
	}
	defer file.Close()

	img, err := decode(file)
	if err != nil {
		return nil, fmt.Errorf("gmt: decoding %s: %w", ext, err)
	}
	return img, nil
}
