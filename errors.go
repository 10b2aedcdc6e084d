package gmt

import "errors"

// Package errors. All argument validation fails before any engine call
// is made; engine failures propagate unchanged from the engine package.
var (
	// ErrClosed is returned when a Figure is used after Close.
	ErrClosed = errors.New("gmt: figure is closed")

	// ErrUnknownExtension is returned for output extensions outside
	// png, pdf, jpg, bmp, eps, and tif.
	ErrUnknownExtension = errors.New("gmt: unknown figure file extension")

	// ErrInvalidOrientation is returned when the orientation is neither
	// "portrait" nor "landscape".
	ErrInvalidOrientation = errors.New("gmt: invalid orientation")

	// ErrTransparencyUnsupported is returned when a transparent
	// background is requested for anything but png output.
	ErrTransparencyUnsupported = errors.New("gmt: transparency is only available for png")

	// ErrNotDecodable is returned by Load for vector formats (pdf, eps)
	// that have no image decoder.
	ErrNotDecodable = errors.New("gmt: format cannot be decoded as an image")
)
