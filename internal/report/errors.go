package report

import "errors"

// Document-level failures abort the whole generation and return no partial
// bytes. Asset, signature and stroke failures are handled in place with a
// visual fallback and never surface here.
var (
	// ErrSurfaceInit indicates the drawing surface could not be initialized
	ErrSurfaceInit = errors.New("drawing surface initialization failed")

	// ErrFontUnavailable indicates required font resources are missing
	ErrFontUnavailable = errors.New("font resources unavailable")

	// ErrInvalidInput indicates the snapshot is missing required data
	ErrInvalidInput = errors.New("invalid report input")
)
