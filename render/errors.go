package render

import "errors"

// Sentinel errors returned by the render package.
var (
	// ErrNoFonts is returned when rendering is attempted without a complete
	// FontSet.
	ErrNoFonts = errors.New("render: fonts not loaded")

	// ErrUnknownBackend is returned by NewBackend for unregistered names.
	ErrUnknownBackend = errors.New("render: unknown backend")

	// ErrUnsupportedImage is returned for background images that are not
	// SVG, PNG or JPEG data URIs.
	ErrUnsupportedImage = errors.New("render: unsupported image")
)
