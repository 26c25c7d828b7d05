package mandel

import "errors"

// Validation errors.
var (
	// ErrInvalidViewport is returned when a viewport is empty, inverted or NaN.
	ErrInvalidViewport = errors.New("mandel: invalid viewport")

	// ErrInvalidDimensions is returned for a non-positive image width or height.
	ErrInvalidDimensions = errors.New("mandel: invalid image dimensions")

	// ErrInvalidIterations is returned for a non-positive iteration cap.
	ErrInvalidIterations = errors.New("mandel: iteration cap must be positive")

	// ErrInvalidZoom is returned when a ZoomSpec cannot produce a frame sequence.
	ErrInvalidZoom = errors.New("mandel: invalid zoom")

	// ErrUnknownPalette is returned by PaletteByName for an unknown name.
	ErrUnknownPalette = errors.New("mandel: unknown palette")

	// ErrUnknownRegion is returned by RegionByName for an unknown name.
	ErrUnknownRegion = errors.New("mandel: unknown region")
)
