package vizcanvas

import "errors"

// Common errors returned by surface operations.
var (
	// ErrInvalidDimensions is returned when a logical width or height is not
	// a positive finite number.
	ErrInvalidDimensions = errors.New("vizcanvas: invalid dimensions")

	// ErrNilHost is returned when a nil Host is passed to Acquire or NewManager.
	ErrNilHost = errors.New("vizcanvas: nil host")

	// ErrNotReady is returned by Draw while the host is not attached and no
	// drawing context could be created yet.
	ErrNotReady = errors.New("vizcanvas: surface not ready")

	// ErrSurfaceReleased is returned when an operation is attempted on a
	// released surface.
	ErrSurfaceReleased = errors.New("vizcanvas: surface released")
)
