package ports

import "errors"

// Error kinds surfaced by a stamping run. Adapters wrap these with %w so
// callers can classify failures with errors.Is.
var (
	// ErrOutputExists is returned when the destination exists and overwrite was not forced.
	ErrOutputExists = errors.New("output file already exists")

	// ErrInputUnreadable is returned when the source is missing or cannot be decoded.
	ErrInputUnreadable = errors.New("input unreadable")

	// ErrFontUnavailable is returned when the configured font cannot be loaded.
	ErrFontUnavailable = errors.New("font unavailable")

	// ErrDecodeFailure is returned when a frame cannot be decoded mid-stream.
	ErrDecodeFailure = errors.New("decode failure")

	// ErrEncodeFailure is returned when a frame cannot be appended to the output.
	ErrEncodeFailure = errors.New("encode failure")

	// ErrRenderFailure is returned when the label cannot be drawn onto a frame.
	ErrRenderFailure = errors.New("render failure")
)
