package ports

import (
	"context"
	"image"
)

// FrameSink accepts frames in order and serializes them to a video file.
type FrameSink interface {
	// Append encodes a single frame.
	Append(img *image.RGBA) error

	// Close finalizes the output file and releases the encoder.
	Close() error
}

// VideoEncoder opens frame sinks for output files.
type VideoEncoder interface {
	// Open creates the output at path with fixed dimensions and frame rate.
	// An existing file at path is replaced.
	Open(ctx context.Context, path string, width, height int, fps float64, opts EncoderOptions) (FrameSink, error)
}

// EncoderOptions configures video encoding parameters.
type EncoderOptions struct {
	Bitrate int    // Target bitrate in kbps
	Quality int    // CRF value: 0-63 (lower is higher quality)
	Preset  string // Encoder speed preset (e.g., "fast")
}
