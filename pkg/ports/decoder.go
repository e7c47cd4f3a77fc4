// Package ports defines interfaces for external dependencies of the stamping pipeline.
package ports

import (
	"context"
	"image"
)

// FrameSource yields decoded frames in capture order.
// It is forward-only and cannot be restarted.
type FrameSource interface {
	// Next returns the next frame. It returns io.EOF once the stream is exhausted.
	Next() (*image.RGBA, error)

	// Close releases the underlying decoder.
	Close() error
}

// VideoDecoder opens frame sources for video files.
type VideoDecoder interface {
	// Open starts decoding the file at path. Width and height are the coded
	// frame dimensions reported by the metadata source.
	Open(ctx context.Context, path string, width, height int) (FrameSource, error)
}
