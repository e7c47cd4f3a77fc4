package pipeline

import (
	"image/color"

	"github.com/user/lapsestamp/pkg/overlay"
	"github.com/user/lapsestamp/pkg/ports"
	"github.com/user/lapsestamp/pkg/timeconv"
	"github.com/user/lapsestamp/pkg/transform"
)

// StampInput carries the open stream handles and per-run settings for the
// streaming stage. The stage does not close Source or Sink.
type StampInput struct {
	Source    ports.FrameSource
	Sink      ports.FrameSink
	Converter timeconv.Converter
	Rotation  transform.Rotation
	Stamper   *overlay.Stamper
	Progress  ports.Progress

	// Background fills the letterbox area around rotated frames.
	Background color.Color
}

// StampResult describes a completed streaming pass.
type StampResult struct {
	FramesWritten int
	FirstLabel    string
	LastLabel     string
}
