// Package stamp implements the per-frame streaming stage: decode, rotate,
// fit, label and encode, one frame at a time.
package stamp

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/user/lapsestamp/pkg/pipeline"
	"github.com/user/lapsestamp/pkg/ports"
	"github.com/user/lapsestamp/pkg/transform"
)

// Stage streams frames from a source to a sink, drawing the capture time on each.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new stamp stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("stamp"),
	}
}

// Execute processes every frame of input.Source in decode order. It returns
// on the first failure; frames already appended stay in the sink.
func (s *Stage) Execute(ctx context.Context, input pipeline.StampInput) (pipeline.StampResult, error) {
	result := pipeline.StampResult{}

	bg := input.Background
	if bg == nil {
		bg = color.Black
	}

	total := input.Converter.FrameCount()
	if input.Progress != nil {
		input.Progress.Start(total)
		defer input.Progress.Finish()
	}

	s.logger.Debug("Streaming %d frames with rotation %s", total, input.Rotation)

	for index := 0; ; index++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		frame, err := input.Source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, fmt.Errorf("%w: frame %d: %w", ports.ErrDecodeFailure, index, err)
		}

		if index == total {
			// Labels from here on fall after the clip's end time.
			s.logger.Warn("Frame %d is beyond the probed frame count %d", index, total)
		}

		out := transform.Apply(frame, input.Rotation, bg)

		at := input.Converter.TimeAtFrame(index)
		label, err := input.Stamper.Stamp(out, at)
		if err != nil {
			return result, fmt.Errorf("%w: frame %d: %w", ports.ErrRenderFailure, index, err)
		}

		if err := input.Sink.Append(out); err != nil {
			return result, fmt.Errorf("%w: frame %d: %w", ports.ErrEncodeFailure, index, err)
		}

		if index == 0 {
			result.FirstLabel = label
		}
		result.LastLabel = label
		result.FramesWritten++

		if input.Progress != nil {
			input.Progress.Advance()
		}
	}

	s.logger.Debug("Streamed %d frames", result.FramesWritten)
	return result, nil
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.StampInput, pipeline.StampResult] = (*Stage)(nil)
