package stamp

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/user/lapsestamp/pkg/adapters/logger"
	"github.com/user/lapsestamp/pkg/mocks"
	"github.com/user/lapsestamp/pkg/overlay"
	"github.com/user/lapsestamp/pkg/pipeline"
	"github.com/user/lapsestamp/pkg/ports"
	"github.com/user/lapsestamp/pkg/timeconv"
	"github.com/user/lapsestamp/pkg/transform"
)

func newInput(t *testing.T, source *mocks.FrameSource, sink *mocks.FrameSink, renderer *mocks.TextRenderer, rotation transform.Rotation) pipeline.StampInput {
	t.Helper()

	end := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	conv, err := timeconv.New(end, len(source.Frames), timeconv.DefaultCadence())
	if err != nil {
		t.Fatalf("timeconv.New failed: %v", err)
	}

	return pipeline.StampInput{
		Source:    source,
		Sink:      sink,
		Converter: conv,
		Rotation:  rotation,
		Stamper:   overlay.NewStamper(renderer, overlay.DefaultOptions()),
		Progress:  &mocks.Progress{},
	}
}

func TestStage_Execute(t *testing.T) {
	source := mocks.NewFrameSource(120, 64, 36)
	sink := &mocks.FrameSink{}
	renderer := &mocks.TextRenderer{}
	input := newInput(t, source, sink, renderer, transform.RotateNone)

	stage := NewStage(logger.NewNoop())
	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FramesWritten != 120 || len(sink.Frames) != 120 {
		t.Errorf("expected 120 frames, got result=%d sink=%d", result.FramesWritten, len(sink.Frames))
	}
	if len(renderer.DrawTextCalls) != 120 {
		t.Errorf("expected one overlay per frame, got %d", len(renderer.DrawTextCalls))
	}

	// Output order matches input order.
	for i, f := range sink.Frames {
		if f.Pix[0] != uint8(i) {
			t.Fatalf("frame %d out of order (marker %d)", i, f.Pix[0])
		}
		if f.Bounds() != image.Rect(0, 0, 64, 36) {
			t.Fatalf("frame %d has bounds %v", i, f.Bounds())
		}
	}

	if result.FirstLabel != "11:50a" || result.LastLabel != "11:50a" {
		t.Errorf("unexpected labels %q..%q", result.FirstLabel, result.LastLabel)
	}

	progress := input.Progress.(*mocks.Progress)
	if progress.Total != 120 || progress.Advances != 120 || !progress.Finished {
		t.Errorf("unexpected progress: %+v", progress)
	}
}

func TestStage_Execute_FramesAreNotAliased(t *testing.T) {
	source := mocks.NewFrameSource(3, 8, 8)
	sink := &mocks.FrameSink{}
	input := newInput(t, source, sink, &mocks.TextRenderer{}, transform.RotateNone)

	if _, err := NewStage(logger.NewNoop()).Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range sink.Frames {
		if sink.Frames[i] == source.Frames[i] {
			t.Errorf("frame %d was passed through without a copy", i)
		}
	}
}

func TestStage_Execute_RotationKeepsFootprint(t *testing.T) {
	source := mocks.NewFrameSource(2, 32, 18)
	sink := &mocks.FrameSink{}
	input := newInput(t, source, sink, &mocks.TextRenderer{}, transform.RotateRight)

	if _, err := NewStage(logger.NewNoop()).Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, f := range sink.Frames {
		if f.Bounds().Dx() != 32 || f.Bounds().Dy() != 18 {
			t.Errorf("expected 32x18 output, got %v", f.Bounds())
		}
	}
}

func TestStage_Execute_DecodeFailure(t *testing.T) {
	source := mocks.NewFrameSource(5, 8, 8)
	source.FailAt = 2
	source.Err = errors.New("corrupt packet")
	sink := &mocks.FrameSink{}
	input := newInput(t, source, sink, &mocks.TextRenderer{}, transform.RotateNone)

	result, err := NewStage(logger.NewNoop()).Execute(context.Background(), input)
	if !errors.Is(err, ports.ErrDecodeFailure) {
		t.Fatalf("expected ErrDecodeFailure, got %v", err)
	}
	if result.FramesWritten != 2 || len(sink.Frames) != 2 {
		t.Errorf("expected 2 frames before failure, got %d", len(sink.Frames))
	}
}

func TestStage_Execute_EncodeFailure(t *testing.T) {
	source := mocks.NewFrameSource(5, 8, 8)
	sink := &mocks.FrameSink{
		AppendFunc: func(img *image.RGBA) error { return errors.New("broken pipe") },
	}
	input := newInput(t, source, sink, &mocks.TextRenderer{}, transform.RotateNone)

	_, err := NewStage(logger.NewNoop()).Execute(context.Background(), input)
	if !errors.Is(err, ports.ErrEncodeFailure) {
		t.Fatalf("expected ErrEncodeFailure, got %v", err)
	}
}

func TestStage_Execute_RenderFailure(t *testing.T) {
	source := mocks.NewFrameSource(5, 8, 8)
	sink := &mocks.FrameSink{}
	renderer := &mocks.TextRenderer{
		DrawTextFunc: func(dst *image.RGBA, text string, x, y int) error { return errors.New("no glyph") },
	}
	input := newInput(t, source, sink, renderer, transform.RotateNone)

	_, err := NewStage(logger.NewNoop()).Execute(context.Background(), input)
	if !errors.Is(err, ports.ErrRenderFailure) {
		t.Fatalf("expected ErrRenderFailure, got %v", err)
	}
	if len(sink.Frames) != 0 {
		t.Errorf("expected no frames appended, got %d", len(sink.Frames))
	}
}

func TestStage_Execute_Cancelled(t *testing.T) {
	source := mocks.NewFrameSource(5, 8, 8)
	sink := &mocks.FrameSink{}
	input := newInput(t, source, sink, &mocks.TextRenderer{}, transform.RotateNone)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStage(logger.NewNoop()).Execute(ctx, input)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestStage_Execute_EmptySource(t *testing.T) {
	source := &mocks.FrameSource{}
	sink := &mocks.FrameSink{}
	input := newInput(t, source, sink, &mocks.TextRenderer{}, transform.RotateNone)

	result, err := NewStage(logger.NewNoop()).Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FramesWritten != 0 {
		t.Errorf("expected no frames, got %d", result.FramesWritten)
	}
}
