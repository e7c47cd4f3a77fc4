package mocks

import (
	"context"
	"image"

	"github.com/user/lapsestamp/pkg/ports"
)

// VideoEncoder is a mock implementation of ports.VideoEncoder.
type VideoEncoder struct {
	OpenFunc func(path string, width, height int, fps float64, opts ports.EncoderOptions) (ports.FrameSink, error)

	// Recorded calls for verification
	OpenCalls []EncoderOpenCall
	Sink      *FrameSink
}

// EncoderOpenCall records a call to Open.
type EncoderOpenCall struct {
	Path   string
	Width  int
	Height int
	FPS    float64
	Opts   ports.EncoderOptions
}

func (m *VideoEncoder) Open(ctx context.Context, path string, width, height int, fps float64, opts ports.EncoderOptions) (ports.FrameSink, error) {
	m.OpenCalls = append(m.OpenCalls, EncoderOpenCall{Path: path, Width: width, Height: height, FPS: fps, Opts: opts})
	if m.OpenFunc != nil {
		return m.OpenFunc(path, width, height, fps, opts)
	}
	if m.Sink == nil {
		m.Sink = &FrameSink{}
	}
	return m.Sink, nil
}

var _ ports.VideoEncoder = (*VideoEncoder)(nil)

// FrameSink is a mock implementation of ports.FrameSink that keeps every frame.
type FrameSink struct {
	AppendFunc func(img *image.RGBA) error
	CloseFunc  func() error

	Frames      []*image.RGBA
	CloseCalled int
}

func (m *FrameSink) Append(img *image.RGBA) error {
	if m.AppendFunc != nil {
		if err := m.AppendFunc(img); err != nil {
			return err
		}
	}
	m.Frames = append(m.Frames, img)
	return nil
}

func (m *FrameSink) Close() error {
	m.CloseCalled++
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

var _ ports.FrameSink = (*FrameSink)(nil)
