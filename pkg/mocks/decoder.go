package mocks

import (
	"context"
	"image"
	"io"

	"github.com/user/lapsestamp/pkg/ports"
)

// VideoDecoder is a mock implementation of ports.VideoDecoder.
type VideoDecoder struct {
	OpenFunc func(path string, width, height int) (ports.FrameSource, error)

	// Source is returned from Open when OpenFunc is nil.
	Source    *FrameSource
	OpenCalls []string
}

func (m *VideoDecoder) Open(ctx context.Context, path string, width, height int) (ports.FrameSource, error) {
	m.OpenCalls = append(m.OpenCalls, path)
	if m.OpenFunc != nil {
		return m.OpenFunc(path, width, height)
	}
	if m.Source == nil {
		m.Source = &FrameSource{}
	}
	return m.Source, nil
}

var _ ports.VideoDecoder = (*VideoDecoder)(nil)

// FrameSource is a mock implementation of ports.FrameSource serving Frames in order.
type FrameSource struct {
	Frames []*image.RGBA

	// FailAt makes Next return Err once FailAt frames were served (ignored when Err is nil).
	FailAt int
	Err    error

	next        int
	CloseCalled int
}

// NewFrameSource creates a source of n solid frames of the given size.
func NewFrameSource(n, width, height int) *FrameSource {
	frames := make([]*image.RGBA, n)
	for i := range frames {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		for p := 0; p < len(img.Pix); p += 4 {
			img.Pix[p] = uint8(i)
			img.Pix[p+3] = 255
		}
		frames[i] = img
	}
	return &FrameSource{Frames: frames}
}

func (m *FrameSource) Next() (*image.RGBA, error) {
	if m.Err != nil && m.next == m.FailAt {
		return nil, m.Err
	}
	if m.next >= len(m.Frames) {
		return nil, io.EOF
	}
	img := m.Frames[m.next]
	m.next++
	return img, nil
}

func (m *FrameSource) Close() error {
	m.CloseCalled++
	return nil
}

var _ ports.FrameSource = (*FrameSource)(nil)
