// Package timeconv maps frame indices of a time-lapse clip to the wall-clock
// moment each frame was captured.
package timeconv

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput is returned when a Converter cannot be built from its inputs.
var ErrInvalidInput = errors.New("timeconv: invalid input")

const (
	// DefaultSecondsPerFrame is the real time one captured frame represents.
	DefaultSecondsPerFrame = 5 * time.Second
	// DefaultVideoFPS is the playback rate written to the output file.
	DefaultVideoFPS = 30.0
)

// Cadence relates capture time to playback time.
type Cadence struct {
	SecondsPerFrame time.Duration // Real elapsed time per captured frame
	VideoFPS        float64       // Output playback rate, independent of capture cadence
}

// DefaultCadence returns the 5 s per frame, 30 fps cadence.
func DefaultCadence() Cadence {
	return Cadence{
		SecondsPerFrame: DefaultSecondsPerFrame,
		VideoFPS:        DefaultVideoFPS,
	}
}

// Validate reports whether the cadence can drive a Converter.
func (c Cadence) Validate() error {
	if c.SecondsPerFrame <= 0 {
		return fmt.Errorf("%w: seconds per frame must be positive, got %s", ErrInvalidInput, c.SecondsPerFrame)
	}
	if c.VideoFPS <= 0 {
		return fmt.Errorf("%w: video fps must be positive, got %g", ErrInvalidInput, c.VideoFPS)
	}
	return nil
}

// Converter holds a clip's end time and frame count. Every other quantity is
// recomputed from these on each call.
type Converter struct {
	endTime    time.Time
	frameCount int
	cadence    Cadence
}

// New creates a Converter for a clip whose last frame was captured at endTime.
func New(endTime time.Time, frameCount int, cadence Cadence) (Converter, error) {
	if frameCount < 0 {
		return Converter{}, fmt.Errorf("%w: frame count must be non-negative, got %d", ErrInvalidInput, frameCount)
	}
	if err := cadence.Validate(); err != nil {
		return Converter{}, err
	}
	return Converter{
		endTime:    endTime,
		frameCount: frameCount,
		cadence:    cadence,
	}, nil
}

// EndTime returns the capture time of the last frame.
func (c Converter) EndTime() time.Time {
	return c.endTime
}

// FrameCount returns the number of frames in the clip.
func (c Converter) FrameCount() int {
	return c.frameCount
}

// Cadence returns the cadence the converter was built with.
func (c Converter) Cadence() Cadence {
	return c.cadence
}

// FPSReal returns captured frames per second of real time.
func (c Converter) FPSReal() float64 {
	return 1 / c.cadence.SecondsPerFrame.Seconds()
}

// DurationReal returns the real time spanned by the clip.
func (c Converter) DurationReal() time.Duration {
	return time.Duration(c.frameCount) * c.cadence.SecondsPerFrame
}

// DurationVideo returns the playback length of the output at VideoFPS.
func (c Converter) DurationVideo() time.Duration {
	return time.Duration(float64(c.frameCount) / c.cadence.VideoFPS * float64(time.Second))
}

// StartTime returns EndTime minus DurationReal.
func (c Converter) StartTime() time.Time {
	return c.endTime.Add(-c.DurationReal())
}

// TimeAtFrame returns the capture time of frame index.
// The caller must keep index within [0, FrameCount()); no clamping is applied.
func (c Converter) TimeAtFrame(index int) time.Time {
	return c.StartTime().Add(time.Duration(index) * c.cadence.SecondsPerFrame)
}
