package ffmpeg

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/user/lapsestamp/pkg/ports"
)

// Decoder implements ports.VideoDecoder by reading rawvideo from ffmpeg's stdout.
type Decoder struct {
	ffmpegPath string
	logger     ports.Logger
}

// NewDecoder creates a decoder. An empty ffmpegPath searches the usual locations.
func NewDecoder(ffmpegPath string, logger ports.Logger) *Decoder {
	return &Decoder{
		ffmpegPath: ffmpegPath,
		logger:     logger.WithComponent("decoder"),
	}
}

// decodeArgs builds the arguments that turn the first video stream of input
// into packed RGBA frames on stdout. Container rotation is ignored so frames
// keep their coded size.
func decodeArgs(input string) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-noautorotate",
		"-i", input,
		"-map", "0:v:0",
		"-an",
		"-fps_mode", "passthrough", // One output frame per decoded frame
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"pipe:1",
	}
}

// Open starts ffmpeg against path. Frames are width x height as reported by the container.
func (d *Decoder) Open(ctx context.Context, path string, width, height int) (ports.FrameSource, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	bin, err := Find(d.ffmpegPath)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, bin, decodeArgs(path)...)
	src := &frameSource{
		cmd:    cmd,
		width:  width,
		height: height,
	}
	cmd.Stderr = &src.stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to get stdout pipe: %w", err)
	}
	src.stdout = bufio.NewReaderSize(stdout, width*height*4)

	d.logger.Debug("Starting %s %s", bin, strings.Join(decodeArgs(path), " "))
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	return src, nil
}

// frameSource reads fixed-size RGBA frames until ffmpeg closes stdout.
type frameSource struct {
	cmd    *exec.Cmd
	stdout *bufio.Reader
	stderr stderrBuffer
	width  int
	height int

	index  int
	done   bool
	closed bool
}

func (s *frameSource) Next() (*image.RGBA, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.done {
		return nil, io.EOF
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	_, err := io.ReadFull(s.stdout, img.Pix)
	switch {
	case err == nil:
		s.index++
		return img, nil
	case errors.Is(err, io.EOF):
		s.done = true
		if werr := s.cmd.Wait(); werr != nil {
			return nil, fmt.Errorf("ffmpeg decoding failed after %d frames: %w\nstderr: %s", s.index, werr, s.stderr.String())
		}
		return nil, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
		_ = s.cmd.Wait()
		return nil, fmt.Errorf("truncated frame %d: %w\nstderr: %s", s.index, err, s.stderr.String())
	default:
		return nil, fmt.Errorf("read frame %d: %w", s.index, err)
	}
}

// Close stops ffmpeg if frames remain unread.
func (s *frameSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.done {
		return nil
	}

	if s.cmd.Process != nil {
		if err := s.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			return fmt.Errorf("failed to stop ffmpeg: %w", err)
		}
	}
	// An exit status here is the kill itself; only a failed wait is reported.
	if err := s.cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("failed to wait for ffmpeg: %w", err)
		}
	}
	return nil
}

// Ensure Decoder implements ports.VideoDecoder
var _ ports.VideoDecoder = (*Decoder)(nil)
