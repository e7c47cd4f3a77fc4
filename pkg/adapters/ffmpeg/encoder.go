package ffmpeg

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/user/lapsestamp/pkg/ports"
)

// DefaultPreset is the x264 preset used when none is configured.
const DefaultPreset = "fast"

// Encoder implements ports.VideoEncoder by piping rawvideo into ffmpeg/libx264.
type Encoder struct {
	ffmpegPath string
	logger     ports.Logger
}

// NewEncoder creates an encoder. An empty ffmpegPath searches the usual locations.
func NewEncoder(ffmpegPath string, logger ports.Logger) *Encoder {
	return &Encoder{
		ffmpegPath: ffmpegPath,
		logger:     logger.WithComponent("encoder"),
	}
}

// crf converts our 0-63 quality scale to x264's CRF (0-51).
func crf(quality int) int {
	if quality <= 0 || quality > 63 {
		return 23
	}
	return quality * 51 / 63
}

func encodeArgs(output string, width, height int, fps float64, opts ports.EncoderOptions) []string {
	preset := opts.Preset
	if preset == "" {
		preset = DefaultPreset
	}

	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y", // The overwrite policy is enforced before the encoder opens
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", fmt.Sprintf("%.3f", fps),
		"-i", "pipe:0",
		"-an",
		// yuv420p needs even dimensions
		"-vf", "scale=trunc(iw/2)*2:trunc(ih/2)*2",
		"-c:v", "libx264",
		"-preset", preset,
		"-pix_fmt", "yuv420p",
		"-crf", fmt.Sprintf("%d", crf(opts.Quality)),
	}

	if opts.Bitrate > 0 {
		args = append(args, "-b:v", fmt.Sprintf("%dk", opts.Bitrate))
	}

	return append(args, "-movflags", "+faststart", output)
}

// Open starts ffmpeg writing path at the given fixed frame rate.
func (e *Encoder) Open(ctx context.Context, path string, width, height int, fps float64, opts ports.EncoderOptions) (ports.FrameSink, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if fps <= 0 {
		return nil, fmt.Errorf("invalid frame rate %v", fps)
	}

	bin, err := Find(e.ffmpegPath)
	if err != nil {
		return nil, err
	}

	args := encodeArgs(path, width, height, fps, opts)
	cmd := exec.CommandContext(ctx, bin, args...)
	sink := &frameSink{
		cmd:    cmd,
		width:  width,
		height: height,
	}
	cmd.Stderr = &sink.stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to get stdin pipe: %w", err)
	}
	sink.stdin = stdin

	e.logger.Debug("Starting %s %s", bin, strings.Join(args, " "))
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	return sink, nil
}

// frameSink writes frames to ffmpeg's stdin; Close finalizes the container.
type frameSink struct {
	mu     sync.Mutex
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr stderrBuffer
	width  int
	height int

	frameCount int
	closed     bool
}

func (s *frameSink) Append(img *image.RGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	pix := img.Pix
	want := image.Rect(0, 0, s.width, s.height)
	if img.Rect != want || img.Stride != s.width*4 {
		// Repack frames that do not match the declared input layout.
		rgba := image.NewRGBA(want)
		draw.Draw(rgba, want, img, img.Bounds().Min, draw.Src)
		pix = rgba.Pix
	}

	if _, err := s.stdin.Write(pix); err != nil {
		return fmt.Errorf("failed to write frame %d: %w\nstderr: %s", s.frameCount, err, s.stderr.String())
	}
	s.frameCount++
	return nil
}

func (s *frameSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	closeErr := s.stdin.Close()
	if err := s.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg encoding failed after %d frames: %w\nstderr: %s", s.frameCount, err, s.stderr.String())
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close ffmpeg stdin: %w", closeErr)
	}
	return nil
}

// Ensure Encoder implements ports.VideoEncoder
var _ ports.VideoEncoder = (*Encoder)(nil)
