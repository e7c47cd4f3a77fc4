package overlay

import (
	"image"
	"image/color"
	"time"

	"github.com/user/lapsestamp/pkg/ports"
)

// Options configures label derivation and placement.
type Options struct {
	Resolution time.Duration  // Bucket width (default: 10 minutes)
	Location   *time.Location // Display time zone (default: the timestamp's own)
	RelX       float64        // Horizontal anchor as a fraction of width (default: 0.05)
	RelY       float64        // Vertical anchor as a fraction of height (default: 0.20)
	Style      ports.TextStyle
}

// DefaultOptions returns the options matching the fixed label layout.
func DefaultOptions() Options {
	return Options{
		Resolution: DefaultResolution,
		RelX:       0.05,
		RelY:       0.20,
		Style: ports.TextStyle{
			Color:        color.White,
			Shadow:       true,
			ShadowColor:  color.RGBA{A: 180},
			ShadowOffset: 4,
		},
	}
}

// Stamper draws the bucketed capture time onto frames.
type Stamper struct {
	renderer ports.TextRenderer
	opts     Options
}

// NewStamper creates a Stamper drawing through renderer.
func NewStamper(renderer ports.TextRenderer, opts Options) *Stamper {
	return &Stamper{
		renderer: renderer,
		opts:     opts,
	}
}

// Label returns the display text for capture time t.
func (s *Stamper) Label(t time.Time) string {
	if s.opts.Location != nil {
		t = t.In(s.opts.Location)
	}
	return Format(Bucket(t, s.opts.Resolution))
}

// Stamp draws the label for t onto img in place and returns the text drawn.
func (s *Stamper) Stamp(img *image.RGBA, t time.Time) (string, error) {
	label := s.Label(t)
	b := img.Bounds()
	x, y := Position(b.Dx(), b.Dy(), s.opts.RelX, s.opts.RelY)
	if err := s.renderer.DrawText(img, label, b.Min.X+x, b.Min.Y+y, s.opts.Style); err != nil {
		return label, err
	}
	return label, nil
}
