// Package ggrenderer provides a text renderer implementation using the gg library.
package ggrenderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/lapsestamp/pkg/ports"
)

// DefaultFontSize is the label size in points when none is configured.
const DefaultFontSize = 64

// Renderer implements ports.TextRenderer with a single face loaded up front.
type Renderer struct {
	face font.Face
}

// New loads the font described by spec. A missing or unparsable font file
// fails with ports.ErrFontUnavailable.
func New(spec ports.FontSpec) (*Renderer, error) {
	if spec.Size <= 0 {
		spec.Size = DefaultFontSize
	}

	face, err := loadFace(spec)
	if err != nil {
		return nil, err
	}
	return &Renderer{face: face}, nil
}

func loadFace(spec ports.FontSpec) (font.Face, error) {
	if spec.Path != "" {
		face, err := gg.LoadFontFace(spec.Path, spec.Size)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ports.ErrFontUnavailable, spec.Path, err)
		}
		return face, nil
	}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("%w: embedded font: %w", ports.ErrFontUnavailable, err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: spec.Size}), nil
}

// DrawText draws text with its top-left corner at (x, y), mutating dst.
func (r *Renderer) DrawText(dst *image.RGBA, text string, x, y int, style ports.TextStyle) error {
	if dst == nil {
		return fmt.Errorf("draw %q: nil image", text)
	}

	dc := gg.NewContextForRGBA(dst)
	dc.SetFontFace(r.face)

	ox, oy := float64(x), float64(y)

	if style.Shadow {
		shadow := style.ShadowColor
		if shadow == nil {
			shadow = color.RGBA{A: 180}
		}
		off := float64(style.ShadowOffset)
		dc.SetColor(shadow)
		dc.DrawStringAnchored(text, ox+off, oy+off, 0, 1)
	}

	fg := style.Color
	if fg == nil {
		fg = color.White
	}
	dc.SetColor(fg)
	dc.DrawStringAnchored(text, ox, oy, 0, 1)

	return nil
}

// Ensure Renderer implements ports.TextRenderer
var _ ports.TextRenderer = (*Renderer)(nil)
