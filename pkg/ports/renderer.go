package ports

import (
	"image"
	"image/color"
)

// TextRenderer draws text onto frames.
// The font is bound when the renderer is constructed.
type TextRenderer interface {
	// DrawText draws text with its top-left corner at (x, y), mutating dst.
	DrawText(dst *image.RGBA, text string, x, y int, style TextStyle) error
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	Color        color.Color
	Shadow       bool
	ShadowColor  color.Color
	ShadowOffset int // Shadow displacement in pixels on both axes
}

// FontSpec identifies the font a TextRenderer loads.
type FontSpec struct {
	Path string  // TrueType file; empty selects the embedded Go Regular face
	Size float64 // Size in points at 72 DPI
}
