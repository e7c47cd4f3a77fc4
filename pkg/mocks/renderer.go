package mocks

import (
	"image"

	"github.com/user/lapsestamp/pkg/ports"
)

// TextRenderer is a mock implementation of ports.TextRenderer.
type TextRenderer struct {
	DrawTextFunc func(dst *image.RGBA, text string, x, y int) error

	DrawTextCalls []DrawTextCall
}

// DrawTextCall records a call to DrawText.
type DrawTextCall struct {
	Text  string
	X     int
	Y     int
	Style ports.TextStyle
}

func (m *TextRenderer) DrawText(dst *image.RGBA, text string, x, y int, style ports.TextStyle) error {
	m.DrawTextCalls = append(m.DrawTextCalls, DrawTextCall{Text: text, X: x, Y: y, Style: style})
	if m.DrawTextFunc != nil {
		return m.DrawTextFunc(dst, text, x, y)
	}
	return nil
}

var _ ports.TextRenderer = (*TextRenderer)(nil)
