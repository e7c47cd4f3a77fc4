// Package transform provides the per-frame geometry: quarter-turn rotation
// and aspect-preserving letterboxing.
package transform

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Rotate returns a new buffer holding src turned counter-clockwise by
// steps * 90 degrees. Width and height swap when steps is odd.
func Rotate(src *image.RGBA, steps int) *image.RGBA {
	steps = ((steps % 4) + 4) % 4

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	var dst *image.RGBA
	if steps%2 == 1 {
		dst = image.NewRGBA(image.Rect(0, 0, h, w))
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}

	for y := 0; y < h; y++ {
		srcRow := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < w; x++ {
			var dx, dy int
			switch steps {
			case 0:
				dx, dy = x, y
			case 1:
				dx, dy = y, w-1-x
			case 2:
				dx, dy = w-1-x, h-1-y
			case 3:
				dx, dy = h-1-y, x
			}
			di := dst.PixOffset(dx, dy)
			copy(dst.Pix[di:di+4], srcRow[x*4:x*4+4])
		}
	}

	return dst
}

// FitRect returns where an oldW x oldH image lands inside a targetW x targetH
// canvas when scaled by min(targetW/oldW, targetH/oldH) and centred.
// Sizes and offsets are truncated toward zero.
func FitRect(oldW, oldH, targetW, targetH int) image.Rectangle {
	if oldW <= 0 || oldH <= 0 {
		return image.Rectangle{}
	}

	ratio := float64(targetW) / float64(oldW)
	if r := float64(targetH) / float64(oldH); r < ratio {
		ratio = r
	}

	w := int(float64(oldW) * ratio)
	h := int(float64(oldH) * ratio)
	x := (targetW - w) / 2
	y := (targetH - h) / 2

	return image.Rect(x, y, x+w, y+h)
}

// Fit scales img into a new width x height buffer, preserving aspect ratio
// and filling the uncovered area with bg. The image is never cropped.
func Fit(img *image.RGBA, width, height int, bg color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	b := img.Bounds()
	rect := FitRect(b.Dx(), b.Dy(), width, height)
	if rect.Empty() {
		return dst
	}

	if rect.Dx() == b.Dx() && rect.Dy() == b.Dy() {
		draw.Draw(dst, rect, img, b.Min, draw.Src)
		return dst
	}

	draw.CatmullRom.Scale(dst, rect, img, b, draw.Src, nil)
	return dst
}

// Apply rotates frame and fits the result back into the frame's own
// pre-rotation dimensions, so the output keeps the source footprint.
func Apply(frame *image.RGBA, rotation Rotation, bg color.Color) *image.RGBA {
	b := frame.Bounds()
	rotated := Rotate(frame, rotation.Steps())
	return Fit(rotated, b.Dx(), b.Dy(), bg)
}
