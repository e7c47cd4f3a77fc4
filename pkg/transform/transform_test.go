package transform

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

// createTestImage creates an image where every pixel is unique.
func createTestImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x + y*width), A: 255})
		}
	}
	return img
}

func TestParseRotation(t *testing.T) {
	tests := []struct {
		in    string
		want  Rotation
		steps int
	}{
		{"", RotateNone, 0},
		{"none", RotateNone, 0},
		{"left", RotateLeft, 1},
		{"flip", RotateFlip, 2},
		{"right", RotateRight, 3},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRotation(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseRotation(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.Steps() != tt.steps {
				t.Errorf("%v.Steps() = %d, want %d", got, got.Steps(), tt.steps)
			}
		})
	}

	if _, err := ParseRotation("sideways"); err == nil {
		t.Error("expected error for unknown rotation")
	}
}

func TestRotate_ZeroIsIdentity(t *testing.T) {
	img := createTestImage(7, 5)
	got := Rotate(img, 0)
	if got == img {
		t.Fatal("expected a new buffer")
	}
	if !bytes.Equal(got.Pix, img.Pix) || got.Bounds() != img.Bounds() {
		t.Error("expected identical content")
	}
}

func TestRotate_FlipTwiceIsIdentity(t *testing.T) {
	img := createTestImage(6, 4)
	got := Rotate(Rotate(img, 2), 2)
	if !bytes.Equal(got.Pix, img.Pix) {
		t.Error("expected double flip to reproduce the original")
	}
}

func TestRotate_OddStepsSwapDimensions(t *testing.T) {
	img := createTestImage(8, 3)
	for _, steps := range []int{1, 3} {
		b := Rotate(img, steps).Bounds()
		if b.Dx() != 3 || b.Dy() != 8 {
			t.Errorf("steps=%d: expected 3x8, got %dx%d", steps, b.Dx(), b.Dy())
		}
	}
}

func TestRotate_CounterClockwise(t *testing.T) {
	img := createTestImage(4, 3)
	topRight := img.RGBAAt(3, 0)
	topLeft := img.RGBAAt(0, 0)

	// One counter-clockwise turn moves the top-right corner to the top-left.
	left := Rotate(img, 1)
	if left.RGBAAt(0, 0) != topRight {
		t.Errorf("steps=1: expected top-right pixel at origin, got %v", left.RGBAAt(0, 0))
	}

	// Three turns (clockwise) move the top-left corner to the top-right.
	right := Rotate(img, 3)
	if right.RGBAAt(2, 0) != topLeft {
		t.Errorf("steps=3: expected top-left pixel at (2,0), got %v", right.RGBAAt(2, 0))
	}

	// Four single turns return to the start.
	full := Rotate(Rotate(Rotate(Rotate(img, 1), 1), 1), 1)
	if !bytes.Equal(full.Pix, img.Pix) {
		t.Error("expected four quarter turns to be the identity")
	}
}

func TestFitRect(t *testing.T) {
	tests := []struct {
		name               string
		oldW, oldH, tW, tH int
		want               image.Rectangle
	}{
		{"same size", 100, 50, 100, 50, image.Rect(0, 0, 100, 50)},
		{"rotated landscape into landscape", 1080, 1920, 1920, 1080, image.Rect(656, 0, 1263, 1080)},
		{"upscale to fit", 10, 10, 40, 20, image.Rect(10, 0, 30, 20)},
		{"width bound", 200, 100, 100, 100, image.Rect(0, 25, 100, 75)},
		{"odd padding truncates", 3, 3, 10, 9, image.Rect(0, 0, 9, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitRect(tt.oldW, tt.oldH, tt.tW, tt.tH)
			if got != tt.want {
				t.Errorf("FitRect(%d,%d,%d,%d) = %v, want %v", tt.oldW, tt.oldH, tt.tW, tt.tH, got, tt.want)
			}
		})
	}
}

func TestFit_OutputSizeAndAspect(t *testing.T) {
	sizes := [][4]int{
		{100, 50, 64, 64},
		{33, 77, 120, 45},
		{1080, 1920, 1920, 1080},
		{5, 5, 7, 3},
	}
	for _, s := range sizes {
		img := createTestImage(s[0], s[1])
		got := Fit(img, s[2], s[3], color.Black)
		if got.Bounds().Dx() != s[2] || got.Bounds().Dy() != s[3] {
			t.Errorf("%v: expected %dx%d output, got %v", s, s[2], s[3], got.Bounds())
		}

		rect := FitRect(s[0], s[1], s[2], s[3])
		// Inner aspect ratio matches within one pixel of rounding.
		wantH := float64(rect.Dx()) * float64(s[1]) / float64(s[0])
		if diff := wantH - float64(rect.Dy()); diff > 1 || diff < -1 {
			t.Errorf("%v: inner region %v drifts from source aspect", s, rect)
		}
	}
}

func TestFit_BackgroundAndCentering(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 20))
	red := color.RGBA{R: 255, A: 255}
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+3] = 255, 255
	}

	bg := color.RGBA{B: 255, A: 255}
	got := Fit(img, 40, 20, bg)

	if got.RGBAAt(0, 10) != bg {
		t.Errorf("expected background at left edge, got %v", got.RGBAAt(0, 10))
	}
	if got.RGBAAt(39, 10) != bg {
		t.Errorf("expected background at right edge, got %v", got.RGBAAt(39, 10))
	}
	if got.RGBAAt(20, 10) != red {
		t.Errorf("expected image content at centre, got %v", got.RGBAAt(20, 10))
	}
}

func TestApply_KeepsSourceFootprint(t *testing.T) {
	img := createTestImage(16, 9)

	for _, r := range []Rotation{RotateNone, RotateLeft, RotateRight, RotateFlip} {
		got := Apply(img, r, color.Black)
		if got.Bounds() != img.Bounds() {
			t.Errorf("%v: expected %v, got %v", r, img.Bounds(), got.Bounds())
		}
	}

	if got := Apply(img, RotateNone, color.Black); !bytes.Equal(got.Pix, img.Pix) {
		t.Error("expected no rotation to copy the frame exactly")
	}
	if got := Apply(img, RotateFlip, color.Black); !bytes.Equal(got.Pix, Rotate(img, 2).Pix) {
		t.Error("expected flip to need no scaling")
	}
}
