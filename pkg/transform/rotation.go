package transform

import "fmt"

// Rotation is the run-wide orientation correction.
type Rotation int

const (
	RotateNone Rotation = iota
	RotateLeft
	RotateRight
	RotateFlip
)

// ParseRotation parses a rotation name. The empty string selects RotateNone.
func ParseRotation(s string) (Rotation, error) {
	switch s {
	case "", "none":
		return RotateNone, nil
	case "left":
		return RotateLeft, nil
	case "right":
		return RotateRight, nil
	case "flip":
		return RotateFlip, nil
	}
	return RotateNone, fmt.Errorf("unknown rotation %q (want left, right or flip)", s)
}

// Steps returns the number of counter-clockwise quarter turns.
// The mapping none:0, left:1, flip:2, right:3 is fixed.
func (r Rotation) Steps() int {
	switch r {
	case RotateLeft:
		return 1
	case RotateFlip:
		return 2
	case RotateRight:
		return 3
	}
	return 0
}

// String returns the rotation name.
func (r Rotation) String() string {
	switch r {
	case RotateNone:
		return "none"
	case RotateLeft:
		return "left"
	case RotateRight:
		return "right"
	case RotateFlip:
		return "flip"
	}
	return "unknown"
}
