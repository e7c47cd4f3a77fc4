// Package overlay derives the time-of-capture label for a frame and draws it.
package overlay

import (
	"fmt"
	"time"
)

// DefaultResolution is the bucket width applied before display.
const DefaultResolution = 600 * time.Second

// Bucket floors t to the nearest lower multiple of resolution measured from
// the Unix epoch. The result keeps t's location.
func Bucket(t time.Time, resolution time.Duration) time.Time {
	res := int64(resolution / time.Second)
	if res <= 0 {
		return t
	}

	secs := t.Unix()
	q := secs / res
	if secs%res < 0 {
		q--
	}
	return time.Unix(q*res, 0).In(t.Location())
}

// Format renders t on a 12-hour clock without a leading zero on the hour,
// followed by "a" before noon and "p" from noon on.
func Format(t time.Time) string {
	hour := t.Hour()
	suffix := "a"
	if hour >= 12 {
		suffix = "p"
	}

	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d%s", h, t.Minute(), suffix)
}

// Position returns the label anchor for a width x height frame given
// relative coordinates. Fractions are truncated.
func Position(width, height int, relX, relY float64) (int, int) {
	return int(relX * float64(width)), int(relY * float64(height))
}
