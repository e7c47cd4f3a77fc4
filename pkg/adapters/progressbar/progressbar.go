// Package progressbar reports per-frame progress as a single redrawn terminal line.
package progressbar

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/user/lapsestamp/pkg/ports"
)

const (
	barWidth     = 30
	redrawPeriod = 100 * time.Millisecond
)

// Bar implements ports.Progress. A disabled bar counts but never draws.
type Bar struct {
	out     io.Writer
	enabled bool
	now     func() time.Time

	total    int
	current  int
	started  time.Time
	lastDraw time.Time
}

// New creates a bar on f, enabled only when f is a terminal.
func New(f *os.File) *Bar {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	return NewWriter(f, tty)
}

// NewWriter creates a bar drawing to w when enabled.
func NewWriter(w io.Writer, enabled bool) *Bar {
	return &Bar{
		out:     w,
		enabled: enabled,
		now:     time.Now,
	}
}

// Start resets the bar for total units of work.
func (b *Bar) Start(total int) {
	b.total = total
	b.current = 0
	b.started = b.now()
	b.lastDraw = time.Time{}
	b.draw()
}

// Advance records one completed frame.
func (b *Bar) Advance() {
	b.current++
	if b.now().Sub(b.lastDraw) >= redrawPeriod || b.current == b.total {
		b.draw()
	}
}

// Finish draws the final state and ends the line.
func (b *Bar) Finish() {
	if !b.enabled {
		return
	}
	b.draw()
	fmt.Fprintln(b.out)
}

func (b *Bar) draw() {
	if !b.enabled {
		return
	}
	b.lastDraw = b.now()
	fmt.Fprint(b.out, "\r"+b.line())
}

func (b *Bar) line() string {
	total := b.total
	if total <= 0 || b.current > total {
		// Unknown or under-reported length: show the count only.
		return fmt.Sprintf("%d frames  %s", b.current, b.elapsed())
	}

	filled := b.current * barWidth / total
	pct := b.current * 100 / total
	return fmt.Sprintf("[%s%s] %d/%d %3d%%  %s",
		strings.Repeat("#", filled), strings.Repeat(".", barWidth-filled),
		b.current, total, pct, b.elapsed())
}

func (b *Bar) elapsed() string {
	return b.now().Sub(b.started).Truncate(time.Second).String()
}

// Ensure Bar implements ports.Progress
var _ ports.Progress = (*Bar)(nil)
