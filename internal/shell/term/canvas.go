package term

import (
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/popup-shell/internal/shell"
)

// canvas collects the lines a window paints, clipped to the content area.
type canvas struct {
	size  shell.Size
	lines []string
}

func newCanvas(size shell.Size) *canvas {
	return &canvas{size: size}
}

func (c *canvas) Size() shell.Size { return c.size }

// DrawText appends one line. Lines past the bottom edge are dropped and
// long lines are cut at the right edge without breaking escape sequences.
func (c *canvas) DrawText(line string) {
	if c.size.Height > 0 && len(c.lines) >= c.size.Height {
		return
	}
	if c.size.Width > 0 {
		line = truncate.String(line, uint(c.size.Width))
	}
	c.lines = append(c.lines, line)
}
