// Package cursor holds the caret and selection state of an open
// buffer view.
package cursor

import (
	"fmt"

	"github.com/modedev/moded/internal/engine/buffer"
)

// Cursor is the caret of one open buffer. X and Y are 1-indexed, X
// counted in runes. WantedX remembers the column the user last chose
// explicitly, so vertical motion through short lines can snap back out
// on a longer one.
type Cursor struct {
	X       int
	Y       int
	WantedX int
}

// New returns a cursor at the top left.
func New() Cursor {
	return Cursor{X: 1, Y: 1, WantedX: 1}
}

// Position converts the cursor to a 0-indexed buffer position.
func (c Cursor) Position() buffer.Position {
	return buffer.Position{Line: c.Y - 1, Col: c.X - 1}
}

// SetPosition moves the cursor to a 0-indexed buffer position and
// adopts the new column as the wanted one.
func (c *Cursor) SetPosition(p buffer.Position) {
	c.X = p.Col + 1
	c.Y = p.Line + 1
	c.WantedX = c.X
}

// SetX moves the cursor to a 1-indexed column and adopts it as the
// wanted one.
func (c *Cursor) SetX(x int) {
	c.X = x
	c.WantedX = x
}

// ClampX limits the column to [1, max].
func (c *Cursor) ClampX(max int) {
	if max < 1 {
		max = 1
	}
	if c.X > max {
		c.X = max
	}
	if c.X < 1 {
		c.X = 1
	}
}

func (c Cursor) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
