package cursor

import "github.com/modedev/moded/internal/engine/buffer"

// Selection is a visual-mode range between a fixed anchor and the
// moving cursor. Both ends are inclusive.
type Selection struct {
	Anchor buffer.Position
	Head   buffer.Position
}

// Bounds returns the selection ends in document order.
func (s Selection) Bounds() (start, end buffer.Position) {
	return buffer.MinPosition(s.Anchor, s.Head), buffer.MaxPosition(s.Anchor, s.Head)
}

// Contains reports whether p falls inside the character-wise
// selection.
func (s Selection) Contains(p buffer.Position) bool {
	start, end := s.Bounds()
	return !p.Before(start) && !p.After(end)
}

// ContainsLine reports whether a line falls inside the line-wise
// selection.
func (s Selection) ContainsLine(line int) bool {
	start, end := s.Bounds()
	return line >= start.Line && line <= end.Line
}
