package buffer

import "fmt"

// Position is a location in the text store: a 0-indexed line and a
// 0-indexed column counted in decoded runes, not bytes. Positions are
// totally ordered, line first.
type Position struct {
	Line int
	Col  int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Col != other.Col {
		if p.Col < other.Col {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// MinPosition returns the earlier of two positions.
func MinPosition(a, b Position) Position {
	if a.Before(b) {
		return a
	}
	return b
}

// MaxPosition returns the later of two positions.
func MaxPosition(a, b Position) Position {
	if a.After(b) {
		return a
	}
	return b
}
