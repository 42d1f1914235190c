// Package word implements vim's word and WORD boundary motions as
// pure lookups over the text store.
//
// Four character classes drive the scans: line separators, other
// whitespace, "letters" (alphanumerics plus underscore) and "specials"
// (any other non-whitespace). A word is a maximal run of letters or of
// specials; a WORD is a maximal run of anything non-whitespace.
//
// Lookups never mutate the store. A lookup with no target (already at
// the buffer edge, nothing left to scan to) reports ok=false and the
// caller treats it as a no-op.
package word

import (
	"unicode"

	"github.com/modedev/moded/internal/engine/buffer"
)

// Finder is a single-step motion lookup from a position.
type Finder func(*buffer.TextBuffer, buffer.Position) (buffer.Position, bool)

// Repeat applies find up to n times, feeding each successful position
// into the next step. A failed step keeps the previous position and
// the remaining steps still run. Reports ok=false only when every
// step failed.
func Repeat(t *buffer.TextBuffer, from buffer.Position, n int, find Finder) (buffer.Position, bool) {
	pos := from
	ok := false
	for i := 0; i < n; i++ {
		if p, found := find(t, pos); found {
			pos = p
			ok = true
		}
	}
	return pos, ok
}

// NextWordStart finds the start of the next word after from: the next
// class change into a letter or special run, or the first letter after
// a whitespace run. Crosses line boundaries.
func NextWordStart(t *buffer.TextBuffer, from buffer.Position) (buffer.Position, bool) {
	it := t.Runes(from)
	if !it.Next() {
		return buffer.Position{}, false
	}

	lineAdd := 0
	col := from.Col
	found := false

	if first := it.Rune(); isLetter(first) {
		sawSpace := false
		for it.Next() {
			r := it.Rune()
			if r == '\n' {
				lineAdd++
				col = -1
				sawSpace = true
				continue
			}
			if !sawSpace && unicode.IsSpace(r) {
				sawSpace = true
			}
			col++
			if !isLetter(r) && r != ' ' {
				found = true
				break
			}
			if sawSpace && isLetter(r) {
				found = true
				break
			}
		}
	} else {
		sawSpace := first == '\n' || unicode.IsSpace(first)
		if first == '\n' {
			lineAdd++
		}
		for it.Next() {
			r := it.Rune()
			if r == '\n' {
				lineAdd++
				col = -1
				sawSpace = true
				continue
			}
			if !sawSpace && unicode.IsSpace(r) {
				sawSpace = true
			}
			col++
			if (sawSpace && !unicode.IsSpace(r)) || isAlnum(r) {
				found = true
				break
			}
		}
	}

	if !found {
		return buffer.Position{}, false
	}
	return buffer.Position{Line: from.Line + lineAdd, Col: col}, true
}

// NextWORDStart finds the first non-whitespace character after the
// next whitespace run. Crosses line boundaries.
func NextWORDStart(t *buffer.TextBuffer, from buffer.Position) (buffer.Position, bool) {
	it := t.Runes(from)
	if !it.Next() {
		return buffer.Position{}, false
	}

	lineAdd := 0
	col := from.Col
	found := false

	sawSpace := it.Rune() == '\n'
	if sawSpace {
		lineAdd++
	}
	for it.Next() {
		r := it.Rune()
		if r == '\n' {
			lineAdd++
			col = -1
			sawSpace = true
			continue
		}
		if !sawSpace && unicode.IsSpace(r) {
			sawSpace = true
		}
		col++
		if sawSpace && !unicode.IsSpace(r) {
			found = true
			break
		}
	}

	if !found {
		return buffer.Position{}, false
	}
	return buffer.Position{Line: from.Line + lineAdd, Col: col}, true
}

// CurrentWordStart scans backward from the cursor to the start of the
// token under it, never crossing the line start. The character under
// the cursor decides which class the token is.
func CurrentWordStart(t *buffer.TextBuffer, from buffer.Position) buffer.Position {
	it := t.RunesBefore(from)

	col := from.Col
	var wantLetter, wantSpace, wantSpecial bool
	for it.Next() {
		r := it.Rune()
		if r == '\r' || r == '\n' {
			break
		}

		if col == from.Col {
			switch {
			case isLetter(r):
				wantSpace, wantSpecial = true, true
			case unicode.IsSpace(r):
				wantLetter, wantSpecial = true, true
			default:
				wantLetter, wantSpace = true, true
			}
		}

		if wantLetter && isLetter(r) {
			col++
			break
		}
		if wantSpace && unicode.IsSpace(r) {
			col++
			break
		}
		if wantSpecial && isSpecial(r) {
			col++
			break
		}

		if col == 0 {
			break
		}
		col--
	}

	return buffer.Position{Line: from.Line, Col: col}
}

// CurrentWordEnd scans forward from the cursor to the end of the token
// under it, never crossing the line end. Reports ok=false on an empty
// line.
func CurrentWordEnd(t *buffer.TextBuffer, from buffer.Position) (buffer.Position, bool) {
	it := t.Runes(from)

	col := from.Col
	var wantLetter, wantSpace, wantSpecial bool
	for it.Next() {
		r := it.Rune()
		if r == '\r' || r == '\n' {
			break
		}

		if col == from.Col {
			switch {
			case isLetter(r):
				wantSpace, wantSpecial = true, true
			case unicode.IsSpace(r):
				wantLetter, wantSpecial = true, true
			default:
				wantLetter, wantSpace = true, true
			}
		}

		if wantLetter && isLetter(r) {
			break
		}
		if wantSpace && unicode.IsSpace(r) {
			break
		}
		if wantSpecial && isSpecial(r) {
			break
		}

		col++
	}

	if col == 0 {
		return buffer.Position{}, false
	}
	return buffer.Position{Line: from.Line, Col: col - 1}, true
}

// CurrentWORDStart scans backward to the start of the whitespace-
// delimited run under the cursor, never crossing the line start.
func CurrentWORDStart(t *buffer.TextBuffer, from buffer.Position) buffer.Position {
	it := t.RunesBefore(from)

	col := from.Col
	wantSpace := true
	for it.Next() {
		r := it.Rune()
		if r == '\r' || r == '\n' {
			break
		}

		if col == from.Col && unicode.IsSpace(r) {
			wantSpace = false
		}

		if wantSpace && unicode.IsSpace(r) {
			col++
			break
		}
		if !wantSpace && !unicode.IsSpace(r) {
			col++
			break
		}

		if col == 0 {
			break
		}
		col--
	}

	return buffer.Position{Line: from.Line, Col: col}
}

// CurrentWORDEnd scans forward to the end of the whitespace-delimited
// run under the cursor, never crossing the line end. Reports ok=false
// on an empty line.
func CurrentWORDEnd(t *buffer.TextBuffer, from buffer.Position) (buffer.Position, bool) {
	it := t.Runes(from)

	col := from.Col
	wantSpace := true
	for it.Next() {
		r := it.Rune()
		if r == '\r' || r == '\n' {
			break
		}

		if col == from.Col && unicode.IsSpace(r) {
			wantSpace = false
		}

		if wantSpace && unicode.IsSpace(r) {
			break
		}
		if !wantSpace && !unicode.IsSpace(r) {
			break
		}

		col++
	}

	if col == 0 {
		return buffer.Position{}, false
	}
	return buffer.Position{Line: from.Line, Col: col - 1}, true
}

// PrevWordStart finds the start of the word before the cursor,
// stepping over the character to the left first. Crosses line
// boundaries. Reports ok=false at the start of the buffer.
func PrevWordStart(t *buffer.TextBuffer, from buffer.Position) (buffer.Position, bool) {
	line, col := from.Line, from.Col
	if col > 0 {
		col--
	} else {
		if line == 0 {
			return buffer.Position{}, false
		}
		line--
		col = t.LineLen(line)
	}

	it := t.RunesBefore(buffer.Position{Line: line, Col: col})
	if !it.Next() {
		return buffer.Position{}, false
	}

	var wantLetter, wantSpecial, found bool
	switch r := it.Rune(); {
	case unicode.IsSpace(r):
		wantLetter, wantSpecial = true, true
	case isLetter(r):
		found, wantLetter = true, true
	default:
		found, wantSpecial = true, true
	}

	for it.Next() {
		r := it.Rune()
		if r == '\n' {
			if found {
				break
			}
			line--
			col = t.LineLen(line)
			continue
		}
		if r == '\r' {
			continue
		}

		if !found && wantLetter && isLetter(r) {
			found, wantSpecial = true, false
		}
		if !found && wantSpecial && isSpecial(r) {
			found, wantLetter = true, false
		}

		if found && wantLetter && !isLetter(r) {
			break
		}
		if found && wantSpecial && !isSpecial(r) {
			break
		}

		col--
	}

	return buffer.Position{Line: line, Col: col}, true
}

// NextWordEnd finds the end of the word after the cursor, stepping
// over the character to the right first. Crosses line boundaries.
// Reports ok=false at the end of the buffer.
func NextWordEnd(t *buffer.TextBuffer, from buffer.Position) (buffer.Position, bool) {
	line, col := from.Line, from.Col
	if col < t.LineLen(line)-1 {
		col++
	} else {
		if line == t.TotalLines()-1 {
			return buffer.Position{}, false
		}
		line++
		col = 0
	}

	it := t.Runes(buffer.Position{Line: line, Col: col})
	if !it.Next() {
		return buffer.Position{}, false
	}

	var wantLetter, wantSpecial, found bool
	switch r := it.Rune(); {
	case unicode.IsSpace(r):
		wantLetter, wantSpecial = true, true
	case isLetter(r):
		found, wantLetter = true, true
	default:
		found, wantSpecial = true, true
	}

	for it.Next() {
		r := it.Rune()
		if r == '\n' {
			if found {
				break
			}
			line++
			col = 0
			continue
		}
		if r == '\r' {
			continue
		}

		if !found && wantLetter && isLetter(r) {
			found, wantSpecial = true, false
		}
		if !found && wantSpecial && isSpecial(r) {
			found, wantLetter = true, false
		}

		if found && wantLetter && !isLetter(r) {
			break
		}
		if found && wantSpecial && !isSpecial(r) {
			break
		}

		col++
	}

	return buffer.Position{Line: line, Col: col}, true
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isLetter(r rune) bool {
	return isAlnum(r) || r == '_'
}

func isSpecial(r rune) bool {
	return !unicode.IsSpace(r) && !isLetter(r)
}
