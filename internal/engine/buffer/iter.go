package buffer

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// RuneIterator walks decoded runes forward from a starting position
// to the end of the buffer, crossing line boundaries. Separator
// characters are yielded as-is (\n, and \r for CRLF buffers).
//
// The iterator reads the store lazily; it is valid only until the
// next mutation.
type RuneIterator struct {
	t   *TextBuffer
	off int
	r   rune
}

// Runes returns a forward rune iterator anchored at from.
func (t *TextBuffer) Runes(from Position) *RuneIterator {
	return &RuneIterator{t: t, off: t.positionToOffset(from)}
}

// Next advances to the next rune. Returns false at end of buffer.
func (it *RuneIterator) Next() bool {
	if it.off >= it.t.bytes.Len() {
		return false
	}
	var size int
	it.r, size = it.t.decodeAt(it.off)
	it.off += size
	return true
}

// Rune returns the current rune.
func (it *RuneIterator) Rune() rune {
	return it.r
}

// ReverseRuneIterator walks decoded runes backward from a starting
// position (inclusive) to the beginning of the buffer. Runes are
// reassembled by scanning continuation bytes right-to-left until a
// leading byte is found.
type ReverseRuneIterator struct {
	t   *TextBuffer
	off int // start of the rune to yield next, -1 when exhausted
	r   rune
}

// RunesBefore returns a backward rune iterator anchored at from. The
// rune at from is yielded first.
func (t *TextBuffer) RunesBefore(from Position) *ReverseRuneIterator {
	off := t.positionToOffset(from)
	if off >= t.bytes.Len() {
		off = t.lastRuneStart(t.bytes.Len())
	}
	return &ReverseRuneIterator{t: t, off: off}
}

// Next advances backward to the next rune. Returns false at the
// start of the buffer.
func (it *ReverseRuneIterator) Next() bool {
	if it.off < 0 {
		return false
	}
	it.r, _ = it.t.decodeAt(it.off)
	it.off = it.t.lastRuneStart(it.off)
	return true
}

// Rune returns the current rune.
func (it *ReverseRuneIterator) Rune() rune {
	return it.r
}

// decodeAt decodes the 1-4 byte UTF-8 sequence starting at the given
// byte offset.
func (t *TextBuffer) decodeAt(off int) (rune, int) {
	if off < 0 || off >= t.bytes.Len() {
		panic(fmt.Sprintf("buffer: decode at %d out of range [0,%d)", off, t.bytes.Len()))
	}

	var tmp [utf8.UTFMax]byte
	n := 0
	for ; n < utf8.UTFMax && off+n < t.bytes.Len(); n++ {
		tmp[n] = t.bytes.At(off + n)
	}
	return utf8.DecodeRune(tmp[:n])
}

// lastRuneStart returns the byte offset of the rune ending just
// before off, skipping continuation bytes right-to-left. Returns -1
// when no rune precedes off.
func (t *TextBuffer) lastRuneStart(off int) int {
	for i := off - 1; i >= 0; i-- {
		if !utf8.RuneStart(t.bytes.At(i)) {
			continue
		}
		return i
	}
	return -1
}

// positionToOffset translates a position into an absolute byte
// offset. Columns past the visible line content land on the line's
// separator.
func (t *TextBuffer) positionToOffset(p Position) int {
	return t.lineStarts.At(p.Line) + t.colToByte(p.Line, p.Col)
}

// offsetToPosition translates an absolute byte offset back into a
// (line, rune column) position via binary search over line starts.
func (t *TextBuffer) offsetToPosition(off int) Position {
	n := t.lineStarts.Len()
	line := sort.Search(n, func(i int) bool {
		return t.lineStarts.At(i) > off
	}) - 1
	start := t.lineStarts.At(line)
	col := utf8.RuneCount(t.bytes.Slice(start, off))
	return Position{Line: line, Col: col}
}
