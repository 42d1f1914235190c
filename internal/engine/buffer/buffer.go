package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/modedev/moded/internal/engine/gapbuf"
)

// Errors returned by text store mutations.
var (
	ErrLineOutOfRange = errors.New("line out of range")
	ErrRangeInvalid   = errors.New("invalid range")
	ErrNoSeparator    = errors.New("line has no following separator")
)

// Separator is the line ending style of a buffer, detected once on
// load and preserved for the lifetime of the buffer.
type Separator uint8

const (
	SepLF   Separator = iota // Unix: \n
	SepCRLF                  // Windows: \r\n
)

// Len returns the separator length in bytes.
func (s Separator) Len() int {
	if s == SepCRLF {
		return 2
	}
	return 1
}

// Sequence returns the actual separator characters.
func (s Separator) Sequence() string {
	if s == SepCRLF {
		return "\r\n"
	}
	return "\n"
}

// String returns the string representation of the separator.
func (s Separator) String() string {
	if s == SepCRLF {
		return "\\r\\n"
	}
	return "\\n"
}

// TextBuffer is a line-indexed text store built on two gap arrays:
// one holding the raw bytes (line separators inline) and one holding
// the byte offset of each line's start. Both arrays keep their gap
// near the edit point, so localized edits are cheap.
//
// Column arguments are always counted in decoded runes as seen on
// screen; byte-level bookkeeping never leaks through the public API.
// Line indices are a caller invariant: read accessors panic on an
// out-of-range line, mutating operations return a typed error.
//
// A TextBuffer is owned and mutated by a single session controller;
// it is not safe for concurrent use.
type TextBuffer struct {
	bytes      *gapbuf.Buffer[byte]
	lineStarts *gapbuf.Buffer[int]
	sep        Separator
}

// New creates a text store from raw content. The separator style is
// detected by scanning for the first \r\n; line starts are built with
// a single pass. An empty input still has one (empty) line.
func New(data []byte) *TextBuffer {
	sep := SepLF
	if bytes.Contains(data, []byte("\r\n")) {
		sep = SepCRLF
	}

	starts := []int{0}
	for i, b := range data {
		if b == '\n' && i+1 < len(data) {
			starts = append(starts, i+1)
		}
	}

	return &TextBuffer{
		bytes:      gapbuf.New(data),
		lineStarts: gapbuf.New(starts),
		sep:        sep,
	}
}

// NewFromString creates a text store from a string.
func NewFromString(s string) *TextBuffer {
	return New([]byte(s))
}

// Separator returns the detected line ending style.
func (t *TextBuffer) Separator() Separator {
	return t.sep
}

// TotalLines returns the number of lines. Always at least 1.
func (t *TextBuffer) TotalLines() int {
	return t.lineStarts.Len()
}

// Len returns the total content length in bytes.
func (t *TextBuffer) Len() int {
	return t.bytes.Len()
}

// Bytes returns a copy of the full content, separators included.
// Serializing an unedited buffer reproduces the loaded bytes exactly.
func (t *TextBuffer) Bytes() []byte {
	return t.bytes.Slice(0, t.bytes.Len())
}

// RawLine returns the text of line i including its trailing
// separator, if any. Panics if i is out of range.
func (t *TextBuffer) RawLine(i int) string {
	start, end := t.lineSpan(i)
	return string(t.bytes.Slice(start, end))
}

// Line returns the text of line i without its trailing separator.
// Panics if i is out of range.
func (t *TextBuffer) Line(i int) string {
	return strings.TrimSuffix(t.RawLine(i), t.sep.Sequence())
}

// LineLen returns the rune count of line i as seen on screen, the
// separator excluded. The final line may lack a separator; the count
// stays correct either way. Panics if i is out of range.
func (t *TextBuffer) LineLen(i int) int {
	return utf8.RuneCountInString(t.Line(i))
}

// RawLineLen returns the byte length of line i including its
// separator. Panics if i is out of range.
func (t *TextBuffer) RawLineLen(i int) int {
	start, end := t.lineSpan(i)
	return end - start
}

// InsertIntoLine inserts data at the given rune column of a line.
// Every later line start shifts forward by len(data).
func (t *TextBuffer) InsertIntoLine(line, col int, data []byte) error {
	if line < 0 || line >= t.TotalLines() {
		return fmt.Errorf("insert into line %d: %w", line, ErrLineOutOfRange)
	}
	if len(data) == 0 {
		return nil
	}

	start := t.lineStarts.At(line)
	off := t.colToByte(line, col)
	t.bytes.Insert(start+off, data)
	t.lineStarts.AddToRange(line+1, t.lineStarts.Len(), len(data))
	return nil
}

// InsertEmptyLine inserts an empty line so that it becomes line row.
// Inserting before an existing line places a bare separator at that
// line's start. Appending past a terminated last line makes the pushed
// separator the new line; appending past an unterminated last line
// first terminates it and the new line starts empty after the
// separator.
func (t *TextBuffer) InsertEmptyLine(row int) error {
	if row < 0 || row > t.TotalLines() {
		return fmt.Errorf("insert empty line %d: %w", row, ErrLineOutOfRange)
	}

	if row < t.TotalLines() {
		index := t.lineStarts.At(row)
		t.bytes.Insert(index, []byte(t.sep.Sequence()))
		t.lineStarts.Insert(row, []int{index})
		t.lineStarts.AddToRange(row+1, t.lineStarts.Len(), t.sep.Len())
		return nil
	}

	// When the last line lacks a separator, the pushed one terminates
	// it and the new line starts after, keeping the invariant that
	// every non-final line's raw span ends with the separator.
	last := t.TotalLines() - 1
	terminated := strings.HasSuffix(t.RawLine(last), t.sep.Sequence())

	t.bytes.PushBack([]byte(t.sep.Sequence()))
	start := t.bytes.Len()
	if terminated {
		start -= t.sep.Len()
	}
	t.lineStarts.PushBack([]int{start})
	return nil
}

// RemoveFromLine removes n runes of a line starting at the given rune
// column. The span is clamped to the visible line content; the
// separator is never touched. Later line starts shift backward.
func (t *TextBuffer) RemoveFromLine(line, col, n int) error {
	if line < 0 || line >= t.TotalLines() {
		return fmt.Errorf("remove from line %d: %w", line, ErrLineOutOfRange)
	}
	if n <= 0 {
		return nil
	}

	start := t.lineStarts.At(line)
	text := t.Line(line)

	off := 0
	length := 0
	i := 0
	for _, r := range text {
		if i >= col+n {
			break
		}
		if i < col {
			off += utf8.RuneLen(r)
		} else {
			length += utf8.RuneLen(r)
		}
		i++
	}
	if length == 0 {
		return nil
	}

	t.bytes.Remove(start+off, length)
	t.lineStarts.SubFromRange(line+1, t.lineStarts.Len(), length)
	return nil
}

// RemoveLine deletes an entire raw line, separator included. When
// only one line exists its content is cleared instead, so the store
// never drops below one line.
func (t *TextBuffer) RemoveLine(line int) error {
	if line < 0 || line >= t.TotalLines() {
		return fmt.Errorf("remove line %d: %w", line, ErrLineOutOfRange)
	}

	start := t.lineStarts.At(line)
	length := t.RawLineLen(line)

	t.bytes.Remove(start, length)
	if t.TotalLines() == 1 {
		return nil
	}
	t.lineStarts.SubFromRange(line+1, t.lineStarts.Len(), length)
	t.lineStarts.Remove(line, 1)
	return nil
}

// RemoveLineSep deletes exactly the separator ending the given line,
// merging it with the following line.
func (t *TextBuffer) RemoveLineSep(line int) error {
	if line < 0 || line >= t.TotalLines() {
		return fmt.Errorf("remove separator of line %d: %w", line, ErrLineOutOfRange)
	}
	if line+1 >= t.TotalLines() {
		return fmt.Errorf("remove separator of line %d: %w", line, ErrNoSeparator)
	}

	start := t.lineStarts.At(line)
	length := t.RawLineLen(line)
	t.bytes.Remove(start+length-t.sep.Len(), t.sep.Len())
	t.lineStarts.SubFromRange(line+1, t.lineStarts.Len(), t.sep.Len())
	t.lineStarts.Remove(line+1, 1)
	return nil
}

// SplitLineAt inserts a separator at the given rune column, creating
// a new line below.
func (t *TextBuffer) SplitLineAt(line, col int) error {
	if line < 0 || line >= t.TotalLines() {
		return fmt.Errorf("split line %d: %w", line, ErrLineOutOfRange)
	}

	start := t.lineStarts.At(line)
	off := t.colToByte(line, col)

	t.bytes.Insert(start+off, []byte(t.sep.Sequence()))
	t.lineStarts.Insert(line+1, []int{start + off})
	// The shift covers the entry just inserted, landing it one
	// separator past the split point: the first byte of the new line.
	t.lineStarts.AddToRange(line+1, t.lineStarts.Len(), t.sep.Len())
	return nil
}

// lineSpan returns the byte range [start, end) of a raw line.
// Panics if i is out of range: line indices are a caller invariant.
func (t *TextBuffer) lineSpan(i int) (int, int) {
	if i < 0 || i >= t.TotalLines() {
		panic(fmt.Sprintf("buffer: line %d out of range [0,%d)", i, t.TotalLines()))
	}
	start := t.lineStarts.At(i)
	if i+1 < t.TotalLines() {
		return start, t.lineStarts.At(i + 1)
	}
	return start, t.bytes.Len()
}

// colToByte translates a rune column of a line into a byte offset
// from the line start. Columns past the visible content land at the
// end of the content, before the separator.
func (t *TextBuffer) colToByte(line, col int) int {
	off := 0
	i := 0
	for _, r := range t.Line(line) {
		if i >= col {
			break
		}
		off += utf8.RuneLen(r)
		i++
	}
	return off
}
