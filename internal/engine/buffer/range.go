package buffer

import "fmt"

// RemoveRange removes the inclusive character range [start, end].
//
// Within a single line the bounded span is removed; if the span
// extends past the line's last character and a following line exists,
// the trailing separator goes with it (a visual selection extended
// past the line end via $ selects through the separator).
//
// Across lines the tail of the start line and the head of the end
// line are trimmed, every fully enclosed line is deleted, and the two
// remaining lines are joined.
func (t *TextBuffer) RemoveRange(start, end Position) error {
	if start.After(end) {
		return fmt.Errorf("remove range %v..%v: %w", start, end, ErrRangeInvalid)
	}
	if start.Line < 0 || end.Line >= t.TotalLines() {
		return fmt.Errorf("remove range %v..%v: %w", start, end, ErrLineOutOfRange)
	}

	if start.Line == end.Line {
		line := start.Line
		visLen := t.LineLen(line)
		if end.Col >= visLen && line < t.TotalLines()-1 {
			if err := t.RemoveFromLine(line, start.Col, visLen-start.Col); err != nil {
				return err
			}
			return t.RemoveLineSep(line)
		}
		return t.RemoveFromLine(line, start.Col, end.Col-start.Col+1)
	}

	if err := t.RemoveFromLine(start.Line, start.Col, t.LineLen(start.Line)-start.Col); err != nil {
		return err
	}
	if err := t.RemoveFromLine(end.Line, 0, end.Col+1); err != nil {
		return err
	}
	for l := start.Line + 1; l < end.Line; l++ {
		if err := t.RemoveLine(start.Line + 1); err != nil {
			return err
		}
	}
	return t.RemoveLineSep(start.Line)
}
