package buffer

import "bytes"

// Find returns the position of every occurrence of needle, sorted by
// (line, column). Overlapping occurrences all count. An empty needle
// matches nothing.
func (t *TextBuffer) Find(needle []byte) []Position {
	if len(needle) == 0 {
		return nil
	}

	content := t.Bytes()
	var positions []Position
	for off := 0; off <= len(content)-len(needle); {
		i := bytes.Index(content[off:], needle)
		if i < 0 {
			break
		}
		positions = append(positions, t.offsetToPosition(off+i))
		off += i + 1
	}
	return positions
}
