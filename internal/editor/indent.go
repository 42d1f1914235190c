package editor

import "github.com/modedev/moded/internal/engine/buffer"

// indentWanted returns the leading-space count of the line above the
// given one, the reference indentation for a freshly created line.
// ok is false when no line exists above.
func indentWanted(line int, t *buffer.TextBuffer) (int, bool) {
	if line == 0 {
		return 0, false
	}

	indent := 0
	for _, r := range t.Line(line - 1) {
		if r != ' ' {
			break
		}
		indent++
	}
	return indent, true
}
