package editor

import (
	"testing"

	"github.com/modedev/moded/internal/engine/buffer"
)

func TestIndentWanted(t *testing.T) {
	b := buffer.NewFromString("    four\nnone\n  two\n")

	cases := []struct {
		line   int
		indent int
		ok     bool
	}{
		{0, 0, false}, // no line above
		{1, 4, true},
		{2, 0, true},
		{3, 2, true},
	}

	for _, tc := range cases {
		indent, ok := indentWanted(tc.line, b)
		if ok != tc.ok || indent != tc.indent {
			t.Errorf("indentWanted(%d) = (%d, %v), want (%d, %v)", tc.line, indent, ok, tc.indent, tc.ok)
		}
	}
}
