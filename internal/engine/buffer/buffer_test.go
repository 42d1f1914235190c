package buffer

import (
	"bytes"
	"testing"
)

func TestNewEmptyHasOneLine(t *testing.T) {
	b := New(nil)

	if b.TotalLines() != 1 {
		t.Errorf("expected 1 line, got %d", b.TotalLines())
	}
	if b.Line(0) != "" {
		t.Errorf("expected empty line, got %q", b.Line(0))
	}
	if b.Separator() != SepLF {
		t.Errorf("expected LF default, got %v", b.Separator())
	}
}

func TestSeparatorDetection(t *testing.T) {
	cases := []struct {
		name string
		data string
		want Separator
	}{
		{"lf", "one\ntwo\n", SepLF},
		{"crlf", "one\r\ntwo\r\n", SepCRLF},
		{"no separator", "just one line", SepLF},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := New([]byte(tc.data)).Separator(); got != tc.want {
				t.Errorf("separator = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLineAccessors(t *testing.T) {
	b := NewFromString("foo\nbar baz\nqux")

	if b.TotalLines() != 3 {
		t.Fatalf("expected 3 lines, got %d", b.TotalLines())
	}

	lines := []string{"foo", "bar baz", "qux"}
	for i, want := range lines {
		if got := b.Line(i); got != want {
			t.Errorf("Line(%d) = %q, want %q", i, got, want)
		}
	}

	if got := b.RawLine(0); got != "foo\n" {
		t.Errorf("RawLine(0) = %q, want %q", got, "foo\n")
	}
	if got := b.RawLine(2); got != "qux" {
		t.Errorf("RawLine(2) = %q, want %q", got, "qux")
	}
}

func TestLineLenExcludesSeparator(t *testing.T) {
	lf := NewFromString("foo\nbar\n")
	for i := 0; i < lf.TotalLines(); i++ {
		if lf.RawLineLen(i) != lf.LineLen(i)+1 {
			t.Errorf("LF line %d: raw %d, visible %d", i, lf.RawLineLen(i), lf.LineLen(i))
		}
	}

	crlf := NewFromString("foo\r\nbar\r\n")
	for i := 0; i < crlf.TotalLines(); i++ {
		if crlf.RawLineLen(i) != crlf.LineLen(i)+2 {
			t.Errorf("CRLF line %d: raw %d, visible %d", i, crlf.RawLineLen(i), crlf.LineLen(i))
		}
	}

	// The final line has no trailing separator; the count must not
	// go negative or lose a character.
	last := NewFromString("foo\nbar")
	if got := last.LineLen(1); got != 3 {
		t.Errorf("final line length = %d, want 3", got)
	}
	if got := last.RawLineLen(1); got != 3 {
		t.Errorf("final raw line length = %d, want 3", got)
	}
}

func TestLineLenCountsRunesNotBytes(t *testing.T) {
	b := NewFromString("tes😃t😂iä\n")
	if got := b.LineLen(0); got != 8 {
		t.Errorf("LineLen = %d, want 8", got)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"one line no separator",
		"foo\nbar\nbaz\n",
		"foo\r\nbar\r\nbaz",
		"trailing empty\n\n",
	}

	for _, data := range cases {
		b := New([]byte(data))
		if got := b.Bytes(); !bytes.Equal(got, []byte(data)) {
			t.Errorf("round trip of %q yielded %q", data, got)
		}
	}
}

func TestInsertIntoLine(t *testing.T) {
	b := NewFromString("foo\nbar\n")

	if err := b.InsertIntoLine(1, 1, []byte("XY")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if got := b.Line(1); got != "bXYar" {
		t.Errorf("Line(1) = %q, want %q", got, "bXYar")
	}
	if got := string(b.Bytes()); got != "foo\nbXYar\n" {
		t.Errorf("content = %q", got)
	}
}

func TestInsertIntoLineMultibyteColumn(t *testing.T) {
	b := NewFromString("a😃b\n")

	if err := b.InsertIntoLine(0, 2, []byte("X")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if got := b.Line(0); got != "a😃Xb" {
		t.Errorf("Line(0) = %q, want %q", got, "a😃Xb")
	}
}

func TestInsertIntoLineShiftsLaterStarts(t *testing.T) {
	b := NewFromString("aa\nbb\ncc\n")

	if err := b.InsertIntoLine(0, 2, []byte("zz")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if got := b.Line(1); got != "bb" {
		t.Errorf("Line(1) = %q, want %q", got, "bb")
	}
	if got := b.Line(2); got != "cc" {
		t.Errorf("Line(2) = %q, want %q", got, "cc")
	}
}

func TestInsertThenRemoveRestoresLine(t *testing.T) {
	b := NewFromString("hello world\nsecond\n")
	before := string(b.Bytes())

	if err := b.InsertIntoLine(0, 5, []byte("XYZ")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := b.RemoveFromLine(0, 5, 3); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if got := string(b.Bytes()); got != before {
		t.Errorf("content = %q, want %q", got, before)
	}
}

func TestInsertEmptyLine(t *testing.T) {
	t.Run("before existing line", func(t *testing.T) {
		b := NewFromString("foo\nbar\n")
		if err := b.InsertEmptyLine(1); err != nil {
			t.Fatalf("insert: %v", err)
		}
		if b.TotalLines() != 3 {
			t.Fatalf("expected 3 lines, got %d", b.TotalLines())
		}
		if got := string(b.Bytes()); got != "foo\n\nbar\n" {
			t.Errorf("content = %q", got)
		}
		if got := b.Line(1); got != "" {
			t.Errorf("Line(1) = %q, want empty", got)
		}
	})

	t.Run("append past terminated last line", func(t *testing.T) {
		b := NewFromString("foo\nbar\n")
		if err := b.InsertEmptyLine(2); err != nil {
			t.Fatalf("insert: %v", err)
		}
		if b.TotalLines() != 3 {
			t.Fatalf("expected 3 lines, got %d", b.TotalLines())
		}
		if got := b.LineLen(2); got != 0 {
			t.Errorf("new line length = %d, want 0", got)
		}
	})

	t.Run("append past unterminated last line", func(t *testing.T) {
		b := NewFromString("foo\nbar")
		if err := b.InsertEmptyLine(2); err != nil {
			t.Fatalf("insert: %v", err)
		}
		if b.TotalLines() != 3 {
			t.Fatalf("expected 3 lines, got %d", b.TotalLines())
		}
		if got := b.LineLen(1); got != 3 {
			t.Errorf("line 1 length = %d, want 3", got)
		}
		// The pushed separator must terminate the old last line, not
		// start the new one.
		if got := b.RawLineLen(1); got != 4 {
			t.Errorf("raw line 1 length = %d, want 4", got)
		}
		if got := b.LineLen(2); got != 0 {
			t.Errorf("new line length = %d, want 0", got)
		}
	})
}

func TestAppendLineThenEditUnterminated(t *testing.T) {
	t.Run("join restores original content", func(t *testing.T) {
		b := NewFromString("foo")
		if err := b.InsertEmptyLine(1); err != nil {
			t.Fatalf("insert line: %v", err)
		}
		if err := b.RemoveLineSep(0); err != nil {
			t.Fatalf("remove sep: %v", err)
		}
		if got := b.Line(0); got != "foo" {
			t.Errorf("Line(0) = %q, want %q", got, "foo")
		}
		if got := string(b.Bytes()); got != "foo" {
			t.Errorf("content = %q, want %q", got, "foo")
		}
	})

	t.Run("typed text lands on the new line", func(t *testing.T) {
		b := NewFromString("foo")
		if err := b.InsertEmptyLine(1); err != nil {
			t.Fatalf("insert line: %v", err)
		}
		if err := b.InsertIntoLine(1, 0, []byte("x")); err != nil {
			t.Fatalf("insert: %v", err)
		}
		if got := string(b.Bytes()); got != "foo\nx" {
			t.Errorf("content = %q, want %q", got, "foo\nx")
		}
		if got := b.Line(1); got != "x" {
			t.Errorf("Line(1) = %q, want %q", got, "x")
		}
	})
}

func TestRemoveLine(t *testing.T) {
	b := NewFromString("one\ntwo\nthree\n")

	if err := b.RemoveLine(1); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if got := string(b.Bytes()); got != "one\nthree\n" {
		t.Errorf("content = %q", got)
	}
	if b.TotalLines() != 2 {
		t.Errorf("expected 2 lines, got %d", b.TotalLines())
	}
}

func TestRemoveLineKeepsLastEntry(t *testing.T) {
	b := NewFromString("only\n")

	if err := b.RemoveLine(0); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if b.TotalLines() != 1 {
		t.Errorf("expected 1 line, got %d", b.TotalLines())
	}
	if got := b.Line(0); got != "" {
		t.Errorf("Line(0) = %q, want empty", got)
	}
}

func TestRemoveLineSepJoinsLines(t *testing.T) {
	b := NewFromString("foo\nbar\n")

	if err := b.RemoveLineSep(0); err != nil {
		t.Fatalf("remove sep: %v", err)
	}

	if b.TotalLines() != 1 {
		t.Fatalf("expected 1 line, got %d", b.TotalLines())
	}
	if got := b.Line(0); got != "foobar" {
		t.Errorf("Line(0) = %q, want %q", got, "foobar")
	}
}

func TestRemoveLineSepOnLastLine(t *testing.T) {
	b := NewFromString("foo\n")

	if err := b.RemoveLineSep(0); err == nil {
		t.Error("expected error removing separator of final line")
	}
}

func TestSplitLineAt(t *testing.T) {
	b := NewFromString("hello world\nnext\n")

	if err := b.SplitLineAt(0, 5); err != nil {
		t.Fatalf("split: %v", err)
	}

	if b.TotalLines() != 3 {
		t.Fatalf("expected 3 lines, got %d", b.TotalLines())
	}
	if got := b.Line(0); got != "hello" {
		t.Errorf("Line(0) = %q", got)
	}
	if got := b.Line(1); got != " world" {
		t.Errorf("Line(1) = %q", got)
	}
	if got := b.Line(2); got != "next" {
		t.Errorf("Line(2) = %q", got)
	}
}

func TestSplitLineCRLF(t *testing.T) {
	b := NewFromString("hello world\r\n")

	if err := b.SplitLineAt(0, 5); err != nil {
		t.Fatalf("split: %v", err)
	}

	if got := string(b.Bytes()); got != "hello\r\n world\r\n" {
		t.Errorf("content = %q", got)
	}
}

func TestRemoveRangeSingleChar(t *testing.T) {
	b := NewFromString("abcdef\nsecond\n")

	p := Position{Line: 0, Col: 2}
	if err := b.RemoveRange(p, p); err != nil {
		t.Fatalf("remove range: %v", err)
	}

	if got := b.Line(0); got != "abdef" {
		t.Errorf("Line(0) = %q, want %q", got, "abdef")
	}
}

func TestRemoveRangeSingleLineSpan(t *testing.T) {
	b := NewFromString("foo bar\nbaz\n")

	err := b.RemoveRange(Position{Line: 0, Col: 0}, Position{Line: 0, Col: 3})
	if err != nil {
		t.Fatalf("remove range: %v", err)
	}

	if got := string(b.Bytes()); got != "bar\nbaz\n" {
		t.Errorf("content = %q, want %q", got, "bar\nbaz\n")
	}
}

func TestRemoveRangeThroughLineEndJoins(t *testing.T) {
	b := NewFromString("foo bar\nbaz\n")

	// A range ending one past the last character takes the separator
	// with it.
	err := b.RemoveRange(Position{Line: 0, Col: 4}, Position{Line: 0, Col: 7})
	if err != nil {
		t.Fatalf("remove range: %v", err)
	}

	if got := string(b.Bytes()); got != "foo baz\n" {
		t.Errorf("content = %q, want %q", got, "foo baz\n")
	}
}

func TestRemoveRangeToLastCharKeepsSeparator(t *testing.T) {
	b := NewFromString("foo bar\nbaz\n")

	err := b.RemoveRange(Position{Line: 0, Col: 4}, Position{Line: 0, Col: 6})
	if err != nil {
		t.Fatalf("remove range: %v", err)
	}

	if got := string(b.Bytes()); got != "foo \nbaz\n" {
		t.Errorf("content = %q, want %q", got, "foo \nbaz\n")
	}
}

func TestRemoveRangeMultiLine(t *testing.T) {
	b := NewFromString("foo bar\nmiddle\nbaz qux\n")

	err := b.RemoveRange(Position{Line: 0, Col: 4}, Position{Line: 2, Col: 3})
	if err != nil {
		t.Fatalf("remove range: %v", err)
	}

	if got := string(b.Bytes()); got != "foo qux\n" {
		t.Errorf("content = %q, want %q", got, "foo qux\n")
	}
	if b.TotalLines() != 1 {
		t.Errorf("expected 1 line, got %d", b.TotalLines())
	}
}

func TestRemoveRangeInvalid(t *testing.T) {
	b := NewFromString("abc\n")

	err := b.RemoveRange(Position{Line: 0, Col: 3}, Position{Line: 0, Col: 1})
	if err == nil {
		t.Error("expected error for reversed range")
	}
}

func TestFind(t *testing.T) {
	b := NewFromString("foo bar\nbar foo bar\n")

	got := b.Find([]byte("bar"))
	want := []Position{{0, 4}, {1, 0}, {1, 8}}
	if len(got) != len(want) {
		t.Fatalf("found %d matches, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFindOverlapping(t *testing.T) {
	b := NewFromString("aaaa\n")

	if got := b.Find([]byte("aa")); len(got) != 3 {
		t.Errorf("found %d matches, want 3: %v", len(got), got)
	}
}

func TestFindEmptyNeedle(t *testing.T) {
	b := NewFromString("abc\n")

	if got := b.Find(nil); got != nil {
		t.Errorf("empty needle matched %v", got)
	}
}

func TestFindMultibyte(t *testing.T) {
	b := NewFromString("ä😂x\nyä\n")

	got := b.Find([]byte("ä"))
	want := []Position{{0, 0}, {1, 1}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("matches = %v, want %v", got, want)
	}
}

func TestPositionOrdering(t *testing.T) {
	cases := []struct {
		a, b Position
		want int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 1}, Position{0, 2}, -1},
		{Position{1, 0}, Position{0, 9}, 1},
		{Position{2, 3}, Position{2, 3}, 0},
	}

	for _, tc := range cases {
		if got := tc.a.Compare(tc.b); got != tc.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}

	if got := MinPosition(Position{1, 5}, Position{1, 2}); got != (Position{1, 2}) {
		t.Errorf("MinPosition = %v", got)
	}
	if got := MaxPosition(Position{0, 5}, Position{1, 0}); got != (Position{1, 0}) {
		t.Errorf("MaxPosition = %v", got)
	}
}
