package word

import (
	"testing"

	"github.com/modedev/moded/internal/engine/buffer"
)

func pos(line, col int) buffer.Position {
	return buffer.Position{Line: line, Col: col}
}

func TestNextWordStart(t *testing.T) {
	cases := []struct {
		name string
		text string
		from buffer.Position
		want buffer.Position
		ok   bool
	}{
		{"across space", "foo bar baz", pos(0, 0), pos(0, 4), true},
		{"second word", "foo bar baz", pos(0, 4), pos(0, 8), true},
		{"punctuation ends word", "foo.bar", pos(0, 0), pos(0, 3), true},
		{"punctuation to letter", "foo.bar", pos(0, 3), pos(0, 4), true},
		{"underscore stays in word", "foo_bar baz", pos(0, 0), pos(0, 8), true},
		{"crosses line", "foo\nbar", pos(0, 0), pos(1, 0), true},
		{"crosses blank line", "foo\n\nbar", pos(0, 0), pos(2, 0), true},
		{"from mid word", "hello world", pos(0, 2), pos(0, 6), true},
		{"at last word", "foo bar", pos(0, 4), buffer.Position{}, false},
		{"single word", "foo", pos(0, 0), buffer.Position{}, false},
		{"empty buffer", "", pos(0, 0), buffer.Position{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := buffer.NewFromString(tc.text)
			got, ok := NextWordStart(b, tc.from)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("position = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNextWORDStart(t *testing.T) {
	cases := []struct {
		name string
		text string
		from buffer.Position
		want buffer.Position
		ok   bool
	}{
		{"skips punctuation run", "foo.bar baz", pos(0, 0), pos(0, 8), true},
		{"plain words", "one two", pos(0, 0), pos(0, 4), true},
		{"crosses line", "foo.\nbar", pos(0, 0), pos(1, 0), true},
		{"no next", "foo.bar", pos(0, 0), buffer.Position{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := buffer.NewFromString(tc.text)
			got, ok := NextWORDStart(b, tc.from)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("position = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCurrentWordBounds(t *testing.T) {
	b := buffer.NewFromString("foo bar_2 baz\n")

	start := CurrentWordStart(b, pos(0, 5))
	if start != pos(0, 4) {
		t.Errorf("start = %v, want %v", start, pos(0, 4))
	}

	end, ok := CurrentWordEnd(b, pos(0, 5))
	if !ok {
		t.Fatal("end not found")
	}
	if end != pos(0, 8) {
		t.Errorf("end = %v, want %v", end, pos(0, 8))
	}
}

func TestCurrentWordBoundsOnPunctuation(t *testing.T) {
	b := buffer.NewFromString("foo..::..bar\n")

	start := CurrentWordStart(b, pos(0, 5))
	if start != pos(0, 3) {
		t.Errorf("start = %v, want %v", start, pos(0, 3))
	}

	end, ok := CurrentWordEnd(b, pos(0, 5))
	if !ok {
		t.Fatal("end not found")
	}
	if end != pos(0, 8) {
		t.Errorf("end = %v, want %v", end, pos(0, 8))
	}
}

func TestCurrentWordStartAtLineStart(t *testing.T) {
	b := buffer.NewFromString("word here\n")

	if got := CurrentWordStart(b, pos(0, 0)); got != pos(0, 0) {
		t.Errorf("start = %v, want %v", got, pos(0, 0))
	}
}

func TestCurrentWordEndEmptyLine(t *testing.T) {
	b := buffer.NewFromString("\nfoo\n")

	if _, ok := CurrentWordEnd(b, pos(0, 0)); ok {
		t.Error("expected no word end on empty line")
	}
}

func TestCurrentWORDBounds(t *testing.T) {
	b := buffer.NewFromString("see foo.bar(x) end\n")

	start := CurrentWORDStart(b, pos(0, 8))
	if start != pos(0, 4) {
		t.Errorf("start = %v, want %v", start, pos(0, 4))
	}

	end, ok := CurrentWORDEnd(b, pos(0, 8))
	if !ok {
		t.Fatal("end not found")
	}
	if end != pos(0, 13) {
		t.Errorf("end = %v, want %v", end, pos(0, 13))
	}
}

func TestPrevWordStart(t *testing.T) {
	cases := []struct {
		name string
		text string
		from buffer.Position
		want buffer.Position
		ok   bool
	}{
		{"previous word", "foo bar", pos(0, 4), pos(0, 0), true},
		{"within word", "hello", pos(0, 3), pos(0, 0), true},
		{"punctuation is a word", "foo.bar", pos(0, 4), pos(0, 3), true},
		{"crosses line", "foo\nbar", pos(1, 0), pos(0, 0), true},
		{"at buffer start", "foo", pos(0, 0), buffer.Position{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := buffer.NewFromString(tc.text)
			got, ok := PrevWordStart(b, tc.from)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("position = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNextWordEnd(t *testing.T) {
	cases := []struct {
		name string
		text string
		from buffer.Position
		want buffer.Position
		ok   bool
	}{
		{"end of current word", "foo bar", pos(0, 0), pos(0, 2), true},
		{"end of next word", "foo bar", pos(0, 2), pos(0, 6), true},
		{"punctuation end", "foo.bar", pos(0, 2), pos(0, 3), true},
		{"crosses line", "foo\nbar", pos(0, 2), pos(1, 2), true},
		{"at buffer end", "foo", pos(0, 2), buffer.Position{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := buffer.NewFromString(tc.text)
			got, ok := NextWordEnd(b, tc.from)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("position = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRepeat(t *testing.T) {
	b := buffer.NewFromString("aa bb cc dd")

	got, ok := Repeat(b, pos(0, 0), 2, NextWordStart)
	if !ok {
		t.Fatal("repeat found nothing")
	}
	if got != pos(0, 6) {
		t.Errorf("position = %v, want %v", got, pos(0, 6))
	}
}

func TestRepeatKeepsLastSuccess(t *testing.T) {
	b := buffer.NewFromString("aa bb")

	// More steps than words: the last successful position wins.
	got, ok := Repeat(b, pos(0, 0), 5, NextWordStart)
	if !ok {
		t.Fatal("repeat found nothing")
	}
	if got != pos(0, 3) {
		t.Errorf("position = %v, want %v", got, pos(0, 3))
	}
}

func TestRepeatAllFail(t *testing.T) {
	b := buffer.NewFromString("word")

	if _, ok := Repeat(b, pos(0, 0), 3, NextWordStart); ok {
		t.Error("expected ok=false when every step fails")
	}
}
