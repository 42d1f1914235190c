// Package editor implements the modal session controller: mode state
// machine, pending-motion dispatch, the command bar and search
// sub-editors, and buffer management.
package editor

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/modedev/moded/internal/config"
	"github.com/modedev/moded/internal/engine/buffer"
	"github.com/modedev/moded/internal/engine/cursor"
	"github.com/modedev/moded/internal/input/motion"
)

// Editor owns the open buffers and all modal state. It is
// single-threaded: one input tick is processed to completion before
// the next is accepted.
type Editor struct {
	cfg *config.Config

	buffers []*openBuffer
	current int
	lastID  int

	mode          Mode
	motion        motion.Motion
	visualAnchor  buffer.Position
	barInput      []rune
	barCursorX    int
	searchResults []buffer.Position
	quit          bool

	// Viewport state, shared with the frontend: the text-area height
	// and the first visible line. The scroll motions (zt/zz/zb) and
	// half-screen jumps read and write these.
	viewRows int
	scroll   int
}

// New creates an editor with a single empty scratch buffer.
func New(cfg *config.Config) *Editor {
	e := &Editor{cfg: cfg, mode: ModeNormal}
	e.buffers = append(e.buffers, &openBuffer{
		id:   e.nextID(),
		text: buffer.New(nil),
		cur:  cursor.New(),
	})
	return e
}

// OpenFile opens path in a new buffer and makes it current. If the
// path is already open, that buffer becomes current instead.
func (e *Editor) OpenFile(path string) error {
	for i, b := range e.buffers {
		if b.path != "" && b.path == path {
			e.current = i
			return nil
		}
	}

	b, err := loadBuffer(e.nextID(), path)
	if err != nil {
		return err
	}
	e.buffers = append(e.buffers, b)
	e.current = len(e.buffers) - 1
	return nil
}

func (e *Editor) nextID() int {
	e.lastID++
	return e.lastID
}

func (e *Editor) buf() *openBuffer {
	return e.buffers[e.current]
}

// Mode returns the current editing mode.
func (e *Editor) Mode() Mode { return e.mode }

// Cursor returns the current buffer's caret.
func (e *Editor) Cursor() cursor.Cursor { return e.buf().cur }

// Path returns the current buffer's file path, empty for a scratch
// buffer.
func (e *Editor) Path() string { return e.buf().path }

// TotalLines returns the current buffer's line count.
func (e *Editor) TotalLines() int { return e.buf().text.TotalLines() }

// Line returns a line of the current buffer without its separator.
func (e *Editor) Line(i int) string { return e.buf().text.Line(i) }

// LineLen returns the rune count of a line of the current buffer.
func (e *Editor) LineLen(i int) int { return e.buf().text.LineLen(i) }

// Bytes returns a copy of the current buffer's full content.
func (e *Editor) Bytes() []byte { return e.buf().text.Bytes() }

// BarInput returns the command bar / search input line, prefix
// character included.
func (e *Editor) BarInput() string { return string(e.barInput) }

// BarCursorX returns the 1-indexed bar cursor column.
func (e *Editor) BarCursorX() int { return e.barCursorX }

// Selection returns the active visual selection.
func (e *Editor) Selection() (cursor.Selection, bool) {
	if !e.mode.visual() {
		return cursor.Selection{}, false
	}
	return cursor.Selection{Anchor: e.visualAnchor, Head: e.buf().cur.Position()}, true
}

// Viewport records the text-area height for the scroll motions and
// returns the first visible line, adjusted so the cursor stays on
// screen. The frontend calls this once per frame.
func (e *Editor) Viewport(rows int) int {
	e.viewRows = rows
	cur := e.buf().cur
	if cur.Y-1 < e.scroll {
		e.scroll = cur.Y - 1
	} else if rows > 0 && cur.Y-e.scroll > rows {
		e.scroll = cur.Y - rows
	}
	return e.scroll
}

// ShouldQuit reports whether a quit command has been dispatched.
func (e *Editor) ShouldQuit() bool { return e.quit }

// Save writes the current buffer to its file path.
func (e *Editor) Save() error { return e.buf().save() }

// HandleInput processes one tick of input according to the current
// mode. Motion lookups that find no target are silent no-ops; file
// I/O failures are returned.
func (e *Editor) HandleInput(in Input) error {
	switch e.mode {
	case ModeInsert:
		return e.handleInsert(in)
	case ModeCommandBar:
		return e.handleCommandBar(in)
	case ModeSearch:
		return e.handleSearch(in)
	default:
		return e.handleMotion(in)
	}
}

func (e *Editor) handleInsert(in Input) error {
	b := e.buf()
	line := b.cur.Y - 1

	if in.Chars != "" && !in.Ctrl {
		if err := b.text.InsertIntoLine(line, b.cur.X-1, []byte(in.Chars)); err != nil {
			return err
		}
		b.cur.X += utf8.RuneCountInString(in.Chars)
	}

	if in.Pressed(KeyEnter) {
		if b.text.LineLen(line)-(b.cur.X-1) > 0 {
			if err := b.text.SplitLineAt(line, b.cur.X-1); err != nil {
				return err
			}
		} else {
			if err := b.text.InsertEmptyLine(b.cur.Y); err != nil {
				return err
			}
		}
		b.cur.Y++
		b.cur.X = 1

		if indent, ok := indentWanted(line+1, b.text); ok && indent > 0 {
			if err := b.text.InsertIntoLine(line+1, 0, spaces(indent)); err != nil {
				return err
			}
			b.cur.SetX(indent + 1)
		}
	}

	if in.Pressed(KeyTab) {
		n := e.cfg.IndentWidth
		if err := b.text.InsertIntoLine(line, b.cur.X-1, spaces(n)); err != nil {
			return err
		}
		b.cur.SetX(b.cur.X + n)
	}

	if in.Pressed(KeyEscape) {
		e.mode = ModeNormal
		b.cur.SetX(max(b.cur.X-1, 1))
	}

	if in.Pressed(KeyBackspace) {
		switch {
		case b.text.LineLen(line) > 0 && b.cur.X > 1:
			if err := b.text.RemoveFromLine(line, b.cur.X-2, 1); err != nil {
				return err
			}
			b.cur.SetX(b.cur.X - 1)
		case b.cur.X == 1 && b.cur.Y > 1:
			prevLen := b.text.LineLen(line - 1)
			if err := b.text.RemoveLineSep(line - 1); err != nil {
				return err
			}
			b.cur.SetX(prevLen + 1)
			b.cur.Y--
		}
	}

	return nil
}

func (e *Editor) handleCommandBar(in Input) error {
	if in.Chars != "" && !in.Ctrl {
		e.barInput = append(e.barInput, []rune(in.Chars)...)
		e.barCursorX += utf8.RuneCountInString(in.Chars)
	}

	if in.Pressed(KeyEnter) {
		line := string(e.barInput[1:]) // strip the ':' prefix
		name, args, _ := strings.Cut(line, " ")

		e.barInput = e.barInput[:0]
		e.barCursorX = 1
		e.mode = ModeNormal

		// Unknown commands mutate nothing.
		if fn, ok := matchCommand(name); ok {
			return fn(e, args)
		}
		return nil
	}

	if in.Pressed(KeyBackspace) && len(e.barInput) > 0 {
		e.barInput = e.barInput[:len(e.barInput)-1]
		e.barCursorX--
	}
	if in.Pressed(KeyEscape) {
		e.barInput = e.barInput[:0]
		e.mode = ModeNormal
	}
	if len(e.barInput) == 0 {
		e.mode = ModeNormal
	}
	return nil
}

func (e *Editor) handleSearch(in Input) error {
	b := e.buf()

	if in.Chars != "" && !in.Ctrl {
		e.barInput = append(e.barInput, []rune(in.Chars)...)
		e.barCursorX += utf8.RuneCountInString(in.Chars)
		e.searchResults = b.text.Find([]byte(string(e.barInput[1:])))
	}

	if in.Pressed(KeyBackspace) && len(e.barInput) > 0 {
		e.barInput = e.barInput[:len(e.barInput)-1]
		e.barCursorX--
		// The needle shrank, so the match set must be recomputed too.
		if len(e.barInput) > 0 {
			e.searchResults = b.text.Find([]byte(string(e.barInput[1:])))
		} else {
			e.searchResults = nil
		}
	}
	if in.Pressed(KeyEnter) {
		if pos, ok := closestPosition(b.cur.Position(), e.searchResults); ok {
			b.cur.SetPosition(pos)
		}
		e.barInput = e.barInput[:0]
		e.mode = ModeNormal
	}
	if in.Pressed(KeyEscape) {
		e.barInput = e.barInput[:0]
		e.mode = ModeNormal
	}
	if len(e.barInput) == 0 {
		e.mode = ModeNormal
	}
	return nil
}

func (e *Editor) handleMotion(in Input) error {
	for _, r := range in.Chars {
		if in.Ctrl {
			e.motion.FeedCtrl(r)
		} else {
			e.motion.Feed(r, e.mode.visual())
		}
		if e.motion.Ready() {
			err := e.dispatch()
			e.motion.Clear()
			if err != nil {
				return err
			}
		}
	}

	if in.Pressed(KeyEscape) {
		e.motion.Clear()
		e.mode = ModeNormal
	}
	return nil
}

func spaces(n int) []byte {
	return bytes.Repeat([]byte(" "), n)
}
