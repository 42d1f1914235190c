package editor

import (
	"github.com/modedev/moded/internal/engine/buffer"
	"github.com/modedev/moded/internal/engine/word"
	"github.com/modedev/moded/internal/input/motion"
)

// dispatch executes the pending motion against the current buffer.
// Motions whose lookup finds no target do nothing; the caller clears
// the motion either way.
func (e *Editor) dispatch() error {
	b := e.buf()
	cur := b.cur.Position()
	m := &e.motion

	switch m.Object {
	case motion.ObjBackWord:
		pos, ok := word.PrevWordStart(b.text, cur)
		if !ok {
			return nil
		}
		if m.Action == motion.ActDelete {
			if err := b.text.RemoveRange(pos, cur); err != nil {
				return err
			}
		}
		b.cur.SetPosition(pos)

	case motion.ObjWord:
		return e.wordMotion(word.NextWordStart, word.CurrentWordStart, word.CurrentWordEnd, false)

	case motion.ObjWORD:
		return e.wordMotion(word.NextWORDStart, word.CurrentWORDStart, word.CurrentWORDEnd, true)

	case motion.ObjWordEnd:
		pos, ok := e.repeated(word.NextWordEnd, cur)
		if !ok {
			return nil
		}
		if m.Action == motion.ActDelete {
			return b.text.RemoveRange(cur, pos)
		}
		b.cur.SetPosition(pos)

	case motion.ObjAppend:
		e.mode = ModeInsert
		if b.text.LineLen(cur.Line) > 0 {
			b.cur.X++
		}

	case motion.ObjInsert:
		e.mode = ModeInsert

	case motion.ObjNormalMode:
		e.mode = ModeNormal

	case motion.ObjVisualMode:
		e.mode = ModeVisual
		e.visualAnchor = cur

	case motion.ObjVisualLineMode:
		e.mode = ModeVisualLine
		e.visualAnchor = cur

	case motion.ObjVisualSelection:
		return e.deleteVisualSelection()

	case motion.ObjCommandBarMode:
		e.mode = ModeCommandBar
		e.barInput = append(e.barInput[:0], ':')
		e.barCursorX = 1

	case motion.ObjSearchMode:
		e.mode = ModeSearch
		e.barInput = append(e.barInput[:0], '/')
		e.barCursorX = 1

	case motion.ObjUp:
		if cur.Line > 0 {
			b.cur.Y--
			e.snapToWantedX()
		}

	case motion.ObjDown:
		if cur.Line < b.text.TotalLines()-1 {
			b.cur.Y++
			e.snapToWantedX()
		}

	case motion.ObjLeft:
		if cur.Col > 0 {
			b.cur.SetX(b.cur.X - 1)
		}

	case motion.ObjRight:
		lineLen := b.text.LineLen(cur.Line)
		if cur.Col+1 < lineLen {
			b.cur.X++
			b.cur.WantedX++
		} else if e.mode == ModeVisual && b.cur.X == lineLen {
			// one past the end, so a selection can take the separator
			b.cur.X++
			b.cur.WantedX++
		}

	case motion.ObjLine:
		return e.lineMotion()

	case motion.ObjLineStart:
		if m.Action == motion.ActDelete {
			if err := b.text.RemoveFromLine(cur.Line, 0, cur.Col); err != nil {
				return err
			}
		}
		b.cur.SetX(1)

	case motion.ObjLineEnd:
		if m.Action == motion.ActDelete {
			lineLen := b.text.LineLen(cur.Line)
			if err := b.text.RemoveFromLine(cur.Line, cur.Col, lineLen-cur.Col); err != nil {
				return err
			}
			if cur.Col > 0 {
				b.cur.SetX(b.cur.X - 1)
			}
			return nil
		}
		if e.mode == ModeVisual {
			b.cur.SetX(max(b.text.LineLen(cur.Line)+1, 1))
		} else {
			b.cur.SetX(max(b.text.LineLen(cur.Line), 1))
		}

	case motion.ObjCharUnderCursor:
		n := m.CountOr(1)
		lineLen := b.text.LineLen(cur.Line)
		if lineLen == 0 {
			return nil
		}
		if err := b.text.RemoveFromLine(cur.Line, cur.Col, min(n, lineLen-cur.Col)); err != nil {
			return err
		}
		if b.cur.X-1 >= lineLen-1 && b.cur.X > 1 {
			b.cur.SetX(b.cur.X - 1)
		}

	case motion.ObjNextSearchResult:
		if pos, ok := nextPosition(cur, e.searchResults); ok {
			b.cur.SetPosition(pos)
		}

	case motion.ObjPrevSearchResult:
		if pos, ok := previousPosition(cur, e.searchResults); ok {
			b.cur.SetPosition(pos)
		}

	case motion.ObjInsertLineUp:
		if err := b.text.InsertEmptyLine(cur.Line); err != nil {
			return err
		}
		if indent, ok := indentWanted(cur.Line, b.text); ok {
			if err := b.text.InsertIntoLine(cur.Line, 0, spaces(indent)); err != nil {
				return err
			}
			b.cur.SetX(indent + 1)
		} else {
			b.cur.SetX(1)
		}
		e.mode = ModeInsert

	case motion.ObjInsertLineDown:
		if err := b.text.InsertEmptyLine(cur.Line + 1); err != nil {
			return err
		}
		if indent, ok := indentWanted(cur.Line+1, b.text); ok {
			if err := b.text.InsertIntoLine(cur.Line+1, 0, spaces(indent)); err != nil {
				return err
			}
			b.cur.SetX(indent + 1)
		} else {
			b.cur.SetX(1)
		}
		b.cur.Y++
		e.mode = ModeInsert

	case motion.ObjPageTop: // zt
		if m.Action == motion.ActScroll {
			e.scroll = cur.Line
		}

	case motion.ObjPageMiddle: // zz
		if m.Action == motion.ActScroll {
			e.scroll = max(cur.Line-e.viewRows/2, 0)
		}

	case motion.ObjPageBottom: // zb
		if m.Action == motion.ActScroll {
			e.scroll = max(cur.Line-e.viewRows+1, 0)
		}

	case motion.ObjHalfScreenUp:
		if m.Action == motion.ActScroll {
			b.cur.Y = max(b.cur.Y-e.viewRows/2, 1)
			b.cur.X = min(b.cur.WantedX, max(b.text.LineLen(b.cur.Y-1), 1))
		}

	case motion.ObjHalfScreenDown:
		if m.Action == motion.ActScroll {
			b.cur.Y = min(b.cur.Y+e.viewRows/2, b.text.TotalLines())
			b.cur.X = min(b.cur.WantedX, max(b.text.LineLen(b.cur.Y-1), 1))
		}
	}

	return nil
}

// wordMotion handles the Word and WORD objects: inside-token
// delete/select, or movement/delete to the next word start.
func (e *Editor) wordMotion(next word.Finder, currentStart func(*buffer.TextBuffer, buffer.Position) buffer.Position, currentEnd func(*buffer.TextBuffer, buffer.Position) (buffer.Position, bool), wholeWORD bool) error {
	b := e.buf()
	cur := b.cur.Position()
	m := &e.motion

	if m.Modifier == motion.ModInside {
		start := currentStart(b.text, cur)
		end, ok := currentEnd(b.text, cur)
		if !ok {
			return nil
		}

		switch {
		case m.Action == motion.ActDelete:
			if wholeWORD {
				if err := b.text.RemoveRange(start, end); err != nil {
					return err
				}
			} else {
				if err := b.text.RemoveFromLine(cur.Line, start.Col, end.Col-start.Col+1); err != nil {
					return err
				}
			}
			b.cur.SetX(max(min(start.Col+1, b.text.LineLen(cur.Line)), 1))
		case e.mode == ModeVisual:
			e.visualAnchor = start
			b.cur.SetPosition(end)
		}
		return nil
	}

	pos, ok := e.repeated(next, cur)
	if !ok {
		return nil
	}

	if m.Action == motion.ActDelete {
		// Word-delete is exclusive of the landing character.
		if pos.Col > 0 {
			pos.Col--
		} else {
			pos.Line--
			pos.Col = b.text.LineLen(pos.Line)
		}
		return b.text.RemoveRange(cur, pos)
	}
	b.cur.SetPosition(pos)
	return nil
}

// repeated runs a finder once, or count times under a pending count
// modifier.
func (e *Editor) repeated(find word.Finder, from buffer.Position) (buffer.Position, bool) {
	if n := e.motion.CountOr(0); n > 0 {
		return word.Repeat(e.buf().text, from, n, find)
	}
	return find(e.buf().text, from)
}

// lineMotion handles the Line object: dd, gg and G.
func (e *Editor) lineMotion() error {
	b := e.buf()
	cur := b.cur.Position()
	m := &e.motion

	switch m.Action {
	case motion.ActDelete: // dd
		if err := b.text.RemoveLine(cur.Line); err != nil {
			return err
		}
		if cur.Line == b.text.TotalLines() && cur.Line > 0 {
			b.cur.Y--
		}
		if lineLen := b.text.LineLen(b.cur.Y - 1); cur.Col >= lineLen {
			b.cur.X = max(lineLen, 1)
		}

	case motion.ActGoto: // gg
		line := min(m.CountOr(1), b.text.TotalLines())
		b.cur.Y = line
		b.cur.X = min(b.cur.X, b.text.LineLen(line-1)+1)

	case motion.ActGOTO: // G
		if n := m.CountOr(0); n > 0 {
			line := min(n, b.text.TotalLines())
			b.cur.Y = line
			b.cur.X = max(min(b.cur.X, b.text.LineLen(line-1)), 1)
		} else {
			last := b.text.TotalLines() - 1
			b.cur.Y = last + 1
			b.cur.X = max(min(b.cur.WantedX, b.text.LineLen(last)), 1)
		}
	}

	return nil
}

// deleteVisualSelection removes the anchored selection: the inclusive
// character range in Visual mode, every spanned line in VisualLine
// mode. Reverts to Normal mode.
func (e *Editor) deleteVisualSelection() error {
	if e.motion.Action != motion.ActDelete {
		return nil
	}

	b := e.buf()
	cur := b.cur.Position()

	switch e.mode {
	case ModeVisual:
		start := buffer.MinPosition(e.visualAnchor, cur)
		end := buffer.MaxPosition(e.visualAnchor, cur)
		if err := b.text.RemoveRange(start, end); err != nil {
			return err
		}
		b.cur.SetPosition(start)
		e.mode = ModeNormal

	case ModeVisualLine:
		start := buffer.MinPosition(e.visualAnchor, cur)
		end := buffer.MaxPosition(e.visualAnchor, cur)
		for l := start.Line; l <= end.Line; l++ {
			if err := b.text.RemoveLine(start.Line); err != nil {
				return err
			}
		}
		start.Line = min(start.Line, b.text.TotalLines()-1)
		start.Col = min(start.Col, b.text.LineLen(start.Line))
		b.cur.SetPosition(start)
		e.mode = ModeNormal
	}

	return nil
}

// snapToWantedX places the column on the wanted column after a
// vertical move, clamped to the new line's length.
func (e *Editor) snapToWantedX() {
	b := e.buf()
	maxX := max(b.text.LineLen(b.cur.Y-1), 1)
	if b.cur.WantedX > maxX {
		b.cur.X = maxX
	} else {
		b.cur.X = b.cur.WantedX
	}
}
