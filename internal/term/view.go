package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/modedev/moded/internal/editor"
	"github.com/modedev/moded/internal/engine/buffer"
)

var (
	styleDefault  = tcell.StyleDefault
	styleSelected = tcell.StyleDefault.Reverse(true)
	styleStatus   = tcell.StyleDefault.Reverse(true).Bold(true)
)

// Render paints one frame: the visible buffer lines, the status line,
// and the command bar when it is active.
func (s *Screen) Render(e *editor.Editor) {
	s.screen.Clear()

	width, height := s.screen.Size()
	if width == 0 || height < 3 {
		s.screen.Show()
		return
	}
	rows := height - 2

	// The editor owns the scroll position: the z motions move it, and
	// it clamps to keep the cursor visible.
	s.top = e.Viewport(rows)

	sel, hasSel := e.Selection()
	for row := 0; row < rows; row++ {
		line := s.top + row
		if line >= e.TotalLines() {
			break
		}
		s.drawLine(row, line, e.Line(line), width, func(col int) bool {
			if !hasSel {
				return false
			}
			if e.Mode() == editor.ModeVisualLine {
				return sel.ContainsLine(line)
			}
			return sel.Contains(buffer.Position{Line: line, Col: col})
		})
	}

	s.drawStatus(height-2, width, e)
	s.drawBar(height-1, e)
	s.placeCursor(height, e)
	s.screen.Show()
}

func (s *Screen) drawLine(row, line int, text string, width int, selected func(col int) bool) {
	x := 0
	for col, r := range []rune(text) {
		w := runewidth.RuneWidth(r)
		if x+w > width {
			break
		}
		style := styleDefault
		if selected(col) {
			style = styleSelected
		}
		s.screen.SetContent(x, row, r, nil, style)
		x += w
	}
}

func (s *Screen) drawStatus(row, width int, e *editor.Editor) {
	path := e.Path()
	if path == "" {
		path = "[No Name]"
	}
	left := fmt.Sprintf(" %s  %s", e.Mode(), path)
	right := fmt.Sprintf("%d,%d ", e.Cursor().Y, e.Cursor().X)

	x := 0
	for _, r := range left {
		if x >= width {
			break
		}
		s.screen.SetContent(x, row, r, nil, styleStatus)
		x += runewidth.RuneWidth(r)
	}
	pad := width - x - runewidth.StringWidth(right)
	for i := 0; i < pad; i++ {
		s.screen.SetContent(x, row, ' ', nil, styleStatus)
		x++
	}
	for _, r := range right {
		if x >= width {
			break
		}
		s.screen.SetContent(x, row, r, nil, styleStatus)
		x += runewidth.RuneWidth(r)
	}
}

func (s *Screen) drawBar(row int, e *editor.Editor) {
	if e.Mode() != editor.ModeCommandBar && e.Mode() != editor.ModeSearch {
		return
	}
	x := 0
	for _, r := range e.BarInput() {
		s.screen.SetContent(x, row, r, nil, styleDefault)
		x += runewidth.RuneWidth(r)
	}
}

func (s *Screen) placeCursor(height int, e *editor.Editor) {
	if e.Mode() == editor.ModeCommandBar || e.Mode() == editor.ModeSearch {
		bar := []rune(e.BarInput())
		col := min(e.BarCursorX(), len(bar))
		s.screen.ShowCursor(cellWidth(bar[:col]), height-1)
		return
	}

	cur := e.Cursor()
	line := []rune(e.Line(cur.Y - 1))
	col := max(min(cur.X-1, len(line)), 0)
	s.screen.ShowCursor(cellWidth(line[:col]), cur.Y-1-s.top)
}

// cellWidth is the screen width of a rune slice, wide runes counted
// as two cells.
func cellWidth(rs []rune) int {
	w := 0
	for _, r := range rs {
		w += runewidth.RuneWidth(r)
	}
	return w
}
