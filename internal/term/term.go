// Package term drives the terminal: it owns the tcell screen, turns
// key events into editor input ticks, and paints the buffer, status
// line and command bar each frame.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/modedev/moded/internal/editor"
)

// Screen wraps a tcell screen. The first visible line is queried from
// the editor each frame; top caches it between Render and cursor
// placement.
type Screen struct {
	screen tcell.Screen
	top    int
}

// New creates and initializes the terminal screen.
func New() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Screen{screen: screen}, nil
}

// Close restores the terminal to its previous state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// PollInput blocks for the next terminal event and translates it into
// an editor input tick. The ok result is false for events that carry
// no input, such as a resize.
func (s *Screen) PollInput() (editor.Input, bool) {
	switch ev := s.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return translateKey(ev), true
	case *tcell.EventResize:
		s.screen.Sync()
		return editor.Input{}, false
	default:
		return editor.Input{}, false
	}
}

func translateKey(ev *tcell.EventKey) editor.Input {
	var in editor.Input

	switch key := ev.Key(); key {
	case tcell.KeyRune:
		in.Chars = string(ev.Rune())
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			in.Ctrl = true
			in.Specials = append(in.Specials, editor.KeyControl)
		}
	case tcell.KeyEnter:
		in.Specials = append(in.Specials, editor.KeyEnter)
	case tcell.KeyTab:
		in.Specials = append(in.Specials, editor.KeyTab)
	case tcell.KeyEscape:
		in.Specials = append(in.Specials, editor.KeyEscape)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		in.Specials = append(in.Specials, editor.KeyBackspace)
	default:
		// Control-letter combinations arrive as dedicated keys, not
		// as runes with a modifier.
		if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
			in.Ctrl = true
			in.Chars = string(rune('a' + key - tcell.KeyCtrlA))
			in.Specials = append(in.Specials, editor.KeyControl)
		}
	}
	return in
}
