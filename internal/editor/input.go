package editor

// SpecialKey is a named non-printing key.
type SpecialKey uint8

const (
	KeyBackspace SpecialKey = iota
	KeyEnter
	KeyEscape
	KeyControl
	KeyTab
)

func (k SpecialKey) String() string {
	switch k {
	case KeyBackspace:
		return "backspace"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyControl:
		return "control"
	case KeyTab:
		return "tab"
	}
	return "unknown"
}

// Input is one tick's worth of decoded input: the printable
// characters typed, the special keys pressed, and modifier flags.
type Input struct {
	Chars    string
	Specials []SpecialKey
	Ctrl     bool
}

// Pressed reports whether a special key was pressed this tick.
func (in Input) Pressed(k SpecialKey) bool {
	for _, s := range in.Specials {
		if s == k {
			return true
		}
	}
	return false
}
