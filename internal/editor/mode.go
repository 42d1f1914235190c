package editor

// Mode is the editing mode the session is in. It decides how raw
// input is interpreted.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	ModeVisualLine
	ModeCommandBar
	ModeSearch
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeVisualLine:
		return "V-LINE"
	case ModeCommandBar:
		return "COMMAND"
	case ModeSearch:
		return "SEARCH"
	}
	return "UNKNOWN"
}

// visual reports whether the mode is one of the two visual modes.
func (m Mode) visual() bool {
	return m == ModeVisual || m == ModeVisualLine
}
