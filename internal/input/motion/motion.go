// Package motion implements the modal command grammar: a pending
// motion accumulates an optional action, object and modifier across a
// short run of keystrokes and becomes dispatchable once an object is
// set.
package motion

// Action is the operator of a pending motion.
type Action uint8

const (
	ActNone   Action = iota
	ActDelete        // d
	ActGoto          // g
	ActGOTO          // G
	ActScroll        // z prefix, Ctrl half-screen jumps
)

func (a Action) String() string {
	switch a {
	case ActNone:
		return "none"
	case ActDelete:
		return "delete"
	case ActGoto:
		return "goto"
	case ActGOTO:
		return "GOTO"
	case ActScroll:
		return "scroll"
	}
	return "unknown"
}

// Object is the target of a pending motion. Mode switches are
// expressed as pseudo-objects so a bare keystroke dispatches like any
// other motion.
type Object uint8

const (
	ObjNone Object = iota
	ObjWord
	ObjWORD
	ObjBackWord
	ObjWordEnd
	ObjLine
	ObjLineStart
	ObjLineEnd
	ObjLeft
	ObjRight
	ObjUp
	ObjDown
	ObjAppend
	ObjInsert
	ObjNormalMode
	ObjVisualMode
	ObjVisualLineMode
	ObjCommandBarMode
	ObjSearchMode
	ObjCharUnderCursor
	ObjVisualSelection
	ObjNextSearchResult
	ObjPrevSearchResult
	ObjInsertLineUp
	ObjInsertLineDown
	ObjPageTop
	ObjPageMiddle
	ObjPageBottom
	ObjHalfScreenUp
	ObjHalfScreenDown
)

func (o Object) String() string {
	switch o {
	case ObjNone:
		return "none"
	case ObjWord:
		return "word"
	case ObjWORD:
		return "WORD"
	case ObjBackWord:
		return "back-word"
	case ObjWordEnd:
		return "word-end"
	case ObjLine:
		return "line"
	case ObjLineStart:
		return "line-start"
	case ObjLineEnd:
		return "line-end"
	case ObjLeft:
		return "left"
	case ObjRight:
		return "right"
	case ObjUp:
		return "up"
	case ObjDown:
		return "down"
	case ObjAppend:
		return "append"
	case ObjInsert:
		return "insert"
	case ObjNormalMode:
		return "normal-mode"
	case ObjVisualMode:
		return "visual-mode"
	case ObjVisualLineMode:
		return "visual-line-mode"
	case ObjCommandBarMode:
		return "command-bar-mode"
	case ObjSearchMode:
		return "search-mode"
	case ObjCharUnderCursor:
		return "char-under-cursor"
	case ObjVisualSelection:
		return "visual-selection"
	case ObjNextSearchResult:
		return "next-search-result"
	case ObjPrevSearchResult:
		return "prev-search-result"
	case ObjInsertLineUp:
		return "insert-line-up"
	case ObjInsertLineDown:
		return "insert-line-down"
	case ObjPageTop:
		return "page-top"
	case ObjPageMiddle:
		return "page-middle"
	case ObjPageBottom:
		return "page-bottom"
	case ObjHalfScreenUp:
		return "half-screen-up"
	case ObjHalfScreenDown:
		return "half-screen-down"
	}
	return "unknown"
}

// Modifier qualifies how the object is taken.
type Modifier uint8

const (
	ModNone   Modifier = iota
	ModCount           // numeric repeat, value in Motion.Count
	ModInside          // i after an operator or in visual mode
	ModAround          // a after an operator or in visual mode
)

func (m Modifier) String() string {
	switch m {
	case ModNone:
		return "none"
	case ModCount:
		return "count"
	case ModInside:
		return "inside"
	case ModAround:
		return "around"
	}
	return "unknown"
}

// Motion is the pending command being accumulated. It is dispatchable
// once Object is set; dispatch consumes and clears the whole motion.
type Motion struct {
	Action   Action
	Object   Object
	Modifier Modifier
	Count    int
}

// Ready reports whether the motion has an object and can dispatch.
func (m *Motion) Ready() bool {
	return m.Object != ObjNone
}

// Clear resets the motion to empty.
func (m *Motion) Clear() {
	*m = Motion{}
}

func (m *Motion) empty() bool {
	return m.Action == ActNone && m.Object == ObjNone && m.Modifier == ModNone
}

// CountOr returns the count modifier's value, or def when no count is
// pending.
func (m *Motion) CountOr(def int) int {
	if m.Modifier == ModCount {
		return m.Count
	}
	return def
}

// Feed consumes one keystroke. visual marks character-wise or
// line-wise visual mode, which changes how a, i, v, d and x read.
// Unrecognized keys and keys invalid in the current accumulation are
// ignored.
func (m *Motion) Feed(r rune, visual bool) {
	switch r {
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		d := int(r - '0')
		if m.Modifier == ModCount {
			m.Count = m.Count*10 + d
			return
		}
		m.Modifier = ModCount
		m.Count = d

	case '0':
		if m.Modifier == ModCount {
			m.Count *= 10
			return
		}
		m.Object = ObjLineStart

	case 'a':
		switch {
		case visual:
			m.Modifier = ModAround
		case m.Action == ActDelete && m.Modifier == ModNone:
			m.Modifier = ModAround
		case m.empty():
			m.Object = ObjAppend
		}

	case 'i':
		switch {
		case visual:
			m.Modifier = ModInside
		case m.Action == ActDelete && m.Modifier == ModNone:
			m.Modifier = ModInside
		case m.empty():
			m.Object = ObjInsert
		}

	case 'd':
		if visual {
			m.Action = ActDelete
			m.Object = ObjVisualSelection
			return
		}
		if m.Action == ActDelete {
			m.Object = ObjLine
			return
		}
		m.Action = ActDelete

	case 'g':
		if m.Action == ActGoto {
			m.Object = ObjLine
			return
		}
		m.Action = ActGoto

	case 'G':
		m.Action = ActGOTO
		m.Object = ObjLine

	case 'z':
		if m.Action == ActScroll {
			m.Object = ObjPageMiddle
			return
		}
		m.Action = ActScroll

	case 't':
		if m.Action == ActScroll {
			m.Object = ObjPageTop
		}

	case 'x':
		if visual {
			m.Action = ActDelete
			m.Object = ObjVisualSelection
			return
		}
		m.Object = ObjCharUnderCursor

	case 'v':
		if visual {
			m.Object = ObjNormalMode
			return
		}
		m.Object = ObjVisualMode

	case 'V':
		m.Object = ObjVisualLineMode

	case 'w':
		m.Object = ObjWord
	case 'W':
		m.Object = ObjWORD
	case 'b':
		if m.Action == ActScroll {
			m.Object = ObjPageBottom
			return
		}
		m.Object = ObjBackWord
	case 'e':
		m.Object = ObjWordEnd
	case 'h':
		m.Object = ObjLeft
	case 'j':
		m.Object = ObjDown
	case 'k':
		m.Object = ObjUp
	case 'l':
		m.Object = ObjRight
	case '$':
		m.Object = ObjLineEnd
	case 'o':
		m.Object = ObjInsertLineDown
	case 'O':
		m.Object = ObjInsertLineUp
	case ':':
		m.Object = ObjCommandBarMode
	case '/':
		m.Object = ObjSearchMode
	case 'n':
		m.Object = ObjNextSearchResult
	case 'N':
		m.Object = ObjPrevSearchResult
	}
}

// FeedCtrl consumes one keystroke typed with the Control modifier
// held. Only the half-screen jumps are bound; anything else is
// ignored.
func (m *Motion) FeedCtrl(r rune) {
	switch r {
	case 'u':
		m.Action = ActScroll
		m.Object = ObjHalfScreenUp
	case 'd':
		m.Action = ActScroll
		m.Object = ObjHalfScreenDown
	}
}
