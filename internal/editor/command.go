package editor

import (
	"sort"
	"strings"
)

// commandFunc executes one command bar command against the session.
type commandFunc func(e *Editor, args string) error

// The command table is sorted by name and looked up by binary search
// with a unique-prefix fallback, so ":w" and ":write" hit the same
// handler.
var (
	commandNames = []string{"e", "edit", "q", "quit", "w", "write"}
	commandFuncs = []commandFunc{cmdEdit, cmdEdit, cmdQuit, cmdQuit, cmdWrite, cmdWrite}
)

func matchCommand(name string) (commandFunc, bool) {
	n := sort.SearchStrings(commandNames, name)
	if n < len(commandNames) {
		if commandNames[n] == name || strings.HasPrefix(commandNames[n], name) {
			return commandFuncs[n], true
		}
	}
	return nil, false
}

// cmdEdit switches to an already open buffer with the given path, or
// opens the path in a new buffer. Without an argument it does
// nothing.
func cmdEdit(e *Editor, args string) error {
	if args == "" {
		return nil
	}
	return e.OpenFile(args)
}

// cmdWrite saves the current buffer to its file path.
func cmdWrite(e *Editor, args string) error {
	return e.Save()
}

// cmdQuit flags the session for shutdown.
func cmdQuit(e *Editor, args string) error {
	e.quit = true
	return nil
}
