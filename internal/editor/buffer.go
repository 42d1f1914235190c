package editor

import (
	"errors"
	"fmt"
	"os"

	"github.com/modedev/moded/internal/engine/buffer"
	"github.com/modedev/moded/internal/engine/cursor"
)

// ErrNoFilePath is returned when saving a buffer that was never
// associated with a file.
var ErrNoFilePath = errors.New("buffer has no file path")

// openBuffer is one open file: its text store, its caret, and where
// it came from.
type openBuffer struct {
	id   int
	path string
	text *buffer.TextBuffer
	cur  cursor.Cursor
}

// loadBuffer reads a file into a new buffer. A file that does not
// exist yet yields an empty buffer bound to the path.
func loadBuffer(id int, path string) (*openBuffer, error) {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return &openBuffer{
		id:   id,
		path: path,
		text: buffer.New(data),
		cur:  cursor.New(),
	}, nil
}

// save serializes the exact current content, separator style
// included, to the buffer's path.
func (b *openBuffer) save() error {
	if b.path == "" {
		return ErrNoFilePath
	}
	if err := os.WriteFile(b.path, b.text.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", b.path, err)
	}
	return nil
}
