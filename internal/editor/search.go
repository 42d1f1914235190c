package editor

import (
	"sort"

	"github.com/modedev/moded/internal/engine/buffer"
)

// closestPosition returns the first match at or after cur, wrapping
// to the first match when cur is past the last one.
func closestPosition(cur buffer.Position, positions []buffer.Position) (buffer.Position, bool) {
	if len(positions) == 0 {
		return buffer.Position{}, false
	}

	i := sort.Search(len(positions), func(i int) bool {
		return !positions[i].Before(cur)
	})
	if i == len(positions) {
		i = 0
	}
	return positions[i], true
}

// nextPosition returns the first match strictly after cur, wrapping
// to the first match.
func nextPosition(cur buffer.Position, positions []buffer.Position) (buffer.Position, bool) {
	if len(positions) == 0 {
		return buffer.Position{}, false
	}

	i := sort.Search(len(positions), func(i int) bool {
		return positions[i].After(cur)
	})
	if i == len(positions) {
		i = 0
	}
	return positions[i], true
}

// previousPosition returns the last match strictly before cur,
// wrapping to the last match.
func previousPosition(cur buffer.Position, positions []buffer.Position) (buffer.Position, bool) {
	if len(positions) == 0 {
		return buffer.Position{}, false
	}

	i := sort.Search(len(positions), func(i int) bool {
		return !positions[i].Before(cur)
	})
	if i == 0 {
		i = len(positions)
	}
	return positions[i-1], true
}
