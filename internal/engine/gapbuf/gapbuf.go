package gapbuf

import "fmt"

// minGap is the gap created when a buffer grows. Keeping a little
// slack means short bursts of typing at one spot never reallocate.
const minGap = 64

// Elem restricts gap buffers to the two element kinds the engine
// needs: raw bytes and line-start offsets.
type Elem interface {
	~byte | ~int
}

// Buffer is a resizable sequence with one contiguous free region (the
// gap) that is relocated to the edit point before every insert or
// remove. Edits near the gap cost O(1) amortized; moving the edit
// point costs O(distance). Random reads by logical index are O(1).
//
// The gap bounds are private invariants: 0 <= gapStart <= gapEnd <=
// len(data), and the logical length is len(data) minus the gap width.
// A Buffer is owned by exactly one text store and is not safe for
// concurrent use.
type Buffer[T Elem] struct {
	data     []T
	gapStart int
	gapEnd   int
}

// New creates a buffer holding initial, with the gap at the end.
func New[T Elem](initial []T) *Buffer[T] {
	data := make([]T, len(initial)+minGap)
	copy(data, initial)
	return &Buffer[T]{
		data:     data,
		gapStart: len(initial),
		gapEnd:   len(data),
	}
}

// Len returns the logical element count.
func (b *Buffer[T]) Len() int {
	return len(b.data) - (b.gapEnd - b.gapStart)
}

// At returns the element at logical position pos.
func (b *Buffer[T]) At(pos int) T {
	if pos < 0 || pos >= b.Len() {
		panic(fmt.Sprintf("gapbuf: position %d out of range [0,%d)", pos, b.Len()))
	}
	return b.data[b.physical(pos)]
}

// Slice returns a copy of the logical range [start, end).
func (b *Buffer[T]) Slice(start, end int) []T {
	if start < 0 || start > end || end > b.Len() {
		panic(fmt.Sprintf("gapbuf: slice [%d,%d) out of range [0,%d]", start, end, b.Len()))
	}

	out := make([]T, 0, end-start)
	if end <= b.gapStart {
		return append(out, b.data[start:end]...)
	}
	if start >= b.gapStart {
		gap := b.gapEnd - b.gapStart
		return append(out, b.data[start+gap:end+gap]...)
	}
	out = append(out, b.data[start:b.gapStart]...)
	gap := b.gapEnd - b.gapStart
	return append(out, b.data[b.gapEnd:end+gap]...)
}

// SliceFrom returns a copy of the logical range [start, Len()).
func (b *Buffer[T]) SliceFrom(start int) []T {
	return b.Slice(start, b.Len())
}

// Insert places items before logical position index, relocating the
// gap there first. index may equal Len() to append.
func (b *Buffer[T]) Insert(index int, items []T) {
	if index < 0 || index > b.Len() {
		panic(fmt.Sprintf("gapbuf: insert at %d out of range [0,%d]", index, b.Len()))
	}
	if len(items) == 0 {
		return
	}

	if b.gapEnd-b.gapStart < len(items) {
		b.grow(len(items))
	}
	b.moveGap(index)

	copy(b.data[b.gapStart:], items)
	b.gapStart += len(items)
	b.check()
}

// Remove deletes n elements starting at logical position from. The
// freed span is absorbed into the gap.
func (b *Buffer[T]) Remove(from, n int) {
	if from < 0 || n < 0 || from+n > b.Len() {
		panic(fmt.Sprintf("gapbuf: remove [%d,%d) out of range [0,%d)", from, from+n, b.Len()))
	}
	if n == 0 {
		return
	}

	b.moveGap(from)
	b.gapEnd += n
	b.check()
}

// PushBack appends items after the last logical element.
func (b *Buffer[T]) PushBack(items []T) {
	b.Insert(b.Len(), items)
}

// AddToRange adds delta to every element in the logical range
// [start, end). The line-start table uses this to shift offsets after
// a byte-length-changing edit on an earlier line.
func (b *Buffer[T]) AddToRange(start, end int, delta T) {
	if start < 0 || start > end || end > b.Len() {
		panic(fmt.Sprintf("gapbuf: add range [%d,%d) out of range [0,%d]", start, end, b.Len()))
	}
	for i := start; i < end; i++ {
		b.data[b.physical(i)] += delta
	}
}

// SubFromRange subtracts delta from every element in [start, end).
func (b *Buffer[T]) SubFromRange(start, end int, delta T) {
	if start < 0 || start > end || end > b.Len() {
		panic(fmt.Sprintf("gapbuf: sub range [%d,%d) out of range [0,%d]", start, end, b.Len()))
	}
	for i := start; i < end; i++ {
		b.data[b.physical(i)] -= delta
	}
}

// physical maps a logical index to its slot in the backing slice.
func (b *Buffer[T]) physical(pos int) int {
	if pos < b.gapStart {
		return pos
	}
	return pos + (b.gapEnd - b.gapStart)
}

// moveGap relocates the gap so that gapStart == to, sliding the
// span between the old and new positions across the gap.
func (b *Buffer[T]) moveGap(to int) {
	if to == b.gapStart {
		return
	}

	gap := b.gapEnd - b.gapStart
	if to < b.gapStart {
		// Shift [to, gapStart) right, past the new gap.
		copy(b.data[to+gap:b.gapEnd], b.data[to:b.gapStart])
	} else {
		// Shift logical [gapStart, to), which sits at [gapEnd, to+gap),
		// left over the old gap.
		copy(b.data[b.gapStart:], b.data[b.gapEnd:to+gap])
	}
	b.gapStart = to
	b.gapEnd = to + gap
}

// grow reallocates so the gap can hold at least need more elements.
// The buffer never shrinks.
func (b *Buffer[T]) grow(need int) {
	tail := len(b.data) - b.gapEnd
	newLen := len(b.data) * 2
	if want := b.Len() + need + minGap; newLen < want {
		newLen = want
	}

	data := make([]T, newLen)
	copy(data, b.data[:b.gapStart])
	copy(data[newLen-tail:], b.data[b.gapEnd:])

	b.data = data
	b.gapEnd = newLen - tail
}

// check asserts the gap invariant after a mutation.
func (b *Buffer[T]) check() {
	if b.gapStart < 0 || b.gapStart > b.gapEnd || b.gapEnd > len(b.data) {
		panic(fmt.Sprintf("gapbuf: invariant violated: gapStart=%d gapEnd=%d len=%d",
			b.gapStart, b.gapEnd, len(b.data)))
	}
}
