// Package buffer implements the line-indexed text store at the heart
// of the editor.
//
// A TextBuffer composes two gap arrays: the raw content bytes with
// line separators inline, and a parallel table of byte offsets
// marking each line's start. Edits go through line-oriented
// operations (insert into a line, split, join, remove a range) that
// keep both arrays consistent: any edit changing byte length shifts
// every later line start by the same delta, and any edit adding or
// removing a separator inserts or deletes exactly one table entry.
//
// Columns in the public API are counted in decoded runes, matching
// what the user sees on screen. All byte-offset bookkeeping stays
// internal. The line separator style (LF or CRLF) is detected when
// content is loaded and preserved verbatim on serialization.
package buffer
