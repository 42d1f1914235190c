// Package gapbuf implements a generic relocatable-gap array.
//
// A gap buffer keeps one contiguous unused region inside its backing
// allocation and moves that region to wherever the next edit happens.
// Consecutive edits at or near the same position are amortized O(1),
// which is the access pattern of interactive text editing. Random
// reads stay O(1) because a logical index maps to a backing slot with
// a single comparison.
//
// The text store composes two of these: a byte buffer holding raw
// file content and an offset buffer holding the byte position of each
// line start. The offset buffer additionally supports shifting a
// whole index range by a delta (AddToRange/SubFromRange), which keeps
// line starts consistent after edits that change byte length.
package gapbuf
