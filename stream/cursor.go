// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package stream

// Cursor is an immutable position within a Source. It is a plain value —
// advancing a Cursor returns a new one rather than mutating in place — so
// "checkpoint" and "reset" in the combinator layer above are simply: save a
// Cursor value, and later substitute it back in place of whatever cursor
// the failed branch produced. There is nothing to free or roll back.
type Cursor struct {
	src Source
	pos int
}

// NewCursor starts a Cursor at the beginning of src.
func NewCursor(src Source) Cursor {
	return Cursor{src: src, pos: 0}
}

// Pos returns the current byte offset.
func (c Cursor) Pos() int { return c.pos }

// Source returns the underlying Source.
func (c Cursor) Source() Source { return c.src }

// AtEnd reports whether the cursor has consumed the whole source.
func (c Cursor) AtEnd() bool { return c.pos >= c.src.Len() }

// Peek returns the byte at the cursor without advancing it.
func (c Cursor) Peek() (byte, bool) { return c.src.At(c.pos) }

// PeekAt returns the byte offset bytes ahead of the cursor without
// advancing it.
func (c Cursor) PeekAt(offset int) (byte, bool) { return c.src.At(c.pos + offset) }

// Advance returns a new Cursor n bytes further into the source. It does not
// clamp to Len(); callers that overshoot will simply find AtEnd() true.
func (c Cursor) Advance(n int) Cursor {
	return Cursor{src: c.src, pos: c.pos + n}
}

// Slice returns the raw bytes between c and other's positions. other must
// be at or after c within the same Source.
func (c Cursor) Slice(other Cursor) []byte {
	return c.src.Slice(c.pos, other.pos)
}
