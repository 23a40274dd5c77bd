// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package stream

// isFoldWsp reports whether b is one of the two bytes RFC 5545 §3.1
// recognizes as a fold continuation marker: SPACE or TAB.
func isFoldWsp(b byte) bool {
	return b == ' ' || b == '\t'
}

// foldPrefixLen returns the length of a single line-fold prefix beginning at
// c, or 0 if c does not start one. The canonical RFC 5545 form is CRLF
// followed by one SPACE/TAB (3 bytes); a bare LF followed by SPACE/TAB (2
// bytes) is also accepted, matching the leniency real-world producers need
// (many tools emit bare LF line endings).
func foldPrefixLen(c Cursor) int {
	b0, ok := c.Peek()
	if !ok {
		return 0
	}
	if b0 == '\r' {
		b1, ok := c.PeekAt(1)
		if ok && b1 == '\n' {
			if b2, ok := c.PeekAt(2); ok && isFoldWsp(b2) {
				return 3
			}
		}
		return 0
	}
	if b0 == '\n' {
		if b1, ok := c.PeekAt(1); ok && isFoldWsp(b1) {
			return 2
		}
	}
	return 0
}

// StripLineFoldPrefix consumes as many fold prefixes as begin at c and
// returns the advanced Cursor plus the number of bytes removed. The count is
// a multiple of 3 when only canonical CRLF+WSP folds are present, per
// spec.md §4.S.
func StripLineFoldPrefix(c Cursor) (Cursor, int) {
	removed := 0
	for {
		n := foldPrefixLen(c)
		if n == 0 {
			return c, removed
		}
		c = c.Advance(n)
		removed += n
	}
}

// lineTerminatorLen returns the length of a real (non-folded) line
// terminator beginning at c: 2 for CRLF, 1 for a bare LF, 0 otherwise. A
// terminator only counts if it is NOT followed by a fold continuation byte;
// that case is a fold prefix, handled by foldPrefixLen instead.
func lineTerminatorLen(c Cursor) int {
	if n := foldPrefixLen(c); n > 0 {
		return 0
	}
	b0, ok := c.Peek()
	if !ok {
		return 0
	}
	if b0 == '\r' {
		if b1, ok := c.PeekAt(1); ok && b1 == '\n' {
			return 2
		}
		return 0
	}
	if b0 == '\n' {
		return 1
	}
	return 0
}

// NextContiguousSlice returns the next maximal logical line starting at c:
// the concatenation of every byte run up to (but not including) the next
// real line terminator, with any fold prefixes encountered along the way
// silently removed. The returned Cursor points just past the consumed
// terminator (or at end-of-source, if none was found).
//
// When no fold prefix is present within the line, the returned slice is
// whatever Source.Slice returns for that span (a direct view for a
// ByteSource, a fresh copy for a TextSource); a separate buffer is only
// allocated once an embedded fold forces bytes to be skipped.
func NextContiguousSlice(c Cursor) ([]byte, Cursor, error) {
	if c.AtEnd() {
		return nil, c, ErrUnexpectedEOF
	}

	start := c
	cur := c
	var buf []byte // non-nil once we've had to splice around a fold

	flushDirect := func(upto Cursor) {
		if buf == nil {
			return
		}
		buf = append(buf, start.Slice(upto)...)
	}

	for {
		if n := foldPrefixLen(cur); n > 0 {
			if buf == nil {
				buf = append(buf, start.Slice(cur)...)
			}
			cur = cur.Advance(n)
			start = cur
			continue
		}
		if n := lineTerminatorLen(cur); n > 0 {
			flushDirect(cur)
			end := cur
			next := cur.Advance(n)
			if buf != nil {
				return buf, next, nil
			}
			return start.Slice(end), next, nil
		}
		if cur.AtEnd() {
			flushDirect(cur)
			if buf != nil {
				return buf, cur, nil
			}
			return start.Slice(cur), cur, nil
		}
		cur = cur.Advance(1)
	}
}
