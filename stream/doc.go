// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package stream models RFC 5545 §3.1's line-folding and escape conventions
// as a logical view over a raw byte/character source. A CRLF immediately
// followed by a single SPACE or TAB is not a line break but a fold
// continuation; this package lets the parser layers above it work with
// "the next contiguous slice of content" without re-deriving the
// unfolding loop at every call site.
//
// Two Source implementations are provided: TextSource over an
// already-UTF8-validated string, and ByteSource over raw bytes with UTF-8
// validity deferred to leaf extraction. The TEXT value escape alphabet is
// handled by plain functions (UnescapeText / EscapeText) over an already
// unfolded value, not by a third Source. The fold-stripping
// logic (StripLineFoldPrefix / NextContiguousSlice) is grounded on
// arran4-golang-ical's CalendarStream.ReadLine, which already implements the
// same peek-one-byte-after-CRLF loop; this package generalizes it into two
// pull-based primitives instead of one whole-line reader, since the
// combinator layer above needs to request partial slices mid-line.
package stream
