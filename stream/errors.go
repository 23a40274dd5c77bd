// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package stream

import "errors"

var (
	// ErrInvalidUTF8 is returned when a ByteSource's deferred validation
	// finds a malformed byte sequence at leaf extraction.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 encoding")

	// ErrUnexpectedEOF is returned when a contiguous slice is requested at
	// or past the end of the source.
	ErrUnexpectedEOF = errors.New("unexpected end of stream")

	// ErrDanglingEscape is returned by UnescapeText when a trailing
	// backslash has no following escape character.
	ErrDanglingEscape = errors.New("dangling escape character")

	// ErrUnknownEscape is returned by UnescapeText for a backslash followed
	// by a character outside the iCalendar TEXT escape alphabet.
	ErrUnknownEscape = errors.New("unrecognized escape sequence")
)
