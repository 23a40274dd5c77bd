// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package stream

import "unicode/utf8"

// Source is the minimal linear-byte-sequence interface every stream
// implementation provides. It deliberately says nothing about line folding
// or escaping — those are expressed as free functions (StripLineFoldPrefix,
// NextContiguousSlice, UnescapeText) operating over any Source, so a new
// backing representation only has to implement this one interface to gain
// all of it.
type Source interface {
	// At returns the byte at index i and true, or 0 and false if i is out
	// of range.
	At(i int) (byte, bool)
	// Len returns the total length in bytes.
	Len() int
	// Slice returns the raw bytes in [start, end). Callers must ensure
	// 0 <= start <= end <= Len().
	Slice(start, end int) []byte
	// ValidateUTF8 checks that Slice(start, end) is well-formed UTF-8. A
	// TextSource always returns nil (its string is validated once at
	// construction); a ByteSource performs the check here, deferring it
	// to the point a leaf value is actually extracted, per spec.md §4.S.
	ValidateUTF8(start, end int) error
}

// TextSource is a Source over a Go string known to be valid UTF-8 already
// (strings passed to NewTextSource are validated once, up front).
type TextSource struct {
	data string
}

// NewTextSource validates s is well-formed UTF-8 and wraps it.
func NewTextSource(s string) (*TextSource, error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidUTF8
	}
	return &TextSource{data: s}, nil
}

func (t *TextSource) At(i int) (byte, bool) {
	if i < 0 || i >= len(t.data) {
		return 0, false
	}
	return t.data[i], true
}

func (t *TextSource) Len() int { return len(t.data) }

func (t *TextSource) Slice(start, end int) []byte {
	return []byte(t.data[start:end])
}

func (t *TextSource) ValidateUTF8(start, end int) error { return nil }

// ByteSource is a Source over raw, not-yet-validated bytes. UTF-8 validity
// is checked only when ValidateUTF8 is called on a specific span, matching
// spec.md §4.S's "deferred UTF-8 validation at leaf extraction."
type ByteSource struct {
	data []byte
}

// NewByteSource wraps data without validating it; validation happens later,
// per-leaf, via ValidateUTF8.
func NewByteSource(data []byte) *ByteSource {
	return &ByteSource{data: data}
}

func (b *ByteSource) At(i int) (byte, bool) {
	if i < 0 || i >= len(b.data) {
		return 0, false
	}
	return b.data[i], true
}

func (b *ByteSource) Len() int { return len(b.data) }

func (b *ByteSource) Slice(start, end int) []byte {
	return b.data[start:end]
}

func (b *ByteSource) ValidateUTF8(start, end int) error {
	if !utf8.Valid(b.data[start:end]) {
		return ErrInvalidUTF8
	}
	return nil
}
