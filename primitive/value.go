// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package primitive

import (
	"fmt"
	"strings"
)

// FormatType is a media type/subtype pair for the FMTTYPE parameter (RFC
// 5545 §3.2.8), e.g. "text/plain" or "image/png".
type FormatType struct {
	value string
}

// NewFormatType validates raw as "type/subtype" with both parts non-empty.
func NewFormatType(raw string) (FormatType, error) {
	if raw == "" {
		return FormatType{}, ErrEmptyString
	}
	typePart, subtype, ok := strings.Cut(raw, "/")
	if !ok {
		return FormatType{}, fmt.Errorf("%w: missing '/' in format type %q", ErrMalformedValue, raw)
	}
	if typePart == "" {
		return FormatType{}, fmt.Errorf("%w: empty type before '/' in %q", ErrMalformedValue, raw)
	}
	if subtype == "" {
		return FormatType{}, fmt.Errorf("%w: empty subtype after '/' in %q", ErrMalformedValue, raw)
	}
	return FormatType{value: raw}, nil
}

func (f FormatType) String() string { return f.value }

// TypePart returns the part before '/'.
func (f FormatType) TypePart() string {
	t, _, _ := strings.Cut(f.value, "/")
	return t
}

// Subtype returns the part after '/'.
func (f FormatType) Subtype() string {
	_, s, _ := strings.Cut(f.value, "/")
	return s
}

// Attachment is RFC 5545 §3.8.1.1's ATTACH value: either a URI reference or
// inline binary data (base64-encoded on the wire; already decoded here).
// The teacher stores ATTACH as []string and loses this distinction; calico
// keeps both per original_source/calendar-types/src/value.rs.
type Attachment struct {
	uri    *Uri
	binary []byte
}

// NewAttachmentURI wraps a URI-form attachment.
func NewAttachmentURI(u Uri) Attachment { return Attachment{uri: &u} }

// NewAttachmentBinary wraps inline binary data.
func NewAttachmentBinary(data []byte) Attachment { return Attachment{binary: data} }

// URI returns the wrapped URI and true, or the zero value and false if this
// is a binary attachment.
func (a Attachment) URI() (Uri, bool) {
	if a.uri == nil {
		return Uri{}, false
	}
	return *a.uri, true
}

// Binary returns the wrapped bytes and true, or nil and false if this is a
// URI attachment.
func (a Attachment) Binary() ([]byte, bool) {
	if a.uri != nil {
		return nil, false
	}
	return a.binary, true
}

// StructuredDataValue is RFC 9073 §6.6's STRUCTURED-DATA value: text,
// inline binary, or a URI reference.
type StructuredDataValue struct {
	kind int // 0 = text, 1 = binary, 2 = uri
	text string
	bin  []byte
	uri  Uri
}

func NewStructuredDataText(s string) StructuredDataValue {
	return StructuredDataValue{kind: 0, text: s}
}
func NewStructuredDataBinary(b []byte) StructuredDataValue {
	return StructuredDataValue{kind: 1, bin: b}
}
func NewStructuredDataURI(u Uri) StructuredDataValue {
	return StructuredDataValue{kind: 2, uri: u}
}

func (s StructuredDataValue) Text() (string, bool) { return s.text, s.kind == 0 }
func (s StructuredDataValue) Binary() ([]byte, bool) { return s.bin, s.kind == 1 }
func (s StructuredDataValue) URI() (Uri, bool) { return s.uri, s.kind == 2 }

// StyledDescriptionValue is RFC 9073 §6.5's STYLED-DESCRIPTION value: text,
// a URI reference, or an IANA-registered (value-type, value) pair this
// package does not otherwise interpret.
type StyledDescriptionValue struct {
	kind      int // 0 = text, 1 = uri, 2 = iana
	text      string
	uri       Uri
	valueType string
	rawValue  string
}

func NewStyledDescriptionText(s string) StyledDescriptionValue {
	return StyledDescriptionValue{kind: 0, text: s}
}
func NewStyledDescriptionURI(u Uri) StyledDescriptionValue {
	return StyledDescriptionValue{kind: 1, uri: u}
}
func NewStyledDescriptionIana(valueType, value string) StyledDescriptionValue {
	return StyledDescriptionValue{kind: 2, valueType: valueType, rawValue: value}
}

func (s StyledDescriptionValue) Text() (string, bool) { return s.text, s.kind == 0 }
func (s StyledDescriptionValue) URI() (Uri, bool)     { return s.uri, s.kind == 1 }
func (s StyledDescriptionValue) Iana() (valueType, value string, ok bool) {
	return s.valueType, s.rawValue, s.kind == 2
}

// RequestStatus is RFC 5545 §3.8.8.3's REQUEST-STATUS value: a
// status-code, a short description, and optional exception data. The code
// is preserved verbatim as text (e.g. "2.0", "3.1") — interpreting its
// 1xx/2xx/3xx/4xx class is a scheduling (iTIP) concern, out of scope here.
type RequestStatus struct {
	Code        string
	Description string
	ExceptionData string
	HasExceptionData bool
}
