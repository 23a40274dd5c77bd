// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package primitive

import (
	"fmt"
	"strings"
)

// isTextChar is the character predicate the whole Text family shares: any
// byte except an ASCII control character other than TAB (0x09) and LF
// (0x0A). CR (0x0D) is a control character and is rejected here; the stream
// layer strips CRLF line endings before a value ever reaches this check.
func isTextChar(b byte) bool {
	if b == '\t' || b == '\n' {
		return true
	}
	return b >= 0x20 && b != 0x7F
}

// Text is RFC 5545 TEXT content after escape-decoding: any character except
// an ASCII control other than TAB/LF.
type Text struct {
	value string
}

// NewText validates that raw contains only characters isTextChar allows.
func NewText(raw string) (Text, error) {
	for i := 0; i < len(raw); i++ {
		if !isTextChar(raw[i]) {
			return Text{}, fmt.Errorf("%w: control byte 0x%02x in text", ErrInvalidChar, raw[i])
		}
	}
	return Text{value: raw}, nil
}

func (t Text) Value() string { return t.value }
func (t Text) String() string { return t.value }

// ParamValue is a parameter's value text: Text minus double-quote and
// newline (RFC 5545 §3.2's paramtext/quoted-string grammar).
type ParamValue struct {
	value string
}

// NewParamValue validates raw as Text that additionally forbids '"' and '\n'.
func NewParamValue(raw string) (ParamValue, error) {
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if b == '"' || b == '\n' {
			return ParamValue{}, fmt.Errorf("%w: %q not allowed in a parameter value", ErrInvalidChar, b)
		}
		if !isTextChar(b) {
			return ParamValue{}, fmt.Errorf("%w: control byte 0x%02x in parameter value", ErrInvalidChar, b)
		}
	}
	return ParamValue{value: raw}, nil
}

func (p ParamValue) Value() string  { return p.value }
func (p ParamValue) String() string { return p.value }

// isNameChar restricts to ASCII alphanumerics and hyphen, the alphabet RFC
// 5545 §3.2's "name" production (iana-token / x-name) draws from.
func isNameChar(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '-':
		return true
	default:
		return false
	}
}

// Name is a non-empty ASCII alphanumeric-plus-hyphen token: a property,
// parameter, or component name, or the distinguishing body of an IANA token
// or X-prefixed extension.
type Name struct {
	value string
}

// NewName validates raw is non-empty and built only from isNameChar bytes.
func NewName(raw string) (Name, error) {
	if raw == "" {
		return Name{}, ErrEmptyString
	}
	for i := 0; i < len(raw); i++ {
		if !isNameChar(raw[i]) {
			return Name{}, fmt.Errorf("%w: %q in name %q", ErrInvalidChar, raw[i], raw)
		}
	}
	return Name{value: raw}, nil
}

func (n Name) Value() string  { return n.value }
func (n Name) String() string { return n.value }

// IsExtension reports whether the name is an "X-" vendor extension, as
// opposed to a bare IANA-registered token.
func (n Name) IsExtension() bool {
	return len(n.value) >= 2 && (n.value[0] == 'X' || n.value[0] == 'x') && n.value[1] == '-'
}

// Uid is RFC 5545 §3.8.4.7's UID value: non-empty text with no ASCII
// control characters except TAB.
type Uid struct {
	value string
}

// NewUid validates raw is non-empty and contains only TAB among ASCII controls.
func NewUid(raw string) (Uid, error) {
	if raw == "" {
		return Uid{}, ErrEmptyString
	}
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if b < 0x20 && b != '\t' {
			return Uid{}, fmt.Errorf("%w: control byte 0x%02x in UID", ErrInvalidChar, b)
		}
		if b == 0x7F {
			return Uid{}, fmt.Errorf("%w: DEL byte in UID", ErrInvalidChar)
		}
	}
	return Uid{value: raw}, nil
}

func (u Uid) Value() string  { return u.value }
func (u Uid) String() string { return u.value }

// TzId is RFC 5545 §3.2.19's TZID parameter value: the same non-empty,
// control-free text shape as Uid, kept as a distinct type so a TzId can
// never be passed where a Uid is expected and vice versa.
type TzId struct {
	value string
}

// NewTzId validates raw with the same rule as NewUid.
func NewTzId(raw string) (TzId, error) {
	if raw == "" {
		return TzId{}, ErrEmptyString
	}
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if b < 0x20 && b != '\t' {
			return TzId{}, fmt.Errorf("%w: control byte 0x%02x in TZID", ErrInvalidChar, b)
		}
		if b == 0x7F {
			return TzId{}, fmt.Errorf("%w: DEL byte in TZID", ErrInvalidChar)
		}
	}
	return TzId{value: raw}, nil
}

func (t TzId) Value() string  { return t.value }
func (t TzId) String() string { return t.value }

// Uri is RFC 3986's scheme rule applied loosely: the value must contain a
// colon, and the text before it must start with an ASCII letter followed by
// letters, digits, '+', '-', or '.'. The remainder after the colon is not
// further validated — full URI-reference grammar is out of scope here,
// matching spec.md §3.1's "scheme starts with ASCII letter ... colon" rule.
type Uri struct {
	value  string
	scheme string
}

// NewUri validates raw contains a well-formed scheme followed by ':'.
func NewUri(raw string) (Uri, error) {
	colon := strings.IndexByte(raw, ':')
	if colon < 0 {
		return Uri{}, ErrMissingColon
	}
	scheme := raw[:colon]
	if scheme == "" {
		return Uri{}, fmt.Errorf("%w: empty scheme", ErrInvalidScheme)
	}
	first := scheme[0]
	if !((first >= 'A' && first <= 'Z') || (first >= 'a' && first <= 'z')) {
		return Uri{}, fmt.Errorf("%w: scheme %q must start with a letter", ErrInvalidScheme, scheme)
	}
	for i := 1; i < len(scheme); i++ {
		c := scheme[i]
		ok := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') ||
			c == '+' || c == '-' || c == '.'
		if !ok {
			return Uri{}, fmt.Errorf("%w: scheme %q contains %q", ErrInvalidScheme, scheme, c)
		}
	}
	return Uri{value: raw, scheme: scheme}, nil
}

func (u Uri) Value() string  { return u.value }
func (u Uri) String() string { return u.value }
func (u Uri) Scheme() string { return u.scheme }
