// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package stream

import "strings"

// UnescapeText decodes the iCalendar TEXT escape alphabet RFC 5545 §3.3.11
// defines: `\\` -> `\`, `\n`/`\N` -> LF, `\;` -> `;`, `\,` -> `,`. It is used
// only when parsing a property value, never a parameter value — RFC 5545
// §3.2's quoted-string grammar for parameter values does not re-escape, so
// the "escaped" view is exclusively a property-value concern, per spec.md
// §4.S/§4.G.
func UnescapeText(raw string) (string, error) {
	if !strings.ContainsRune(raw, '\\') {
		return raw, nil
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(raw) {
			return "", ErrDanglingEscape
		}
		next := raw[i+1]
		switch next {
		case '\\':
			b.WriteByte('\\')
		case ';':
			b.WriteByte(';')
		case ',':
			b.WriteByte(',')
		case 'n', 'N':
			b.WriteByte('\n')
		default:
			return "", ErrUnknownEscape
		}
		i++
	}
	return b.String(), nil
}

// EscapeText is the inverse of UnescapeText: it produces a TEXT value ready
// to embed in a property value, escaping backslash, semicolon, comma, and
// newline.
func EscapeText(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '\\':
			b.WriteString(`\\`)
		case ';':
			b.WriteString(`\;`)
		case ',':
			b.WriteString(`\,`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(value[i])
		}
	}
	return b.String()
}
