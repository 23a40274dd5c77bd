// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package grammar

import (
	"github.com/calicogo/calico/primitive"
	"github.com/calicogo/calico/stream"
)

// Text parses RFC 5545 §3.3.11 TEXT: the raw property-value bytes are
// escape-decoded first (the "escaped" stream view — `\\ \n \N \; \,`), then
// validated as primitive.Text. Text always decodes escapes; ParamValue
// never does, since quoted-string parameter
// values do not re-escape per RFC 5545 §3.2.
func Text(raw string) (primitive.Text, error) {
	decoded, err := stream.UnescapeText(raw)
	if err != nil {
		return primitive.Text{}, err
	}
	return primitive.NewText(decoded)
}

// ParamValue parses an RFC 5545 §3.2 parameter value: either a quoted
// string (quotes stripped, no further escape decoding) or bare paramtext.
// Both forms are validated as primitive.ParamValue, which already forbids
// '"' and '\n'.
func ParamValue(raw string) (primitive.ParamValue, error) {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return primitive.NewParamValue(raw[1 : len(raw)-1])
	}
	return primitive.NewParamValue(raw)
}

// Uri parses a URI value. As a property value it may carry TEXT-style
// escapes for ';' and ','; as a parameter (quoted-string) value it may not,
// matching spec.md §4.G. unescape selects which reading applies.
func Uri(raw string, unescape bool) (primitive.Uri, error) {
	s := raw
	if unescape {
		decoded, err := stream.UnescapeText(raw)
		if err != nil {
			return primitive.Uri{}, err
		}
		s = decoded
	}
	return primitive.NewUri(s)
}
