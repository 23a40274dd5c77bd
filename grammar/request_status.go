// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package grammar

import (
	"strings"

	"github.com/calicogo/calico/combinator"
	"github.com/calicogo/calico/primitive"
	"github.com/calicogo/calico/stream"
)

// RequestStatus parses RFC 5545 §3.8.8.3's REQUEST-STATUS value:
//
//	statuscode ";" description [";" exdata]
//
// where statuscode is "*2(DIGIT ".") DIGIT" (e.g. "2.0", "3.1.1"). The
// description and exdata segments are TEXT (escape-decoded).
func RequestStatus(raw string) (primitive.RequestStatus, error) {
	codeRaw, rest, ok := cutByte(raw, ';')
	if !ok {
		return primitive.RequestStatus{}, combinator.NewParseError(combinator.Syntactic, 0, "REQUEST-STATUS requires a ';' after the status code")
	}
	if err := validateStatusCode(codeRaw); err != nil {
		return primitive.RequestStatus{}, err
	}
	descRaw, exRaw, hasEx := cutByte(rest, ';')
	desc, err := stream.UnescapeText(descRaw)
	if err != nil {
		return primitive.RequestStatus{}, err
	}
	rs := primitive.RequestStatus{Code: codeRaw, Description: desc}
	if hasEx {
		ex, err := stream.UnescapeText(exRaw)
		if err != nil {
			return primitive.RequestStatus{}, err
		}
		rs.ExceptionData = ex
		rs.HasExceptionData = true
	}
	return rs, nil
}

// validateStatusCode checks the "*2(DIGIT ".") DIGIT" shape: one or more
// dot-separated groups of digits, each nonempty.
func validateStatusCode(s string) error {
	if s == "" {
		return combinator.NewParseError(combinator.Syntactic, 0, "empty REQUEST-STATUS code")
	}
	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return combinator.NewParseError(combinator.Syntactic, 0, "REQUEST-STATUS code has too many components")
	}
	for _, p := range parts {
		if p == "" {
			return combinator.NewParseError(combinator.Syntactic, 0, "REQUEST-STATUS code has an empty component")
		}
		for i := 0; i < len(p); i++ {
			if !isDigit(p[i]) {
				return combinator.NewParseError(combinator.Syntactic, 0, "REQUEST-STATUS code must be digits and '.'")
			}
		}
	}
	return nil
}
