// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package grammar

import (
	"strings"

	"github.com/calicogo/calico/primitive"
)

// Classification is RFC 5545 §3.8.1.3's CLASS value.
type Classification int

const (
	ClassPublic Classification = iota
	ClassPrivate
	ClassConfidential
)

var classTokens = map[string]Classification{
	"PUBLIC":       ClassPublic,
	"PRIVATE":      ClassPrivate,
	"CONFIDENTIAL": ClassConfidential,
}

// Class parses CLASS as an extensible enum: PUBLIC | PRIVATE | CONFIDENTIAL
// | iana-token | x-name.
func Class(raw string) (primitive.Token[Classification], error) {
	return ExtensibleEnum(raw, func(name string) (Classification, bool) {
		v, ok := classTokens[strings.ToUpper(name)]
		return v, ok
	})
}
