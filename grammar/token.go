// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package grammar

import "github.com/calicogo/calico/primitive"

// ExtensibleEnum parses raw into a primitive.Name, then looks it up
// case-insensitively in lookup; on a hit it returns a known Token, on a
// miss an unknown Token wrapping the Name verbatim. In this package it
// backs CLASS (see Class); STATUS is parsed as a closed set (status.go) and
// does not go through it.
func ExtensibleEnum[S comparable](raw string, lookup func(string) (S, bool)) (primitive.Token[S], error) {
	name, err := primitive.NewName(raw)
	if err != nil {
		return primitive.Token[S]{}, err
	}
	if v, ok := lookup(name.Value()); ok {
		return primitive.KnownToken(v), nil
	}
	return primitive.UnknownToken[S](name), nil
}
