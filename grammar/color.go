// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package grammar

import "github.com/calicogo/calico/primitive"

// Color parses RFC 7986 §5.9's COLOR value against the CSS3 extended
// color-keyword set primitive.Color carries.
func Color(raw string) (primitive.Color, error) {
	return primitive.NewColor(raw)
}
