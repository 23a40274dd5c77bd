// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package primitive

import "errors"

// Range/shape errors shared across the primitive leaves. Each constructor
// wraps one of these with fmt.Errorf("%w: ...") so callers can still
// errors.Is against the category while getting a value-specific message.
var (
	ErrOutOfRange     = errors.New("value out of range")
	ErrInvalidDate    = errors.New("impossible calendar date")
	ErrNegativeZero   = errors.New("negative-zero UTC offset is not permitted")
	ErrEmptyString    = errors.New("empty string")
	ErrInvalidChar    = errors.New("invalid character")
	ErrMissingColon   = errors.New("URI missing scheme separator")
	ErrInvalidScheme  = errors.New("invalid URI scheme")
	ErrMalformedValue = errors.New("malformed value")
)
