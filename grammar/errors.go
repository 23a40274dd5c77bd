// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package grammar

import "errors"

var (
	ErrTrailingInput      = errors.New("trailing input after value")
	ErrEmptyValue         = errors.New("empty value")
	ErrMixedWeeksForm     = errors.New("weeks form cannot be mixed with other duration components")
	ErrDurationHMWithoutM = errors.New("hour and second components without a minute component are ambiguous")
	ErrNegativeZeroOffset = errors.New("a UTC offset of exactly zero must not carry a negative sign")
	ErrRRuleFreqRequired  = errors.New("RRULE must contain FREQ")
	ErrRRuleDuplicatePart = errors.New("RRULE part repeated")
	ErrRRuleCountAndUntil = errors.New("RRULE COUNT and UNTIL are mutually exclusive")
	ErrRRuleZeroInterval  = errors.New("RRULE INTERVAL must be positive")
	ErrRRuleForbiddenPart = errors.New("RRULE part is forbidden for this FREQ")
	ErrUnknownClassToken  = errors.New("unrecognized CLASS token")
)
