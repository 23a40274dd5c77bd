// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package grammar implements the RFC 5545 (and RFC 8984 JSCalendar)
// lexical/value grammar as combinator.Parser values over primitive types:
// duration, date, date-time, utc-offset, period, rrule, text, integer,
// float, geo, color, request-status, class, and the JSCalendar-side
// date/time/duration variants.
//
// Each rule is grounded on an existing hand-written scanner in the
// retrieval pack — icaldur/duration.go's character-by-character duration
// scan, rrule/rrule.go's key=value RRULE loop. Not every rule here is a
// combinator.Parser composition: Duration, ParseRRule, RequestStatus and
// ParsePeriod remain hand-written imperative scanners over the raw string.
package grammar
