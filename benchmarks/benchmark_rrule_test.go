// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package benchmarks tracks the cost of calico's own grammar and
// component validator, in place of the teacher's competitive benchmarks
// against other Go iCalendar libraries (out of this module's scope:
// comparing parsers is not a calendar data-model concern).
package benchmarks

import (
	"testing"

	"github.com/calicogo/calico/grammar"
)

func BenchmarkParseRRule(b *testing.B) {
	const rruleStringSimple = "FREQ=DAILY;INTERVAL=1;COUNT=10"
	const rruleStringWithDate = "FREQ=DAILY;INTERVAL=1;UNTIL=20250928T183000Z"
	const rruleStringWithByRules = "FREQ=MONTHLY;INTERVAL=1;BYDAY=1MO,3FR;BYMONTH=1,6,12"

	for _, raw := range []string{rruleStringSimple, rruleStringWithDate, rruleStringWithByRules} {
		b.Run(raw, func(b *testing.B) {
			for b.Loop() {
				if _, err := grammar.ParseRRule(raw); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
