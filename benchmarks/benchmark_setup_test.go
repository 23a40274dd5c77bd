// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package benchmarks

import (
	"testing"

	"github.com/calicogo/calico/component"
	"github.com/calicogo/calico/grammar"
)

var benchEvent = component.RawComponent{
	Kind: "VEVENT",
	Properties: []component.RawProperty{
		{Name: "UID", Value: "event-1@example.com"},
		{Name: "DTSTAMP", Value: "20240115T130000Z"},
		{Name: "DTSTART", Value: "20240115T130000Z"},
		{Name: "DTEND", Value: "20240115T140000Z"},
		{Name: "SUMMARY", Value: "Benchmark meeting"},
		{Name: "ORGANIZER", Value: "mailto:organizer@example.com"},
		{Name: "STATUS", Value: "CONFIRMED"},
	},
}

func BenchmarkValidateEvent(b *testing.B) {
	for b.Loop() {
		if v := component.ValidateEvent(benchEvent); !v.Defects.Empty() {
			b.Fatalf("unexpected defects: %v", v.Defects.Flags())
		}
	}
}

func BenchmarkParseDateTime(b *testing.B) {
	for b.Loop() {
		if _, err := grammar.DateTime("20240115T130000Z"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseDuration(b *testing.B) {
	for b.Loop() {
		if _, err := grammar.Duration("P1DT2H3M4S"); err != nil {
			b.Fatal(err)
		}
	}
}
