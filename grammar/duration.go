// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package grammar

import (
	"strconv"

	"github.com/calicogo/calico/combinator"
	"github.com/calicogo/calico/primitive"
)

// Duration parses RFC 5545 §3.3.6's DURATION value:
//
//	["+" / "-"] "P" (dur-date / dur-time / dur-week)
//
// The weeks form (PnW) is mutually exclusive with every other component.
// Within the time portion, an hour+second pair with no minute component is
// rejected as an unambiguous violation (spec.md §4.G) even though the bare
// RFC grammar alone does not forbid it. Grounded on icaldur/duration.go's
// character scan, generalized to return a primitive.SignedDuration instead
// of a time.Duration.
func Duration(raw string) (primitive.SignedDuration, error) {
	if raw == "" {
		return primitive.SignedDuration{}, ErrEmptyValue
	}

	i := 0
	sign := primitive.Positive
	switch raw[0] {
	case '+':
		i++
	case '-':
		sign = primitive.Negative
		i++
	}

	if i >= len(raw) || raw[i] != 'P' {
		return primitive.SignedDuration{}, combinator.NewParseError(combinator.Syntactic, i, "duration must start with P")
	}
	i++

	readUint := func() (uint32, bool) {
		start := i
		for i < len(raw) && isDigit(raw[i]) {
			i++
		}
		if i == start {
			return 0, false
		}
		v, err := strconv.ParseUint(raw[start:i], 10, 32)
		if err != nil {
			return 0, false
		}
		return uint32(v), true
	}

	// Weeks form: PnW, nothing else permitted.
	if wpos := indexByteFrom(raw, 'W', i); wpos != -1 {
		weeks, ok := readUint()
		if !ok || i != wpos {
			return primitive.SignedDuration{}, combinator.NewParseError(combinator.Syntactic, i, "malformed week count")
		}
		i++ // consume 'W'
		if i != len(raw) {
			return primitive.SignedDuration{}, ErrMixedWeeksForm
		}
		return primitive.SignedDuration{Sign: sign, Duration: primitive.NewNominalDuration(weeks, 0, nil)}, nil
	}

	var (
		days                 uint32
		hours, minutes, secs uint32
		inTime               bool
		usedH, usedM, usedS  bool
		anyComponent         bool
	)

	for i < len(raw) {
		if raw[i] == 'T' {
			inTime = true
			i++
			continue
		}
		v, ok := readUint()
		if !ok {
			return primitive.SignedDuration{}, combinator.NewParseError(combinator.Syntactic, i, "expected a digit")
		}
		if i >= len(raw) {
			return primitive.SignedDuration{}, combinator.NewParseError(combinator.Syntactic, i, "missing unit letter after number")
		}
		unit := raw[i]
		i++
		switch unit {
		case 'D':
			if inTime {
				return primitive.SignedDuration{}, combinator.NewParseError(combinator.Syntactic, i, "'D' not permitted after 'T'")
			}
			days = v
			anyComponent = true
		case 'H':
			if !inTime || usedH {
				return primitive.SignedDuration{}, combinator.NewParseError(combinator.Syntactic, i, "unexpected 'H'")
			}
			usedH = true
			hours = v
			anyComponent = true
		case 'M':
			if !inTime || usedM {
				return primitive.SignedDuration{}, combinator.NewParseError(combinator.Syntactic, i, "unexpected 'M'")
			}
			usedM = true
			minutes = v
			anyComponent = true
		case 'S':
			if !inTime || usedS {
				return primitive.SignedDuration{}, combinator.NewParseError(combinator.Syntactic, i, "unexpected 'S'")
			}
			usedS = true
			secs = v
			anyComponent = true
		default:
			return primitive.SignedDuration{}, combinator.NewParseError(combinator.Syntactic, i, "unrecognized duration unit")
		}
	}

	if !anyComponent {
		return primitive.SignedDuration{}, combinator.NewParseError(combinator.Syntactic, i, "duration has no components")
	}
	if usedH && usedS && !usedM {
		return primitive.SignedDuration{}, ErrDurationHMWithoutM
	}

	exact := primitive.ExactTime{Hours: hours, Minutes: minutes, Seconds: secs}
	if days > 0 || (!usedH && !usedM && !usedS) {
		var ep *primitive.ExactTime
		if usedH || usedM || usedS {
			ep = &exact
		}
		return primitive.SignedDuration{Sign: sign, Duration: primitive.NewNominalDuration(0, days, ep)}, nil
	}
	return primitive.SignedDuration{Sign: sign, Duration: primitive.NewExactDuration(exact)}, nil
}

// FormatDuration renders d in canonical RFC 5545 form, the inverse of
// Duration — used by the duration round-trip property (spec.md §8).
func FormatDuration(d primitive.SignedDuration) string {
	out := ""
	if d.Sign == primitive.Negative {
		out += "-"
	}
	out += "P"
	if d.Duration.Kind() == primitive.DurationNominal && d.Duration.Weeks() > 0 {
		return out + strconv.FormatUint(uint64(d.Duration.Weeks()), 10) + "W"
	}
	if d.Duration.Kind() == primitive.DurationNominal && d.Duration.Days() > 0 {
		out += strconv.FormatUint(uint64(d.Duration.Days()), 10) + "D"
	}
	exact, hasExact := d.Duration.ExactTime()
	if hasExact {
		out += "T"
		if exact.Hours > 0 {
			out += strconv.FormatUint(uint64(exact.Hours), 10) + "H"
		}
		if exact.Minutes > 0 {
			out += strconv.FormatUint(uint64(exact.Minutes), 10) + "M"
		}
		if exact.Seconds > 0 || (exact.Hours == 0 && exact.Minutes == 0) {
			out += strconv.FormatUint(uint64(exact.Seconds), 10) + "S"
		}
	}
	if out == "P" || out == "-P" {
		// All-zero nominal duration: "P" alone does not round-trip through
		// Duration, which requires at least one component.
		return out + "0D"
	}
	return out
}

func indexByteFrom(s string, b byte, from int) int {
	for j := from; j < len(s); j++ {
		if s[j] == b {
			return j
		}
	}
	return -1
}
