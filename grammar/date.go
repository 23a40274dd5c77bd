// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package grammar

import (
	"github.com/calicogo/calico/combinator"
	"github.com/calicogo/calico/primitive"
)

// Date parses RFC 5545 §3.3.4's DATE value: YYYYMMDD, unpunctuated.
// Impossible dates (e.g. 2100-02-29) are rejected by primitive.NewDate.
func Date(raw string) (primitive.Date, error) {
	return parseAll(dateParser, raw)
}

var dateParser = combinator.TryMap(
	combinator.Seq3(digitsN(4), digitsN(2), digitsN(2)),
	func(t combinator.Triple[[]byte, []byte, []byte]) (primitive.Date, error) {
		yi, err := atoi(t.First)
		if err != nil {
			return primitive.Date{}, err
		}
		mi, err := atoi(t.Second)
		if err != nil {
			return primitive.Date{}, err
		}
		di, err := atoi(t.Third)
		if err != nil {
			return primitive.Date{}, err
		}
		y, err := primitive.NewYear(yi)
		if err != nil {
			return primitive.Date{}, err
		}
		m, err := primitive.NewMonth(mi)
		if err != nil {
			return primitive.Date{}, err
		}
		d, err := primitive.NewDay(di)
		if err != nil {
			return primitive.Date{}, err
		}
		return primitive.NewDate(y, m, d)
	},
)

// Time parses RFC 5545 §3.3.12's unpunctuated time-of-day: HHMMSS, with an
// optional trailing "Z" consumed separately by DateTime (bare Time never
// carries a zone marker of its own).
func Time(raw string) (primitive.Time, error) {
	return parseAll(timeParser, raw)
}

var timeParser = combinator.TryMap(
	combinator.Seq3(digitsN(2), digitsN(2), digitsN(2)),
	func(t combinator.Triple[[]byte, []byte, []byte]) (primitive.Time, error) {
		hi, err := atoi(t.First)
		if err != nil {
			return primitive.Time{}, err
		}
		mi, err := atoi(t.Second)
		if err != nil {
			return primitive.Time{}, err
		}
		si, err := atoi(t.Third)
		if err != nil {
			return primitive.Time{}, err
		}
		h, err := primitive.NewHour(hi)
		if err != nil {
			return primitive.Time{}, err
		}
		m, err := primitive.NewMinute(mi)
		if err != nil {
			return primitive.Time{}, err
		}
		s, err := primitive.NewSecond(si)
		if err != nil {
			return primitive.Time{}, err
		}
		return primitive.NewTime(h, m, s, nil), nil
	},
)

// DateTime parses RFC 5545 §3.3.5's DATE-TIME value: date "T" time, with an
// optional trailing "Z" marking UTC. A TZID parameter (when present on the
// property) is applied by the caller via WithZone, since the grammar rule
// alone never sees parameters.
func DateTime(raw string) (primitive.DateTime, error) {
	return parseAll(dateTimeParser, raw)
}

var dateTimeParser = combinator.Map(
	combinator.Seq3(
		dateParser,
		combinator.Preceded(combinator.Literal("T"), timeParser),
		combinator.Optional(combinator.Literal("Z")),
	),
	func(t combinator.Triple[primitive.Date, primitive.Time, combinator.OptionalValue[[]byte]]) primitive.DateTime {
		marker := primitive.MarkerUnspecified
		if t.Third.Present {
			marker = primitive.MarkerUTC
		}
		return primitive.NewDateTime(t.First, t.Second, marker)
	},
)

// WithZone re-tags a DateTime parsed with MarkerUnspecified as local with an
// explicit TZID, for use when the property carried a TZID parameter.
func WithZone(dt primitive.DateTime, tzid string) primitive.DateTime {
	return primitive.NewLocalDateTimeWithZone(dt.Date(), dt.Time(), tzid)
}

// UtcOffset parses RFC 5545 §3.3.14's UTC-OFFSET value: ("+"/"-") HH MM
// [SS]. The all-zero negative forms "-00:00"/"-0000" are rejected outright
// (spec.md §4.G, §8) since a negative zero offset has no meaningful
// referent.
func UtcOffset(raw string) (primitive.UtcOffset, error) {
	return parseAll(utcOffsetParser, raw)
}

var utcOffsetParser = combinator.TryMap(
	combinator.Seq4(
		combinator.Alt(combinator.Literal("+"), combinator.Literal("-")),
		digitsN(2),
		digitsN(2),
		combinator.Optional(digitsN(2)),
	),
	func(q combinator.Quad[[]byte, []byte, []byte, combinator.OptionalValue[[]byte]]) (primitive.UtcOffset, error) {
		sign := primitive.Positive
		if q.First[0] == '-' {
			sign = primitive.Negative
		}
		hi, err := atoi(q.Second)
		if err != nil {
			return primitive.UtcOffset{}, err
		}
		mi, err := atoi(q.Third)
		if err != nil {
			return primitive.UtcOffset{}, err
		}
		si := 0
		if q.Fourth.Present {
			si, err = atoi(q.Fourth.Value)
			if err != nil {
				return primitive.UtcOffset{}, err
			}
		}
		if sign == primitive.Negative && hi == 0 && mi == 0 && si == 0 {
			return primitive.UtcOffset{}, ErrNegativeZeroOffset
		}
		h, err := primitive.NewHour(hi)
		if err != nil {
			return primitive.UtcOffset{}, err
		}
		m, err := primitive.NewMinute(mi)
		if err != nil {
			return primitive.UtcOffset{}, err
		}
		s, err := primitive.NewNonLeapSecond(si)
		if err != nil {
			return primitive.UtcOffset{}, err
		}
		return primitive.NewUtcOffset(sign, h, m, s), nil
	},
)

// Period is RFC 5545 §3.3.9's PERIOD value: either an explicit
// start/end DATE-TIME pair, or a start DATE-TIME plus a DURATION.
type Period struct {
	Start    primitive.DateTime
	End      primitive.DateTime
	HasEnd   bool
	Duration primitive.SignedDuration
	HasDur   bool
}

// ParsePeriod parses "datetime / (datetime | duration)".
func ParsePeriod(raw string) (Period, error) {
	startRaw, rest, ok := cutByte(raw, '/')
	if !ok {
		return Period{}, combinator.NewParseError(combinator.Syntactic, 0, "period requires a '/' separator")
	}
	start, err := DateTime(startRaw)
	if err != nil {
		return Period{}, err
	}
	if len(rest) > 0 && (rest[0] == 'P' || rest[0] == '+' || rest[0] == '-') {
		d, err := Duration(rest)
		if err != nil {
			return Period{}, err
		}
		return Period{Start: start, Duration: d, HasDur: true}, nil
	}
	end, err := DateTime(rest)
	if err != nil {
		return Period{}, err
	}
	return Period{Start: start, End: end, HasEnd: true}, nil
}

func cutByte(s string, b byte) (string, string, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
