// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package grammar

import (
	"github.com/calicogo/calico/combinator"
	"github.com/calicogo/calico/primitive"
)

// JSCalendarDate parses RFC 8984's punctuated ISO 8601 date form
// ("2020-01-15"), the JSON-side counterpart of Date's unpunctuated
// "20200115", per spec.md §4.J.
func JSCalendarDate(raw string) (primitive.Date, error) {
	return parseAll(jsDateParser, raw)
}

var jsDateParser = combinator.TryMap(
	combinator.Seq3(
		combinator.Terminated(digitsN(4), combinator.Literal("-")),
		combinator.Terminated(digitsN(2), combinator.Literal("-")),
		digitsN(2),
	),
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

// JSCalendarTime parses RFC 8984's punctuated time form ("13:00:00").
func JSCalendarTime(raw string) (primitive.Time, error) {
	return parseAll(jsTimeParser, raw)
}

var jsTimeParser = combinator.TryMap(
	combinator.Seq3(
		combinator.Terminated(digitsN(2), combinator.Literal(":")),
		combinator.Terminated(digitsN(2), combinator.Literal(":")),
		digitsN(2),
	),
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

// JSCalendarLocalDateTime parses RFC 8984's LocalDateTime: punctuated date
// "T" punctuated time, with no zone suffix — the zone is always carried
// separately as a named IANA identifier in JSCalendar (the "timeZone"
// field), never embedded in the string itself.
func JSCalendarLocalDateTime(raw string) (primitive.DateTime, error) {
	return parseAll(jsLocalDateTimeParser, raw)
}

var jsLocalDateTimeParser = combinator.Map(
	combinator.Seq2(jsDateParser, combinator.Preceded(combinator.Literal("T"), jsTimeParser)),
	func(p combinator.Pair[primitive.Date, primitive.Time]) primitive.DateTime {
		return primitive.NewDateTime(p.First, p.Second, primitive.MarkerUnspecified)
	},
)

// JSCalendarUTCDateTime parses RFC 8984's UTCDateTime: a LocalDateTime with
// a trailing "Z".
func JSCalendarUTCDateTime(raw string) (primitive.DateTime, error) {
	return parseAll(jsUTCDateTimeParser, raw)
}

var jsUTCDateTimeParser = combinator.Map(
	combinator.Terminated(
		combinator.Seq2(jsDateParser, combinator.Preceded(combinator.Literal("T"), jsTimeParser)),
		combinator.Literal("Z"),
	),
	func(p combinator.Pair[primitive.Date, primitive.Time]) primitive.DateTime {
		return primitive.NewDateTime(p.First, p.Second, primitive.MarkerUTC)
	},
)

// JSCalendarDuration parses RFC 8984's duration string, which reuses the
// exact same "P…" grammar iCalendar's DURATION does (unlike date/time, the
// duration lexical form is not punctuated differently between the two
// value spaces).
func JSCalendarDuration(raw string) (primitive.SignedDuration, error) {
	return Duration(raw)
}
