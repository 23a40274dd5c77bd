// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package primitive

import "fmt"

// Hour is an hour-of-day, 0..=23.
type Hour uint8

// NewHour validates raw as an hour in 0..=23.
func NewHour(raw int) (Hour, error) {
	if raw < 0 || raw > 23 {
		return 0, fmt.Errorf("%w: hour %d", ErrOutOfRange, raw)
	}
	return Hour(raw), nil
}

func (h Hour) Value() int { return int(h) }

// Minute is a minute-of-hour, 0..=59.
type Minute uint8

// NewMinute validates raw as a minute in 0..=59.
func NewMinute(raw int) (Minute, error) {
	if raw < 0 || raw > 59 {
		return 0, fmt.Errorf("%w: minute %d", ErrOutOfRange, raw)
	}
	return Minute(raw), nil
}

func (m Minute) Value() int { return int(m) }

// Second is a second-of-minute, 0..=60. The 60th value is the leap second
// RFC 5545 §3.3.12 admits; use NonLeapSecond where the grammar excludes it
// (e.g. a UtcOffset's seconds field never carries a leap second).
type Second uint8

// NewSecond validates raw as a second in 0..=60, admitting the leap second.
func NewSecond(raw int) (Second, error) {
	if raw < 0 || raw > 60 {
		return 0, fmt.Errorf("%w: second %d", ErrOutOfRange, raw)
	}
	return Second(raw), nil
}

func (s Second) Value() int { return int(s) }

// IsLeap reports whether s is the 60th leap second.
func (s Second) IsLeap() bool { return s == 60 }

// NonLeapSecond is a second-of-minute, 0..=59, excluding the leap second.
type NonLeapSecond uint8

// NewNonLeapSecond validates raw as a second in 0..=59.
func NewNonLeapSecond(raw int) (NonLeapSecond, error) {
	if raw < 0 || raw > 59 {
		return 0, fmt.Errorf("%w: second %d", ErrOutOfRange, raw)
	}
	return NonLeapSecond(raw), nil
}

func (s NonLeapSecond) Value() int { return int(s) }

// FractionalSecond is a nonzero count of nanoseconds, 1..=999_999_999. A
// zero fraction is forbidden: omit the field instead of constructing a zero
// FractionalSecond, and a value of exactly one second's worth of nanoseconds
// (10^9) is rejected as out of range.
type FractionalSecond struct {
	nanos uint32
}

const nanosPerSecond = 1_000_000_000

// NewFractionalSecond validates nanos as 1..=999_999_999.
func NewFractionalSecond(nanos uint32) (FractionalSecond, error) {
	if nanos == 0 || nanos >= nanosPerSecond {
		return FractionalSecond{}, fmt.Errorf("%w: fractional second %d ns", ErrOutOfRange, nanos)
	}
	return FractionalSecond{nanos: nanos}, nil
}

// Nanoseconds returns the fraction normalized to nanoseconds.
func (f FractionalSecond) Nanoseconds() uint32 { return f.nanos }

// Time is a clock time: hour, minute, second (possibly a leap second), and
// an optional sub-second fraction. It carries no date or timezone context;
// pairing it with a Date is DateTime's job.
type Time struct {
	hour     Hour
	minute   Minute
	second   Second
	fraction *FractionalSecond
}

// NewTime assembles a Time from already-validated components. There is no
// cross-field constraint between hour/minute/second beyond each field's own
// range, so this constructor cannot itself fail; it exists for symmetry with
// the rest of the primitive layer and so call sites read uniformly.
func NewTime(hour Hour, minute Minute, second Second, fraction *FractionalSecond) Time {
	return Time{hour: hour, minute: minute, second: second, fraction: fraction}
}

func (t Time) Hour() Hour                       { return t.hour }
func (t Time) Minute() Minute                    { return t.minute }
func (t Time) Second() Second                    { return t.second }
func (t Time) Fraction() (FractionalSecond, bool) {
	if t.fraction == nil {
		return FractionalSecond{}, false
	}
	return *t.fraction, true
}

// Marker distinguishes the three DateTime forms RFC 5545 §3.3.5 allows: a
// bare local time, a UTC time (trailing "Z"), and a time tied to a named
// time zone via the TZID parameter. Marker carries no IANA time-zone
// resolution of its own (out of scope, spec.md §1); it is purely a tag plus,
// for Local, an optional TZID echo.
type Marker int

const (
	MarkerUnspecified Marker = iota
	MarkerUTC
	MarkerLocal
)

// DateTime pairs a Date and a Time with a Marker. There is no cross-field
// constraint between the date and time components.
type DateTime struct {
	date   Date
	time   Time
	marker Marker
	tzid   string // only meaningful when marker == MarkerLocal with an explicit TZID
}

// NewDateTime assembles a DateTime; like NewTime this cannot fail, since
// Date and Time are already individually validated.
func NewDateTime(date Date, time Time, marker Marker) DateTime {
	return DateTime{date: date, time: time, marker: marker}
}

// NewLocalDateTimeWithZone is NewDateTime for the MarkerLocal case where a
// TZID parameter named the zone; tzid is carried verbatim (zone lookup is
// out of scope, spec.md §1).
func NewLocalDateTimeWithZone(date Date, time Time, tzid string) DateTime {
	return DateTime{date: date, time: time, marker: MarkerLocal, tzid: tzid}
}

func (dt DateTime) Date() Date     { return dt.date }
func (dt DateTime) Time() Time     { return dt.time }
func (dt DateTime) Marker() Marker { return dt.marker }
func (dt DateTime) TzID() string   { return dt.tzid }

// Compare orders two DateTime values by their date and time fields alone,
// ignoring Marker/TzID: resolving a named zone to an offset is out of
// scope (spec.md §1), so this is only meaningful for values that share a
// zone context (both UTC, or both floating local times in the same zone).
// It returns -1, 0, or 1 as dt is before, equal to, or after other.
func (dt DateTime) Compare(other DateTime) int {
	if c := compareDate(dt.date, other.date); c != 0 {
		return c
	}
	return compareTime(dt.time, other.time)
}

func compareDate(a, b Date) int {
	if a.year.value != b.year.value {
		return cmpInt(a.year.value, b.year.value)
	}
	if a.month != b.month {
		return cmpInt(int(a.month), int(b.month))
	}
	return cmpInt(int(a.day), int(b.day))
}

func compareTime(a, b Time) int {
	if a.hour != b.hour {
		return cmpInt(int(a.hour), int(b.hour))
	}
	if a.minute != b.minute {
		return cmpInt(int(a.minute), int(b.minute))
	}
	return cmpInt(int(a.second), int(b.second))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// UtcOffset is a signed HH:MM[:SS] offset from UTC, per RFC 5545 §3.3.14 and
// RFC 3339. The sentinel "-00:00" token is rejected at the grammar layer
// (grammar.UtcOffset), not here: a Sign/Hour/Minute/NonLeapSecond triple of
// (Negative, 0, 0, 0) is structurally indistinguishable from a legitimate
// "value not yet known" placeholder some producers emit, so the grammar
// parser — which sees the original token — is the only place that can tell
// "-00:00" was written versus the value simply being zero after negation of
// a nonzero field. UtcOffset itself stores whatever Sign/Hour/Minute/Second
// it's given.
type UtcOffset struct {
	sign   Sign
	hour   Hour
	minute Minute
	second NonLeapSecond
}

// NewUtcOffset assembles a UtcOffset from validated components. Hour must be
// below 24 (a stricter bound than Hour's own 0..=23, which already holds).
func NewUtcOffset(sign Sign, hour Hour, minute Minute, second NonLeapSecond) UtcOffset {
	return UtcOffset{sign: sign, hour: hour, minute: minute, second: second}
}

func (o UtcOffset) Sign() Sign           { return o.sign }
func (o UtcOffset) Hour() Hour           { return o.hour }
func (o UtcOffset) Minute() Minute       { return o.minute }
func (o UtcOffset) Second() NonLeapSecond { return o.second }

// IsZero reports whether the offset denotes exactly UTC (00:00:00,
// regardless of sign).
func (o UtcOffset) IsZero() bool {
	return o.hour == 0 && o.minute == 0 && o.second == 0
}

// String renders the offset in "+HH:MM" or "+HH:MM:SS" form (seconds
// included only when nonzero), matching the RFC 3339 rendering the original
// Rust model's Display impl produces.
func (o UtcOffset) String() string {
	s := fmt.Sprintf("%c%02d:%02d", o.sign.Char(), o.hour.Value(), o.minute.Value())
	if o.second.Value() != 0 {
		s += fmt.Sprintf(":%02d", o.second.Value())
	}
	return s
}
