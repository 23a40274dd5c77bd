// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package primitive

// DurationKind distinguishes a Duration's two shapes. A Nominal duration
// carries calendar-sensitive units (weeks, days) that may span a variable
// wall-clock interval once anchored to a real date (a "day" can be 23, 24,
// or 25 hours across a DST transition); an Exact duration never does.
type DurationKind int

const (
	DurationNominal DurationKind = iota
	DurationExact
)

// ExactTime is the hours/minutes/seconds part of a duration, common to both
// the Nominal form's optional trailing time and the Exact form.
type ExactTime struct {
	Hours   uint32
	Minutes uint32
	Seconds uint32
}

// Duration is RFC 5545 §3.3.6's DURATION value: either a nominal
// weeks-or-days form (with an optional trailing exact time), or a pure
// exact-time form. The two shapes are mutually exclusive in the grammar
// (PnW never combines with anything else), which Duration's two
// constructors enforce by construction rather than by a runtime check.
type Duration struct {
	kind  DurationKind
	weeks uint32
	days  uint32
	exact ExactTime
	// hasExact distinguishes "P1D" (no trailing time) from a nominal
	// duration that also has an exact component, e.g. "P1DT1H".
	hasExact bool
}

// NewNominalDuration builds a Nominal duration from weeks, or from days plus
// an optional trailing exact time. The weeks form and the days/time form are
// mutually exclusive per RFC 5545's grammar; callers that parsed a "PnW"
// token should pass weeks with days=0 and exact=nil, and vice versa.
func NewNominalDuration(weeks, days uint32, exact *ExactTime) Duration {
	d := Duration{kind: DurationNominal, weeks: weeks, days: days}
	if exact != nil {
		d.exact = *exact
		d.hasExact = true
	}
	return d
}

// NewExactDuration builds an Exact duration from an hours/minutes/seconds
// triple with no calendar-sensitive component.
func NewExactDuration(t ExactTime) Duration {
	return Duration{kind: DurationExact, exact: t, hasExact: true}
}

func (d Duration) Kind() DurationKind { return d.kind }
func (d Duration) Weeks() uint32      { return d.weeks }
func (d Duration) Days() uint32       { return d.days }

// ExactTime returns the hours/minutes/seconds component and whether one is
// present at all (a bare "P1D" nominal duration has none).
func (d Duration) ExactTime() (ExactTime, bool) { return d.exact, d.hasExact }

// IsZero reports whether the duration denotes no elapsed time at all.
func (d Duration) IsZero() bool {
	return d.weeks == 0 && d.days == 0 && d.exact == (ExactTime{})
}

// Nanoseconds gives the duration's length assuming every nominal unit takes
// its canonical fixed length (7*24h per week, 24h per day). This is a
// convenience for callers that don't need calendar-accurate anchoring (which
// would require a concrete start Date, outside this package's scope); it is
// exact for an Exact-kind Duration.
func (d Duration) Nanoseconds() int64 {
	const (
		nsPerSecond = int64(1e9)
		nsPerMinute = 60 * nsPerSecond
		nsPerHour   = 60 * nsPerMinute
		nsPerDay    = 24 * nsPerHour
		nsPerWeek   = 7 * nsPerDay
	)
	total := int64(d.weeks)*nsPerWeek + int64(d.days)*nsPerDay
	total += int64(d.exact.Hours)*nsPerHour + int64(d.exact.Minutes)*nsPerMinute + int64(d.exact.Seconds)*nsPerSecond
	return total
}

// SignedDuration pairs a Sign with a Duration, matching RFC 5545's
// `["+" / "-"] "P" ...` grammar where the sign applies to the whole value.
type SignedDuration struct {
	Sign     Sign
	Duration Duration
}

// Nanoseconds applies Sign to Duration.Nanoseconds.
func (s SignedDuration) Nanoseconds() int64 {
	n := s.Duration.Nanoseconds()
	if s.Sign == Negative {
		return -n
	}
	return n
}
