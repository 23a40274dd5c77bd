// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package grammar

import (
	"strconv"
	"strings"

	"github.com/calicogo/calico/combinator"
	"github.com/calicogo/calico/primitive"
)

// Frequency is RFC 5545 §3.3.10's FREQ value. Unlike CLASS/STATUS/ACTION,
// FREQ is a closed enumeration — RFC 5545's ABNF gives it no iana-token /
// x-name escape hatch — so it is a plain Go enum, not an ExtensibleEnum
// Token.
type Frequency int

const (
	FrequencyUnspecified Frequency = iota
	FrequencySecondly
	FrequencyMinutely
	FrequencyHourly
	FrequencyDaily
	FrequencyWeekly
	FrequencyMonthly
	FrequencyYearly
)

var freqTokens = map[string]Frequency{
	"SECONDLY": FrequencySecondly,
	"MINUTELY": FrequencyMinutely,
	"HOURLY":   FrequencyHourly,
	"DAILY":    FrequencyDaily,
	"WEEKLY":   FrequencyWeekly,
	"MONTHLY":  FrequencyMonthly,
	"YEARLY":   FrequencyYearly,
}

// ByRuleKind names each BYxxx part RRULE grammar admits, for the
// limit/expand/forbidden table.
type ByRuleKind int

const (
	BySecondKind ByRuleKind = iota
	ByMinuteKind
	ByHourKind
	ByDayKind
	ByMonthDayKind
	ByYearDayKind
	ByWeekNoKind
	ByMonthKind
	BySetPosKind
)

// forbiddenByFreq is the closed subset of RFC 5545 p.44's limit/expand
// table this package enforces: which BYxxx parts are outright forbidden
// under a given FREQ. The Limit-vs-Expand distinction governs how
// recurrence instances get generated, which is out of this module's scope
// (spec.md §1 — no recurrence expansion); only the forbidden half is a
// parse-time admissibility question, so that is the half encoded here.
var forbiddenByFreq = map[Frequency]map[ByRuleKind]bool{
	FrequencySecondly: {ByWeekNoKind: true},
	FrequencyMinutely: {ByWeekNoKind: true},
	FrequencyHourly:   {ByWeekNoKind: true},
	FrequencyDaily:    {ByWeekNoKind: true, ByYearDayKind: true},
	FrequencyWeekly:   {ByWeekNoKind: true, ByYearDayKind: true, ByMonthDayKind: true},
	FrequencyMonthly:  {ByWeekNoKind: true, ByYearDayKind: true},
	FrequencyYearly:   {},
}

// ByDayEntry is one BYDAY element: an optional signed ordinal ("2" in
// "2MO", "-1" in "-1FR") and the weekday it qualifies.
type ByDayEntry struct {
	Ordinal    int
	HasOrdinal bool
	Weekday    primitive.Weekday
}

// signedSet is a dense bitset over a signed, zero-excluding range
// [-max, -1] ∪ [1, max], backing ByMonthDay/ByYearDay/ByWeekNo.
type signedSet struct {
	max   int
	words []uint64
}

func newSignedSet(max int) signedSet {
	return signedSet{max: max, words: make([]uint64, (2*max+63)/64)}
}

func (s *signedSet) index(v int) (int, bool) {
	if v == 0 || v < -s.max || v > s.max {
		return 0, false
	}
	if v > 0 {
		return v - 1, true
	}
	return s.max + (-v) - 1, true
}

func (s *signedSet) add(v int) bool {
	idx, ok := s.index(v)
	if !ok {
		return false
	}
	s.words[idx/64] |= 1 << uint(idx%64)
	return true
}

func (s signedSet) values() []int {
	var out []int
	for v := -s.max; v <= s.max; v++ {
		if v == 0 {
			continue
		}
		idx, _ := s.index(v)
		if s.words[idx/64]&(1<<uint(idx%64)) != 0 {
			out = append(out, v)
		}
	}
	return out
}

// unsignedSet is a dense bitset over [lo, hi].
type unsignedSet struct {
	lo, hi int
	words  []uint64
}

func newUnsignedSet(lo, hi int) unsignedSet {
	return unsignedSet{lo: lo, hi: hi, words: make([]uint64, (hi-lo+1+63)/64)}
}

func (s *unsignedSet) add(v int) bool {
	if v < s.lo || v > s.hi {
		return false
	}
	idx := v - s.lo
	s.words[idx/64] |= 1 << uint(idx%64)
	return true
}

func (s unsignedSet) values() []int {
	var out []int
	for v := s.lo; v <= s.hi; v++ {
		idx := v - s.lo
		if s.words[idx/64]&(1<<uint(idx%64)) != 0 {
			out = append(out, v)
		}
	}
	return out
}

// RRule is a parsed RFC 5545 §3.3.10 recurrence rule: a Frequency plus the
// by-rules associated with it, stored as the dense bitsets/lists spec.md
// §3.4 names.
type RRule struct {
	Frequency Frequency
	Interval  int
	Count     *int
	Until     *primitive.DateTime

	bySecond   unsignedSet
	byMinute   unsignedSet
	byHour     unsignedSet
	byMonth    unsignedSet
	byMonthDay signedSet
	byYearDay  signedSet
	byWeekNo   signedSet
	byDay      []ByDayEntry
	bySetPos   []int
}

func newRRule() *RRule {
	return &RRule{
		Interval:   1,
		bySecond:   newUnsignedSet(0, 60),
		byMinute:   newUnsignedSet(0, 59),
		byHour:     newUnsignedSet(0, 23),
		byMonth:    newUnsignedSet(1, 12),
		byMonthDay: newSignedSet(31),
		byYearDay:  newSignedSet(366),
		byWeekNo:   newSignedSet(53),
	}
}

func (r *RRule) BySecond() []int     { return r.bySecond.values() }
func (r *RRule) ByMinute() []int     { return r.byMinute.values() }
func (r *RRule) ByHour() []int       { return r.byHour.values() }
func (r *RRule) ByMonth() []int      { return r.byMonth.values() }
func (r *RRule) ByMonthDay() []int   { return r.byMonthDay.values() }
func (r *RRule) ByYearDay() []int    { return r.byYearDay.values() }
func (r *RRule) ByWeekNo() []int     { return r.byWeekNo.values() }
func (r *RRule) ByDay() []ByDayEntry { return r.byDay }
func (r *RRule) BySetPos() []int     { return r.bySetPos }

// ParseRRule parses an RFC 5545 RRULE value: ";"-separated "NAME=value"
// parts. FREQ is mandatory; each part name may appear at most once
// (case-insensitively); COUNT and UNTIL are mutually exclusive; an INTERVAL
// of zero or less is rejected; each BYxxx value is checked against
// forbiddenByFreq.
// Grounded on rrule/rrule.go's key=value loop, generalized to bitset
// storage and table-driven admissibility.
func ParseRRule(raw string) (*RRule, error) {
	rr := newRRule()
	seen := make(map[string]bool)

	for _, part := range strings.Split(raw, ";") {
		if part == "" {
			continue
		}
		tag, value, found := strings.Cut(part, "=")
		if !found {
			return nil, combinator.NewParseError(combinator.Syntactic, 0, "RRULE part must have the form NAME=value")
		}
		tag = strings.ToUpper(tag)
		if seen[tag] {
			return nil, ErrRRuleDuplicatePart
		}
		seen[tag] = true

		switch tag {
		case "FREQ":
			f, ok := freqTokens[strings.ToUpper(value)]
			if !ok {
				return nil, ErrRRuleFreqRequired
			}
			rr.Frequency = f
		case "INTERVAL":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, err
			}
			if n <= 0 {
				return nil, ErrRRuleZeroInterval
			}
			rr.Interval = n
		case "COUNT":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, err
			}
			rr.Count = &n
		case "UNTIL":
			dt, err := DateTime(value)
			if err != nil {
				return nil, err
			}
			rr.Until = &dt
		case "BYSECOND":
			if err := fillUnsigned(&rr.bySecond, value); err != nil {
				return nil, err
			}
		case "BYMINUTE":
			if err := fillUnsigned(&rr.byMinute, value); err != nil {
				return nil, err
			}
		case "BYHOUR":
			if err := fillUnsigned(&rr.byHour, value); err != nil {
				return nil, err
			}
		case "BYMONTH":
			if err := fillUnsigned(&rr.byMonth, value); err != nil {
				return nil, err
			}
		case "BYMONTHDAY":
			if err := fillSigned(&rr.byMonthDay, value); err != nil {
				return nil, err
			}
		case "BYYEARDAY":
			if err := fillSigned(&rr.byYearDay, value); err != nil {
				return nil, err
			}
		case "BYWEEKNO":
			if err := fillSigned(&rr.byWeekNo, value); err != nil {
				return nil, err
			}
		case "BYSETPOS":
			for _, tok := range strings.Split(value, ",") {
				n, err := strconv.Atoi(tok)
				if err != nil {
					return nil, err
				}
				if n == 0 {
					return nil, ErrRRuleForbiddenPart
				}
				rr.bySetPos = append(rr.bySetPos, n)
			}
		case "BYDAY":
			for _, tok := range strings.Split(value, ",") {
				entry, err := parseByDay(tok)
				if err != nil {
					return nil, err
				}
				rr.byDay = append(rr.byDay, entry)
			}
		default:
			// unrecognized part name: ignored rather than rejected, matching
			// the extensible-enum leniency spec.md §4.G applies elsewhere.
		}
	}

	if rr.Frequency == FrequencyUnspecified {
		return nil, ErrRRuleFreqRequired
	}
	if rr.Count != nil && rr.Until != nil {
		return nil, ErrRRuleCountAndUntil
	}

	forbidden := forbiddenByFreq[rr.Frequency]
	if forbidden[ByWeekNoKind] && len(rr.byWeekNo.values()) > 0 {
		return nil, ErrRRuleForbiddenPart
	}
	if forbidden[ByYearDayKind] && len(rr.byYearDay.values()) > 0 {
		return nil, ErrRRuleForbiddenPart
	}
	if forbidden[ByMonthDayKind] && len(rr.byMonthDay.values()) > 0 {
		return nil, ErrRRuleForbiddenPart
	}

	return rr, nil
}

func fillUnsigned(s *unsignedSet, value string) error {
	for _, tok := range strings.Split(value, ",") {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return err
		}
		if !s.add(n) {
			return ErrRRuleForbiddenPart
		}
	}
	return nil
}

func fillSigned(s *signedSet, value string) error {
	for _, tok := range strings.Split(value, ",") {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return err
		}
		if !s.add(n) {
			return ErrRRuleForbiddenPart
		}
	}
	return nil
}

// parseByDay parses one BYDAY element, e.g. "MO", "2MO", "-1FR".
func parseByDay(tok string) (ByDayEntry, error) {
	if tok == "" {
		return ByDayEntry{}, ErrRRuleForbiddenPart
	}
	i := 0
	if tok[0] == '+' || tok[0] == '-' {
		i++
	}
	for i < len(tok) && isDigit(tok[i]) {
		i++
	}
	wk, err := primitive.ParseWeekday(tok[i:])
	if err != nil {
		return ByDayEntry{}, err
	}
	if i == 0 {
		return ByDayEntry{Weekday: wk}, nil
	}
	n, err := strconv.Atoi(tok[:i])
	if err != nil {
		return ByDayEntry{}, err
	}
	return ByDayEntry{Ordinal: n, HasOrdinal: true, Weekday: wk}, nil
}
