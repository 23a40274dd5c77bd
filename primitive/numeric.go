// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package primitive

import "fmt"

// Integer is RFC 5545 §3.3.8's signed 32-bit INTEGER value.
type Integer int32

// NewInteger validates raw fits in a signed 32-bit range.
func NewInteger(raw int64) (Integer, error) {
	if raw < -2147483648 || raw > 2147483647 {
		return 0, fmt.Errorf("%w: integer %d", ErrOutOfRange, raw)
	}
	return Integer(raw), nil
}

func (i Integer) Value() int32 { return int32(i) }

// PositiveInteger is a nonzero value fitting in an unsigned 32-bit range
// (RFC 5545's "1*DIGIT" grammar production read as a u32 excluding zero).
type PositiveInteger uint32

// NewPositiveInteger validates raw is in 1..=2^32-1.
func NewPositiveInteger(raw uint64) (PositiveInteger, error) {
	if raw == 0 || raw > 4294967295 {
		return 0, fmt.Errorf("%w: positive integer %d", ErrOutOfRange, raw)
	}
	return PositiveInteger(raw), nil
}

func (p PositiveInteger) Value() uint32 { return uint32(p) }

// CompletionPercentage is RFC 5545 §3.8.1.8's PERCENT-COMPLETE value, 0..=100.
type CompletionPercentage uint8

// NewCompletionPercentage validates raw is in 0..=100.
func NewCompletionPercentage(raw int) (CompletionPercentage, error) {
	if raw < 0 || raw > 100 {
		return 0, fmt.Errorf("%w: completion percentage %d", ErrOutOfRange, raw)
	}
	return CompletionPercentage(raw), nil
}

func (c CompletionPercentage) Value() int { return int(c) }

// Priority is RFC 5545 §3.8.1.9's PRIORITY value, 0..=9. Zero means
// "undefined"; 1-4 is high, 5 is medium, 6-9 is low.
type Priority uint8

// NewPriority validates raw is in 0..=9.
func NewPriority(raw int) (Priority, error) {
	if raw < 0 || raw > 9 {
		return 0, fmt.Errorf("%w: priority %d", ErrOutOfRange, raw)
	}
	return Priority(raw), nil
}

func (p Priority) Value() int { return int(p) }

// PriorityClass buckets a Priority per RFC 5545 §3.8.1.9.
type PriorityClass int

const (
	PriorityUndefined PriorityClass = iota
	PriorityHigh
	PriorityMedium
	PriorityLow
)

// Class classifies p into PriorityUndefined/High/Medium/Low.
func (p Priority) Class() PriorityClass {
	switch {
	case p == 0:
		return PriorityUndefined
	case p <= 4:
		return PriorityHigh
	case p == 5:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Geo is RFC 5545 §3.8.1.6's latitude/longitude pair. Both fields are
// IEEE-754 doubles; this spec follows the forgiving bound of |lat|<91,
// |lon|<181 rather than the strict geographic range, matching spec.md §4.G.
type Geo struct {
	lat float64
	lon float64
}

// NewGeo validates lat/lon against the forgiving ±91/±181 bound.
func NewGeo(lat, lon float64) (Geo, error) {
	if lat <= -91 || lat >= 91 {
		return Geo{}, fmt.Errorf("%w: latitude %g", ErrOutOfRange, lat)
	}
	if lon <= -181 || lon >= 181 {
		return Geo{}, fmt.Errorf("%w: longitude %g", ErrOutOfRange, lon)
	}
	return Geo{lat: lat, lon: lon}, nil
}

func (g Geo) Latitude() float64  { return g.lat }
func (g Geo) Longitude() float64 { return g.lon }
