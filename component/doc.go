// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package component validates a raw iCalendar component against its
// per-kind rule table (mandatory/at-most-once properties, DTEND/DURATION
// mutual exclusion, VALARM action dispatch, subcomponent nesting) without
// ever rejecting input outright: every defect found is recorded as a bit
// in a fixed-width flag set, and the raw properties/subcomponents are
// always preserved, so a caller can inspect what's wrong instead of losing
// the data.
//
// This generalizes the teacher's parse package, which returns the first
// error encountered (ErrMissingEventUIDProperty, and so on) and stops.
// Here the full scan always runs and every applicable rule contributes a
// flag to the result.
package component
