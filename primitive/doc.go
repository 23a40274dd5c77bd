// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package primitive holds the validated leaf types shared by the iCalendar
// (RFC 5545) and JSCalendar (RFC 8984) data models: calendar dates, clock
// times, durations, enums, and constrained strings. Every exported type's
// only public constructor validates all of its invariants; once built, a
// value is guaranteed to satisfy them for its whole lifetime.
package primitive
