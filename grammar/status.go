// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package grammar

import (
	"strings"
)

// EventStatus is RFC 5545 §3.8.1.11's STATUS value as it applies to VEVENT:
// TENTATIVE | CONFIRMED | CANCELLED.
type EventStatus int

const (
	EventStatusTentative EventStatus = iota
	EventStatusConfirmed
	EventStatusCancelled
)

var eventStatusTokens = map[string]EventStatus{
	"TENTATIVE": EventStatusTentative,
	"CONFIRMED": EventStatusConfirmed,
	"CANCELLED": EventStatusCancelled,
}

// EventStatusOf reports whether raw is a legal VEVENT STATUS value.
// Unlike Class or RequestStatus, STATUS's three subsets are disjoint
// fixed enumerations, not extensible tokens — RFC 5545 does not allow an
// X-name or IANA token here, so an unrecognized value is simply invalid
// rather than wrapped as Token's unknown case.
func EventStatusOf(raw string) (EventStatus, bool) {
	v, ok := eventStatusTokens[strings.ToUpper(raw)]
	return v, ok
}

// TodoStatus is STATUS as it applies to VTODO: NEEDS-ACTION | COMPLETED |
// IN-PROCESS | CANCELLED.
type TodoStatus int

const (
	TodoStatusNeedsAction TodoStatus = iota
	TodoStatusCompleted
	TodoStatusInProcess
	TodoStatusCancelled
)

var todoStatusTokens = map[string]TodoStatus{
	"NEEDS-ACTION": TodoStatusNeedsAction,
	"COMPLETED":    TodoStatusCompleted,
	"IN-PROCESS":   TodoStatusInProcess,
	"CANCELLED":    TodoStatusCancelled,
}

func TodoStatusOf(raw string) (TodoStatus, bool) {
	v, ok := todoStatusTokens[strings.ToUpper(raw)]
	return v, ok
}

// JournalStatus is STATUS as it applies to VJOURNAL: DRAFT | FINAL |
// CANCELLED.
type JournalStatus int

const (
	JournalStatusDraft JournalStatus = iota
	JournalStatusFinal
	JournalStatusCancelled
)

var journalStatusTokens = map[string]JournalStatus{
	"DRAFT":     JournalStatusDraft,
	"FINAL":     JournalStatusFinal,
	"CANCELLED": JournalStatusCancelled,
}

func JournalStatusOf(raw string) (JournalStatus, bool) {
	v, ok := journalStatusTokens[strings.ToUpper(raw)]
	return v, ok
}
