// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package component

import (
	"strings"

	"github.com/calicogo/calico/grammar"
)

// ValidatedEvent is the result of validating a VEVENT: the raw component,
// unchanged, plus every defect the scan found. ChildCounts and Values cache
// the typed-component-model outputs spec.md §4.V names: a count of each
// subcomponent kind directly nested under this VEVENT, and every property
// value that decoded successfully against its RFC-declared grammar.
type ValidatedEvent struct {
	Raw         RawComponent
	Defects     EventDefect
	ChildCounts map[string]int
	Values      map[string]TypedValue
}

// eventNestingOrder lists the subcomponent kinds a VEVENT may carry, in the
// order RFC 9073 expects them to appear when more than one is present:
// VALARM blocks before the RFC 9073 extensions. A VEVENT that mixes them
// out of this order is flagged BadlyOrderedSubcomponents, not rejected.
var eventNestingOrder = []string{"VALARM", "VLOCATION", "VRESOURCE", "VPARTICIPANT"}

var eventAllowedChildKinds = map[string]bool{
	"VALARM":       true,
	"VLOCATION":    true,
	"VRESOURCE":    true,
	"VPARTICIPANT": true,
}

// ValidateEvent checks each rule with its own raw.Count/raw.First lookup,
// so the property list is walked once per rule rather than in a single
// pass; the subcomponents are walked once for the kind counts. It
// accumulates a defect flag for every rule it finds broken, and never
// rejects the input: the returned ValidatedEvent always carries raw
// untouched alongside whatever defects were found.
func ValidateEvent(raw RawComponent) ValidatedEvent {
	var d EventDefect

	if raw.Count("UID") == 0 {
		d.Add(MissingUid)
	} else if raw.Count("UID") > 1 {
		d.Add(DuplicateUid)
	}

	if raw.Count("DTSTAMP") == 0 {
		d.Add(MissingDtStamp)
	} else if raw.Count("DTSTAMP") > 1 {
		d.Add(DuplicateDtStamp)
	}

	if raw.Count("SEQUENCE") > 1 {
		d.Add(DuplicateSequence)
	}

	hasDtEnd := raw.Count("DTEND") > 0
	hasDuration := raw.Count("DURATION") > 0
	if hasDtEnd && hasDuration {
		d.Add(DtEndAndDuration)
	}

	if hasDtEnd {
		dtStart, hasStart := raw.First("DTSTART")
		dtEnd, _ := raw.First("DTEND")
		if hasStart {
			startType := valueType(dtStart)
			endType := valueType(dtEnd)
			if startType != endType {
				d.Add(DtEndValueTypeMismatch)
			}
		}
	}

	if status, ok := raw.First("STATUS"); ok {
		if _, valid := grammar.EventStatusOf(status.Value); !valid {
			d.Add(InvalidStatusValue)
		}
	}

	if geo, ok := raw.First("GEO"); ok {
		if _, err := grammar.Geo(geo.Value); err != nil {
			d.Add(InvalidGeoValue)
		}
	}

	childCounts := make(map[string]int, len(raw.Children))
	for _, child := range raw.Children {
		kind := strings.ToUpper(child.Kind)
		childCounts[kind]++
		if !eventAllowedChildKinds[kind] {
			d.Add(ForbiddenSubcomponentKind)
		}
	}
	if !inNestingOrder(raw.Children, eventNestingOrder) {
		d.Add(BadlyOrderedSubcomponents)
	}

	values := make(map[string]TypedValue, len(raw.Properties))
	for _, prop := range raw.Properties {
		if v, err := ParsePropertyValue(prop); err == nil {
			values[strings.ToUpper(prop.Name)] = v
		}
	}

	return ValidatedEvent{Raw: raw, Defects: d, ChildCounts: childCounts, Values: values}
}

// valueType returns the upper-cased VALUE parameter of prop, defaulting to
// "DATE-TIME" per RFC 5545 §3.2.20 when the parameter is absent.
func valueType(prop RawProperty) string {
	if v := prop.Param("VALUE"); len(v) > 0 {
		return strings.ToUpper(v[0])
	}
	return "DATE-TIME"
}

// inNestingOrder reports whether the kinds of children appear in an order
// consistent with order (children of a kind not listed in order are
// ignored for this check; only relative order among listed kinds matters).
func inNestingOrder(children []RawComponent, order []string) bool {
	rank := make(map[string]int, len(order))
	for i, k := range order {
		rank[k] = i
	}
	last := -1
	for _, ch := range children {
		r, ok := rank[strings.ToUpper(ch.Kind)]
		if !ok {
			continue
		}
		if r < last {
			return false
		}
		last = r
	}
	return true
}
