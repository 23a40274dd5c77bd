// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package component

import (
	"strings"

	"github.com/calicogo/calico/grammar"
)

// ValidatedTodo is the result of validating a VTODO, caching every property
// value that decoded successfully against its RFC-declared grammar.
type ValidatedTodo struct {
	Raw     RawComponent
	Defects TodoDefect
	Values  map[string]TypedValue
}

// ValidateTodo applies VTODO's rule table: UID mandatory and at most once,
// DUE and DURATION mutually exclusive, DUE's VALUE type must agree with
// DTSTART's when both are present, STATUS restricted to VTODO's subset,
// PERCENT-COMPLETE bounded 0..100.
func ValidateTodo(raw RawComponent) ValidatedTodo {
	var d TodoDefect

	if raw.Count("UID") == 0 {
		d.Add(TodoMissingUid)
	} else if raw.Count("UID") > 1 {
		d.Add(TodoDuplicateUid)
	}

	hasDue := raw.Count("DUE") > 0
	hasDuration := raw.Count("DURATION") > 0
	if hasDue && hasDuration {
		d.Add(TodoDueAndDuration)
	}

	if hasDue {
		dtStart, hasStart := raw.First("DTSTART")
		due, _ := raw.First("DUE")
		if hasStart && valueType(dtStart) != valueType(due) {
			d.Add(TodoDueValueTypeMismatch)
		}
	}

	if status, ok := raw.First("STATUS"); ok {
		if _, valid := grammar.TodoStatusOf(status.Value); !valid {
			d.Add(TodoInvalidStatusValue)
		}
	}

	if pc, ok := raw.First("PERCENT-COMPLETE"); ok {
		n, err := grammar.Integer(pc.Value)
		if err != nil || n.Value() < 0 || n.Value() > 100 {
			d.Add(TodoInvalidPercentComplete)
		}
	}

	values := make(map[string]TypedValue, len(raw.Properties))
	for _, prop := range raw.Properties {
		if v, err := ParsePropertyValue(prop); err == nil {
			values[strings.ToUpper(prop.Name)] = v
		}
	}

	return ValidatedTodo{Raw: raw, Defects: d, Values: values}
}
