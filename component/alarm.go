// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package component

import "strings"

// ValidatedAlarm is the result of validating a VALARM. Action records which
// ACTION-specific rule set was applied, so a caller can tell which of the
// Alarm*-prefixed defect flags are even meaningful for this instance.
type ValidatedAlarm struct {
	Raw     RawComponent
	Action  string
	Defects AlarmDefect
	Values  map[string]TypedValue
}

// ValidateAlarm applies VALARM's rule table: TRIGGER is always mandatory;
// ACTION is always mandatory and dispatches to one of three further rule
// sets (RFC 5545 §3.6.6): AUDIO has no further mandatory properties,
// DISPLAY requires DESCRIPTION, EMAIL requires DESCRIPTION, SUMMARY, and at
// least one ATTENDEE. DURATION and REPEAT must both be present or both
// absent.
func ValidateAlarm(raw RawComponent) ValidatedAlarm {
	var d AlarmDefect

	action, hasAction := raw.First("ACTION")
	if !hasAction {
		d.Add(AlarmMissingAction)
	}

	if raw.Count("TRIGGER") == 0 {
		d.Add(AlarmMissingTrigger)
	}

	hasDuration := raw.Count("DURATION") > 0
	hasRepeat := raw.Count("REPEAT") > 0
	if hasDuration != hasRepeat {
		d.Add(AlarmDurationAndRepeatMismatch)
	}

	actionName := ""
	if hasAction {
		actionName = strings.ToUpper(action.Value)
	}

	switch actionName {
	case "AUDIO":
		// no further mandatory properties
	case "DISPLAY":
		if raw.Count("DESCRIPTION") == 0 {
			d.Add(AlarmMissingDescriptionForDisplay)
		}
	case "EMAIL":
		if raw.Count("DESCRIPTION") == 0 {
			d.Add(AlarmMissingDescriptionForEmail)
		}
		if raw.Count("SUMMARY") == 0 {
			d.Add(AlarmMissingSummaryForEmail)
		}
		if raw.Count("ATTENDEE") == 0 {
			d.Add(AlarmMissingAttendeeForEmail)
		}
	case "":
		// already flagged MissingAction above
	default:
		d.Add(AlarmUnrecognizedAction)
	}

	values := make(map[string]TypedValue, len(raw.Properties))
	for _, prop := range raw.Properties {
		if v, err := ParsePropertyValue(prop); err == nil {
			values[strings.ToUpper(prop.Name)] = v
		}
	}

	return ValidatedAlarm{Raw: raw, Action: actionName, Defects: d, Values: values}
}
