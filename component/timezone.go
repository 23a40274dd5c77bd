// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package component

import "strings"

// ValidatedTimezone is the result of validating a VTIMEZONE.
type ValidatedTimezone struct {
	Raw      RawComponent
	Defects  TimezoneDefect
	Standard []ValidatedTzRule
	Daylight []ValidatedTzRule
}

// ValidatedTzRule is the result of validating one STANDARD or DAYLIGHT
// child of a VTIMEZONE.
type ValidatedTzRule struct {
	Raw     RawComponent
	Defects TimezoneDefect
	Values  map[string]TypedValue
}

// ValidateTimezone applies VTIMEZONE's rule table: TZID is mandatory, and
// every STANDARD/DAYLIGHT child must itself carry DTSTART, TZOFFSETFROM,
// and TZOFFSETTO.
func ValidateTimezone(raw RawComponent) ValidatedTimezone {
	var d TimezoneDefect
	if raw.Count("TZID") == 0 {
		d.Add(TimezoneMissingTzid)
	}

	var standard, daylight []ValidatedTzRule
	for _, ch := range raw.ChildrenOfKind("STANDARD") {
		standard = append(standard, validateTzRule(ch))
	}
	for _, ch := range raw.ChildrenOfKind("DAYLIGHT") {
		daylight = append(daylight, validateTzRule(ch))
	}

	return ValidatedTimezone{Raw: raw, Defects: d, Standard: standard, Daylight: daylight}
}

func validateTzRule(raw RawComponent) ValidatedTzRule {
	var d TimezoneDefect
	if raw.Count("DTSTART") == 0 {
		d.Add(TimezoneMissingDtStart)
	}
	if raw.Count("TZOFFSETFROM") == 0 {
		d.Add(TimezoneMissingOffsetFrom)
	}
	if raw.Count("TZOFFSETTO") == 0 {
		d.Add(TimezoneMissingOffsetTo)
	}
	values := make(map[string]TypedValue, len(raw.Properties))
	for _, prop := range raw.Properties {
		if v, err := ParsePropertyValue(prop); err == nil {
			values[strings.ToUpper(prop.Name)] = v
		}
	}
	return ValidatedTzRule{Raw: raw, Defects: d, Values: values}
}
