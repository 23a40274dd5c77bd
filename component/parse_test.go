// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calicogo/calico/component"
)

// icalText is a VCALENDAR with one VEVENT nesting one VALARM, a folded
// DESCRIPTION line, a quoted-string parameter value, and a TZID-qualified
// DTSTART, exercising the fold/param/nesting machinery in one pass.
const icalText = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//calico//test//EN\r\n" +
	"METHOD:PUBLISH\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:event-1@example.com\r\n" +
	"DTSTAMP:20240115T130000Z\r\n" +
	"DTSTART;TZID=America/New_York:20240115T090000\r\n" +
	"SUMMARY:Team sync\r\n" +
	"DESCRIPTION:This description wraps across a fol\r\n" +
	" ded continuation line.\r\n" +
	"ATTENDEE;CN=\"Alice A, Jones\";ROLE=REQ-PARTICIPANT:mailto:alice@example.com\r\n" +
	"BEGIN:VALARM\r\n" +
	"ACTION:DISPLAY\r\n" +
	"DESCRIPTION:Reminder\r\n" +
	"TRIGGER:-PT15M\r\n" +
	"END:VALARM\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParseComponentsBuildsNestedTree(t *testing.T) {
	top, err := component.ParseComponents([]byte(icalText))
	require.NoError(t, err)
	require.Len(t, top, 1)

	cal := top[0]
	assert.Equal(t, "VCALENDAR", cal.Kind)
	assert.Equal(t, 1, cal.Count("VERSION"))

	method, ok := cal.First("METHOD")
	require.True(t, ok)
	assert.Equal(t, "PUBLISH", method.Value)

	events := cal.ChildrenOfKind("VEVENT")
	require.Len(t, events, 1)
	event := events[0]

	desc, ok := event.First("DESCRIPTION")
	require.True(t, ok)
	assert.Equal(t, "This description wraps across a folded continuation line.", desc.Value)

	attendee, ok := event.First("ATTENDEE")
	require.True(t, ok)
	assert.Equal(t, []string{"Alice A, Jones"}, attendee.Param("CN"))
	assert.Equal(t, []string{"REQ-PARTICIPANT"}, attendee.Param("ROLE"))
	assert.Equal(t, "mailto:alice@example.com", attendee.Value)

	alarms := event.ChildrenOfKind("VALARM")
	require.Len(t, alarms, 1)
	action, ok := alarms[0].First("ACTION")
	require.True(t, ok)
	assert.Equal(t, "DISPLAY", action.Value)
}

func TestParseAndValidateRealInput(t *testing.T) {
	v, err := component.ParseAndValidate([]byte(
		"BEGIN:VEVENT\r\n" +
			"UID:event-1@example.com\r\n" +
			"DTSTAMP:20240115T130000Z\r\n" +
			"DTSTART:20240115T130000Z\r\n" +
			"DURATION:PT1H\r\n" +
			"END:VEVENT\r\n"))
	require.NoError(t, err)
	require.NotNil(t, v.Event)
	assert.True(t, v.Event.Defects.Empty())

	dtStart, ok := v.Event.Values["DTSTART"]
	require.True(t, ok)
	assert.Equal(t, component.PropValueDateTime, dtStart.Kind)
	assert.Equal(t, 2024, dtStart.DateTime.Date().Year().Value())

	dur, ok := v.Event.Values["DURATION"]
	require.True(t, ok)
	assert.Equal(t, component.PropValueDuration, dur.Kind)
}

func TestParseComponentsUnterminatedComponentFails(t *testing.T) {
	_, err := component.ParseComponents([]byte("BEGIN:VEVENT\r\nUID:x\r\n"))
	assert.ErrorIs(t, err, component.ErrUnterminatedComponent)
}

func TestParseComponentsUnmatchedEndFails(t *testing.T) {
	_, err := component.ParseComponents([]byte("END:VEVENT\r\n"))
	assert.ErrorIs(t, err, component.ErrUnmatchedEnd)
}

func TestParsePropertyValueDispatchesByStaticProp(t *testing.T) {
	v, err := component.ParsePropertyValue(component.RawProperty{Name: "DURATION", Value: "PT1H30M"})
	require.NoError(t, err)
	assert.Equal(t, component.PropValueDuration, v.Kind)

	v, err = component.ParsePropertyValue(component.RawProperty{Name: "METHOD", Value: "REQUEST"})
	require.NoError(t, err)
	assert.Equal(t, component.PropValueMethod, v.Kind)

	v, err = component.ParsePropertyValue(component.RawProperty{Name: "COLOR", Value: "rebeccapurple"})
	require.NoError(t, err)
	assert.Equal(t, component.PropValueColor, v.Kind)

	v, err = component.ParsePropertyValue(component.RawProperty{Name: "SUMMARY", Value: "plain text"})
	require.NoError(t, err)
	assert.Equal(t, component.PropValueText, v.Kind)
}

func TestParseParamValueTypesTzidAndFmttype(t *testing.T) {
	tz, err := component.ParseParamValue("TZID", "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, component.ParamValueTzId, tz.Kind)
	assert.Equal(t, "America/New_York", tz.TzId.Value())

	ft, err := component.ParseParamValue("FMTTYPE", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, component.ParamValueFormatType, ft.Kind)
	assert.Equal(t, "text", ft.FormatType.TypePart())
}
