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

func TestValidateTimezoneWellFormed(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VTIMEZONE",
		Properties: []component.RawProperty{
			{Name: "TZID", Value: "America/New_York"},
		},
		Children: []component.RawComponent{
			{
				Kind: "STANDARD",
				Properties: []component.RawProperty{
					{Name: "DTSTART", Value: "19701101T020000"},
					{Name: "TZOFFSETFROM", Value: "-0400"},
					{Name: "TZOFFSETTO", Value: "-0500"},
				},
			},
		},
	}
	v := component.ValidateTimezone(raw)
	assert.True(t, v.Defects.Empty())
	require.Len(t, v.Standard, 1)
	assert.True(t, v.Standard[0].Defects.Empty())
}

func TestValidateTimezoneMissingTzid(t *testing.T) {
	v := component.ValidateTimezone(component.RawComponent{Kind: "VTIMEZONE"})
	assert.True(t, v.Defects.Has(component.TimezoneMissingTzid))
}

func TestValidateTimezoneRuleMissingOffsets(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VTIMEZONE",
		Properties: []component.RawProperty{
			{Name: "TZID", Value: "America/New_York"},
		},
		Children: []component.RawComponent{
			{Kind: "DAYLIGHT"},
		},
	}
	v := component.ValidateTimezone(raw)
	require.Len(t, v.Daylight, 1)
	assert.True(t, v.Daylight[0].Defects.Has(component.TimezoneMissingDtStart))
	assert.True(t, v.Daylight[0].Defects.Has(component.TimezoneMissingOffsetFrom))
	assert.True(t, v.Daylight[0].Defects.Has(component.TimezoneMissingOffsetTo))
}
