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

func TestValidateEventWellFormedIsEmpty(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VEVENT",
		Properties: []component.RawProperty{
			{Name: "UID", Value: "event-1@example.com"},
			{Name: "DTSTAMP", Value: "20240115T130000Z"},
			{Name: "DTSTART", Value: "20240115T130000Z"},
		},
	}
	v := component.ValidateEvent(raw)
	assert.True(t, v.Defects.Empty())
}

// TestValidateEventMissingUid is spec.md §8's concrete scenario 5: a VEVENT
// with DTSTAMP and DTSTART but no UID.
func TestValidateEventMissingUid(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VEVENT",
		Properties: []component.RawProperty{
			{Name: "DTSTAMP", Value: "20240115T130000Z"},
			{Name: "DTSTART", Value: "20240115T130000Z"},
		},
	}
	v := component.ValidateEvent(raw)
	assert.Equal(t, []string{"MissingUid"}, v.Defects.Flags())

	_, ok := v.Raw.First("DTSTAMP")
	assert.True(t, ok)
	_, ok = v.Raw.First("DTSTART")
	assert.True(t, ok)
}

func TestValidateEventDtEndAndDurationBothPreserved(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VEVENT",
		Properties: []component.RawProperty{
			{Name: "UID", Value: "event-2@example.com"},
			{Name: "DTSTAMP", Value: "20240115T130000Z"},
			{Name: "DTSTART", Value: "20240115T130000Z"},
			{Name: "DTEND", Value: "20240115T140000Z"},
			{Name: "DURATION", Value: "PT1H"},
		},
	}
	v := component.ValidateEvent(raw)
	assert.True(t, v.Defects.Has(component.DtEndAndDuration))

	end, ok := v.Raw.First("DTEND")
	require.True(t, ok)
	assert.Equal(t, "20240115T140000Z", end.Value)
	dur, ok := v.Raw.First("DURATION")
	require.True(t, ok)
	assert.Equal(t, "PT1H", dur.Value)
}

func TestValidateEventDuplicateUid(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VEVENT",
		Properties: []component.RawProperty{
			{Name: "UID", Value: "a@example.com"},
			{Name: "UID", Value: "b@example.com"},
			{Name: "DTSTAMP", Value: "20240115T130000Z"},
		},
	}
	v := component.ValidateEvent(raw)
	assert.True(t, v.Defects.Has(component.DuplicateUid))
}

func TestValidateEventDtEndValueTypeMismatch(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VEVENT",
		Properties: []component.RawProperty{
			{Name: "UID", Value: "a@example.com"},
			{Name: "DTSTAMP", Value: "20240115T130000Z"},
			{Name: "DTSTART", Value: "20240115", Params: []component.RawParam{{Name: "VALUE", Values: []string{"DATE"}}}},
			{Name: "DTEND", Value: "20240115T140000Z"},
		},
	}
	v := component.ValidateEvent(raw)
	assert.True(t, v.Defects.Has(component.DtEndValueTypeMismatch))
}

func TestValidateEventInvalidStatus(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VEVENT",
		Properties: []component.RawProperty{
			{Name: "UID", Value: "a@example.com"},
			{Name: "DTSTAMP", Value: "20240115T130000Z"},
			{Name: "STATUS", Value: "BOGUS"},
		},
	}
	v := component.ValidateEvent(raw)
	assert.True(t, v.Defects.Has(component.InvalidStatusValue))
}

func TestValidateEventInvalidGeo(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VEVENT",
		Properties: []component.RawProperty{
			{Name: "UID", Value: "a@example.com"},
			{Name: "DTSTAMP", Value: "20240115T130000Z"},
			{Name: "GEO", Value: "notanumber;1.0"},
		},
	}
	v := component.ValidateEvent(raw)
	assert.True(t, v.Defects.Has(component.InvalidGeoValue))
}

func TestValidateEventForbiddenSubcomponent(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VEVENT",
		Properties: []component.RawProperty{
			{Name: "UID", Value: "a@example.com"},
			{Name: "DTSTAMP", Value: "20240115T130000Z"},
		},
		Children: []component.RawComponent{
			{Kind: "VTODO"},
		},
	}
	v := component.ValidateEvent(raw)
	assert.True(t, v.Defects.Has(component.ForbiddenSubcomponentKind))
}

func TestValidateEventBadlyOrderedSubcomponents(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VEVENT",
		Properties: []component.RawProperty{
			{Name: "UID", Value: "a@example.com"},
			{Name: "DTSTAMP", Value: "20240115T130000Z"},
		},
		Children: []component.RawComponent{
			{Kind: "VLOCATION"},
			{Kind: "VALARM"},
		},
	}
	v := component.ValidateEvent(raw)
	assert.True(t, v.Defects.Has(component.BadlyOrderedSubcomponents))
}
