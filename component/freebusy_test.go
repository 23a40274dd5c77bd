// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calicogo/calico/component"
)

func TestValidateFreeBusyWellFormedIsEmpty(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VFREEBUSY",
		Properties: []component.RawProperty{
			{Name: "UID", Value: "fb-1@example.com"},
			{Name: "DTSTART", Value: "20240115T130000Z"},
			{Name: "DTEND", Value: "20240115T140000Z"},
		},
	}
	v := component.ValidateFreeBusy(raw)
	assert.True(t, v.Defects.Empty())
}

func TestValidateFreeBusyDtStartAfterDtEnd(t *testing.T) {
	raw := component.RawComponent{
		Kind: "VFREEBUSY",
		Properties: []component.RawProperty{
			{Name: "UID", Value: "fb-2@example.com"},
			{Name: "DTSTART", Value: "20240115T150000Z"},
			{Name: "DTEND", Value: "20240115T140000Z"},
		},
	}
	v := component.ValidateFreeBusy(raw)
	assert.True(t, v.Defects.Has(component.FreeBusyDtStartAfterDtEnd))
}

func TestValidateFreeBusyMissingUid(t *testing.T) {
	v := component.ValidateFreeBusy(component.RawComponent{Kind: "VFREEBUSY"})
	assert.True(t, v.Defects.Has(component.FreeBusyMissingUid))
}
