// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package component

import "github.com/calicogo/calico/grammar"

// ValidatedFreeBusy is the result of validating a VFREEBUSY.
type ValidatedFreeBusy struct {
	Raw     RawComponent
	Defects FreeBusyDefect
}

// ValidateFreeBusy applies VFREEBUSY's rule table: UID mandatory and at
// most once, DTSTART must not fall after DTEND when both are present.
func ValidateFreeBusy(raw RawComponent) ValidatedFreeBusy {
	var d FreeBusyDefect

	if raw.Count("UID") == 0 {
		d.Add(FreeBusyMissingUid)
	} else if raw.Count("UID") > 1 {
		d.Add(FreeBusyDuplicateUid)
	}

	start, hasStart := raw.First("DTSTART")
	end, hasEnd := raw.First("DTEND")
	if hasStart && hasEnd {
		sdt, errS := grammar.DateTime(start.Value)
		edt, errE := grammar.DateTime(end.Value)
		if errS == nil && errE == nil && sdt.Compare(edt) > 0 {
			d.Add(FreeBusyDtStartAfterDtEnd)
		}
	}

	return ValidatedFreeBusy{Raw: raw, Defects: d}
}
