// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package component

import "github.com/calicogo/calico/grammar"

// ValidatedJournal is the result of validating a VJOURNAL.
type ValidatedJournal struct {
	Raw     RawComponent
	Defects JournalDefect
}

// ValidateJournal applies VJOURNAL's rule table: UID mandatory and at most
// once, STATUS restricted to DRAFT | FINAL | CANCELLED.
func ValidateJournal(raw RawComponent) ValidatedJournal {
	var d JournalDefect

	if raw.Count("UID") == 0 {
		d.Add(JournalMissingUid)
	} else if raw.Count("UID") > 1 {
		d.Add(JournalDuplicateUid)
	}

	if status, ok := raw.First("STATUS"); ok {
		if _, valid := grammar.JournalStatusOf(status.Value); !valid {
			d.Add(JournalInvalidStatusValue)
		}
	}

	return ValidatedJournal{Raw: raw, Defects: d}
}
