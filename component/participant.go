// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package component

// ValidatedParticipant is the result of validating a VPARTICIPANT
// (RFC 9073 §5.4).
type ValidatedParticipant struct {
	Raw     RawComponent
	Defects ParticipantDefect
}

// ValidateParticipant requires PARTICIPANT-TYPE.
func ValidateParticipant(raw RawComponent) ValidatedParticipant {
	var d ParticipantDefect
	if raw.Count("PARTICIPANT-TYPE") == 0 {
		d.Add(ParticipantMissingParticipantType)
	}
	return ValidatedParticipant{Raw: raw, Defects: d}
}

// ValidatedLocation is the result of validating a VLOCATION (RFC 9073
// §5.2). It has no mandatory properties of its own; it exists as a
// distinct type so callers can tell a location apart from a resource.
type ValidatedLocation struct {
	Raw RawComponent
}

func ValidateLocation(raw RawComponent) ValidatedLocation {
	return ValidatedLocation{Raw: raw}
}

// ValidatedResource is the result of validating a VRESOURCE (RFC 9073
// §5.3). Like VLOCATION it carries no mandatory properties of its own.
type ValidatedResource struct {
	Raw RawComponent
}

func ValidateResource(raw RawComponent) ValidatedResource {
	return ValidatedResource{Raw: raw}
}
