// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package component

// EventDefect is the fixed-width defect-flag set a VEVENT validation
// produces. A zero value means the component is well-formed.
type EventDefect uint32

const (
	MissingUid EventDefect = 1 << iota
	MissingDtStamp
	DuplicateUid
	DuplicateDtStamp
	DuplicateSequence
	DtEndAndDuration
	DtEndValueTypeMismatch
	InvalidStatusValue
	InvalidGeoValue
	BadlyOrderedSubcomponents
	ForbiddenSubcomponentKind
)

var eventDefectNames = []struct {
	flag EventDefect
	name string
}{
	{MissingUid, "MissingUid"},
	{MissingDtStamp, "MissingDtStamp"},
	{DuplicateUid, "DuplicateUid"},
	{DuplicateDtStamp, "DuplicateDtStamp"},
	{DuplicateSequence, "DuplicateSequence"},
	{DtEndAndDuration, "DtEndAndDuration"},
	{DtEndValueTypeMismatch, "DtEndValueTypeMismatch"},
	{InvalidStatusValue, "InvalidStatusValue"},
	{InvalidGeoValue, "InvalidGeoValue"},
	{BadlyOrderedSubcomponents, "BadlyOrderedSubcomponents"},
	{ForbiddenSubcomponentKind, "ForbiddenSubcomponentKind"},
}

func (d EventDefect) Empty() bool             { return d == 0 }
func (d EventDefect) Has(f EventDefect) bool  { return d&f != 0 }
func (d *EventDefect) Add(f EventDefect)      { *d |= f }
func (d EventDefect) Flags() []string {
	var out []string
	for _, e := range eventDefectNames {
		if d.Has(e.flag) {
			out = append(out, e.name)
		}
	}
	return out
}

// TodoDefect is VTODO's defect-flag set.
type TodoDefect uint32

const (
	TodoMissingUid TodoDefect = 1 << iota
	TodoDuplicateUid
	TodoDueAndDuration
	TodoDueValueTypeMismatch
	TodoInvalidStatusValue
	TodoInvalidPercentComplete
)

var todoDefectNames = []struct {
	flag TodoDefect
	name string
}{
	{TodoMissingUid, "MissingUid"},
	{TodoDuplicateUid, "DuplicateUid"},
	{TodoDueAndDuration, "DueAndDuration"},
	{TodoDueValueTypeMismatch, "DueValueTypeMismatch"},
	{TodoInvalidStatusValue, "InvalidStatusValue"},
	{TodoInvalidPercentComplete, "InvalidPercentComplete"},
}

func (d TodoDefect) Empty() bool            { return d == 0 }
func (d TodoDefect) Has(f TodoDefect) bool  { return d&f != 0 }
func (d *TodoDefect) Add(f TodoDefect)      { *d |= f }
func (d TodoDefect) Flags() []string {
	var out []string
	for _, e := range todoDefectNames {
		if d.Has(e.flag) {
			out = append(out, e.name)
		}
	}
	return out
}

// JournalDefect is VJOURNAL's defect-flag set.
type JournalDefect uint32

const (
	JournalMissingUid JournalDefect = 1 << iota
	JournalDuplicateUid
	JournalInvalidStatusValue
)

var journalDefectNames = []struct {
	flag JournalDefect
	name string
}{
	{JournalMissingUid, "MissingUid"},
	{JournalDuplicateUid, "DuplicateUid"},
	{JournalInvalidStatusValue, "InvalidStatusValue"},
}

func (d JournalDefect) Empty() bool               { return d == 0 }
func (d JournalDefect) Has(f JournalDefect) bool  { return d&f != 0 }
func (d *JournalDefect) Add(f JournalDefect)      { *d |= f }
func (d JournalDefect) Flags() []string {
	var out []string
	for _, e := range journalDefectNames {
		if d.Has(e.flag) {
			out = append(out, e.name)
		}
	}
	return out
}

// FreeBusyDefect is VFREEBUSY's defect-flag set.
type FreeBusyDefect uint32

const (
	FreeBusyMissingUid FreeBusyDefect = 1 << iota
	FreeBusyDuplicateUid
	FreeBusyDtStartAfterDtEnd
)

var freeBusyDefectNames = []struct {
	flag FreeBusyDefect
	name string
}{
	{FreeBusyMissingUid, "MissingUid"},
	{FreeBusyDuplicateUid, "DuplicateUid"},
	{FreeBusyDtStartAfterDtEnd, "DtStartAfterDtEnd"},
}

func (d FreeBusyDefect) Empty() bool                { return d == 0 }
func (d FreeBusyDefect) Has(f FreeBusyDefect) bool  { return d&f != 0 }
func (d *FreeBusyDefect) Add(f FreeBusyDefect)      { *d |= f }
func (d FreeBusyDefect) Flags() []string {
	var out []string
	for _, e := range freeBusyDefectNames {
		if d.Has(e.flag) {
			out = append(out, e.name)
		}
	}
	return out
}

// AlarmDefect is VALARM's defect-flag set, spanning every ACTION dispatch
// target (Audio/Display/Email/Unknown) in one flat flag space — only the
// flags relevant to the component's actual ACTION are ever set.
type AlarmDefect uint32

const (
	AlarmMissingAction AlarmDefect = 1 << iota
	AlarmMissingTrigger
	AlarmMissingDescriptionForDisplay
	AlarmMissingDescriptionForEmail
	AlarmMissingSummaryForEmail
	AlarmMissingAttendeeForEmail
	AlarmDurationAndRepeatMismatch
	AlarmUnrecognizedAction
)

var alarmDefectNames = []struct {
	flag AlarmDefect
	name string
}{
	{AlarmMissingAction, "MissingAction"},
	{AlarmMissingTrigger, "MissingTrigger"},
	{AlarmMissingDescriptionForDisplay, "MissingDescriptionForDisplay"},
	{AlarmMissingDescriptionForEmail, "MissingDescriptionForEmail"},
	{AlarmMissingSummaryForEmail, "MissingSummaryForEmail"},
	{AlarmMissingAttendeeForEmail, "MissingAttendeeForEmail"},
	{AlarmDurationAndRepeatMismatch, "DurationAndRepeatMismatch"},
	{AlarmUnrecognizedAction, "UnrecognizedAction"},
}

func (d AlarmDefect) Empty() bool           { return d == 0 }
func (d AlarmDefect) Has(f AlarmDefect) bool { return d&f != 0 }
func (d *AlarmDefect) Add(f AlarmDefect)     { *d |= f }
func (d AlarmDefect) Flags() []string {
	var out []string
	for _, e := range alarmDefectNames {
		if d.Has(e.flag) {
			out = append(out, e.name)
		}
	}
	return out
}

// TimezoneDefect is VTIMEZONE's (and its STANDARD/DAYLIGHT children's)
// defect-flag set.
type TimezoneDefect uint32

const (
	TimezoneMissingTzid TimezoneDefect = 1 << iota
	TimezoneMissingDtStart
	TimezoneMissingOffsetFrom
	TimezoneMissingOffsetTo
)

var timezoneDefectNames = []struct {
	flag TimezoneDefect
	name string
}{
	{TimezoneMissingTzid, "MissingTzid"},
	{TimezoneMissingDtStart, "MissingDtStart"},
	{TimezoneMissingOffsetFrom, "MissingOffsetFrom"},
	{TimezoneMissingOffsetTo, "MissingOffsetTo"},
}

func (d TimezoneDefect) Empty() bool               { return d == 0 }
func (d TimezoneDefect) Has(f TimezoneDefect) bool { return d&f != 0 }
func (d *TimezoneDefect) Add(f TimezoneDefect)     { *d |= f }
func (d TimezoneDefect) Flags() []string {
	var out []string
	for _, e := range timezoneDefectNames {
		if d.Has(e.flag) {
			out = append(out, e.name)
		}
	}
	return out
}

// ParticipantDefect covers VPARTICIPANT (RFC 9073 §5.4); VLOCATION and
// VRESOURCE have no mandatory properties of their own beyond structural
// nesting, so they share this flag space for the one rule that applies.
type ParticipantDefect uint32

const (
	ParticipantMissingParticipantType ParticipantDefect = 1 << iota
)

func (d ParticipantDefect) Empty() bool                  { return d == 0 }
func (d ParticipantDefect) Has(f ParticipantDefect) bool { return d&f != 0 }
func (d *ParticipantDefect) Add(f ParticipantDefect)     { *d |= f }
func (d ParticipantDefect) Flags() []string {
	if d.Has(ParticipantMissingParticipantType) {
		return []string{"MissingParticipantType"}
	}
	return nil
}
