// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package component

import "strings"

// StaticProp is the closed set of property names RFC 5545, RFC 5546,
// RFC 7986, and RFC 9073/9074 register, resolved from raw text in O(1) via
// staticPropNames. A name this package doesn't recognize (an IANA
// extension or an X- vendor property) resolves to PropUnknown rather than
// failing — unrecognized properties are a pass-through concern, not a
// defect, per spec.md §4.V.
type StaticProp int

const (
	PropUnknown StaticProp = iota

	// Calendar properties.
	PropCalScale
	PropMethod
	PropProdId
	PropVersion

	// Descriptive properties.
	PropAttach
	PropCategories
	PropClass
	PropComment
	PropDescription
	PropGeo
	PropLocation
	PropPercentComplete
	PropPriority
	PropResources
	PropStatus
	PropSummary

	// Date and time properties.
	PropCompleted
	PropDtEnd
	PropDue
	PropDtStart
	PropDuration
	PropFreeBusy
	PropTransp

	// Time zone properties.
	PropTzId
	PropTzName
	PropTzOffsetFrom
	PropTzOffsetTo
	PropTzUrl

	// Relationship properties.
	PropAttendee
	PropContact
	PropOrganizer
	PropRecurrenceId
	PropRelatedTo
	PropUrl
	PropUid

	// Recurrence properties.
	PropExDate
	PropRDate
	PropRRule

	// Alarm properties.
	PropAction
	PropRepeat
	PropTrigger

	// Change management properties.
	PropCreated
	PropDtStamp
	PropLastModified
	PropSequence

	// Miscellaneous.
	PropRequestStatus

	// RFC 7986 properties.
	PropName
	PropRefreshInterval
	PropSource
	PropColor
	PropImage
	PropConference

	// RFC 9073/9074 properties.
	PropStructuredData
	PropStyledDescription
	PropParticipantType
	PropLocationType
	PropAcknowledged
	PropProximity
)

var staticPropNames = map[string]StaticProp{
	"CALSCALE": PropCalScale,
	"METHOD":   PropMethod,
	"PRODID":   PropProdId,
	"VERSION":  PropVersion,

	"ATTACH":          PropAttach,
	"CATEGORIES":      PropCategories,
	"CLASS":           PropClass,
	"COMMENT":         PropComment,
	"DESCRIPTION":     PropDescription,
	"GEO":             PropGeo,
	"LOCATION":        PropLocation,
	"PERCENT-COMPLETE": PropPercentComplete,
	"PRIORITY":        PropPriority,
	"RESOURCES":       PropResources,
	"STATUS":          PropStatus,
	"SUMMARY":         PropSummary,

	"COMPLETED": PropCompleted,
	"DTEND":     PropDtEnd,
	"DUE":       PropDue,
	"DTSTART":   PropDtStart,
	"DURATION":  PropDuration,
	"FREEBUSY":  PropFreeBusy,
	"TRANSP":    PropTransp,

	"TZID":         PropTzId,
	"TZNAME":       PropTzName,
	"TZOFFSETFROM": PropTzOffsetFrom,
	"TZOFFSETTO":   PropTzOffsetTo,
	"TZURL":        PropTzUrl,

	"ATTENDEE":      PropAttendee,
	"CONTACT":       PropContact,
	"ORGANIZER":     PropOrganizer,
	"RECURRENCE-ID": PropRecurrenceId,
	"RELATED-TO":    PropRelatedTo,
	"URL":           PropUrl,
	"UID":           PropUid,

	"EXDATE": PropExDate,
	"RDATE":  PropRDate,
	"RRULE":  PropRRule,

	"ACTION":  PropAction,
	"REPEAT":  PropRepeat,
	"TRIGGER": PropTrigger,

	"CREATED":       PropCreated,
	"DTSTAMP":       PropDtStamp,
	"LAST-MODIFIED": PropLastModified,
	"SEQUENCE":      PropSequence,

	"REQUEST-STATUS": PropRequestStatus,

	"NAME":             PropName,
	"REFRESH-INTERVAL": PropRefreshInterval,
	"SOURCE":           PropSource,
	"COLOR":            PropColor,
	"IMAGE":            PropImage,
	"CONFERENCE":       PropConference,

	"STRUCTURED-DATA":    PropStructuredData,
	"STYLED-DESCRIPTION": PropStyledDescription,
	"PARTICIPANT-TYPE":   PropParticipantType,
	"LOCATION-TYPE":      PropLocationType,
	"ACKNOWLEDGED":       PropAcknowledged,
	"PROXIMITY":          PropProximity,
}

// LookupProp resolves name (case-insensitively) to its StaticProp, or
// PropUnknown if name is not one of the ~60 registered property names.
func LookupProp(name string) StaticProp {
	if p, ok := staticPropNames[strings.ToUpper(name)]; ok {
		return p
	}
	return PropUnknown
}

// StaticParam is the closed set of parameter names RFC 5545/7986/9073
// register, resolved the same way as StaticProp.
type StaticParam int

const (
	ParamUnknown StaticParam = iota
	ParamAltRep
	ParamCn
	ParamCuType
	ParamDelegatedFrom
	ParamDelegatedTo
	ParamDir
	ParamEncoding
	ParamFmtType
	ParamFbType
	ParamLanguage
	ParamMember
	ParamPartStat
	ParamRange
	ParamRelated
	ParamRelType
	ParamRole
	ParamRsvp
	ParamSentBy
	ParamTzId
	ParamValue
	ParamDisplay
	ParamEmail
	ParamFeature
	ParamLabel
	ParamOrder
	ParamSchema
	ParamDerived
)

var staticParamNames = map[string]StaticParam{
	"ALTREP":          ParamAltRep,
	"CN":              ParamCn,
	"CUTYPE":          ParamCuType,
	"DELEGATED-FROM":  ParamDelegatedFrom,
	"DELEGATED-TO":    ParamDelegatedTo,
	"DIR":             ParamDir,
	"ENCODING":        ParamEncoding,
	"FMTTYPE":         ParamFmtType,
	"FBTYPE":          ParamFbType,
	"LANGUAGE":        ParamLanguage,
	"MEMBER":          ParamMember,
	"PARTSTAT":        ParamPartStat,
	"RANGE":           ParamRange,
	"RELATED":         ParamRelated,
	"RELTYPE":         ParamRelType,
	"ROLE":            ParamRole,
	"RSVP":            ParamRsvp,
	"SENT-BY":         ParamSentBy,
	"TZID":            ParamTzId,
	"VALUE":           ParamValue,
	"DISPLAY":         ParamDisplay,
	"EMAIL":           ParamEmail,
	"FEATURE":         ParamFeature,
	"LABEL":           ParamLabel,
	"ORDER":           ParamOrder,
	"SCHEMA":          ParamSchema,
	"DERIVED":         ParamDerived,
}

// LookupParam resolves name (case-insensitively) to its StaticParam, or
// ParamUnknown if name is not one of the registered parameter names.
func LookupParam(name string) StaticParam {
	if p, ok := staticParamNames[strings.ToUpper(name)]; ok {
		return p
	}
	return ParamUnknown
}
