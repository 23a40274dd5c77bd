// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package jscalendar

import "github.com/calicogo/calico/primitive"

// Event is RFC 8984's Event object, re-typed against calico's own
// validated primitives instead of bare strings and *time.Time: field
// presence is tracked with a Has* bool beside each optional field rather
// than a pointer, matching the rest of this module's value-type style.
// Grounded on airtrafik-jscal's Event (event.go), trimmed and re-typed.
type Event struct {
	UID     string
	Updated primitive.DateTime
	HasUpdated bool

	Title       string
	HasTitle    bool
	Description string
	HasDescription bool

	Start          primitive.DateTime
	HasStart       bool
	TimeZone       string
	HasTimeZone    bool
	Duration       primitive.SignedDuration
	HasDuration    bool
	ShowWithoutTime bool
	HasShowWithoutTime bool

	Priority       primitive.Priority
	HasPriority    bool
	FreeBusyStatus string // "free" | "busy" | "tentative"
	HasFreeBusyStatus bool
	Status         string // "confirmed" | "tentative" | "cancelled"
	HasStatus      bool

	Participants map[string]Participant
	Locations    map[string]Location
	Links        map[string]Link
	Alerts       map[string]Alert
	RelatedTo    map[string]Relation

	VendorProperties map[string]Value
}

var eventKnownKeys = map[string]bool{
	"@type": true, "uid": true, "updated": true, "title": true,
	"description": true, "start": true, "timeZone": true, "duration": true,
	"showWithoutTime": true, "priority": true, "freeBusyStatus": true,
	"status": true, "participants": true, "locations": true, "links": true,
	"alerts": true, "relatedTo": true,
}

// ParseEvent destructures a JSON object Value into an Event, failing with
// a path-qualified *ParseError on a missing required field, a wrong type,
// or a key that is neither a known field nor a valid vendor-property key.
func ParseEvent(v Value) (Event, error) {
	path := Path{}
	obj, err := requireObject(v, path)
	if err != nil {
		return Event{}, err
	}

	typ, present, err := optionalString(obj, "@type", path)
	if err != nil {
		return Event{}, err
	}
	if present && typ != "Event" {
		return Event{}, newParseError(path.withKey("@type"), ErrUnknownType)
	}

	uid, err := requiredString(obj, "uid", path)
	if err != nil {
		return Event{}, err
	}

	var e Event
	e.UID = uid

	if dt, ok, err := optionalUTCDateTime(obj, "updated", path); err != nil {
		return Event{}, err
	} else if ok {
		e.Updated, e.HasUpdated = dt, true
	}

	if s, ok, err := optionalString(obj, "title", path); err != nil {
		return Event{}, err
	} else if ok {
		e.Title, e.HasTitle = s, true
	}

	if s, ok, err := optionalString(obj, "description", path); err != nil {
		return Event{}, err
	} else if ok {
		e.Description, e.HasDescription = s, true
	}

	if dt, ok, err := optionalLocalDateTimeField(obj, "start", path); err != nil {
		return Event{}, err
	} else if ok {
		e.Start, e.HasStart = dt, true
	}

	if s, ok, err := optionalString(obj, "timeZone", path); err != nil {
		return Event{}, err
	} else if ok {
		e.TimeZone, e.HasTimeZone = s, true
	}

	if d, ok, err := optionalDuration(obj, "duration", path); err != nil {
		return Event{}, err
	} else if ok {
		e.Duration, e.HasDuration = d, true
	}

	if b, ok, err := optionalBool(obj, "showWithoutTime", path); err != nil {
		return Event{}, err
	} else if ok {
		e.ShowWithoutTime, e.HasShowWithoutTime = b, true
	}

	if n, ok, err := optionalInt(obj, "priority", path); err != nil {
		return Event{}, err
	} else if ok {
		p, perr := primitive.NewPriority(n)
		if perr != nil {
			return Event{}, newParseError(path.withKey("priority"), perr)
		}
		e.Priority, e.HasPriority = p, true
	}

	if s, ok, err := optionalString(obj, "freeBusyStatus", path); err != nil {
		return Event{}, err
	} else if ok {
		e.FreeBusyStatus, e.HasFreeBusyStatus = s, true
	}

	if s, ok, err := optionalString(obj, "status", path); err != nil {
		return Event{}, err
	} else if ok {
		e.Status, e.HasStatus = s, true
	}

	if participants, err := parseParticipantMap(obj, "participants", path); err != nil {
		return Event{}, err
	} else {
		e.Participants = participants
	}

	if locations, err := parseLocationMap(obj, "locations", path); err != nil {
		return Event{}, err
	} else {
		e.Locations = locations
	}

	if links, err := parseLinkMap(obj, "links", path); err != nil {
		return Event{}, err
	} else {
		e.Links = links
	}

	if alerts, err := parseAlertMap(obj, "alerts", path); err != nil {
		return Event{}, err
	} else {
		e.Alerts = alerts
	}

	if related, err := parseRelatedToMap(obj, "relatedTo", path); err != nil {
		return Event{}, err
	} else {
		e.RelatedTo = related
	}

	vendor, err := collectVendorProperties(obj, eventKnownKeys, path)
	if err != nil {
		return Event{}, err
	}
	e.VendorProperties = vendor

	return e, nil
}

// optionalLocalDateTimeField reads an optional LocalDateTime-typed field,
// whose JSON representation may be either a bare string (the common case)
// or an object with a "dateTime" key (a LocalDateTime wrapper, per
// airtrafik-jscal's LocalDateTime type) — both are accepted.
func optionalLocalDateTimeField(obj Object, key string, path Path) (primitive.DateTime, bool, error) {
	v, present := obj.Get(key)
	if !present {
		return primitive.DateTime{}, false, nil
	}
	if s, ok := v.TryString(); ok {
		dt, err := parseLocalDateTimeString(s)
		if err != nil {
			return primitive.DateTime{}, false, newParseError(path.withKey(key), err)
		}
		return dt, true, nil
	}
	if inner, ok := v.TryObject(); ok {
		s, err := requiredString(inner, "dateTime", path.withKey(key))
		if err != nil {
			return primitive.DateTime{}, false, err
		}
		dt, err := parseLocalDateTimeString(s)
		if err != nil {
			return primitive.DateTime{}, false, newParseError(path.withKey(key).withKey("dateTime"), err)
		}
		return dt, true, nil
	}
	return primitive.DateTime{}, false, newParseError(path.withKey(key), ErrWrongType)
}

// BuildEvent serializes e back into a JSON object Value using b, the
// inverse of ParseEvent.
func BuildEvent(e Event, b Builder) Value {
	fields := map[string]Value{
		"@type": b.String("Event"),
		"uid":   b.String(e.UID),
	}
	if e.HasUpdated {
		fields["updated"] = b.String(formatUTCDateTime(e.Updated))
	}
	if e.HasTitle {
		fields["title"] = b.String(e.Title)
	}
	if e.HasDescription {
		fields["description"] = b.String(e.Description)
	}
	if e.HasStart {
		fields["start"] = b.String(formatLocalDateTime(e.Start))
	}
	if e.HasTimeZone {
		fields["timeZone"] = b.String(e.TimeZone)
	}
	if e.HasDuration {
		fields["duration"] = b.String(formatDuration(e.Duration))
	}
	if e.HasShowWithoutTime {
		fields["showWithoutTime"] = b.Bool(e.ShowWithoutTime)
	}
	if e.HasPriority {
		fields["priority"] = b.Number(float64(e.Priority.Value()))
	}
	if e.HasFreeBusyStatus {
		fields["freeBusyStatus"] = b.String(e.FreeBusyStatus)
	}
	if e.HasStatus {
		fields["status"] = b.String(e.Status)
	}
	if len(e.Participants) > 0 {
		fields["participants"] = buildParticipantMap(e.Participants, b)
	}
	if len(e.Locations) > 0 {
		fields["locations"] = buildLocationMap(e.Locations, b)
	}
	if len(e.Links) > 0 {
		fields["links"] = buildLinkMap(e.Links, b)
	}
	if len(e.Alerts) > 0 {
		fields["alerts"] = buildAlertMap(e.Alerts, b)
	}
	if len(e.RelatedTo) > 0 {
		fields["relatedTo"] = buildRelatedToMap(e.RelatedTo, b)
	}
	for k, v := range e.VendorProperties {
		fields[k] = v
	}
	return b.Object(fields)
}
