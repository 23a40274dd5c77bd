// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package jscalendar

import (
	"github.com/calicogo/calico/grammar"
	"github.com/calicogo/calico/primitive"
)

// PatchObject is a mapping from an implicit JSON pointer (RFC 6901's
// pointer grammar with the leading slash elided; "~0"/"~1" escapes are
// preserved verbatim, not decoded) to an arbitrary JSON value.
type PatchObject map[string]Value

// Relation is a set of named relationship tokens (e.g. "first", "next",
// "child", "parent"), per spec.md §3.3.
type Relation struct {
	Relation map[string]bool
}

// parseRelation reads a Relation object whose keys are relationship tokens
// mapped to the JSON literal true.
func parseRelation(obj Object, path Path) (Relation, error) {
	rel := Relation{Relation: make(map[string]bool)}
	for _, key := range obj.Keys() {
		v, _ := obj.Get(key)
		b, ok := v.TryBool()
		if !ok {
			return Relation{}, newParseError(path.withKey(key), ErrWrongType)
		}
		rel.Relation[key] = b
	}
	return rel, nil
}

// buildRelation serializes a Relation back into its flat token-map form.
func buildRelation(rel Relation, b Builder) Value {
	fields := make(map[string]Value, len(rel.Relation))
	for k, v := range rel.Relation {
		fields[k] = b.Bool(v)
	}
	return b.Object(fields)
}

// Link is a URI with metadata, grounded on airtrafik-jscal's Link type.
type Link struct {
	Href        string
	ContentType string
	HasContentType bool
	Size        int
	HasSize     bool
	Rel         string
	HasRel      bool
	Display     string
	HasDisplay  bool
	Title       string
	HasTitle    bool
}

var linkKnownKeys = map[string]bool{
	"@type": true, "href": true, "contentType": true, "size": true,
	"rel": true, "display": true, "title": true,
}

// parseLink destructures a Link object, grounded on airtrafik-jscal's Link.
func parseLink(obj Object, path Path) (Link, error) {
	var l Link
	href, err := requiredString(obj, "href", path)
	if err != nil {
		return Link{}, err
	}
	l.Href = href
	if s, ok, err := optionalString(obj, "contentType", path); err != nil {
		return Link{}, err
	} else if ok {
		l.ContentType, l.HasContentType = s, true
	}
	if n, ok, err := optionalInt(obj, "size", path); err != nil {
		return Link{}, err
	} else if ok {
		l.Size, l.HasSize = n, true
	}
	if s, ok, err := optionalString(obj, "rel", path); err != nil {
		return Link{}, err
	} else if ok {
		l.Rel, l.HasRel = s, true
	}
	if s, ok, err := optionalString(obj, "display", path); err != nil {
		return Link{}, err
	} else if ok {
		l.Display, l.HasDisplay = s, true
	}
	if s, ok, err := optionalString(obj, "title", path); err != nil {
		return Link{}, err
	} else if ok {
		l.Title, l.HasTitle = s, true
	}
	if _, err := collectVendorProperties(obj, linkKnownKeys, path); err != nil {
		return Link{}, err
	}
	return l, nil
}

// buildLink serializes a Link back into its JSON object form.
func buildLink(l Link, b Builder) Value {
	fields := map[string]Value{
		"@type": b.String("Link"),
		"href":  b.String(l.Href),
	}
	if l.HasContentType {
		fields["contentType"] = b.String(l.ContentType)
	}
	if l.HasSize {
		fields["size"] = b.Number(float64(l.Size))
	}
	if l.HasRel {
		fields["rel"] = b.String(l.Rel)
	}
	if l.HasDisplay {
		fields["display"] = b.String(l.Display)
	}
	if l.HasTitle {
		fields["title"] = b.String(l.Title)
	}
	return b.Object(fields)
}

// parseLinkMap reads a "links" field's id-keyed Link objects.
func parseLinkMap(obj Object, key string, path Path) (map[string]Link, error) {
	entries, present, err := optionalObjectMap(obj, key, path)
	if err != nil || !present {
		return nil, err
	}
	links := make(map[string]Link, len(entries))
	for id, entry := range entries {
		l, err := parseLink(entry, path.withKey(key).withKey(id))
		if err != nil {
			return nil, err
		}
		links[id] = l
	}
	return links, nil
}

// buildLinkMap is parseLinkMap's inverse.
func buildLinkMap(links map[string]Link, b Builder) Value {
	fields := make(map[string]Value, len(links))
	for id, l := range links {
		fields[id] = buildLink(l, b)
	}
	return b.Object(fields)
}

// Location is a physical or virtual event location.
type Location struct {
	Name          string
	HasName       bool
	Description   string
	HasDescription bool
	TimeZone      string
	HasTimeZone   bool
	Coordinates   string
	HasCoordinates bool
	Links         map[string]Link
}

var locationKnownKeys = map[string]bool{
	"@type": true, "name": true, "description": true, "timeZone": true,
	"coordinates": true, "links": true,
}

// parseLocation destructures a Location object.
func parseLocation(obj Object, path Path) (Location, error) {
	var loc Location
	if s, ok, err := optionalString(obj, "name", path); err != nil {
		return Location{}, err
	} else if ok {
		loc.Name, loc.HasName = s, true
	}
	if s, ok, err := optionalString(obj, "description", path); err != nil {
		return Location{}, err
	} else if ok {
		loc.Description, loc.HasDescription = s, true
	}
	if s, ok, err := optionalString(obj, "timeZone", path); err != nil {
		return Location{}, err
	} else if ok {
		loc.TimeZone, loc.HasTimeZone = s, true
	}
	if s, ok, err := optionalString(obj, "coordinates", path); err != nil {
		return Location{}, err
	} else if ok {
		loc.Coordinates, loc.HasCoordinates = s, true
	}
	links, err := parseLinkMap(obj, "links", path)
	if err != nil {
		return Location{}, err
	}
	loc.Links = links
	if _, err := collectVendorProperties(obj, locationKnownKeys, path); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// buildLocation serializes a Location back into its JSON object form.
func buildLocation(loc Location, b Builder) Value {
	fields := map[string]Value{"@type": b.String("Location")}
	if loc.HasName {
		fields["name"] = b.String(loc.Name)
	}
	if loc.HasDescription {
		fields["description"] = b.String(loc.Description)
	}
	if loc.HasTimeZone {
		fields["timeZone"] = b.String(loc.TimeZone)
	}
	if loc.HasCoordinates {
		fields["coordinates"] = b.String(loc.Coordinates)
	}
	if len(loc.Links) > 0 {
		fields["links"] = buildLinkMap(loc.Links, b)
	}
	return b.Object(fields)
}

// parseLocationMap reads a "locations" field's id-keyed Location objects.
func parseLocationMap(obj Object, key string, path Path) (map[string]Location, error) {
	entries, present, err := optionalObjectMap(obj, key, path)
	if err != nil || !present {
		return nil, err
	}
	locations := make(map[string]Location, len(entries))
	for id, entry := range entries {
		loc, err := parseLocation(entry, path.withKey(key).withKey(id))
		if err != nil {
			return nil, err
		}
		locations[id] = loc
	}
	return locations, nil
}

// buildLocationMap is parseLocationMap's inverse.
func buildLocationMap(locations map[string]Location, b Builder) Value {
	fields := make(map[string]Value, len(locations))
	for id, loc := range locations {
		fields[id] = buildLocation(loc, b)
	}
	return b.Object(fields)
}

// Participant is an event participant, grounded on airtrafik-jscal's
// Participant type, re-typed against calico's own primitives where a
// field is a parsed value rather than free text.
type Participant struct {
	Name                 string
	HasName              bool
	Email                string
	HasEmail             bool
	Kind                 string
	HasKind              bool
	Roles                map[string]bool
	ParticipationStatus  string
	HasParticipationStatus bool
	ExpectReply          bool
	HasExpectReply       bool
}

var participantKnownKeys = map[string]bool{
	"@type": true, "name": true, "email": true, "kind": true, "roles": true,
	"participationStatus": true, "expectReply": true,
}

// parseParticipant destructures a Participant object.
func parseParticipant(obj Object, path Path) (Participant, error) {
	var p Participant
	if s, ok, err := optionalString(obj, "name", path); err != nil {
		return Participant{}, err
	} else if ok {
		p.Name, p.HasName = s, true
	}
	if s, ok, err := optionalString(obj, "email", path); err != nil {
		return Participant{}, err
	} else if ok {
		p.Email, p.HasEmail = s, true
	}
	if s, ok, err := optionalString(obj, "kind", path); err != nil {
		return Participant{}, err
	} else if ok {
		p.Kind, p.HasKind = s, true
	}
	if v, present := obj.Get("roles"); present {
		rolesObj, ok := v.TryObject()
		if !ok {
			return Participant{}, newParseError(path.withKey("roles"), ErrWrongType)
		}
		roles, err := parseRelation(rolesObj, path.withKey("roles"))
		if err != nil {
			return Participant{}, err
		}
		p.Roles = roles.Relation
	}
	if s, ok, err := optionalString(obj, "participationStatus", path); err != nil {
		return Participant{}, err
	} else if ok {
		p.ParticipationStatus, p.HasParticipationStatus = s, true
	}
	if b, ok, err := optionalBool(obj, "expectReply", path); err != nil {
		return Participant{}, err
	} else if ok {
		p.ExpectReply, p.HasExpectReply = b, true
	}
	if _, err := collectVendorProperties(obj, participantKnownKeys, path); err != nil {
		return Participant{}, err
	}
	return p, nil
}

// buildParticipant serializes a Participant back into its JSON object form.
func buildParticipant(p Participant, b Builder) Value {
	fields := map[string]Value{"@type": b.String("Participant")}
	if p.HasName {
		fields["name"] = b.String(p.Name)
	}
	if p.HasEmail {
		fields["email"] = b.String(p.Email)
	}
	if p.HasKind {
		fields["kind"] = b.String(p.Kind)
	}
	if len(p.Roles) > 0 {
		fields["roles"] = buildRelation(Relation{Relation: p.Roles}, b)
	}
	if p.HasParticipationStatus {
		fields["participationStatus"] = b.String(p.ParticipationStatus)
	}
	if p.HasExpectReply {
		fields["expectReply"] = b.Bool(p.ExpectReply)
	}
	return b.Object(fields)
}

// parseParticipantMap reads a "participants" field's id-keyed Participant
// objects.
func parseParticipantMap(obj Object, key string, path Path) (map[string]Participant, error) {
	entries, present, err := optionalObjectMap(obj, key, path)
	if err != nil || !present {
		return nil, err
	}
	participants := make(map[string]Participant, len(entries))
	for id, entry := range entries {
		p, err := parseParticipant(entry, path.withKey(key).withKey(id))
		if err != nil {
			return nil, err
		}
		participants[id] = p
	}
	return participants, nil
}

// buildParticipantMap is parseParticipantMap's inverse.
func buildParticipantMap(participants map[string]Participant, b Builder) Value {
	fields := make(map[string]Value, len(participants))
	for id, p := range participants {
		fields[id] = buildParticipant(p, b)
	}
	return b.Object(fields)
}

// Alert is a notification/reminder attached to an Event or Task.
type Alert struct {
	TriggerOffset primitive.SignedDuration
	RelativeTo    string // "start" | "end"
	Action        string // "display" | "email"
	HasAction     bool
}

var alertKnownKeys = map[string]bool{
	"@type": true, "trigger": true, "action": true,
}

// parseAlert destructures an Alert object; its "trigger" field is always an
// OffsetTrigger (RFC 8984 also defines AbsoluteTrigger, out of scope here).
func parseAlert(obj Object, path Path) (Alert, error) {
	var a Alert
	triggerVal, present := obj.Get("trigger")
	if !present {
		return Alert{}, newParseError(path.withKey("trigger"), ErrMissingField)
	}
	triggerObj, ok := triggerVal.TryObject()
	if !ok {
		return Alert{}, newParseError(path.withKey("trigger"), ErrWrongType)
	}
	offset, err := requiredString(triggerObj, "offset", path.withKey("trigger"))
	if err != nil {
		return Alert{}, err
	}
	d, err := grammar.JSCalendarDuration(offset)
	if err != nil {
		return Alert{}, newParseError(path.withKey("trigger").withKey("offset"), err)
	}
	a.TriggerOffset = d
	if s, ok, err := optionalString(triggerObj, "relativeTo", path.withKey("trigger")); err != nil {
		return Alert{}, err
	} else if ok {
		a.RelativeTo = s
	}
	if s, ok, err := optionalString(obj, "action", path); err != nil {
		return Alert{}, err
	} else if ok {
		a.Action, a.HasAction = s, true
	}
	if _, err := collectVendorProperties(obj, alertKnownKeys, path); err != nil {
		return Alert{}, err
	}
	return a, nil
}

// buildAlert serializes an Alert back into its JSON object form.
func buildAlert(a Alert, b Builder) Value {
	fields := map[string]Value{
		"@type": b.String("Alert"),
		"trigger": b.Object(map[string]Value{
			"@type":  b.String("OffsetTrigger"),
			"offset": b.String(formatDuration(a.TriggerOffset)),
			"relativeTo": b.String(a.RelativeTo),
		}),
	}
	if a.HasAction {
		fields["action"] = b.String(a.Action)
	}
	return b.Object(fields)
}

// parseAlertMap reads an "alerts" field's id-keyed Alert objects.
func parseAlertMap(obj Object, key string, path Path) (map[string]Alert, error) {
	entries, present, err := optionalObjectMap(obj, key, path)
	if err != nil || !present {
		return nil, err
	}
	alerts := make(map[string]Alert, len(entries))
	for id, entry := range entries {
		a, err := parseAlert(entry, path.withKey(key).withKey(id))
		if err != nil {
			return nil, err
		}
		alerts[id] = a
	}
	return alerts, nil
}

// buildAlertMap is parseAlertMap's inverse.
func buildAlertMap(alerts map[string]Alert, b Builder) Value {
	fields := make(map[string]Value, len(alerts))
	for id, a := range alerts {
		fields[id] = buildAlert(a, b)
	}
	return b.Object(fields)
}

// parseRelatedToMap reads a "relatedTo" field's id-keyed Relation objects.
func parseRelatedToMap(obj Object, key string, path Path) (map[string]Relation, error) {
	entries, present, err := optionalObjectMap(obj, key, path)
	if err != nil || !present {
		return nil, err
	}
	related := make(map[string]Relation, len(entries))
	for id, entry := range entries {
		rel, err := parseRelation(entry, path.withKey(key).withKey(id))
		if err != nil {
			return nil, err
		}
		related[id] = rel
	}
	return related, nil
}

// buildRelatedToMap is parseRelatedToMap's inverse.
func buildRelatedToMap(related map[string]Relation, b Builder) Value {
	fields := make(map[string]Value, len(related))
	for id, rel := range related {
		fields[id] = buildRelation(rel, b)
	}
	return b.Object(fields)
}

// TimeZoneRule is one STANDARD- or DAYLIGHT-equivalent rule inside a
// TimeZone.
type TimeZoneRule struct {
	Start      primitive.DateTime
	OffsetFrom primitive.UtcOffset
	OffsetTo   primitive.UtcOffset
}

// TimeZone carries standard and daylight rules for a named zone, per
// spec.md §3.3 — calico does not resolve the zone itself (out of scope),
// it only carries the rules a producer attached.
type TimeZone struct {
	TzID     string
	Standard []TimeZoneRule
	Daylight []TimeZoneRule
}
