// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package jscalendar

// Group is RFC 8984's Group object: a named collection of Event/Task
// objects (held here as the JSON Values of the entries array, not parsed
// into Event/Task; see ParseGroup). Grounded on airtrafik-jscal's Group
// (group.go), trimmed.
type Group struct {
	UID      string
	Title    string
	HasTitle bool
	Entries  []Value

	VendorProperties map[string]Value
}

var groupKnownKeys = map[string]bool{
	"@type": true, "uid": true, "title": true, "entries": true,
}

// ParseGroup destructures a JSON object Value into a Group. Entries are
// left as unparsed Values rather than dispatched to ParseEvent/ParseTask
// here, since a Group may hold either kind and the caller is better
// positioned to decide whether to eagerly parse every entry.
func ParseGroup(v Value) (Group, error) {
	path := Path{}
	obj, err := requireObject(v, path)
	if err != nil {
		return Group{}, err
	}

	typ, present, err := optionalString(obj, "@type", path)
	if err != nil {
		return Group{}, err
	}
	if present && typ != "Group" {
		return Group{}, newParseError(path.withKey("@type"), ErrUnknownType)
	}

	uid, err := requiredString(obj, "uid", path)
	if err != nil {
		return Group{}, err
	}

	var g Group
	g.UID = uid

	if s, ok, err := optionalString(obj, "title", path); err != nil {
		return Group{}, err
	} else if ok {
		g.Title, g.HasTitle = s, true
	}

	if ev, present := obj.Get("entries"); present {
		arr, ok := ev.TryArray()
		if !ok {
			return Group{}, newParseError(path.withKey("entries"), ErrWrongType)
		}
		g.Entries = arr
	}

	vendor, err := collectVendorProperties(obj, groupKnownKeys, path)
	if err != nil {
		return Group{}, err
	}
	g.VendorProperties = vendor

	return g, nil
}

// BuildGroup serializes g back into a JSON object Value.
func BuildGroup(g Group, b Builder) Value {
	fields := map[string]Value{
		"@type": b.String("Group"),
		"uid":   b.String(g.UID),
	}
	if g.HasTitle {
		fields["title"] = b.String(g.Title)
	}
	if g.Entries != nil {
		fields["entries"] = b.Array(g.Entries)
	}
	for k, v := range g.VendorProperties {
		fields[k] = v
	}
	return b.Object(fields)
}
