// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package jscalendar

import (
	"strings"

	"github.com/calicogo/calico/grammar"
	"github.com/calicogo/calico/primitive"
)

// requireObject downcasts v to an Object, failing with path if it isn't
// one.
func requireObject(v Value, path Path) (Object, error) {
	obj, ok := v.TryObject()
	if !ok {
		return nil, newParseError(path, ErrWrongType)
	}
	return obj, nil
}

// requiredString reads a mandatory string field.
func requiredString(obj Object, key string, path Path) (string, error) {
	v, ok := obj.Get(key)
	if !ok {
		return "", newParseError(path.withKey(key), ErrMissingField)
	}
	s, ok := v.TryString()
	if !ok {
		return "", newParseError(path.withKey(key), ErrWrongType)
	}
	return s, nil
}

// optionalString reads an optional string field: ("", false, nil) if
// absent.
func optionalString(obj Object, key string, path Path) (string, bool, error) {
	v, ok := obj.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.TryString()
	if !ok {
		return "", false, newParseError(path.withKey(key), ErrWrongType)
	}
	return s, true, nil
}

func optionalInt(obj Object, key string, path Path) (int, bool, error) {
	v, ok := obj.Get(key)
	if !ok {
		return 0, false, nil
	}
	n, ok := v.TryNumber()
	if !ok {
		return 0, false, newParseError(path.withKey(key), ErrWrongType)
	}
	return int(n), true, nil
}

func optionalBool(obj Object, key string, path Path) (bool, bool, error) {
	v, ok := obj.Get(key)
	if !ok {
		return false, false, nil
	}
	b, ok := v.TryBool()
	if !ok {
		return false, false, newParseError(path.withKey(key), ErrWrongType)
	}
	return b, true, nil
}

// optionalUTCDateTime reads an optional JSCalendar UTCDateTime string field
// (punctuated ISO 8601 with a trailing "Z", e.g. "2020-01-02T18:23:04Z").
func optionalUTCDateTime(obj Object, key string, path Path) (primitive.DateTime, bool, error) {
	s, present, err := optionalString(obj, key, path)
	if err != nil || !present {
		return primitive.DateTime{}, false, err
	}
	dt, err := grammar.JSCalendarUTCDateTime(s)
	if err != nil {
		return primitive.DateTime{}, false, newParseError(path.withKey(key), err)
	}
	return dt, true, nil
}

// optionalDuration reads an optional JSCalendar duration string field.
func optionalDuration(obj Object, key string, path Path) (primitive.SignedDuration, bool, error) {
	s, present, err := optionalString(obj, key, path)
	if err != nil || !present {
		return primitive.SignedDuration{}, false, err
	}
	d, err := grammar.JSCalendarDuration(s)
	if err != nil {
		return primitive.SignedDuration{}, false, newParseError(path.withKey(key), err)
	}
	return d, true, nil
}

// optionalObjectMap reads an optional field holding a JSON object whose
// values are themselves objects, keyed by arbitrary id strings (the
// "map[string]T" pattern RFC 8984 uses for Participants/Locations/Links/
// Alerts/RelatedTo), returning each entry's Object view alongside its id.
func optionalObjectMap(obj Object, key string, path Path) (map[string]Object, bool, error) {
	v, present := obj.Get(key)
	if !present {
		return nil, false, nil
	}
	outer, ok := v.TryObject()
	if !ok {
		return nil, false, newParseError(path.withKey(key), ErrWrongType)
	}
	result := make(map[string]Object, len(outer.Keys()))
	for _, id := range outer.Keys() {
		entry, _ := outer.Get(id)
		entryObj, ok := entry.TryObject()
		if !ok {
			return nil, false, newParseError(path.withKey(key).withKey(id), ErrWrongType)
		}
		result[id] = entryObj
	}
	return result, true, nil
}

// vendorKey reports whether key has the "<domain>:<suffix>" shape spec.md
// §3.3 describes for vendor (extension) properties, with both sides
// non-empty.
func vendorKey(key string) bool {
	i := strings.IndexByte(key, ':')
	if i <= 0 || i == len(key)-1 {
		return false
	}
	return true
}

// collectVendorProperties copies every key of obj matching vendorKey, not
// present in known, into a fresh map; any other unrecognized key fails per
// spec.md §4.J ("any other unknown key fails").
func collectVendorProperties(obj Object, known map[string]bool, path Path) (map[string]Value, error) {
	var vendor map[string]Value
	for _, key := range obj.Keys() {
		if known[key] {
			continue
		}
		if !vendorKey(key) {
			return nil, newParseError(path.withKey(key), ErrUnknownKey)
		}
		if vendor == nil {
			vendor = make(map[string]Value)
		}
		v, _ := obj.Get(key)
		vendor[key] = v
	}
	return vendor, nil
}
