// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package jscalendar implements the RFC 8984 JSCalendar object model
// (Event, Task, Group and their nested types) against calico's own
// primitive/grammar layers instead of bare strings and *time.Time, with
// parsing and serialization routed through an abstract JSON value
// interface so the object model itself never depends on a concrete JSON
// library. jsonbind supplies the default binding, to encoding/json.
package jscalendar

// ValueType tags which of JSON's six shapes a Value holds.
type ValueType int

const (
	TypeNull ValueType = iota
	TypeBool
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

// Value is the destructible half of the abstract JSON value interface:
// read-only access to whatever a concrete JSON library decoded, without
// the object model depending on that library's own types.
type Value interface {
	Type() ValueType
	TryBool() (bool, bool)
	TryNumber() (float64, bool)
	TryString() (string, bool)
	TryArray() ([]Value, bool)
	TryObject() (Object, bool)
}

// Object is a JSON object's destructible view: key lookup plus a key
// listing for iteration and vendor-property discovery. The order of Keys
// is not specified (jsonbind returns Go map iteration order).
type Object interface {
	Get(key string) (Value, bool)
	Keys() []string
}

// Builder is the constructible half: factories a typed object's
// serializer uses to build a Value tree, independent of which library
// ultimately renders it to bytes.
type Builder interface {
	Null() Value
	Bool(bool) Value
	Number(float64) Value
	String(string) Value
	Array(items []Value) Value
	Object(fields map[string]Value) Value
}
