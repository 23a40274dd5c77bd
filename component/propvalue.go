// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package component

import (
	"fmt"

	"github.com/calicogo/calico/grammar"
	"github.com/calicogo/calico/primitive"
)

// PropValueKind tags which arm of TypedValue is populated, chosen by the
// property's RFC-declared value type (spec.md §3.2's static per-property
// type table), not by sniffing the raw text.
type PropValueKind int

const (
	PropValueText PropValueKind = iota
	PropValueUri
	PropValueDateTime
	PropValueDuration
	PropValueUtcOffset
	PropValueFloat
	PropValueInteger
	PropValueGeo
	PropValuePeriod
	PropValueMethod
	PropValueColor
	PropValueRRule
)

// staticPropValueKind assigns each recognized property the grammar rule
// its value follows. A property absent here (including every PropUnknown
// extension) defaults to PropValueText, the grammar's fallback value type.
var staticPropValueKind = map[StaticProp]PropValueKind{
	PropDtStart:      PropValueDateTime,
	PropDtEnd:        PropValueDateTime,
	PropDue:          PropValueDateTime,
	PropCompleted:    PropValueDateTime,
	PropCreated:      PropValueDateTime,
	PropDtStamp:      PropValueDateTime,
	PropLastModified: PropValueDateTime,
	PropRecurrenceId: PropValueDateTime,
	PropAcknowledged: PropValueDateTime,

	PropDuration: PropValueDuration,

	PropTzOffsetFrom: PropValueUtcOffset,
	PropTzOffsetTo:   PropValueUtcOffset,

	PropGeo: PropValueGeo,

	PropFreeBusy: PropValuePeriod,

	PropMethod: PropValueMethod,

	PropColor: PropValueColor,

	PropRRule: PropValueRRule,

	PropUrl:   PropValueUri,
	PropTzUrl: PropValueUri,
	PropSource: PropValueUri,

	PropPriority:        PropValueInteger,
	PropSequence:        PropValueInteger,
	PropPercentComplete: PropValueInteger,
	PropRepeat:          PropValueInteger,
}

// TypedValue is one property's value decoded per spec.md §3.2/§4.V's typed
// component-value model. Text always holds the grammar-escape-decoded text
// regardless of Kind; the other fields are populated only when Kind
// selects them.
type TypedValue struct {
	Kind      PropValueKind
	Text      string
	Uri       primitive.Uri
	DateTime  primitive.DateTime
	Duration  primitive.SignedDuration
	UtcOffset primitive.UtcOffset
	Float     float64
	Integer   primitive.Integer
	Geo       primitive.Geo
	Period    grammar.Period
	Method    primitive.Method
	Color     primitive.Color
	RRule     *grammar.RRule
}

// ParsePropertyValue decodes prop.Value against the grammar StaticProp
// assigns prop.Name, dispatching into the grammar package's value parsers
// — exactly the "property-value parser dispatch" spec.md §4.G describes.
func ParsePropertyValue(prop RawProperty) (TypedValue, error) {
	kind := staticPropValueKind[LookupProp(prop.Name)]
	switch kind {
	case PropValueDateTime:
		dt, err := grammar.DateTime(prop.Value)
		if err != nil {
			return TypedValue{}, err
		}
		if tz := prop.Param("TZID"); len(tz) > 0 {
			dt = grammar.WithZone(dt, tz[0])
		}
		return TypedValue{Kind: kind, Text: prop.Value, DateTime: dt}, nil
	case PropValueDuration:
		d, err := grammar.Duration(prop.Value)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{Kind: kind, Text: prop.Value, Duration: d}, nil
	case PropValueUtcOffset:
		o, err := grammar.UtcOffset(prop.Value)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{Kind: kind, Text: prop.Value, UtcOffset: o}, nil
	case PropValueGeo:
		g, err := grammar.Geo(prop.Value)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{Kind: kind, Text: prop.Value, Geo: g}, nil
	case PropValuePeriod:
		p, err := grammar.ParsePeriod(prop.Value)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{Kind: kind, Text: prop.Value, Period: p}, nil
	case PropValueMethod:
		m, ok := primitive.ParseMethod(prop.Value)
		if !ok {
			return TypedValue{}, fmt.Errorf("unrecognized METHOD token %q", prop.Value)
		}
		return TypedValue{Kind: kind, Text: prop.Value, Method: m}, nil
	case PropValueColor:
		col, err := grammar.Color(prop.Value)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{Kind: kind, Text: prop.Value, Color: col}, nil
	case PropValueRRule:
		r, err := grammar.ParseRRule(prop.Value)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{Kind: kind, Text: prop.Value, RRule: r}, nil
	case PropValueUri:
		u, err := grammar.Uri(prop.Value, true)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{Kind: kind, Text: prop.Value, Uri: u}, nil
	case PropValueInteger:
		n, err := grammar.Integer(prop.Value)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{Kind: kind, Text: prop.Value, Integer: n}, nil
	case PropValueFloat:
		f, err := grammar.Float(prop.Value)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{Kind: kind, Text: prop.Value, Float: f}, nil
	default:
		t, err := grammar.Text(prop.Value)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{Kind: PropValueText, Text: t.Value()}, nil
	}
}
