// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package component

import (
	"strings"

	"github.com/calicogo/calico/grammar"
	"github.com/calicogo/calico/primitive"
)

// ParamValueKind tags which arm of TypedParamValue is populated, chosen by
// the parameter's RFC-declared value grammar rather than by sniffing the
// text.
type ParamValueKind int

const (
	ParamValueText ParamValueKind = iota
	ParamValueCalAddress
	ParamValueTzId
	ParamValueFormatType
	ParamValueBoolean
)

// staticParamValueKind maps each parameter this package resolves via
// StaticParam to the grammar its value follows. Parameters not listed here
// (and any unrecognized extension parameter) default to ParamValueText,
// RFC 5545 §3.2's paramtext/quoted-string fallback.
var staticParamValueKind = map[StaticParam]ParamValueKind{
	ParamTzId:         ParamValueTzId,
	ParamFmtType:      ParamValueFormatType,
	ParamRsvp:         ParamValueBoolean,
	ParamDir:          ParamValueCalAddress,
	ParamAltRep:       ParamValueCalAddress,
	ParamMember:       ParamValueCalAddress,
	ParamSentBy:       ParamValueCalAddress,
	ParamDelegatedFrom: ParamValueCalAddress,
	ParamDelegatedTo:  ParamValueCalAddress,
}

// TypedParamValue is one decoded value of a RawParam, typed per
// spec.md §3.2's "parameter-value union matching the parameter's
// RFC-declared value grammar" requirement. Text always holds the verbatim
// decoded text regardless of Kind, so a caller that doesn't care about the
// distinction can ignore Kind entirely.
type TypedParamValue struct {
	Kind       ParamValueKind
	Text       string
	CalAddress primitive.Uri
	TzId       primitive.TzId
	FormatType primitive.FormatType
	Boolean    bool
}

// ParseParamValue decodes one value of the parameter named name against
// the grammar StaticParam assigns it.
func ParseParamValue(name, raw string) (TypedParamValue, error) {
	kind := staticParamValueKind[LookupParam(name)]
	switch kind {
	case ParamValueTzId:
		t, err := primitive.NewTzId(raw)
		if err != nil {
			return TypedParamValue{}, err
		}
		return TypedParamValue{Kind: kind, Text: raw, TzId: t}, nil
	case ParamValueFormatType:
		f, err := primitive.NewFormatType(raw)
		if err != nil {
			return TypedParamValue{}, err
		}
		return TypedParamValue{Kind: kind, Text: raw, FormatType: f}, nil
	case ParamValueCalAddress:
		u, err := grammar.Uri(raw, false)
		if err != nil {
			return TypedParamValue{}, err
		}
		return TypedParamValue{Kind: kind, Text: raw, CalAddress: u}, nil
	case ParamValueBoolean:
		return TypedParamValue{Kind: kind, Text: raw, Boolean: strings.EqualFold(raw, "TRUE")}, nil
	default:
		pv, err := grammar.ParamValue(raw)
		if err != nil {
			return TypedParamValue{}, err
		}
		return TypedParamValue{Kind: ParamValueText, Text: pv.Value()}, nil
	}
}

// ParseParam decodes every value of rp against the grammar its name
// implies, stopping at the first one that fails to validate.
func ParseParam(rp RawParam) ([]TypedParamValue, error) {
	out := make([]TypedParamValue, 0, len(rp.Values))
	for _, raw := range rp.Values {
		v, err := ParseParamValue(rp.Name, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
