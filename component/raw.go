// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package component

import "strings"

// RawParam is one parameter attached to a RawProperty: NAME=value[,value…].
// RFC 5545 §3.2 allows a parameter name to repeat values as a comma list
// within one occurrence, and the same parameter name to occur more than
// once on one property (spec.md §9's open question on repeated-parameter
// policy) — both are preserved verbatim here; nothing is collapsed to
// "last one wins" at this layer.
type RawParam struct {
	Name   string
	Values []string
}

// RawProperty is one property line already unfolded and split into
// name/parameters/value, but not yet grammar-parsed or validated — the
// component validator works entirely off these raw strings so it can flag
// a defect without losing the original text.
type RawProperty struct {
	Name   string
	Params []RawParam
	Value  string
}

// Param returns the Values of the first parameter named name
// (case-insensitive), or nil if absent.
func (p RawProperty) Param(name string) []string {
	for _, rp := range p.Params {
		if strings.EqualFold(rp.Name, name) {
			return rp.Values
		}
	}
	return nil
}

// RawComponent is a parsed-but-unvalidated component: a BEGIN:<kind> block
// with its properties and nested components, exactly as scanned — the
// validator's only input.
type RawComponent struct {
	Kind       string
	Properties []RawProperty
	Children   []RawComponent
}

// Count returns how many times a property named name (case-insensitive)
// occurs directly on this component.
func (c RawComponent) Count(name string) int {
	n := 0
	for _, p := range c.Properties {
		if strings.EqualFold(p.Name, name) {
			n++
		}
	}
	return n
}

// First returns the first property named name and true, or the zero value
// and false.
func (c RawComponent) First(name string) (RawProperty, bool) {
	for _, p := range c.Properties {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return RawProperty{}, false
}

// ChildrenOfKind returns every direct subcomponent whose Kind matches kind
// (case-insensitive), in original order.
func (c RawComponent) ChildrenOfKind(kind string) []RawComponent {
	var out []RawComponent
	for _, ch := range c.Children {
		if strings.EqualFold(ch.Kind, kind) {
			out = append(out, ch)
		}
	}
	return out
}
