// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package component

import (
	"strings"

	"github.com/calicogo/calico/combinator"
	"github.com/calicogo/calico/stream"
)

// contentLine is one already-unfolded logical line, split into its name,
// parameters, and value per RFC 5545 §3.1's
//
//	name *(";" param) ":" value
type contentLine struct {
	Name   string
	Params []RawParam
	Value  string
}

func isNameChar(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '-'
}

// isParamTextChar is RFC 5545 §3.2's SAFE-CHAR: any character but a control
// (other than TAB), DQUOTE, ';', ':', or ','.
func isParamTextChar(b byte) bool {
	if b < 0x20 && b != '\t' {
		return false
	}
	switch b {
	case 0x7F, '"', ';', ':', ',':
		return false
	}
	return true
}

// isQuotedStringChar is RFC 5545 §3.2's QSAFE-CHAR: SAFE-CHAR plus ':',
// ';', and ',' — only DQUOTE and controls (other than TAB) are excluded.
func isQuotedStringChar(b byte) bool {
	if b < 0x20 && b != '\t' {
		return false
	}
	return b != 0x7F && b != '"'
}

func anyByte(byte) bool { return true }

var quotedStringParser = combinator.Delimited(
	combinator.Literal(`"`),
	combinator.TakeWhile(isQuotedStringChar, 0, 0),
	combinator.Literal(`"`),
)

var paramValueParser = combinator.Map(
	combinator.Alt(quotedStringParser, combinator.TakeWhile(isParamTextChar, 0, 0)),
	func(b []byte) string { return string(b) },
)

var paramValueListParser = combinator.RepeatSep(1, paramValueParser, combinator.Literal(","))

var paramParser = combinator.Map(
	combinator.Seq2(
		combinator.Terminated(combinator.TakeWhile(isNameChar, 1, 0), combinator.Literal("=")),
		paramValueListParser,
	),
	func(p combinator.Pair[[]byte, []string]) RawParam {
		return RawParam{Name: string(p.First), Values: p.Second}
	},
)

var paramsSectionParser = combinator.Repeat(0, 0, combinator.Preceded(combinator.Literal(";"), paramParser))

var nameParser = combinator.TakeWhile(isNameChar, 1, 0)

// contentLineParser assembles name, params, and value; it is run once per
// already-unfolded line by parseContentLine.
var contentLineParser = combinator.Map(
	combinator.Seq3(
		nameParser,
		paramsSectionParser,
		combinator.Preceded(combinator.Literal(":"), combinator.TakeWhile(anyByte, 0, 0)),
	),
	func(t combinator.Triple[[]byte, []RawParam, []byte]) contentLine {
		return contentLine{Name: string(t.First), Params: t.Second, Value: string(t.Third)}
	},
)

// parseContentLine runs the name/params/value grammar over one unfolded
// line's bytes, requiring the whole line be consumed.
func parseContentLine(line []byte) (contentLine, error) {
	src := stream.NewByteSource(line)
	c := stream.NewCursor(src)
	v, next, err := contentLineParser(c)
	if err != nil {
		return contentLine{}, err
	}
	if !next.AtEnd() {
		return contentLine{}, combinator.NewParseError(combinator.Syntactic, next.Pos(), "trailing bytes after content-line value")
	}
	return v, nil
}

// ParseComponents scans raw RFC 5545 text and assembles every top-level
// BEGIN:X…END:X block into a RawComponent tree, nesting children to
// arbitrary depth (VALARM inside VEVENT, STANDARD/DAYLIGHT inside
// VTIMEZONE, and so on). raw is carried over a stream.ByteSource so UTF-8
// validity is checked once per logical line, at the point its bytes are
// about to be handed to the content-line grammar, rather than up front —
// spec.md §4.S's "raw bytes with deferred UTF-8 validation." Folded
// continuation lines (stream.StripLineFoldPrefix, applied inside
// stream.NextContiguousSlice) are collapsed before a line ever reaches the
// content-line parser.
func ParseComponents(raw []byte) ([]RawComponent, error) {
	src := stream.NewByteSource(raw)
	c := stream.NewCursor(src)

	var stack []RawComponent
	var top []RawComponent

	for !c.AtEnd() {
		lineStart := c.Pos()
		lineBytes, next, err := stream.NextContiguousSlice(c)
		if err != nil {
			return nil, err
		}
		if verr := c.Source().ValidateUTF8(lineStart, next.Pos()); verr != nil {
			return nil, verr
		}
		c = next

		if len(lineBytes) == 0 {
			continue // tolerate a blank line between/around components
		}

		line, err := parseContentLine(lineBytes)
		if err != nil {
			return nil, err
		}

		switch {
		case strings.EqualFold(line.Name, "BEGIN"):
			stack = append(stack, RawComponent{Kind: line.Value})
		case strings.EqualFold(line.Name, "END"):
			if len(stack) == 0 {
				return nil, ErrUnmatchedEnd
			}
			finished := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				top = append(top, finished)
			} else {
				parent := &stack[len(stack)-1]
				parent.Children = append(parent.Children, finished)
			}
		default:
			if len(stack) == 0 {
				return nil, ErrPropertyOutsideComponent
			}
			cur := &stack[len(stack)-1]
			cur.Properties = append(cur.Properties, RawProperty{
				Name:   line.Name,
				Params: line.Params,
				Value:  line.Value,
			})
		}
	}

	if len(stack) != 0 {
		return nil, ErrUnterminatedComponent
	}
	return top, nil
}

// ParseComponentsString is ParseComponents over a Go string: it converts
// raw to bytes and takes the same ByteSource path, UTF-8 validation per
// logical line included.
func ParseComponentsString(raw string) ([]RawComponent, error) {
	return ParseComponents([]byte(raw))
}

// ParseComponent parses raw as exactly one top-level component, the common
// case of a lone VCALENDAR block.
func ParseComponent(raw []byte) (RawComponent, error) {
	all, err := ParseComponents(raw)
	if err != nil {
		return RawComponent{}, err
	}
	if len(all) != 1 {
		return RawComponent{}, ErrExpectedSingleComponent
	}
	return all[0], nil
}

// ParseAndValidate parses raw as a single top-level component and runs it
// through ValidateComponent, the end-to-end entry point from RFC 5545 text
// to the validated, defect-flagged result spec.md §2's data flow names.
func ParseAndValidate(raw []byte) (Validated, error) {
	c, err := ParseComponent(raw)
	if err != nil {
		return Validated{}, err
	}
	return ValidateComponent(c), nil
}
