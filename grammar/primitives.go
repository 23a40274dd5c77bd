// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package grammar

import (
	"strconv"

	"github.com/calicogo/calico/combinator"
	"github.com/calicogo/calico/primitive"
	"github.com/calicogo/calico/stream"
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// digits parses one or more ASCII digits.
var digits = combinator.TakeWhile(isDigit, 1, 0)

// digitsN parses exactly n ASCII digits.
func digitsN(n int) combinator.Parser[[]byte] {
	return combinator.TakeWhile(isDigit, n, n)
}

func atoi(b []byte) (int, error) {
	return strconv.Atoi(string(b))
}

// parseAll runs p over the whole of s and requires it to consume every
// byte; it is the entry point the rest of the package's exported
// ParseXxx(string) functions fan out to.
func parseAll[T any](p combinator.Parser[T], s string) (T, error) {
	var zero T
	src, err := stream.NewTextSource(s)
	if err != nil {
		return zero, err
	}
	c := stream.NewCursor(src)
	v, next, err := p(c)
	if err != nil {
		return zero, err
	}
	if !next.AtEnd() {
		return zero, combinator.NewParseError(combinator.Syntactic, next.Pos(), ErrTrailingInput.Error())
	}
	return v, nil
}

// sign parses an optional leading '+' or '-', defaulting to Positive.
var signParser = combinator.Map(
	combinator.Optional(combinator.Alt(combinator.Literal("+"), combinator.Literal("-"))),
	func(o combinator.OptionalValue[[]byte]) primitive.Sign {
		if o.Present && len(o.Value) > 0 && o.Value[0] == '-' {
			return primitive.Negative
		}
		return primitive.Positive
	},
)

// Integer parses RFC 5545 §3.3.8's signed INTEGER grammar.
func Integer(raw string) (primitive.Integer, error) {
	return parseAll(integerParser, raw)
}

var integerParser = combinator.TryMap(
	combinator.Seq2(signParser, digits),
	func(p combinator.Pair[primitive.Sign, []byte]) (primitive.Integer, error) {
		n, err := strconv.ParseInt(string(p.Second), 10, 64)
		if err != nil {
			return 0, err
		}
		if p.First == primitive.Negative {
			n = -n
		}
		return primitive.NewInteger(n)
	},
)

// Float parses RFC 5545's FLOAT grammar: optional sign, digits, optional
// "." digits. No exponent, no NaN/Inf.
func Float(raw string) (float64, error) {
	return parseAll(floatParser, raw)
}

var floatParser = combinator.TryMap(
	combinator.Seq2(
		signParser,
		combinator.Seq2(digits, combinator.Optional(combinator.Preceded(combinator.Literal("."), digits))),
	),
	func(p combinator.Pair[primitive.Sign, combinator.Pair[[]byte, combinator.OptionalValue[[]byte]]]) (float64, error) {
		s := string(p.Second.First)
		if p.Second.Second.Present {
			s += "." + string(p.Second.Second.Value)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		if p.First == primitive.Negative {
			v = -v
		}
		return v, nil
	},
)

// Geo parses RFC 5545 §3.8.1.6's GEO value: two floats separated by ';'.
func Geo(raw string) (primitive.Geo, error) {
	return parseAll(geoParser, raw)
}

var geoParser = combinator.TryMap(
	combinator.Seq2(combinator.Terminated(rawFloat, combinator.Literal(";")), rawFloat),
	func(p combinator.Pair[float64, float64]) (primitive.Geo, error) {
		return primitive.NewGeo(p.First, p.Second)
	},
)

var rawFloat = combinator.Map(
	combinator.Seq2(signParser, combinator.Seq2(digits, combinator.Optional(combinator.Preceded(combinator.Literal("."), digits)))),
	func(p combinator.Pair[primitive.Sign, combinator.Pair[[]byte, combinator.OptionalValue[[]byte]]]) float64 {
		s := string(p.Second.First)
		if p.Second.Second.Present {
			s += "." + string(p.Second.Second.Value)
		}
		v, _ := strconv.ParseFloat(s, 64)
		if p.First == primitive.Negative {
			v = -v
		}
		return v
	},
)
