// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package combinator

import (
	"errors"

	"github.com/calicogo/calico/stream"
)

// Parser consumes input starting at c and either succeeds, returning a
// value of type T and a Cursor advanced past whatever it consumed, or fails
// and returns an error. On failure the returned Cursor is unspecified —
// callers must fall back to the Cursor they held before calling, which is
// exactly what Alt does.
type Parser[T any] func(c stream.Cursor) (T, stream.Cursor, error)

// Commit wraps p so that, if it fails, the failure is marked as committed:
// an enclosing Alt will propagate it instead of trying the next
// alternative. Use it once a parser has consumed an unambiguous prefix
// (e.g. a property name followed by ':') so a malformed tail produces a
// precise error instead of a generic "no alternative matched."
func Commit[T any](p Parser[T]) Parser[T] {
	return func(c stream.Cursor) (T, stream.Cursor, error) {
		v, next, err := p(c)
		if err != nil {
			return v, next, &committed{err: err}
		}
		return v, next, nil
	}
}

// Alt tries each parser in order against the same starting cursor c,
// returning the first success. A plain (uncommitted) failure is discarded
// and the next alternative is tried from c again. A committed failure
// (see Commit) is returned immediately, unwrapped, without trying further
// alternatives.
func Alt[T any](parsers ...Parser[T]) Parser[T] {
	return func(c stream.Cursor) (T, stream.Cursor, error) {
		var zero T
		var lastErr error = NewParseError(Syntactic, c.Pos(), "no alternative matched")
		for _, p := range parsers {
			v, next, err := p(c)
			if err == nil {
				return v, next, nil
			}
			var cm *committed
			if errors.As(err, &cm) {
				return zero, next, cm.err
			}
			lastErr = err
		}
		return zero, c, lastErr
	}
}

// Pair holds the result of Seq2.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds the result of Seq3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad holds the result of Seq4.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Seq2 runs pa then pb in sequence, failing as soon as either does.
func Seq2[A, B any](pa Parser[A], pb Parser[B]) Parser[Pair[A, B]] {
	return func(c stream.Cursor) (Pair[A, B], stream.Cursor, error) {
		a, c1, err := pa(c)
		if err != nil {
			return Pair[A, B]{}, c, err
		}
		b, c2, err := pb(c1)
		if err != nil {
			return Pair[A, B]{}, c, err
		}
		return Pair[A, B]{First: a, Second: b}, c2, nil
	}
}

// Seq3 runs pa, pb, pc in sequence.
func Seq3[A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Triple[A, B, C]] {
	return func(c stream.Cursor) (Triple[A, B, C], stream.Cursor, error) {
		a, c1, err := pa(c)
		if err != nil {
			return Triple[A, B, C]{}, c, err
		}
		b, c2, err := pb(c1)
		if err != nil {
			return Triple[A, B, C]{}, c, err
		}
		cc, c3, err := pc(c2)
		if err != nil {
			return Triple[A, B, C]{}, c, err
		}
		return Triple[A, B, C]{First: a, Second: b, Third: cc}, c3, nil
	}
}

// Seq4 runs pa, pb, pc, pd in sequence.
func Seq4[A, B, C, D any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D]) Parser[Quad[A, B, C, D]] {
	return func(c stream.Cursor) (Quad[A, B, C, D], stream.Cursor, error) {
		a, c1, err := pa(c)
		if err != nil {
			return Quad[A, B, C, D]{}, c, err
		}
		b, c2, err := pb(c1)
		if err != nil {
			return Quad[A, B, C, D]{}, c, err
		}
		cc, c3, err := pc(c2)
		if err != nil {
			return Quad[A, B, C, D]{}, c, err
		}
		d, c4, err := pd(c3)
		if err != nil {
			return Quad[A, B, C, D]{}, c, err
		}
		return Quad[A, B, C, D]{First: a, Second: b, Third: cc, Fourth: d}, c4, nil
	}
}

// Optional runs p; on failure it succeeds with Present=false and the
// original cursor untouched, rather than propagating the error.
func Optional[T any](p Parser[T]) Parser[OptionalValue[T]] {
	return func(c stream.Cursor) (OptionalValue[T], stream.Cursor, error) {
		v, next, err := p(c)
		if err != nil {
			var cm *committed
			if errors.As(err, &cm) {
				return OptionalValue[T]{}, c, cm.err
			}
			return OptionalValue[T]{}, c, nil
		}
		return OptionalValue[T]{Value: v, Present: true}, next, nil
	}
}

// OptionalValue is the result of Optional.
type OptionalValue[T any] struct {
	Value   T
	Present bool
}

// Preceded runs prefix, discards its result, then runs p and returns p's
// value.
func Preceded[P, T any](prefix Parser[P], p Parser[T]) Parser[T] {
	return func(c stream.Cursor) (T, stream.Cursor, error) {
		var zero T
		_, c1, err := prefix(c)
		if err != nil {
			return zero, c, err
		}
		v, c2, err := p(c1)
		if err != nil {
			return zero, c, err
		}
		return v, c2, nil
	}
}

// Terminated runs p, then suffix, discarding suffix's result and returning
// p's value.
func Terminated[T, S any](p Parser[T], suffix Parser[S]) Parser[T] {
	return func(c stream.Cursor) (T, stream.Cursor, error) {
		var zero T
		v, c1, err := p(c)
		if err != nil {
			return zero, c, err
		}
		_, c2, err := suffix(c1)
		if err != nil {
			return zero, c, err
		}
		return v, c2, nil
	}
}

// Delimited runs open, then body, then close, discarding open's and
// close's results and returning body's value.
func Delimited[O, T, C any](open Parser[O], body Parser[T], close Parser[C]) Parser[T] {
	return Preceded(open, Terminated(body, close))
}

// TakeWhile consumes bytes satisfying pred, stopping at the first that
// doesn't (or at end of source). It fails if fewer than min bytes were
// consumed; it stops after max bytes even if pred would continue matching
// (max <= 0 means unbounded).
func TakeWhile(pred func(byte) bool, min, max int) Parser[[]byte] {
	return func(c stream.Cursor) ([]byte, stream.Cursor, error) {
		start := c
		count := 0
		for {
			if max > 0 && count >= max {
				break
			}
			b, ok := c.Peek()
			if !ok || !pred(b) {
				break
			}
			c = c.Advance(1)
			count++
		}
		if count < min {
			return nil, start, NewParseError(Syntactic, start.Pos(), "expected at least one more matching byte")
		}
		return start.Slice(c), c, nil
	}
}

// Repeat applies p repeatedly, collecting results, until it fails or max
// successes have been collected (max <= 0 means unbounded). It fails if
// fewer than min successes were collected.
func Repeat[T any](min, max int, p Parser[T]) Parser[[]T] {
	return func(c stream.Cursor) ([]T, stream.Cursor, error) {
		start := c
		var out []T
		for {
			if max > 0 && len(out) >= max {
				break
			}
			v, next, err := p(c)
			if err != nil {
				var cm *committed
				if errors.As(err, &cm) {
					return nil, start, cm.err
				}
				break
			}
			out = append(out, v)
			c = next
		}
		if len(out) < min {
			return nil, start, NewParseError(Syntactic, start.Pos(), "expected at least one more repetition")
		}
		return out, c, nil
	}
}

// RepeatSep applies p, then repeatedly (sep, p), collecting the p results,
// stopping when sep or p fails. It fails if fewer than min items were
// collected.
func RepeatSep[T, S any](min int, p Parser[T], sep Parser[S]) Parser[[]T] {
	return func(c stream.Cursor) ([]T, stream.Cursor, error) {
		start := c
		first, next, err := p(c)
		if err != nil {
			if min > 0 {
				return nil, start, err
			}
			return nil, start, nil
		}
		out := []T{first}
		c = next
		for {
			_, sepNext, err := sep(c)
			if err != nil {
				break
			}
			v, vNext, err := p(sepNext)
			if err != nil {
				var cm *committed
				if errors.As(err, &cm) {
					return nil, start, cm.err
				}
				break
			}
			out = append(out, v)
			c = vNext
		}
		if len(out) < min {
			return nil, start, NewParseError(Syntactic, start.Pos(), "expected at least one more repetition")
		}
		return out, c, nil
	}
}

// Map transforms a successful parser's value with f.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(c stream.Cursor) (B, stream.Cursor, error) {
		var zero B
		a, next, err := p(c)
		if err != nil {
			return zero, c, err
		}
		return f(a), next, nil
	}
}

// TryMap transforms a successful parser's value with f, which may itself
// fail (e.g. constructing a validated primitive from raw bytes).
func TryMap[A, B any](p Parser[A], f func(A) (B, error)) Parser[B] {
	return func(c stream.Cursor) (B, stream.Cursor, error) {
		var zero B
		a, next, err := p(c)
		if err != nil {
			return zero, c, err
		}
		b, err := f(a)
		if err != nil {
			return zero, c, WrapParseError(Semantic, c.Pos(), "value construction failed", err)
		}
		return b, next, nil
	}
}

// Literal matches the exact byte sequence lit at the cursor.
func Literal(lit string) Parser[[]byte] {
	return func(c stream.Cursor) ([]byte, stream.Cursor, error) {
		start := c
		for i := 0; i < len(lit); i++ {
			b, ok := c.PeekAt(i)
			if !ok || b != lit[i] {
				return nil, start, NewParseError(Syntactic, start.Pos(), "expected literal "+lit)
			}
		}
		return []byte(lit), start.Advance(len(lit)), nil
	}
}
