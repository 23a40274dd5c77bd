// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package combinator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calicogo/calico/combinator"
	"github.com/calicogo/calico/stream"
)

func cursorOver(t *testing.T, s string) stream.Cursor {
	t.Helper()
	src, err := stream.NewTextSource(s)
	require.NoError(t, err)
	return stream.NewCursor(src)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') }

func TestLiteralMatch(t *testing.T) {
	c := cursorOver(t, "BEGIN:VEVENT")
	p := combinator.Literal("BEGIN")
	v, next, err := p(c)
	require.NoError(t, err)
	assert.Equal(t, "BEGIN", string(v))
	assert.Equal(t, 5, next.Pos())
}

func TestLiteralMismatch(t *testing.T) {
	c := cursorOver(t, "END:VEVENT")
	_, _, err := combinator.Literal("BEGIN")(c)
	assert.Error(t, err)
}

func TestTakeWhileDigits(t *testing.T) {
	c := cursorOver(t, "12345abc")
	v, next, err := combinator.TakeWhile(isDigit, 1, 0)(c)
	require.NoError(t, err)
	assert.Equal(t, "12345", string(v))
	assert.Equal(t, 5, next.Pos())
}

func TestTakeWhileMinFails(t *testing.T) {
	c := cursorOver(t, "abc")
	_, _, err := combinator.TakeWhile(isDigit, 1, 0)(c)
	assert.Error(t, err)
}

func TestTakeWhileMaxBounds(t *testing.T) {
	c := cursorOver(t, "1234567")
	v, next, err := combinator.TakeWhile(isDigit, 1, 3)(c)
	require.NoError(t, err)
	assert.Equal(t, "123", string(v))
	assert.Equal(t, 3, next.Pos())
}

func TestSeq2Success(t *testing.T) {
	c := cursorOver(t, "ABC123")
	p := combinator.Seq2(combinator.TakeWhile(isAlpha, 1, 0), combinator.TakeWhile(isDigit, 1, 0))
	v, next, err := p(c)
	require.NoError(t, err)
	assert.Equal(t, "ABC", string(v.First))
	assert.Equal(t, "123", string(v.Second))
	assert.True(t, next.AtEnd())
}

func TestSeq2FailureRestoresCursor(t *testing.T) {
	c := cursorOver(t, "ABC")
	p := combinator.Seq2(combinator.TakeWhile(isAlpha, 1, 0), combinator.TakeWhile(isDigit, 1, 0))
	_, next, err := p(c)
	assert.Error(t, err)
	assert.Equal(t, 0, next.Pos())
}

func TestAltFirstMatch(t *testing.T) {
	c := cursorOver(t, "VEVENT")
	p := combinator.Alt(combinator.Literal("VTODO"), combinator.Literal("VEVENT"))
	v, _, err := p(c)
	require.NoError(t, err)
	assert.Equal(t, "VEVENT", string(v))
}

func TestAltNoMatch(t *testing.T) {
	c := cursorOver(t, "VJOURNAL")
	p := combinator.Alt(combinator.Literal("VTODO"), combinator.Literal("VEVENT"))
	_, next, err := p(c)
	assert.Error(t, err)
	assert.Equal(t, 0, next.Pos())
}

func TestCommitStopsAltBacktrack(t *testing.T) {
	// Once "VE" matches, Commit means a failure on the rest must not fall
	// through to a sibling alternative that would otherwise also start
	// with "VE".
	body := combinator.Preceded(combinator.Literal("VE"), combinator.Literal("ALARM"))
	committed := combinator.Commit(body)
	p := combinator.Alt(committed, combinator.Literal("VEVENT"))

	_, _, err := p(cursorOver(t, "VEVENT"))
	assert.Error(t, err, "committed branch should fail on the 'ALARM' mismatch and not fall through to VEVENT")
}

func TestOptionalPresent(t *testing.T) {
	c := cursorOver(t, "123abc")
	p := combinator.Optional(combinator.TakeWhile(isDigit, 1, 0))
	v, next, err := p(c)
	require.NoError(t, err)
	assert.True(t, v.Present)
	assert.Equal(t, "123", string(v.Value))
	assert.Equal(t, 3, next.Pos())
}

func TestOptionalAbsentKeepsCursor(t *testing.T) {
	c := cursorOver(t, "abc")
	p := combinator.Optional(combinator.TakeWhile(isDigit, 1, 0))
	v, next, err := p(c)
	require.NoError(t, err)
	assert.False(t, v.Present)
	assert.Equal(t, 0, next.Pos())
}

func TestDelimited(t *testing.T) {
	c := cursorOver(t, "(123)")
	p := combinator.Delimited(combinator.Literal("("), combinator.TakeWhile(isDigit, 1, 0), combinator.Literal(")"))
	v, next, err := p(c)
	require.NoError(t, err)
	assert.Equal(t, "123", string(v))
	assert.True(t, next.AtEnd())
}

func TestRepeatCollectsAll(t *testing.T) {
	c := cursorOver(t, "ababab")
	p := combinator.Repeat(1, 0, combinator.Literal("ab"))
	v, next, err := p(c)
	require.NoError(t, err)
	assert.Len(t, v, 3)
	assert.True(t, next.AtEnd())
}

func TestRepeatMinFails(t *testing.T) {
	c := cursorOver(t, "xx")
	_, _, err := combinator.Repeat(1, 0, combinator.Literal("ab"))(c)
	assert.Error(t, err)
}

func TestRepeatSepCommaList(t *testing.T) {
	c := cursorOver(t, "1,2,3")
	p := combinator.RepeatSep(1, combinator.TakeWhile(isDigit, 1, 0), combinator.Literal(","))
	v, next, err := p(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, toStrings(v))
	assert.True(t, next.AtEnd())
}

func toStrings(bs [][]byte) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = string(b)
	}
	return out
}

func TestMapAndTryMap(t *testing.T) {
	c := cursorOver(t, "42")
	digits := combinator.TakeWhile(isDigit, 1, 0)
	asUpper := combinator.Map(digits, func(b []byte) string { return string(b) + "!" })
	v, _, err := asUpper(c)
	require.NoError(t, err)
	assert.Equal(t, "42!", v)

	c2 := cursorOver(t, "abc")
	failing := combinator.TryMap(combinator.TakeWhile(isAlpha, 1, 0), func(b []byte) (int, error) {
		return 0, assert.AnError
	})
	_, _, err = failing(c2)
	assert.Error(t, err)
}

func TestTerminatedAndPreceded(t *testing.T) {
	c := cursorOver(t, "VALUE;")
	p := combinator.Terminated(combinator.TakeWhile(isAlpha, 1, 0), combinator.Literal(";"))
	v, next, err := p(c)
	require.NoError(t, err)
	assert.Equal(t, "VALUE", string(v))
	assert.True(t, next.AtEnd())

	c2 := cursorOver(t, ":VALUE")
	p2 := combinator.Preceded(combinator.Literal(":"), combinator.TakeWhile(isAlpha, 1, 0))
	v2, next2, err := p2(c2)
	require.NoError(t, err)
	assert.Equal(t, "VALUE", string(v2))
	assert.True(t, next2.AtEnd())
}
