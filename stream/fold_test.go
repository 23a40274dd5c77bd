// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package stream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calicogo/calico/stream"
)

func cursorOver(t *testing.T, s string) stream.Cursor {
	t.Helper()
	src, err := stream.NewTextSource(s)
	require.NoError(t, err)
	return stream.NewCursor(src)
}

func TestStripLineFoldPrefixSingle(t *testing.T) {
	c := cursorOver(t, "\r\n DEF")
	next, removed := stream.StripLineFoldPrefix(c)
	assert.Equal(t, 3, removed)
	assert.Equal(t, 3, next.Pos())
}

func TestStripLineFoldPrefixMultiple(t *testing.T) {
	c := cursorOver(t, "\r\n \r\n\tDEF")
	next, removed := stream.StripLineFoldPrefix(c)
	assert.Equal(t, 6, removed)
	assert.Equal(t, 6, next.Pos())
}

func TestStripLineFoldPrefixNone(t *testing.T) {
	c := cursorOver(t, "DEF")
	next, removed := stream.StripLineFoldPrefix(c)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 0, next.Pos())
}

func TestNextContiguousSliceUnfolded(t *testing.T) {
	c := cursorOver(t, "SUMMARY:Party\r\nNEXT")
	line, next, err := stream.NextContiguousSlice(c)
	require.NoError(t, err)
	assert.Equal(t, "SUMMARY:Party", string(line))
	assert.Equal(t, 15, next.Pos())
}

func TestNextContiguousSliceFoldedSplicesAroundFold(t *testing.T) {
	c := cursorOver(t, "ABC\r\n DEF\r\n")
	line, next, err := stream.NextContiguousSlice(c)
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF", string(line))
	assert.True(t, next.AtEnd())
}

func TestNextContiguousSliceBareLFFold(t *testing.T) {
	c := cursorOver(t, "ABC\n\tDEF\n")
	line, next, err := stream.NextContiguousSlice(c)
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF", string(line))
	assert.True(t, next.AtEnd())
}

func TestNextContiguousSliceNoTerminatorAtEOF(t *testing.T) {
	c := cursorOver(t, "TAIL")
	line, next, err := stream.NextContiguousSlice(c)
	require.NoError(t, err)
	assert.Equal(t, "TAIL", string(line))
	assert.True(t, next.AtEnd())
}

func TestNextContiguousSliceAtEndReturnsErr(t *testing.T) {
	c := cursorOver(t, "X")
	c = c.Advance(1)
	_, _, err := stream.NextContiguousSlice(c)
	assert.ErrorIs(t, err, stream.ErrUnexpectedEOF)
}

func TestNextContiguousSliceMultipleLines(t *testing.T) {
	c := cursorOver(t, "ONE\r\nTWO\r\n")

	line1, c1, err := stream.NextContiguousSlice(c)
	require.NoError(t, err)
	assert.Equal(t, "ONE", string(line1))

	line2, c2, err := stream.NextContiguousSlice(c1)
	require.NoError(t, err)
	assert.Equal(t, "TWO", string(line2))
	assert.True(t, c2.AtEnd())
}
