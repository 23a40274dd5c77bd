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

func TestUnescapeTextAlphabet(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"backslash", `a\\b`, `a\b`},
		{"lower-n-newline", `a\nb`, "a\nb"},
		{"upper-n-newline", `a\Nb`, "a\nb"},
		{"semicolon", `a\;b`, "a;b"},
		{"comma", `a\,b`, "a,b"},
		{"no-escapes", "plain text", "plain text"},
		{"mixed", `one\, two\; three\nfour`, "one, two; three\nfour"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := stream.UnescapeText(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnescapeTextDanglingEscape(t *testing.T) {
	_, err := stream.UnescapeText(`trailing\`)
	assert.ErrorIs(t, err, stream.ErrDanglingEscape)
}

func TestUnescapeTextUnknownEscape(t *testing.T) {
	_, err := stream.UnescapeText(`bad\qescape`)
	assert.ErrorIs(t, err, stream.ErrUnknownEscape)
}

func TestEscapeTextRoundTrip(t *testing.T) {
	original := "one, two; three\nfour\\five"
	escaped := stream.EscapeText(original)
	back, err := stream.UnescapeText(escaped)
	require.NoError(t, err)
	assert.Equal(t, original, back)
}
