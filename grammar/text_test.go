// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calicogo/calico/grammar"
)

func TestTextDecodesEscapes(t *testing.T) {
	v, err := grammar.Text(`Some\, text\; with escapes\nand a newline`)
	require.NoError(t, err)
	assert.Equal(t, "Some, text; with escapes\nand a newline", v.Value())
}

func TestParamValueQuoted(t *testing.T) {
	v, err := grammar.ParamValue(`"has a semicolon; inside"`)
	require.NoError(t, err)
	assert.Equal(t, "has a semicolon; inside", v.Value())
}

func TestParamValueQuotedDoesNotDecodeEscapes(t *testing.T) {
	v, err := grammar.ParamValue(`"literal\nbackslash-n"`)
	require.NoError(t, err)
	assert.Equal(t, `literal\nbackslash-n`, v.Value())
}

func TestParamValueUnquoted(t *testing.T) {
	v, err := grammar.ParamValue("plainvalue")
	require.NoError(t, err)
	assert.Equal(t, "plainvalue", v.Value())
}

func TestUriPropertyValueAllowsEscapedSemicolon(t *testing.T) {
	u, err := grammar.Uri(`http://example.com/path\;segment`, true)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/path;segment", u.Value())
}

func TestUriParameterValueDoesNotUnescape(t *testing.T) {
	u, err := grammar.Uri(`http://example.com/path`, false)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/path", u.Value())
}
