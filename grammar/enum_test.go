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

func TestClassKnownToken(t *testing.T) {
	c, err := grammar.Class("CONFIDENTIAL")
	require.NoError(t, err)
	v, ok := c.Known()
	require.True(t, ok)
	assert.Equal(t, grammar.ClassConfidential, v)
}

func TestClassUnknownToken(t *testing.T) {
	c, err := grammar.Class("X-MY-CLASS")
	require.NoError(t, err)
	name, ok := c.Unknown()
	require.True(t, ok)
	assert.Equal(t, "X-MY-CLASS", name.Value())
}

func TestColorKnownKeyword(t *testing.T) {
	col, err := grammar.Color("MediumSeaGreen")
	require.NoError(t, err)
	_ = col
}

func TestColorRejectsUnknownKeyword(t *testing.T) {
	_, err := grammar.Color("not-a-real-color")
	assert.Error(t, err)
}

func TestRequestStatusWithExceptionData(t *testing.T) {
	rs, err := grammar.RequestStatus("2.0;Success;extra data here")
	require.NoError(t, err)
	assert.Equal(t, "2.0", rs.Code)
	assert.Equal(t, "Success", rs.Description)
	assert.True(t, rs.HasExceptionData)
	assert.Equal(t, "extra data here", rs.ExceptionData)
}

func TestRequestStatusWithoutExceptionData(t *testing.T) {
	rs, err := grammar.RequestStatus("3.1;Invalid property value")
	require.NoError(t, err)
	assert.False(t, rs.HasExceptionData)
}

func TestRequestStatusRejectsMissingSemicolon(t *testing.T) {
	_, err := grammar.RequestStatus("2.0")
	assert.Error(t, err)
}
