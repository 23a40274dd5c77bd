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

func TestIntegerPositiveAndNegative(t *testing.T) {
	v, err := grammar.Integer("42")
	require.NoError(t, err)
	assert.Equal(t, int32(42), v.Value())

	v, err = grammar.Integer("-42")
	require.NoError(t, err)
	assert.Equal(t, int32(-42), v.Value())
}

func TestIntegerRejectsOutOfRange(t *testing.T) {
	_, err := grammar.Integer("99999999999999")
	assert.Error(t, err)
}

func TestFloatParsesFractional(t *testing.T) {
	v, err := grammar.Float("37.386013")
	require.NoError(t, err)
	assert.InDelta(t, 37.386013, v, 1e-9)
}

func TestFloatRejectsExponent(t *testing.T) {
	_, err := grammar.Float("1e10")
	assert.Error(t, err)
}

func TestGeoParsesLatLon(t *testing.T) {
	g, err := grammar.Geo("37.386013;-122.082932")
	require.NoError(t, err)
	assert.InDelta(t, 37.386013, g.Latitude(), 1e-9)
	assert.InDelta(t, -122.082932, g.Longitude(), 1e-9)
}

func TestGeoAcceptsNearPoleForgivingBound(t *testing.T) {
	_, err := grammar.Geo("90.5;0")
	assert.NoError(t, err)
}

func TestGeoRejectsOutOfForgivingBound(t *testing.T) {
	_, err := grammar.Geo("91;0")
	assert.Error(t, err)
}
