// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package grammar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calicogo/calico/grammar"
	"github.com/calicogo/calico/primitive"
)

func TestDurationWeeksForm(t *testing.T) {
	d, err := grammar.Duration("P2W")
	require.NoError(t, err)
	assert.Equal(t, primitive.Positive, d.Sign)
	assert.Equal(t, uint32(2), d.Duration.Weeks())
}

func TestDurationNegativeWeeks(t *testing.T) {
	d, err := grammar.Duration("-P3W")
	require.NoError(t, err)
	assert.Equal(t, primitive.Negative, d.Sign)
}

func TestDurationMixedWeeksFormRejected(t *testing.T) {
	_, err := grammar.Duration("P2WT1H")
	assert.Error(t, err)
}

func TestDurationDaysAndTime(t *testing.T) {
	d, err := grammar.Duration("P1DT2H3M4S")
	require.NoError(t, err)
	exact, ok := d.Duration.ExactTime()
	require.True(t, ok)
	assert.Equal(t, uint32(1), d.Duration.Days())
	assert.Equal(t, uint32(2), exact.Hours)
	assert.Equal(t, uint32(3), exact.Minutes)
	assert.Equal(t, uint32(4), exact.Seconds)
}

func TestDurationHourSecondWithoutMinuteRejected(t *testing.T) {
	_, err := grammar.Duration("PT1H30S")
	assert.Error(t, err)
}

func TestDurationHourMinuteSecondAccepted(t *testing.T) {
	_, err := grammar.Duration("PT1H2M30S")
	assert.NoError(t, err)
}

func TestDurationRoundTrip(t *testing.T) {
	cases := []string{"P2W", "P3D", "PT5H", "PT30M", "P1DT2H3M4S", "PT0S"}
	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			d, err := grammar.Duration(raw)
			require.NoError(t, err)
			formatted := grammar.FormatDuration(d)
			reparsed, err := grammar.Duration(formatted)
			require.NoError(t, err)
			if diff := cmp.Diff(d.Nanoseconds(), reparsed.Nanoseconds()); diff != "" {
				t.Errorf("duration round-trip mismatch for %q via %q (-want +got):\n%s", raw, formatted, diff)
			}
		})
	}
}

func TestDurationRejectsEmpty(t *testing.T) {
	_, err := grammar.Duration("")
	assert.Error(t, err)
}

func TestDurationRejectsMissingP(t *testing.T) {
	_, err := grammar.Duration("1D")
	assert.Error(t, err)
}
