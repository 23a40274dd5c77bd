// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package jscalendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calicogo/calico/jscalendar"
	"github.com/calicogo/calico/jscalendar/jsonbind"
)

func TestTaskRoundTrip(t *testing.T) {
	raw := []byte(`{"@type":"Task","uid":"task-1","title":"Buy milk","due":"2024-01-20T09:00:00","progress":"needs-action","percentComplete":0}`)

	v, err := jsonbind.Decode(raw)
	require.NoError(t, err)
	t1, err := jscalendar.ParseTask(v)
	require.NoError(t, err)
	assert.Equal(t, "task-1", t1.UID)
	assert.Equal(t, "Buy milk", t1.Title)

	built := jscalendar.BuildTask(t1, jsonbind.Builder)
	out, err := jsonbind.Encode(built)
	require.NoError(t, err)

	v2, err := jsonbind.Decode(out)
	require.NoError(t, err)
	t2, err := jscalendar.ParseTask(v2)
	require.NoError(t, err)
	assert.Equal(t, t1, t2)
}

func TestGroupRoundTrip(t *testing.T) {
	raw := []byte(`{"@type":"Group","uid":"group-1","title":"My Calendar","entries":[{"@type":"Event","uid":"e1"}]}`)

	v, err := jsonbind.Decode(raw)
	require.NoError(t, err)
	g, err := jscalendar.ParseGroup(v)
	require.NoError(t, err)
	assert.Equal(t, "group-1", g.UID)
	require.Len(t, g.Entries, 1)

	built := jscalendar.BuildGroup(g, jsonbind.Builder)
	out, err := jsonbind.Encode(built)
	require.NoError(t, err)
	assert.Contains(t, string(out), "\"uid\":\"group-1\"")
}
