// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package grammar_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calicogo/calico/grammar"
)

type statusKind int

const (
	statusTentative statusKind = iota
	statusConfirmed
	statusCancelled
)

func TestExtensibleEnumKnownAndUnknown(t *testing.T) {
	lookup := func(name string) (statusKind, bool) {
		switch strings.ToUpper(name) {
		case "TENTATIVE":
			return statusTentative, true
		case "CONFIRMED":
			return statusConfirmed, true
		case "CANCELLED":
			return statusCancelled, true
		default:
			return 0, false
		}
	}

	tok, err := grammar.ExtensibleEnum("CONFIRMED", lookup)
	require.NoError(t, err)
	v, ok := tok.Known()
	require.True(t, ok)
	assert.Equal(t, statusConfirmed, v)

	tok, err = grammar.ExtensibleEnum("X-MADE-UP", lookup)
	require.NoError(t, err)
	_, ok = tok.Unknown()
	assert.True(t, ok)
}
