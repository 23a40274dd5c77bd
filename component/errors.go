// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package component

import "errors"

var (
	ErrUnmatchedEnd            = errors.New("END with no matching BEGIN")
	ErrPropertyOutsideComponent = errors.New("property line outside of any BEGIN/END block")
	ErrUnterminatedComponent    = errors.New("BEGIN with no matching END")
	ErrExpectedSingleComponent  = errors.New("expected exactly one top-level component")
)
