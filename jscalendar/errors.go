// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package jscalendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMissingField  = errors.New("jscalendar: missing required field")
	ErrWrongType     = errors.New("jscalendar: field has the wrong JSON type")
	ErrUnknownKey    = errors.New("jscalendar: unrecognized key")
	ErrUnknownType   = errors.New("jscalendar: unrecognized @type value")
)

// Segment is one step of a Path: either a string object key or an integer
// array index.
type Segment struct {
	Key      string
	Index    int
	IsIndex  bool
}

func keySeg(key string) Segment  { return Segment{Key: key} }
func idxSeg(i int) Segment       { return Segment{Index: i, IsIndex: true} }

func (s Segment) String() string {
	if s.IsIndex {
		return strconv.Itoa(s.Index)
	}
	return s.Key
}

// Path identifies where in a JSON tree a parsing failure occurred, as a
// deque of Segments accumulated root-to-leaf.
type Path []Segment

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return "$." + strings.Join(parts, ".")
}

func (p Path) withKey(key string) Path {
	next := make(Path, len(p)+1)
	copy(next, p)
	next[len(p)] = keySeg(key)
	return next
}

func (p Path) withIndex(i int) Path {
	next := make(Path, len(p)+1)
	copy(next, p)
	next[len(p)] = idxSeg(i)
	return next
}

// ParseError is a parsing failure anchored at a specific location in the
// source JSON tree.
type ParseError struct {
	Path Path
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(path Path, err error) *ParseError {
	return &ParseError{Path: path, Err: err}
}
