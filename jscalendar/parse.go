// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package jscalendar

// CalendarObject is the tagged union Parse dispatches into, selected by
// the JSON value's "@type" field.
type CalendarObject struct {
	Type  string
	Event *Event
	Task  *Task
	Group *Group
}

// Parse reads v's "@type" field and dispatches to ParseEvent, ParseTask,
// or ParseGroup.
func Parse(v Value) (CalendarObject, error) {
	path := Path{}
	obj, err := requireObject(v, path)
	if err != nil {
		return CalendarObject{}, err
	}
	typ, err := requiredString(obj, "@type", path)
	if err != nil {
		return CalendarObject{}, err
	}
	switch typ {
	case "Event":
		e, err := ParseEvent(v)
		if err != nil {
			return CalendarObject{}, err
		}
		return CalendarObject{Type: typ, Event: &e}, nil
	case "Task":
		t, err := ParseTask(v)
		if err != nil {
			return CalendarObject{}, err
		}
		return CalendarObject{Type: typ, Task: &t}, nil
	case "Group":
		g, err := ParseGroup(v)
		if err != nil {
			return CalendarObject{}, err
		}
		return CalendarObject{Type: typ, Group: &g}, nil
	default:
		return CalendarObject{}, newParseError(path.withKey("@type"), ErrUnknownType)
	}
}
