// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package jscalendar

import "github.com/calicogo/calico/primitive"

// Task is RFC 8984's Task object: like Event but with a due date/estimated
// duration instead of a start/duration pair, and a progress status in
// place of confirmed/tentative/cancelled. Grounded on airtrafik-jscal's
// Task (task.go), trimmed and re-typed against calico's primitives.
type Task struct {
	UID        string
	Title      string
	HasTitle   bool
	Due        primitive.DateTime
	HasDue     bool
	EstimatedDuration primitive.SignedDuration
	HasEstimatedDuration bool
	Progress   string // "needs-action" | "in-process" | "completed" | "failed" | "cancelled"
	HasProgress bool
	PercentComplete int
	HasPercentComplete bool

	VendorProperties map[string]Value
}

var taskKnownKeys = map[string]bool{
	"@type": true, "uid": true, "title": true, "due": true,
	"estimatedDuration": true, "progress": true, "percentComplete": true,
}

// ParseTask destructures a JSON object Value into a Task.
func ParseTask(v Value) (Task, error) {
	path := Path{}
	obj, err := requireObject(v, path)
	if err != nil {
		return Task{}, err
	}

	typ, present, err := optionalString(obj, "@type", path)
	if err != nil {
		return Task{}, err
	}
	if present && typ != "Task" {
		return Task{}, newParseError(path.withKey("@type"), ErrUnknownType)
	}

	uid, err := requiredString(obj, "uid", path)
	if err != nil {
		return Task{}, err
	}

	var t Task
	t.UID = uid

	if s, ok, err := optionalString(obj, "title", path); err != nil {
		return Task{}, err
	} else if ok {
		t.Title, t.HasTitle = s, true
	}

	if dt, ok, err := optionalLocalDateTimeField(obj, "due", path); err != nil {
		return Task{}, err
	} else if ok {
		t.Due, t.HasDue = dt, true
	}

	if d, ok, err := optionalDuration(obj, "estimatedDuration", path); err != nil {
		return Task{}, err
	} else if ok {
		t.EstimatedDuration, t.HasEstimatedDuration = d, true
	}

	if s, ok, err := optionalString(obj, "progress", path); err != nil {
		return Task{}, err
	} else if ok {
		t.Progress, t.HasProgress = s, true
	}

	if n, ok, err := optionalInt(obj, "percentComplete", path); err != nil {
		return Task{}, err
	} else if ok {
		t.PercentComplete, t.HasPercentComplete = n, true
	}

	vendor, err := collectVendorProperties(obj, taskKnownKeys, path)
	if err != nil {
		return Task{}, err
	}
	t.VendorProperties = vendor

	return t, nil
}

// BuildTask serializes t back into a JSON object Value.
func BuildTask(t Task, b Builder) Value {
	fields := map[string]Value{
		"@type": b.String("Task"),
		"uid":   b.String(t.UID),
	}
	if t.HasTitle {
		fields["title"] = b.String(t.Title)
	}
	if t.HasDue {
		fields["due"] = b.String(formatLocalDateTime(t.Due))
	}
	if t.HasEstimatedDuration {
		fields["estimatedDuration"] = b.String(formatDuration(t.EstimatedDuration))
	}
	if t.HasProgress {
		fields["progress"] = b.String(t.Progress)
	}
	if t.HasPercentComplete {
		fields["percentComplete"] = b.Number(float64(t.PercentComplete))
	}
	for k, v := range t.VendorProperties {
		fields[k] = v
	}
	return b.Object(fields)
}
