// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package jscalendar

import (
	"fmt"

	"github.com/calicogo/calico/grammar"
	"github.com/calicogo/calico/primitive"
)

func parseLocalDateTimeString(s string) (primitive.DateTime, error) {
	return grammar.JSCalendarLocalDateTime(s)
}

// formatLocalDateTime renders a DateTime in RFC 8984's punctuated
// LocalDateTime form, "YYYY-MM-DDTHH:MM:SS".
func formatLocalDateTime(dt primitive.DateTime) string {
	d, t := dt.Date(), dt.Time()
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		d.Year().Value(), d.Month().Value(), d.Day().Value(),
		t.Hour().Value(), t.Minute().Value(), t.Second().Value())
}

// formatUTCDateTime renders a DateTime in RFC 8984's UTCDateTime form: a
// LocalDateTime with a trailing "Z".
func formatUTCDateTime(dt primitive.DateTime) string {
	return formatLocalDateTime(dt) + "Z"
}

func formatDuration(d primitive.SignedDuration) string {
	return grammar.FormatDuration(d)
}
