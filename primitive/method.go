// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package primitive

// Method is an iTIP method (RFC 5546 §1.4), carried by a VCALENDAR's METHOD
// property. The teacher (model/calendar.go) stores this as a bare string;
// calico stores it as a closed Go enum of the eight RFC 5546 methods.
// There is no Token[Method] unknown case: ParseMethod reports false for
// any other token, and component.ParsePropertyValue then returns an error.
type Method int

const (
	MethodPublish Method = iota
	MethodRequest
	MethodReply
	MethodAdd
	MethodCancel
	MethodRefresh
	MethodCounter
	MethodDeclineCounter
)

var methodTokens = map[Method]string{
	MethodPublish:        "PUBLISH",
	MethodRequest:        "REQUEST",
	MethodReply:          "REPLY",
	MethodAdd:            "ADD",
	MethodCancel:         "CANCEL",
	MethodRefresh:        "REFRESH",
	MethodCounter:        "COUNTER",
	MethodDeclineCounter: "DECLINECOUNTER",
}

func (m Method) String() string {
	if s, ok := methodTokens[m]; ok {
		return s
	}
	return "UNKNOWN"
}

// ParseMethod looks up a METHOD token case-insensitively, returning
// (method, true) on a known match.
func ParseMethod(raw string) (Method, bool) {
	for m, tok := range methodTokens {
		if equalFoldASCII(tok, raw) {
			return m, true
		}
	}
	return 0, false
}
